package domain

import "io"

// ValueReader reads a stream of numeric values.
type ValueReader interface {
	ReadValues(r io.Reader) ([]float64, error)
}

// BinWriter writes computed bins.
type BinWriter interface {
	WriteBins(w io.Writer, bins []Bin) error
}

// ConfigReader reads the application configuration.
type ConfigReader interface {
	ReadConfig(path string) (*Config, error)
}
