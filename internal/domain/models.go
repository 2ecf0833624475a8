package domain

// Config represents the application configuration.
type Config struct {
	BinWidth  float64 `yaml:"bin_width"`
	BinOrigin float64 `yaml:"bin_origin"`
	Decimals  int     `yaml:"decimals"`
	LogLevel  string  `yaml:"log_level"`
	LogFile   string  `yaml:"log_file"`
}

// Bin is one occupied half-open interval [lower, lower+width),
// reported by its midpoint.
type Bin struct {
	Center float64
	Count  uint32
}
