package app

import (
	"io"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"binner/internal/domain"
)

type Binner struct {
	logger *zap.Logger
	config *domain.Config
	reader domain.ValueReader
	writer domain.BinWriter
}

func NewBinner(logger *zap.Logger, config *domain.Config, reader domain.ValueReader, writer domain.BinWriter) *Binner {
	return &Binner{
		logger: logger,
		config: config,
		reader: reader,
		writer: writer,
	}
}

// Run reads every value from in, bins them and writes the result to out.
func (b *Binner) Run(in io.Reader, out io.Writer) error {
	values, err := b.reader.ReadValues(in)
	if err != nil {
		return err
	}

	b.logSummary(values)

	bins := domain.ComputeBins(values, b.config.BinWidth, b.config.BinOrigin)

	b.logger.Info("Binning completed",
		zap.Int("values", len(values)),
		zap.Int("bins", len(bins)),
		zap.Float64("bin_width", b.config.BinWidth),
		zap.Float64("bin_origin", b.config.BinOrigin))

	return b.writer.WriteBins(out, bins)
}

func (b *Binner) logSummary(values []float64) {
	if len(values) == 0 {
		b.logger.Info("No values read from input")
		return
	}

	mean, stddev := stat.MeanStdDev(values, nil)
	if math.IsNaN(stddev) { // single value
		stddev = 0
	}

	b.logger.Info("Input summary",
		zap.Int("count", len(values)),
		zap.Float64("min", floats.Min(values)),
		zap.Float64("max", floats.Max(values)),
		zap.Float64("mean", mean),
		zap.Float64("stddev", stddev))
}
