package infrastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"syscall"

	"go.uber.org/zap"

	"binner/internal/domain"
)

type FmtFunc func(float64) string

// DecimalsFormatter returns a center formatter with a fixed number of
// decimal places; decimals < 0 means the shortest round-trip form.
func DecimalsFormatter(decimals int) FmtFunc {
	return func(val float64) string {
		return strconv.FormatFloat(val, 'f', decimals, 64)
	}
}

type TSVBinWriter struct {
	logger    *zap.Logger
	formatter FmtFunc
}

func NewTSVBinWriter(logger *zap.Logger, formatter FmtFunc) *TSVBinWriter {
	return &TSVBinWriter{logger: logger, formatter: formatter}
}

// WriteBins writes one "<center>\t<count>" line per bin, in the order given.
func (w *TSVBinWriter) WriteBins(out io.Writer, bins []domain.Bin) error {
	writer := bufio.NewWriter(out)

	for _, bin := range bins {
		if _, err := fmt.Fprintf(writer, "%s\t%d\n", w.formatter(bin.Center), bin.Count); err != nil {
			return w.filterBrokenPipe(err)
		}
	}

	return w.filterBrokenPipe(writer.Flush())
}

// filterBrokenPipe drops broken-pipe errors so that a downstream consumer
// closing early (like `head`) does not fail the run.
func (w *TSVBinWriter) filterBrokenPipe(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe) {
		w.logger.Debug("Output pipe closed early", zap.Error(err))
		return nil
	}
	return err
}
