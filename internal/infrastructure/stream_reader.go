package infrastructure

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

type StreamValueReader struct {
	logger *zap.Logger
}

func NewStreamValueReader(logger *zap.Logger) *StreamValueReader {
	return &StreamValueReader{logger: logger}
}

// ReadValues reads one number per line until EOF. Lines that do not parse
// as a float are skipped with a warning and processing continues.
func (r *StreamValueReader) ReadValues(in io.Reader) ([]float64, error) {
	var values []float64

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			r.logger.Warn("Invalid value entered, line skipped", zap.String("line", line))
			continue
		}
		values = append(values, value)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return values, nil
}
