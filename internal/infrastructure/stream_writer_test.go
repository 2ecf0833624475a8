package infrastructure

import (
	"bytes"
	"math"
	"testing"

	"go.uber.org/zap"

	"binner/internal/domain"
)

func TestWriteBinsTSV(t *testing.T) {
	w := NewTSVBinWriter(zap.NewNop(), DecimalsFormatter(-1))

	var buf bytes.Buffer
	err := w.WriteBins(&buf, []domain.Bin{
		{Center: -15.5, Count: 1},
		{Center: 1.5, Count: 1},
		{Center: 55.5, Count: 2},
	})
	if err != nil {
		t.Fatalf("write err: %v", err)
	}

	want := "-15.5\t1\n1.5\t1\n55.5\t2\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteBinsEmpty(t *testing.T) {
	w := NewTSVBinWriter(zap.NewNop(), DecimalsFormatter(-1))

	var buf bytes.Buffer
	if err := w.WriteBins(&buf, nil); err != nil {
		t.Fatalf("write err: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("want empty output, got %q", buf.String())
	}
}

func TestDecimalsFormatter(t *testing.T) {
	shortest := DecimalsFormatter(-1)
	if got := shortest(1.0); got != "1" {
		t.Errorf("shortest of 1.0: got %q", got)
	}
	if got := shortest(-15.5); got != "-15.5" {
		t.Errorf("shortest of -15.5: got %q", got)
	}
	if got := shortest(math.NaN()); got != "NaN" {
		t.Errorf("shortest of NaN: got %q", got)
	}

	fixed := DecimalsFormatter(2)
	if got := fixed(1.5); got != "1.50" {
		t.Errorf("fixed of 1.5: got %q", got)
	}
}
