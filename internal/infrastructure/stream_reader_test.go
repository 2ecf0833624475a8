package infrastructure

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"go.uber.org/zap"
)

func TestReadValuesParsesLines(t *testing.T) {
	r := NewStreamValueReader(zap.NewNop())

	got, err := r.ReadValues(strings.NewReader("1.0\n  2.5 \n-3\n"))
	if err != nil {
		t.Fatalf("read err: %v", err)
	}

	want := []float64{1.0, 2.5, -3.0}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadValuesSkipsUnparsableLines(t *testing.T) {
	r := NewStreamValueReader(zap.NewNop())

	got, err := r.ReadValues(strings.NewReader("1.0\nnot-a-number\n\n2.0\n"))
	if err != nil {
		t.Fatalf("read err: %v", err)
	}
	if len(got) != 2 || got[0] != 1.0 || got[1] != 2.0 {
		t.Fatalf("want [1 2], got %v", got)
	}
}

func TestReadValuesEmptyStream(t *testing.T) {
	r := NewStreamValueReader(zap.NewNop())

	got, err := r.ReadValues(strings.NewReader(""))
	if err != nil {
		t.Fatalf("read err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want no values, got %v", got)
	}
}

func TestReadValuesPropagatesStreamError(t *testing.T) {
	r := NewStreamValueReader(zap.NewNop())

	boom := errors.New("boom")
	if _, err := r.ReadValues(iotest.ErrReader(boom)); !errors.Is(err, boom) {
		t.Fatalf("want stream error, got %v", err)
	}
}
