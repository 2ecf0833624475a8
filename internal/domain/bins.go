package domain

import (
	"math"
	"sort"
)

// ComputeBins groups values into bins of width binWidth and returns one
// record per occupied bin, sorted by ascending center.
//
// Two values share a bin when floor(v/binWidth) agrees; the integer key
// avoids comparing computed edges for float equality. The reported center is
// anchored at binOrigin and is computed from the first value that opens the
// bin. Note the key is floor(v/binWidth), not floor((v-binOrigin)/binWidth):
// the origin shifts the reported centers but never regroups values.
//
// The function is total: NaN and infinite values flow through the same
// arithmetic and may produce NaN or infinite centers, never a panic.
func ComputeBins(values []float64, binWidth, binOrigin float64) []Bin {
	// Grouping key -> position in bins, first occurrence order.
	index := make(map[int64]int, len(values))
	bins := make([]Bin, 0, len(values))

	for _, val := range values {
		id := int64(math.Floor(val / binWidth))
		if i, ok := index[id]; ok {
			bins[i].Count++
			continue
		}
		index[id] = len(bins)
		bins = append(bins, Bin{
			Center: binWidth*(math.Floor((val-binOrigin)/binWidth)+0.5) + binOrigin,
			Count:  1,
		})
	}

	// Centers may be NaN; an ordinary < comparator reports false for any
	// NaN pair, which ranks incomparable centers as equal. The stable sort
	// keeps their first-occurrence order.
	sort.SliceStable(bins, func(i, j int) bool {
		return bins[i].Center < bins[j].Center
	})

	return bins
}
