package analytics

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Stats describes a distribution of per-key counts.
type Stats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
	IQR    float64 `json:"iqr"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Describe summarizes values. StdDev is the sample standard deviation and is
// 0 for fewer than two values. Empty input gives the zero Stats.
func Describe(values []int) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	sorted := toFloats(values)
	slices.Sort(sorted)

	s := Stats{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Median: Quantile(sorted, 0.5),
		Q1:     Quantile(sorted, 0.25),
		Q3:     Quantile(sorted, 0.75),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	s.IQR = s.Q3 - s.Q1
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}

// Quantile returns the q-th quantile of sorted using linear interpolation
// between the closest ranks at position (n-1)*q. sorted must be ascending.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	q = math.Max(0, math.Min(1, q))
	pos := float64(n-1) * q
	low := int(math.Floor(pos))
	high := int(math.Ceil(pos))
	if low == high {
		return sorted[low]
	}
	frac := pos - float64(low)
	return sorted[low] + (sorted[high]-sorted[low])*frac
}

// CountValues extracts the counts of a ranking.
func CountValues(counts []Count) []int {
	out := make([]int, len(counts))
	for i, c := range counts {
		out[i] = c.Count
	}
	return out
}

func toFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
