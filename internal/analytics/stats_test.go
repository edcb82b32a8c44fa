package analytics_test

import (
	"math"
	"testing"

	"github.com/gyaneshwarpardhi/loginsight/internal/analytics"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   analytics.Stats
	}{
		{
			name:   "empty",
			values: nil,
			want:   analytics.Stats{},
		},
		{
			name:   "single",
			values: []int{7},
			want:   analytics.Stats{Count: 1, Mean: 7, Median: 7, Q1: 7, Q3: 7, Min: 7, Max: 7},
		},
		{
			name:   "odd",
			values: []int{10, 1, 3, 2, 4},
			want: analytics.Stats{
				Count: 5, Mean: 4, Median: 3, Q1: 2, Q3: 4, IQR: 2,
				StdDev: math.Sqrt(12.5), Min: 1, Max: 10,
			},
		},
		{
			name:   "even interpolates",
			values: []int{4, 3, 2, 1},
			want: analytics.Stats{
				Count: 4, Mean: 2.5, Median: 2.5, Q1: 1.75, Q3: 3.25, IQR: 1.5,
				StdDev: math.Sqrt(5.0 / 3.0), Min: 1, Max: 4,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analytics.Describe(tt.values)
			if got.Count != tt.want.Count {
				t.Fatalf("Count = %d, want %d", got.Count, tt.want.Count)
			}
			fields := []struct {
				name      string
				got, want float64
			}{
				{"Mean", got.Mean, tt.want.Mean},
				{"Median", got.Median, tt.want.Median},
				{"Q1", got.Q1, tt.want.Q1},
				{"Q3", got.Q3, tt.want.Q3},
				{"IQR", got.IQR, tt.want.IQR},
				{"StdDev", got.StdDev, tt.want.StdDev},
				{"Min", got.Min, tt.want.Min},
				{"Max", got.Max, tt.want.Max},
			}
			for _, f := range fields {
				if !approx(f.got, f.want) {
					t.Errorf("%s = %v, want %v", f.name, f.got, f.want)
				}
			}
		})
	}
}

func TestDescribe_DoesNotReorderInput(t *testing.T) {
	values := []int{3, 1, 2}
	analytics.Describe(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("Describe reordered its input: %v", values)
	}
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	tests := []struct {
		q, want float64
	}{
		{0, 1}, {1, 10}, {0.5, 5.5}, {0.25, 3.25}, {0.75, 7.75}, {0.9, 9.1},
	}
	for _, tt := range tests {
		if got := analytics.Quantile(sorted, tt.q); !approx(got, tt.want) {
			t.Errorf("Quantile(%v) = %v, want %v", tt.q, got, tt.want)
		}
	}
	if got := analytics.Quantile(nil, 0.5); got != 0 {
		t.Errorf("Quantile(nil) = %v, want 0", got)
	}
}
