package analytics

import (
	"cmp"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/gyaneshwarpardhi/loginsight/internal/dataset"
)

// CountByProgram ranks programs by number of logins.
func CountByProgram(events []dataset.LoginEvent) []Count {
	return ranking(lo.CountValuesBy(events, func(ev dataset.LoginEvent) string { return ev.Program }))
}

// CountByProfessor ranks professors by number of logins.
func CountByProfessor(events []dataset.LoginEvent) []Count {
	return ranking(lo.CountValuesBy(events, func(ev dataset.LoginEvent) string { return ev.ProfessorID }))
}

// CountByMonth returns one entry per canonical month, in calendar order,
// including months with no logins. Events whose month falls outside July to
// December are not counted, so the counts sum to len(events) only when every
// event is inside the reporting period.
func CountByMonth(events []dataset.LoginEvent) []Count {
	out := make([]Count, len(dataset.CanonicalMonths))
	for i, m := range dataset.CanonicalMonths {
		out[i].Key = m
	}
	for _, ev := range events {
		if i := dataset.MonthIndex(ev.Month); i >= 0 {
			out[i].Count++
		}
	}
	return out
}

// CountByHour returns the hours of day that have logins, ascending.
func CountByHour(events []dataset.LoginEvent) []IntCount {
	return series(lo.CountValuesBy(events, func(ev dataset.LoginEvent) int { return ev.Hour }))
}

// CountByDay returns the days of month that have logins, ascending.
func CountByDay(events []dataset.LoginEvent) []IntCount {
	return series(lo.CountValuesBy(events, func(ev dataset.LoginEvent) int { return ev.Day }))
}

// CountByDate returns logins per calendar date, ascending.
func CountByDate(events []dataset.LoginEvent) []Count {
	counts := lo.CountValuesBy(events, func(ev dataset.LoginEvent) string { return ev.Date })
	out := make([]Count, 0, len(counts))
	for k, v := range counts {
		out = append(out, Count{Key: k, Count: v})
	}
	slices.SortFunc(out, func(a, b Count) int { return cmp.Compare(a.Key, b.Key) })
	return out
}

// Total sums the counts.
func Total(counts []Count) int {
	return lo.SumBy(counts, func(c Count) int { return c.Count })
}

// Shares attaches each entry's percentage of the sum, rounded to two
// decimals. A zero total gives zero percentages.
func Shares(counts []Count) []Share {
	total := Total(counts)
	out := make([]Share, len(counts))
	for i, c := range counts {
		out[i] = Share{Key: c.Key, Count: c.Count, Percent: Percent(c.Count, total)}
	}
	return out
}

// Rank numbers a ranking from 1 and attaches shares.
func Rank(counts []Count) []Ranked {
	return RankShares(Shares(counts))
}

// RankShares numbers already computed shares from 1. Use it to rank a top-N
// slice while keeping percentages relative to the full set.
func RankShares(shares []Share) []Ranked {
	out := make([]Ranked, len(shares))
	for i, s := range shares {
		out[i] = Ranked{Rank: i + 1, Key: s.Key, Count: s.Count, Percent: s.Percent}
	}
	return out
}

// TopN returns the first n entries. n <= 0 or n >= len(items) returns items.
func TopN[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n]
}

// Percent is part/total*100 rounded to two decimals, or 0 when total is 0.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}

func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}

// ranking orders by count descending, then key ascending.
func ranking(counts map[string]int) []Count {
	out := make([]Count, 0, len(counts))
	for k, v := range counts {
		out = append(out, Count{Key: k, Count: v})
	}
	slices.SortFunc(out, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}

func series(counts map[int]int) []IntCount {
	out := make([]IntCount, 0, len(counts))
	for k, v := range counts {
		out = append(out, IntCount{Key: k, Count: v})
	}
	slices.SortFunc(out, func(a, b IntCount) int { return cmp.Compare(a.Key, b.Key) })
	return out
}
