package analytics

import (
	"time"

	"github.com/samber/lo"

	"github.com/gyaneshwarpardhi/loginsight/internal/dataset"
)

// Summary holds the headline figures of an event set. MeanPerProfessorInt
// is the same mean truncated toward zero.
type Summary struct {
	Events              int     `json:"events"`
	Professors          int     `json:"professors"`
	Programs            int     `json:"programs"`
	MeanPerProfessor    float64 `json:"mean_per_professor"`
	MeanPerProfessorInt int     `json:"mean_per_professor_int"`
}

func Summarize(events []dataset.LoginEvent) Summary {
	profs := len(lo.UniqBy(events, func(ev dataset.LoginEvent) string { return ev.ProfessorID }))
	programs := len(lo.UniqBy(events, func(ev dataset.LoginEvent) string { return ev.Program }))
	s := Summary{Events: len(events), Professors: profs, Programs: programs}
	if profs > 0 {
		s.MeanPerProfessor = round2(float64(len(events)) / float64(profs))
		s.MeanPerProfessorInt = len(events) / profs
	}
	return s
}

// DateStats describes the calendar dates covered by an event set.
type DateStats struct {
	First      string  `json:"first,omitempty"`
	Last       string  `json:"last,omitempty"`
	SpanDays   int     `json:"span_days"`
	Days       int     `json:"days"`
	MeanPerDay float64 `json:"mean_per_day"`
	MaxPerDay  int     `json:"max_per_day"`
	MinPerDay  int     `json:"min_per_day"`
}

// DateSpan computes DateStats. SpanDays counts both ends, so a single date
// spans one day.
func DateSpan(events []dataset.LoginEvent) DateStats {
	byDate := CountByDate(events)
	if len(byDate) == 0 {
		return DateStats{}
	}
	ds := DateStats{
		First:      byDate[0].Key,
		Last:       byDate[len(byDate)-1].Key,
		Days:       len(byDate),
		MeanPerDay: round2(float64(len(events)) / float64(len(byDate))),
		MaxPerDay:  lo.MaxBy(byDate, func(a, b Count) bool { return a.Count > b.Count }).Count,
		MinPerDay:  lo.MinBy(byDate, func(a, b Count) bool { return a.Count < b.Count }).Count,
	}
	first, err1 := time.Parse(time.DateOnly, ds.First)
	last, err2 := time.Parse(time.DateOnly, ds.Last)
	if err1 == nil && err2 == nil {
		ds.SpanDays = int(last.Sub(first).Hours()/24) + 1
	}
	return ds
}
