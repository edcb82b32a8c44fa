package analytics_test

import (
	"reflect"
	"testing"

	"github.com/gyaneshwarpardhi/loginsight/internal/analytics"
	"github.com/gyaneshwarpardhi/loginsight/internal/dataset"
)

func TestScenario_AugustFilter(t *testing.T) {
	filtered := analytics.Filter(scenario(), analytics.Selection{Months: []string{"Agosto"}})

	programs := analytics.CountByProgram(filtered)
	if got := analytics.Total(programs); got != 5 {
		t.Errorf("program counts sum to %d, want 5", got)
	}

	wantMonths := []analytics.Count{
		{Key: "Julio", Count: 0},
		{Key: "Agosto", Count: 5},
		{Key: "Septiembre", Count: 0},
		{Key: "Octubre", Count: 0},
		{Key: "Noviembre", Count: 0},
		{Key: "Diciembre", Count: 0},
	}
	if got := analytics.CountByMonth(filtered); !reflect.DeepEqual(got, wantMonths) {
		t.Errorf("CountByMonth = %v, want %v", got, wantMonths)
	}

	wantProfs := []analytics.Count{{Key: "P1", Count: 5}}
	if got := analytics.CountByProfessor(filtered); !reflect.DeepEqual(got, wantProfs) {
		t.Errorf("CountByProfessor = %v, want %v", got, wantProfs)
	}
}

func TestScenario_EmptyInput(t *testing.T) {
	var events []dataset.LoginEvent

	if got := analytics.CountByProgram(events); len(got) != 0 {
		t.Errorf("CountByProgram = %v", got)
	}
	if got := analytics.CountByProfessor(events); len(got) != 0 {
		t.Errorf("CountByProfessor = %v", got)
	}
	if got := analytics.CountByHour(events); len(got) != 0 {
		t.Errorf("CountByHour = %v", got)
	}
	if got := analytics.CountByDay(events); len(got) != 0 {
		t.Errorf("CountByDay = %v", got)
	}
	months := analytics.CountByMonth(events)
	if len(months) != 6 {
		t.Fatalf("CountByMonth should keep 6 entries, got %d", len(months))
	}
	for _, m := range months {
		if m.Count != 0 {
			t.Errorf("month %s = %d, want 0", m.Key, m.Count)
		}
	}
	for _, s := range analytics.Shares(months) {
		if s.Percent != 0 {
			t.Errorf("share of %s = %v, want 0", s.Key, s.Percent)
		}
	}
	if s := analytics.Summarize(events); s != (analytics.Summary{}) {
		t.Errorf("Summarize = %+v", s)
	}
	if d := analytics.DateSpan(events); d != (analytics.DateStats{}) {
		t.Errorf("DateSpan = %+v", d)
	}
	if ct := analytics.CrossTabProfessorByMonth(events, 10); len(ct.Rows) != 0 || len(ct.Months) != 6 {
		t.Errorf("CrossTab = %+v", ct)
	}
}

func TestCountByProgram_TiesByKey(t *testing.T) {
	events := []dataset.LoginEvent{
		login("p1", "Medicina", "Julio", 1, 8),
		login("p1", "Derecho", "Julio", 1, 8),
		login("p1", "Arquitectura", "Julio", 1, 8),
		login("p1", "Medicina", "Julio", 1, 8),
	}
	want := []analytics.Count{
		{Key: "Medicina", Count: 2},
		{Key: "Arquitectura", Count: 1},
		{Key: "Derecho", Count: 1},
	}
	if got := analytics.CountByProgram(events); !reflect.DeepEqual(got, want) {
		t.Errorf("CountByProgram = %v, want %v", got, want)
	}
}

func TestCountByMonth_IgnoresUnmappedMonths(t *testing.T) {
	events := []dataset.LoginEvent{
		login("p1", "Medicina", "Julio", 1, 8),
		{ProfessorID: "p2", Program: "Medicina", Month: "Enero"},
		{ProfessorID: "p3", Program: "Medicina", Month: "August"},
	}
	months := analytics.CountByMonth(events)
	if analytics.Total(months) != 1 || months[0].Count != 1 {
		t.Errorf("CountByMonth = %v", months)
	}
	if len(months) != len(dataset.CanonicalMonths) {
		t.Errorf("expected %d months, got %d", len(dataset.CanonicalMonths), len(months))
	}
	if got := analytics.Total(months); got == len(events) {
		t.Errorf("out-of-period events were counted: total %d", got)
	}
}

func TestCountByHourAndDay(t *testing.T) {
	events := []dataset.LoginEvent{
		login("p1", "Medicina", "Julio", 15, 23),
		login("p1", "Medicina", "Julio", 3, 7),
		login("p2", "Medicina", "Agosto", 15, 7),
	}
	wantHours := []analytics.IntCount{{Key: 7, Count: 2}, {Key: 23, Count: 1}}
	if got := analytics.CountByHour(events); !reflect.DeepEqual(got, wantHours) {
		t.Errorf("CountByHour = %v, want %v", got, wantHours)
	}
	wantDays := []analytics.IntCount{{Key: 3, Count: 1}, {Key: 15, Count: 2}}
	if got := analytics.CountByDay(events); !reflect.DeepEqual(got, wantDays) {
		t.Errorf("CountByDay = %v, want %v", got, wantDays)
	}
}

func TestShares(t *testing.T) {
	got := analytics.Shares([]analytics.Count{{Key: "a", Count: 1}, {Key: "b", Count: 2}})
	want := []analytics.Share{
		{Key: "a", Count: 1, Percent: 33.33},
		{Key: "b", Count: 2, Percent: 66.67},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Shares = %v, want %v", got, want)
	}
}

func TestRank(t *testing.T) {
	got := analytics.Rank([]analytics.Count{{Key: "x", Count: 3}, {Key: "y", Count: 1}})
	want := []analytics.Ranked{
		{Rank: 1, Key: "x", Count: 3, Percent: 75},
		{Rank: 2, Key: "y", Count: 1, Percent: 25},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank = %v, want %v", got, want)
	}
}

func TestTopN(t *testing.T) {
	items := []int{5, 4, 3}
	tests := []struct {
		n    int
		want int
	}{
		{-1, 3}, {0, 3}, {1, 1}, {2, 2}, {3, 3}, {10, 3},
	}
	for _, tt := range tests {
		if got := analytics.TopN(items, tt.n); len(got) != tt.want {
			t.Errorf("TopN(%d) len = %d, want %d", tt.n, len(got), tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	got := analytics.Summarize(scenario())
	want := analytics.Summary{Events: 7, Professors: 2, Programs: 2, MeanPerProfessor: 3.5, MeanPerProfessorInt: 3}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
}

func TestDateSpan(t *testing.T) {
	got := analytics.DateSpan(scenario())
	want := analytics.DateStats{
		First:      "2024-08-05",
		Last:       "2024-09-09",
		SpanDays:   36,
		Days:       2,
		MeanPerDay: 3.5,
		MaxPerDay:  5,
		MinPerDay:  2,
	}
	if got != want {
		t.Errorf("DateSpan = %+v, want %+v", got, want)
	}
}

func TestCountByHourBand(t *testing.T) {
	events := []dataset.LoginEvent{
		login("p", "m", "Julio", 1, 0),
		login("p", "m", "Julio", 1, 5),
		login("p", "m", "Julio", 1, 6),
		login("p", "m", "Julio", 1, 8),
		login("p", "m", "Julio", 1, 9),
		login("p", "m", "Julio", 1, 18),
		login("p", "m", "Julio", 1, 19),
		login("p", "m", "Julio", 1, 22),
		login("p", "m", "Julio", 1, 23),
	}
	want := []analytics.Count{
		{Key: "active", Count: 2},
		{Key: "moderate", Count: 4},
		{Key: "low", Count: 3},
	}
	if got := analytics.CountByHourBand(events); !reflect.DeepEqual(got, want) {
		t.Errorf("CountByHourBand = %v, want %v", got, want)
	}
}

func TestCrossTabProfessorByMonth(t *testing.T) {
	events := append(scenario(),
		login("P2", "Derecho", "Diciembre", 1, 9),
		login("P3", "Derecho", "Julio", 1, 9),
	)
	ct := analytics.CrossTabProfessorByMonth(events, 2)
	if !reflect.DeepEqual(ct.Months, dataset.CanonicalMonths) {
		t.Errorf("Months = %v", ct.Months)
	}
	want := []analytics.CrossTabRow{
		{ProfessorID: "P1", Total: 5, Counts: []int{0, 5, 0, 0, 0, 0}},
		{ProfessorID: "P2", Total: 3, Counts: []int{0, 0, 2, 0, 0, 1}},
	}
	if !reflect.DeepEqual(ct.Rows, want) {
		t.Errorf("Rows = %+v, want %+v", ct.Rows, want)
	}
}
