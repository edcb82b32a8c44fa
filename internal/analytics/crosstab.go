package analytics

import "github.com/gyaneshwarpardhi/loginsight/internal/dataset"

// CrossTabRow is one professor's logins per canonical month.
type CrossTabRow struct {
	ProfessorID string `json:"professor_id"`
	Total       int    `json:"total"`
	Counts      []int  `json:"counts"`
}

// CrossTab is a professor x month matrix. Counts in each row line up with Months.
type CrossTab struct {
	Months []string      `json:"months"`
	Rows   []CrossTabRow `json:"rows"`
}

// CrossTabProfessorByMonth builds the matrix for the n most active
// professors, most active first. n <= 0 keeps every professor.
func CrossTabProfessorByMonth(events []dataset.LoginEvent, n int) CrossTab {
	top := TopN(CountByProfessor(events), n)
	rows := make([]CrossTabRow, len(top))
	index := make(map[string]int, len(top))
	for i, c := range top {
		rows[i] = CrossTabRow{
			ProfessorID: c.Key,
			Total:       c.Count,
			Counts:      make([]int, len(dataset.CanonicalMonths)),
		}
		index[c.Key] = i
	}
	for _, ev := range events {
		i, ok := index[ev.ProfessorID]
		if !ok {
			continue
		}
		if m := dataset.MonthIndex(ev.Month); m >= 0 {
			rows[i].Counts[m]++
		}
	}
	return CrossTab{
		Months: append([]string(nil), dataset.CanonicalMonths...),
		Rows:   rows,
	}
}
