package dashboard

import "github.com/gyaneshwarpardhi/loginsight/internal/analytics"

// Overview is the dataset summary page.
type Overview struct {
	Summary            analytics.Summary   `json:"summary"`
	TopPrograms        []analytics.Ranked  `json:"top_programs"`
	Programs           []analytics.Share   `json:"programs"`
	Months             []analytics.Share   `json:"months"`
	Dates              analytics.DateStats `json:"dates"`
	MedianPerProfessor float64             `json:"median_per_professor"`
	MaxPerProfessor    int                 `json:"max_per_professor"`
}

// MonthFocus is the slice of events picked by a month picker.
type MonthFocus struct {
	Month            string               `json:"month"`
	Events           int                  `json:"events"`
	Percent          float64              `json:"percent"`
	ActiveProfessors int                  `json:"active_professors"`
	Days             []analytics.IntCount `json:"days"`
	Hours            []analytics.IntCount `json:"hours,omitempty"`
	TopProfessors    []analytics.Count    `json:"top_professors,omitempty"`
}

// HourActivity is the hour-of-day histogram for one month picker value.
type HourActivity struct {
	Month string               `json:"month"`
	Hours []analytics.IntCount `json:"hours"`
	Bands []analytics.Share    `json:"bands"`
}

// Platform is the platform-wide analysis page.
type Platform struct {
	Summary     analytics.Summary  `json:"summary"`
	TopPrograms []analytics.Share  `json:"top_programs"`
	Focus       MonthFocus         `json:"focus"`
	Professors  []analytics.Ranked `json:"professors"`
	Hours       HourActivity       `json:"hours"`
}

// ProgramView is the drill-down page for a single program.
type ProgramView struct {
	Program             string                   `json:"program"`
	Events              int                      `json:"events"`
	Professors          int                      `json:"professors"`
	MeanPerProfessor    float64                  `json:"mean_per_professor"`
	MeanPerProfessorInt int                      `json:"mean_per_professor_int"`
	Percent             float64                  `json:"percent"`
	Ranking             []analytics.Ranked       `json:"ranking"`
	Heatmap             analytics.CrossTab       `json:"heatmap"`
	Focus               MonthFocus               `json:"focus"`
	Stats               analytics.Stats          `json:"stats"`
	Activity            analytics.Classification `json:"activity"`
}

// Bundle groups the views exported as one snapshot.
type Bundle struct {
	Selection analytics.Selection `json:"selection"`
	Overview  *Overview           `json:"overview"`
	Platform  *Platform           `json:"platform"`
	Programs  []*ProgramView      `json:"programs,omitempty"`
}
