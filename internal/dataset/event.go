package dataset

import "time"

// RawRecord is one row of the source CSV before preparation.
// Program is empty when the source value was missing.
type RawRecord struct {
	ProfessorID string
	Program     string
	Timestamp   string
}

// LoginEvent is a prepared login row. Derived fields are filled once at load
// time and never change afterwards.
type LoginEvent struct {
	ProfessorID  string    `json:"professor_id"`
	Program      string    `json:"program"`
	Timestamp    int64     `json:"timestamp"`
	Time         time.Time `json:"-"`
	Date         string    `json:"date"`
	Clock        string    `json:"time"`
	Weekday      string    `json:"weekday"`
	MonthEnglish string    `json:"month_en"`
	Month        string    `json:"month"` // localized
	Hour         int       `json:"hour"`
	Day          int       `json:"day"`
}

func newLoginEvent(professorID, program string, secs int64, loc *time.Location) LoginEvent {
	t := time.Unix(secs, 0).In(loc)
	return LoginEvent{
		ProfessorID:  professorID,
		Program:      program,
		Timestamp:    secs,
		Time:         t,
		Date:         t.Format("2006-01-02"),
		Clock:        t.Format("15:04:05"),
		Weekday:      t.Weekday().String(),
		MonthEnglish: t.Month().String(),
		Hour:         t.Hour(),
		Day:          t.Day(),
	}
}
