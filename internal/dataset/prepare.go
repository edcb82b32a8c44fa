package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// PrepareOptions tunes Prepare.
type PrepareOptions struct {
	// Location used to derive calendar fields. Nil means UTC.
	Location *time.Location
	// OnUnmappedMonth is called for every event whose month name has no
	// Spanish translation. The event keeps the English name.
	OnUnmappedMonth func(english string)
}

// PrepareStats describes what Prepare did with its input.
type PrepareStats struct {
	InputRows      int `json:"input_rows"`
	Rows           int `json:"rows"`
	DroppedRows    int `json:"dropped_rows"`
	UnmappedMonths int `json:"unmapped_months"`
}

// Prepare drops rows without a program and derives the calendar fields of
// the rest. A timestamp that is not a number fails the whole preparation.
func Prepare(records []RawRecord, opts PrepareOptions) ([]LoginEvent, PrepareStats, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	stats := PrepareStats{InputRows: len(records)}
	events := make([]LoginEvent, 0, len(records))

	for i, rec := range records {
		program := strings.TrimSpace(rec.Program)
		if program == "" {
			stats.DroppedRows++
			continue
		}
		raw := strings.TrimSpace(rec.Timestamp)
		secs, err := parseEpoch(raw)
		if err != nil {
			return nil, stats, fmt.Errorf("record %d: timecreated %q: %w", i+1, raw, err)
		}

		ev := newLoginEvent(strings.TrimSpace(rec.ProfessorID), program, secs, loc)
		month, ok := LocalizeMonth(ev.MonthEnglish)
		if !ok {
			stats.UnmappedMonths++
			if opts.OnUnmappedMonth != nil {
				opts.OnUnmappedMonth(ev.MonthEnglish)
			}
		}
		ev.Month = month
		events = append(events, ev)
	}

	stats.Rows = len(events)
	return events, stats, nil
}

// parseEpoch accepts integral seconds, and float seconds as written by
// spreadsheet exports ("1725148800.0").
func parseEpoch(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a unix timestamp")
	}
	return int64(math.Floor(f)), nil
}
