package analytics

import (
	"github.com/samber/lo"

	"github.com/gyaneshwarpardhi/loginsight/internal/dataset"
)

// Selection restricts events by month and program. An empty list places no
// restriction on its dimension.
type Selection struct {
	Months   []string `json:"months"`
	Programs []string `json:"programs"`
}

// IsZero reports whether the selection keeps every event.
func (s Selection) IsZero() bool {
	return len(s.Months) == 0 && len(s.Programs) == 0
}

// Filter keeps the events whose month and program both pass sel.
func Filter(events []dataset.LoginEvent, sel Selection) []dataset.LoginEvent {
	if sel.IsZero() {
		return events
	}
	months := toSet(sel.Months)
	programs := toSet(sel.Programs)
	return lo.Filter(events, func(ev dataset.LoginEvent, _ int) bool {
		if months != nil && !months[ev.Month] {
			return false
		}
		return programs == nil || programs[ev.Program]
	})
}

// ForMonth narrows events to one month. "" and dataset.AllMonths keep everything.
func ForMonth(events []dataset.LoginEvent, month string) []dataset.LoginEvent {
	if month == "" || month == dataset.AllMonths {
		return events
	}
	return lo.Filter(events, func(ev dataset.LoginEvent, _ int) bool {
		return ev.Month == month
	})
}

// ForProgram narrows events to one program.
func ForProgram(events []dataset.LoginEvent, program string) []dataset.LoginEvent {
	return lo.Filter(events, func(ev dataset.LoginEvent, _ int) bool {
		return ev.Program == program
	})
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	return lo.SliceToMap(values, func(v string) (string, bool) { return v, true })
}
