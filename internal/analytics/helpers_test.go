package analytics_test

import (
	"fmt"

	"github.com/gyaneshwarpardhi/loginsight/internal/dataset"
)

func login(prof, program, month string, day, hour int) dataset.LoginEvent {
	return dataset.LoginEvent{
		ProfessorID: prof,
		Program:     program,
		Month:       month,
		Day:         day,
		Hour:        hour,
		Date:        fmt.Sprintf("2024-%02d-%02d", dataset.MonthIndex(month)+7, day),
	}
}

func repeat(n int, ev dataset.LoginEvent) []dataset.LoginEvent {
	out := make([]dataset.LoginEvent, n)
	for i := range out {
		out[i] = ev
	}
	return out
}

// scenario is five August logins for P1 in Medicina and two September
// logins for P2 in Derecho.
func scenario() []dataset.LoginEvent {
	events := repeat(5, login("P1", "Medicina", "Agosto", 5, 10))
	return append(events, repeat(2, login("P2", "Derecho", "Septiembre", 9, 20))...)
}
