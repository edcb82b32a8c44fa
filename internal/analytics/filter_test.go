package analytics_test

import (
	"reflect"
	"testing"

	"github.com/gyaneshwarpardhi/loginsight/internal/analytics"
	"github.com/gyaneshwarpardhi/loginsight/internal/dataset"
)

func TestFilter(t *testing.T) {
	events := []dataset.LoginEvent{
		login("p1", "Medicina", "Agosto", 1, 9),
		login("p2", "Derecho", "Agosto", 2, 10),
		login("p3", "Medicina", "Octubre", 3, 11),
		login("p4", "Derecho", "Diciembre", 4, 12),
	}
	tests := []struct {
		name string
		sel  analytics.Selection
		want []string
	}{
		{"empty selection keeps all", analytics.Selection{}, []string{"p1", "p2", "p3", "p4"}},
		{"month only", analytics.Selection{Months: []string{"Agosto"}}, []string{"p1", "p2"}},
		{"program only", analytics.Selection{Programs: []string{"Medicina"}}, []string{"p1", "p3"}},
		{"both", analytics.Selection{Months: []string{"Agosto", "Diciembre"}, Programs: []string{"Derecho"}}, []string{"p2", "p4"}},
		{"no match", analytics.Selection{Months: []string{"Julio"}}, nil},
		{"unknown program", analytics.Selection{Programs: []string{"Arquitectura"}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, ev := range analytics.Filter(events, tt.sel) {
				got = append(got, ev.ProfessorID)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_EmptySelectionReturnsInput(t *testing.T) {
	events := scenario()
	got := analytics.Filter(events, analytics.Selection{Months: []string{}, Programs: nil})
	if !reflect.DeepEqual(got, events) {
		t.Errorf("empty selection changed the events")
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	events := scenario()
	before := append([]dataset.LoginEvent(nil), events...)
	_ = analytics.Filter(events, analytics.Selection{Months: []string{"Septiembre"}})
	if !reflect.DeepEqual(events, before) {
		t.Errorf("Filter mutated its input")
	}
}

func TestForMonth(t *testing.T) {
	events := scenario()
	for _, all := range []string{"", dataset.AllMonths} {
		if got := analytics.ForMonth(events, all); len(got) != len(events) {
			t.Errorf("ForMonth(%q) = %d events, want %d", all, len(got), len(events))
		}
	}
	if got := analytics.ForMonth(events, "Septiembre"); len(got) != 2 {
		t.Errorf("ForMonth(Septiembre) = %d events, want 2", len(got))
	}
	if got := analytics.ForProgram(events, "Medicina"); len(got) != 5 {
		t.Errorf("ForProgram(Medicina) = %d events, want 5", len(got))
	}
}
