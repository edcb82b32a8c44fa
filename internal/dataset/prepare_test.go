package dataset

import (
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"
)

const (
	aug1 = 1722470400 // 2024-08-01 00:00:00 UTC, a Thursday
	sep1 = 1725148800 // 2024-09-01 00:00:00 UTC
)

func TestPrepare_DerivesCalendarFields(t *testing.T) {
	events, stats, err := Prepare([]RawRecord{
		{ProfessorID: "p1", Program: "Ingeniería de Sistemas", Timestamp: "1722504615"},
	}, PrepareOptions{})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if stats.Rows != 1 || stats.DroppedRows != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	ev := events[0]
	want := LoginEvent{
		ProfessorID:  "p1",
		Program:      "Ingeniería de Sistemas",
		Timestamp:    1722504615,
		Date:         "2024-08-01",
		Clock:        "09:30:15",
		Weekday:      "Thursday",
		MonthEnglish: "August",
		Month:        "Agosto",
		Hour:         9,
		Day:          1,
	}
	ev.Time = time.Time{}
	if !reflect.DeepEqual(ev, want) {
		t.Errorf("got %+v\nwant %+v", ev, want)
	}
}

func TestPrepare_DropsMissingProgram(t *testing.T) {
	records := []RawRecord{
		{ProfessorID: "p1", Program: "Medicina", Timestamp: "1722470400"},
		{ProfessorID: "p2", Program: "", Timestamp: "1722470400"},
		{ProfessorID: "p3", Program: "   ", Timestamp: "1722470400"},
		{ProfessorID: "p4", Program: "Derecho", Timestamp: "1725148800"},
	}
	events, stats, err := Prepare(records, PrepareOptions{})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if stats.DroppedRows != 2 || stats.InputRows != 4 {
		t.Errorf("unexpected stats %+v", stats)
	}
	for _, ev := range events {
		if ev.Program == "" {
			t.Errorf("event with empty program survived: %+v", ev)
		}
	}
}

func TestPrepare_MissingProgramIsCheckedBeforeTimestamp(t *testing.T) {
	// Dropped rows are never parsed, so a garbage timestamp on them is harmless.
	_, stats, err := Prepare([]RawRecord{{ProfessorID: "p1", Timestamp: "garbage"}}, PrepareOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.DroppedRows != 1 {
		t.Errorf("expected 1 dropped row, got %d", stats.DroppedRows)
	}
}

func TestPrepare_BadTimestampFails(t *testing.T) {
	cases := []string{"", "yesterday", "NaN", "12:00"}
	for _, ts := range cases {
		t.Run(ts, func(t *testing.T) {
			_, _, err := Prepare([]RawRecord{{ProfessorID: "p1", Program: "Medicina", Timestamp: ts}}, PrepareOptions{})
			if err == nil {
				t.Fatalf("expected error for timestamp %q", ts)
			}
			if !strings.Contains(err.Error(), "record 1") {
				t.Errorf("error should name the record, got %v", err)
			}
		})
	}
}

func TestPrepare_FloatTimestamp(t *testing.T) {
	events, _, err := Prepare([]RawRecord{{ProfessorID: "p1", Program: "Medicina", Timestamp: "1725148800.0"}}, PrepareOptions{})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if events[0].Month != "Septiembre" || events[0].Timestamp != sep1 {
		t.Errorf("unexpected event %+v", events[0])
	}
}

func TestPrepare_Location(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	events, _, err := Prepare([]RawRecord{{ProfessorID: "p1", Program: "Medicina", Timestamp: strconv.Itoa(aug1)}},
		PrepareOptions{Location: bogota})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	ev := events[0]
	if ev.Month != "Julio" || ev.Day != 31 || ev.Hour != 19 {
		t.Errorf("expected 2024-07-31 19h in COT, got %s %dh (%s)", ev.Date, ev.Hour, ev.Month)
	}
}

func TestPrepare_Deterministic(t *testing.T) {
	records := []RawRecord{
		{ProfessorID: "b", Program: "Medicina", Timestamp: "1725148800"},
		{ProfessorID: "a", Program: "Derecho", Timestamp: "1722470400"},
	}
	first, _, err := Prepare(records, PrepareOptions{})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	second, _, _ := Prepare(records, PrepareOptions{})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Prepare is not deterministic")
	}
	if first[0].ProfessorID != "b" || first[1].ProfessorID != "a" {
		t.Errorf("input order not preserved: %v", first)
	}
}

func TestPrepare_UnmappedMonthHook(t *testing.T) {
	saved := spanishMonths["August"]
	delete(spanishMonths, "August")
	defer func() { spanishMonths["August"] = saved }()

	var seen []string
	events, stats, err := Prepare([]RawRecord{
		{ProfessorID: "p1", Program: "Medicina", Timestamp: "1722470400"},
		{ProfessorID: "p2", Program: "Medicina", Timestamp: "1725148800"},
	}, PrepareOptions{OnUnmappedMonth: func(name string) { seen = append(seen, name) }})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if events[0].Month != "August" {
		t.Errorf("unmapped month should pass through, got %q", events[0].Month)
	}
	if events[1].Month != "Septiembre" {
		t.Errorf("mapped month changed: %q", events[1].Month)
	}
	if stats.UnmappedMonths != 1 || len(seen) != 1 || seen[0] != "August" {
		t.Errorf("hook not reported: stats=%+v seen=%v", stats, seen)
	}
}

func TestLocalizeMonth(t *testing.T) {
	if got, ok := LocalizeMonth("December"); !ok || got != "Diciembre" {
		t.Errorf("LocalizeMonth(December) = %q, %v", got, ok)
	}
	if got, ok := LocalizeMonth("Smarch"); ok || got != "Smarch" {
		t.Errorf("LocalizeMonth(Smarch) = %q, %v", got, ok)
	}
}

func TestSortMonths(t *testing.T) {
	names := []string{"Diciembre", "Zzz", "Agosto", "Enero", "Julio"}
	SortMonths(names)
	want := []string{"Julio", "Agosto", "Diciembre", "Enero", "Zzz"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("SortMonths = %v, want %v", names, want)
	}
}
