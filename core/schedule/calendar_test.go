package schedule

import (
	"testing"
	"time"
)

// twoCourseCalendar: "Excel" on 2025-07-01..10, "Power BI" on 2025-07-11..20,
// one module per day, 100 points per course. Milestones: 2025-06-30 -> 0,
// 2025-07-10 -> 100, 2025-07-20 -> 200.
func twoCourseCalendar() *Calendar {
	modules := []string{"M1", "M2", "M3", "M4", "M5", "M6", "M7", "M8", "M9", "M10"}
	entries := make([]Entry, 0, 20)
	for i, m := range modules {
		entries = append(entries, Entry{Date: Day(2025, time.July, 1+i), Course: "Excel", Module: m})
	}
	for i, m := range modules {
		entries = append(entries, Entry{Date: Day(2025, time.July, 11+i), Course: "Power BI", Module: m})
	}
	return New(entries, 100)
}

func TestCalendar_ExpectedPoints(t *testing.T) {
	cal := twoCourseCalendar()

	tests := []struct {
		name string
		day  time.Time
		want float64
	}{
		{"before program start", Day(2025, time.June, 15), 0},
		{"synthetic start milestone", Day(2025, time.June, 30), 0},
		{"first teaching day", Day(2025, time.July, 1), 10},
		{"mid first course", Day(2025, time.July, 5), 50},
		{"first course end", Day(2025, time.July, 10), 100},
		{"mid second course", Day(2025, time.July, 15), 150},
		{"program end", Day(2025, time.July, 20), 200},
		{"after program end", Day(2025, time.August, 1), 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.ExpectedPoints(tt.day); got != tt.want {
				t.Errorf("ExpectedPoints(%s) = %v, want %v", FormatDay(tt.day), got, tt.want)
			}
		})
	}
}

func TestCalendar_ExpectedPoints_monotonic(t *testing.T) {
	cal := twoCourseCalendar()

	prev := -1.0
	for d := Day(2025, time.June, 25); d.Before(Day(2025, time.July, 25)); d = d.AddDate(0, 0, 1) {
		got := cal.ExpectedPoints(d)
		if got < prev {
			t.Fatalf("ExpectedPoints(%s) = %v, decreased from %v", FormatDay(d), got, prev)
		}
		prev = got
	}
}

func TestCalendar_ExpectedPoints_ignoresTimeOfDay(t *testing.T) {
	cal := twoCourseCalendar()

	noon := time.Date(2025, time.July, 5, 12, 30, 0, 0, time.UTC)
	if got := cal.ExpectedPoints(noon); got != 50 {
		t.Errorf("ExpectedPoints(noon) = %v, want 50", got)
	}
}

func TestCalendar_empty(t *testing.T) {
	cal := New(nil, 100)

	if got := cal.ExpectedPoints(Day(2025, time.July, 5)); got != 0 {
		t.Errorf("ExpectedPoints() = %v, want 0", got)
	}
	if got := len(cal.Milestones()); got != 0 {
		t.Errorf("len(Milestones()) = %d, want 0", got)
	}
	if got := cal.TotalMaxPoints(); got != 0 {
		t.Errorf("TotalMaxPoints() = %d, want 0", got)
	}
}

func TestCalendar_Milestones(t *testing.T) {
	cal := twoCourseCalendar()

	want := []Milestone{
		{Date: Day(2025, time.June, 30), Points: 0},
		{Date: Day(2025, time.July, 10), Points: 100},
		{Date: Day(2025, time.July, 20), Points: 200},
	}
	got := cal.Milestones()
	if len(got) != len(want) {
		t.Fatalf("len(Milestones()) = %d, want %d", len(got), len(want))
	}
	for i, m := range want {
		if !got[i].Date.Equal(m.Date) || got[i].Points != m.Points {
			t.Errorf("Milestones()[%d] = %v, want %v", i, got[i], m)
		}
	}
}

func TestCalendar_courseAndModuleOrder(t *testing.T) {
	cal := twoCourseCalendar()

	courses := cal.Courses()
	if len(courses) != 2 || courses[0] != "Excel" || courses[1] != "Power BI" {
		t.Errorf("Courses() = %v, want [Excel, Power BI]", courses)
	}
	if got := cal.ModuleNumber("Excel", "M3"); got != 3 {
		t.Errorf("ModuleNumber(Excel, M3) = %d, want 3", got)
	}
	if got := cal.ModuleNumber("Power BI", "M10"); got != 10 {
		t.Errorf("ModuleNumber(Power BI, M10) = %d, want 10", got)
	}
	if got := cal.ModuleNumber("Excel", "nope"); got != 0 {
		t.Errorf("ModuleNumber(Excel, nope) = %d, want 0", got)
	}
	if got := cal.TotalMaxPoints(); got != 200 {
		t.Errorf("TotalMaxPoints() = %d, want 200", got)
	}
}

func TestCalendar_Processed(t *testing.T) {
	cal := twoCourseCalendar()

	today := Day(2025, time.July, 3)
	entries := cal.Processed(today)
	if len(entries) != 20 {
		t.Fatalf("len(Processed()) = %d, want 20", len(entries))
	}

	var currentDays int
	for _, e := range entries {
		if e.IsCurrentDay {
			currentDays++
			if !e.Date.Equal(today) {
				t.Errorf("IsCurrentDay set on %s", FormatDay(e.Date))
			}
		}
	}
	if currentDays != 1 {
		t.Errorf("IsCurrentDay count = %d, want 1", currentDays)
	}

	// third teaching day of Excel: module 3, expected 30
	e := entries[2]
	if e.ModuleNumber != 3 || e.ExpectedPoints != 30 {
		t.Errorf("entries[2] = {module %d, expected %v}, want {3, 30}", e.ModuleNumber, e.ExpectedPoints)
	}
}
