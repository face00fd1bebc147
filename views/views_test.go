package views

import (
	"testing"
	"time"

	"studyflow/planner/types"
)

func TestAggregateCountsAndSumsDurations(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)
	tasks := []types.Task{
		{Title: "Algebra", Date: date, Duration: 90},
		{Title: "Lunch break", Date: date, Duration: 30},
		{Title: "Other day", Date: date.AddDate(0, 0, 1), Duration: 120},
	}

	cell := Aggregate(tasks, date)
	if cell.Count != 2 {
		t.Errorf("count = %d, want 2", cell.Count)
	}
	if cell.TotalMinutes != 120 {
		t.Errorf("total minutes = %d, want 120", cell.TotalMinutes)
	}
}

func TestAggregateDefaultsMissingDurationToOneHour(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)
	tasks := []types.Task{
		{Title: "No duration", Date: date},
		{Title: "Short", Date: date, Duration: 15},
	}

	cell := Aggregate(tasks, date)
	if cell.TotalMinutes != 75 {
		t.Errorf("total minutes = %d, want 75", cell.TotalMinutes)
	}
}

func TestAggregateHighlightPrecedence(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)

	cases := []struct {
		name  string
		tasks []types.Task
		want  Highlight
	}{
		{"empty", nil, HighlightNone},
		{"plain", []types.Task{{Date: date}}, HighlightHasTasks},
		{"medium beats plain", []types.Task{{Date: date}, {Date: date, Priority: types.PriorityMedium}}, HighlightMedium},
		{"high beats medium", []types.Task{{Date: date, Priority: types.PriorityMedium}, {Date: date, Priority: types.PriorityHigh}}, HighlightHigh},
		{"high first stays high", []types.Task{{Date: date, Priority: types.PriorityHigh}, {Date: date, Priority: types.PriorityMedium}}, HighlightHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Aggregate(tc.tasks, date).Highlight; got != tc.want {
				t.Errorf("highlight = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMonthAggregatesSkipsEmptyDays(t *testing.T) {
	tasks := []types.Task{
		{Title: "A", Date: time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local), Duration: 90},
		{Title: "B", Date: time.Date(2024, 5, 1, 15, 0, 0, 0, time.Local), Duration: 30},
		{Title: "C", Date: time.Date(2024, 5, 20, 9, 0, 0, 0, time.Local)},
	}

	cells := MonthAggregates(tasks, 2024, time.May)
	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(cells))
	}
	first := cells["2024-05-01"]
	if first.Count != 2 || first.TotalMinutes != 120 {
		t.Errorf("2024-05-01 = %+v", first)
	}
	if _, ok := cells["2024-05-02"]; ok {
		t.Error("empty day produced a cell")
	}
}

func TestLayoutWithinDefaultWindow(t *testing.T) {
	block, err := Layout(types.DailyScheduleItem{StartTime: "08:00", EndTime: "09:30"}, DefaultWindow())
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if block.Top != 120 {
		t.Errorf("top = %d, want 120", block.Top)
	}
	if block.Height != 90 {
		t.Errorf("height = %d, want 90", block.Height)
	}
}

func TestLayoutDoesNotClipOutsideWindow(t *testing.T) {
	block, err := Layout(types.DailyScheduleItem{StartTime: "05:00", EndTime: "05:45"}, DefaultWindow())
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if block.Top != -60 {
		t.Errorf("top = %d, want -60", block.Top)
	}
	if block.Height != 45 {
		t.Errorf("height = %d, want 45", block.Height)
	}
}

func TestLayoutRejectsMalformedClock(t *testing.T) {
	if _, err := Layout(types.DailyScheduleItem{StartTime: "8am", EndTime: "09:00"}, DefaultWindow()); err == nil {
		t.Error("expected error for malformed start time")
	}
}

func TestSlotsCoverTheWindow(t *testing.T) {
	slots := Slots(DefaultWindow())
	if len(slots) != 33 {
		t.Fatalf("got %d slots, want 33", len(slots))
	}
	if slots[0] != "06:00" {
		t.Errorf("first slot = %q", slots[0])
	}
	if slots[len(slots)-1] != "22:00" {
		t.Errorf("last slot = %q", slots[len(slots)-1])
	}
	if slots[1] != "06:30" {
		t.Errorf("second slot = %q", slots[1])
	}
}

func TestStyleForCategoryAndOverrides(t *testing.T) {
	study := StyleFor(types.DailyScheduleItem{Category: "study", Color: "#000000"})
	if study.Color != "#7c3aed" {
		t.Errorf("known category must use the fixed map, got %q", study.Color)
	}

	custom := StyleFor(types.DailyScheduleItem{Category: "music", Color: "#123456"})
	if custom.Color != "#123456" {
		t.Errorf("unknown category must honor the item override, got %q", custom.Color)
	}

	fallback := StyleFor(types.DailyScheduleItem{Category: "music"})
	if fallback.Color != defaultStyle.Color {
		t.Errorf("unknown category without override must use the default, got %q", fallback.Color)
	}
}
