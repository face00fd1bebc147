package views

import (
	"time"

	"studyflow/planner/types"
)

// DefaultTaskMinutes is assumed for tasks without an explicit duration.
const DefaultTaskMinutes = 60

type Highlight string

const (
	HighlightNone     Highlight = ""
	HighlightHasTasks Highlight = "has-tasks"
	HighlightMedium   Highlight = "medium"
	HighlightHigh     Highlight = "high"
)

// CellAggregate is what a calendar cell shows for one date.
type CellAggregate struct {
	Count        int       `json:"count"`
	TotalMinutes int       `json:"total_minutes"`
	Highlight    Highlight `json:"highlight,omitempty"`
}

// Aggregate computes the cell for a date: task count, total planned minutes
// and the priority-derived highlight, where high beats medium beats mere
// presence.
func Aggregate(tasks []types.Task, date time.Time) CellAggregate {
	var cell CellAggregate
	for _, t := range tasks {
		if !sameDay(t.Date, date) {
			continue
		}
		cell.Count++
		minutes := t.Duration
		if minutes == 0 {
			minutes = DefaultTaskMinutes
		}
		cell.TotalMinutes += minutes

		switch t.Priority {
		case types.PriorityHigh:
			cell.Highlight = HighlightHigh
		case types.PriorityMedium:
			if cell.Highlight != HighlightHigh {
				cell.Highlight = HighlightMedium
			}
		default:
			if cell.Highlight == HighlightNone {
				cell.Highlight = HighlightHasTasks
			}
		}
	}
	return cell
}

// MonthAggregates computes a cell for every day of the month that has at
// least one task, keyed by "YYYY-MM-DD".
func MonthAggregates(tasks []types.Task, year int, month time.Month) map[string]CellAggregate {
	cells := map[string]CellAggregate{}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		if cell := Aggregate(tasks, day); cell.Count > 0 {
			cells[day.Format("2006-01-02")] = cell
		}
	}
	return cells
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
