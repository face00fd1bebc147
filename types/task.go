package types

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is a single study task bound to a calendar date. Only the date
// component matters for grouping; the time of day is ignored.
type Task struct {
	ID          string    `json:"id,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Completed   bool      `json:"completed"`
	Postponed   bool      `json:"postponed"`
	Notes       string    `json:"notes"`
	Priority    Priority  `json:"priority,omitempty"`
	Duration    int       `json:"duration,omitempty"` // minutes
	Category    string    `json:"category,omitempty"`
}

// TaskDraft is the user-supplied part of a task, before the gateway has
// assigned an id.
type TaskDraft struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes"`
	Priority    Priority  `json:"priority,omitempty"`
	Duration    int       `json:"duration,omitempty"`
	Category    string    `json:"category,omitempty"`
}

// TaskPatch is a partial task update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
	Postponed   *bool      `json:"postponed,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
	Duration    *int       `json:"duration,omitempty"`
	Category    *string    `json:"category,omitempty"`
}

// IsEmpty reports whether the patch would change nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Date == nil &&
		p.Completed == nil && p.Postponed == nil && p.Notes == nil &&
		p.Priority == nil && p.Duration == nil && p.Category == nil
}

// Apply merges the patch into a task.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Postponed != nil {
		t.Postponed = *p.Postponed
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
}

// Fields flattens the patch into column/value pairs for the gateway.
// Dates cross the boundary as RFC 3339 strings.
func (p TaskPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Date != nil {
		fields["date"] = p.Date.Format(time.RFC3339)
	}
	if p.Completed != nil {
		fields["completed"] = *p.Completed
	}
	if p.Postponed != nil {
		fields["postponed"] = *p.Postponed
	}
	if p.Notes != nil {
		fields["notes"] = *p.Notes
	}
	if p.Priority != nil {
		fields["priority"] = string(*p.Priority)
	}
	if p.Duration != nil {
		fields["duration"] = *p.Duration
	}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	return fields
}
