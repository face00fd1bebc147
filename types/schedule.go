package types

// Weekday is a canonical numeric weekday, Sunday = 0 through Saturday = 6.
// The gateway converts whatever the storage rows carry into this form; the
// rest of the code never sees any other day representation.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Valid reports whether d is in 0..6.
func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// DailyScheduleItem is one block in the weekly activity schedule. StartTime
// and EndTime are fixed-width zero-padded "HH:MM" 24h strings, so plain
// string comparison orders them correctly.
type DailyScheduleItem struct {
	ID          string    `json:"id,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	DayOfWeek   []Weekday `json:"day_of_week,omitempty"`
	IsRecurring bool      `json:"is_recurring,omitempty"`
	Color       string    `json:"color,omitempty"`
}

// ScheduleDraft is a schedule item before the gateway has assigned an id.
type ScheduleDraft struct {
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	DayOfWeek   []Weekday `json:"day_of_week,omitempty"`
	IsRecurring bool      `json:"is_recurring,omitempty"`
	Color       string    `json:"color,omitempty"`
}

// SchedulePatch is a partial schedule item update. Nil fields are left
// untouched; a non-nil DayOfWeek replaces the whole day set.
type SchedulePatch struct {
	StartTime   *string    `json:"start_time,omitempty"`
	EndTime     *string    `json:"end_time,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	DayOfWeek   *[]Weekday `json:"day_of_week,omitempty"`
	IsRecurring *bool      `json:"is_recurring,omitempty"`
	Color       *string    `json:"color,omitempty"`
}

func (p SchedulePatch) IsEmpty() bool {
	return p.StartTime == nil && p.EndTime == nil && p.Title == nil &&
		p.Description == nil && p.Category == nil && p.DayOfWeek == nil &&
		p.IsRecurring == nil && p.Color == nil
}

// Apply merges the patch into an item.
func (p SchedulePatch) Apply(item *DailyScheduleItem) {
	if p.StartTime != nil {
		item.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		item.EndTime = *p.EndTime
	}
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.DayOfWeek != nil {
		item.DayOfWeek = append([]Weekday(nil), (*p.DayOfWeek)...)
	}
	if p.IsRecurring != nil {
		item.IsRecurring = *p.IsRecurring
	}
	if p.Color != nil {
		item.Color = *p.Color
	}
}

// Fields flattens the patch into column/value pairs for the gateway.
func (p SchedulePatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.StartTime != nil {
		fields["start_time"] = *p.StartTime
	}
	if p.EndTime != nil {
		fields["end_time"] = *p.EndTime
	}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	if p.DayOfWeek != nil {
		fields["day_of_week"] = *p.DayOfWeek
	}
	if p.IsRecurring != nil {
		fields["is_recurring"] = *p.IsRecurring
	}
	if p.Color != nil {
		fields["color"] = *p.Color
	}
	return fields
}

// WeeklySchedule maps a weekday to that day's items, ordered by start time.
type WeeklySchedule map[Weekday][]DailyScheduleItem
