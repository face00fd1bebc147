package config

import "studyflow/planner/types"

// DefaultDayTemplate is the starter study day offered to new users and to
// the apply-template action. Items carry no days; callers bind them to a
// weekday when applying.
func DefaultDayTemplate() []types.ScheduleDraft {
	return []types.ScheduleDraft{
		{StartTime: "08:00", EndTime: "09:30", Title: "Mathematics", Description: "Calculus review", Category: "study"},
		{StartTime: "09:45", EndTime: "11:15", Title: "Physics", Description: "Mechanics problem set", Category: "study"},
		{StartTime: "11:30", EndTime: "12:30", Title: "Lunch", Description: "Meal and rest break", Category: "break"},
		{StartTime: "13:00", EndTime: "14:30", Title: "Literature", Description: "Assigned reading", Category: "study"},
		{StartTime: "14:45", EndTime: "16:15", Title: "History", Description: "Lecture notes review", Category: "study"},
		{StartTime: "16:30", EndTime: "17:30", Title: "Exercise", Description: "Physical activity to clear the mind", Category: "exercise"},
		{StartTime: "18:00", EndTime: "19:30", Title: "Daily review", Description: "Recap of the day's material", Category: "review"},
	}
}
