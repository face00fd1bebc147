package views

import (
	"fmt"

	"studyflow/planner/types"
)

// Window is the visible part of a day's timeline.
type Window struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	SlotMinutes int    `json:"slot_minutes"`
}

// DefaultWindow is the 06:00-22:00 day at 30-minute granularity.
func DefaultWindow() Window {
	return Window{Start: "06:00", End: "22:00", SlotMinutes: 30}
}

// Block is an item's position on the timeline in proportional units,
// 1 minute = 1 unit. Items outside the window are not clipped; their
// coordinates simply fall off-canvas.
type Block struct {
	Top    int `json:"top"`
	Height int `json:"height"`
}

// Layout places one schedule item inside the window.
func Layout(item types.DailyScheduleItem, w Window) (Block, error) {
	windowStart, err := types.ParseClock(w.Start)
	if err != nil {
		return Block{}, err
	}
	start, err := types.ParseClock(item.StartTime)
	if err != nil {
		return Block{}, err
	}
	end, err := types.ParseClock(item.EndTime)
	if err != nil {
		return Block{}, err
	}
	return Block{Top: start - windowStart, Height: end - start}, nil
}

// Slots returns the window's tick labels, one per slot, including both ends.
func Slots(w Window) []string {
	start, err := types.ParseClock(w.Start)
	if err != nil {
		return nil
	}
	end, err := types.ParseClock(w.End)
	if err != nil || w.SlotMinutes <= 0 {
		return nil
	}

	var slots []string
	for m := start; m <= end; m += w.SlotMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// Style is the color treatment for a timeline block.
type Style struct {
	Color string `json:"color"`
}

var categoryStyles = map[string]Style{
	"study":    {Color: "#7c3aed"},
	"break":    {Color: "#3b82f6"},
	"exercise": {Color: "#10b981"},
	"review":   {Color: "#f59e0b"},
}

var defaultStyle = Style{Color: "#94a3b8"}

// StyleFor resolves an item's color: known categories use the fixed map,
// unknown ones fall back to the item-level override and then to the default.
func StyleFor(item types.DailyScheduleItem) Style {
	if style, ok := categoryStyles[item.Category]; ok {
		return style
	}
	if item.Color != "" {
		return Style{Color: item.Color}
	}
	return defaultStyle
}
