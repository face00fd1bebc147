package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"studyflow/planner/types"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// Schedule is the persistence gateway for the schedule_items table. Weekday
// keys are canonical numeric 0-6 (Sunday=0); this file is the only place
// that touches the row representation.
type Schedule struct {
	client *supabase.Client
}

func NewSchedule(client *supabase.Client) *Schedule {
	return &Schedule{client: client}
}

type scheduleInsert struct {
	UserID      string          `json:"user_id"`
	StartTime   string          `json:"start_time"`
	EndTime     string          `json:"end_time"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	DayOfWeek   []types.Weekday `json:"day_of_week"`
	IsRecurring bool            `json:"is_recurring"`
	Color       string          `json:"color,omitempty"`
}

// ListWeek fetches every schedule row for the owner and groups it by
// weekday: a recurring row lands under each weekday it covers, a one-off
// row under its single day. Each day's bucket is ordered by start time.
func (g *Schedule) ListWeek(ctx context.Context, ownerID string) (types.WeeklySchedule, error) {
	resp, _, err := g.client.From("schedule_items").
		Select("*", "", false).
		Eq("user_id", ownerID).
		Order("start_time", &postgrest.OrderOpts{Ascending: true}).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, types.NewGatewayError("list schedule", err)
	}

	var items []types.DailyScheduleItem
	if err := json.Unmarshal(resp, &items); err != nil {
		return nil, types.NewGatewayError("list schedule", fmt.Errorf("decode rows: %w", err))
	}

	week := types.WeeklySchedule{}
	for _, item := range items {
		for _, day := range item.DayOfWeek {
			if !day.Valid() {
				continue
			}
			week[day] = append(week[day], item)
		}
	}
	for day := range week {
		bucket := week[day]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].StartTime < bucket[j].StartTime
		})
	}
	return week, nil
}

func (g *Schedule) Create(ctx context.Context, ownerID string, draft types.ScheduleDraft) (types.DailyScheduleItem, error) {
	row := scheduleInsert{
		UserID:      ownerID,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		DayOfWeek:   draft.DayOfWeek,
		IsRecurring: draft.IsRecurring,
		Color:       draft.Color,
	}

	resp, _, err := g.client.From("schedule_items").
		Insert([]scheduleInsert{row}, false, "", "representation", "").
		ExecuteWithContext(ctx)
	if err != nil {
		return types.DailyScheduleItem{}, types.NewGatewayError("create schedule item", err)
	}

	var created []types.DailyScheduleItem
	if err := json.Unmarshal(resp, &created); err != nil {
		return types.DailyScheduleItem{}, types.NewGatewayError("create schedule item", fmt.Errorf("decode row: %w", err))
	}
	if len(created) == 0 {
		return types.DailyScheduleItem{}, types.NewGatewayError("create schedule item", fmt.Errorf("no row returned"))
	}
	return created[0], nil
}

func (g *Schedule) Update(ctx context.Context, id, ownerID string, patch types.SchedulePatch) error {
	resp, _, err := g.client.From("schedule_items").
		Update(patch.Fields(), "representation", "").
		Eq("id", id).
		Eq("user_id", ownerID).
		ExecuteWithContext(ctx)
	if err != nil {
		return types.NewGatewayError("update schedule item", err)
	}

	var updated []types.DailyScheduleItem
	if err := json.Unmarshal(resp, &updated); err != nil {
		return types.NewGatewayError("update schedule item", fmt.Errorf("decode row: %w", err))
	}
	if len(updated) == 0 {
		return types.NewGatewayError("update schedule item", types.ErrNotFound)
	}
	return nil
}

func (g *Schedule) Delete(ctx context.Context, id, ownerID string) error {
	_, _, err := g.client.From("schedule_items").
		Delete("", "").
		Eq("id", id).
		Eq("user_id", ownerID).
		ExecuteWithContext(ctx)
	if err != nil {
		return types.NewGatewayError("delete schedule item", err)
	}
	return nil
}
