package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studyflow/planner/types"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// Tasks is the persistence gateway for the tasks table.
type Tasks struct {
	client *supabase.Client
}

func NewTasks(client *supabase.Client) *Tasks {
	return &Tasks{client: client}
}

type taskInsert struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Completed   bool   `json:"completed"`
	Postponed   bool   `json:"postponed"`
	Notes       string `json:"notes"`
	Priority    string `json:"priority,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	Category    string `json:"category,omitempty"`
}

func (g *Tasks) List(ctx context.Context, ownerID string) ([]types.Task, error) {
	resp, _, err := g.client.From("tasks").
		Select("*", "", false).
		Eq("user_id", ownerID).
		Order("date", &postgrest.OrderOpts{Ascending: true}).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, types.NewGatewayError("list tasks", err)
	}

	var tasks []types.Task
	if err := json.Unmarshal(resp, &tasks); err != nil {
		return nil, types.NewGatewayError("list tasks", fmt.Errorf("decode rows: %w", err))
	}
	return tasks, nil
}

func (g *Tasks) Create(ctx context.Context, ownerID string, draft types.TaskDraft) (types.Task, error) {
	row := taskInsert{
		UserID:      ownerID,
		Title:       draft.Title,
		Description: draft.Description,
		Date:        draft.Date.Format(time.RFC3339),
		Notes:       draft.Notes,
		Priority:    string(draft.Priority),
		Duration:    draft.Duration,
		Category:    draft.Category,
	}

	resp, _, err := g.client.From("tasks").
		Insert([]taskInsert{row}, false, "", "representation", "").
		ExecuteWithContext(ctx)
	if err != nil {
		return types.Task{}, types.NewGatewayError("create task", err)
	}

	var created []types.Task
	if err := json.Unmarshal(resp, &created); err != nil {
		return types.Task{}, types.NewGatewayError("create task", fmt.Errorf("decode row: %w", err))
	}
	if len(created) == 0 {
		return types.Task{}, types.NewGatewayError("create task", fmt.Errorf("no row returned"))
	}
	return created[0], nil
}

func (g *Tasks) Update(ctx context.Context, id, ownerID string, patch types.TaskPatch) (types.Task, error) {
	resp, _, err := g.client.From("tasks").
		Update(patch.Fields(), "representation", "").
		Eq("id", id).
		Eq("user_id", ownerID).
		ExecuteWithContext(ctx)
	if err != nil {
		return types.Task{}, types.NewGatewayError("update task", err)
	}

	var updated []types.Task
	if err := json.Unmarshal(resp, &updated); err != nil {
		return types.Task{}, types.NewGatewayError("update task", fmt.Errorf("decode row: %w", err))
	}
	if len(updated) == 0 {
		return types.Task{}, types.NewGatewayError("update task", types.ErrNotFound)
	}
	return updated[0], nil
}

func (g *Tasks) Delete(ctx context.Context, id, ownerID string) error {
	_, _, err := g.client.From("tasks").
		Delete("", "").
		Eq("id", id).
		Eq("user_id", ownerID).
		ExecuteWithContext(ctx)
	if err != nil {
		return types.NewGatewayError("delete task", err)
	}
	return nil
}
