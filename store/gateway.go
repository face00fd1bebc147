package store

import (
	"context"

	"studyflow/planner/types"
)

// TaskGateway is the remote CRUD boundary for tasks. Calls may fail with a
// transport or validation error; the stores never retry automatically.
type TaskGateway interface {
	List(ctx context.Context, ownerID string) ([]types.Task, error)
	Create(ctx context.Context, ownerID string, draft types.TaskDraft) (types.Task, error)
	Update(ctx context.Context, id, ownerID string, patch types.TaskPatch) (types.Task, error)
	Delete(ctx context.Context, id, ownerID string) error
}

// ScheduleGateway is the remote CRUD boundary for schedule items. ListWeek
// returns the schedule already grouped by canonical numeric weekday.
type ScheduleGateway interface {
	ListWeek(ctx context.Context, ownerID string) (types.WeeklySchedule, error)
	Create(ctx context.Context, ownerID string, draft types.ScheduleDraft) (types.DailyScheduleItem, error)
	Update(ctx context.Context, id, ownerID string, patch types.SchedulePatch) error
	Delete(ctx context.Context, id, ownerID string) error
}
