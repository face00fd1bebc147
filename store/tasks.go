package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"studyflow/planner/config"
	"studyflow/planner/types"

	"github.com/google/uuid"
)

// TaskStore is the local mirror of one owner's tasks. Mutations are applied
// optimistically and reconciled with the gateway: a failed create removes
// the temporary entry, any other failed mutation triggers a full re-fetch so
// the mirror never stays in a known-inconsistent state.
//
// Mutations against the same id are not serialized; two overlapping updates
// race at the gateway and the resync path is the consistency backstop.
type TaskStore struct {
	gw    TaskGateway
	owner string

	mu    sync.Mutex
	tasks []types.Task
}

func NewTaskStore(gw TaskGateway, ownerID string) *TaskStore {
	return &TaskStore{gw: gw, owner: ownerID}
}

// Load replaces the mirror with the gateway's collection. On failure the
// mirror is left empty; callers may retry by loading again.
func (s *TaskStore) Load(ctx context.Context) error {
	tasks, err := s.gw.List(ctx, s.owner)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.tasks = nil
		return err
	}
	s.tasks = tasks
	return nil
}

// Tasks returns a snapshot of the mirror in gateway order.
func (s *TaskStore) Tasks() []types.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.Task(nil), s.tasks...)
}

// TasksForDate returns tasks whose date falls on the same calendar day.
func (s *TaskStore) TasksForDate(date time.Time) []types.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []types.Task
	for _, t := range s.tasks {
		if sameCalendarDay(t.Date, date) {
			out = append(out, t)
		}
	}
	return out
}

// Add appends the draft under a temporary id, then swaps in the
// gateway-assigned entity. If the create fails, the temporary entry is
// removed again.
func (s *TaskStore) Add(ctx context.Context, draft types.TaskDraft) (types.Task, error) {
	if s.owner == "" {
		return types.Task{}, types.ErrUnauthenticated
	}
	if draft.Title == "" {
		return types.Task{}, fmt.Errorf("title is required")
	}

	tempID := "temp-" + uuid.NewString()
	temp := types.Task{
		ID:          tempID,
		UserID:      s.owner,
		Title:       draft.Title,
		Description: draft.Description,
		Date:        draft.Date,
		Notes:       draft.Notes,
		Priority:    draft.Priority,
		Duration:    draft.Duration,
		Category:    draft.Category,
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, temp)
	s.mu.Unlock()

	created, err := s.gw.Create(ctx, s.owner, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.removeLocked(tempID)
		return types.Task{}, err
	}
	if i := s.indexLocked(tempID); i >= 0 {
		s.tasks[i] = created
	} else {
		// The temp entry vanished while the create was in flight (a racing
		// resync can do that); keep the authoritative entity anyway.
		s.tasks = append(s.tasks, created)
	}
	return created, nil
}

// Update merges the patch optimistically, then confirms it at the gateway.
// On gateway failure the whole collection is re-fetched, discarding any
// other in-flight optimistic edits.
func (s *TaskStore) Update(ctx context.Context, id string, patch types.TaskPatch) (types.Task, error) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return types.Task{}, types.ErrNotFound
	}
	patch.Apply(&s.tasks[i])
	local := s.tasks[i]
	s.mu.Unlock()

	updated, err := s.gw.Update(ctx, id, s.owner, patch)
	if err != nil {
		s.resync(ctx)
		return types.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(id); i >= 0 {
		s.tasks[i] = updated
		return updated, nil
	}
	return local, nil
}

// Delete removes the task optimistically; a gateway failure restores the
// collection by re-fetching it.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.indexLocked(id) < 0 {
		s.mu.Unlock()
		return types.ErrNotFound
	}
	s.removeLocked(id)
	s.mu.Unlock()

	if err := s.gw.Delete(ctx, id, s.owner); err != nil {
		s.resync(ctx)
		return err
	}
	return nil
}

// ToggleComplete flips the completed flag. Applying it twice returns the
// task to its original state.
func (s *TaskStore) ToggleComplete(ctx context.Context, id string) (types.Task, error) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return types.Task{}, types.ErrNotFound
	}
	flipped := !s.tasks[i].Completed
	s.mu.Unlock()

	return s.Update(ctx, id, types.TaskPatch{Completed: &flipped})
}

// Postpone pushes the task one week out and marks it postponed. The
// original date is not kept anywhere.
func (s *TaskStore) Postpone(ctx context.Context, id string) (types.Task, error) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return types.Task{}, types.ErrNotFound
	}
	newDate := s.tasks[i].Date.AddDate(0, 0, 7)
	s.mu.Unlock()

	postponed := true
	return s.Update(ctx, id, types.TaskPatch{Date: &newDate, Postponed: &postponed})
}

// UpdateNotes is a partial update restricted to the notes field.
func (s *TaskStore) UpdateNotes(ctx context.Context, id, notes string) (types.Task, error) {
	return s.Update(ctx, id, types.TaskPatch{Notes: &notes})
}

// resync re-fetches the authoritative collection after a failed mutation.
// If the re-fetch itself fails the previous contents are kept and the
// problem is logged; the next successful load repairs the mirror.
func (s *TaskStore) resync(ctx context.Context) {
	tasks, err := s.gw.List(ctx, s.owner)
	if err != nil {
		config.Logger.Warn("task mirror resync failed: ", err)
		return
	}
	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
}

func (s *TaskStore) indexLocked(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskStore) removeLocked(id string) {
	if i := s.indexLocked(id); i >= 0 {
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	}
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
