package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"studyflow/planner/types"
)

// fakeTaskGateway is an in-memory stand-in for the Supabase tasks table with
// switchable failure injection.
type fakeTaskGateway struct {
	mu     sync.Mutex
	remote []types.Task
	nextID int

	failList   bool
	failCreate bool
	failUpdate bool
	failDelete bool

	// beforeUpdate, when set, runs at the top of Update outside the lock so a
	// test can hold one write in flight while another completes.
	beforeUpdate func(types.TaskPatch)
}

func (g *fakeTaskGateway) List(_ context.Context, ownerID string) ([]types.Task, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failList {
		return nil, types.NewGatewayError("list tasks", errors.New("boom"))
	}
	var out []types.Task
	for _, t := range g.remote {
		if t.UserID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (g *fakeTaskGateway) Create(_ context.Context, ownerID string, draft types.TaskDraft) (types.Task, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failCreate {
		return types.Task{}, types.NewGatewayError("create task", errors.New("boom"))
	}
	g.nextID++
	task := types.Task{
		ID:          fmt.Sprintf("task-%d", g.nextID),
		UserID:      ownerID,
		Title:       draft.Title,
		Description: draft.Description,
		Date:        draft.Date,
		Notes:       draft.Notes,
		Priority:    draft.Priority,
		Duration:    draft.Duration,
		Category:    draft.Category,
	}
	g.remote = append(g.remote, task)
	return task, nil
}

func (g *fakeTaskGateway) Update(_ context.Context, id, ownerID string, patch types.TaskPatch) (types.Task, error) {
	if g.beforeUpdate != nil {
		g.beforeUpdate(patch)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failUpdate {
		return types.Task{}, types.NewGatewayError("update task", errors.New("boom"))
	}
	for i := range g.remote {
		if g.remote[i].ID == id && g.remote[i].UserID == ownerID {
			patch.Apply(&g.remote[i])
			return g.remote[i], nil
		}
	}
	return types.Task{}, types.NewGatewayError("update task", types.ErrNotFound)
}

func (g *fakeTaskGateway) Delete(_ context.Context, id, ownerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failDelete {
		return types.NewGatewayError("delete task", errors.New("boom"))
	}
	for i := range g.remote {
		if g.remote[i].ID == id && g.remote[i].UserID == ownerID {
			g.remote = append(g.remote[:i], g.remote[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTaskFixture(t *testing.T) (*TaskStore, *fakeTaskGateway) {
	t.Helper()
	gw := &fakeTaskGateway{}
	s := NewTaskStore(gw, "owner-1")
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s, gw
}

func mustAdd(t *testing.T, s *TaskStore, draft types.TaskDraft) types.Task {
	t.Helper()
	task, err := s.Add(context.Background(), draft)
	if err != nil {
		t.Fatalf("Add(%q): %v", draft.Title, err)
	}
	return task
}

func TestAddAssignsGatewayID(t *testing.T) {
	s, _ := newTaskFixture(t)
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)

	task := mustAdd(t, s, types.TaskDraft{Title: "Algebra", Date: date, Duration: 90})

	if strings.HasPrefix(task.ID, "temp-") {
		t.Fatalf("returned task still has temporary id %q", task.ID)
	}
	forDate := s.TasksForDate(date)
	if len(forDate) != 1 {
		t.Fatalf("TasksForDate returned %d tasks, want 1", len(forDate))
	}
	got := forDate[0]
	if got.ID != task.ID || got.Title != "Algebra" || got.Duration != 90 {
		t.Errorf("unexpected task in mirror: %+v", got)
	}
}

func TestAddRequiresOwner(t *testing.T) {
	s := NewTaskStore(&fakeTaskGateway{}, "")

	_, err := s.Add(context.Background(), types.TaskDraft{Title: "Algebra"})
	if !errors.Is(err, types.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
	if len(s.Tasks()) != 0 {
		t.Error("rejected add must not mutate the mirror")
	}
}

func TestAddRemovesTempEntryOnCreateFailure(t *testing.T) {
	s, gw := newTaskFixture(t)
	gw.failCreate = true

	_, err := s.Add(context.Background(), types.TaskDraft{Title: "Algebra", Date: time.Now()})
	if err == nil {
		t.Fatal("expected create failure")
	}
	if n := len(s.Tasks()); n != 0 {
		t.Errorf("mirror has %d tasks after failed create, want 0", n)
	}
}

func TestToggleCompleteIsInvolution(t *testing.T) {
	s, _ := newTaskFixture(t)
	task := mustAdd(t, s, types.TaskDraft{Title: "Physics", Date: time.Now()})

	once, err := s.ToggleComplete(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !once.Completed {
		t.Error("first toggle should complete the task")
	}

	twice, err := s.ToggleComplete(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if twice.Completed {
		t.Error("second toggle should return the task to incomplete")
	}
}

func TestPostponeTwiceAdvancesTwoWeeks(t *testing.T) {
	s, _ := newTaskFixture(t)
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)
	task := mustAdd(t, s, types.TaskDraft{Title: "History", Date: date})

	first, err := s.Postpone(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("first postpone: %v", err)
	}
	if !first.Postponed {
		t.Error("postponed flag not set after first postpone")
	}
	if want := date.AddDate(0, 0, 7); !first.Date.Equal(want) {
		t.Errorf("date after first postpone = %v, want %v", first.Date, want)
	}

	second, err := s.Postpone(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("second postpone: %v", err)
	}
	if !second.Postponed {
		t.Error("postponed flag must stay set")
	}
	if want := date.AddDate(0, 0, 14); !second.Date.Equal(want) {
		t.Errorf("date after second postpone = %v, want %v", second.Date, want)
	}
}

func TestUpdateNotesTouchesOnlyNotes(t *testing.T) {
	s, _ := newTaskFixture(t)
	task := mustAdd(t, s, types.TaskDraft{Title: "Reading", Date: time.Now(), Duration: 45})

	updated, err := s.UpdateNotes(context.Background(), task.ID, "chapter 3 done")
	if err != nil {
		t.Fatalf("UpdateNotes: %v", err)
	}
	if updated.Notes != "chapter 3 done" {
		t.Errorf("notes = %q", updated.Notes)
	}
	if updated.Title != "Reading" || updated.Duration != 45 {
		t.Errorf("unrelated fields changed: %+v", updated)
	}
}

func TestUpdateFailureResyncsWithGateway(t *testing.T) {
	s, gw := newTaskFixture(t)
	task := mustAdd(t, s, types.TaskDraft{Title: "Chemistry", Date: time.Now()})

	gw.failUpdate = true
	title := "X"
	if _, err := s.Update(context.Background(), task.ID, types.TaskPatch{Title: &title}); err == nil {
		t.Fatal("expected update failure")
	}
	gw.failUpdate = false

	// After the recovery step the mirror must match a fresh load.
	fresh, err := gw.List(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	local := s.Tasks()
	if len(local) != len(fresh) {
		t.Fatalf("mirror has %d tasks, gateway has %d", len(local), len(fresh))
	}
	for i := range fresh {
		if local[i].ID != fresh[i].ID || local[i].Title != fresh[i].Title {
			t.Errorf("mirror diverged at %d: local %+v, fresh %+v", i, local[i], fresh[i])
		}
	}
	if local[0].Title != "Chemistry" {
		t.Errorf("optimistic title survived the revert: %q", local[0].Title)
	}
}

func TestDeleteFailureRestoresCollection(t *testing.T) {
	s, gw := newTaskFixture(t)
	task := mustAdd(t, s, types.TaskDraft{Title: "Biology", Date: time.Now()})

	gw.failDelete = true
	if err := s.Delete(context.Background(), task.ID); err == nil {
		t.Fatal("expected delete failure")
	}
	if n := len(s.Tasks()); n != 1 {
		t.Errorf("mirror has %d tasks after failed delete, want 1", n)
	}
}

func TestDeleteMissingIsExplicitAndHarmless(t *testing.T) {
	s, _ := newTaskFixture(t)
	mustAdd(t, s, types.TaskDraft{Title: "Geometry", Date: time.Now()})

	err := s.Delete(context.Background(), "no-such-id")
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if n := len(s.Tasks()); n != 1 {
		t.Errorf("collection size changed to %d", n)
	}
}

func TestUpdateMissingIsExplicit(t *testing.T) {
	s, _ := newTaskFixture(t)

	title := "X"
	_, err := s.Update(context.Background(), "no-such-id", types.TaskPatch{Title: &title})
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestTasksForDateIgnoresTimeOfDay(t *testing.T) {
	s, _ := newTaskFixture(t)
	morning := time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local)
	evening := time.Date(2024, 5, 1, 21, 30, 0, 0, time.Local)
	nextDay := time.Date(2024, 5, 2, 0, 0, 0, 0, time.Local)

	mustAdd(t, s, types.TaskDraft{Title: "Early", Date: morning})
	mustAdd(t, s, types.TaskDraft{Title: "Late", Date: evening})
	mustAdd(t, s, types.TaskDraft{Title: "Tomorrow", Date: nextDay})

	got := s.TasksForDate(time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local))
	if len(got) != 2 {
		t.Fatalf("got %d tasks, want 2", len(got))
	}
}

func TestLoadFailureLeavesEmptyMirror(t *testing.T) {
	gw := &fakeTaskGateway{failList: true}
	s := NewTaskStore(gw, "owner-1")

	if err := s.Load(context.Background()); err == nil {
		t.Fatal("expected load failure")
	}
	if n := len(s.Tasks()); n != 0 {
		t.Errorf("mirror has %d tasks after failed load", n)
	}

	// Retry by loading again once the gateway recovers.
	gw.failList = false
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("retry load: %v", err)
	}
}

func TestOverlappingUpdatesSameTaskAreNotQueued(t *testing.T) {
	s, gw := newTaskFixture(t)
	task := mustAdd(t, s, types.TaskDraft{Title: "Essay", Date: time.Now()})

	slow := "First draft"
	fast := "Final draft"
	entered := make(chan struct{})
	release := make(chan struct{})
	gw.beforeUpdate = func(patch types.TaskPatch) {
		if patch.Title != nil && *patch.Title == slow {
			close(entered)
			<-release
		}
	}

	done := make(chan error, 1)
	go func() {
		_, err := s.Update(context.Background(), task.ID, types.TaskPatch{Title: &slow})
		done <- err
	}()
	<-entered

	if _, err := s.Update(context.Background(), task.ID, types.TaskPatch{Title: &fast}); err != nil {
		t.Fatalf("second update: %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first update: %v", err)
	}

	// Updates against one id are not serialized: the write still in flight
	// reaches the gateway after the wall-clock-later edit and overwrites it,
	// and its echo carries the same state back into the mirror.
	gw.mu.Lock()
	var remoteTitle string
	for _, rt := range gw.remote {
		if rt.ID == task.ID {
			remoteTitle = rt.Title
		}
	}
	gw.mu.Unlock()
	if remoteTitle != slow {
		t.Errorf("gateway title = %q, want last write %q", remoteTitle, slow)
	}
	if got := s.Tasks()[0].Title; got != slow {
		t.Errorf("mirror title = %q, want %q", got, slow)
	}
}
