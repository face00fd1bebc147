package store

import (
	"context"
	"testing"

	"studyflow/planner/config"
	"studyflow/planner/types"
)

func testGateways(tg TaskGateway, sg ScheduleGateway) Gateways {
	return func() (TaskGateway, ScheduleGateway) { return tg, sg }
}

func TestManagerReusesSessionPerOwner(t *testing.T) {
	m := NewManager()
	gws := testGateways(&fakeTaskGateway{}, newFakeScheduleGateway())

	first, err := m.Session(context.Background(), "owner-1", gws)
	if err != nil {
		t.Fatalf("first session: %v", err)
	}
	second, err := m.Session(context.Background(), "owner-1", gws)
	if err != nil {
		t.Fatalf("second session: %v", err)
	}
	if first != second {
		t.Error("same owner must get the same session")
	}

	other, err := m.Session(context.Background(), "owner-2", gws)
	if err != nil {
		t.Fatalf("other session: %v", err)
	}
	if other == first {
		t.Error("different owners must not share a session")
	}
}

func TestManagerCloseDiscardsStores(t *testing.T) {
	m := NewManager()
	gws := testGateways(&fakeTaskGateway{}, newFakeScheduleGateway())

	before, err := m.Session(context.Background(), "owner-1", gws)
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	m.Close("owner-1")

	after, err := m.Session(context.Background(), "owner-1", gws)
	if err != nil {
		t.Fatalf("session after close: %v", err)
	}
	if before == after {
		t.Error("closed session must be rebuilt, not reused")
	}
}

func TestManagerFailedLoadEvictsAndRetries(t *testing.T) {
	m := NewManager()
	tg := &fakeTaskGateway{failList: true}
	gws := testGateways(tg, newFakeScheduleGateway())

	if _, err := m.Session(context.Background(), "owner-1", gws); err == nil {
		t.Fatal("expected load failure")
	}

	tg.failList = false
	if _, err := m.Session(context.Background(), "owner-1", gws); err != nil {
		t.Fatalf("retry after gateway recovery: %v", err)
	}
}

func TestManagerSeedsStarterScheduleForNewOwner(t *testing.T) {
	m := NewManager()
	sg := newFakeScheduleGateway()
	gws := testGateways(&fakeTaskGateway{}, sg)

	sess, err := m.Session(context.Background(), "owner-1", gws)
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	want := len(config.DefaultDayTemplate())
	for day := types.Sunday; day <= types.Saturday; day++ {
		if got := len(sess.Schedule.EffectiveScheduleForDay(day)); got != want {
			t.Errorf("day %d has %d items, want %d", day, got, want)
		}
	}
	if got := len(sg.remote); got != want {
		t.Errorf("gateway holds %d rows, want %d", got, want)
	}
}

func TestManagerDoesNotReseedStoredSchedule(t *testing.T) {
	m := NewManager()
	sg := newFakeScheduleGateway()
	existing, err := sg.Create(context.Background(), "owner-1", types.ScheduleDraft{
		StartTime: "07:00", EndTime: "08:00", Title: "Morning run",
		DayOfWeek: []types.Weekday{types.Monday},
	})
	if err != nil {
		t.Fatalf("prepare gateway: %v", err)
	}

	sess, err := m.Session(context.Background(), "owner-1", testGateways(&fakeTaskGateway{}, sg))
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	if got := len(sg.remote); got != 1 {
		t.Fatalf("stored schedule was reseeded: %d rows", got)
	}
	items := sess.Schedule.EffectiveScheduleForDay(types.Monday)
	if len(items) != 1 || items[0].ID != existing.ID {
		t.Errorf("unexpected Monday schedule: %+v", items)
	}
}
