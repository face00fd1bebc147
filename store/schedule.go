package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"studyflow/planner/config"
	"studyflow/planner/types"

	"github.com/google/uuid"
)

type entryKind int

const (
	kindRecurring entryKind = iota
	kindOneOff
)

// entry tags each schedule item as either a recurring template (covers every
// weekday in its day set) or a one-off bound to a single day. Everything
// lives in one id-keyed collection; a derived day index answers per-day
// queries, so updates and deletes never scan two structures.
type entry struct {
	kind entryKind
	item types.DailyScheduleItem
}

func (e entry) days() []types.Weekday {
	return e.item.DayOfWeek
}

// ScheduleStore is the local mirror of one owner's weekly schedule. It has
// the same optimistic/resync contract as TaskStore.
type ScheduleStore struct {
	gw    ScheduleGateway
	owner string

	mu      sync.Mutex
	entries map[string]entry
	byDay   map[types.Weekday][]string
}

func NewScheduleStore(gw ScheduleGateway, ownerID string) *ScheduleStore {
	return &ScheduleStore{
		gw:      gw,
		owner:   ownerID,
		entries: map[string]entry{},
		byDay:   map[types.Weekday][]string{},
	}
}

// classify decides the representation for an item: an explicit recurring
// flag with at least one day makes a recurring entry; exactly one day with
// no flag makes a one-off; anything else falls back to recurring.
func classify(item types.DailyScheduleItem) entryKind {
	if item.IsRecurring && len(item.DayOfWeek) > 0 {
		return kindRecurring
	}
	if !item.IsRecurring && len(item.DayOfWeek) == 1 {
		return kindOneOff
	}
	return kindRecurring
}

// Load replaces the mirror with the gateway's week. On failure the mirror
// is left empty.
func (s *ScheduleStore) Load(ctx context.Context) error {
	week, err := s.gw.ListWeek(ctx, s.owner)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.entries = map[string]entry{}
		s.byDay = map[types.Weekday][]string{}
		return err
	}
	s.replaceLocked(week)
	return nil
}

// replaceLocked rebuilds the entry collection from a day-grouped week,
// deduplicating rows that appear under several day keys.
func (s *ScheduleStore) replaceLocked(week types.WeeklySchedule) {
	s.entries = map[string]entry{}
	for _, bucket := range week {
		for _, item := range bucket {
			if _, seen := s.entries[item.ID]; seen {
				continue
			}
			s.entries[item.ID] = entry{kind: classify(item), item: item}
		}
	}
	s.reindexLocked()
}

func (s *ScheduleStore) reindexLocked() {
	s.byDay = map[types.Weekday][]string{}
	for id, e := range s.entries {
		for _, day := range e.days() {
			if day.Valid() {
				s.byDay[day] = append(s.byDay[day], id)
			}
		}
	}
}

// EffectiveScheduleForDay returns the union of one-off items for the day and
// recurring items covering it, sorted by start time. No de-duplication is
// done beyond the id-keyed collection itself.
func (s *ScheduleStore) EffectiveScheduleForDay(day types.Weekday) []types.DailyScheduleItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dayLocked(day)
}

func (s *ScheduleStore) dayLocked(day types.Weekday) []types.DailyScheduleItem {
	ids := s.byDay[day]
	items := make([]types.DailyScheduleItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, s.entries[id].item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].StartTime != items[j].StartTime {
			return items[i].StartTime < items[j].StartTime
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// Week materializes the whole effective schedule, day by day.
func (s *ScheduleStore) Week() types.WeeklySchedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	week := types.WeeklySchedule{}
	for day := types.Sunday; day <= types.Saturday; day++ {
		if items := s.dayLocked(day); len(items) > 0 {
			week[day] = items
		}
	}
	return week
}

// AddItem validates and stores the draft optimistically, then reconciles
// the gateway-assigned entity under the representation chosen by classify.
func (s *ScheduleStore) AddItem(ctx context.Context, draft types.ScheduleDraft) (types.DailyScheduleItem, error) {
	if s.owner == "" {
		return types.DailyScheduleItem{}, types.ErrUnauthenticated
	}
	if err := types.ValidateTimeRange(draft.StartTime, draft.EndTime); err != nil {
		return types.DailyScheduleItem{}, err
	}
	for _, day := range draft.DayOfWeek {
		if !day.Valid() {
			return types.DailyScheduleItem{}, fmt.Errorf("weekday %d: %w", day, types.ErrInvalidWeekday)
		}
	}

	tempID := "temp-" + uuid.NewString()
	temp := types.DailyScheduleItem{
		ID:          tempID,
		UserID:      s.owner,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		DayOfWeek:   append([]types.Weekday(nil), draft.DayOfWeek...),
		IsRecurring: draft.IsRecurring,
		Color:       draft.Color,
	}

	s.mu.Lock()
	s.entries[tempID] = entry{kind: classify(temp), item: temp}
	s.reindexLocked()
	s.mu.Unlock()

	created, err := s.gw.Create(ctx, s.owner, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, tempID)
	if err != nil {
		s.reindexLocked()
		return types.DailyScheduleItem{}, err
	}
	s.entries[created.ID] = entry{kind: classify(created), item: created}
	s.reindexLocked()
	return created, nil
}

// SeedDefaults installs the starter study day for an owner whose stored
// week came back empty: each template item is created as a recurring entry
// covering every weekday. Owners with any stored item are left alone.
// Only entries the gateway confirmed end up in the mirror.
func (s *ScheduleStore) SeedDefaults(ctx context.Context, template []types.ScheduleDraft) error {
	s.mu.Lock()
	if len(s.entries) > 0 {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	allDays := make([]types.Weekday, 0, 7)
	for day := types.Sunday; day <= types.Saturday; day++ {
		allDays = append(allDays, day)
	}

	var firstErr error
	for _, draft := range template {
		bound := draft
		bound.DayOfWeek = append([]types.Weekday(nil), allDays...)
		bound.IsRecurring = true
		created, err := s.gw.Create(ctx, s.owner, bound)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.mu.Lock()
		s.entries[created.ID] = entry{kind: classify(created), item: created}
		s.reindexLocked()
		s.mu.Unlock()
	}
	return firstErr
}

// UpdateItem patches the entry in place, reclassifying it when the day set
// or recurring flag changed. A gateway failure triggers a full resync.
func (s *ScheduleStore) UpdateItem(ctx context.Context, id string, patch types.SchedulePatch) (types.DailyScheduleItem, error) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if !ok {
		s.mu.Unlock()
		return types.DailyScheduleItem{}, types.ErrNotFound
	}

	updated := e.item
	patch.Apply(&updated)
	if err := types.ValidateTimeRange(updated.StartTime, updated.EndTime); err != nil {
		s.mu.Unlock()
		return types.DailyScheduleItem{}, err
	}

	s.entries[id] = entry{kind: classify(updated), item: updated}
	s.reindexLocked()
	s.mu.Unlock()

	if err := s.gw.Update(ctx, id, s.owner, patch); err != nil {
		s.resync(ctx)
		return types.DailyScheduleItem{}, err
	}
	return updated, nil
}

// DeleteItem removes the entry. A missing id is reported explicitly and
// leaves the collection untouched.
func (s *ScheduleStore) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	if _, ok := s.entries[id]; !ok {
		s.mu.Unlock()
		return types.ErrNotFound
	}
	delete(s.entries, id)
	s.reindexLocked()
	s.mu.Unlock()

	if err := s.gw.Delete(ctx, id, s.owner); err != nil {
		s.resync(ctx)
		return err
	}
	return nil
}

// ApplyTemplateToDay replaces the day's one-off items with clones of the
// template, each under a fresh id. Recurring items covering the day are not
// touched and stay layered on top of the result.
func (s *ScheduleStore) ApplyTemplateToDay(ctx context.Context, template []types.ScheduleDraft, day types.Weekday) ([]types.DailyScheduleItem, error) {
	if s.owner == "" {
		return nil, types.ErrUnauthenticated
	}
	if !day.Valid() {
		return nil, fmt.Errorf("weekday %d: %w", day, types.ErrInvalidWeekday)
	}
	for _, draft := range template {
		if err := types.ValidateTimeRange(draft.StartTime, draft.EndTime); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	var removed []string
	for id, e := range s.entries {
		if e.kind == kindOneOff && len(e.days()) == 1 && e.days()[0] == day {
			removed = append(removed, id)
			delete(s.entries, id)
		}
	}

	tempIDs := make([]string, 0, len(template))
	for _, draft := range template {
		clone := types.DailyScheduleItem{
			ID:          "temp-" + uuid.NewString(),
			UserID:      s.owner,
			StartTime:   draft.StartTime,
			EndTime:     draft.EndTime,
			Title:       draft.Title,
			Description: draft.Description,
			Category:    draft.Category,
			DayOfWeek:   []types.Weekday{day},
			Color:       draft.Color,
		}
		s.entries[clone.ID] = entry{kind: kindOneOff, item: clone}
		tempIDs = append(tempIDs, clone.ID)
	}
	s.reindexLocked()
	s.mu.Unlock()

	// Remote pass: best effort, first error wins and a resync restores the
	// authoritative state.
	var firstErr error
	for _, id := range removed {
		if err := s.gw.Delete(ctx, id, s.owner); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for i, draft := range template {
		bound := draft
		bound.DayOfWeek = []types.Weekday{day}
		bound.IsRecurring = false
		created, err := s.gw.Create(ctx, s.owner, bound)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.mu.Lock()
		delete(s.entries, tempIDs[i])
		s.entries[created.ID] = entry{kind: classify(created), item: created}
		s.reindexLocked()
		s.mu.Unlock()
	}

	if firstErr != nil {
		s.resync(ctx)
		return nil, firstErr
	}
	return s.EffectiveScheduleForDay(day), nil
}

func (s *ScheduleStore) resync(ctx context.Context) {
	week, err := s.gw.ListWeek(ctx, s.owner)
	if err != nil {
		config.Logger.Warn("schedule mirror resync failed: ", err)
		return
	}
	s.mu.Lock()
	s.replaceLocked(week)
	s.mu.Unlock()
}
