package store

import (
	"context"
	"sync"

	"studyflow/planner/config"
)

// Session bundles the per-owner mirror stores. One Session exists per
// signed-in owner; it is built on the first authenticated request and
// discarded on logout.
type Session struct {
	Owner    string
	Tasks    *TaskStore
	Schedule *ScheduleStore

	loadOnce sync.Once
	loadErr  error
}

func (s *Session) load(ctx context.Context) error {
	s.loadOnce.Do(func() {
		if err := s.Tasks.Load(ctx); err != nil {
			s.loadErr = err
			return
		}
		if s.loadErr = s.Schedule.Load(ctx); s.loadErr != nil {
			return
		}
		// A brand-new owner starts from the default study day rather than a
		// blank week. Seeding is best effort; missing entries surface on the
		// next load.
		if err := s.Schedule.SeedDefaults(ctx, config.DefaultDayTemplate()); err != nil {
			config.Logger.Warn("starter schedule seed incomplete: ", err)
		}
	})
	return s.loadErr
}

// Gateways produces the gateway pair for a session, typically bound to the
// request's access token.
type Gateways func() (TaskGateway, ScheduleGateway)

// Manager caches sessions by owner id. There is no ambient global store:
// everything hangs off an explicit Session.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: map[string]*Session{}}
}

// Session returns the owner's session, constructing and loading it on first
// use. Concurrent first requests share one load; a failed load evicts the
// session so the next request can retry.
func (m *Manager) Session(ctx context.Context, owner string, gateways Gateways) (*Session, error) {
	m.mu.Lock()
	sess, ok := m.sessions[owner]
	if !ok {
		tg, sg := gateways()
		sess = &Session{
			Owner:    owner,
			Tasks:    NewTaskStore(tg, owner),
			Schedule: NewScheduleStore(sg, owner),
		}
		m.sessions[owner] = sess
	}
	m.mu.Unlock()

	if err := sess.load(ctx); err != nil {
		m.evict(owner, sess)
		return nil, err
	}
	return sess, nil
}

// Close tears down the owner's session. The next request rebuilds it from
// the gateway.
func (m *Manager) Close(owner string) {
	m.mu.Lock()
	delete(m.sessions, owner)
	m.mu.Unlock()
}

// evict removes the session only if it is still the cached one.
func (m *Manager) evict(owner string, sess *Session) {
	m.mu.Lock()
	if m.sessions[owner] == sess {
		delete(m.sessions, owner)
	}
	m.mu.Unlock()
}
