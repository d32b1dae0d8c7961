// Package session keeps per-visitor UI state in memory, keyed by a cookie id.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kauhanhernandes/portfolio/internal/contact"
	"github.com/kauhanhernandes/portfolio/internal/notify"
	"github.com/kauhanhernandes/portfolio/internal/service"
	"github.com/kauhanhernandes/portfolio/internal/view"
)

// WorkflowFactory builds the contact workflow for a new session.
type WorkflowFactory func(challenge contact.Challenge, notifier contact.Notifier) *contact.Workflow

// Session is one visitor's view of the site.
type Session struct {
	ID       string
	Workflow *contact.Workflow
	Widget   *service.RecaptchaWidget
	Toasts   *notify.Queue

	mu       sync.Mutex
	active   view.Tab
	lastSeen time.Time
}

// ActiveTab returns the section the visitor last selected.
func (s *Session) ActiveTab() view.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SelectTab makes tab the visible section. Unknown ids fall back to the default tab.
func (s *Session) SelectTab(id string) view.Tab {
	tab, _ := view.ParseTab(id)
	s.mu.Lock()
	s.active = tab
	s.mu.Unlock()
	return tab
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}

// State snapshots the session for rendering. Pending toasts are consumed.
func (s *Session) State(siteKey string, now time.Time) view.State {
	return view.State{
		Active:  s.ActiveTab(),
		Form:    s.Workflow.Form(),
		Pending: s.Workflow.Status() == contact.StatusPending,
		Toasts:  s.Toasts.Drain(),
		SiteKey: siteKey,
		Year:    now.Year(),
	}
}

// Store holds live sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	factory  WorkflowFactory
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an empty store. Sessions idle longer than ttl are pruned.
func NewStore(factory WorkflowFactory, ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		factory:  factory,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the session with the given id and marks it as seen.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}
	s.touch(st.now())
	return s, true
}

// Create starts a new session on the home tab.
func (st *Store) Create() *Session {
	widget := service.NewRecaptchaWidget()
	toasts := notify.NewQueue()
	s := &Session{
		ID:       uuid.New().String(),
		Workflow: st.factory(widget, toasts),
		Widget:   widget,
		Toasts:   toasts,
		active:   view.DefaultTab,
		lastSeen: st.now(),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// GetOrCreate returns the session for id, or a fresh one when id is unknown.
// The second result reports whether a session was created.
func (st *Store) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if s, ok := st.Get(id); ok {
			return s, false
		}
	}
	return st.Create(), true
}

// Prune drops sessions idle past the ttl and returns how many were removed.
// Sessions with a submission in flight are kept.
func (st *Store) Prune(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if !s.expired(now, st.ttl) {
			continue
		}
		if s.Workflow.Status() == contact.StatusPending {
			continue
		}
		delete(st.sessions, id)
		removed++
	}
	return removed
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
