package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauhanhernandes/portfolio/internal/contact"
	"github.com/kauhanhernandes/portfolio/internal/view"
)

type nopSender struct{}

func (nopSender) Send(ctx context.Context, serviceID, templateID string, payload contact.Payload, authKey string) (contact.Response, error) {
	return contact.Response{Status: contact.StatusAccepted}, nil
}

func newTestStore(ttl time.Duration) *Store {
	return NewStore(func(ch contact.Challenge, n contact.Notifier) *contact.Workflow {
		return contact.NewWorkflow(contact.Settings{Destination: "dest@example.com"}, nopSender{}, ch, n)
	}, ttl)
}

func TestStore_CreateAndGet(t *testing.T) {
	st := newTestStore(time.Hour)

	s := st.Create()
	require.NotEmpty(t, s.ID)
	assert.Equal(t, view.TabHome, s.ActiveTab())
	assert.Equal(t, contact.StatusIdle, s.Workflow.Status())
	assert.Equal(t, 1, st.Len())

	got, ok := st.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = st.Get("missing")
	assert.False(t, ok)
}

func TestStore_GetOrCreate(t *testing.T) {
	st := newTestStore(time.Hour)

	s, created := st.GetOrCreate("")
	assert.True(t, created)

	again, created := st.GetOrCreate(s.ID)
	assert.False(t, created)
	assert.Same(t, s, again)

	other, created := st.GetOrCreate("stale-cookie")
	assert.True(t, created)
	assert.NotEqual(t, s.ID, other.ID)
	assert.Equal(t, 2, st.Len())
}

func TestStore_Prune(t *testing.T) {
	st := newTestStore(time.Hour)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return base }

	old := st.Create()
	st.now = func() time.Time { return base.Add(50 * time.Minute) }
	fresh := st.Create()

	removed := st.Prune(base.Add(90 * time.Minute))
	assert.Equal(t, 1, removed)

	_, ok := st.Get(old.ID)
	assert.False(t, ok)
	_, ok = st.Get(fresh.ID)
	assert.True(t, ok)
}

type blockingSender struct {
	started chan struct{}
	release chan struct{}
}

func (b blockingSender) Send(ctx context.Context, serviceID, templateID string, payload contact.Payload, authKey string) (contact.Response, error) {
	b.started <- struct{}{}
	<-b.release
	return contact.Response{Status: contact.StatusAccepted}, nil
}

func TestStore_PruneKeepsPendingSessions(t *testing.T) {
	sender := blockingSender{started: make(chan struct{}, 1), release: make(chan struct{})}
	st := NewStore(func(ch contact.Challenge, n contact.Notifier) *contact.Workflow {
		return contact.NewWorkflow(contact.Settings{Destination: "dest@example.com"}, sender, ch, n)
	}, time.Hour)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return base }

	s := st.Create()
	require.NoError(t, s.Workflow.UpdateField(contact.FieldName, "Maria Silva"))
	require.NoError(t, s.Workflow.UpdateField(contact.FieldEmail, "maria@example.com"))
	require.NoError(t, s.Workflow.UpdateField(contact.FieldMessage, "Olá, gostaria de conversar"))
	s.Widget.Set("tok")

	done := make(chan contact.Outcome, 1)
	go func() { done <- s.Workflow.Submit(context.Background()) }()

	select {
	case <-sender.started:
	case <-time.After(time.Second):
		t.Fatal("submission never reached the sender")
	}

	assert.Equal(t, 0, st.Prune(base.Add(2*time.Hour)))
	_, ok := st.Get(s.ID)
	assert.True(t, ok)

	close(sender.release)
	assert.True(t, (<-done).Succeeded())

	assert.Equal(t, 1, st.Prune(base.Add(4*time.Hour)))
	assert.Equal(t, 0, st.Len())
}

func TestSession_SelectTab(t *testing.T) {
	st := newTestStore(time.Hour)
	s := st.Create()

	assert.Equal(t, view.TabProjects, s.SelectTab("projects"))
	assert.Equal(t, view.TabProjects, s.ActiveTab())

	assert.Equal(t, view.TabHome, s.SelectTab("blog"))
	assert.Equal(t, view.TabHome, s.ActiveTab())
}

func TestSession_StateDrainsToasts(t *testing.T) {
	st := newTestStore(time.Hour)
	s := st.Create()
	s.Toasts.NotifySuccess(contact.MessageSent)

	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	state := s.State("site-key", now)
	assert.Len(t, state.Toasts, 1)
	assert.Equal(t, "site-key", state.SiteKey)
	assert.Equal(t, 2025, state.Year)
	assert.False(t, state.Pending)

	assert.Empty(t, s.State("site-key", now).Toasts)
}
