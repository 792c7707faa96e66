package editor

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slideai/slideai-server/internal/catalog"
	"github.com/slideai/slideai-server/internal/deck"
	"github.com/slideai/slideai-server/internal/live"
	"github.com/slideai/slideai-server/internal/model"
	"github.com/slideai/slideai-server/internal/services"
	"github.com/slideai/slideai-server/internal/store/sqlite"
)

func testDeps(t *testing.T) (*services.PresentationService, *catalog.Catalog) {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return services.NewPresentationService(sqlite.New(db)), catalog.New()
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newTestManager(t *testing.T, debounce time.Duration) (*Manager, *services.PresentationService) {
	svc, cat := testDeps(t)
	hub := live.NewHub(zerolog.Nop())
	return NewManager(svc, cat, hub, fixedClock, debounce, zerolog.Nop()), svc
}

func TestSaveReconcilesSentinelID(t *testing.T) {
	m, svc := newTestManager(t, 0)
	ctx := context.Background()

	sess := m.Create("user-1", "My Deck")
	require.True(t, sess.Presentation().IsNew())

	saved, err := sess.Save(ctx)
	require.NoError(t, err)
	assert.False(t, saved.IsNew())
	assert.Equal(t, saved.ID, sess.Presentation().ID, "in-memory document adopts the assigned id")

	// Saving again must not mint another document.
	again, err := sess.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)

	all, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDispatchSerializesAndMutates(t *testing.T) {
	m, _ := newTestManager(t, 0)

	sess := m.Create("user-1", "Deck")
	st := sess.Dispatch(deck.AddSlide(model.Slide{ID: "slide-1"}, nil))
	require.Len(t, st.Presentation.Slides, 1)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			sess.Dispatch(deck.AddSlide(model.Slide{ID: "x"}, nil))
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	assert.Len(t, sess.Presentation().Slides, 9, "concurrent dispatches must not lose updates")
}

func TestAutosaveFiresAfterQuietPeriod(t *testing.T) {
	m, svc := newTestManager(t, 20*time.Millisecond)
	ctx := context.Background()

	sess := m.Create("user-1", "Deck")
	// First save assigns a real id so autosave has a stable document to write.
	saved, err := sess.Save(ctx)
	require.NoError(t, err)

	sess.Dispatch(deck.AddSlide(model.Slide{ID: "slide-1"}, nil))

	require.Eventually(t, func() bool {
		got, err := svc.Get(ctx, "user-1", saved.ID)
		return err == nil && len(got.Slides) == 1
	}, 2*time.Second, 10*time.Millisecond, "autosave should persist the slide")
}

func TestTransientActionsDoNotArmAutosave(t *testing.T) {
	m, _ := newTestManager(t, 5*time.Millisecond)

	sess := m.Create("user-1", "Deck")
	sess.Dispatch(deck.SetZoom(1.5))
	sess.Dispatch(deck.SetEditing(true))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, sess.Presentation().IsNew(), "no document mutation, no save")
}

func TestManagerOpenSharesSessions(t *testing.T) {
	m, svc := newTestManager(t, 0)
	ctx := context.Background()

	saved, err := svc.Save(ctx, "user-1", &model.Presentation{ID: "new", Title: "Shared"})
	require.NoError(t, err)

	a, err := m.Open(ctx, "user-1", saved.ID)
	require.NoError(t, err)
	b, err := m.Open(ctx, "user-1", saved.ID)
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = m.Open(ctx, "user-2", saved.ID)
	assert.ErrorIs(t, err, model.ErrNotFound, "sessions are owner-scoped")
}

func TestManagerPromote(t *testing.T) {
	m, _ := newTestManager(t, 0)
	ctx := context.Background()

	sess := m.Create("user-1", "Deck")
	saved, err := sess.Save(ctx)
	require.NoError(t, err)

	m.Promote("user-1", saved.ID)

	assert.Nil(t, m.Get("user-1", model.NewPresentationID))
	assert.Same(t, sess, m.Get("user-1", saved.ID))
}

func TestCloseFlushesPendingChanges(t *testing.T) {
	m, svc := newTestManager(t, time.Hour) // debounce far away; Close must flush anyway
	ctx := context.Background()

	sess := m.Create("user-1", "Deck")
	saved, err := sess.Save(ctx)
	require.NoError(t, err)

	sess.Dispatch(deck.AddSlide(model.Slide{ID: "slide-1"}, nil))
	require.NoError(t, m.Close(ctx, "user-1", model.NewPresentationID))

	got, err := svc.Get(ctx, "user-1", saved.ID)
	require.NoError(t, err)
	assert.Len(t, got.Slides, 1)
}

func TestDispatchPublishesSlideChanges(t *testing.T) {
	svc, cat := testDeps(t)
	hub := live.NewHub(zerolog.Nop())
	m := NewManager(svc, cat, hub, fixedClock, 0, zerolog.Nop())
	ctx := context.Background()

	sess := m.Create("user-1", "Deck")
	sess.Dispatch(deck.AddSlide(model.Slide{ID: "a"}, nil))
	sess.Dispatch(deck.AddSlide(model.Slide{ID: "b"}, nil))
	saved, err := sess.Save(ctx)
	require.NoError(t, err)

	events, cancel := hub.Subscribe(saved.ID)
	defer cancel()

	sess.Dispatch(deck.SetCurrentSlide(1))

	select {
	case ev := <-events:
		assert.Equal(t, live.EventSlideChanged, ev.Type)
		assert.JSONEq(t, `{"index":1}`, string(ev.Payload))
	case <-time.After(time.Second):
		t.Fatal("no slide-change event published")
	}
}
