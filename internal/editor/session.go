// Package editor hosts server-side editing sessions. A session serializes
// reducer dispatches for one open presentation, autosaves the document after a
// quiet period, and publishes live events for followers.
package editor

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/slideai/slideai-server/internal/deck"
	"github.com/slideai/slideai-server/internal/live"
	"github.com/slideai/slideai-server/internal/model"
	"github.com/slideai/slideai-server/internal/services"
)

const saveTimeout = 10 * time.Second

// Session owns the editing state of one presentation for one owner. All
// methods are safe for concurrent use; dispatches are applied one at a time,
// so the reducer's no-interleaving contract holds even under concurrent HTTP
// requests.
type Session struct {
	ownerID string

	mu        sync.Mutex
	state     deck.State
	dirty     bool
	saveTimer *time.Timer

	svc      *services.PresentationService
	hub      *live.Hub
	clock    deck.Clock
	debounce time.Duration
	log      zerolog.Logger
}

// NewSession wraps a loaded (or freshly created) presentation in a session.
// hub may be nil when live following is disabled.
func NewSession(ownerID string, p *model.Presentation, svc *services.PresentationService, hub *live.Hub, clock deck.Clock, debounce time.Duration, log zerolog.Logger) *Session {
	st := deck.NewState()
	st.Presentation = p
	return &Session{
		ownerID:  ownerID,
		state:    st,
		svc:      svc,
		hub:      hub,
		clock:    clock,
		debounce: debounce,
		log:      log,
	}
}

// State returns a snapshot of the current editor state.
func (s *Session) State() deck.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Presentation returns the current document.
func (s *Session) Presentation() *model.Presentation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Presentation
}

// Dispatch applies one action and returns the resulting state. Document
// mutations arm the debounced autosave; slide navigation is published to
// live followers.
func (s *Session) Dispatch(a deck.Action) deck.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state.Presentation
	s.state = deck.Reduce(s.state, a, s.clock())
	next := s.state.Presentation

	if next != nil && next != prev {
		s.dirty = true
		s.armAutosaveLocked()
	}

	if a.Type == deck.ActionSetCurrentSlide && s.hub != nil && next != nil && !next.IsNew() {
		payload, _ := json.Marshal(map[string]int{"index": next.CurrentSlideIndex})
		s.hub.Publish(live.Event{
			Type:           live.EventSlideChanged,
			PresentationID: next.ID,
			Payload:        payload,
		})
	}

	return s.state
}

// Save persists the document immediately, replacing the unsaved sentinel id
// with the store-assigned one. Saving an already-clean session is a no-op
// that still returns the current document.
func (s *Session) Save(ctx context.Context) (*model.Presentation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *Session) saveLocked(ctx context.Context) (*model.Presentation, error) {
	p := s.state.Presentation
	if p == nil {
		return nil, model.ErrValidation
	}
	if s.saveTimer != nil {
		s.saveTimer.Stop()
		s.saveTimer = nil
	}

	saved, err := s.svc.Save(ctx, s.ownerID, p)
	if err != nil {
		return nil, err
	}
	s.dirty = false

	// Reconcile the sentinel id: the in-memory document adopts the id the
	// store assigned. Saving again is idempotent from here on.
	if p.IsNew() {
		reconciled := p.Clone()
		reconciled.ID = saved.ID
		s.state.Presentation = reconciled
	}

	if s.hub != nil {
		s.hub.Publish(live.Event{Type: live.EventSaved, PresentationID: saved.ID})
	}
	return saved, nil
}

// armAutosaveLocked (re)starts the quiet-period timer. Every further
// mutation pushes the save out again, so a burst of edits produces one write.
func (s *Session) armAutosaveLocked() {
	if s.debounce <= 0 {
		return
	}
	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}
	s.saveTimer = time.AfterFunc(s.debounce, s.autosave)
}

func (s *Session) autosave() {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return
	}
	if _, err := s.saveLocked(ctx); err != nil {
		s.log.Error().Stack().Err(err).
			Str("owner_id", s.ownerID).
			Msg("autosave failed")
	}
}

// Close flushes pending changes and notifies followers. The session must not
// be used afterwards.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveTimer != nil {
		s.saveTimer.Stop()
		s.saveTimer = nil
	}

	var err error
	if s.dirty && s.state.Presentation != nil {
		_, err = s.saveLocked(ctx)
	}

	if s.hub != nil && s.state.Presentation != nil && !s.state.Presentation.IsNew() {
		s.hub.Publish(live.Event{Type: live.EventClosed, PresentationID: s.state.Presentation.ID})
	}
	return err
}
