package editor

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/slideai/slideai-server/internal/catalog"
	"github.com/slideai/slideai-server/internal/deck"
	"github.com/slideai/slideai-server/internal/live"
	"github.com/slideai/slideai-server/internal/model"
	"github.com/slideai/slideai-server/internal/services"
)

// Manager tracks open editing sessions, at most one per (owner,
// presentation). Opening the same presentation twice returns the existing
// session, so concurrent tabs share one document state.
type Manager struct {
	mu       sync.Mutex
	sessions map[sessionKey]*Session

	svc      *services.PresentationService
	cat      *catalog.Catalog
	hub      *live.Hub
	clock    deck.Clock
	debounce time.Duration
	log      zerolog.Logger
}

type sessionKey struct {
	ownerID        string
	presentationID string
}

func NewManager(svc *services.PresentationService, cat *catalog.Catalog, hub *live.Hub, clock deck.Clock, debounce time.Duration, log zerolog.Logger) *Manager {
	if clock == nil {
		clock = time.Now
	}
	return &Manager{
		sessions: make(map[sessionKey]*Session),
		svc:      svc,
		cat:      cat,
		hub:      hub,
		clock:    clock,
		debounce: debounce,
		log:      log,
	}
}

// Open loads the presentation and returns its editing session, creating one
// if needed.
func (m *Manager) Open(ctx context.Context, ownerID, presentationID string) (*Session, error) {
	key := sessionKey{ownerID: ownerID, presentationID: presentationID}

	m.mu.Lock()
	if sess, ok := m.sessions[key]; ok {
		m.mu.Unlock()
		return sess, nil
	}
	m.mu.Unlock()

	p, err := m.svc.Get(ctx, ownerID, presentationID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[key]; ok {
		return sess, nil
	}
	sess := NewSession(ownerID, p, m.svc, m.hub, m.clock, m.debounce, m.log)
	m.sessions[key] = sess
	return sess, nil
}

// Create starts a session on a brand-new untitled presentation carrying the
// unsaved sentinel id. It is registered under the sentinel until the first
// save; Promote moves it to the real id.
func (m *Manager) Create(ownerID, title string) *Session {
	p := deck.NewPresentation(title, m.cat.DefaultTheme(), m.clock())
	sess := NewSession(ownerID, p, m.svc, m.hub, m.clock, m.debounce, m.log)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionKey{ownerID: ownerID, presentationID: model.NewPresentationID}] = sess
	return sess
}

// Get returns an already-open session, or nil.
func (m *Manager) Get(ownerID, presentationID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[sessionKey{ownerID: ownerID, presentationID: presentationID}]
}

// Promote re-keys a session after its first save assigned a real id.
func (m *Manager) Promote(ownerID, realID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldKey := sessionKey{ownerID: ownerID, presentationID: model.NewPresentationID}
	if sess, ok := m.sessions[oldKey]; ok {
		delete(m.sessions, oldKey)
		m.sessions[sessionKey{ownerID: ownerID, presentationID: realID}] = sess
	}
}

// Close flushes and removes a session. Closing an unknown session is a no-op.
func (m *Manager) Close(ctx context.Context, ownerID, presentationID string) error {
	key := sessionKey{ownerID: ownerID, presentationID: presentationID}

	m.mu.Lock()
	sess, ok := m.sessions[key]
	delete(m.sessions, key)
	m.mu.Unlock()

	if !ok {
		return nil
	}
	return sess.Close(ctx)
}

// Shutdown flushes every open session; used during service shutdown.
func (m *Manager) Shutdown(ctx context.Context) {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for key, sess := range m.sessions {
		sessions = append(sessions, sess)
		delete(m.sessions, key)
	}
	m.mu.Unlock()

	for _, sess := range sessions {
		if err := sess.Close(ctx); err != nil {
			m.log.Error().Stack().Err(err).Msg("session close during shutdown failed")
		}
	}
}
