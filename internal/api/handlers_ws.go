package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/slideai/slideai-server/internal/live"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// LiveHandler upgrades followers to websocket connections and forwards hub
// events for one presentation.
type LiveHandler struct {
	hub      *live.Hub
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

func NewLiveHandler(hub *live.Hub, log zerolog.Logger) *LiveHandler {
	return &LiveHandler{
		hub: hub,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Follow handles GET /ws/presentations/{presentationId}. Events published for
// the presentation are forwarded as JSON messages until either side closes.
func (h *LiveHandler) Follow(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	presentationID := vars["presentationId"]

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer func() { _ = conn.Close() }()

	events, cancel := h.hub.Subscribe(presentationID)
	defer cancel()

	// The read loop only detects disconnects; followers never send data.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				// Hub shut down; tell the client we are going away.
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
					time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				h.log.Debug().Err(err).
					Str("presentation_id", presentationID).
					Msg("follower write failed")
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
