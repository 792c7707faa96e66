package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/slideai/slideai-server/internal/api/respond"
	"github.com/slideai/slideai-server/internal/editor"
	"github.com/slideai/slideai-server/internal/model"
)

// EditorHandler serves editing sessions: open/create, action dispatch,
// explicit save and close. All document mutations flow through a session so
// the reducer applies them one at a time.
type EditorHandler struct {
	sessions *editor.Manager
}

func NewEditorHandler(sessions *editor.Manager) *EditorHandler {
	return &EditorHandler{sessions: sessions}
}

type openSessionRequest struct {
	PresentationID string `json:"presentationId,omitempty"`
	Title          string `json:"title,omitempty"`
}

// OpenSession handles POST /api/users/{userId}/sessions. With a
// presentationId the stored document is loaded (or the already-open session
// shared); without one a new untitled presentation is created under the
// unsaved sentinel id.
func (h *EditorHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	var req openSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	if req.PresentationID == "" || req.PresentationID == model.NewPresentationID {
		title := req.Title
		if title == "" {
			title = "Untitled Presentation"
		}
		sess := h.sessions.Create(userID, title)
		respond.WriteJSON(w, http.StatusCreated, toStateResponse(sess.State()))
		return
	}

	sess, err := h.sessions.Open(r.Context(), userID, req.PresentationID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "Presentation not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, toStateResponse(sess.State()))
}

// GetSession handles GET /api/users/{userId}/sessions/{presentationId}.
func (h *EditorHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	respond.WriteJSON(w, http.StatusOK, toStateResponse(sess.State()))
}

// DispatchAction handles POST /api/users/{userId}/sessions/{presentationId}/actions.
// The body is one wire action; the response is the state after applying it.
func (h *EditorHandler) DispatchAction(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	action, err := decodeAction(req)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, toStateResponse(sess.Dispatch(action)))
}

// SaveSession handles POST /api/users/{userId}/sessions/{presentationId}/save.
// Saving a session still keyed by the sentinel id re-keys it under the
// store-assigned id; the response carries that id.
func (h *EditorHandler) SaveSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	presentationID := vars["presentationId"]

	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	saved, err := sess.Save(r.Context())
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	if presentationID == model.NewPresentationID {
		h.sessions.Promote(userID, saved.ID)
	}
	respond.WriteJSON(w, http.StatusOK, saved)
}

// CloseSession handles DELETE /api/users/{userId}/sessions/{presentationId}.
// Pending changes are flushed before the session is removed.
func (h *EditorHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	presentationID := vars["presentationId"]

	if err := h.sessions.Close(r.Context(), userID, presentationID); err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// session resolves the open session addressed by the request, writing a 404
// when it is not open.
func (h *EditorHandler) session(w http.ResponseWriter, r *http.Request) (*editor.Session, bool) {
	vars := mux.Vars(r)
	sess := h.sessions.Get(vars["userId"], vars["presentationId"])
	if sess == nil {
		respond.WriteNotFound(w, "Session not open")
		return nil, false
	}
	return sess, true
}
