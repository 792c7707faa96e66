package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/slideai/slideai-server/internal/api/respond"
	"github.com/slideai/slideai-server/internal/export"
	"github.com/slideai/slideai-server/internal/model"
	"github.com/slideai/slideai-server/internal/services"
)

// PresentationHandler serves the presentation document CRUD.
type PresentationHandler struct {
	svc *services.PresentationService
}

func NewPresentationHandler(svc *services.PresentationService) *PresentationHandler {
	return &PresentationHandler{svc: svc}
}

// SavePresentation handles POST /api/users/{userId}/presentations.
// The body is a full presentation document; one carrying the unsaved sentinel
// id is assigned a real id by the store.
func (h *PresentationHandler) SavePresentation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	var p model.Presentation
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	saved, err := h.svc.Save(r.Context(), userID, &p)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, saved)
}

// ListPresentations handles GET /api/users/{userId}/presentations.
func (h *PresentationHandler) ListPresentations(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	presentations, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"presentations": presentations,
		"count":         len(presentations),
	})
}

// GetPresentation handles GET /api/users/{userId}/presentations/{presentationId}.
func (h *PresentationHandler) GetPresentation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	presentationID := vars["presentationId"]

	p, err := h.svc.Get(r.Context(), userID, presentationID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "Presentation not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// DeletePresentation handles DELETE /api/users/{userId}/presentations/{presentationId}.
func (h *PresentationHandler) DeletePresentation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	presentationID := vars["presentationId"]

	if err := h.svc.Delete(r.Context(), userID, presentationID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "Presentation not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportPresentation handles GET /api/users/{userId}/presentations/{presentationId}/export.
// format=player (default) renders the standalone HTML player; format=print the
// print-oriented document.
func (h *PresentationHandler) ExportPresentation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	presentationID := vars["presentationId"]

	p, err := h.svc.Get(r.Context(), userID, presentationID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "Presentation not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}

	var out []byte
	switch format := r.URL.Query().Get("format"); format {
	case "", "player":
		out, err = export.Player(p)
	case "print":
		out, err = export.PrintDocument(p)
	default:
		respond.WriteBadRequest(w, "Unknown export format: "+format)
		return
	}
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(p.Title, "html")+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
