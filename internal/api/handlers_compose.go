package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/slideai/slideai-server/internal/ai"
	"github.com/slideai/slideai-server/internal/api/respond"
	"github.com/slideai/slideai-server/internal/deck"
	"github.com/slideai/slideai-server/internal/editor"
	"github.com/slideai/slideai-server/internal/model"
	"github.com/slideai/slideai-server/internal/services"
)

// Improver is the slice of the AI client the improve endpoint needs.
type Improver interface {
	ImproveContent(ctx context.Context, current string, improvements []string) (string, error)
}

// ComposeHandler serves slide composition: template instantiation with
// content fitting, template suggestions, slide optimization and AI
// generation. Slide-producing endpoints dispatch into an open session.
type ComposeHandler struct {
	compose  *services.ComposeService
	sessions *editor.Manager
	pres     *services.PresentationService
	improver Improver
}

func NewComposeHandler(compose *services.ComposeService, sessions *editor.Manager, pres *services.PresentationService, improver Improver) *ComposeHandler {
	return &ComposeHandler{compose: compose, sessions: sessions, pres: pres, improver: improver}
}

type smartSlideRequest struct {
	TemplateID string            `json:"templateId"`
	Content    map[string]string `json:"content,omitempty"`
	InsertAt   *int              `json:"insertAt,omitempty"`
}

// AddSmartSlide handles POST /api/users/{userId}/sessions/{presentationId}/slides/smart.
// The template's layout adapts to the content, each content area's text is
// fitted, and the finished slide is added to the open session.
func (h *ComposeHandler) AddSmartSlide(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req smartSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	slide, err := h.compose.SmartSlide(req.TemplateID, req.Content)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	st := sess.Dispatch(deck.AddSlide(slide, req.InsertAt))
	respond.WriteJSON(w, http.StatusCreated, toStateResponse(st))
}

// SuggestTemplates handles GET /api/users/{userId}/sessions/{presentationId}/slides/{slideId}/suggestions.
// It ranks catalog template ids against the slide's current content.
func (h *ComposeHandler) SuggestTemplates(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	slide, ok := h.slide(w, r, sess)
	if !ok {
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"templateIds": h.compose.SuggestTemplates(slide),
	})
}

// OptimizeSlide handles POST /api/users/{userId}/sessions/{presentationId}/slides/{slideId}/optimize.
// Every element is auto-formatted for its type; changed elements are updated
// through the session.
func (h *ComposeHandler) OptimizeSlide(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	slide, ok := h.slide(w, r, sess)
	if !ok {
		return
	}

	st := sess.State()
	for _, action := range h.compose.OptimizeSlide(slide) {
		st = sess.Dispatch(action)
	}
	respond.WriteJSON(w, http.StatusOK, toStateResponse(st))
}

type aiSlideRequest struct {
	ai.SlideContentRequest
	InsertAt *int `json:"insertAt,omitempty"`
}

// AddAISlide handles POST /api/users/{userId}/sessions/{presentationId}/slides/ai.
// Content is generated for the requested topic and slide type, mapped onto
// the matching template, and added to the open session.
func (h *ComposeHandler) AddAISlide(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req aiSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.Topic == "" {
		respond.WriteBadRequest(w, "topic is required")
		return
	}

	slide, err := h.compose.AISlide(r.Context(), req.SlideContentRequest)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		respond.WriteBadGateway(w, err.Error())
		return
	}
	st := sess.Dispatch(deck.AddSlide(slide, req.InsertAt))
	respond.WriteJSON(w, http.StatusCreated, toStateResponse(st))
}

// GenerateAIPresentation handles POST /api/users/{userId}/presentations/ai.
// A whole deck is generated from an outline and saved for the user.
func (h *ComposeHandler) GenerateAIPresentation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	var req ai.OutlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.Topic == "" {
		respond.WriteBadRequest(w, "topic is required")
		return
	}

	p, err := h.compose.AIPresentation(r.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		respond.WriteBadGateway(w, err.Error())
		return
	}

	saved, err := h.pres.Save(r.Context(), userID, p)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, saved)
}

// GeneratePalette handles POST /api/ai/palette. Generation falls back to the
// predefined topic palettes, so this endpoint always succeeds.
func (h *ComposeHandler) GeneratePalette(w http.ResponseWriter, r *http.Request) {
	var req ai.PaletteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.compose.Palette(r.Context(), req))
}

type paletteOptionsRequest struct {
	ai.PaletteRequest
	Count int `json:"count,omitempty"`
}

// GeneratePaletteOptions handles POST /api/ai/palette-options. Several
// candidates are generated concurrently; partial success is fine.
func (h *ComposeHandler) GeneratePaletteOptions(w http.ResponseWriter, r *http.Request) {
	var req paletteOptionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	palettes, err := h.compose.PaletteOptions(r.Context(), req.PaletteRequest, req.Count)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		respond.WriteBadGateway(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"palettes": palettes})
}

type improveRequest struct {
	Content      string   `json:"content"`
	Improvements []string `json:"improvements,omitempty"`
}

// ImproveContent handles POST /api/ai/improve.
func (h *ComposeHandler) ImproveContent(w http.ResponseWriter, r *http.Request) {
	var req improveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.Content == "" {
		respond.WriteBadRequest(w, "content is required")
		return
	}
	if h.improver == nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "AI generation is not configured")
		return
	}

	improved, err := h.improver.ImproveContent(r.Context(), req.Content, req.Improvements)
	if err != nil {
		respond.WriteBadGateway(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"content": improved})
}

func (h *ComposeHandler) session(w http.ResponseWriter, r *http.Request) (*editor.Session, bool) {
	vars := mux.Vars(r)
	sess := h.sessions.Get(vars["userId"], vars["presentationId"])
	if sess == nil {
		respond.WriteNotFound(w, "Session not open")
		return nil, false
	}
	return sess, true
}

// slide resolves {slideId} in the session's current document.
func (h *ComposeHandler) slide(w http.ResponseWriter, r *http.Request, sess *editor.Session) (*model.Slide, bool) {
	vars := mux.Vars(r)
	slideID := vars["slideId"]

	p := sess.Presentation()
	if p != nil {
		for i := range p.Slides {
			if p.Slides[i].ID == slideID {
				return &p.Slides[i], true
			}
		}
	}
	respond.WriteNotFound(w, "Slide not found")
	return nil, false
}
