package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/slideai/slideai-server/internal/api/respond"
	"github.com/slideai/slideai-server/internal/catalog"
)

// CatalogHandler serves the read-only template, theme, gradient and palette
// catalog.
type CatalogHandler struct {
	cat *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat}
}

// ListTemplates handles GET /api/templates. An optional category query
// narrows the result.
func (h *CatalogHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		respond.WriteJSON(w, http.StatusOK, h.cat.TemplatesByCategory(category))
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.cat.Templates())
}

// GetTemplate handles GET /api/templates/{templateId}.
func (h *CatalogHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	t, ok := h.cat.TemplateByID(vars["templateId"])
	if !ok {
		respond.WriteNotFound(w, "Template not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, t)
}

// ListThemes handles GET /api/themes.
func (h *CatalogHandler) ListThemes(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.cat.Themes())
}

// ListGradients handles GET /api/gradients.
func (h *CatalogHandler) ListGradients(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.cat.Gradients())
}

// GetTopicPalette handles GET /api/palettes?topic=... and returns the first
// predefined palette whose keyword matches the topic.
func (h *CatalogHandler) GetTopicPalette(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")
	if topic == "" {
		respond.WriteBadRequest(w, "topic query parameter is required")
		return
	}
	p, ok := h.cat.PaletteForTopic(topic)
	if !ok {
		respond.WriteNotFound(w, "No palette matches the topic")
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}
