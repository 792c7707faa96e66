// Package api wires the HTTP surface: presentation CRUD, editing sessions,
// slide composition, the template/theme catalog, exports and the live
// websocket feed.
package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/slideai/slideai-server/internal/api/recovery"
	"github.com/slideai/slideai-server/internal/catalog"
	"github.com/slideai/slideai-server/internal/editor"
	"github.com/slideai/slideai-server/internal/live"
	"github.com/slideai/slideai-server/internal/services"
	"github.com/slideai/slideai-server/internal/store"
)

// Deps bundles the components the router serves.
type Deps struct {
	Store         store.Store
	Presentations *services.PresentationService
	Compose       *services.ComposeService
	Sessions      *editor.Manager
	Catalog       *catalog.Catalog
	Hub           *live.Hub
	Improver      Improver
	Log           zerolog.Logger
}

// NewRouter creates the HTTP router with all API routes.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	healthHandler := NewHealthHandler(d.Store)
	presentationHandler := NewPresentationHandler(d.Presentations)
	editorHandler := NewEditorHandler(d.Sessions)
	composeHandler := NewComposeHandler(d.Compose, d.Sessions, d.Presentations, d.Improver)
	catalogHandler := NewCatalogHandler(d.Catalog)
	liveHandler := NewLiveHandler(d.Hub, d.Log)

	// Health endpoint
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	// Catalog endpoints
	router.HandleFunc("/api/templates", catalogHandler.ListTemplates).Methods("GET")
	router.HandleFunc("/api/templates/{templateId}", catalogHandler.GetTemplate).Methods("GET")
	router.HandleFunc("/api/themes", catalogHandler.ListThemes).Methods("GET")
	router.HandleFunc("/api/gradients", catalogHandler.ListGradients).Methods("GET")
	router.HandleFunc("/api/palettes", catalogHandler.GetTopicPalette).Methods("GET")

	// Presentation document endpoints
	router.HandleFunc("/api/users/{userId}/presentations", presentationHandler.SavePresentation).Methods("POST")
	router.HandleFunc("/api/users/{userId}/presentations", presentationHandler.ListPresentations).Methods("GET")
	router.HandleFunc("/api/users/{userId}/presentations/ai", composeHandler.GenerateAIPresentation).Methods("POST")
	router.HandleFunc("/api/users/{userId}/presentations/{presentationId}", presentationHandler.GetPresentation).Methods("GET")
	router.HandleFunc("/api/users/{userId}/presentations/{presentationId}", presentationHandler.DeletePresentation).Methods("DELETE")
	router.HandleFunc("/api/users/{userId}/presentations/{presentationId}/export", presentationHandler.ExportPresentation).Methods("GET")

	// Editing session endpoints
	router.HandleFunc("/api/users/{userId}/sessions", editorHandler.OpenSession).Methods("POST")
	router.HandleFunc("/api/users/{userId}/sessions/{presentationId}", editorHandler.GetSession).Methods("GET")
	router.HandleFunc("/api/users/{userId}/sessions/{presentationId}", editorHandler.CloseSession).Methods("DELETE")
	router.HandleFunc("/api/users/{userId}/sessions/{presentationId}/actions", editorHandler.DispatchAction).Methods("POST")
	router.HandleFunc("/api/users/{userId}/sessions/{presentationId}/save", editorHandler.SaveSession).Methods("POST")

	// Composition endpoints on open sessions
	router.HandleFunc("/api/users/{userId}/sessions/{presentationId}/slides/smart", composeHandler.AddSmartSlide).Methods("POST")
	router.HandleFunc("/api/users/{userId}/sessions/{presentationId}/slides/ai", composeHandler.AddAISlide).Methods("POST")
	router.HandleFunc("/api/users/{userId}/sessions/{presentationId}/slides/{slideId}/suggestions", composeHandler.SuggestTemplates).Methods("GET")
	router.HandleFunc("/api/users/{userId}/sessions/{presentationId}/slides/{slideId}/optimize", composeHandler.OptimizeSlide).Methods("POST")

	// Stateless AI endpoints
	router.HandleFunc("/api/ai/palette", composeHandler.GeneratePalette).Methods("POST")
	router.HandleFunc("/api/ai/palette-options", composeHandler.GeneratePaletteOptions).Methods("POST")
	router.HandleFunc("/api/ai/improve", composeHandler.ImproveContent).Methods("POST")

	// Live follower feed
	router.HandleFunc("/ws/presentations/{presentationId}", liveHandler.Follow).Methods("GET")

	return router
}
