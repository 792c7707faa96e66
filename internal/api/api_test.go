package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slideai/slideai-server/internal/ai"
	"github.com/slideai/slideai-server/internal/catalog"
	"github.com/slideai/slideai-server/internal/deck"
	"github.com/slideai/slideai-server/internal/editor"
	"github.com/slideai/slideai-server/internal/live"
	"github.com/slideai/slideai-server/internal/model"
	"github.com/slideai/slideai-server/internal/services"
	"github.com/slideai/slideai-server/internal/store/sqlite"
)

type fakeGenerator struct {
	slideErr   error
	paletteErr error
}

func (f *fakeGenerator) GenerateSlideContent(ctx context.Context, req ai.SlideContentRequest) (*ai.GeneratedSlideContent, error) {
	if f.slideErr != nil {
		return nil, f.slideErr
	}
	return &ai.GeneratedSlideContent{
		Title:   "About " + req.Topic,
		Content: []string{"First point", "Second point"},
	}, nil
}

func (f *fakeGenerator) GenerateOutline(ctx context.Context, req ai.OutlineRequest) (*ai.Outline, error) {
	return &ai.Outline{
		Title: req.Topic,
		Slides: []ai.OutlineSlide{
			{Type: "title", Title: req.Topic},
			{Type: "content", Title: "Details"},
		},
	}, nil
}

func (f *fakeGenerator) GeneratePalette(ctx context.Context, req ai.PaletteRequest) (*ai.Palette, error) {
	if f.paletteErr != nil {
		return nil, f.paletteErr
	}
	return &ai.Palette{
		Primary: "#111111", Secondary: "#222222", Accent: "#333333",
		Background: "#ffffff", Text: "#000000", Name: "Fake",
	}, nil
}

type fakeImprover struct {
	err error
}

func (f *fakeImprover) ImproveContent(ctx context.Context, current string, improvements []string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "improved: " + current, nil
}

type testEnv struct {
	server   *httptest.Server
	hub      *live.Hub
	sessions *editor.Manager
	gen      *fakeGenerator
	improver *fakeImprover
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	st := sqlite.New(db)
	cat := catalog.New()
	gen := &fakeGenerator{}
	improver := &fakeImprover{}
	presSvc := services.NewPresentationService(st)
	composeSvc := services.NewComposeService(cat, gen, deck.UUIDSource{}, nil)
	hub := live.NewHub(zerolog.Nop())
	sessions := editor.NewManager(presSvc, cat, hub, nil, 0, zerolog.Nop())

	router := NewRouter(Deps{
		Store:         st,
		Presentations: presSvc,
		Compose:       composeSvc,
		Sessions:      sessions,
		Catalog:       cat,
		Hub:           hub,
		Improver:      improver,
		Log:           zerolog.Nop(),
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{server: server, hub: hub, sessions: sessions, gen: gen, improver: improver}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, into interface{}) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "GET", "/api/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body["status"])
}

func TestPresentationCRUD(t *testing.T) {
	env := newTestEnv(t)

	doc := model.Presentation{ID: model.NewPresentationID, Title: "Roadmap"}
	resp := env.do(t, "POST", "/api/users/user-1/presentations", doc)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var saved model.Presentation
	decodeBody(t, resp, &saved)
	assert.NotEqual(t, model.NewPresentationID, saved.ID)
	assert.Equal(t, "Roadmap", saved.Title)

	resp = env.do(t, "GET", "/api/users/user-1/presentations/"+saved.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got model.Presentation
	decodeBody(t, resp, &got)
	assert.Equal(t, saved.ID, got.ID)

	resp = env.do(t, "GET", "/api/users/user-1/presentations", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Presentations []model.Presentation `json:"presentations"`
		Count         int                  `json:"count"`
	}
	decodeBody(t, resp, &list)
	assert.Equal(t, 1, list.Count)

	resp = env.do(t, "DELETE", "/api/users/user-1/presentations/"+saved.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	resp = env.do(t, "GET", "/api/users/user-1/presentations/"+saved.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestPresentationOwnerScoping(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "POST", "/api/users/user-1/presentations", model.Presentation{Title: "Private"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var saved model.Presentation
	decodeBody(t, resp, &saved)

	resp = env.do(t, "GET", "/api/users/user-2/presentations/"+saved.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestSavePresentationRejectsBlankTitle(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "POST", "/api/users/user-1/presentations", model.Presentation{Title: "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestSessionLifecycle(t *testing.T) {
	env := newTestEnv(t)

	// Create a session on a brand-new presentation.
	resp := env.do(t, "POST", "/api/users/user-1/sessions", openSessionRequest{Title: "Pitch"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var st stateResponse
	decodeBody(t, resp, &st)
	require.NotNil(t, st.Presentation)
	assert.Equal(t, model.NewPresentationID, st.Presentation.ID)
	assert.Equal(t, "Pitch", st.Presentation.Title)

	// Dispatch a slide addition.
	action := actionRequest{Type: "ADD_SLIDE", Slide: &model.Slide{ID: "slide-1", Type: model.SlideContent}}
	resp = env.do(t, "POST", "/api/users/user-1/sessions/new/actions", action)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &st)
	assert.Len(t, st.Presentation.Slides, 1)

	// Save promotes the session to the store-assigned id.
	resp = env.do(t, "POST", "/api/users/user-1/sessions/new/save", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var saved model.Presentation
	decodeBody(t, resp, &saved)
	assert.NotEqual(t, model.NewPresentationID, saved.ID)

	resp = env.do(t, "GET", "/api/users/user-1/sessions/"+saved.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &st)
	assert.Equal(t, saved.ID, st.Presentation.ID)

	// The old sentinel key is gone.
	resp = env.do(t, "GET", "/api/users/user-1/sessions/new", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	resp = env.do(t, "DELETE", "/api/users/user-1/sessions/"+saved.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	// Re-opening loads the persisted document.
	resp = env.do(t, "POST", "/api/users/user-1/sessions", openSessionRequest{PresentationID: saved.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &st)
	assert.Len(t, st.Presentation.Slides, 1)
}

func TestDispatchRejectsMalformedActions(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "POST", "/api/users/user-1/sessions", openSessionRequest{Title: "Deck"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	// Unknown action type.
	resp = env.do(t, "POST", "/api/users/user-1/sessions/new/actions", actionRequest{Type: "EXPLODE"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	// Missing payload.
	resp = env.do(t, "POST", "/api/users/user-1/sessions/new/actions", actionRequest{Type: "ADD_SLIDE"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	// No open session.
	resp = env.do(t, "POST", "/api/users/user-1/sessions/missing/actions", actionRequest{Type: "SET_ZOOM"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestAddSmartSlide(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "POST", "/api/users/user-1/sessions", openSessionRequest{Title: "Deck"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	req := smartSlideRequest{
		TemplateID: "content-slide",
		Content: map[string]string{
			"title": "Quarterly goals",
			"body":  "Grow revenue\nShip the new editor",
		},
	}
	resp = env.do(t, "POST", "/api/users/user-1/sessions/new/slides/smart", req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var st stateResponse
	decodeBody(t, resp, &st)
	require.Len(t, st.Presentation.Slides, 1)
	assert.Equal(t, "content-slide", st.Presentation.Slides[0].Template)

	// Unknown template.
	resp = env.do(t, "POST", "/api/users/user-1/sessions/new/slides/smart", smartSlideRequest{TemplateID: "nope"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestSuggestTemplatesForSlide(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "POST", "/api/users/user-1/sessions", openSessionRequest{Title: "Deck"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	slide := model.Slide{ID: "slide-1", Elements: []model.TextElement{
		{ID: "el-1", Type: model.ElementBody, Content: "A quick note"},
	}}
	resp = env.do(t, "POST", "/api/users/user-1/sessions/new/actions", actionRequest{Type: "ADD_SLIDE", Slide: &slide})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = env.do(t, "GET", "/api/users/user-1/sessions/new/slides/slide-1/suggestions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		TemplateIDs []string `json:"templateIds"`
	}
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.TemplateIDs)

	resp = env.do(t, "GET", "/api/users/user-1/sessions/new/slides/missing/suggestions", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestAddAISlide(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "POST", "/api/users/user-1/sessions", openSessionRequest{Title: "Deck"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	req := aiSlideRequest{SlideContentRequest: ai.SlideContentRequest{Topic: "Go concurrency", SlideType: "content"}}
	resp = env.do(t, "POST", "/api/users/user-1/sessions/new/slides/ai", req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var st stateResponse
	decodeBody(t, resp, &st)
	require.Len(t, st.Presentation.Slides, 1)
	assert.Equal(t, "content-slide", st.Presentation.Slides[0].Template)

	// Upstream failure surfaces as 502.
	env.gen.slideErr = fmt.Errorf("rate limited")
	resp = env.do(t, "POST", "/api/users/user-1/sessions/new/slides/ai", req)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	_ = resp.Body.Close()

	// Missing topic is rejected before any upstream call.
	resp = env.do(t, "POST", "/api/users/user-1/sessions/new/slides/ai", aiSlideRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestGenerateAIPresentation(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "POST", "/api/users/user-1/presentations/ai", ai.OutlineRequest{Topic: "Team onboarding"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var saved model.Presentation
	decodeBody(t, resp, &saved)
	assert.NotEqual(t, model.NewPresentationID, saved.ID)
	assert.Equal(t, "Team onboarding", saved.Title)
	assert.Len(t, saved.Slides, 2)

	// The generated deck is persisted for the user.
	resp = env.do(t, "GET", "/api/users/user-1/presentations/"+saved.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestGeneratePaletteFallsBack(t *testing.T) {
	env := newTestEnv(t)
	env.gen.paletteErr = fmt.Errorf("model unavailable")

	resp := env.do(t, "POST", "/api/ai/palette", ai.PaletteRequest{Topic: "Healthcare innovation"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var palette model.ColorPalette
	decodeBody(t, resp, &palette)
	assert.Equal(t, "Healthcare Blue", palette.Name, "topic palette serves when generation fails")
}

func TestGeneratePaletteOptions(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "POST", "/api/ai/palette-options", paletteOptionsRequest{
		PaletteRequest: ai.PaletteRequest{Topic: "fintech"},
		Count:          2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Palettes []model.ColorPalette `json:"palettes"`
	}
	decodeBody(t, resp, &body)
	assert.Len(t, body.Palettes, 2)

	env.gen.paletteErr = fmt.Errorf("down")
	resp = env.do(t, "POST", "/api/ai/palette-options", paletteOptionsRequest{
		PaletteRequest: ai.PaletteRequest{Topic: "fintech"},
	})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestImproveContent(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "POST", "/api/ai/improve", improveRequest{Content: "our product is good"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "improved: our product is good", body["content"])

	resp = env.do(t, "POST", "/api/ai/improve", improveRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	env.improver.err = fmt.Errorf("timeout")
	resp = env.do(t, "POST", "/api/ai/improve", improveRequest{Content: "x"})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCatalogEndpoints(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "GET", "/api/templates", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var templates []model.Template
	decodeBody(t, resp, &templates)
	assert.NotEmpty(t, templates)

	resp = env.do(t, "GET", "/api/templates/content-slide", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tmpl model.Template
	decodeBody(t, resp, &tmpl)
	assert.Equal(t, "content-slide", tmpl.ID)

	resp = env.do(t, "GET", "/api/templates/unknown", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	resp = env.do(t, "GET", "/api/themes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var themes []model.Theme
	decodeBody(t, resp, &themes)
	assert.NotEmpty(t, themes)

	resp = env.do(t, "GET", "/api/gradients", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = env.do(t, "GET", "/api/palettes?topic=fintech+finance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var palette model.ColorPalette
	decodeBody(t, resp, &palette)
	assert.Equal(t, "Financial Green", palette.Name)

	resp = env.do(t, "GET", "/api/palettes?topic=gardening", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	resp = env.do(t, "GET", "/api/palettes", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestExportPresentation(t *testing.T) {
	env := newTestEnv(t)

	doc := model.Presentation{
		Title: "Launch Plan",
		Slides: []model.Slide{{
			ID:         "slide-1",
			Background: model.SlideBackground{Type: "solid", Color: "#ffffff"},
			Elements: []model.TextElement{{
				ID: "el-1", Type: model.ElementTitle, Content: "Launch Plan",
			}},
		}},
	}
	resp := env.do(t, "POST", "/api/users/user-1/presentations", doc)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var saved model.Presentation
	decodeBody(t, resp, &saved)

	resp = env.do(t, "GET", "/api/users/user-1/presentations/"+saved.ID+"/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "launch_plan.html")
	_ = resp.Body.Close()

	resp = env.do(t, "GET", "/api/users/user-1/presentations/"+saved.ID+"/export?format=print", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = env.do(t, "GET", "/api/users/user-1/presentations/"+saved.ID+"/export?format=pptx", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	resp = env.do(t, "GET", "/api/users/user-1/presentations/missing/export", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestWebsocketFollowReceivesEvents(t *testing.T) {
	env := newTestEnv(t)

	wsURL := "ws" + strings.TrimPrefix(env.server.URL, "http") + "/ws/presentations/pres-1"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		_ = resp.Body.Close()
	}
	defer func() { _ = conn.Close() }()

	require.Eventually(t, func() bool {
		return env.hub.Followers("pres-1") == 1
	}, time.Second, 10*time.Millisecond)

	env.hub.Publish(live.Event{Type: live.EventSaved, PresentationID: "pres-1"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev live.Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, live.EventSaved, ev.Type)
	assert.Equal(t, "pres-1", ev.PresentationID)
}
