package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompletions returns an httptest server that answers every chat request
// with the given assistant content.
func fakeCompletions(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func testClient(baseURL string) *Client {
	return New(Options{BaseURL: baseURL, APIKey: "test-key", Model: "openai/gpt-4o-mini"})
}

func TestGenerateSlideContentParsesJSON(t *testing.T) {
	srv := fakeCompletions(t, `{"title":"Go Concurrency","content":["Goroutines","Channels"],"subtitle":"A primer"}`)
	defer srv.Close()

	got, err := testClient(srv.URL).GenerateSlideContent(context.Background(), SlideContentRequest{
		Topic: "Go", SlideType: "content",
	})
	require.NoError(t, err)

	assert.Equal(t, "Go Concurrency", got.Title)
	assert.Equal(t, []string{"Goroutines", "Channels"}, got.Content)
	assert.Equal(t, "A primer", got.Subtitle)
}

func TestGenerateSlideContentPlainTextFallback(t *testing.T) {
	srv := fakeCompletions(t, "My Title\nfirst point\nsecond point")
	defer srv.Close()

	got, err := testClient(srv.URL).GenerateSlideContent(context.Background(), SlideContentRequest{
		Topic: "Go", SlideType: "content",
	})
	require.NoError(t, err)

	assert.Equal(t, "My Title", got.Title)
	assert.Equal(t, []string{"first point", "second point"}, got.Content)
}

func TestGenerateSlideContentCodeFence(t *testing.T) {
	srv := fakeCompletions(t, "```json\n{\"title\":\"Fenced\",\"content\":[\"a\"]}\n```")
	defer srv.Close()

	got, err := testClient(srv.URL).GenerateSlideContent(context.Background(), SlideContentRequest{
		Topic: "Go", SlideType: "title",
	})
	require.NoError(t, err)

	assert.Equal(t, "Fenced", got.Title)
	assert.Equal(t, []string{"a"}, got.Content)
}

func TestGenerateOutlineFallsBackOnGarbage(t *testing.T) {
	srv := fakeCompletions(t, "sorry, I can't do that")
	defer srv.Close()

	got, err := testClient(srv.URL).GenerateOutline(context.Background(), OutlineRequest{Topic: "Anything"})
	require.NoError(t, err)

	assert.Equal(t, "Generated Presentation", got.Title)
	require.Len(t, got.Slides, 3)
	assert.Equal(t, "title", got.Slides[0].Type)
	assert.Equal(t, "conclusion", got.Slides[2].Type)
}

func TestGeneratePaletteValidatesHexColors(t *testing.T) {
	srv := fakeCompletions(t, `{"primary":"#123abc","secondary":"#654321","accent":"#ff0000","background":"#ffffff","text":"#111111","name":"Custom"}`)
	defer srv.Close()

	got, err := testClient(srv.URL).GeneratePalette(context.Background(), PaletteRequest{Topic: "space"})
	require.NoError(t, err)

	assert.Equal(t, "#123abc", got.Primary)
	assert.Equal(t, "Custom", got.Name)
	assert.Equal(t, "AI-generated color palette", got.Description)
}

func TestGeneratePaletteRejectsBadHex(t *testing.T) {
	srv := fakeCompletions(t, `{"primary":"blue","secondary":"#654321","accent":"#ff0000","background":"#ffffff","text":"#111111"}`)
	defer srv.Close()

	got, err := testClient(srv.URL).GeneratePalette(context.Background(), PaletteRequest{Topic: "space"})
	require.NoError(t, err)

	assert.Equal(t, "Professional Blue", got.Name, "invalid colors fall back to the default palette")
	assert.Equal(t, "#2563eb", got.Primary)
}

func TestImproveContent(t *testing.T) {
	srv := fakeCompletions(t, "Sharper, clearer content")
	defer srv.Close()

	got, err := testClient(srv.URL).ImproveContent(context.Background(), "dull content", []string{"make it sharper"})
	require.NoError(t, err)
	assert.Equal(t, "Sharper, clearer content", got)
}

func TestCompleteErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GenerateSlideContent(context.Background(), SlideContentRequest{Topic: "x"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestCompleteErrorOnEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GenerateOutline(context.Background(), OutlineRequest{Topic: "x"})
	assert.Error(t, err)
}
