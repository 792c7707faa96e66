package fitting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slideai/slideai-server/internal/model"
)

func TestAdaptTemplateLayoutGrowsTallLists(t *testing.T) {
	tmpl := bodyTemplate(
		model.ContentArea{ID: "main", Type: model.ElementBody, Flexible: true},
		model.TemplateElement{
			Type:  model.ElementBody,
			Size:  model.Size{Width: 600, Height: 120},
			Style: model.TextStyle{FontSize: 18, LineHeight: 1.4},
		},
	)

	adapted := AdaptTemplateLayout(tmpl, map[string]string{"main": "a\nb\nc\nd\ne"})

	// 5 lines * 18 * 1.4 = 126, under the 300 cap.
	assert.Equal(t, float64(126), adapted.Elements[0].Size.Height)
	assert.Equal(t, float64(120), tmpl.Elements[0].Size.Height, "input template must stay untouched")
}

func TestAdaptTemplateLayoutCapsGrowthAt300(t *testing.T) {
	tmpl := bodyTemplate(
		model.ContentArea{ID: "main", Type: model.ElementBody, Flexible: true},
		model.TemplateElement{
			Type:  model.ElementBody,
			Size:  model.Size{Width: 600, Height: 120},
			Style: model.TextStyle{FontSize: 24, LineHeight: 1.6},
		},
	)

	adapted := AdaptTemplateLayout(tmpl, map[string]string{"main": strings.TrimSpace(strings.Repeat("x\n", 20))})

	assert.Equal(t, float64(300), adapted.Elements[0].Size.Height)
}

func TestAdaptTemplateLayoutEmphasizesSparseContent(t *testing.T) {
	tmpl := bodyTemplate(
		model.ContentArea{ID: "main", Type: model.ElementTitle, Flexible: true},
		model.TemplateElement{
			Type:  model.ElementTitle,
			Size:  model.Size{Width: 800, Height: 100},
			Style: model.TextStyle{FontSize: 28, LineHeight: 1.2},
		},
	)

	adapted := AdaptTemplateLayout(tmpl, map[string]string{"main": "Short punchy title"})

	assert.Equal(t, float64(42), adapted.Elements[0].Style.FontSize)
}

func TestAdaptTemplateLayoutCompressesDenseContent(t *testing.T) {
	tmpl := bodyTemplate(
		model.ContentArea{ID: "main", Type: model.ElementBody, Flexible: true},
		model.TemplateElement{
			Type:  model.ElementBody,
			Size:  model.Size{Width: 600, Height: 400},
			Style: model.TextStyle{FontSize: 20, LineHeight: 1.4},
		},
	)

	adapted := AdaptTemplateLayout(tmpl, map[string]string{"main": strings.Repeat("word ", 120)})

	assert.Equal(t, float64(16), adapted.Elements[0].Style.FontSize)
}

func TestAdaptTemplateLayoutSkipsRigidAreas(t *testing.T) {
	tmpl := bodyTemplate(
		model.ContentArea{ID: "main", Type: model.ElementBody, Flexible: false},
		model.TemplateElement{
			Type:  model.ElementBody,
			Size:  model.Size{Width: 600, Height: 100},
			Style: model.TextStyle{FontSize: 20, LineHeight: 1.4},
		},
	)

	adapted := AdaptTemplateLayout(tmpl, map[string]string{"main": "a\nb\nc\nd\ne"})

	assert.Equal(t, tmpl.Elements[0], adapted.Elements[0])
}

func TestSuggestTemplatesShortSingleArea(t *testing.T) {
	got := SuggestTemplatesForContent(map[string]string{"title": "Welcome everyone"})

	assert.Equal(t, []string{"quote-slide", "section-header", "thank-you"}, got)
}

func TestSuggestTemplatesManyLines(t *testing.T) {
	got := SuggestTemplatesForContent(map[string]string{
		"a": "1\n2\n3\n4\n5\n6",
		"b": "something else entirely here",
	})

	assert.Equal(t, []string{"content-slide", "learning-objectives", "agenda-slide"}, got)
}

func TestSuggestTemplatesManyAreasAndDenseText(t *testing.T) {
	dense := strings.Repeat("word ", 80)
	got := SuggestTemplatesForContent(map[string]string{
		"a": dense, "b": dense, "c": dense,
	})

	// Both the multi-area and the word-count buckets fire; content-slide is
	// allowed to repeat across buckets.
	assert.Equal(t, []string{
		"two-column", "swot-analysis", "feature-comparison", "business-metrics",
		"content-slide", "problem-solution",
	}, got)
}

func TestSuggestTemplatesEmptyContent(t *testing.T) {
	assert.Equal(t, []string{"quote-slide", "section-header", "thank-you"},
		SuggestTemplatesForContent(map[string]string{}))
}

func TestAutoFormatAddsBulletMarkers(t *testing.T) {
	got := AutoFormatContent("first\nsecond\n\nthird", model.SlideContent, model.ElementBullet)

	assert.Equal(t, "• first\n• second\n• third", got)
}

func TestAutoFormatTrimsLinesBeforeMarking(t *testing.T) {
	got := AutoFormatContent("first\n   indented\n\ttabbed", model.SlideContent, model.ElementBullet)

	assert.Equal(t, "• first\n• indented\n• tabbed", got)
}

func TestAutoFormatKeepsExistingMarkers(t *testing.T) {
	in := "- first\nsecond"
	assert.Equal(t, in, AutoFormatContent(in, model.SlideContent, model.ElementBullet))
}

func TestAutoFormatWrapsQuotes(t *testing.T) {
	assert.Equal(t, `"stay hungry"`, AutoFormatContent("stay hungry", model.SlideQuote, model.ElementBody))
	assert.Equal(t, `"already quoted"`, AutoFormatContent(`"already quoted"`, model.SlideQuote, model.ElementBody))
}

func TestAutoFormatTitleCase(t *testing.T) {
	assert.Equal(t, "Quarterly Business Review",
		AutoFormatContent("quarterly BUSINESS review", model.SlideTitle, model.ElementTitle))
}

func TestAutoFormatTitleCaseSkipsLeadingPunctuation(t *testing.T) {
	assert.Equal(t, "(Hello World)",
		AutoFormatContent("(hello WORLD)", model.SlideTitle, model.ElementTitle))
	assert.Equal(t, `"Quoted Title"`,
		AutoFormatContent(`"quoted title"`, model.SlideTitle, model.ElementTitle))
}

func TestAutoFormatOtherCombinationsOnlyTrim(t *testing.T) {
	assert.Equal(t, "plain body text", AutoFormatContent("  plain body text \n", model.SlideContent, model.ElementBody))
}
