package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/slideai/slideai-server/internal/ai"
	"github.com/slideai/slideai-server/internal/catalog"
	"github.com/slideai/slideai-server/internal/deck"
	"github.com/slideai/slideai-server/internal/fitting"
	"github.com/slideai/slideai-server/internal/model"
)

// Generator is the slice of the AI client the composer needs; faked in tests.
type Generator interface {
	GenerateSlideContent(ctx context.Context, req ai.SlideContentRequest) (*ai.GeneratedSlideContent, error)
	GenerateOutline(ctx context.Context, req ai.OutlineRequest) (*ai.Outline, error)
	GeneratePalette(ctx context.Context, req ai.PaletteRequest) (*ai.Palette, error)
}

// ComposeService builds slides and whole presentations from templates, raw
// content and AI generation.
type ComposeService struct {
	catalog *catalog.Catalog
	gen     Generator
	ids     deck.IDSource
	now     func() time.Time
}

func NewComposeService(cat *catalog.Catalog, gen Generator, ids deck.IDSource, now func() time.Time) *ComposeService {
	if now == nil {
		now = time.Now
	}
	return &ComposeService{catalog: cat, gen: gen, ids: ids, now: now}
}

// SmartSlide instantiates a template with the given content fitted into its
// content areas: the layout adapts to the content shape, each area's text is
// resized or truncated to fit, and the result is auto-formatted for its
// element type. A nil contentMap instantiates the template placeholders as-is.
func (s *ComposeService) SmartSlide(templateID string, contentMap map[string]string) (model.Slide, error) {
	tmpl, ok := s.catalog.TemplateByID(templateID)
	if !ok {
		return model.Slide{}, fmt.Errorf("%w: unknown template %q", model.ErrValidation, templateID)
	}

	adapted := &tmpl
	if contentMap != nil {
		adapted = fitting.AdaptTemplateLayout(&tmpl, contentMap)
	}

	slide := model.Slide{
		ID:         s.ids.NewID("slide"),
		Type:       adapted.Type,
		Background: adapted.Background.Clone(),
		Template:   templateID,
		Elements:   make([]model.TextElement, 0, len(adapted.Elements)),
	}

	for _, el := range adapted.Elements {
		content := el.Content
		style := el.Style

		if area := areaForElementType(adapted, el.Type); contentMap != nil && area != nil {
			newContent := contentMap[area.ID]
			if newContent == "" {
				newContent = el.Content
			}
			fitted := fitting.FitContentToTemplate(adapted, area.ID, newContent, fitting.Options{})
			style.FontSize = fitted.FontSize
			style.LineHeight = fitted.LineHeight
			content = fitting.AutoFormatContent(fitted.Content, tmpl.Type, el.Type)
		}

		slide.Elements = append(slide.Elements, model.TextElement{
			ID:       s.ids.NewID("element"),
			Type:     el.Type,
			Content:  content,
			Position: el.Position,
			Size:     el.Size,
			Style:    style,
		})
	}
	return slide, nil
}

// SuggestTemplates ranks catalog template ids against the content of the
// given slide.
func (s *ComposeService) SuggestTemplates(slide *model.Slide) []string {
	if slide == nil {
		return nil
	}
	contentMap := make(map[string]string, len(slide.Elements))
	for i, el := range slide.Elements {
		contentMap[fmt.Sprintf("content-%d", i)] = el.Content
	}
	return fitting.SuggestTemplatesForContent(contentMap)
}

// OptimizeSlide auto-formats every element of the slide and returns the
// update actions for the ones that changed. The caller dispatches them.
func (s *ComposeService) OptimizeSlide(slide *model.Slide) []deck.Action {
	if slide == nil {
		return nil
	}
	var actions []deck.Action
	for _, el := range slide.Elements {
		formatted := fitting.AutoFormatContent(el.Content, slide.Type, el.Type)
		if formatted != el.Content {
			content := formatted
			actions = append(actions, deck.UpdateElement(slide.ID, el.ID, deck.ElementPatch{Content: &content}))
		}
	}
	return actions
}

// AISlide generates content for one slide and instantiates the template that
// matches the requested slide type. Bullet content joins into a single
// marked-up body run.
func (s *ComposeService) AISlide(ctx context.Context, req ai.SlideContentRequest) (model.Slide, error) {
	if s.gen == nil {
		return model.Slide{}, fmt.Errorf("%w: ai generation is not configured", model.ErrValidation)
	}
	generated, err := s.gen.GenerateSlideContent(ctx, req)
	if err != nil {
		return model.Slide{}, err
	}
	return s.slideFromGenerated(templateForSlideType(req.SlideType), generated)
}

// AIPresentation generates a full outline and then a slide per outline entry.
// A slide whose generation fails is skipped rather than failing the deck.
func (s *ComposeService) AIPresentation(ctx context.Context, req ai.OutlineRequest) (*model.Presentation, error) {
	if s.gen == nil {
		return nil, fmt.Errorf("%w: ai generation is not configured", model.ErrValidation)
	}
	outline, err := s.gen.GenerateOutline(ctx, req)
	if err != nil {
		return nil, err
	}

	p := deck.NewPresentation(outline.Title, s.catalog.DefaultTheme(), s.now())
	for _, info := range outline.Slides {
		generated, err := s.gen.GenerateSlideContent(ctx, ai.SlideContentRequest{
			Topic:     info.Title,
			SlideType: info.Type,
			Context:   info.Description,
			Audience:  req.Audience,
			Tone:      req.Tone,
		})
		if err != nil {
			continue
		}
		slide, err := s.slideFromGenerated(templateForSlideType(info.Type), generated)
		if err != nil {
			continue
		}
		p.Slides = append(p.Slides, slide)
	}
	return p, nil
}

// Palette produces a color palette for a topic: AI generation when available,
// then the predefined topic palettes, then the default professional palette.
func (s *ComposeService) Palette(ctx context.Context, req ai.PaletteRequest) model.ColorPalette {
	if s.gen != nil {
		if pal, err := s.gen.GeneratePalette(ctx, req); err == nil {
			return model.ColorPalette{
				Primary:     pal.Primary,
				Secondary:   pal.Secondary,
				Accent:      pal.Accent,
				Background:  pal.Background,
				Text:        pal.Text,
				Name:        pal.Name,
				Description: pal.Description,
			}
		}
	}
	if pal, ok := s.catalog.PaletteForTopic(req.Topic); ok {
		return pal
	}
	return catalog.DefaultPalette()
}

// PaletteOptions generates count palette candidates concurrently. Failed
// attempts are dropped; an error is returned only when every attempt fails.
func (s *ComposeService) PaletteOptions(ctx context.Context, req ai.PaletteRequest, count int) ([]model.ColorPalette, error) {
	if s.gen == nil {
		return nil, fmt.Errorf("%w: ai generation is not configured", model.ErrValidation)
	}
	if count <= 0 {
		count = 3
	}

	results := make([]*ai.Palette, count)
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if pal, err := s.gen.GeneratePalette(ctx, req); err == nil {
				results[i] = pal
			}
		}(i)
	}
	wg.Wait()

	var palettes []model.ColorPalette
	for _, pal := range results {
		if pal == nil {
			continue
		}
		palettes = append(palettes, model.ColorPalette{
			Primary:     pal.Primary,
			Secondary:   pal.Secondary,
			Accent:      pal.Accent,
			Background:  pal.Background,
			Text:        pal.Text,
			Name:        pal.Name,
			Description: pal.Description,
		})
	}
	if len(palettes) == 0 {
		return nil, errors.New("failed to generate any color palettes")
	}
	return palettes, nil
}

// slideFromGenerated instantiates a template and maps generated content onto
// its elements by element type.
func (s *ComposeService) slideFromGenerated(templateID string, generated *ai.GeneratedSlideContent) (model.Slide, error) {
	tmpl, ok := s.catalog.TemplateByID(templateID)
	if !ok {
		return model.Slide{}, fmt.Errorf("%w: unknown template %q", model.ErrValidation, templateID)
	}

	slide := deck.SlideFromTemplate(&tmpl, s.ids)
	for i := range slide.Elements {
		el := &slide.Elements[i]
		switch el.Type {
		case model.ElementTitle:
			el.Content = generated.Title
		case model.ElementSubtitle:
			if generated.Subtitle != "" {
				el.Content = generated.Subtitle
			}
		case model.ElementBody, model.ElementBullet:
			if len(generated.Content) > 0 {
				marked := make([]string, len(generated.Content))
				for j, item := range generated.Content {
					marked[j] = "• " + item
				}
				el.Content = strings.Join(marked, "\n")
			}
		}
	}
	return slide, nil
}

// templateForSlideType maps an AI slide type to a catalog template id.
func templateForSlideType(slideType string) string {
	switch slideType {
	case "title":
		return "title-slide"
	case "agenda":
		return "agenda-slide"
	case "conclusion":
		return "thank-you"
	default:
		return "content-slide"
	}
}

func areaForElementType(t *model.Template, elType model.ElementType) *model.ContentArea {
	for i := range t.ContentAreas {
		area := &t.ContentAreas[i]
		if area.Type == elType {
			return area
		}
		if area.Type == model.ElementBody && elType == model.ElementBullet {
			return area
		}
	}
	return nil
}
