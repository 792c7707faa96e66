package deck

import (
	"time"

	"github.com/slideai/slideai-server/internal/model"
)

// Reduce applies one action to the state and returns the next state. It is a
// pure function: the input state and the action's payloads are never mutated,
// and the same inputs always produce the same output. Document-mutating
// variants stamp UpdatedAt with now.
//
// Totality rules: actions referencing unknown slide/element ids are no-ops,
// indices and zoom clamp, and an unknown action type returns the state
// unchanged.
func Reduce(s State, a Action, now time.Time) State {
	switch a.Type {
	case ActionSetPresentation:
		s.Presentation = a.presentation
		return s

	case ActionSetLoading:
		s.IsLoading = a.flag
		return s

	case ActionSetSelectedElement:
		s.SelectedElementID = a.selected
		return s

	case ActionSetEditing:
		s.IsEditing = a.flag
		return s

	case ActionSetPresentMode:
		s.IsPresentationMode = a.flag
		return s

	case ActionSetZoom:
		s.Zoom = clampFloat(a.zoom, MinZoom, MaxZoom)
		return s

	case ActionSetCurrentSlide:
		if s.Presentation == nil {
			return s
		}
		p := s.Presentation.Clone()
		p.CurrentSlideIndex = clampIndex(a.index, len(p.Slides))
		s.Presentation = p
		return s

	case ActionAddSlide:
		if s.Presentation == nil {
			return s
		}
		p := s.Presentation.Clone()
		at := len(p.Slides)
		if a.insertAt != nil {
			at = clampInt(*a.insertAt, 0, len(p.Slides))
		}
		slide := a.slide.Clone()
		p.Slides = append(p.Slides, model.Slide{})
		copy(p.Slides[at+1:], p.Slides[at:])
		p.Slides[at] = slide
		p.UpdatedAt = now
		s.Presentation = p
		return s

	case ActionDeleteSlide:
		if s.Presentation == nil {
			return s
		}
		p := s.Presentation.Clone()
		kept := p.Slides[:0]
		for _, sl := range p.Slides {
			if sl.ID != a.slideID {
				kept = append(kept, sl)
			}
		}
		p.Slides = kept
		p.CurrentSlideIndex = clampIndex(p.CurrentSlideIndex, len(p.Slides))
		p.UpdatedAt = now
		s.Presentation = p
		return s

	case ActionUpdateSlide:
		if s.Presentation == nil {
			return s
		}
		p := s.Presentation.Clone()
		for i := range p.Slides {
			if p.Slides[i].ID == a.slideID {
				applySlidePatch(&p.Slides[i], a.slidePatch)
			}
		}
		p.UpdatedAt = now
		s.Presentation = p
		return s

	case ActionReorderSlides:
		if s.Presentation == nil {
			return s
		}
		n := len(s.Presentation.Slides)
		if a.fromIndex < 0 || a.fromIndex >= n || a.toIndex < 0 || a.toIndex >= n {
			return s
		}
		p := s.Presentation.Clone()
		moved := p.Slides[a.fromIndex]
		p.Slides = append(p.Slides[:a.fromIndex], p.Slides[a.fromIndex+1:]...)
		p.Slides = append(p.Slides, model.Slide{})
		copy(p.Slides[a.toIndex+1:], p.Slides[a.toIndex:])
		p.Slides[a.toIndex] = moved
		p.UpdatedAt = now
		s.Presentation = p
		return s

	case ActionAddElement:
		if s.Presentation == nil {
			return s
		}
		p := s.Presentation.Clone()
		for i := range p.Slides {
			if p.Slides[i].ID == a.slideID {
				p.Slides[i].Elements = append(p.Slides[i].Elements, a.element)
			}
		}
		p.UpdatedAt = now
		s.Presentation = p
		return s

	case ActionUpdateElement:
		if s.Presentation == nil {
			return s
		}
		p := s.Presentation.Clone()
		for i := range p.Slides {
			if p.Slides[i].ID != a.slideID {
				continue
			}
			for j := range p.Slides[i].Elements {
				if p.Slides[i].Elements[j].ID == a.elementID {
					applyElementPatch(&p.Slides[i].Elements[j], a.elementPatch)
				}
			}
		}
		p.UpdatedAt = now
		s.Presentation = p
		return s

	case ActionDeleteElement:
		if s.Presentation == nil {
			return s
		}
		p := s.Presentation.Clone()
		for i := range p.Slides {
			if p.Slides[i].ID != a.slideID {
				continue
			}
			kept := p.Slides[i].Elements[:0]
			for _, el := range p.Slides[i].Elements {
				if el.ID != a.elementID {
					kept = append(kept, el)
				}
			}
			p.Slides[i].Elements = kept
		}
		p.UpdatedAt = now
		s.Presentation = p
		return s

	case ActionUpdateTheme:
		if s.Presentation == nil {
			return s
		}
		p := s.Presentation.Clone()
		p.Theme = a.theme
		p.UpdatedAt = now
		s.Presentation = p
		return s

	case ActionApplyColorPalette:
		if s.Presentation == nil {
			return s
		}
		p := s.Presentation.Clone()
		applyPalette(p, a.palette)
		p.UpdatedAt = now
		s.Presentation = p
		return s
	}
	return s
}

func applySlidePatch(sl *model.Slide, patch SlidePatch) {
	if patch.Type != nil {
		sl.Type = *patch.Type
	}
	if patch.Background != nil {
		sl.Background = patch.Background.Clone()
	}
	if patch.Elements != nil {
		sl.Elements = append([]model.TextElement(nil), *patch.Elements...)
	}
	if patch.Template != nil {
		sl.Template = *patch.Template
	}
}

func applyElementPatch(el *model.TextElement, patch ElementPatch) {
	if patch.Type != nil {
		el.Type = *patch.Type
	}
	if patch.Content != nil {
		el.Content = *patch.Content
	}
	if patch.Position != nil {
		el.Position = *patch.Position
	}
	if patch.Size != nil {
		el.Size = *patch.Size
	}
	if patch.Style != nil {
		el.Style = *patch.Style
	}
}

// applyPalette rewrites the theme colors and cascades: every background
// becomes a solid fill of the palette background (gradients included), and
// each element's color is reassigned by type (title→primary,
// subtitle→secondary, body and bullet→text).
func applyPalette(p *model.Presentation, pal model.ColorPalette) {
	p.Theme.Name = pal.Name
	p.Theme.Colors = model.ThemeColors{
		Primary:    pal.Primary,
		Secondary:  pal.Secondary,
		Accent:     pal.Accent,
		Background: pal.Background,
		Text:       pal.Text,
	}
	for i := range p.Slides {
		p.Slides[i].Background = model.SlideBackground{Type: "solid", Color: pal.Background}
		for j := range p.Slides[i].Elements {
			el := &p.Slides[i].Elements[j]
			switch el.Type {
			case model.ElementTitle:
				el.Style.Color = pal.Primary
			case model.ElementSubtitle:
				el.Style.Color = pal.Secondary
			default:
				el.Style.Color = pal.Text
			}
		}
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampIndex keeps a slide index inside [0, n-1], flooring at 0 for empty
// decks.
func clampIndex(i, n int) int {
	if i > n-1 {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
