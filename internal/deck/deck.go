package deck

import (
	"time"

	"github.com/slideai/slideai-server/internal/model"
)

// NewPresentation builds an empty unsaved document carrying the "new"
// sentinel id.
func NewPresentation(title string, theme model.Theme, now time.Time) *model.Presentation {
	return &model.Presentation{
		ID:                model.NewPresentationID,
		Title:             title,
		Slides:            []model.Slide{},
		Theme:             theme,
		CurrentSlideIndex: 0,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// DuplicateSlide returns a copy of the slide with the given id, carrying
// fresh ids for the slide and every element, plus the index right after the
// source where it should be inserted. ok is false when the id is unknown.
func DuplicateSlide(p *model.Presentation, slideID string, ids IDSource) (dup model.Slide, insertAt int, ok bool) {
	if p == nil {
		return model.Slide{}, 0, false
	}
	for i, sl := range p.Slides {
		if sl.ID != slideID {
			continue
		}
		dup = sl.Clone()
		dup.ID = ids.NewID("slide")
		for j := range dup.Elements {
			dup.Elements[j].ID = ids.NewID("element")
		}
		return dup, i + 1, true
	}
	return model.Slide{}, 0, false
}

// SlideFromTemplate instantiates a slide from a template blueprint: the
// background and element blueprints are deep-copied and every element gets a
// fresh id, so the live slide never aliases catalog data.
func SlideFromTemplate(t *model.Template, ids IDSource) model.Slide {
	sl := model.Slide{
		ID:         ids.NewID("slide"),
		Type:       t.Type,
		Background: t.Background.Clone(),
		Template:   t.ID,
		Elements:   make([]model.TextElement, 0, len(t.Elements)),
	}
	for _, blueprint := range t.Elements {
		sl.Elements = append(sl.Elements, model.TextElement{
			ID:       ids.NewID("element"),
			Type:     blueprint.Type,
			Content:  blueprint.Content,
			Position: blueprint.Position,
			Size:     blueprint.Size,
			Style:    blueprint.Style,
		})
	}
	return sl
}

// NextSlide advances the current slide index by one when not already on the
// last slide; the returned action is a no-op otherwise.
func NextSlide(s State) (Action, bool) {
	p := s.Presentation
	if p == nil || p.CurrentSlideIndex >= len(p.Slides)-1 {
		return Action{}, false
	}
	return SetCurrentSlide(p.CurrentSlideIndex + 1), true
}

// PreviousSlide steps the current slide index back by one when possible.
func PreviousSlide(s State) (Action, bool) {
	p := s.Presentation
	if p == nil || p.CurrentSlideIndex <= 0 {
		return Action{}, false
	}
	return SetCurrentSlide(p.CurrentSlideIndex - 1), true
}
