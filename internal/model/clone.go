package model

// Structural deep copies. Catalog entries are shared read-only data; anything
// that crosses into a live document must go through these so later edits never
// reach back into the catalog.

// Clone returns a deep copy of the gradient.
func (g *Gradient) Clone() *Gradient {
	if g == nil {
		return nil
	}
	out := *g
	out.Colors = append([]string(nil), g.Colors...)
	return &out
}

// Clone returns a deep copy of the background.
func (b SlideBackground) Clone() SlideBackground {
	out := b
	out.Gradient = b.Gradient.Clone()
	return out
}

// Clone returns a deep copy of the element.
func (e TextElement) Clone() TextElement {
	return e
}

// Clone returns a deep copy of the slide.
func (s Slide) Clone() Slide {
	out := s
	out.Background = s.Background.Clone()
	out.Elements = make([]TextElement, len(s.Elements))
	copy(out.Elements, s.Elements)
	return out
}

// Clone returns a deep copy of the presentation.
func (p *Presentation) Clone() *Presentation {
	if p == nil {
		return nil
	}
	out := *p
	out.Slides = make([]Slide, len(p.Slides))
	for i, s := range p.Slides {
		out.Slides[i] = s.Clone()
	}
	return &out
}

// Clone returns a deep copy of the template, including content areas and
// element blueprints.
func (t *Template) Clone() *Template {
	if t == nil {
		return nil
	}
	out := *t
	out.Tags = append([]string(nil), t.Tags...)
	out.Elements = make([]TemplateElement, len(t.Elements))
	copy(out.Elements, t.Elements)
	out.Background = t.Background.Clone()
	out.ContentAreas = make([]ContentArea, len(t.ContentAreas))
	copy(out.ContentAreas, t.ContentAreas)
	return &out
}
