package model

import "time"

// Logical canvas dimensions. Element positions and sizes are expressed in
// these units regardless of how the client renders or zooms a slide.
const (
	CanvasWidth  = 1000
	CanvasHeight = 600
)

// NewPresentationID is the sentinel id carried by a presentation that has
// never been persisted. The first successful save replaces it with a real id.
const NewPresentationID = "new"

// ElementType classifies a text element and drives palette cascades and
// content-area pairing.
type ElementType string

const (
	ElementTitle    ElementType = "title"
	ElementSubtitle ElementType = "subtitle"
	ElementBody     ElementType = "body"
	ElementBullet   ElementType = "bullet"
)

// SlideType describes the layout family a slide was created from.
type SlideType string

const (
	SlideTitle     SlideType = "title"
	SlideContent   SlideType = "content"
	SlideTwoColumn SlideType = "two-column"
	SlideImage     SlideType = "image"
	SlideQuote     SlideType = "quote"
	SlideSection   SlideType = "section"
	SlideThankYou  SlideType = "thank-you"
	SlideBlank     SlideType = "blank"
)

// Position locates an element's top-left corner on the logical canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is an element's extent in logical canvas units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TextStyle carries the renderable text attributes of an element.
type TextStyle struct {
	FontSize   float64 `json:"fontSize"`
	Color      string  `json:"color"`
	FontWeight string  `json:"fontWeight"`
	TextAlign  string  `json:"textAlign"`
	FontFamily string  `json:"fontFamily"`
	LineHeight float64 `json:"lineHeight"`
}

// TextElement is a positioned, styled text run on a slide. Ids are unique
// within the owning slide; the format is opaque.
type TextElement struct {
	ID       string      `json:"id"`
	Type     ElementType `json:"type"`
	Content  string      `json:"content"`
	Position Position    `json:"position"`
	Size     Size        `json:"size"`
	Style    TextStyle   `json:"style"`
}

// Gradient describes a multi-stop background fill.
type Gradient struct {
	Type      string   `json:"type"` // linear | radial
	Direction string   `json:"direction"`
	Colors    []string `json:"colors"`
}

// SlideBackground is either a solid color or a gradient fill.
type SlideBackground struct {
	Type     string    `json:"type"` // solid | gradient
	Color    string    `json:"color"`
	Gradient *Gradient `json:"gradient,omitempty"`
}

// Slide is one page of the deck. Element order is z/visual order.
type Slide struct {
	ID         string          `json:"id"`
	Type       SlideType       `json:"type"`
	Background SlideBackground `json:"background"`
	Elements   []TextElement   `json:"elements"`
	Template   string          `json:"template"`
}

// ThemeColors is the five-color bundle shared by themes and palettes.
type ThemeColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// ThemeFonts names the heading and body font families.
type ThemeFonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Theme is an immutable named color/font bundle applied wholesale to a
// presentation.
type Theme struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Colors ThemeColors `json:"colors"`
	Fonts  ThemeFonts  `json:"fonts"`
}

// ColorPalette is the theme color set plus naming metadata, produced by
// generation or catalog lookup and consumed by the apply-palette transition.
type ColorPalette struct {
	Primary     string `json:"primary"`
	Secondary   string `json:"secondary"`
	Accent      string `json:"accent"`
	Background  string `json:"background"`
	Text        string `json:"text"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Presentation is the aggregate document. CurrentSlideIndex stays within
// [0, len(Slides)-1] whenever Slides is non-empty.
type Presentation struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Slides            []Slide   `json:"slides"`
	Theme             Theme     `json:"theme"`
	CurrentSlideIndex int       `json:"currentSlideIndex"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// IsNew reports whether the presentation still carries the unsaved sentinel id.
func (p *Presentation) IsNew() bool {
	return p.ID == "" || p.ID == NewPresentationID
}

// ContentArea is a template-declared slot with layout constraints that free
// text can be fitted into. Pairing with a template element is by type, not by
// explicit reference; see the fitting package for the first-match rule.
type ContentArea struct {
	ID         string      `json:"id"`
	Type       ElementType `json:"type"`
	Flexible   bool        `json:"flexible"`
	MaxLines   int         `json:"maxLines,omitempty"`
	AutoResize bool        `json:"autoResize"`
}

// TemplateElement is a TextElement blueprint without an id; instantiation
// assigns fresh ids.
type TemplateElement struct {
	Type     ElementType `json:"type"`
	Content  string      `json:"content"`
	Position Position    `json:"position"`
	Size     Size        `json:"size"`
	Style    TextStyle   `json:"style"`
}

// Template is a reusable slide blueprint.
type Template struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Type         SlideType         `json:"type"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	Tags         []string          `json:"tags"`
	Elements     []TemplateElement `json:"elements"`
	Background   SlideBackground   `json:"background"`
	Layout       string            `json:"layout"`
	ContentAreas []ContentArea     `json:"contentAreas"`
}
