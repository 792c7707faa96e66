package ai

// SlideContentRequest asks for the content of one slide.
type SlideContentRequest struct {
	Topic     string `json:"topic"`
	SlideType string `json:"slideType"` // title | content | bullet-points | conclusion | agenda | overview
	Context   string `json:"context,omitempty"`
	Audience  string `json:"audience,omitempty"`
	Tone      string `json:"tone,omitempty"`
	Length    string `json:"length,omitempty"`
}

// GeneratedSlideContent is the parsed result of a slide generation call.
type GeneratedSlideContent struct {
	Title    string   `json:"title"`
	Content  []string `json:"content"`
	Subtitle string   `json:"subtitle,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// OutlineRequest asks for a complete presentation outline.
type OutlineRequest struct {
	Topic     string   `json:"topic"`
	Audience  string   `json:"audience,omitempty"`
	Duration  int      `json:"duration,omitempty"` // minutes
	Tone      string   `json:"tone,omitempty"`
	KeyPoints []string `json:"keyPoints,omitempty"`
}

// OutlineSlide is one planned slide in an outline.
type OutlineSlide struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Outline is the parsed result of an outline generation call.
type Outline struct {
	Title  string         `json:"title"`
	Slides []OutlineSlide `json:"slides"`
}

// PaletteRequest asks for a color palette matching a topic.
type PaletteRequest struct {
	Topic    string `json:"topic"`
	Mood     string `json:"mood,omitempty"`
	Industry string `json:"industry,omitempty"`
	Audience string `json:"audience,omitempty"`
}

// Palette is the parsed result of a palette generation call. Field layout
// matches model.ColorPalette; kept separate so the wire shape can evolve
// without touching the document model.
type Palette struct {
	Primary     string `json:"primary"`
	Secondary   string `json:"secondary"`
	Accent      string `json:"accent"`
	Background  string `json:"background"`
	Text        string `json:"text"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
