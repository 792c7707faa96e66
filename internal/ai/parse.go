package ai

import (
	"encoding/json"
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// stripCodeFence removes a surrounding markdown code fence, which models emit
// despite being asked for bare JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// parseSlideContent reads the model output as JSON, falling back to treating
// the first line as the title and the rest as bullet content.
func parseSlideContent(raw string) *GeneratedSlideContent {
	cleaned := stripCodeFence(raw)

	var parsed struct {
		Title    string          `json:"title"`
		Content  json.RawMessage `json:"content"`
		Subtitle string          `json:"subtitle"`
		Notes    string          `json:"notes"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil {
		out := &GeneratedSlideContent{
			Title:    parsed.Title,
			Subtitle: parsed.Subtitle,
			Notes:    parsed.Notes,
		}
		if out.Title == "" {
			out.Title = "Generated Title"
		}
		// content may be an array or a single string
		var list []string
		if err := json.Unmarshal(parsed.Content, &list); err == nil {
			out.Content = list
		} else {
			var single string
			if err := json.Unmarshal(parsed.Content, &single); err == nil && single != "" {
				out.Content = []string{single}
			}
		}
		if len(out.Content) == 0 {
			out.Content = []string{"Generated content"}
		}
		return out
	}

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	out := &GeneratedSlideContent{Title: "Generated Title", Content: []string{"Generated content"}}
	if len(lines) > 0 {
		out.Title = lines[0]
	}
	if len(lines) > 1 {
		out.Content = lines[1:]
	}
	return out
}

// parseOutline reads the model output as JSON, falling back to a minimal
// three-slide outline.
func parseOutline(raw string) *Outline {
	cleaned := stripCodeFence(raw)

	var parsed Outline
	if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil && len(parsed.Slides) > 0 {
		if parsed.Title == "" {
			parsed.Title = "Generated Presentation"
		}
		return &parsed
	}

	return &Outline{
		Title: "Generated Presentation",
		Slides: []OutlineSlide{
			{Type: "title", Title: "Title Slide", Description: "Introduction to the topic"},
			{Type: "content", Title: "Main Content", Description: "Key points and information"},
			{Type: "conclusion", Title: "Conclusion", Description: "Summary and next steps"},
		},
	}
}

// parsePalette reads the model output as JSON and validates every color as a
// six-digit hex code; anything invalid falls back to the default professional
// palette.
func parsePalette(raw string) *Palette {
	cleaned := stripCodeFence(raw)

	var parsed Palette
	if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil {
		valid := true
		for _, c := range []string{parsed.Primary, parsed.Secondary, parsed.Accent, parsed.Background, parsed.Text} {
			if !hexColor.MatchString(c) {
				valid = false
				break
			}
		}
		if valid {
			if parsed.Name == "" {
				parsed.Name = "Generated Palette"
			}
			if parsed.Description == "" {
				parsed.Description = "AI-generated color palette"
			}
			return &parsed
		}
	}

	return &Palette{
		Primary:     "#2563eb",
		Secondary:   "#64748b",
		Accent:      "#ea580c",
		Background:  "#ffffff",
		Text:        "#1e293b",
		Name:        "Professional Blue",
		Description: "A clean, professional color palette suitable for business presentations",
	}
}
