// Package fitting adapts free-text content to the layout constraints a
// template declares for its content areas. The estimates are heuristic
// (average character width, not real font metrics) and every function is
// total: failed lookups degrade to safe defaults instead of erroring, so a
// fitting call can never take the editor down.
package fitting

import (
	"math"
	"strings"

	"github.com/slideai/slideai-server/internal/model"
)

const (
	defaultMinFontSize = 12
	defaultMaxFontSize = 72
	defaultFontSize    = 16
	defaultLineHeight  = 1.4
)

// Options overrides the constraints a content area declares. Nil fields fall
// back to the area's own MaxLines/AutoResize; zero font bounds fall back to
// the package defaults.
type Options struct {
	MaxLines    *int
	AutoResize  *bool
	MinFontSize float64
	MaxFontSize float64
}

// Fitted is render-ready content produced by FitContentToTemplate.
type Fitted struct {
	Content    string  `json:"content"`
	FontSize   float64 `json:"fontSize"`
	LineHeight float64 `json:"lineHeight"`
	Truncated  bool    `json:"truncated"`
}

// FitContentToTemplate fits newContent into the named content area of the
// template. When the area or its paired element cannot be resolved the input
// is returned unchanged with default metrics; this is a fallback, not an
// error.
func FitContentToTemplate(t *model.Template, contentAreaID, newContent string, opts Options) Fitted {
	area := findContentArea(t, contentAreaID)
	var element *model.TemplateElement
	if area != nil {
		element = pairedElement(t, area.Type)
	}
	if area == nil || element == nil {
		return Fitted{
			Content:    newContent,
			FontSize:   defaultFontSize,
			LineHeight: defaultLineHeight,
			Truncated:  false,
		}
	}

	maxLines := area.MaxLines
	if opts.MaxLines != nil {
		maxLines = *opts.MaxLines
	}
	autoResize := area.AutoResize
	if opts.AutoResize != nil {
		autoResize = *opts.AutoResize
	}
	minFontSize := opts.MinFontSize
	if minFontSize == 0 {
		minFontSize = defaultMinFontSize
	}

	content := newContent
	fontSize := element.Style.FontSize
	lineHeight := element.Style.LineHeight
	truncated := false

	if maxLines > 0 && area.Flexible {
		lines := strings.Split(content, "\n")
		if len(lines) > maxLines {
			content = strings.Join(lines[:maxLines], "\n")
			truncated = true
		}
	}

	if autoResize && area.Flexible {
		estimated := estimateLineCount(content, element.Size.Width, fontSize)
		availableHeight := element.Size.Height
		maxAllowed := int(math.Floor(availableHeight / (fontSize * lineHeight)))

		if estimated > maxAllowed {
			target := math.Max(minFontSize, math.Min(fontSize, availableHeight/(float64(estimated)*lineHeight)))
			if target >= minFontSize {
				fontSize = target
			} else {
				// Even the minimum font cannot hold every line; keep what fits.
				maxAtMin := int(math.Floor(availableHeight / (minFontSize * lineHeight)))
				lines := strings.Split(content, "\n")
				if len(lines) > maxAtMin {
					if maxAtMin < 0 {
						maxAtMin = 0
					}
					content = strings.Join(lines[:maxAtMin], "\n")
					truncated = true
				}
				fontSize = minFontSize
			}
		}
	}

	return Fitted{
		Content:    content,
		FontSize:   math.Round(fontSize),
		LineHeight: lineHeight,
		Truncated:  truncated,
	}
}

// estimateLineCount approximates how many rendered lines the text needs in a
// box of the given width at the given font size, using 0.6×fontSize as the
// average character width. Empty source lines still occupy one rendered line.
func estimateLineCount(text string, width, fontSize float64) int {
	charsPerLine := int(math.Floor(width / (fontSize * 0.6)))
	if charsPerLine < 1 {
		charsPerLine = 1
	}

	total := 0
	for _, line := range strings.Split(text, "\n") {
		n := len([]rune(line))
		if n == 0 {
			total++
			continue
		}
		total += (n + charsPerLine - 1) / charsPerLine
	}
	return total
}

func findContentArea(t *model.Template, id string) *model.ContentArea {
	for i := range t.ContentAreas {
		if t.ContentAreas[i].ID == id {
			return &t.ContentAreas[i]
		}
	}
	return nil
}

// pairedElement resolves the template element a content area maps to. The
// pairing is by type with body and bullet treated as equivalent, and the
// FIRST matching element wins. Templates with two elements of the same type
// are therefore indistinguishable here; existing templates declare at most
// one element per type, so the rule is kept as-is for compatibility.
func pairedElement(t *model.Template, areaType model.ElementType) *model.TemplateElement {
	for i := range t.Elements {
		el := &t.Elements[i]
		if el.Type == areaType {
			return el
		}
		if areaType == model.ElementBody && el.Type == model.ElementBullet {
			return el
		}
	}
	return nil
}
