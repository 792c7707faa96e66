package fitting

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/slideai/slideai-server/internal/model"
)

var (
	bulletMarker = regexp.MustCompile(`^[\s]*[•\-\*]`)
	listMarker   = regexp.MustCompile(`(?m)^\s*[•\-*\d+.]`)
)

type contentStats struct {
	wordCount       int
	lineCount       int
	avgWordsPerLine float64
	hasLists        bool
}

// AdaptTemplateLayout returns a copy of the template with flexible element
// geometry adjusted to the content destined for each area. The input template
// is never modified. Three heuristics apply, in order, per element:
//
//   - tall lists get more room: >3 lines in a box under 200pt grows the box
//     to lineCount·fontSize·lineHeight, capped at 300pt
//   - sparse content gets emphasis: <10 words at under 32pt scales the font
//     up 1.5×, capped at 48pt
//   - dense content gets compressed: >100 words above 16pt scales the font
//     down 0.8×, floored at 14pt
func AdaptTemplateLayout(t *model.Template, contentMap map[string]string) *model.Template {
	adapted := t.Clone()
	stats := analyzeContent(contentMap)

	for i := range adapted.Elements {
		el := &adapted.Elements[i]
		area := areaForElement(adapted, el.Type)
		if area == nil || !area.Flexible {
			continue
		}
		st, ok := stats[area.ID]
		if !ok {
			continue
		}

		if st.lineCount > 3 && el.Size.Height < 200 {
			el.Size.Height = math.Min(300, float64(st.lineCount)*el.Style.FontSize*el.Style.LineHeight)
		}
		if st.wordCount < 10 && el.Style.FontSize < 32 {
			el.Style.FontSize = math.Min(48, el.Style.FontSize*1.5)
		}
		if st.wordCount > 100 && el.Style.FontSize > 16 {
			el.Style.FontSize = math.Max(14, el.Style.FontSize*0.8)
		}
	}
	return adapted
}

// SuggestTemplatesForContent ranks template ids against the shape of the
// given content. Matching buckets are concatenated in a fixed order, so ids
// that satisfy several heuristics appear more than once — callers treat
// repetition as a weak relevance signal.
func SuggestTemplatesForContent(contentMap map[string]string) []string {
	stats := analyzeContent(contentMap)

	totalWords := 0
	hasLongContent := false
	allShort := true
	for _, st := range stats {
		totalWords += st.wordCount
		if st.lineCount > 5 {
			hasLongContent = true
		}
		if st.lineCount > 2 {
			allShort = false
		}
	}
	hasMultipleItems := len(contentMap) > 2

	var suggestions []string
	if allShort && !hasMultipleItems {
		suggestions = append(suggestions, "quote-slide", "section-header", "thank-you")
	}
	if hasLongContent {
		suggestions = append(suggestions, "content-slide", "learning-objectives", "agenda-slide")
	}
	if hasMultipleItems {
		suggestions = append(suggestions, "two-column", "swot-analysis", "feature-comparison", "business-metrics")
	}
	if totalWords > 200 {
		suggestions = append(suggestions, "content-slide", "problem-solution")
	}
	return suggestions
}

// AutoFormatContent normalizes raw text for its destination: bullet elements
// gain "• " markers when none are present, quote bodies are wrapped in
// quotation marks, and titles are title-cased. Other combinations only get
// trimmed.
func AutoFormatContent(content string, templateType model.SlideType, elementType model.ElementType) string {
	formatted := strings.TrimSpace(content)

	if elementType == model.ElementBullet {
		lines := strings.Split(formatted, "\n")
		marked := false
		for _, line := range lines {
			if bulletMarker.MatchString(line) {
				marked = true
				break
			}
		}
		if !marked {
			var out []string
			for _, line := range lines {
				if strings.TrimSpace(line) == "" {
					continue
				}
				out = append(out, "• "+strings.TrimSpace(line))
			}
			formatted = strings.Join(out, "\n")
		}
	}

	if templateType == model.SlideQuote && elementType == model.ElementBody {
		if !strings.HasPrefix(formatted, `"`) && !strings.HasPrefix(formatted, "“") {
			formatted = `"` + formatted + `"`
		}
	}

	if templateType == model.SlideTitle && elementType == model.ElementTitle {
		formatted = titleCase(formatted)
	}

	return formatted
}

// analyzeContent computes per-area shape statistics used by the layout and
// suggestion heuristics. Blank lines do not count toward lineCount.
func analyzeContent(contentMap map[string]string) map[string]contentStats {
	stats := make(map[string]contentStats, len(contentMap))
	for id, content := range contentMap {
		words := strings.Fields(content)
		lines := 0
		for _, line := range strings.Split(content, "\n") {
			if strings.TrimSpace(line) != "" {
				lines++
			}
		}
		st := contentStats{
			wordCount: len(words),
			lineCount: lines,
			hasLists:  listMarker.MatchString(content),
		}
		if lines > 0 {
			st.avgWordsPerLine = float64(st.wordCount) / float64(lines)
		}
		stats[id] = st
	}
	return stats
}

// areaForElement is the inverse of pairedElement: the first content area whose
// type matches the element, with body areas also claiming bullet elements.
func areaForElement(t *model.Template, elType model.ElementType) *model.ContentArea {
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

// titleCase uppercases the first word character of each token and lowercases
// what follows it, preserving whitespace and leaving any punctuation before
// the first word character untouched (so "(hello" becomes "(Hello").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	started := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			started = false
			b.WriteRune(r)
		case started:
			b.WriteRune(unicode.ToLower(r))
		case isWordRune(r):
			b.WriteRune(unicode.ToUpper(r))
			started = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
