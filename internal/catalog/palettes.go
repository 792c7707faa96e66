package catalog

import "github.com/slideai/slideai-server/internal/model"

// topicPalette binds a topic keyword to a palette. Declaration order matters:
// topic lookup returns the first keyword contained in the query.
type topicPalette struct {
	Keyword string
	Palette model.ColorPalette
}

// DefaultPalette is the safe fallback used when palette generation fails and
// no predefined topic matches.
func DefaultPalette() model.ColorPalette {
	return model.ColorPalette{
		Primary:     "#2563eb",
		Secondary:   "#64748b",
		Accent:      "#ea580c",
		Background:  "#ffffff",
		Text:        "#1e293b",
		Name:        "Professional Blue",
		Description: "A clean, professional color palette suitable for business presentations",
	}
}

func builtinPalettes() []topicPalette {
	return []topicPalette{
		{Keyword: "technology", Palette: model.ColorPalette{
			Primary:     "#3b82f6",
			Secondary:   "#64748b",
			Accent:      "#06b6d4",
			Background:  "#ffffff",
			Text:        "#1e293b",
			Name:        "Tech Blue",
			Description: "Modern and innovative palette perfect for technology presentations",
		}},
		{Keyword: "finance", Palette: model.ColorPalette{
			Primary:     "#059669",
			Secondary:   "#6b7280",
			Accent:      "#dc2626",
			Background:  "#ffffff",
			Text:        "#111827",
			Name:        "Financial Green",
			Description: "Professional and trustworthy palette for financial presentations",
		}},
		{Keyword: "healthcare", Palette: model.ColorPalette{
			Primary:     "#0ea5e9",
			Secondary:   "#64748b",
			Accent:      "#ef4444",
			Background:  "#ffffff",
			Text:        "#1e293b",
			Name:        "Healthcare Blue",
			Description: "Clean and trustworthy palette for healthcare presentations",
		}},
		{Keyword: "education", Palette: model.ColorPalette{
			Primary:     "#7c3aed",
			Secondary:   "#64748b",
			Accent:      "#f59e0b",
			Background:  "#ffffff",
			Text:        "#1e293b",
			Name:        "Education Purple",
			Description: "Inspiring and academic palette for educational content",
		}},
		{Keyword: "marketing", Palette: model.ColorPalette{
			Primary:     "#ec4899",
			Secondary:   "#64748b",
			Accent:      "#f97316",
			Background:  "#ffffff",
			Text:        "#1e293b",
			Name:        "Marketing Pink",
			Description: "Vibrant and engaging palette for marketing presentations",
		}},
		{Keyword: "creative", Palette: model.ColorPalette{
			Primary:     "#8b5cf6",
			Secondary:   "#64748b",
			Accent:      "#06b6d4",
			Background:  "#ffffff",
			Text:        "#1e293b",
			Name:        "Creative Purple",
			Description: "Artistic and inspiring palette for creative presentations",
		}},
	}
}
