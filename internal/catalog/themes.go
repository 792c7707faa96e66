package catalog

import "github.com/slideai/slideai-server/internal/model"

// DefaultThemeID names the theme new presentations start with.
const DefaultThemeID = "professional-blue"

// GradientPreset is a named background gradient offered by the design tools.
type GradientPreset struct {
	Name     string         `json:"name"`
	Gradient model.Gradient `json:"gradient"`
}

func builtinThemes() []model.Theme {
	return []model.Theme{
		{
			ID:   DefaultThemeID,
			Name: "Professional Blue",
			Colors: model.ThemeColors{
				Primary:    "#2563eb",
				Secondary:  "#64748b",
				Accent:     "#ea580c",
				Background: "#ffffff",
				Text:       "#1e293b",
			},
			Fonts: model.ThemeFonts{Heading: "Inter", Body: "Inter"},
		},
		{
			ID:   "modern-dark",
			Name: "Modern Dark",
			Colors: model.ThemeColors{
				Primary:    "#38bdf8",
				Secondary:  "#94a3b8",
				Accent:     "#f59e0b",
				Background: "#0f172a",
				Text:       "#f1f5f9",
			},
			Fonts: model.ThemeFonts{Heading: "Inter", Body: "Inter"},
		},
		{
			ID:   "warm-minimal",
			Name: "Warm Minimal",
			Colors: model.ThemeColors{
				Primary:    "#b45309",
				Secondary:  "#78716c",
				Accent:     "#dc2626",
				Background: "#fffbeb",
				Text:       "#292524",
			},
			Fonts: model.ThemeFonts{Heading: "Georgia", Body: "Inter"},
		},
	}
}

func builtinGradients() []GradientPreset {
	return []GradientPreset{
		{Name: "Sunset", Gradient: model.Gradient{Type: "linear", Direction: "45deg", Colors: []string{"#f97316", "#fb923c", "#fbbf24"}}},
		{Name: "Ocean", Gradient: model.Gradient{Type: "linear", Direction: "135deg", Colors: []string{"#0ea5e9", "#38bdf8", "#06b6d4"}}},
		{Name: "Purple Dream", Gradient: model.Gradient{Type: "linear", Direction: "45deg", Colors: []string{"#7c3aed", "#a855f7", "#c084fc"}}},
		{Name: "Forest", Gradient: model.Gradient{Type: "linear", Direction: "135deg", Colors: []string{"#16a34a", "#22c55e", "#84cc16"}}},
		{Name: "Fire", Gradient: model.Gradient{Type: "linear", Direction: "45deg", Colors: []string{"#dc2626", "#ef4444", "#f97316"}}},
		{Name: "Midnight", Gradient: model.Gradient{Type: "linear", Direction: "135deg", Colors: []string{"#1e293b", "#334155", "#475569"}}},
	}
}
