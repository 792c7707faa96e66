// Package catalog is the static, read-only registry of slide templates,
// themes, gradient presets and topic color palettes. Lookups return deep
// copies so callers can never mutate registry data through a result.
package catalog

import (
	"strings"

	"github.com/slideai/slideai-server/internal/model"
)

// Catalog indexes the built-in design assets. The zero value is not usable;
// construct with New.
type Catalog struct {
	templates   []model.Template
	templateIdx map[string]int
	themes      []model.Theme
	themeIdx    map[string]int
	gradients   []GradientPreset
	palettes    []topicPalette
}

// New builds the registry from the built-in asset tables.
func New() *Catalog {
	c := &Catalog{
		templates:   builtinTemplates(),
		templateIdx: make(map[string]int),
		themes:      builtinThemes(),
		themeIdx:    make(map[string]int),
		gradients:   builtinGradients(),
		palettes:    builtinPalettes(),
	}
	for i := range c.templates {
		c.templateIdx[c.templates[i].ID] = i
	}
	for i := range c.themes {
		c.themeIdx[c.themes[i].ID] = i
	}
	return c
}

// Templates lists every template, in catalog order.
func (c *Catalog) Templates() []model.Template {
	out := make([]model.Template, len(c.templates))
	for i := range c.templates {
		out[i] = *c.templates[i].Clone()
	}
	return out
}

// TemplateByID looks up one template. ok is false for unknown ids.
func (c *Catalog) TemplateByID(id string) (model.Template, bool) {
	i, ok := c.templateIdx[id]
	if !ok {
		return model.Template{}, false
	}
	return *c.templates[i].Clone(), true
}

// TemplatesByCategory lists the templates in the given category, preserving
// catalog order.
func (c *Catalog) TemplatesByCategory(category string) []model.Template {
	var out []model.Template
	for i := range c.templates {
		if c.templates[i].Category == category {
			out = append(out, *c.templates[i].Clone())
		}
	}
	return out
}

// Themes lists every theme.
func (c *Catalog) Themes() []model.Theme {
	return append([]model.Theme(nil), c.themes...)
}

// ThemeByID looks up one theme. ok is false for unknown ids.
func (c *Catalog) ThemeByID(id string) (model.Theme, bool) {
	i, ok := c.themeIdx[id]
	if !ok {
		return model.Theme{}, false
	}
	return c.themes[i], true
}

// DefaultTheme returns the theme new presentations start with.
func (c *Catalog) DefaultTheme() model.Theme {
	t, _ := c.ThemeByID(DefaultThemeID)
	return t
}

// Gradients lists the background gradient presets.
func (c *Catalog) Gradients() []GradientPreset {
	out := make([]GradientPreset, len(c.gradients))
	for i, g := range c.gradients {
		out[i] = GradientPreset{Name: g.Name, Gradient: *g.Gradient.Clone()}
	}
	return out
}

// PaletteForTopic matches a free-text topic against the predefined palette
// keywords. The first keyword (in declaration order) contained in the topic
// wins; ok is false when nothing matches.
func (c *Catalog) PaletteForTopic(topic string) (model.ColorPalette, bool) {
	lower := strings.ToLower(topic)
	for _, tp := range c.palettes {
		if strings.Contains(lower, tp.Keyword) {
			return tp.Palette, true
		}
	}
	return model.ColorPalette{}, false
}
