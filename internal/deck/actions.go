package deck

import (
	"github.com/slideai/slideai-server/internal/model"
)

// ActionType discriminates the transition variants understood by Reduce.
type ActionType string

const (
	ActionSetPresentation    ActionType = "SET_PRESENTATION"
	ActionSetLoading         ActionType = "SET_LOADING"
	ActionAddSlide           ActionType = "ADD_SLIDE"
	ActionDeleteSlide        ActionType = "DELETE_SLIDE"
	ActionUpdateSlide        ActionType = "UPDATE_SLIDE"
	ActionReorderSlides      ActionType = "REORDER_SLIDES"
	ActionSetCurrentSlide    ActionType = "SET_CURRENT_SLIDE"
	ActionAddElement         ActionType = "ADD_ELEMENT"
	ActionUpdateElement      ActionType = "UPDATE_ELEMENT"
	ActionDeleteElement      ActionType = "DELETE_ELEMENT"
	ActionSetSelectedElement ActionType = "SET_SELECTED_ELEMENT"
	ActionSetEditing         ActionType = "SET_EDITING"
	ActionSetPresentMode     ActionType = "SET_PRESENTATION_MODE"
	ActionSetZoom            ActionType = "SET_ZOOM"
	ActionUpdateTheme        ActionType = "UPDATE_THEME"
	ActionApplyColorPalette  ActionType = "APPLY_COLOR_PALETTE"
)

// SlidePatch is a partial slide update. Nil fields are left untouched; set
// fields replace the slide's value wholesale (shallow merge).
type SlidePatch struct {
	Type       *model.SlideType       `json:"type,omitempty"`
	Background *model.SlideBackground `json:"background,omitempty"`
	Elements   *[]model.TextElement   `json:"elements,omitempty"`
	Template   *string                `json:"template,omitempty"`
}

// ElementPatch is a partial element update. Style, position and size replace
// the whole nested struct; callers wanting a field-level style merge build the
// merged struct themselves, mirroring how the editor UI dispatches updates.
type ElementPatch struct {
	Type     *model.ElementType `json:"type,omitempty"`
	Content  *string            `json:"content,omitempty"`
	Position *model.Position    `json:"position,omitempty"`
	Size     *model.Size        `json:"size,omitempty"`
	Style    *model.TextStyle   `json:"style,omitempty"`
}

// Action is one reducer command. Build values with the constructors below;
// the payload fields are interpreted according to Type.
type Action struct {
	Type ActionType

	presentation *model.Presentation
	slide        *model.Slide
	insertAt     *int
	slideID      string
	elementID    string
	slidePatch   SlidePatch
	elementPatch ElementPatch
	fromIndex    int
	toIndex      int
	index        int
	element      model.TextElement
	selected     string
	flag         bool
	zoom         float64
	theme        model.Theme
	palette      model.ColorPalette
}

// SetPresentation replaces the whole document; nil clears to the empty state.
func SetPresentation(p *model.Presentation) Action {
	return Action{Type: ActionSetPresentation, presentation: p}
}

// SetLoading toggles the transient loading flag.
func SetLoading(v bool) Action {
	return Action{Type: ActionSetLoading, flag: v}
}

// AddSlide inserts the slide at the given index; a nil index appends.
func AddSlide(s model.Slide, at *int) Action {
	return Action{Type: ActionAddSlide, slide: &s, insertAt: at}
}

// DeleteSlide removes the slide with the given id, if present.
func DeleteSlide(slideID string) Action {
	return Action{Type: ActionDeleteSlide, slideID: slideID}
}

// UpdateSlide shallow-merges the patch into the matching slide.
func UpdateSlide(slideID string, patch SlidePatch) Action {
	return Action{Type: ActionUpdateSlide, slideID: slideID, slidePatch: patch}
}

// ReorderSlides moves the slide at from to position to. Indices must be valid;
// out-of-range values are rejected as a no-op.
func ReorderSlides(from, to int) Action {
	return Action{Type: ActionReorderSlides, fromIndex: from, toIndex: to}
}

// SetCurrentSlide selects a slide by index, clamped into range.
func SetCurrentSlide(i int) Action {
	return Action{Type: ActionSetCurrentSlide, index: i}
}

// AddElement appends the element to the slide's element list.
func AddElement(slideID string, e model.TextElement) Action {
	return Action{Type: ActionAddElement, slideID: slideID, element: e}
}

// UpdateElement shallow-merges the patch into the matching element.
func UpdateElement(slideID, elementID string, patch ElementPatch) Action {
	return Action{Type: ActionUpdateElement, slideID: slideID, elementID: elementID, elementPatch: patch}
}

// DeleteElement removes the matching element, if present.
func DeleteElement(slideID, elementID string) Action {
	return Action{Type: ActionDeleteElement, slideID: slideID, elementID: elementID}
}

// SetSelectedElement records the transient selection; empty clears it.
func SetSelectedElement(elementID string) Action {
	return Action{Type: ActionSetSelectedElement, selected: elementID}
}

// SetEditing toggles the transient editing flag.
func SetEditing(v bool) Action {
	return Action{Type: ActionSetEditing, flag: v}
}

// SetPresentationMode toggles presentation mode.
func SetPresentationMode(v bool) Action {
	return Action{Type: ActionSetPresentMode, flag: v}
}

// SetZoom sets the viewport zoom, clamped to [MinZoom, MaxZoom].
func SetZoom(z float64) Action {
	return Action{Type: ActionSetZoom, zoom: z}
}

// UpdateTheme replaces the document theme wholesale.
func UpdateTheme(t model.Theme) Action {
	return Action{Type: ActionUpdateTheme, theme: t}
}

// ApplyColorPalette rewrites the theme colors and cascades new colors onto
// every slide background and element, keyed by element type.
func ApplyColorPalette(p model.ColorPalette) Action {
	return Action{Type: ActionApplyColorPalette, palette: p}
}
