// Package deck holds the in-memory editing state for one open presentation
// and the pure transition function that advances it. All transitions are
// total: unknown ids reduce to no-ops and out-of-range values clamp, so a
// racing UI event can never corrupt or crash the document.
package deck

import (
	"github.com/slideai/slideai-server/internal/model"
)

// Zoom bounds for the editor viewport.
const (
	MinZoom = 0.25
	MaxZoom = 2.0
)

// State is the full editor state: the live document plus transient UI flags.
// SelectedElementID is empty when nothing is selected.
type State struct {
	Presentation       *model.Presentation
	SelectedElementID  string
	Zoom               float64
	IsEditing          bool
	IsLoading          bool
	IsPresentationMode bool
}

// NewState returns the initial editor state with no document loaded.
func NewState() State {
	return State{Zoom: 1}
}

// CurrentSlide returns the slide addressed by CurrentSlideIndex, or nil when
// no document is loaded or the deck is empty.
func (s State) CurrentSlide() *model.Slide {
	p := s.Presentation
	if p == nil || len(p.Slides) == 0 {
		return nil
	}
	if p.CurrentSlideIndex < 0 || p.CurrentSlideIndex >= len(p.Slides) {
		return nil
	}
	return &p.Slides[p.CurrentSlideIndex]
}
