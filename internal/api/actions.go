package api

import (
	"github.com/pkg/errors"

	"github.com/slideai/slideai-server/internal/deck"
	"github.com/slideai/slideai-server/internal/model"
)

// actionRequest is the wire form of one reducer action. Type selects the
// variant; the remaining fields carry its payload and are ignored otherwise.
type actionRequest struct {
	Type string `json:"type"`

	Presentation *model.Presentation `json:"presentation,omitempty"`
	Slide        *model.Slide        `json:"slide,omitempty"`
	InsertAt     *int                `json:"insertAt,omitempty"`
	SlideID      string              `json:"slideId,omitempty"`
	ElementID    string              `json:"elementId,omitempty"`
	Element      *model.TextElement  `json:"element,omitempty"`
	SlidePatch   *deck.SlidePatch    `json:"slidePatch,omitempty"`
	ElementPatch *deck.ElementPatch  `json:"elementPatch,omitempty"`
	FromIndex    *int                `json:"fromIndex,omitempty"`
	ToIndex      *int                `json:"toIndex,omitempty"`
	Index        *int                `json:"index,omitempty"`
	SelectedID   string              `json:"selectedId,omitempty"`
	Value        *bool               `json:"value,omitempty"`
	Zoom         *float64            `json:"zoom,omitempty"`
	Theme        *model.Theme        `json:"theme,omitempty"`
	Palette      *model.ColorPalette `json:"palette,omitempty"`
}

// decodeAction turns a wire action into a reducer action, validating that the
// payload fields the variant needs are present.
func decodeAction(req actionRequest) (deck.Action, error) {
	switch deck.ActionType(req.Type) {
	case deck.ActionSetPresentation:
		return deck.SetPresentation(req.Presentation), nil
	case deck.ActionSetLoading:
		if req.Value == nil {
			return deck.Action{}, errors.New("SET_LOADING requires value")
		}
		return deck.SetLoading(*req.Value), nil
	case deck.ActionAddSlide:
		if req.Slide == nil {
			return deck.Action{}, errors.New("ADD_SLIDE requires slide")
		}
		return deck.AddSlide(*req.Slide, req.InsertAt), nil
	case deck.ActionDeleteSlide:
		if req.SlideID == "" {
			return deck.Action{}, errors.New("DELETE_SLIDE requires slideId")
		}
		return deck.DeleteSlide(req.SlideID), nil
	case deck.ActionUpdateSlide:
		if req.SlideID == "" || req.SlidePatch == nil {
			return deck.Action{}, errors.New("UPDATE_SLIDE requires slideId and slidePatch")
		}
		return deck.UpdateSlide(req.SlideID, *req.SlidePatch), nil
	case deck.ActionReorderSlides:
		if req.FromIndex == nil || req.ToIndex == nil {
			return deck.Action{}, errors.New("REORDER_SLIDES requires fromIndex and toIndex")
		}
		return deck.ReorderSlides(*req.FromIndex, *req.ToIndex), nil
	case deck.ActionSetCurrentSlide:
		if req.Index == nil {
			return deck.Action{}, errors.New("SET_CURRENT_SLIDE requires index")
		}
		return deck.SetCurrentSlide(*req.Index), nil
	case deck.ActionAddElement:
		if req.SlideID == "" || req.Element == nil {
			return deck.Action{}, errors.New("ADD_ELEMENT requires slideId and element")
		}
		return deck.AddElement(req.SlideID, *req.Element), nil
	case deck.ActionUpdateElement:
		if req.SlideID == "" || req.ElementID == "" || req.ElementPatch == nil {
			return deck.Action{}, errors.New("UPDATE_ELEMENT requires slideId, elementId and elementPatch")
		}
		return deck.UpdateElement(req.SlideID, req.ElementID, *req.ElementPatch), nil
	case deck.ActionDeleteElement:
		if req.SlideID == "" || req.ElementID == "" {
			return deck.Action{}, errors.New("DELETE_ELEMENT requires slideId and elementId")
		}
		return deck.DeleteElement(req.SlideID, req.ElementID), nil
	case deck.ActionSetSelectedElement:
		return deck.SetSelectedElement(req.SelectedID), nil
	case deck.ActionSetEditing:
		if req.Value == nil {
			return deck.Action{}, errors.New("SET_EDITING requires value")
		}
		return deck.SetEditing(*req.Value), nil
	case deck.ActionSetPresentMode:
		if req.Value == nil {
			return deck.Action{}, errors.New("SET_PRESENTATION_MODE requires value")
		}
		return deck.SetPresentationMode(*req.Value), nil
	case deck.ActionSetZoom:
		if req.Zoom == nil {
			return deck.Action{}, errors.New("SET_ZOOM requires zoom")
		}
		return deck.SetZoom(*req.Zoom), nil
	case deck.ActionUpdateTheme:
		if req.Theme == nil {
			return deck.Action{}, errors.New("UPDATE_THEME requires theme")
		}
		return deck.UpdateTheme(*req.Theme), nil
	case deck.ActionApplyColorPalette:
		if req.Palette == nil {
			return deck.Action{}, errors.New("APPLY_COLOR_PALETTE requires palette")
		}
		return deck.ApplyColorPalette(*req.Palette), nil
	default:
		return deck.Action{}, errors.Errorf("unknown action type %q", req.Type)
	}
}

// stateResponse is the editor state snapshot returned after opens, dispatches
// and saves.
type stateResponse struct {
	Presentation       *model.Presentation `json:"presentation"`
	SelectedElementID  string              `json:"selectedElementId,omitempty"`
	Zoom               float64             `json:"zoom"`
	IsEditing          bool                `json:"isEditing"`
	IsLoading          bool                `json:"isLoading"`
	IsPresentationMode bool                `json:"isPresentationMode"`
}

func toStateResponse(st deck.State) stateResponse {
	return stateResponse{
		Presentation:       st.Presentation,
		SelectedElementID:  st.SelectedElementID,
		Zoom:               st.Zoom,
		IsEditing:          st.IsEditing,
		IsLoading:          st.IsLoading,
		IsPresentationMode: st.IsPresentationMode,
	}
}
