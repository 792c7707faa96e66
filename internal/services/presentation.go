// Package services holds the application services between the HTTP layer and
// the store: presentation persistence and slide composition.
package services

import (
	"context"
	"strings"

	"github.com/slideai/slideai-server/internal/model"
	"github.com/slideai/slideai-server/internal/store"
)

// PresentationService persists presentation documents for their owners.
type PresentationService struct {
	store store.Store
}

func NewPresentationService(s store.Store) *PresentationService {
	return &PresentationService{store: s}
}

// Save upserts the document for the owner. A document carrying the unsaved
// sentinel id is assigned a real id; the returned presentation carries it.
func (s *PresentationService) Save(ctx context.Context, ownerID string, p *model.Presentation) (*model.Presentation, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, model.ErrValidation
	}
	if p == nil || strings.TrimSpace(p.Title) == "" {
		return nil, model.ErrValidation
	}
	return s.store.Presentations().Save(ctx, ownerID, p)
}

func (s *PresentationService) Get(ctx context.Context, ownerID, presentationID string) (*model.Presentation, error) {
	if ownerID == "" || presentationID == "" {
		return nil, model.ErrValidation
	}
	return s.store.Presentations().Get(ctx, ownerID, presentationID)
}

func (s *PresentationService) List(ctx context.Context, ownerID string) ([]*model.Presentation, error) {
	if ownerID == "" {
		return nil, model.ErrValidation
	}
	return s.store.Presentations().List(ctx, ownerID)
}

func (s *PresentationService) Delete(ctx context.Context, ownerID, presentationID string) error {
	if ownerID == "" || presentationID == "" {
		return model.ErrValidation
	}
	return s.store.Presentations().Delete(ctx, ownerID, presentationID)
}
