// Package store defines the persistence surface required by the services.
// Implementations live under internal/store/<driver>/ (sqlite, postgres).
package store

import (
	"context"

	"github.com/slideai/slideai-server/internal/model"
)

// Store exposes persistence operations required by services.
type Store interface {
	Presentations() Presentations

	// HealthPing verifies backend connectivity; used by the health endpoint.
	HealthPing(ctx context.Context) error

	// Close releases the underlying connection pool.
	Close() error
}

// Presentations persists whole presentation documents keyed by owner. Save is
// an upsert: a document carrying the unsaved sentinel id is assigned a real id
// before it is written, and the returned presentation carries that id.
type Presentations interface {
	Save(ctx context.Context, ownerID string, p *model.Presentation) (*model.Presentation, error)
	Get(ctx context.Context, ownerID, presentationID string) (*model.Presentation, error)
	List(ctx context.Context, ownerID string) ([]*model.Presentation, error)
	Delete(ctx context.Context, ownerID, presentationID string) error
}
