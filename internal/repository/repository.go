package repository

import (
	"context"

	"harnesspair/internal/domain"
)

// WireReader fetches the wire segments of a single harness
type WireReader interface {
	ListWires(ctx context.Context, harnessID int64) ([]domain.HarnessWiring, error)
}

// DrawingRepository defines read access to harness drawings and wiring
type DrawingRepository interface {
	WireReader

	// ListDrawings returns every drawing in storage order
	ListDrawings(ctx context.Context) ([]domain.HarnessDrawing, error)

	// GetDrawing returns one drawing or domain.ErrNotFound
	GetDrawing(ctx context.Context, id int64) (*domain.HarnessDrawing, error)

	// Close releases resources
	Close() error
}
