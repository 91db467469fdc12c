package goal

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, g *Goal) error
	List(ctx context.Context, userID uuid.UUID) ([]*Goal, error)
	// LatestObservationValue returns the user's most recent value for the
	// biomarker, or nil when none is recorded.
	LatestObservationValue(ctx context.Context, userID uuid.UUID, biomarkerID string) (*float64, error)
}
