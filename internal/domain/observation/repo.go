package observation

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("observation not found")

type Repository interface {
	Create(ctx context.Context, o *Observation) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*Observation, error)
	List(ctx context.Context, userID uuid.UUID, f Filter) ([]*Observation, error)
	Update(ctx context.Context, userID, id uuid.UUID, req UpdateRequest) (*Observation, error)
	SoftDelete(ctx context.Context, userID, id uuid.UUID) error

	// Derivation queries.
	LatestPerBiomarker(ctx context.Context, userID uuid.UUID) ([]*Latest, error)
	LatestFlaggedPerBiomarker(ctx context.Context, userID uuid.UUID) ([]*Latest, error)
	ValueChanges(ctx context.Context, userID uuid.UUID, thresholdPct float64, limit int) ([]*ValueChange, error)
	History(ctx context.Context, userID uuid.UUID) ([]*MarkerHistory, error)
}
