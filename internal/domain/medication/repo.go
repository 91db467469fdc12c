package medication

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("medication not found")

type Repository interface {
	Create(ctx context.Context, m *Medication) error
	List(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*Medication, error)
	Toggle(ctx context.Context, userID, id uuid.UUID) error
	SoftDelete(ctx context.Context, userID, id uuid.UUID) error
}
