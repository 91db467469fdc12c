package allergy

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Allergy) error
	List(ctx context.Context, userID uuid.UUID) ([]*Allergy, error)
}
