package vaccination

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, v *Vaccination) error
	List(ctx context.Context, userID uuid.UUID) ([]*Vaccination, error)
}
