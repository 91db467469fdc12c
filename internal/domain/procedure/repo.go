package procedure

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Procedure) error
	List(ctx context.Context, userID uuid.UUID) ([]*Procedure, error)
}
