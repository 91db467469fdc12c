package condition

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Condition) error
	List(ctx context.Context, userID uuid.UUID) ([]*Condition, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]*Condition, error)
}
