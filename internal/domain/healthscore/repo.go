package healthscore

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context, userID uuid.UUID) ([]*Score, error)
}
