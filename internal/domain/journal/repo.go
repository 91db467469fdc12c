package journal

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Upsert inserts the entry or, when one already exists for the user and
	// date, replaces its fields.
	Upsert(ctx context.Context, e *Entry) error
	List(ctx context.Context, userID uuid.UUID, limit int) ([]*Entry, error)
}
