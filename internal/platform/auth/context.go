package auth

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// userIDKey carries the authenticated user's id on the request context.
const userIDKey contextKey = "auth_user_id"

// WithUserID returns a context carrying the authenticated user's id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromContext returns the authenticated user's id, or uuid.Nil and
// false when the request is unauthenticated.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}
