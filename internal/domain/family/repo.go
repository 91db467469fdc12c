package family

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("family member not found")

type Repository interface {
	CreateMember(ctx context.Context, m *Member) error
	// ListMembers returns all relatives with their condition names aggregated.
	ListMembers(ctx context.Context, userID uuid.UUID) ([]*Member, error)
	// AddCondition records a condition for a member owned by the user,
	// returning ErrNotFound when the member is not theirs.
	AddCondition(ctx context.Context, userID, memberID uuid.UUID, req AddConditionRequest) error
	ListConditions(ctx context.Context, userID uuid.UUID) ([]MemberCondition, error)
}
