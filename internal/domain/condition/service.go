package condition

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateCondition(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Condition, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.ClinicalStatus == "" {
		req.ClinicalStatus = "active"
	}
	c := &Condition{
		UserID:         userID,
		Name:           req.Name,
		ClinicalStatus: req.ClinicalStatus,
		OnsetDate:      req.OnsetDate,
		Notes:          req.Notes,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListConditions(ctx context.Context, userID uuid.UUID) ([]*Condition, error) {
	return s.repo.List(ctx, userID)
}

func (s *Service) ListActiveConditions(ctx context.Context, userID uuid.UUID) ([]*Condition, error) {
	return s.repo.ListActive(ctx, userID)
}
