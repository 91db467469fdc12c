package allergy

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

func (s *Service) CreateAllergy(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Allergy, error) {
	if req.Allergen == "" {
		return nil, fmt.Errorf("allergen is required")
	}
	if req.Criticality == "" {
		req.Criticality = "low"
	}
	a := &Allergy{
		UserID:              userID,
		Allergen:            req.Allergen,
		Criticality:         req.Criticality,
		ReactionDescription: req.ReactionDescription,
		Notes:               req.Notes,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListAllergies(ctx context.Context, userID uuid.UUID) ([]*Allergy, error) {
	return s.repo.List(ctx, userID)
}
