package medication

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

func (s *Service) CreateMedication(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Medication, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	m := &Medication{
		UserID:    userID,
		IsActive:  true,
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		Category:  req.Category,
		StartDate: req.StartDate,
		Notes:     req.Notes,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ListMedications(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*Medication, error) {
	return s.repo.List(ctx, userID, activeOnly)
}

func (s *Service) ToggleMedication(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Toggle(ctx, userID, id)
}

func (s *Service) DeleteMedication(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, userID, id)
}
