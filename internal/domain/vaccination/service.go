package vaccination

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

func (s *Service) CreateVaccination(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Vaccination, error) {
	if req.VaccineName == "" {
		return nil, fmt.Errorf("vaccine_name is required")
	}
	if req.AdministrationDate.IsZero() {
		return nil, fmt.Errorf("administration_date is required")
	}
	v := &Vaccination{
		UserID:             userID,
		VaccineName:        req.VaccineName,
		AdministrationDate: req.AdministrationDate,
		NextDoseDue:        req.NextDoseDue,
		Notes:              req.Notes,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) ListVaccinations(ctx context.Context, userID uuid.UUID) ([]*Vaccination, error) {
	return s.repo.List(ctx, userID)
}
