package procedure

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

func (s *Service) CreateProcedure(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Procedure, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.PerformedDate.IsZero() {
		return nil, fmt.Errorf("performed_date is required")
	}
	p := &Procedure{
		UserID:        userID,
		Name:          req.Name,
		ProcedureType: req.ProcedureType,
		PerformedDate: req.PerformedDate,
		FacilityName:  req.FacilityName,
		PerformedBy:   req.PerformedBy,
		Findings:      req.Findings,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListProcedures(ctx context.Context, userID uuid.UUID) ([]*Procedure, error) {
	return s.repo.List(ctx, userID)
}
