package observation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/internal/domain/biomarker"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// DefinitionGetter resolves biomarker catalog entries; satisfied by the
// biomarker repository.
type DefinitionGetter interface {
	GetByID(ctx context.Context, id string) (*biomarker.Definition, error)
}

type Service struct {
	repo Repository
	defs DefinitionGetter
}

func NewService(repo Repository, defs DefinitionGetter) *Service {
	return &Service{repo: repo, defs: defs}
}

// CreateObservation records a result. The unit always comes from the catalog
// definition, never from the caller.
func (s *Service) CreateObservation(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Observation, error) {
	def, err := s.defs.GetByID(ctx, req.BiomarkerID)
	if err != nil {
		return nil, fmt.Errorf("invalid biomarker_id")
	}
	if req.EffectiveDate.IsZero() {
		return nil, fmt.Errorf("effective_date is required")
	}

	o := &Observation{
		UserID:           userID,
		BiomarkerID:      def.ID,
		Value:            req.Value,
		Unit:             def.Unit,
		EffectiveDate:    req.EffectiveDate,
		LabName:          req.LabName,
		LabReferenceLow:  req.LabReferenceLow,
		LabReferenceHigh: req.LabReferenceHigh,
		Notes:            req.Notes,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) ListObservations(ctx context.Context, userID uuid.UUID, f Filter) ([]*Observation, error) {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	return s.repo.List(ctx, userID, f)
}

func (s *Service) UpdateObservation(ctx context.Context, userID, id uuid.UUID, req UpdateRequest) (*Observation, error) {
	if req.IsEmpty() {
		return nil, fmt.Errorf("no fields to update")
	}
	return s.repo.Update(ctx, userID, id, req)
}

func (s *Service) DeleteObservation(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, userID, id)
}

func (s *Service) Latest(ctx context.Context, userID uuid.UUID) ([]*Latest, error) {
	return s.repo.LatestPerBiomarker(ctx, userID)
}

func (s *Service) LatestFlagged(ctx context.Context, userID uuid.UUID) ([]*Latest, error) {
	return s.repo.LatestFlaggedPerBiomarker(ctx, userID)
}

func (s *Service) Changes(ctx context.Context, userID uuid.UUID, thresholdPct float64, limit int) ([]*ValueChange, error) {
	return s.repo.ValueChanges(ctx, userID, thresholdPct, limit)
}

func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]*MarkerHistory, error) {
	return s.repo.History(ctx, userID)
}
