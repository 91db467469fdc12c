package goal

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

// CreateGoal snapshots the user's latest observation value for the biomarker
// as both baseline and current value of the new goal.
func (s *Service) CreateGoal(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Goal, error) {
	if req.BiomarkerID == "" {
		return nil, fmt.Errorf("biomarker_id is required")
	}
	latest, err := s.repo.LatestObservationValue(ctx, userID, req.BiomarkerID)
	if err != nil {
		return nil, err
	}
	g := &Goal{
		UserID:        userID,
		BiomarkerID:   req.BiomarkerID,
		TargetValue:   req.TargetValue,
		BaselineValue: latest,
		CurrentValue:  latest,
		TargetDate:    req.TargetDate,
		Description:   req.Description,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) ListGoals(ctx context.Context, userID uuid.UUID) ([]*Goal, error) {
	return s.repo.List(ctx, userID)
}
