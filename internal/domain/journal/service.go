package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/pkg/dates"
)

const (
	defaultListLimit = 30
	maxListLimit     = 100
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// UpsertEntry writes the journal entry for the given day, replacing any
// existing entry for that day.
func (s *Service) UpsertEntry(ctx context.Context, userID uuid.UUID, req UpsertRequest) (*Entry, error) {
	if req.EnergyLevel != nil && (*req.EnergyLevel < 1 || *req.EnergyLevel > 5) {
		return nil, fmt.Errorf("energy_level must be between 1 and 5")
	}
	if req.MoodLevel != nil && (*req.MoodLevel < 1 || *req.MoodLevel > 5) {
		return nil, fmt.Errorf("mood_level must be between 1 and 5")
	}
	entryDate := dates.Today()
	if req.EntryDate != nil {
		entryDate = *req.EntryDate
	}
	e := &Entry{
		UserID:       userID,
		EntryDate:    entryDate,
		SleepHours:   req.SleepHours,
		EnergyLevel:  req.EnergyLevel,
		MoodLevel:    req.MoodLevel,
		ExerciseDone: req.ExerciseDone,
		Notes:        req.Notes,
	}
	if err := s.repo.Upsert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) ListEntries(ctx context.Context, userID uuid.UUID, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.List(ctx, userID, limit)
}
