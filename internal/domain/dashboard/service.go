package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/internal/domain/condition"
	"github.com/healthcanvas/healthcanvas/internal/domain/healthscore"
	"github.com/healthcanvas/healthcanvas/internal/domain/insights"
	"github.com/healthcanvas/healthcanvas/internal/domain/medication"
	"github.com/healthcanvas/healthcanvas/internal/domain/observation"
)

const recentObservationCount = 10

// Summary is the single-call overview the dashboard renders.
type Summary struct {
	HealthScores       []*healthscore.Score       `json:"health_scores"`
	OverallScore       *float64                   `json:"overall_score"`
	RecentObservations []*observation.Observation `json:"recent_observations"`
	ActiveMedications  []*medication.Medication   `json:"active_medications"`
	ActiveConditions   []*condition.Condition     `json:"active_conditions"`
	Alerts             []insights.Pattern         `json:"alerts"`
}

type ObservationSource interface {
	ListObservations(ctx context.Context, userID uuid.UUID, f observation.Filter) ([]*observation.Observation, error)
	Latest(ctx context.Context, userID uuid.UUID) ([]*observation.Latest, error)
}

type MedicationSource interface {
	ListMedications(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*medication.Medication, error)
}

type ConditionSource interface {
	ListActiveConditions(ctx context.Context, userID uuid.UUID) ([]*condition.Condition, error)
}

type Service struct {
	scores       healthscore.Repository
	observations ObservationSource
	medications  MedicationSource
	conditions   ConditionSource
}

func NewService(scores healthscore.Repository, obs ObservationSource, meds MedicationSource, conds ConditionSource) *Service {
	return &Service{scores: scores, observations: obs, medications: meds, conditions: conds}
}

// Summarize gathers the category scores, the most recent results, active
// medications and conditions, and any detected cross-marker alerts.
func (s *Service) Summarize(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	scores, err := s.scores.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, err := s.observations.ListObservations(ctx, userID, observation.Filter{Limit: recentObservationCount})
	if err != nil {
		return nil, err
	}
	meds, err := s.medications.ListMedications(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	conds, err := s.conditions.ListActiveConditions(ctx, userID)
	if err != nil {
		return nil, err
	}
	latest, err := s.observations.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &Summary{
		HealthScores:       scores,
		RecentObservations: recent,
		ActiveMedications:  meds,
		ActiveConditions:   conds,
		Alerts:             insights.DetectPatterns(latestValues(latest)),
	}
	if len(scores) > 0 {
		var sum float64
		for _, sc := range scores {
			sum += sc.Score
		}
		overall := sum / float64(len(scores))
		out.OverallScore = &overall
	}
	if out.HealthScores == nil {
		out.HealthScores = []*healthscore.Score{}
	}
	if out.RecentObservations == nil {
		out.RecentObservations = []*observation.Observation{}
	}
	if out.ActiveMedications == nil {
		out.ActiveMedications = []*medication.Medication{}
	}
	if out.ActiveConditions == nil {
		out.ActiveConditions = []*condition.Condition{}
	}
	if out.Alerts == nil {
		out.Alerts = []insights.Pattern{}
	}
	return out, nil
}

func latestValues(latest []*observation.Latest) map[string]float64 {
	values := make(map[string]float64, len(latest))
	for _, l := range latest {
		values[l.BiomarkerID] = l.Value
	}
	return values
}
