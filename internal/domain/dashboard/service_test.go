package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/internal/domain/condition"
	"github.com/healthcanvas/healthcanvas/internal/domain/healthscore"
	"github.com/healthcanvas/healthcanvas/internal/domain/medication"
	"github.com/healthcanvas/healthcanvas/internal/domain/observation"
)

type mockScores struct {
	scores []*healthscore.Score
}

func (m *mockScores) List(_ context.Context, _ uuid.UUID) ([]*healthscore.Score, error) {
	return m.scores, nil
}

type mockObs struct {
	recent     []*observation.Observation
	latest     []*observation.Latest
	lastFilter observation.Filter
}

func (m *mockObs) ListObservations(_ context.Context, _ uuid.UUID, f observation.Filter) ([]*observation.Observation, error) {
	m.lastFilter = f
	return m.recent, nil
}

func (m *mockObs) Latest(_ context.Context, _ uuid.UUID) ([]*observation.Latest, error) {
	return m.latest, nil
}

type mockMeds struct{}

func (mockMeds) ListMedications(_ context.Context, _ uuid.UUID, activeOnly bool) ([]*medication.Medication, error) {
	return nil, nil
}

type mockConds struct{}

func (mockConds) ListActiveConditions(_ context.Context, _ uuid.UUID) ([]*condition.Condition, error) {
	return nil, nil
}

func TestSummarize_OverallScoreIsMean(t *testing.T) {
	scores := &mockScores{scores: []*healthscore.Score{
		{Category: "metabolic", Score: 80, MarkerCount: 4},
		{Category: "cardiovascular", Score: 60, MarkerCount: 3},
	}}
	svc := NewService(scores, &mockObs{}, mockMeds{}, mockConds{})

	got, err := svc.Summarize(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got.OverallScore == nil || *got.OverallScore != 70 {
		t.Errorf("overall = %v, want 70", got.OverallScore)
	}
}

func TestSummarize_NoScoresMeansNoOverall(t *testing.T) {
	svc := NewService(&mockScores{}, &mockObs{}, mockMeds{}, mockConds{})
	got, err := svc.Summarize(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got.OverallScore != nil {
		t.Errorf("overall = %v, want nil", *got.OverallScore)
	}
	// Empty collections serialize as [] rather than null.
	if got.HealthScores == nil || got.RecentObservations == nil || got.ActiveMedications == nil ||
		got.ActiveConditions == nil || got.Alerts == nil {
		t.Error("expected empty slices, not nil")
	}
}

func TestSummarize_LimitsRecentObservations(t *testing.T) {
	obs := &mockObs{}
	svc := NewService(&mockScores{}, obs, mockMeds{}, mockConds{})
	if _, err := svc.Summarize(context.Background(), uuid.New()); err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if obs.lastFilter.Limit != 10 {
		t.Errorf("recent limit = %d, want 10", obs.lastFilter.Limit)
	}
}

func TestSummarize_AlertsFromLatestValues(t *testing.T) {
	obs := &mockObs{latest: []*observation.Latest{
		{BiomarkerID: "hemoglobin", Value: 10},
		{BiomarkerID: "ferritin", Value: 15},
	}}
	svc := NewService(&mockScores{}, obs, mockMeds{}, mockConds{})

	got, err := svc.Summarize(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(got.Alerts) != 1 || got.Alerts[0].Name != "Possible Iron Deficiency" {
		t.Errorf("alerts = %+v, want iron deficiency", got.Alerts)
	}
}
