package goal

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	latest  map[string]float64
	created []*Goal
}

func (m *mockRepo) Create(_ context.Context, g *Goal) error {
	g.ID = uuid.New()
	g.Status = "active"
	m.created = append(m.created, g)
	return nil
}

func (m *mockRepo) List(_ context.Context, _ uuid.UUID) ([]*Goal, error) {
	return m.created, nil
}

func (m *mockRepo) LatestObservationValue(_ context.Context, _ uuid.UUID, biomarkerID string) (*float64, error) {
	v, ok := m.latest[biomarkerID]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func TestCreateGoal_SnapshotsBaseline(t *testing.T) {
	repo := &mockRepo{latest: map[string]float64{"glucose": 104}}
	svc := NewService(repo)

	g, err := svc.CreateGoal(context.Background(), uuid.New(), CreateRequest{
		BiomarkerID: "glucose",
		TargetValue: 95,
	})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if g.BaselineValue == nil || *g.BaselineValue != 104 {
		t.Errorf("baseline = %v, want 104", g.BaselineValue)
	}
	if g.CurrentValue == nil || *g.CurrentValue != 104 {
		t.Errorf("current = %v, want 104", g.CurrentValue)
	}
}

func TestCreateGoal_NoObservations(t *testing.T) {
	repo := &mockRepo{latest: map[string]float64{}}
	svc := NewService(repo)

	g, err := svc.CreateGoal(context.Background(), uuid.New(), CreateRequest{
		BiomarkerID: "ferritin",
		TargetValue: 50,
	})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if g.BaselineValue != nil || g.CurrentValue != nil {
		t.Errorf("expected nil snapshot values, got baseline=%v current=%v", g.BaselineValue, g.CurrentValue)
	}
}

func TestCreateGoal_MissingBiomarker(t *testing.T) {
	svc := NewService(&mockRepo{})
	if _, err := svc.CreateGoal(context.Background(), uuid.New(), CreateRequest{TargetValue: 1}); err == nil {
		t.Fatal("expected error for missing biomarker_id")
	}
}
