package observation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/internal/domain/biomarker"
	"github.com/healthcanvas/healthcanvas/pkg/dates"
)

type mockRepo struct {
	created    []*Observation
	listFilter Filter
	updated    *UpdateRequest
	deleted    []uuid.UUID
}

func (m *mockRepo) Create(_ context.Context, o *Observation) error {
	o.ID = uuid.New()
	o.Status = StatusNormal
	m.created = append(m.created, o)
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, _, _ uuid.UUID) (*Observation, error) {
	return nil, ErrNotFound
}

func (m *mockRepo) List(_ context.Context, _ uuid.UUID, f Filter) ([]*Observation, error) {
	m.listFilter = f
	return nil, nil
}

func (m *mockRepo) Update(_ context.Context, _, _ uuid.UUID, req UpdateRequest) (*Observation, error) {
	m.updated = &req
	return &Observation{}, nil
}

func (m *mockRepo) SoftDelete(_ context.Context, _, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockRepo) LatestPerBiomarker(_ context.Context, _ uuid.UUID) ([]*Latest, error) {
	return nil, nil
}

func (m *mockRepo) LatestFlaggedPerBiomarker(_ context.Context, _ uuid.UUID) ([]*Latest, error) {
	return nil, nil
}

func (m *mockRepo) ValueChanges(_ context.Context, _ uuid.UUID, _ float64, _ int) ([]*ValueChange, error) {
	return nil, nil
}

func (m *mockRepo) History(_ context.Context, _ uuid.UUID) ([]*MarkerHistory, error) {
	return nil, nil
}

type mockDefs struct {
	defs map[string]*biomarker.Definition
}

func (m *mockDefs) GetByID(_ context.Context, id string) (*biomarker.Definition, error) {
	d, ok := m.defs[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return d, nil
}

func newTestService() (*Service, *mockRepo) {
	repo := &mockRepo{}
	defs := &mockDefs{defs: map[string]*biomarker.Definition{
		"glucose": {ID: "glucose", Name: "Glucose", Category: "metabolic", Unit: "mg/dL"},
	}}
	return NewService(repo, defs), repo
}

func TestCreateObservation_UnitFromCatalog(t *testing.T) {
	svc, repo := newTestService()

	o, err := svc.CreateObservation(context.Background(), uuid.New(), CreateRequest{
		BiomarkerID:   "glucose",
		Value:         105,
		EffectiveDate: dates.New(2026, 3, 10),
	})
	if err != nil {
		t.Fatalf("CreateObservation: %v", err)
	}
	if o.Unit != "mg/dL" {
		t.Errorf("unit = %q, want catalog unit mg/dL", o.Unit)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created = %d rows", len(repo.created))
	}
}

func TestCreateObservation_UnknownBiomarker(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.CreateObservation(context.Background(), uuid.New(), CreateRequest{
		BiomarkerID:   "nope",
		Value:         1,
		EffectiveDate: dates.New(2026, 3, 10),
	}); err == nil {
		t.Fatal("expected error for unknown biomarker")
	}
}

func TestCreateObservation_MissingDate(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.CreateObservation(context.Background(), uuid.New(), CreateRequest{
		BiomarkerID: "glucose",
		Value:       105,
	}); err == nil {
		t.Fatal("expected error for missing effective_date")
	}
}

func TestListObservations_LimitClamping(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	userID := uuid.New()

	cases := []struct {
		in, want int
	}{
		{0, 100},
		{-5, 100},
		{50, 50},
		{9999, 500},
	}
	for _, tc := range cases {
		if _, err := svc.ListObservations(ctx, userID, Filter{Limit: tc.in}); err != nil {
			t.Fatalf("ListObservations(%d): %v", tc.in, err)
		}
		if repo.listFilter.Limit != tc.want {
			t.Errorf("limit %d clamped to %d, want %d", tc.in, repo.listFilter.Limit, tc.want)
		}
	}
}

func TestUpdateObservation_Empty(t *testing.T) {
	svc, repo := newTestService()
	if _, err := svc.UpdateObservation(context.Background(), uuid.New(), uuid.New(), UpdateRequest{}); err == nil {
		t.Fatal("expected error for empty update")
	}
	if repo.updated != nil {
		t.Error("repo called for empty update")
	}
}

func TestUpdateObservation_Partial(t *testing.T) {
	svc, repo := newTestService()
	v := 99.0
	if _, err := svc.UpdateObservation(context.Background(), uuid.New(), uuid.New(), UpdateRequest{Value: &v}); err != nil {
		t.Fatalf("UpdateObservation: %v", err)
	}
	if repo.updated == nil || repo.updated.Value == nil || *repo.updated.Value != 99 {
		t.Errorf("update not forwarded: %+v", repo.updated)
	}
}
