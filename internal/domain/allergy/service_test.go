package allergy

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	created []*Allergy
}

func (m *mockRepo) Create(_ context.Context, a *Allergy) error {
	a.ID = uuid.New()
	m.created = append(m.created, a)
	return nil
}

func (m *mockRepo) List(_ context.Context, userID uuid.UUID) ([]*Allergy, error) {
	var out []*Allergy
	for _, a := range m.created {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func TestCreateAllergy_DefaultsCriticalityToLow(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	a, err := svc.CreateAllergy(context.Background(), uuid.New(), CreateRequest{Allergen: "Penicillin"})
	if err != nil {
		t.Fatalf("CreateAllergy: %v", err)
	}
	if a.Criticality != "low" {
		t.Errorf("criticality = %q, want low", a.Criticality)
	}
}

func TestCreateAllergy_KeepsProvidedCriticality(t *testing.T) {
	svc := NewService(&mockRepo{})

	a, err := svc.CreateAllergy(context.Background(), uuid.New(), CreateRequest{Allergen: "Peanuts", Criticality: "high"})
	if err != nil {
		t.Fatalf("CreateAllergy: %v", err)
	}
	if a.Criticality != "high" {
		t.Errorf("criticality = %q, want high", a.Criticality)
	}
}

func TestCreateAllergy_RequiresAllergen(t *testing.T) {
	svc := NewService(&mockRepo{})
	if _, err := svc.CreateAllergy(context.Background(), uuid.New(), CreateRequest{Criticality: "high"}); err == nil {
		t.Fatal("expected error for missing allergen")
	}
}
