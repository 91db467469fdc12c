package journal

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/pkg/dates"
)

type mockRepo struct {
	byDate    map[string]*Entry
	lastLimit int
}

func newMockRepo() *mockRepo {
	return &mockRepo{byDate: make(map[string]*Entry)}
}

func (m *mockRepo) Upsert(_ context.Context, e *Entry) error {
	key := e.UserID.String() + "/" + e.EntryDate.String()
	if prev, ok := m.byDate[key]; ok {
		e.ID = prev.ID
	} else {
		e.ID = uuid.New()
	}
	cp := *e
	m.byDate[key] = &cp
	return nil
}

func (m *mockRepo) List(_ context.Context, userID uuid.UUID, limit int) ([]*Entry, error) {
	m.lastLimit = limit
	var out []*Entry
	for _, e := range m.byDate {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func intPtr(v int) *int { return &v }

func TestUpsertEntry_DefaultsToToday(t *testing.T) {
	svc := NewService(newMockRepo())
	e, err := svc.UpsertEntry(context.Background(), uuid.New(), UpsertRequest{ExerciseDone: true})
	if err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}
	if e.EntryDate.String() != dates.Today().String() {
		t.Errorf("entry date = %s, want today", e.EntryDate)
	}
}

func TestUpsertEntry_SameDayOverwrites(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	userID := uuid.New()
	day, _ := dates.Parse("2026-08-01")

	first, err := svc.UpsertEntry(context.Background(), userID, UpsertRequest{EntryDate: &day, EnergyLevel: intPtr(2)})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := svc.UpsertEntry(context.Background(), userID, UpsertRequest{EntryDate: &day, EnergyLevel: intPtr(4)})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected same entry to be replaced, got ids %s and %s", first.ID, second.ID)
	}
	if len(repo.byDate) != 1 {
		t.Errorf("stored entries = %d, want 1", len(repo.byDate))
	}
	if *second.EnergyLevel != 4 {
		t.Errorf("energy = %d, want 4", *second.EnergyLevel)
	}
}

func TestUpsertEntry_ValidatesLevels(t *testing.T) {
	svc := NewService(newMockRepo())
	cases := []UpsertRequest{
		{EnergyLevel: intPtr(0)},
		{EnergyLevel: intPtr(6)},
		{MoodLevel: intPtr(0)},
		{MoodLevel: intPtr(6)},
	}
	for _, req := range cases {
		if _, err := svc.UpsertEntry(context.Background(), uuid.New(), req); err == nil {
			t.Errorf("expected validation error for %+v", req)
		}
	}
	if _, err := svc.UpsertEntry(context.Background(), uuid.New(), UpsertRequest{EnergyLevel: intPtr(1), MoodLevel: intPtr(5)}); err != nil {
		t.Errorf("boundary levels should pass: %v", err)
	}
}

func TestListEntries_LimitClamping(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	cases := []struct{ given, want int }{
		{0, 30},
		{-1, 30},
		{10, 10},
		{500, 100},
	}
	for _, tc := range cases {
		if _, err := svc.ListEntries(context.Background(), uuid.New(), tc.given); err != nil {
			t.Fatalf("ListEntries(%d): %v", tc.given, err)
		}
		if repo.lastLimit != tc.want {
			t.Errorf("limit %d clamped to %d, want %d", tc.given, repo.lastLimit, tc.want)
		}
	}
}
