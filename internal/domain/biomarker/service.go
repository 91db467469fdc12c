package biomarker

import "context"

// Service exposes the read-only reference catalog.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListDefinitions(ctx context.Context, category string) ([]*Definition, error) {
	return s.repo.List(ctx, category)
}

func (s *Service) GetDefinition(ctx context.Context, id string) (*Definition, error) {
	return s.repo.GetByID(ctx, id)
}
