package biomarker

import "context"

type Repository interface {
	List(ctx context.Context, category string) ([]*Definition, error)
	GetByID(ctx context.Context, id string) (*Definition, error)
}
