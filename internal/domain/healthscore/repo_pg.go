package healthscore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) List(ctx context.Context, userID uuid.UUID) ([]*Score, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category, score, marker_count
		FROM health_scores
		WHERE user_id = $1
		ORDER BY category`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list health scores: %w", err)
	}
	defer rows.Close()

	var items []*Score
	for rows.Next() {
		var s Score
		if err := rows.Scan(&s.Category, &s.Score, &s.MarkerCount); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}
