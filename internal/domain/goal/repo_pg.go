package goal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const goalCols = `id, user_id, biomarker_id, target_value, baseline_value, current_value, target_date, description, status, created_at`

func scanGoal(row pgx.Row) (*Goal, error) {
	var g Goal
	err := row.Scan(&g.ID, &g.UserID, &g.BiomarkerID, &g.TargetValue, &g.BaselineValue,
		&g.CurrentValue, &g.TargetDate, &g.Description, &g.Status, &g.CreatedAt)
	return &g, err
}

func (r *repoPG) Create(ctx context.Context, g *Goal) error {
	g.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO health_goals (id, user_id, biomarker_id, target_value, baseline_value,
			current_value, target_date, description)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING status, created_at`,
		g.ID, g.UserID, g.BiomarkerID, g.TargetValue, g.BaselineValue,
		g.CurrentValue, g.TargetDate, g.Description).Scan(&g.Status, &g.CreatedAt)
}

func (r *repoPG) List(ctx context.Context, userID uuid.UUID) ([]*Goal, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+goalCols+` FROM health_goals
		WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

func (r *repoPG) LatestObservationValue(ctx context.Context, userID uuid.UUID, biomarkerID string) (*float64, error) {
	var v float64
	err := r.pool.QueryRow(ctx, `
		SELECT value FROM observations
		WHERE user_id = $1 AND biomarker_id = $2 AND deleted_at IS NULL
		ORDER BY effective_date DESC LIMIT 1`, userID, biomarkerID).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}
