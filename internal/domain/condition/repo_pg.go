package condition

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const condCols = `id, user_id, name, clinical_status, onset_date, notes, created_at`

func scanCondition(row pgx.Row) (*Condition, error) {
	var c Condition
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.ClinicalStatus, &c.OnsetDate, &c.Notes, &c.CreatedAt)
	return &c, err
}

func (r *repoPG) Create(ctx context.Context, c *Condition) error {
	c.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO conditions (id, user_id, name, clinical_status, onset_date, notes)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at`,
		c.ID, c.UserID, c.Name, c.ClinicalStatus, c.OnsetDate, c.Notes).Scan(&c.CreatedAt)
}

func (r *repoPG) list(ctx context.Context, query string, userID uuid.UUID) ([]*Condition, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Condition
	for rows.Next() {
		c, err := scanCondition(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *repoPG) List(ctx context.Context, userID uuid.UUID) ([]*Condition, error) {
	return r.list(ctx, `SELECT `+condCols+` FROM conditions
		WHERE user_id = $1 AND deleted_at IS NULL ORDER BY onset_date DESC`, userID)
}

func (r *repoPG) ListActive(ctx context.Context, userID uuid.UUID) ([]*Condition, error) {
	return r.list(ctx, `SELECT `+condCols+` FROM conditions
		WHERE user_id = $1 AND clinical_status = 'active' AND deleted_at IS NULL
		ORDER BY onset_date DESC`, userID)
}
