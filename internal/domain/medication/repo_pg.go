package medication

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

const medCols = `id, user_id, name, dosage, frequency, category, start_date, end_date, is_active, notes, created_at`

func scanMedication(row pgx.Row) (*Medication, error) {
	var m Medication
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Frequency, &m.Category,
		&m.StartDate, &m.EndDate, &m.IsActive, &m.Notes, &m.CreatedAt)
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *Medication) error {
	m.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO medications (id, user_id, name, dosage, frequency, category, start_date, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at`,
		m.ID, m.UserID, m.Name, m.Dosage, m.Frequency, m.Category, m.StartDate, m.Notes).
		Scan(&m.CreatedAt)
}

func (r *repoPG) List(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*Medication, error) {
	query := `SELECT ` + medCols + ` FROM medications WHERE user_id = $1 AND deleted_at IS NULL`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Medication
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *repoPG) Toggle(ctx context.Context, userID, id uuid.UUID) error {
	// Deactivating stamps end_date with today; reactivating clears it.
	tag, err := r.pool.Exec(ctx, `
		UPDATE medications SET is_active = NOT is_active,
			end_date = CASE WHEN is_active THEN CURRENT_DATE ELSE NULL END
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE medications SET deleted_at = NOW() WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
