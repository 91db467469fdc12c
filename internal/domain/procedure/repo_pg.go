package procedure

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

const procCols = `id, user_id, name, procedure_type, performed_date, facility_name, performed_by, findings, notes, created_at`

func scanProcedure(row pgx.Row) (*Procedure, error) {
	var p Procedure
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.ProcedureType, &p.PerformedDate,
		&p.FacilityName, &p.PerformedBy, &p.Findings, &p.Notes, &p.CreatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Procedure) error {
	p.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO procedures (id, user_id, name, procedure_type, performed_date,
			facility_name, performed_by, findings, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at`,
		p.ID, p.UserID, p.Name, p.ProcedureType, p.PerformedDate,
		p.FacilityName, p.PerformedBy, p.Findings, p.Notes).Scan(&p.CreatedAt)
}

func (r *repoPG) List(ctx context.Context, userID uuid.UUID) ([]*Procedure, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+procCols+` FROM procedures
		WHERE user_id = $1 AND deleted_at IS NULL ORDER BY performed_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Procedure
	for rows.Next() {
		p, err := scanProcedure(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
