package vaccination

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

const vacCols = `id, user_id, vaccine_name, administration_date, next_dose_due, status, notes, created_at`

func scanVaccination(row pgx.Row) (*Vaccination, error) {
	var v Vaccination
	err := row.Scan(&v.ID, &v.UserID, &v.VaccineName, &v.AdministrationDate,
		&v.NextDoseDue, &v.Status, &v.Notes, &v.CreatedAt)
	return &v, err
}

func (r *repoPG) Create(ctx context.Context, v *Vaccination) error {
	v.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO vaccinations (id, user_id, vaccine_name, administration_date, next_dose_due, notes)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING status, created_at`,
		v.ID, v.UserID, v.VaccineName, v.AdministrationDate, v.NextDoseDue, v.Notes).
		Scan(&v.Status, &v.CreatedAt)
}

func (r *repoPG) List(ctx context.Context, userID uuid.UUID) ([]*Vaccination, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+vacCols+` FROM vaccinations
		WHERE user_id = $1 AND deleted_at IS NULL ORDER BY administration_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Vaccination
	for rows.Next() {
		v, err := scanVaccination(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}
