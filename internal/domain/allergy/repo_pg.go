package allergy

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

const algCols = `id, user_id, allergen, criticality, reaction_description, clinical_status, notes, created_at`

func scanAllergy(row pgx.Row) (*Allergy, error) {
	var a Allergy
	err := row.Scan(&a.ID, &a.UserID, &a.Allergen, &a.Criticality,
		&a.ReactionDescription, &a.ClinicalStatus, &a.Notes, &a.CreatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Allergy) error {
	a.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO allergies (id, user_id, allergen, criticality, reaction_description, notes)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING clinical_status, created_at`,
		a.ID, a.UserID, a.Allergen, a.Criticality, a.ReactionDescription, a.Notes).
		Scan(&a.ClinicalStatus, &a.CreatedAt)
}

func (r *repoPG) List(ctx context.Context, userID uuid.UUID) ([]*Allergy, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+algCols+` FROM allergies
		WHERE user_id = $1 AND deleted_at IS NULL ORDER BY allergen`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Allergy
	for rows.Next() {
		a, err := scanAllergy(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
