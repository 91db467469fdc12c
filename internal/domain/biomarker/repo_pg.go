package biomarker

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const bmCols = `id, name, category, unit, normal_range_low, normal_range_high, description`

func scanDefinition(row pgx.Row) (*Definition, error) {
	var d Definition
	err := row.Scan(&d.ID, &d.Name, &d.Category, &d.Unit,
		&d.NormalRangeLow, &d.NormalRangeHigh, &d.Description)
	return &d, err
}

func (r *repoPG) List(ctx context.Context, category string) ([]*Definition, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if category != "" {
		rows, err = r.pool.Query(ctx,
			`SELECT `+bmCols+` FROM biomarker_definitions WHERE category = $1 ORDER BY name`, category)
	} else {
		rows, err = r.pool.Query(ctx,
			`SELECT `+bmCols+` FROM biomarker_definitions ORDER BY category, name`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Definition
	for rows.Next() {
		d, err := scanDefinition(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *repoPG) GetByID(ctx context.Context, id string) (*Definition, error) {
	return scanDefinition(r.pool.QueryRow(ctx,
		`SELECT `+bmCols+` FROM biomarker_definitions WHERE id = $1`, id))
}
