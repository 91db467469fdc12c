package observation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const obsCols = `o.id, o.user_id, o.biomarker_id, bd.name, bd.category, o.value, o.unit,
	o.effective_date, o.status, o.lab_name, o.lab_reference_low, o.lab_reference_high,
	o.notes, o.created_at`

const obsFrom = ` FROM observations o JOIN biomarker_definitions bd ON o.biomarker_id = bd.id`

func scanObservation(row pgx.Row) (*Observation, error) {
	var o Observation
	err := row.Scan(&o.ID, &o.UserID, &o.BiomarkerID, &o.BiomarkerName, &o.Category,
		&o.Value, &o.Unit, &o.EffectiveDate, &o.Status, &o.LabName,
		&o.LabReferenceLow, &o.LabReferenceHigh, &o.Notes, &o.CreatedAt)
	return &o, err
}

func (r *repoPG) Create(ctx context.Context, o *Observation) error {
	o.ID = uuid.New()
	// Status is filled by the row trigger from the biomarker's normal range,
	// so the inserted row is re-read through the definition join.
	_, err := r.pool.Exec(ctx, `
		INSERT INTO observations (id, user_id, biomarker_id, value, unit, effective_date,
			lab_name, lab_reference_low, lab_reference_high, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		o.ID, o.UserID, o.BiomarkerID, o.Value, o.Unit, o.EffectiveDate,
		o.LabName, o.LabReferenceLow, o.LabReferenceHigh, o.Notes)
	if err != nil {
		return err
	}
	created, err := r.GetByID(ctx, o.UserID, o.ID)
	if err != nil {
		return err
	}
	*o = *created
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, userID, id uuid.UUID) (*Observation, error) {
	o, err := scanObservation(r.pool.QueryRow(ctx,
		`SELECT `+obsCols+obsFrom+` WHERE o.id = $1 AND o.user_id = $2 AND o.deleted_at IS NULL`,
		id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

func (r *repoPG) List(ctx context.Context, userID uuid.UUID, f Filter) ([]*Observation, error) {
	query := `SELECT ` + obsCols + obsFrom + ` WHERE o.user_id = $1 AND o.deleted_at IS NULL`
	args := []interface{}{userID}

	if f.BiomarkerID != "" {
		args = append(args, f.BiomarkerID)
		query += fmt.Sprintf(" AND o.biomarker_id = $%d", len(args))
	}
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		query += fmt.Sprintf(" AND o.effective_date >= $%d", len(args))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		query += fmt.Sprintf(" AND o.effective_date <= $%d", len(args))
	}
	args = append(args, f.Limit)
	query += fmt.Sprintf(" ORDER BY o.effective_date DESC, o.created_at DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Observation
	for rows.Next() {
		o, err := scanObservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, userID, id uuid.UUID, req UpdateRequest) (*Observation, error) {
	var sets []string
	args := []interface{}{}

	if req.Value != nil {
		args = append(args, *req.Value)
		sets = append(sets, fmt.Sprintf("value = $%d", len(args)))
	}
	if req.EffectiveDate != nil {
		args = append(args, *req.EffectiveDate)
		sets = append(sets, fmt.Sprintf("effective_date = $%d", len(args)))
	}
	if req.LabName != nil {
		args = append(args, *req.LabName)
		sets = append(sets, fmt.Sprintf("lab_name = $%d", len(args)))
	}
	if req.Notes != nil {
		args = append(args, *req.Notes)
		sets = append(sets, fmt.Sprintf("notes = $%d", len(args)))
	}

	args = append(args, id, userID)
	query := fmt.Sprintf(
		`UPDATE observations SET %s WHERE id = $%d AND user_id = $%d AND deleted_at IS NULL`,
		strings.Join(sets, ", "), len(args)-1, len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, userID, id)
}

func (r *repoPG) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE observations SET deleted_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const latestCols = `o.biomarker_id, bd.name, bd.category, o.value, o.unit, o.status, bd.normal_range_low, bd.normal_range_high`

func scanLatest(row pgx.Row) (*Latest, error) {
	var l Latest
	err := row.Scan(&l.BiomarkerID, &l.Name, &l.Category, &l.Value, &l.Unit, &l.Status, &l.NormalRangeLow, &l.NormalRangeHigh)
	return &l, err
}

func (r *repoPG) LatestPerBiomarker(ctx context.Context, userID uuid.UUID) ([]*Latest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT ON (o.biomarker_id) `+latestCols+obsFrom+`
		WHERE o.user_id = $1 AND o.deleted_at IS NULL
		ORDER BY o.biomarker_id, o.effective_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Latest
	for rows.Next() {
		l, err := scanLatest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

func (r *repoPG) LatestFlaggedPerBiomarker(ctx context.Context, userID uuid.UUID) ([]*Latest, error) {
	// The latest result per biomarker, kept only when that latest result is
	// flagged. Critical markers sort first, then by catalog category.
	rows, err := r.pool.Query(ctx, `
		SELECT `+latestCols+` FROM (
			SELECT DISTINCT ON (o.biomarker_id) `+latestCols+obsFrom+`
			WHERE o.user_id = $1 AND o.deleted_at IS NULL
			ORDER BY o.biomarker_id, o.effective_date DESC
		) o
		JOIN biomarker_definitions bd ON o.biomarker_id = bd.id
		WHERE o.status IN ('attention', 'critical')
		ORDER BY CASE WHEN o.status = 'critical' THEN 1 ELSE 2 END, bd.category`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Latest
	for rows.Next() {
		l, err := scanLatest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

func (r *repoPG) ValueChanges(ctx context.Context, userID uuid.UUID, thresholdPct float64, limit int) ([]*ValueChange, error) {
	query := `
		WITH ordered AS (
			SELECT o.biomarker_id, o.value, o.effective_date,
			       LAG(o.value) OVER (PARTITION BY o.biomarker_id ORDER BY o.effective_date) AS prev_value
			FROM observations o
			WHERE o.user_id = $1 AND o.deleted_at IS NULL
		)
		SELECT r.biomarker_id, bd.name, bd.unit, r.value, r.prev_value,
		       (r.value - r.prev_value) / r.prev_value * 100 AS change_pct,
		       r.effective_date
		FROM ordered r
		JOIN biomarker_definitions bd ON r.biomarker_id = bd.id
		WHERE r.prev_value IS NOT NULL AND r.prev_value <> 0
		  AND ABS((r.value - r.prev_value) / r.prev_value * 100) > $2
		ORDER BY r.effective_date DESC`
	args := []interface{}{userID, thresholdPct}
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*ValueChange
	for rows.Next() {
		var ch ValueChange
		if err := rows.Scan(&ch.BiomarkerID, &ch.Name, &ch.Unit, &ch.Value,
			&ch.PrevValue, &ch.ChangePct, &ch.EffectiveDate); err != nil {
			return nil, err
		}
		ch.Direction = "decreased"
		if ch.ChangePct > 0 {
			ch.Direction = "increased"
		}
		items = append(items, &ch)
	}
	return items, rows.Err()
}

func (r *repoPG) History(ctx context.Context, userID uuid.UUID) ([]*MarkerHistory, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT bd.id, bd.name,
		       array_agg(o.value ORDER BY o.effective_date),
		       COALESCE(STDDEV(o.value), 0),
		       MAX(o.status),
		       COUNT(*),
		       MAX(o.effective_date)
		FROM observations o
		JOIN biomarker_definitions bd ON o.biomarker_id = bd.id
		WHERE o.user_id = $1 AND o.deleted_at IS NULL
		GROUP BY bd.id, bd.name
		HAVING COUNT(*) >= 2`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*MarkerHistory
	for rows.Next() {
		var h MarkerHistory
		if err := rows.Scan(&h.BiomarkerID, &h.Name, &h.Values, &h.Variance,
			&h.Status, &h.TestCount, &h.LastTest); err != nil {
			return nil, err
		}
		items = append(items, &h)
	}
	return items, rows.Err()
}
