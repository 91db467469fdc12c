package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jrnCols = `id, user_id, entry_date, sleep_hours, energy_level, mood_level, exercise_done, notes, created_at, updated_at`

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	if err := row.Scan(
		&e.ID, &e.UserID, &e.EntryDate, &e.SleepHours, &e.EnergyLevel,
		&e.MoodLevel, &e.ExerciseDone, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repoPG) Upsert(ctx context.Context, e *Entry) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO journal_entries (user_id, entry_date, sleep_hours, energy_level, mood_level, exercise_done, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, entry_date) DO UPDATE SET
			sleep_hours = EXCLUDED.sleep_hours,
			energy_level = EXCLUDED.energy_level,
			mood_level = EXCLUDED.mood_level,
			exercise_done = EXCLUDED.exercise_done,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING `+jrnCols,
		e.UserID, e.EntryDate, e.SleepHours, e.EnergyLevel, e.MoodLevel, e.ExerciseDone, e.Notes,
	)
	saved, err := scanEntry(row)
	if err != nil {
		return fmt.Errorf("upsert journal entry: %w", err)
	}
	*e = *saved
	return nil
}

func (r *repoPG) List(ctx context.Context, userID uuid.UUID, limit int) ([]*Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+jrnCols+`
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY entry_date DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	var items []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
