package journal

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/pkg/dates"
)

// Entry is a daily wellness log. One entry per user per calendar day;
// writing the same date again overwrites the previous entry.
type Entry struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	UserID       uuid.UUID  `db:"user_id" json:"-"`
	EntryDate    dates.Date `db:"entry_date" json:"entry_date"`
	SleepHours   *float64   `db:"sleep_hours" json:"sleep_hours,omitempty"`
	EnergyLevel  *int       `db:"energy_level" json:"energy_level,omitempty"`
	MoodLevel    *int       `db:"mood_level" json:"mood_level,omitempty"`
	ExerciseDone bool       `db:"exercise_done" json:"exercise_done"`
	Notes        *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"-"`
	UpdatedAt    time.Time  `db:"updated_at" json:"-"`
}

// UpsertRequest is the payload for logging a day. Entry date defaults to
// today when omitted.
type UpsertRequest struct {
	EntryDate    *dates.Date `json:"entry_date,omitempty"`
	SleepHours   *float64    `json:"sleep_hours,omitempty"`
	EnergyLevel  *int        `json:"energy_level,omitempty"`
	MoodLevel    *int        `json:"mood_level,omitempty"`
	ExerciseDone bool        `json:"exercise_done"`
	Notes        *string     `json:"notes,omitempty"`
}
