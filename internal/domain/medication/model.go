package medication

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/pkg/dates"
)

// Medication maps to the medications table. Toggling stamps or clears
// end_date together with is_active.
type Medication struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	UserID    uuid.UUID   `db:"user_id" json:"-"`
	Name      string      `db:"name" json:"name"`
	Dosage    *string     `db:"dosage" json:"dosage,omitempty"`
	Frequency *string     `db:"frequency" json:"frequency,omitempty"`
	Category  *string     `db:"category" json:"category,omitempty"`
	StartDate *dates.Date `db:"start_date" json:"start_date,omitempty"`
	EndDate   *dates.Date `db:"end_date" json:"end_date,omitempty"`
	IsActive  bool        `db:"is_active" json:"is_active"`
	Notes     *string     `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time   `db:"created_at" json:"-"`
}

// CreateRequest is the payload for recording a medication.
type CreateRequest struct {
	Name      string      `json:"name"`
	Dosage    *string     `json:"dosage,omitempty"`
	Frequency *string     `json:"frequency,omitempty"`
	Category  *string     `json:"category,omitempty"`
	StartDate *dates.Date `json:"start_date,omitempty"`
	Notes     *string     `json:"notes,omitempty"`
}
