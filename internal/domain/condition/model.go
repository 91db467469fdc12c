package condition

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/pkg/dates"
)

// Condition maps to the conditions table.
type Condition struct {
	ID             uuid.UUID   `db:"id" json:"id"`
	UserID         uuid.UUID   `db:"user_id" json:"-"`
	Name           string      `db:"name" json:"name"`
	ClinicalStatus string      `db:"clinical_status" json:"clinical_status"`
	OnsetDate      *dates.Date `db:"onset_date" json:"onset_date,omitempty"`
	Notes          *string     `db:"notes" json:"notes,omitempty"`
	CreatedAt      time.Time   `db:"created_at" json:"-"`
}

// CreateRequest is the payload for recording a condition.
type CreateRequest struct {
	Name           string      `json:"name"`
	ClinicalStatus string      `json:"clinical_status"`
	OnsetDate      *dates.Date `json:"onset_date,omitempty"`
	Notes          *string     `json:"notes,omitempty"`
}
