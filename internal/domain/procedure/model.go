package procedure

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/pkg/dates"
)

// Procedure maps to the procedures table.
type Procedure struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	UserID        uuid.UUID  `db:"user_id" json:"-"`
	Name          string     `db:"name" json:"name"`
	ProcedureType *string    `db:"procedure_type" json:"procedure_type,omitempty"`
	PerformedDate dates.Date `db:"performed_date" json:"performed_date"`
	FacilityName  *string    `db:"facility_name" json:"facility_name,omitempty"`
	PerformedBy   *string    `db:"performed_by" json:"-"`
	Findings      *string    `db:"findings" json:"findings,omitempty"`
	Notes         *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"-"`
}

// CreateRequest is the payload for recording a procedure.
type CreateRequest struct {
	Name          string     `json:"name"`
	ProcedureType *string    `json:"procedure_type,omitempty"`
	PerformedDate dates.Date `json:"performed_date"`
	FacilityName  *string    `json:"facility_name,omitempty"`
	PerformedBy   *string    `json:"performed_by,omitempty"`
	Findings      *string    `json:"findings,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}
