package vaccination

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/pkg/dates"
)

// Vaccination maps to the vaccinations table.
type Vaccination struct {
	ID                 uuid.UUID   `db:"id" json:"id"`
	UserID             uuid.UUID   `db:"user_id" json:"-"`
	VaccineName        string      `db:"vaccine_name" json:"vaccine_name"`
	AdministrationDate dates.Date  `db:"administration_date" json:"administration_date"`
	NextDoseDue        *dates.Date `db:"next_dose_due" json:"next_dose_due,omitempty"`
	Status             string      `db:"status" json:"status"`
	Notes              *string     `db:"notes" json:"notes,omitempty"`
	CreatedAt          time.Time   `db:"created_at" json:"-"`
}

// CreateRequest is the payload for recording a vaccination.
type CreateRequest struct {
	VaccineName        string      `json:"vaccine_name"`
	AdministrationDate dates.Date  `json:"administration_date"`
	NextDoseDue        *dates.Date `json:"next_dose_due,omitempty"`
	Notes              *string     `json:"notes,omitempty"`
}
