package allergy

import (
	"time"

	"github.com/google/uuid"
)

// Allergy maps to the allergies table.
type Allergy struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	UserID              uuid.UUID `db:"user_id" json:"-"`
	Allergen            string    `db:"allergen" json:"allergen"`
	Criticality         string    `db:"criticality" json:"criticality"`
	ReactionDescription *string   `db:"reaction_description" json:"reaction_description,omitempty"`
	ClinicalStatus      string    `db:"clinical_status" json:"clinical_status"`
	Notes               *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt           time.Time `db:"created_at" json:"-"`
}

// CreateRequest is the payload for recording an allergy.
type CreateRequest struct {
	Allergen            string  `json:"allergen"`
	Criticality         string  `json:"criticality"`
	ReactionDescription *string `json:"reaction_description,omitempty"`
	Notes               *string `json:"notes,omitempty"`
}
