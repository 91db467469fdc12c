package goal

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/pkg/dates"
)

// Goal maps to the health_goals table. Baseline and current value are
// snapshotted from the latest observation at creation time and may be nil
// when the user has no results for the biomarker yet.
type Goal struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	UserID        uuid.UUID   `db:"user_id" json:"-"`
	BiomarkerID   string      `db:"biomarker_id" json:"biomarker_id"`
	TargetValue   float64     `db:"target_value" json:"target_value"`
	BaselineValue *float64    `db:"baseline_value" json:"baseline_value,omitempty"`
	CurrentValue  *float64    `db:"current_value" json:"current_value,omitempty"`
	TargetDate    *dates.Date `db:"target_date" json:"target_date,omitempty"`
	Description   *string     `db:"description" json:"description,omitempty"`
	Status        string      `db:"status" json:"status"`
	CreatedAt     time.Time   `db:"created_at" json:"-"`
}

// CreateRequest is the payload for setting a goal.
type CreateRequest struct {
	BiomarkerID string      `json:"biomarker_id"`
	TargetValue float64     `json:"target_value"`
	TargetDate  *dates.Date `json:"target_date,omitempty"`
	Description *string     `json:"description,omitempty"`
}
