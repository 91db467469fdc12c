package observation

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/pkg/dates"
)

// Status values derived by the store from the biomarker's normal range.
const (
	StatusNormal    = "normal"
	StatusAttention = "attention"
	StatusCritical  = "critical"
)

// Observation is one lab result. Name, category and unit are joined in from
// the biomarker definition; status is derived by the database on write.
type Observation struct {
	ID               uuid.UUID   `db:"id" json:"id"`
	UserID           uuid.UUID   `db:"user_id" json:"-"`
	BiomarkerID      string      `db:"biomarker_id" json:"biomarker_id"`
	BiomarkerName    string      `json:"biomarker_name"`
	Category         string      `json:"category"`
	Value            float64     `db:"value" json:"value"`
	Unit             string      `db:"unit" json:"unit"`
	EffectiveDate    dates.Date  `db:"effective_date" json:"effective_date"`
	Status           string      `db:"status" json:"status"`
	LabName          *string     `db:"lab_name" json:"lab_name,omitempty"`
	LabReferenceLow  *float64    `db:"lab_reference_low" json:"-"`
	LabReferenceHigh *float64    `db:"lab_reference_high" json:"-"`
	Notes            *string     `db:"notes" json:"notes,omitempty"`
	CreatedAt        time.Time   `db:"created_at" json:"created_at"`
}

// CreateRequest is the payload for recording a new result.
type CreateRequest struct {
	BiomarkerID      string     `json:"biomarker_id"`
	Value            float64    `json:"value"`
	EffectiveDate    dates.Date `json:"effective_date"`
	LabName          *string    `json:"lab_name,omitempty"`
	LabReferenceLow  *float64   `json:"lab_reference_low,omitempty"`
	LabReferenceHigh *float64   `json:"lab_reference_high,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
}

// UpdateRequest is a partial update; nil fields are left untouched.
type UpdateRequest struct {
	Value         *float64    `json:"value,omitempty"`
	EffectiveDate *dates.Date `json:"effective_date,omitempty"`
	LabName       *string     `json:"lab_name,omitempty"`
	Notes         *string     `json:"notes,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UpdateRequest) IsEmpty() bool {
	return u.Value == nil && u.EffectiveDate == nil && u.LabName == nil && u.Notes == nil
}

// Filter narrows observation listings.
type Filter struct {
	BiomarkerID string
	StartDate   *dates.Date
	EndDate     *dates.Date
	Limit       int
}

// Latest is the most recent value per biomarker, keyed by biomarker id.
type Latest struct {
	BiomarkerID     string   `json:"biomarker_id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Value           float64  `json:"value"`
	Unit            string   `json:"unit"`
	Status          string   `json:"status"`
	NormalRangeLow  *float64 `json:"normal_range_low,omitempty"`
	NormalRangeHigh *float64 `json:"normal_range_high,omitempty"`
}

// ValueChange is a movement between consecutive results of one biomarker.
type ValueChange struct {
	BiomarkerID   string     `json:"biomarker_id"`
	Name          string     `json:"name"`
	Unit          string     `json:"unit"`
	Value         float64    `json:"value"`
	PrevValue     float64    `json:"prev_value"`
	ChangePct     float64    `json:"change_pct"`
	Direction     string     `json:"direction"` // "increased" or "decreased"
	EffectiveDate dates.Date `json:"effective_date"`
}

// MarkerHistory aggregates one biomarker's past results for timing analysis.
// Only biomarkers with at least two samples are reported.
type MarkerHistory struct {
	BiomarkerID string     `json:"biomarker_id"`
	Name        string     `json:"name"`
	Values      []float64  `json:"values"`
	Variance    float64    `json:"variance"`
	Status      string     `json:"status"`
	TestCount   int        `json:"test_count"`
	LastTest    dates.Date `json:"last_test"`
}
