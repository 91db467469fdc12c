package family

import (
	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/pkg/dates"
)

// Member is a relative tracked for hereditary risk, with the conditions
// recorded against them.
type Member struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	UserID       uuid.UUID   `db:"user_id" json:"-"`
	Name         string      `db:"name" json:"name"`
	Relationship string      `db:"relationship" json:"relationship"`
	DateOfBirth  *dates.Date `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Notes        *string     `db:"notes" json:"notes,omitempty"`
	Conditions   []string    `json:"conditions"`
}

// CreateMemberRequest is the payload for adding a relative.
type CreateMemberRequest struct {
	Name         string      `json:"name"`
	Relationship string      `json:"relationship"`
	DateOfBirth  *dates.Date `json:"date_of_birth,omitempty"`
	Notes        *string     `json:"notes,omitempty"`
}

// AddConditionRequest records a condition against a relative.
type AddConditionRequest struct {
	ConditionName  string  `json:"condition_name"`
	AgeAtDiagnosis *int    `json:"age_at_diagnosis,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// MemberCondition is one condition row joined to its member's relationship,
// the unit of risk pattern analysis.
type MemberCondition struct {
	ConditionName  string
	Relationship   string
	AgeAtDiagnosis *int
}

// RiskPattern is a condition seen in two or more relatives.
type RiskPattern struct {
	Condition             string   `json:"condition"`
	FamilyMembersAffected int      `json:"family_members_affected"`
	Relationships         []string `json:"relationships"`
	AverageAgeAtDiagnosis *int     `json:"average_age_at_diagnosis"`
	RiskLevel             string   `json:"risk_level"`
}

// RiskReport pairs detected patterns with screening recommendations.
type RiskReport struct {
	Patterns        []RiskPattern `json:"patterns"`
	Recommendations []string      `json:"recommendations"`
}
