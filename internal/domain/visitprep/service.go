package visitprep

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/healthcanvas/healthcanvas/internal/domain/allergy"
	"github.com/healthcanvas/healthcanvas/internal/domain/condition"
	"github.com/healthcanvas/healthcanvas/internal/domain/healthscore"
	"github.com/healthcanvas/healthcanvas/internal/domain/insights"
	"github.com/healthcanvas/healthcanvas/internal/domain/medication"
	"github.com/healthcanvas/healthcanvas/internal/domain/observation"
	"github.com/healthcanvas/healthcanvas/internal/domain/user"
	"github.com/healthcanvas/healthcanvas/internal/platform/ai"
	"github.com/healthcanvas/healthcanvas/internal/platform/pdf"
)

const maxSuggestedQuestions = 5

// defaultPDFQuestions is printed when no tailored question list is supplied.
var defaultPDFQuestions = []string{
	"What do my flagged markers indicate about my health?",
	"Should I be concerned about the significant changes in my results?",
	"Are my current medications affecting any of these results?",
	"What lifestyle changes would you recommend?",
	"When should I retest these markers?",
}

// MedicationLine is the stripped-down medication view in the prep sheet.
type MedicationLine struct {
	Name      string  `json:"name"`
	Dosage    *string `json:"dosage"`
	Frequency *string `json:"frequency"`
}

// PrepSheet is the pre-visit summary shown before an appointment.
type PrepSheet struct {
	FlaggedMarkers     []*observation.Latest      `json:"flagged_markers"`
	SignificantChanges []*observation.ValueChange `json:"significant_changes"`
	ActiveMedications  []MedicationLine           `json:"active_medications"`
	SuggestedQuestions []string                   `json:"suggested_questions"`
}

type ObservationSource interface {
	Latest(ctx context.Context, userID uuid.UUID) ([]*observation.Latest, error)
	LatestFlagged(ctx context.Context, userID uuid.UUID) ([]*observation.Latest, error)
	Changes(ctx context.Context, userID uuid.UUID, thresholdPct float64, limit int) ([]*observation.ValueChange, error)
}

type MedicationSource interface {
	ListMedications(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*medication.Medication, error)
}

type ConditionSource interface {
	ListConditions(ctx context.Context, userID uuid.UUID) ([]*condition.Condition, error)
}

type AllergySource interface {
	ListAllergies(ctx context.Context, userID uuid.UUID) ([]*allergy.Allergy, error)
}

type UserSource interface {
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// Insighter is the optional AI layer; PDF export degrades gracefully when it
// fails or is not configured.
type Insighter interface {
	GenerateInsights(ctx context.Context, observations []ai.ObservationSummary, conditions, medications []string) (*ai.InsightResult, error)
}

// SummaryRenderer produces the printable visit summary document.
type SummaryRenderer interface {
	VisitSummary(data pdf.VisitSummaryData) ([]byte, error)
}

type Service struct {
	observations ObservationSource
	medications  MedicationSource
	conditions   ConditionSource
	allergies    AllergySource
	users        UserSource
	scores       healthscore.Repository
	insighter    Insighter
	renderer     SummaryRenderer
	logger       zerolog.Logger
}

func NewService(
	obs ObservationSource,
	meds MedicationSource,
	conds ConditionSource,
	allergies AllergySource,
	users UserSource,
	scores healthscore.Repository,
	insighter Insighter,
	renderer SummaryRenderer,
	logger zerolog.Logger,
) *Service {
	return &Service{
		observations: obs,
		medications:  meds,
		conditions:   conds,
		allergies:    allergies,
		users:        users,
		scores:       scores,
		insighter:    insighter,
		renderer:     renderer,
		logger:       logger,
	}
}

// Prepare assembles the visit prep sheet: the flagged latest results, recent
// large value movements, active medications, and a question per flagged
// marker capped at five.
func (s *Service) Prepare(ctx context.Context, userID uuid.UUID) (*PrepSheet, error) {
	flagged, err := s.observations.LatestFlagged(ctx, userID)
	if err != nil {
		return nil, err
	}
	policy := insights.DashboardChanges
	changes, err := s.observations.Changes(ctx, userID, policy.Threshold, policy.MaxResults)
	if err != nil {
		return nil, err
	}
	meds, err := s.medications.ListMedications(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	sheet := &PrepSheet{
		FlaggedMarkers:     flagged,
		SignificantChanges: changes,
		ActiveMedications:  []MedicationLine{},
		SuggestedQuestions: []string{},
	}
	if sheet.FlaggedMarkers == nil {
		sheet.FlaggedMarkers = []*observation.Latest{}
	}
	if sheet.SignificantChanges == nil {
		sheet.SignificantChanges = []*observation.ValueChange{}
	}
	for _, m := range meds {
		sheet.ActiveMedications = append(sheet.ActiveMedications, MedicationLine{
			Name: m.Name, Dosage: m.Dosage, Frequency: m.Frequency,
		})
	}
	for _, f := range flagged {
		if len(sheet.SuggestedQuestions) == maxSuggestedQuestions {
			break
		}
		sheet.SuggestedQuestions = append(sheet.SuggestedQuestions, fmt.Sprintf(
			"My %s is %g %s, outside normal range. What might cause this?",
			f.Name, f.Value, f.Unit,
		))
	}
	return sheet, nil
}

// ExportPDF renders the downloadable visit summary. AI insights are best
// effort; any failure there leaves the section out.
func (s *Service) ExportPDF(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	flagged, err := s.observations.LatestFlagged(ctx, userID)
	if err != nil {
		return nil, err
	}
	policy := insights.VisitQuestionChanges
	changes, err := s.observations.Changes(ctx, userID, policy.Threshold, policy.MaxResults)
	if err != nil {
		return nil, err
	}
	meds, err := s.medications.ListMedications(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	conds, err := s.conditions.ListConditions(ctx, userID)
	if err != nil {
		return nil, err
	}
	allergies, err := s.allergies.ListAllergies(ctx, userID)
	if err != nil {
		return nil, err
	}
	scores, err := s.scores.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	data := pdf.VisitSummaryData{
		PatientName: u.DisplayName(),
		ReportDate:  time.Now(),
		Questions:   defaultPDFQuestions,
		Scores:      pdfScores(scores),
	}
	for _, f := range flagged {
		data.FlaggedMarkers = append(data.FlaggedMarkers, pdf.FlaggedMarker{
			Name: f.Name, Value: f.Value, Unit: f.Unit, Status: f.Status,
		})
	}
	for _, ch := range changes {
		data.SignificantChanges = append(data.SignificantChanges, pdf.SignificantChange{
			Name: ch.Name, Direction: ch.Direction, Change: ch.ChangePct,
		})
	}
	for _, m := range meds {
		line := pdf.Medication{Name: m.Name}
		if m.Dosage != nil {
			line.Dosage = *m.Dosage
		}
		if m.Frequency != nil {
			line.Frequency = *m.Frequency
		}
		data.Medications = append(data.Medications, line)
	}
	for _, c := range conds {
		data.Conditions = append(data.Conditions, c.Name)
	}
	for _, a := range allergies {
		data.Allergies = append(data.Allergies, pdf.Allergy{Name: a.Allergen, Severity: a.Criticality})
	}

	if in := s.generateInsights(ctx, userID, conds, meds); in != nil {
		data.AIInsights = in
	}

	return s.renderer.VisitSummary(data)
}

// generateInsights fetches the model's read of the latest results. It never
// fails the export; errors are logged and the section is dropped.
func (s *Service) generateInsights(ctx context.Context, userID uuid.UUID, conds []*condition.Condition, meds []*medication.Medication) *pdf.Insights {
	if s.insighter == nil {
		return nil
	}
	latest, err := s.observations.Latest(ctx, userID)
	if err != nil {
		return nil
	}
	var summaries []ai.ObservationSummary
	for _, l := range latest {
		summaries = append(summaries, ai.ObservationSummary{
			Name: l.Name, Value: l.Value, Unit: l.Unit, Status: l.Status,
		})
	}
	var condNames, medNames []string
	for _, c := range conds {
		if c.ClinicalStatus == "active" {
			condNames = append(condNames, c.Name)
		}
	}
	for _, m := range meds {
		if m.IsActive {
			medNames = append(medNames, m.Name)
		}
	}
	result, err := s.insighter.GenerateInsights(ctx, summaries, condNames, medNames)
	if err != nil {
		s.logger.Warn().Err(err).Msg("visit summary insights unavailable")
		return nil
	}
	return &pdf.Insights{
		Summary:              result.Summary,
		LifestyleSuggestions: result.LifestyleSuggestions,
	}
}

func pdfScores(scores []*healthscore.Score) *pdf.HealthScores {
	if len(scores) == 0 {
		return nil
	}
	out := &pdf.HealthScores{}
	var sum float64
	for _, sc := range scores {
		sum += sc.Score
		out.Categories = append(out.Categories, pdf.CategoryScore{
			Name:   sc.Category,
			Score:  int(math.Round(sc.Score)),
			Status: scoreStatus(sc.Score),
		})
	}
	out.Overall = int(math.Round(sum / float64(len(scores))))
	return out
}

func scoreStatus(score float64) string {
	switch {
	case score >= 80:
		return "good"
	case score >= 60:
		return "fair"
	default:
		return "attention"
	}
}
