package aiassist

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/internal/domain/biomarker"
	"github.com/healthcanvas/healthcanvas/internal/domain/condition"
	"github.com/healthcanvas/healthcanvas/internal/domain/insights"
	"github.com/healthcanvas/healthcanvas/internal/domain/medication"
	"github.com/healthcanvas/healthcanvas/internal/domain/observation"
	"github.com/healthcanvas/healthcanvas/internal/platform/ai"
)

const maxUploadBytes = 10 * 1024 * 1024

var (
	ErrBiomarkerNotFound = errors.New("biomarker not found")
	ErrFileTooLarge      = errors.New("File too large (max 10MB)")
)

// UnsupportedFileTypeError reports an upload outside the accepted formats.
type UnsupportedFileTypeError struct {
	MimeType string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("Unsupported file type: %s", e.MimeType)
}

var allowedUploadTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
}

type BiomarkerSource interface {
	GetDefinition(ctx context.Context, id string) (*biomarker.Definition, error)
}

type ObservationSource interface {
	ListObservations(ctx context.Context, userID uuid.UUID, f observation.Filter) ([]*observation.Observation, error)
	Latest(ctx context.Context, userID uuid.UUID) ([]*observation.Latest, error)
	LatestFlagged(ctx context.Context, userID uuid.UUID) ([]*observation.Latest, error)
	Changes(ctx context.Context, userID uuid.UUID, thresholdPct float64, limit int) ([]*observation.ValueChange, error)
	History(ctx context.Context, userID uuid.UUID) ([]*observation.MarkerHistory, error)
}

type ConditionSource interface {
	ListActiveConditions(ctx context.Context, userID uuid.UUID) ([]*condition.Condition, error)
}

type MedicationSource interface {
	ListMedications(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*medication.Medication, error)
}

// AIClient is the model-facing surface the assistant endpoints need.
type AIClient interface {
	ExtractLabValues(ctx context.Context, fileContent []byte, mimeType string) (*ai.OCRResult, error)
	ExplainBiomarker(ctx context.Context, req ai.ExplainRequest) (*ai.Explanation, error)
	GenerateInsights(ctx context.Context, observations []ai.ObservationSummary, conditions, medications []string) (*ai.InsightResult, error)
	GenerateVisitQuestions(ctx context.Context, flagged []ai.ObservationSummary, changes []ai.MarkerChange, conditions []string) []string
	OptimizeTestTiming(ctx context.Context, history []ai.MarkerHistory) (*ai.TimingResult, error)
}

type Service struct {
	biomarkers   BiomarkerSource
	observations ObservationSource
	conditions   ConditionSource
	medications  MedicationSource
	ai           AIClient
}

func NewService(biomarkers BiomarkerSource, obs ObservationSource, conds ConditionSource, meds MedicationSource, client AIClient) *Service {
	return &Service{
		biomarkers:   biomarkers,
		observations: obs,
		conditions:   conds,
		medications:  meds,
		ai:           client,
	}
}

// ExtractFromUpload runs OCR extraction over an uploaded lab report and maps
// the recognized test names onto the biomarker catalog.
func (s *Service) ExtractFromUpload(ctx context.Context, content []byte, mimeType string) (*ExtractResponse, error) {
	if _, ok := allowedUploadTypes[mimeType]; !ok {
		return nil, &UnsupportedFileTypeError{MimeType: mimeType}
	}
	if len(content) > maxUploadBytes {
		return nil, ErrFileTooLarge
	}
	result, err := s.ai.ExtractLabValues(ctx, content, mimeType)
	if err != nil {
		return nil, err
	}
	out := &ExtractResponse{
		Success:         true,
		LabName:         result.LabName,
		ReportDate:      result.ReportDate,
		ExtractedValues: result.ExtractedValues,
	}
	if out.ExtractedValues == nil {
		out.ExtractedValues = []ai.ExtractedLabValue{}
	}
	for _, v := range out.ExtractedValues {
		if v.MappedBiomarkerID == "" {
			out.UnmappedCount++
		}
	}
	return out, nil
}

// Explain fetches the plain-language explanation of a biomarker in the
// context of the user's latest result and its trend.
func (s *Service) Explain(ctx context.Context, userID uuid.UUID, biomarkerID string) (*ExplainResponse, error) {
	def, err := s.biomarkers.GetDefinition(ctx, biomarkerID)
	if err != nil {
		return nil, ErrBiomarkerNotFound
	}
	recent, err := s.observations.ListObservations(ctx, userID, observation.Filter{
		BiomarkerID: biomarkerID,
		Limit:       2,
	})
	if err != nil {
		return nil, err
	}

	req := ai.ExplainRequest{
		MarkerName: def.Name,
		Unit:       def.Unit,
		Status:     "unknown",
	}
	if def.NormalRangeLow != nil && def.NormalRangeHigh != nil {
		req.ReferenceRange = fmt.Sprintf("%g-%g", *def.NormalRangeLow, *def.NormalRangeHigh)
	}

	var currentValue *float64
	if len(recent) > 0 {
		latest := recent[0]
		currentValue = &latest.Value
		req.Value = latest.Value
		req.Status = latest.Status
		if len(recent) > 1 && recent[1].EffectiveDate.Before(latest.EffectiveDate.Time) && recent[1].Value != 0 {
			change := (latest.Value - recent[1].Value) / recent[1].Value * 100
			direction := "increased"
			if change <= 0 {
				direction = "decreased"
			}
			req.Trend = fmt.Sprintf("%s by %.1f%%", direction, math.Abs(change))
		}
	}

	explanation, err := s.ai.ExplainBiomarker(ctx, req)
	if err != nil {
		return nil, err
	}
	return &ExplainResponse{
		BiomarkerID:        biomarkerID,
		Name:               def.Name,
		CurrentValue:       currentValue,
		Unit:               def.Unit,
		Status:             req.Status,
		Explanation:        explanation.PlainExplanation,
		WhatItMeasures:     explanation.WhatItMeasures,
		WhyItMatters:       explanation.WhyItMatters,
		FactorsThatAffect:  explanation.FactorsThatAffect,
		QuestionsForDoctor: explanation.QuestionsForDoctor,
	}, nil
}

// Insights generates a wellness-level read of the user's latest results.
// With no results at all it answers locally without calling the model.
func (s *Service) Insights(ctx context.Context, userID uuid.UUID) (*InsightsResponse, error) {
	latest, err := s.observations.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(latest) == 0 {
		return &InsightsResponse{
			Success:              true,
			Summary:              "No lab results available for analysis.",
			Patterns:             []ai.InsightPattern{},
			Recommendations:      []string{},
			LifestyleSuggestions: []string{},
		}, nil
	}

	condNames, medNames, err := s.activeContext(ctx, userID)
	if err != nil {
		return nil, err
	}
	result, err := s.ai.GenerateInsights(ctx, summaries(latest), condNames, medNames)
	if err != nil {
		return nil, err
	}
	out := &InsightsResponse{
		Success:              true,
		Summary:              result.Summary,
		Patterns:             result.Patterns,
		Recommendations:      result.Recommendations,
		LifestyleSuggestions: result.LifestyleSuggestions,
	}
	if out.Patterns == nil {
		out.Patterns = []ai.InsightPattern{}
	}
	if out.Recommendations == nil {
		out.Recommendations = []string{}
	}
	if out.LifestyleSuggestions == nil {
		out.LifestyleSuggestions = []string{}
	}
	return out, nil
}

// VisitQuestions produces the tailored question list for the next doctor
// visit. The underlying client falls back to a fixed set on model failure,
// so this only errors on storage problems.
func (s *Service) VisitQuestions(ctx context.Context, userID uuid.UUID) (*QuestionsResponse, error) {
	flagged, err := s.observations.LatestFlagged(ctx, userID)
	if err != nil {
		return nil, err
	}
	policy := insights.VisitQuestionChanges
	changes, err := s.observations.Changes(ctx, userID, policy.Threshold, policy.MaxResults)
	if err != nil {
		return nil, err
	}
	conds, err := s.conditions.ListActiveConditions(ctx, userID)
	if err != nil {
		return nil, err
	}

	var markerChanges []ai.MarkerChange
	for _, ch := range changes {
		markerChanges = append(markerChanges, ai.MarkerChange{
			Name: ch.Name, Direction: ch.Direction, Change: ch.ChangePct,
		})
	}
	var condNames []string
	for _, c := range conds {
		condNames = append(condNames, c.Name)
	}

	questions := s.ai.GenerateVisitQuestions(ctx, summaries(flagged), markerChanges, condNames)
	return &QuestionsResponse{Success: true, Questions: questions}, nil
}

// TestTiming asks the model for retest intervals. Users without enough
// repeat history get fixed advice instead of a model call.
func (s *Service) TestTiming(ctx context.Context, userID uuid.UUID) (*TimingResponse, error) {
	history, err := s.observations.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return &TimingResponse{
			Success:         true,
			Recommendations: []ai.TimingRecommendation{},
			GeneralAdvice:   "Not enough test history for timing optimization. Continue regular testing as recommended by your doctor.",
		}, nil
	}

	var markerHistory []ai.MarkerHistory
	for _, h := range history {
		markerHistory = append(markerHistory, ai.MarkerHistory{
			Name: h.Name, Values: h.Values, Variance: h.Variance, Status: h.Status,
		})
	}
	result, err := s.ai.OptimizeTestTiming(ctx, markerHistory)
	if err != nil {
		return nil, err
	}
	out := &TimingResponse{
		Success:         true,
		Recommendations: result.Recommendations,
		GeneralAdvice:   result.GeneralAdvice,
	}
	if out.Recommendations == nil {
		out.Recommendations = []ai.TimingRecommendation{}
	}
	if result.NextTestDate != "" {
		out.NextTestDate = &result.NextTestDate
	}
	return out, nil
}

func (s *Service) activeContext(ctx context.Context, userID uuid.UUID) (conditions, medications []string, err error) {
	conds, err := s.conditions.ListActiveConditions(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	meds, err := s.medications.ListMedications(ctx, userID, true)
	if err != nil {
		return nil, nil, err
	}
	for _, c := range conds {
		conditions = append(conditions, c.Name)
	}
	for _, m := range meds {
		medications = append(medications, m.Name)
	}
	return conditions, medications, nil
}

func summaries(latest []*observation.Latest) []ai.ObservationSummary {
	out := make([]ai.ObservationSummary, 0, len(latest))
	for _, l := range latest {
		out = append(out, ai.ObservationSummary{
			Name: l.Name, Value: l.Value, Unit: l.Unit, Status: l.Status,
		})
	}
	return out
}
