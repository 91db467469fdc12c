package aiassist

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/healthcanvas/healthcanvas/internal/domain/biomarker"
	"github.com/healthcanvas/healthcanvas/internal/domain/condition"
	"github.com/healthcanvas/healthcanvas/internal/domain/medication"
	"github.com/healthcanvas/healthcanvas/internal/domain/observation"
	"github.com/healthcanvas/healthcanvas/internal/platform/ai"
	"github.com/healthcanvas/healthcanvas/pkg/dates"
)

type mockBiomarkers struct {
	defs map[string]*biomarker.Definition
}

func (m *mockBiomarkers) GetDefinition(_ context.Context, id string) (*biomarker.Definition, error) {
	def, ok := m.defs[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return def, nil
}

type mockObs struct {
	recent  []*observation.Observation
	latest  []*observation.Latest
	flagged []*observation.Latest
	changes []*observation.ValueChange
	history []*observation.MarkerHistory
}

func (m *mockObs) ListObservations(_ context.Context, _ uuid.UUID, _ observation.Filter) ([]*observation.Observation, error) {
	return m.recent, nil
}

func (m *mockObs) Latest(_ context.Context, _ uuid.UUID) ([]*observation.Latest, error) {
	return m.latest, nil
}

func (m *mockObs) LatestFlagged(_ context.Context, _ uuid.UUID) ([]*observation.Latest, error) {
	return m.flagged, nil
}

func (m *mockObs) Changes(_ context.Context, _ uuid.UUID, _ float64, _ int) ([]*observation.ValueChange, error) {
	return m.changes, nil
}

func (m *mockObs) History(_ context.Context, _ uuid.UUID) ([]*observation.MarkerHistory, error) {
	return m.history, nil
}

type mockConds struct{}

func (mockConds) ListActiveConditions(_ context.Context, _ uuid.UUID) ([]*condition.Condition, error) {
	return nil, nil
}

type mockMeds struct{}

func (mockMeds) ListMedications(_ context.Context, _ uuid.UUID, _ bool) ([]*medication.Medication, error) {
	return nil, nil
}

type mockAI struct {
	ocr           *ai.OCRResult
	ocrErr        error
	explanation   *ai.Explanation
	lastExplain   ai.ExplainRequest
	insights      *ai.InsightResult
	insightsErr   error
	insightCalled bool
	questions     []string
	timing        *ai.TimingResult
	timingCalled  bool
}

func (m *mockAI) ExtractLabValues(_ context.Context, _ []byte, _ string) (*ai.OCRResult, error) {
	return m.ocr, m.ocrErr
}

func (m *mockAI) ExplainBiomarker(_ context.Context, req ai.ExplainRequest) (*ai.Explanation, error) {
	m.lastExplain = req
	return m.explanation, nil
}

func (m *mockAI) GenerateInsights(_ context.Context, _ []ai.ObservationSummary, _, _ []string) (*ai.InsightResult, error) {
	m.insightCalled = true
	return m.insights, m.insightsErr
}

func (m *mockAI) GenerateVisitQuestions(_ context.Context, _ []ai.ObservationSummary, _ []ai.MarkerChange, _ []string) []string {
	return m.questions
}

func (m *mockAI) OptimizeTestTiming(_ context.Context, _ []ai.MarkerHistory) (*ai.TimingResult, error) {
	m.timingCalled = true
	return m.timing, nil
}

func floatPtr(v float64) *float64 { return &v }

func newTestService(obs *mockObs, client *mockAI) *Service {
	defs := map[string]*biomarker.Definition{
		"glucose": {
			ID: "glucose", Name: "Glucose", Category: "metabolic", Unit: "mg/dL",
			NormalRangeLow: floatPtr(70), NormalRangeHigh: floatPtr(100),
		},
	}
	return NewService(&mockBiomarkers{defs: defs}, obs, mockConds{}, mockMeds{}, client)
}

func TestExtractFromUpload_RejectsUnsupportedType(t *testing.T) {
	svc := newTestService(&mockObs{}, &mockAI{})
	_, err := svc.ExtractFromUpload(context.Background(), []byte("data"), "text/plain")
	var unsupported *UnsupportedFileTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("err = %v, want UnsupportedFileTypeError", err)
	}
	if unsupported.Error() != "Unsupported file type: text/plain" {
		t.Errorf("message = %q", unsupported.Error())
	}
}

func TestExtractFromUpload_RejectsOversizedFile(t *testing.T) {
	svc := newTestService(&mockObs{}, &mockAI{})
	big := make([]byte, maxUploadBytes+1)
	if _, err := svc.ExtractFromUpload(context.Background(), big, "application/pdf"); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("err = %v, want ErrFileTooLarge", err)
	}
}

func TestExtractFromUpload_CountsUnmappedValues(t *testing.T) {
	client := &mockAI{ocr: &ai.OCRResult{
		LabName:    "Quest Diagnostics",
		ReportDate: "2026-08-15",
		ExtractedValues: []ai.ExtractedLabValue{
			{TestName: "Glucose", Value: 95, Unit: "mg/dL", MappedBiomarkerID: "glucose"},
			{TestName: "Obscure Test", Value: 1.2, Unit: "u"},
			{TestName: "Another Obscure", Value: 3.4, Unit: "u"},
		},
	}}
	svc := newTestService(&mockObs{}, client)

	got, err := svc.ExtractFromUpload(context.Background(), []byte("%PDF"), "application/pdf")
	if err != nil {
		t.Fatalf("ExtractFromUpload: %v", err)
	}
	if !got.Success {
		t.Error("expected success")
	}
	if got.UnmappedCount != 2 {
		t.Errorf("unmapped = %d, want 2", got.UnmappedCount)
	}
	if got.LabName != "Quest Diagnostics" {
		t.Errorf("lab name = %q", got.LabName)
	}
}

func TestExplain_UnknownBiomarker(t *testing.T) {
	svc := newTestService(&mockObs{}, &mockAI{})
	if _, err := svc.Explain(context.Background(), uuid.New(), "nope"); !errors.Is(err, ErrBiomarkerNotFound) {
		t.Errorf("err = %v, want ErrBiomarkerNotFound", err)
	}
}

func TestExplain_NoResultsYet(t *testing.T) {
	client := &mockAI{explanation: &ai.Explanation{PlainExplanation: "Measures blood sugar."}}
	svc := newTestService(&mockObs{}, client)

	got, err := svc.Explain(context.Background(), uuid.New(), "glucose")
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if got.CurrentValue != nil {
		t.Errorf("current value = %v, want nil", *got.CurrentValue)
	}
	if got.Status != "unknown" {
		t.Errorf("status = %q, want unknown", got.Status)
	}
	if client.lastExplain.ReferenceRange != "70-100" {
		t.Errorf("reference range = %q, want 70-100", client.lastExplain.ReferenceRange)
	}
}

func TestExplain_TrendFromPreviousResult(t *testing.T) {
	newer, _ := dates.Parse("2026-08-01")
	older, _ := dates.Parse("2026-05-01")
	obs := &mockObs{recent: []*observation.Observation{
		{BiomarkerID: "glucose", Value: 110, EffectiveDate: newer, Status: "attention"},
		{BiomarkerID: "glucose", Value: 100, EffectiveDate: older, Status: "normal"},
	}}
	client := &mockAI{explanation: &ai.Explanation{PlainExplanation: "Slightly elevated."}}
	svc := newTestService(obs, client)

	got, err := svc.Explain(context.Background(), uuid.New(), "glucose")
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if got.CurrentValue == nil || *got.CurrentValue != 110 {
		t.Errorf("current value = %v, want 110", got.CurrentValue)
	}
	if got.Status != "attention" {
		t.Errorf("status = %q, want attention", got.Status)
	}
	if client.lastExplain.Trend != "increased by 10.0%" {
		t.Errorf("trend = %q, want increased by 10.0%%", client.lastExplain.Trend)
	}
}

func TestInsights_EmptyStateSkipsModel(t *testing.T) {
	client := &mockAI{}
	svc := newTestService(&mockObs{}, client)

	got, err := svc.Insights(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if client.insightCalled {
		t.Error("model should not be called without results")
	}
	if got.Summary != "No lab results available for analysis." {
		t.Errorf("summary = %q", got.Summary)
	}
	if got.Patterns == nil || got.Recommendations == nil || got.LifestyleSuggestions == nil {
		t.Error("expected empty slices, not nil")
	}
}

func TestInsights_PassesThroughModelResult(t *testing.T) {
	client := &mockAI{insights: &ai.InsightResult{
		Summary:         "Profile looks stable.",
		Recommendations: []string{"Discuss with your doctor."},
	}}
	obs := &mockObs{latest: []*observation.Latest{{Name: "Glucose", Value: 95, Unit: "mg/dL", Status: "normal"}}}
	svc := newTestService(obs, client)

	got, err := svc.Insights(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if got.Summary != "Profile looks stable." {
		t.Errorf("summary = %q", got.Summary)
	}
}

func TestVisitQuestions(t *testing.T) {
	client := &mockAI{questions: []string{"Why is my glucose trending up?"}}
	svc := newTestService(&mockObs{}, client)

	got, err := svc.VisitQuestions(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("VisitQuestions: %v", err)
	}
	if !got.Success || len(got.Questions) != 1 {
		t.Errorf("response = %+v", got)
	}
}

func TestTestTiming_EmptyHistorySkipsModel(t *testing.T) {
	client := &mockAI{}
	svc := newTestService(&mockObs{}, client)

	got, err := svc.TestTiming(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("TestTiming: %v", err)
	}
	if client.timingCalled {
		t.Error("model should not be called without history")
	}
	if got.NextTestDate != nil {
		t.Errorf("next test date = %v, want nil", *got.NextTestDate)
	}
	if got.GeneralAdvice == "" {
		t.Error("expected fixed advice for empty history")
	}
}

func TestTestTiming_PassesThroughModelResult(t *testing.T) {
	client := &mockAI{timing: &ai.TimingResult{
		Recommendations: []ai.TimingRecommendation{{Marker: "Glucose", RecommendedFrequency: "every 3 months", Priority: "medium"}},
		GeneralAdvice:   "Retest quarterly.",
		NextTestDate:    "2026-11-01",
	}}
	obs := &mockObs{history: []*observation.MarkerHistory{{Name: "Glucose", Values: []float64{95, 110}, Variance: 7.5, Status: "attention"}}}
	svc := newTestService(obs, client)

	got, err := svc.TestTiming(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("TestTiming: %v", err)
	}
	if got.NextTestDate == nil || *got.NextTestDate != "2026-11-01" {
		t.Errorf("next test date = %v, want 2026-11-01", got.NextTestDate)
	}
	if len(got.Recommendations) != 1 {
		t.Errorf("recommendations = %+v", got.Recommendations)
	}
}
