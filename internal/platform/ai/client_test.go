package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// newTestClient points a configured client at a stub generation endpoint that
// always replies with the given text.
func newTestClient(t *testing.T, replyText string, status int) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.Contains(r.URL.RawQuery, "key=test-key") {
			t.Errorf("missing API key in query: %s", r.URL.RawQuery)
		}
		w.WriteHeader(status)
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": replyText}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "test-model",
		Timeout: 5 * time.Second,
	})
	return c, srv
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(Config{})
	if c.Configured() {
		t.Fatal("keyless client reports configured")
	}
	if _, err := c.ExplainBiomarker(context.Background(), ExplainRequest{MarkerName: "Glucose"}); err != ErrNotConfigured {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestClient_GenerateServerError(t *testing.T) {
	c, _ := newTestClient(t, "", http.StatusInternalServerError)
	if _, err := c.ExplainBiomarker(context.Background(), ExplainRequest{MarkerName: "Glucose"}); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestExplainBiomarker(t *testing.T) {
	reply := "```json\n" + `{
		"plain_explanation": "Your blood sugar is a bit above the usual range.",
		"what_it_measures": "Sugar in your blood after fasting.",
		"why_it_matters": "It reflects how your body handles energy.",
		"factors_that_affect": ["diet", "exercise"],
		"questions_for_doctor": ["Should I retest?"]
	}` + "\n```"
	c, _ := newTestClient(t, reply, http.StatusOK)

	out, err := c.ExplainBiomarker(context.Background(), ExplainRequest{
		MarkerName: "Glucose", Value: 105, Unit: "mg/dL", Status: "high",
	})
	if err != nil {
		t.Fatalf("ExplainBiomarker: %v", err)
	}
	if out.MarkerName != "Glucose" {
		t.Errorf("marker = %q, want Glucose", out.MarkerName)
	}
	if len(out.FactorsThatAffect) != 2 {
		t.Errorf("factors = %d, want 2", len(out.FactorsThatAffect))
	}
}

func TestGenerateInsights(t *testing.T) {
	reply := `{
		"summary": "Mostly normal profile.",
		"patterns": [{"name": "Metabolic Health", "status": "attention", "description": "Glucose trending up.", "related_markers": ["glucose"]}],
		"recommendations": ["Discuss with your doctor."],
		"lifestyle_suggestions": ["Regular walks."]
	}`
	c, _ := newTestClient(t, reply, http.StatusOK)

	out, err := c.GenerateInsights(context.Background(),
		[]ObservationSummary{{Name: "Glucose", Value: 105, Unit: "mg/dL", Status: "high"}},
		[]string{"Hypertension"}, nil)
	if err != nil {
		t.Fatalf("GenerateInsights: %v", err)
	}
	if len(out.Patterns) != 1 || out.Patterns[0].Status != "attention" {
		t.Errorf("unexpected patterns: %+v", out.Patterns)
	}
}

func TestGenerateVisitQuestions(t *testing.T) {
	c, _ := newTestClient(t, `["Why is my glucose high?", "Should I retest soon?"]`, http.StatusOK)

	got := c.GenerateVisitQuestions(context.Background(),
		[]ObservationSummary{{Name: "Glucose", Value: 110, Unit: "mg/dL", Status: "high"}},
		nil, nil)
	if len(got) != 2 || got[0] != "Why is my glucose high?" {
		t.Errorf("unexpected questions: %v", got)
	}
}

func TestGenerateVisitQuestions_FallbackOnFailure(t *testing.T) {
	c, _ := newTestClient(t, "", http.StatusBadGateway)

	got := c.GenerateVisitQuestions(context.Background(), nil, nil, nil)
	want := DefaultVisitQuestions()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("question %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGenerateVisitQuestions_FallbackOnGarbage(t *testing.T) {
	c, _ := newTestClient(t, "I'm sorry, I can't help with that.", http.StatusOK)

	got := c.GenerateVisitQuestions(context.Background(), nil, nil, nil)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5 fallback questions", len(got))
	}
}

func TestExtractLabValues(t *testing.T) {
	reply := "```json\n" + `{
		"lab_name": "Acme Diagnostics",
		"report_date": "2026-01-15",
		"patient_name": null,
		"tests": [
			{"test_name": "Fasting Glucose", "value": 105, "unit": "mg/dL", "reference_range": "70-100", "flag": "H"},
			{"test_name": "HDL Cholesterol", "value": "52", "unit": "mg/dL", "reference_range": "40-60", "flag": null},
			{"test_name": "Blood Pressure", "value": "see note", "unit": "", "reference_range": null, "flag": null}
		]
	}` + "\n```"
	c, _ := newTestClient(t, reply, http.StatusOK)

	out, err := c.ExtractLabValues(context.Background(), []byte("fake-image"), "image/png")
	if err != nil {
		t.Fatalf("ExtractLabValues: %v", err)
	}
	if out.LabName != "Acme Diagnostics" {
		t.Errorf("lab = %q", out.LabName)
	}
	// The unparseable third value is dropped.
	if len(out.ExtractedValues) != 2 {
		t.Fatalf("values = %d, want 2", len(out.ExtractedValues))
	}
	first := out.ExtractedValues[0]
	if first.MappedBiomarkerID != "glucose" {
		t.Errorf("mapped id = %q, want glucose", first.MappedBiomarkerID)
	}
	if first.Flag != "H" || first.Value != 105 {
		t.Errorf("unexpected first value: %+v", first)
	}
	if out.ExtractedValues[1].Value != 52 {
		t.Errorf("string-typed value not parsed: %+v", out.ExtractedValues[1])
	}
}

func TestOptimizeTestTiming(t *testing.T) {
	reply := `{
		"recommendations": [{"marker": "Glucose", "current_frequency": "monthly", "recommended_frequency": "3 months", "reasoning": "Stable.", "priority": "low"}],
		"general_advice": "Annual panel is sufficient.",
		"next_test_date": "2026-11-01"
	}`
	c, _ := newTestClient(t, reply, http.StatusOK)

	out, err := c.OptimizeTestTiming(context.Background(), []MarkerHistory{
		{Name: "Glucose", Values: []float64{98, 101, 99}, Variance: 1.6, Status: "normal"},
	})
	if err != nil {
		t.Fatalf("OptimizeTestTiming: %v", err)
	}
	if len(out.Recommendations) != 1 || out.Recommendations[0].Priority != "low" {
		t.Errorf("unexpected recommendations: %+v", out.Recommendations)
	}
}
