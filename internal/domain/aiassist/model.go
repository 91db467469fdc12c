package aiassist

import "github.com/healthcanvas/healthcanvas/internal/platform/ai"

// ExtractResponse is the structured outcome of a lab report upload.
type ExtractResponse struct {
	Success         bool                   `json:"success"`
	LabName         string                 `json:"lab_name,omitempty"`
	ReportDate      string                 `json:"report_date,omitempty"`
	ExtractedValues []ai.ExtractedLabValue `json:"extracted_values"`
	UnmappedCount   int                    `json:"unmapped_count"`
}

// ExplainResponse pairs a biomarker's latest result with its plain-language
// explanation. CurrentValue is nil when the user has no result yet.
type ExplainResponse struct {
	BiomarkerID        string   `json:"biomarker_id"`
	Name               string   `json:"name"`
	CurrentValue       *float64 `json:"current_value"`
	Unit               string   `json:"unit"`
	Status             string   `json:"status"`
	Explanation        string   `json:"explanation"`
	WhatItMeasures     string   `json:"what_it_measures"`
	WhyItMatters       string   `json:"why_it_matters"`
	FactorsThatAffect  []string `json:"factors_that_affect"`
	QuestionsForDoctor []string `json:"questions_for_doctor"`
}

// InsightsResponse is the model's read of the full lab profile.
type InsightsResponse struct {
	Success              bool                `json:"success"`
	Summary              string              `json:"summary"`
	Patterns             []ai.InsightPattern `json:"patterns"`
	Recommendations      []string            `json:"recommendations"`
	LifestyleSuggestions []string            `json:"lifestyle_suggestions"`
}

// QuestionsResponse is the tailored doctor-visit question list.
type QuestionsResponse struct {
	Success   bool     `json:"success"`
	Questions []string `json:"questions"`
}

// TimingResponse is the retest schedule advice. NextTestDate is nil when
// there is not enough history to suggest one.
type TimingResponse struct {
	Success         bool                      `json:"success"`
	Recommendations []ai.TimingRecommendation `json:"recommendations"`
	GeneralAdvice   string                    `json:"general_advice"`
	NextTestDate    *string                   `json:"next_test_date"`
}
