package ai

import (
	"context"
	"fmt"
	"strings"
)

// ExplainRequest describes the lab result to explain.
type ExplainRequest struct {
	MarkerName     string
	Value          float64
	Unit           string
	Status         string
	ReferenceRange string
	Trend          string
}

// Explanation is a plain-language description of a single lab result.
type Explanation struct {
	MarkerName         string   `json:"marker_name"`
	PlainExplanation   string   `json:"plain_explanation"`
	WhatItMeasures     string   `json:"what_it_measures"`
	WhyItMatters       string   `json:"why_it_matters"`
	FactorsThatAffect  []string `json:"factors_that_affect"`
	QuestionsForDoctor []string `json:"questions_for_doctor"`
}

// ExplainBiomarker asks the model for a non-diagnostic, plain-language
// explanation of one result.
func (c *Client) ExplainBiomarker(ctx context.Context, req ExplainRequest) (*Explanation, error) {
	var b strings.Builder
	fmt.Fprintf(&b, `You are a health educator (NOT a doctor). Explain this lab result in simple terms.

Lab Result:
- Test: %s
- Value: %g %s
- Status: %s
`, req.MarkerName, req.Value, req.Unit, req.Status)
	if req.ReferenceRange != "" {
		fmt.Fprintf(&b, "- Reference Range: %s\n", req.ReferenceRange)
	}
	if req.Trend != "" {
		fmt.Fprintf(&b, "- Recent Trend: %s\n", req.Trend)
	}
	b.WriteString(`
Provide a JSON response with this structure:
{
    "plain_explanation": "2-3 sentence explanation a non-medical person can understand",
    "what_it_measures": "One sentence about what this test measures",
    "why_it_matters": "Why this marker is important for health",
    "factors_that_affect": ["factor1", "factor2", "factor3"],
    "questions_for_doctor": ["question1", "question2"]
}

Rules:
1. Use simple, non-technical language
2. NEVER diagnose or suggest specific treatments
3. NEVER say "you have X disease"
4. Always encourage discussing with a doctor
5. Be factual and reassuring but honest
6. Focus on lifestyle factors that commonly influence this marker
7. Return ONLY valid JSON`)

	text, err := c.generate(ctx, []part{{Text: b.String()}}, &generationConfig{Temperature: 0.3, MaxOutputTokens: 1024})
	if err != nil {
		return nil, err
	}

	var out Explanation
	if err := extractJSONObject(text, &out); err != nil {
		return nil, fmt.Errorf("explain biomarker: %w", err)
	}
	out.MarkerName = req.MarkerName
	return &out, nil
}
