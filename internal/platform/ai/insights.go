package ai

import (
	"context"
	"fmt"
	"strings"
)

// ObservationSummary is the minimal view of a lab result fed into the
// insight and question prompts.
type ObservationSummary struct {
	Name   string
	Value  float64
	Unit   string
	Status string
}

// InsightPattern is one pattern the model noticed across the lab profile.
type InsightPattern struct {
	Name           string   `json:"name"`
	Status         string   `json:"status"` // good, attention or concern
	Description    string   `json:"description"`
	RelatedMarkers []string `json:"related_markers"`
}

// InsightResult is the model's read of a full lab profile.
type InsightResult struct {
	Summary              string           `json:"summary"`
	Patterns             []InsightPattern `json:"patterns"`
	Recommendations      []string         `json:"recommendations"`
	LifestyleSuggestions []string         `json:"lifestyle_suggestions"`
}

// GenerateInsights produces wellness-level insights from the latest results
// plus the user's known conditions and medications.
func (c *Client) GenerateInsights(ctx context.Context, observations []ObservationSummary, conditions, medications []string) (*InsightResult, error) {
	var obs strings.Builder
	for _, o := range observations {
		fmt.Fprintf(&obs, "- %s: %g %s (%s)\n", o.Name, o.Value, o.Unit, o.Status)
	}

	prompt := fmt.Sprintf(`You are a health educator analyzing lab results. Generate insights for the user.

Lab Results:
%s
Known Conditions: %s
Current Medications: %s

Provide a JSON response:
{
    "summary": "2-3 sentence overall summary of the lab profile",
    "patterns": [
        {
            "name": "Pattern name (e.g., 'Metabolic Health')",
            "status": "good/attention/concern",
            "description": "Brief description of what you noticed",
            "related_markers": ["marker1", "marker2"]
        }
    ],
    "recommendations": [
        "General recommendation 1 (always include 'discuss with your doctor')",
        "General recommendation 2"
    ],
    "lifestyle_suggestions": [
        "Lifestyle factor that commonly affects these markers",
        "Another lifestyle suggestion"
    ]
}

Rules:
1. NEVER diagnose diseases
2. NEVER recommend specific medications or dosages
3. Always suggest discussing with a healthcare provider
4. Focus on patterns and general wellness
5. Be encouraging but honest
6. Limit to 3-4 patterns, 3-4 recommendations, 3-4 lifestyle suggestions
7. Return ONLY valid JSON`, obs.String(), joinOrNone(conditions, "None reported"), joinOrNone(medications, "None reported"))

	text, err := c.generate(ctx, []part{{Text: prompt}}, &generationConfig{Temperature: 0.4, MaxOutputTokens: 2048})
	if err != nil {
		return nil, err
	}

	var out InsightResult
	if err := extractJSONObject(text, &out); err != nil {
		return nil, fmt.Errorf("generate insights: %w", err)
	}
	return &out, nil
}

func joinOrNone(items []string, none string) string {
	if len(items) == 0 {
		return none
	}
	return strings.Join(items, ", ")
}
