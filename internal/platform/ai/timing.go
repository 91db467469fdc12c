package ai

import (
	"context"
	"fmt"
	"strings"
)

// MarkerHistory summarizes one biomarker's past results for the timing
// optimizer prompt.
type MarkerHistory struct {
	Name     string
	Values   []float64
	Variance float64
	Status   string
}

// TimingRecommendation is the retest advice for a single marker.
type TimingRecommendation struct {
	Marker               string `json:"marker"`
	CurrentFrequency     string `json:"current_frequency"`
	RecommendedFrequency string `json:"recommended_frequency"`
	Reasoning            string `json:"reasoning"`
	Priority             string `json:"priority"` // high, medium or low
}

// TimingResult is the model's retest schedule for the tracked markers.
type TimingResult struct {
	Recommendations []TimingRecommendation `json:"recommendations"`
	GeneralAdvice   string                 `json:"general_advice"`
	NextTestDate    string                 `json:"next_test_date"`
}

// OptimizeTestTiming asks the model for retest intervals based on how stable
// each marker has been.
func (c *Client) OptimizeTestTiming(ctx context.Context, history []MarkerHistory) (*TimingResult, error) {
	var b strings.Builder
	for _, h := range history {
		last := "N/A"
		if len(h.Values) > 0 {
			last = fmt.Sprintf("%g", h.Values[len(h.Values)-1])
		}
		fmt.Fprintf(&b, "- %s: %d tests, variance: %.2f, last value: %s, status: %s\n",
			h.Name, len(h.Values), h.Variance, last, h.Status)
	}

	prompt := fmt.Sprintf(`Analyze this test history and recommend optimal retest intervals.

Test History:
%s
Return a JSON object:
{
    "recommendations": [
        {
            "marker": "Marker name",
            "current_frequency": "How often they've been testing",
            "recommended_frequency": "3 months / 6 months / 12 months / as needed",
            "reasoning": "Brief explanation",
            "priority": "high/medium/low"
        }
    ],
    "general_advice": "Overall advice about testing frequency",
    "next_test_date": "Suggested date for next comprehensive panel (YYYY-MM-DD)"
}

Rules:
1. Stable markers within normal range need less frequent testing
2. Markers with high variance or abnormal values need more frequent testing
3. Consider cost-effectiveness
4. Always recommend at least annual testing for key markers
5. Return ONLY valid JSON`, b.String())

	text, err := c.generate(ctx, []part{{Text: prompt}}, &generationConfig{Temperature: 0.3, MaxOutputTokens: 1024})
	if err != nil {
		return nil, err
	}

	var out TimingResult
	if err := extractJSONObject(text, &out); err != nil {
		return nil, fmt.Errorf("optimize test timing: %w", err)
	}
	return &out, nil
}
