package ai

import (
	"context"
	"fmt"
	"strings"
)

// MarkerChange is one significant value movement described to the model.
type MarkerChange struct {
	Name      string
	Direction string // "increased" or "decreased"
	Change    float64
}

// defaultVisitQuestions is the fallback set used whenever the model cannot
// produce questions. Visit prep must never come back empty.
var defaultVisitQuestions = []string{
	"What do my current results indicate about my overall health?",
	"Are there any concerning trends I should be aware of?",
	"What lifestyle changes would you recommend based on these results?",
	"When should I retest these markers?",
	"Are my current medications affecting any of these results?",
}

// DefaultVisitQuestions returns a copy of the fallback question set.
func DefaultVisitQuestions() []string {
	out := make([]string, len(defaultVisitQuestions))
	copy(out, defaultVisitQuestions)
	return out
}

// GenerateVisitQuestions asks the model for five personalized questions for
// an upcoming doctor visit. On any failure it falls back to the default set,
// so this call never returns an error.
func (c *Client) GenerateVisitQuestions(ctx context.Context, flagged []ObservationSummary, changes []MarkerChange, conditions []string) []string {
	var flaggedText strings.Builder
	for _, m := range flagged {
		fmt.Fprintf(&flaggedText, "- %s: %g %s (%s)\n", m.Name, m.Value, m.Unit, m.Status)
	}
	var changesText strings.Builder
	for _, ch := range changes {
		fmt.Fprintf(&changesText, "- %s: %s by %.1f%%\n", ch.Name, ch.Direction, ch.Change)
	}

	prompt := fmt.Sprintf(`Generate 5 specific questions a patient should ask their doctor based on these lab results.

Flagged Markers (outside normal range):
%s

Significant Changes:
%s

Known Conditions: %s

Return a JSON array of exactly 5 questions:
["Question 1?", "Question 2?", "Question 3?", "Question 4?", "Question 5?"]

Rules:
1. Questions should be specific to the actual results shown
2. Questions should help the patient understand their results
3. Questions should explore potential causes and next steps
4. Questions should be respectful and appropriate for a medical setting
5. Return ONLY the JSON array, no other text`,
		textOrNone(flaggedText.String()), textOrNone(changesText.String()), joinOrNone(conditions, "None"))

	text, err := c.generate(ctx, []part{{Text: prompt}}, &generationConfig{Temperature: 0.5, MaxOutputTokens: 512})
	if err != nil {
		return DefaultVisitQuestions()
	}

	var questions []string
	if err := extractJSONArray(text, &questions); err != nil || len(questions) == 0 {
		return DefaultVisitQuestions()
	}
	if len(questions) > 5 {
		questions = questions[:5]
	}
	return questions
}

func textOrNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return strings.TrimRight(s, "\n")
}
