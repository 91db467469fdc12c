package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// Model replies are free text that usually, but not always, contains the JSON
// we asked for. It may be fenced in a markdown code block, bare, or wrapped
// in prose. Extraction is one explicit step with a typed failure; nothing
// downstream ever assumes well-formed output.

var (
	fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	objectRe     = regexp.MustCompile(`(?s)\{.*\}`)
	arrayRe      = regexp.MustCompile(`(?s)\[.*\]`)
)

// extractJSONObject locates the JSON object in a model reply and unmarshals
// it into v. A fenced code block wins over a bare object span.
func extractJSONObject(text string, v interface{}) error {
	candidate := text
	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		candidate = m[1]
	} else if m := objectRe.FindString(text); m != "" {
		candidate = m
	}
	if err := json.Unmarshal([]byte(candidate), v); err != nil {
		return fmt.Errorf("parse model output: %w", err)
	}
	return nil
}

// extractJSONArray locates the JSON array in a model reply and unmarshals it
// into v.
func extractJSONArray(text string, v interface{}) error {
	candidate := text
	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		candidate = m[1]
	}
	if m := arrayRe.FindString(candidate); m != "" {
		candidate = m
	}
	if err := json.Unmarshal([]byte(candidate), v); err != nil {
		return fmt.Errorf("parse model output: %w", err)
	}
	return nil
}
