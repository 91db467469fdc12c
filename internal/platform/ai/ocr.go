package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
)

// ExtractedLabValue is one test result pulled out of an uploaded report.
type ExtractedLabValue struct {
	TestName          string  `json:"test_name"`
	Value             float64 `json:"value"`
	Unit              string  `json:"unit"`
	ReferenceRange    string  `json:"reference_range,omitempty"`
	Flag              string  `json:"flag,omitempty"` // "H", "L" or empty
	Confidence        float64 `json:"confidence"`
	MappedBiomarkerID string  `json:"mapped_biomarker_id,omitempty"`
}

// OCRResult is the structured outcome of a lab report extraction.
type OCRResult struct {
	LabName         string              `json:"lab_name,omitempty"`
	ReportDate      string              `json:"report_date,omitempty"`
	PatientName     string              `json:"patient_name,omitempty"`
	ExtractedValues []ExtractedLabValue `json:"extracted_values"`
	RawText         string              `json:"raw_text,omitempty"`
}

const extractionPrompt = `Analyze this lab report image and extract all lab test results.

Return a JSON object with this exact structure:
{
    "lab_name": "Name of the laboratory if visible",
    "report_date": "Date of the report in YYYY-MM-DD format if visible",
    "patient_name": "Patient name if visible (or null)",
    "tests": [
        {
            "test_name": "Full name of the test",
            "value": numeric_value_only,
            "unit": "unit of measurement",
            "reference_range": "reference range as shown (e.g., '70-100')",
            "flag": "H for high, L for low, or null if normal"
        }
    ]
}

Rules:
1. Extract ALL tests visible in the report
2. For "value", provide ONLY the numeric value (no units)
3. Convert any values written as text to numbers
4. If a value has multiple components (like blood pressure), extract each separately
5. Include the reference range exactly as shown
6. Set flag to "H" if marked high, "L" if marked low, null otherwise
7. If you cannot determine a field, set it to null
8. Return ONLY valid JSON, no other text`

// rawExtraction mirrors the JSON shape the extraction prompt asks for.
// Values come back with whatever types the model chose, so the numeric
// field is decoded leniently.
type rawExtraction struct {
	LabName     string `json:"lab_name"`
	ReportDate  string `json:"report_date"`
	PatientName string `json:"patient_name"`
	Tests       []struct {
		TestName       string `json:"test_name"`
		Value          any    `json:"value"`
		Unit           string `json:"unit"`
		ReferenceRange string `json:"reference_range"`
		Flag           string `json:"flag"`
	} `json:"tests"`
}

// ExtractLabValues reads lab test results out of an uploaded report image or
// PDF. Tests whose value cannot be parsed as a number are skipped.
func (c *Client) ExtractLabValues(ctx context.Context, fileContent []byte, mimeType string) (*OCRResult, error) {
	encoded := base64.StdEncoding.EncodeToString(fileContent)

	parts := []part{
		{Text: extractionPrompt},
		{InlineData: &inlineData{MimeType: mimeType, Data: encoded}},
	}

	text, err := c.generate(ctx, parts, &generationConfig{Temperature: 0.1, MaxOutputTokens: 4096})
	if err != nil {
		return nil, err
	}

	var raw rawExtraction
	if err := extractJSONObject(text, &raw); err != nil {
		return nil, fmt.Errorf("extract lab values: %w", err)
	}

	values := make([]ExtractedLabValue, 0, len(raw.Tests))
	for _, t := range raw.Tests {
		v, ok := numericValue(t.Value)
		if !ok {
			continue
		}
		name := t.TestName
		if name == "" {
			name = "Unknown"
		}
		values = append(values, ExtractedLabValue{
			TestName:          name,
			Value:             v,
			Unit:              t.Unit,
			ReferenceRange:    t.ReferenceRange,
			Flag:              t.Flag,
			Confidence:        0.9,
			MappedBiomarkerID: MapToBiomarkerID(t.TestName),
		})
	}

	return &OCRResult{
		LabName:         raw.LabName,
		ReportDate:      raw.ReportDate,
		PatientName:     raw.PatientName,
		ExtractedValues: values,
		RawText:         text,
	}, nil
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
