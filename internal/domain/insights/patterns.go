package insights

// Pattern is a cross-marker finding detected from a user's latest results.
type Pattern struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Markers     []string `json:"markers"`
}

// ChangePolicy bounds which value changes a surface reports.
type ChangePolicy struct {
	// Threshold is the minimum absolute percent change to report.
	Threshold float64
	// MaxResults caps the result set. Zero means unlimited.
	MaxResults int
}

var (
	// DashboardChanges drives the dashboard and visit prep summary.
	DashboardChanges = ChangePolicy{Threshold: 10, MaxResults: 10}
	// VisitQuestionChanges drives AI question generation and PDF export.
	VisitQuestionChanges = ChangePolicy{Threshold: 15}
)

// valueOr reads a marker's latest value, substituting a default that keeps
// the rule from firing when the marker was never measured.
func valueOr(latest map[string]float64, id string, absent float64) float64 {
	if v, ok := latest[id]; ok {
		return v
	}
	return absent
}

// DetectPatterns runs the rule set over the latest value per biomarker,
// keyed by biomarker ID. Rules only fire on measured values; a marker the
// user never tested cannot contribute to a finding.
func DetectPatterns(latest map[string]float64) []Pattern {
	var patterns []Pattern

	indicators := 0
	if valueOr(latest, "glucose", 0) > 100 {
		indicators++
	}
	if valueOr(latest, "triglycerides", 0) > 150 {
		indicators++
	}
	if valueOr(latest, "hdl", 100) < 40 {
		indicators++
	}
	if valueOr(latest, "hba1c", 0) > 5.6 {
		indicators++
	}
	if indicators >= 3 {
		patterns = append(patterns, Pattern{
			Type:        "warning",
			Name:        "Metabolic Syndrome Risk",
			Description: "Multiple markers suggest metabolic syndrome risk. Discuss with your doctor.",
			Markers:     []string{"glucose", "triglycerides", "hdl", "hba1c"},
		})
	}

	if valueOr(latest, "hemoglobin", 100) < 12 && valueOr(latest, "ferritin", 100) < 30 {
		patterns = append(patterns, Pattern{
			Type:        "attention",
			Name:        "Possible Iron Deficiency",
			Description: "Low hemoglobin with low ferritin may indicate iron deficiency.",
			Markers:     []string{"hemoglobin", "ferritin"},
		})
	}

	if valueOr(latest, "creatinine", 0) > 1.3 && valueOr(latest, "egfr", 100) < 60 {
		patterns = append(patterns, Pattern{
			Type:        "warning",
			Name:        "Reduced Kidney Function",
			Description: "Elevated creatinine with low eGFR suggests reduced kidney function.",
			Markers:     []string{"creatinine", "egfr"},
		})
	}

	return patterns
}
