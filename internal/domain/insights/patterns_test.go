package insights

import "testing"

func names(patterns []Pattern) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = p.Name
	}
	return out
}

func TestDetectPatterns_Empty(t *testing.T) {
	if got := DetectPatterns(map[string]float64{}); len(got) != 0 {
		t.Errorf("expected no patterns for no results, got %v", names(got))
	}
}

func TestDetectPatterns_HealthyValues(t *testing.T) {
	latest := map[string]float64{
		"glucose":       90,
		"triglycerides": 120,
		"hdl":           55,
		"hba1c":         5.2,
		"hemoglobin":    14,
		"ferritin":      80,
		"creatinine":    0.9,
		"egfr":          95,
	}
	if got := DetectPatterns(latest); len(got) != 0 {
		t.Errorf("expected no patterns for healthy values, got %v", names(got))
	}
}

func TestDetectPatterns_MetabolicRequiresThreeIndicators(t *testing.T) {
	two := map[string]float64{"glucose": 110, "triglycerides": 200}
	if got := DetectPatterns(two); len(got) != 0 {
		t.Errorf("two indicators should not fire, got %v", names(got))
	}

	three := map[string]float64{"glucose": 110, "triglycerides": 200, "hdl": 35}
	got := DetectPatterns(three)
	if len(got) != 1 || got[0].Name != "Metabolic Syndrome Risk" {
		t.Fatalf("three indicators should fire metabolic, got %v", names(got))
	}
	if got[0].Type != "warning" {
		t.Errorf("type = %s, want warning", got[0].Type)
	}
	if len(got[0].Markers) != 4 {
		t.Errorf("markers = %v, want all four metabolic markers", got[0].Markers)
	}
}

func TestDetectPatterns_MetabolicIgnoresUnmeasuredMarkers(t *testing.T) {
	// Missing HDL must not count as low, and missing glucose must not
	// count as elevated.
	latest := map[string]float64{"triglycerides": 200, "hba1c": 6.0}
	if got := DetectPatterns(latest); len(got) != 0 {
		t.Errorf("unmeasured markers should not contribute, got %v", names(got))
	}
}

func TestDetectPatterns_IronDeficiencyNeedsBoth(t *testing.T) {
	onlyHgb := map[string]float64{"hemoglobin": 10}
	if got := DetectPatterns(onlyHgb); len(got) != 0 {
		t.Errorf("low hemoglobin alone should not fire, got %v", names(got))
	}

	both := map[string]float64{"hemoglobin": 10, "ferritin": 15}
	got := DetectPatterns(both)
	if len(got) != 1 || got[0].Name != "Possible Iron Deficiency" {
		t.Fatalf("expected iron deficiency pattern, got %v", names(got))
	}
	if got[0].Type != "attention" {
		t.Errorf("type = %s, want attention", got[0].Type)
	}
}

func TestDetectPatterns_KidneyNeedsBoth(t *testing.T) {
	onlyCreatinine := map[string]float64{"creatinine": 1.8}
	if got := DetectPatterns(onlyCreatinine); len(got) != 0 {
		t.Errorf("elevated creatinine alone should not fire, got %v", names(got))
	}

	both := map[string]float64{"creatinine": 1.8, "egfr": 45}
	got := DetectPatterns(both)
	if len(got) != 1 || got[0].Name != "Reduced Kidney Function" {
		t.Fatalf("expected kidney pattern, got %v", names(got))
	}
}

func TestDetectPatterns_MultiplePatternsKeepRuleOrder(t *testing.T) {
	latest := map[string]float64{
		"glucose":       120,
		"triglycerides": 180,
		"hba1c":         6.1,
		"hemoglobin":    11,
		"ferritin":      20,
		"creatinine":    1.5,
		"egfr":          50,
	}
	got := DetectPatterns(latest)
	want := []string{"Metabolic Syndrome Risk", "Possible Iron Deficiency", "Reduced Kidney Function"}
	if len(got) != len(want) {
		t.Fatalf("patterns = %v, want %v", names(got), want)
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("pattern[%d] = %s, want %s", i, got[i].Name, name)
		}
	}
}

func TestDetectPatterns_BoundaryValuesDoNotFire(t *testing.T) {
	latest := map[string]float64{
		"glucose":       100,
		"triglycerides": 150,
		"hdl":           40,
		"hba1c":         5.6,
		"hemoglobin":    12,
		"ferritin":      30,
		"creatinine":    1.3,
		"egfr":          60,
	}
	if got := DetectPatterns(latest); len(got) != 0 {
		t.Errorf("boundary values should not fire, got %v", names(got))
	}
}

func TestChangePolicies(t *testing.T) {
	if DashboardChanges.Threshold != 10 || DashboardChanges.MaxResults != 10 {
		t.Errorf("dashboard policy = %+v", DashboardChanges)
	}
	if VisitQuestionChanges.Threshold != 15 || VisitQuestionChanges.MaxResults != 0 {
		t.Errorf("visit question policy = %+v", VisitQuestionChanges)
	}
}
