package ai

import "testing"

func TestMapToBiomarkerID(t *testing.T) {
	cases := []struct {
		testName string
		want     string
	}{
		{"Fasting Glucose", "glucose"},
		{"GLUCOSE FASTING", "glucose"},
		{"Hemoglobin A1c", "hba1c"},
		{"HDL Cholesterol", "hdl"},
		{"Serum Creatinine", "creatinine"},
		{"eGFR", "egfr"},
		{"SGPT", "alt"},
		{"25-OH Vitamin D", "vitaminD"},
		{"Ferritin", "ferritin"},
		{"TSH", "tsh"},
		{"Platelet Count", "platelets"},
		{"Something Unrecognizable", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := MapToBiomarkerID(tc.testName); got != tc.want {
			t.Errorf("MapToBiomarkerID(%q) = %q, want %q", tc.testName, got, tc.want)
		}
	}
}

func TestMapToBiomarkerID_ExactBeatsSubstring(t *testing.T) {
	// "iron" carries the alias "fe", which is a substring of "ferritin".
	// The exact match on ferritin's own alias must win.
	if got := MapToBiomarkerID("ferritin"); got != "ferritin" {
		t.Errorf("MapToBiomarkerID(ferritin) = %q, want ferritin", got)
	}
}
