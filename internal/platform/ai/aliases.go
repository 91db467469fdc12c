package ai

import (
	"sort"
	"strings"
)

// biomarkerAliases maps each catalog biomarker id to the names labs commonly
// print for it. Matching is substring-based in both directions so that
// "Serum Creatinine" and "creat" both land on creatinine.
var biomarkerAliases = map[string][]string{
	// Metabolic
	"glucose": {"fasting glucose", "blood glucose", "fbs", "fasting blood sugar", "plasma glucose", "glucose fasting"},
	"hba1c":   {"hba1c", "a1c", "glycated hemoglobin", "hemoglobin a1c", "glycosylated hemoglobin", "hb a1c"},
	"insulin": {"fasting insulin", "serum insulin", "insulin fasting"},

	// Cardiovascular
	"totalCholesterol": {"total cholesterol", "cholesterol total", "cholesterol", "tc", "serum cholesterol"},
	"ldl":              {"ldl", "ldl-c", "ldl cholesterol", "low density lipoprotein", "ldl-cholesterol"},
	"hdl":              {"hdl", "hdl-c", "hdl cholesterol", "high density lipoprotein", "hdl-cholesterol"},
	"triglycerides":    {"triglycerides", "tg", "triglyceride", "trigs"},
	"homocysteine":     {"homocysteine", "hcy", "homocystine"},

	// Kidney
	"creatinine": {"creatinine", "creat", "serum creatinine", "s.creatinine", "s creatinine"},
	"egfr":       {"egfr", "gfr", "estimated gfr", "glomerular filtration rate"},
	"bun":        {"bun", "blood urea nitrogen", "urea nitrogen", "urea"},
	"uricAcid":   {"uric acid", "urate", "serum uric acid"},

	// Liver
	"alt":       {"alt", "sgpt", "alanine aminotransferase", "alanine transaminase"},
	"ast":       {"ast", "sgot", "aspartate aminotransferase", "aspartate transaminase"},
	"ggt":       {"ggt", "gamma gt", "gamma-gt", "gamma glutamyl transferase"},
	"bilirubin": {"bilirubin", "total bilirubin", "tbili", "t.bilirubin", "serum bilirubin"},
	"albumin":   {"albumin", "alb", "serum albumin"},
	"alp":       {"alp", "alkaline phosphatase", "alk phos", "alkp"},

	// Thyroid
	"tsh":    {"tsh", "thyroid stimulating hormone", "thyrotropin"},
	"freeT4": {"free t4", "ft4", "t4 free", "free thyroxine"},
	"freeT3": {"free t3", "ft3", "t3 free", "free triiodothyronine"},

	// Inflammation
	"crp": {"crp", "c-reactive protein", "hs-crp", "hscrp", "high sensitivity crp"},
	"esr": {"esr", "sed rate", "sedimentation rate", "erythrocyte sedimentation rate"},

	// Nutrients
	"vitaminD":   {"vitamin d", "vit d", "25-oh vitamin d", "25-hydroxy vitamin d", "cholecalciferol", "d3", "vitamin d3", "25 oh d"},
	"vitaminB12": {"vitamin b12", "b12", "cobalamin", "cyanocobalamin"},
	"folate":     {"folate", "folic acid", "serum folate"},
	"iron":       {"iron", "serum iron", "fe", "s.iron"},
	"ferritin":   {"ferritin", "serum ferritin"},
	"calcium":    {"calcium", "ca", "serum calcium", "s.calcium"},
	"magnesium":  {"magnesium", "mg", "serum magnesium"},
	"zinc":       {"zinc", "zn", "serum zinc"},

	// Blood count
	"hemoglobin": {"hemoglobin", "hgb", "hb", "haemoglobin"},
	"hematocrit": {"hematocrit", "hct", "pcv", "packed cell volume"},
	"rbc":        {"rbc", "red blood cells", "erythrocytes", "red cell count"},
	"wbc":        {"wbc", "white blood cells", "leukocytes", "white cell count", "total wbc"},
	"platelets":  {"platelets", "plt", "platelet count", "thrombocytes"},
	"mcv":        {"mcv", "mean corpuscular volume"},

	// Hormones
	"testosterone": {"testosterone", "total testosterone", "serum testosterone"},
	"estradiol":    {"estradiol", "e2", "oestradiol"},
	"cortisol":     {"cortisol", "serum cortisol", "am cortisol", "morning cortisol"},
	"dheas":        {"dhea-s", "dheas", "dehydroepiandrosterone sulfate"},
}

// MapToBiomarkerID maps a free-text lab test name to a catalog biomarker id,
// or "" when no alias matches. Exact alias matches win over substring
// matches, and the substring pass runs in sorted id order so results are
// deterministic.
func MapToBiomarkerID(testName string) string {
	name := strings.ToLower(strings.TrimSpace(testName))
	if name == "" {
		return ""
	}

	for id, aliases := range biomarkerAliases {
		for _, alias := range aliases {
			if name == alias {
				return id
			}
		}
	}

	ids := make([]string, 0, len(biomarkerAliases))
	for id := range biomarkerAliases {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for _, alias := range biomarkerAliases[id] {
			if strings.Contains(name, alias) || strings.Contains(alias, name) {
				return id
			}
		}
	}
	return ""
}
