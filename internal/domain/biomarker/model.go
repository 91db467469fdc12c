package biomarker

// Definition is one entry of the biomarker reference catalog. IDs are stable
// string keys ("glucose", "hba1c") shared with observations and goals.
type Definition struct {
	ID              string   `db:"id" json:"id"`
	Name            string   `db:"name" json:"name"`
	Category        string   `db:"category" json:"category"`
	Unit            string   `db:"unit" json:"unit"`
	NormalRangeLow  *float64 `db:"normal_range_low" json:"normal_range_low,omitempty"`
	NormalRangeHigh *float64 `db:"normal_range_high" json:"normal_range_high,omitempty"`
	Description     *string  `db:"description" json:"description,omitempty"`
}
