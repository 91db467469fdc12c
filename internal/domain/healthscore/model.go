package healthscore

// Score is a precomputed per-category health score (0 to 100) with the
// number of markers that contributed to it.
type Score struct {
	Category    string  `db:"category" json:"category"`
	Score       float64 `db:"score" json:"score"`
	MarkerCount int     `db:"marker_count" json:"marker_count"`
}
