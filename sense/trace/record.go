// Package trace provides per-round decision-trace recording for sensing
// experiments. This package has no dependencies on sense/ — it stores pure
// data types plus their aggregation.
package trace

// RoundRecord captures a single sensing round's decisions and outcome.
type RoundRecord struct {
	Round   int      `json:"round"`
	Cost    float64  `json:"cost"`
	Events  int      `json:"events"`
	Regions []string `json:"regions"` // descriptions, in selection order
	Indices []int    `json:"indices"` // candidate-list positions, aligned with Regions
}
