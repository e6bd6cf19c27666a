package sense

import "fmt"

// Metrics aggregates statistics about a sensing run for final reporting.
// The zero value is ready to use; fold rounds in with Observe.
type Metrics struct {
	Rounds        int     // Number of completed sensing rounds
	RegionsSensed int     // Total observations recorded across rounds
	TotalCost     float64 // Accumulated sensing cost
	TotalEvents   int     // Events observed across all rounds
}

// Observe folds one completed round into the totals. Partial rounds from
// failed steps can be folded in too; their committed observations count.
func (m *Metrics) Observe(r Round) {
	m.Rounds++
	m.RegionsSensed += len(r.Regions)
	m.TotalCost += r.Cost
	m.TotalEvents += r.Count
}

// Print displays aggregated metrics at the end of the run.
// Includes the events-per-unit-cost ratio the policies optimize for.
func (m *Metrics) Print() {
	fmt.Println("=== Sensing Metrics ===")
	fmt.Printf("Rounds completed     : %d\n", m.Rounds)
	fmt.Printf("Regions sensed       : %d\n", m.RegionsSensed)
	fmt.Printf("Total sensing cost   : %.4f\n", m.TotalCost)
	fmt.Printf("Events observed      : %d\n", m.TotalEvents)
	if m.TotalCost > 0 {
		fmt.Printf("Events per unit cost : %.4f\n", float64(m.TotalEvents)/m.TotalCost)
	}
}
