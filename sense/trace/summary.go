package trace

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// TraceSummary aggregates statistics from an ExperimentTrace.
type TraceSummary struct {
	TotalRounds     int
	TotalCost       float64
	TotalEvents     int
	MeanRoundCost   float64
	MeanRoundEvents float64
	EventsPerCost   float64        // events per unit cost, the quantity greedy policies chase
	UniqueRegions   int            // distinct region descriptions sensed
	RegionVisits    map[string]int // region description → times sensed
}

// Summarize computes aggregate statistics from an ExperimentTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(et *ExperimentTrace) *TraceSummary {
	summary := &TraceSummary{
		RegionVisits: make(map[string]int),
	}
	if et == nil || len(et.Rounds) == 0 {
		return summary
	}

	summary.TotalRounds = len(et.Rounds)
	costs := make([]float64, len(et.Rounds))
	events := make([]float64, len(et.Rounds))
	for i, r := range et.Rounds {
		costs[i] = r.Cost
		events[i] = float64(r.Events)
		summary.TotalCost += r.Cost
		summary.TotalEvents += r.Events
		for _, desc := range r.Regions {
			summary.RegionVisits[desc]++
		}
	}
	summary.MeanRoundCost = stat.Mean(costs, nil)
	summary.MeanRoundEvents = stat.Mean(events, nil)
	if summary.TotalCost > 0 {
		summary.EventsPerCost = float64(summary.TotalEvents) / summary.TotalCost
	}
	summary.UniqueRegions = len(summary.RegionVisits)

	return summary
}

// Print displays the summary at the end of a run.
func (s *TraceSummary) Print() {
	fmt.Println("=== Trace Summary ===")
	fmt.Printf("Rounds               : %d\n", s.TotalRounds)
	fmt.Printf("Total cost           : %.4f\n", s.TotalCost)
	fmt.Printf("Total events         : %d\n", s.TotalEvents)
	fmt.Printf("Mean cost per round  : %.4f\n", s.MeanRoundCost)
	fmt.Printf("Mean events per round: %.4f\n", s.MeanRoundEvents)
	fmt.Printf("Events per unit cost : %.4f\n", s.EventsPerCost)
	fmt.Printf("Unique regions sensed: %d\n", s.UniqueRegions)
}
