package sense

import (
	"fmt"
	"math/rand"
)

// EpsilonGreedy scores candidates with an exploit/explore strategy driven by
// an epsilon schedule.
//
// Every call advances the round counter t and draws one uniform p in [0, 1):
//
//   - EXPLOIT (p above the schedule threshold, estimator fitted): each
//     candidate scores its estimated event yield per unit cost,
//     MeanValue(region) / cost(region). Cheap regions with high predicted
//     rates win.
//   - EXPLORE (otherwise): each candidate scores an independent
//     standard-normal draw, giving a uniformly random ranking.
//
// An unfitted estimator forces explore mode no matter what p was drawn, so
// the first rounds of a cold-started run are well-defined instead of failing
// on a missing rate.
//
// The uniform draw happens before the mode check on every call; explore mode
// then consumes one normal draw per candidate. Runs with the same seed,
// schedule, and candidate sequence replay identically.
type EpsilonGreedy struct {
	estimator RateEstimator
	cost      CostFunc
	schedule  Schedule
	rng       *rand.Rand

	t int // rounds scored so far
}

// NewEpsilonGreedy creates an EpsilonGreedy policy. All arguments are
// required; nil panics.
func NewEpsilonGreedy(est RateEstimator, cost CostFunc, sched Schedule, rng *rand.Rand) *EpsilonGreedy {
	if est == nil {
		panic("NewEpsilonGreedy: nil estimator")
	}
	if cost == nil {
		panic("NewEpsilonGreedy: nil cost function")
	}
	if sched == nil {
		panic("NewEpsilonGreedy: nil schedule")
	}
	if rng == nil {
		panic("NewEpsilonGreedy: nil rng")
	}
	return &EpsilonGreedy{estimator: est, cost: cost, schedule: sched, rng: rng}
}

// Scores implements AcquisitionPolicy for EpsilonGreedy.
func (eg *EpsilonGreedy) Scores(candidates []Region) ([]float64, error) {
	if len(candidates) == 0 {
		panic("EpsilonGreedy.Scores: empty candidates")
	}

	eg.t++
	p := eg.rng.Float64()
	eps := eg.schedule(eg.t)

	if p > eps && eg.estimator.Fitted() {
		return eg.exploit(candidates)
	}
	return eg.explore(candidates), nil
}

// exploit scores each candidate by estimated events per unit cost.
func (eg *EpsilonGreedy) exploit(candidates []Region) ([]float64, error) {
	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		mv, err := eg.estimator.MeanValue(c)
		if err != nil {
			return nil, fmt.Errorf("scoring %s: %w", c.Description(), err)
		}
		w := eg.cost(c)
		if w <= 0 {
			panic(fmt.Sprintf("EpsilonGreedy.Scores: non-positive cost %v for %s", w, c.Description()))
		}
		scores[i] = mv / w
	}
	return scores, nil
}

// explore scores each candidate with an independent standard-normal draw.
func (eg *EpsilonGreedy) explore(candidates []Region) []float64 {
	scores := make([]float64, len(candidates))
	for i := range scores {
		scores[i] = eg.rng.NormFloat64()
	}
	return scores
}

// Name implements AcquisitionPolicy for EpsilonGreedy.
func (eg *EpsilonGreedy) Name() string { return "epsilon-greedy" }
