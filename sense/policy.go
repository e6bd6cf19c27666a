package sense

import (
	"fmt"
	"math/rand"
)

// AcquisitionPolicy ranks candidate regions for the next sensing round.
// Implementations receive the full candidate list and return one score per
// candidate, in candidate order; the engine picks the top-k scorers.
//
// Scores advances policy-internal state (round counters, RNG draws), so the
// engine calls it exactly once per round. Higher is better. Scores are
// unit-free and only comparable within a single call.
type AcquisitionPolicy interface {
	Scores(candidates []Region) ([]float64, error)
	Name() string
}

// RandomSearch scores every candidate with an independent standard-normal
// draw, so each round senses a uniformly random subset of the candidates.
// Baseline for judging whether an adaptive policy earns its complexity.
type RandomSearch struct {
	rng *rand.Rand
}

// NewRandomSearch creates a RandomSearch drawing from rng.
func NewRandomSearch(rng *rand.Rand) *RandomSearch {
	if rng == nil {
		panic("NewRandomSearch: nil rng")
	}
	return &RandomSearch{rng: rng}
}

// Scores implements AcquisitionPolicy for RandomSearch.
func (rs *RandomSearch) Scores(candidates []Region) ([]float64, error) {
	if len(candidates) == 0 {
		panic("RandomSearch.Scores: empty candidates")
	}
	scores := make([]float64, len(candidates))
	for i := range scores {
		scores[i] = rs.rng.NormFloat64()
	}
	return scores, nil
}

// Name implements AcquisitionPolicy for RandomSearch.
func (rs *RandomSearch) Name() string { return "random" }

// validAcquisitionPolicies lists the names accepted by NewAcquisitionPolicy.
var validAcquisitionPolicies = []string{"", "epsilon-greedy", "random"}

// IsValidAcquisitionPolicy reports whether name names a known policy.
// Empty string is valid (defaults to epsilon-greedy).
func IsValidAcquisitionPolicy(name string) bool {
	for _, valid := range validAcquisitionPolicies {
		if name == valid {
			return true
		}
	}
	return false
}

// NewAcquisitionPolicy creates an acquisition policy by name.
// Empty string defaults to epsilon-greedy. The estimator and cost function
// are used by estimator-backed policies and ignored by "random".
// Panics on unrecognized names.
func NewAcquisitionPolicy(name string, est RateEstimator, cost CostFunc, sched Schedule, rng *rand.Rand) AcquisitionPolicy {
	if !IsValidAcquisitionPolicy(name) {
		panic(fmt.Sprintf("unknown acquisition policy %q", name))
	}
	switch name {
	case "", "epsilon-greedy":
		return NewEpsilonGreedy(est, cost, sched, rng)
	case "random":
		return NewRandomSearch(rng)
	default:
		panic(fmt.Sprintf("unhandled acquisition policy %q", name))
	}
}
