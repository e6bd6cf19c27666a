package sense

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Round summarizes one completed sensing round.
type Round struct {
	// Cost is the summed sensing cost of the regions sensed this round.
	Cost float64
	// Count is the number of events observed this round.
	Count int
	// Points holds the merged event coordinates of the round, in sensing
	// order. nil when no sensed region produced an observation.
	Points Points
	// Regions are the sensed regions in selection order (descending score).
	Regions []Region
	// Indices are the positions of Regions in the candidate list passed to
	// Step, aligned with Regions.
	Indices []int
}

// Engine drives the sequential sensing loop: refit the estimator, score the
// candidate regions through the acquisition policy, sense the top-k scorers
// for the configured duration, and fold the resulting observations back into
// the estimator and the observation log. One Engine owns one experiment; not
// safe for concurrent use.
type Engine struct {
	process   Process
	estimator RateEstimator
	policy    AcquisitionPolicy
	cost      CostFunc
	dt        float64 // sensing duration per chosen region
	topk      int     // regions sensed per round
	dataset   *Dataset

	rounds int // completed Step calls, for log correlation
}

// NewEngine creates an Engine over the given collaborators and bulk-loads
// the initial observations into the estimator. Initial data is optional
// (nil starts cold); collaborators are not, and a nil one panics, as do a
// non-positive duration or topk.
func NewEngine(process Process, est RateEstimator, policy AcquisitionPolicy, cost CostFunc, dt float64, topk int, initial []Observation) (*Engine, error) {
	if process == nil {
		panic("NewEngine: nil process")
	}
	if est == nil {
		panic("NewEngine: nil estimator")
	}
	if policy == nil {
		panic("NewEngine: nil policy")
	}
	if cost == nil {
		panic("NewEngine: nil cost function")
	}
	if dt <= 0 {
		panic(fmt.Sprintf("NewEngine: duration must be positive, got %v", dt))
	}
	if topk < 1 {
		panic(fmt.Sprintf("NewEngine: topk must be >= 1, got %d", topk))
	}
	e := &Engine{
		process:   process,
		estimator: est,
		policy:    policy,
		cost:      cost,
		dt:        dt,
		topk:      topk,
		dataset:   NewDataset(initial),
	}
	if len(initial) > 0 {
		if err := est.LoadData(initial); err != nil {
			return nil, fmt.Errorf("loading initial data: %w", err)
		}
	}
	return e, nil
}

// Sense observes region for the configured duration and returns the
// resulting record. The record is not retained: Step records what it senses,
// and callers sensing manually pass the record to Record themselves.
func (e *Engine) Sense(region Region) (Observation, error) {
	pts, err := e.process.Sample(region, e.dt)
	if err != nil {
		return Observation{}, fmt.Errorf("sensing %s: %w", region.Description(), err)
	}
	return Observation{Region: region, Points: pts, Duration: e.dt}, nil
}

// Record ingests one observation. The estimator sees it first; only after a
// successful ingest does the record reach the observation log, so a rejected
// record changes neither.
func (e *Engine) Record(obs Observation) error {
	if err := e.estimator.AddDataPoint(obs); err != nil {
		return fmt.Errorf("recording %s: %w", obs.Region.Description(), err)
	}
	e.dataset.Append(obs)
	return nil
}

// FitEstimator refits the estimator on everything recorded so far.
func (e *Engine) FitEstimator() error {
	return e.estimator.Fit()
}

// CountEvents returns the total number of events in the observation log.
func (e *Engine) CountEvents() int {
	return e.dataset.CountEvents()
}

// Step runs one sensing round: refit the estimator, score all candidates,
// sense the topk highest scorers (ties to the lower index), and record each
// observation as it arrives.
//
// On mid-round failure the error is returned together with the partial
// Round: observations recorded before the failure stay committed, matching
// what the estimator has already seen. Callers that log or trace rounds
// should do so even on error.
//
// Panics on an empty candidate list — that is a programming error, not a
// data condition.
func (e *Engine) Step(candidates []Region) (Round, error) {
	if len(candidates) == 0 {
		panic("Engine.Step: empty candidates")
	}

	e.rounds++

	if err := e.estimator.Fit(); err != nil {
		return Round{}, fmt.Errorf("round %d: %w", e.rounds, err)
	}

	scores, err := e.policy.Scores(candidates)
	if err != nil {
		return Round{}, fmt.Errorf("round %d: %w", e.rounds, err)
	}
	if len(scores) != len(candidates) {
		panic(fmt.Sprintf("Engine.Step: policy %s returned %d scores for %d candidates",
			e.policy.Name(), len(scores), len(candidates)))
	}
	logrus.Debugf("[round %03d] scores: %v", e.rounds, scores)

	var round Round
	for _, idx := range topKIndices(scores, e.topk) {
		region := candidates[idx]
		obs, err := e.Sense(region)
		if err != nil {
			return round, fmt.Errorf("round %d: %w", e.rounds, err)
		}
		if err := e.Record(obs); err != nil {
			return round, fmt.Errorf("round %d: %w", e.rounds, err)
		}
		round.Cost += e.cost(region)
		round.Points = mergePoints(round.Points, obs.Points)
		round.Regions = append(round.Regions, region)
		round.Indices = append(round.Indices, idx)
		logrus.Debugf("[round %03d] sensed %s: %d events", e.rounds, region.Description(), obs.EventCount())
	}
	round.Count = len(round.Points)

	logrus.Debugf("[round %03d] cost=%.4f events=%d total=%d", e.rounds, round.Cost, round.Count, e.CountEvents())
	return round, nil
}

// BestPointSoFar returns the grid point with the highest fitted rate on
// domain's n-per-axis discretization grid: the current best guess at where
// the process is most intense. Ties resolve to the first grid point in grid
// order. Returns an error wrapping ErrNotFitted before the first successful
// fit.
func (e *Engine) BestPointSoFar(domain Region, n int) ([]float64, error) {
	if n < 1 {
		panic(fmt.Sprintf("Engine.BestPointSoFar: n must be >= 1, got %d", n))
	}
	grid := domain.Discretize(n)
	rates, err := e.estimator.MeanRate(domain, n)
	if err != nil {
		return nil, fmt.Errorf("best point: %w", err)
	}
	if len(rates) != len(grid) {
		panic(fmt.Sprintf("Engine.BestPointSoFar: %d rates for %d grid points", len(rates), len(grid)))
	}
	return grid[floats.MaxIdx(rates)], nil
}

// Dataset returns the engine's observation log.
func (e *Engine) Dataset() *Dataset {
	return e.dataset
}

// Estimator returns the engine's rate estimator.
func (e *Engine) Estimator() RateEstimator {
	return e.estimator
}
