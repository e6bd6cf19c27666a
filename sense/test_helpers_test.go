package sense

import "fmt"

// stubRegion is a minimal Region for engine and policy tests: fixed volume,
// fixed description, fixed discretization grid.
type stubRegion struct {
	vol  float64
	desc string
	grid Points
}

func (r *stubRegion) Volume() float64       { return r.vol }
func (r *stubRegion) Description() string   { return r.desc }
func (r *stubRegion) Discretize(int) Points { return r.grid }

// stubRegions builds n unit-volume regions named r0..r(n-1).
func stubRegions(n int) []Region {
	out := make([]Region, n)
	for i := range out {
		out[i] = &stubRegion{vol: 1, desc: fmt.Sprintf("r%d", i)}
	}
	return out
}

// stubProcess returns canned points (or errors) per region description.
// Regions with no entry sense successfully with zero events.
type stubProcess struct {
	points  map[string]Points
	errs    map[string]error
	sampled []string // descriptions, in call order
}

func (p *stubProcess) Sample(r Region, dt float64) (Points, error) {
	p.sampled = append(p.sampled, r.Description())
	if err := p.errs[r.Description()]; err != nil {
		return nil, err
	}
	if pts, ok := p.points[r.Description()]; ok {
		return pts, nil
	}
	return Points{}, nil
}

// stubEstimator is a scriptable RateEstimator. Mean values are looked up by
// region description; unlisted regions value 0.
type stubEstimator struct {
	fitted     bool
	meanValues map[string]float64
	meanRates  []float64

	loadErr error
	addErr  error
	fitErr  error

	loaded         []Observation
	added          []Observation
	fitCalls       int
	meanValueCalls int
}

func (e *stubEstimator) LoadData(records []Observation) error {
	if e.loadErr != nil {
		return e.loadErr
	}
	e.loaded = append(e.loaded, records...)
	return nil
}

func (e *stubEstimator) AddDataPoint(obs Observation) error {
	if e.addErr != nil {
		return e.addErr
	}
	e.added = append(e.added, obs)
	return nil
}

func (e *stubEstimator) Fit() error {
	e.fitCalls++
	return e.fitErr
}

func (e *stubEstimator) MeanRate(r Region, n int) ([]float64, error) {
	if !e.fitted {
		return nil, fmt.Errorf("mean rate of %s: %w", r.Description(), ErrNotFitted)
	}
	return e.meanRates, nil
}

func (e *stubEstimator) MeanValue(r Region) (float64, error) {
	if !e.fitted {
		return 0, fmt.Errorf("mean value of %s: %w", r.Description(), ErrNotFitted)
	}
	e.meanValueCalls++
	return e.meanValues[r.Description()], nil
}

func (e *stubEstimator) Fitted() bool { return e.fitted }

// stubPolicy returns a fixed score vector regardless of the candidates, so
// tests control the selection order exactly.
type stubPolicy struct {
	scores []float64
	err    error
}

func (p *stubPolicy) Scores(candidates []Region) ([]float64, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.scores, nil
}

func (p *stubPolicy) Name() string { return "stub" }
