package sense

// Process is the point process being sensed. Implementations draw the events
// that would be observed while watching a region for a sensing duration.
type Process interface {
	// Sample returns the events observed in region over duration dt.
	// On success the returned Points is non-nil, possibly zero-length
	// (sensing occurred, no events). A region the process cannot sample —
	// outside its domain, unsupported geometry — yields nil Points and an
	// error wrapping ErrInvalidAction.
	//
	// Sampling is random: only the distribution is reproducible, and only
	// under a deterministic seed.
	Sample(region Region, dt float64) (Points, error)
}

// RateEstimator models the unknown intensity function from accumulated
// observations. The policy owns the observation log and feeds the estimator
// through LoadData (bulk, at initialization) and AddDataPoint (incremental,
// after each sense); the estimator never sees the log itself.
type RateEstimator interface {
	// LoadData bulk-loads an initial set of observation records.
	LoadData(records []Observation) error
	// AddDataPoint ingests a single observation record. Implementations
	// must validate before mutating: a returned error means the estimator
	// state is unchanged.
	AddDataPoint(obs Observation) error
	// Fit refreshes the rate model from everything ingested so far.
	// Fitting with no usable data is not an error — the estimator simply
	// stays unfitted. Numerical failure returns an error wrapping
	// ErrEstimation.
	Fit() error
	// MeanRate evaluates the fitted rate on region's n^d-point
	// discretization grid, one value per grid point in grid order.
	// Returns an error wrapping ErrNotFitted before the first
	// successful fit.
	MeanRate(region Region, n int) ([]float64, error)
	// MeanValue integrates the fitted rate over the region (expected
	// events per unit time while sensing it). Returns an error wrapping
	// ErrNotFitted before the first successful fit.
	MeanValue(region Region) (float64, error)
	// Fitted reports whether a fitted rate is currently available.
	Fitted() bool
}
