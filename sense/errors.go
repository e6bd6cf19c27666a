package sense

import "errors"

// Sentinel errors for the failure modes of a sensing round. Collaborators
// return errors wrapping these; callers discriminate with errors.Is.
var (
	// ErrInvalidAction reports a region rejected by the process or estimator
	// as outside the valid acting domain. The round aborts with no dataset
	// mutation for that region; regions already sensed in the same round
	// stay committed.
	ErrInvalidAction = errors.New("region outside acting domain")

	// ErrEstimation reports a rate-fit failure (ill-conditioned model,
	// numerical divergence). Fatal to the round. Never retried here: blind
	// retry on a diverging fit can loop forever, so retrying is a caller
	// decision.
	ErrEstimation = errors.New("rate estimation failed")

	// ErrNotFitted reports a best-estimate query before any fit has
	// produced a rate.
	ErrNotFitted = errors.New("estimator has no fitted rate")
)
