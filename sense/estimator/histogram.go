// Package estimator provides rate estimation over a hierarchically
// decomposed domain. The Histogram estimator models the intensity as
// piecewise-constant on the leaf cells of the hierarchy: each observation
// adds event counts and exposure (duration times overlap volume) to the
// leaves it touches, and fitting divides the two. It is the minimal
// consistent estimator the sensing loop needs; likelihood and kernel methods
// are out of scope.
package estimator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sensego/sensego/sense"
	"github.com/sensego/sensego/sense/region"
)

// Histogram estimates a piecewise-constant intensity on the leaf cells of a
// hierarchy. Implements sense.RateEstimator. Not safe for concurrent use —
// one policy instance owns it.
type Histogram struct {
	hier   *region.Hierarchy
	leaves []*region.Box

	counts   []int     // events attributed to each leaf
	exposure []float64 // Σ duration·vol(observed ∩ leaf) per leaf

	// rates is the fitted per-leaf intensity: events per unit volume per
	// unit time. nil until the first successful Fit; a failed refit keeps
	// the previous fit.
	rates []float64
}

// NewHistogram creates an unfitted Histogram over the hierarchy's leaves.
// Panics on a nil hierarchy.
func NewHistogram(hier *region.Hierarchy) *Histogram {
	if hier == nil {
		panic("NewHistogram: nil hierarchy")
	}
	leaves := hier.Leaves()
	return &Histogram{
		hier:     hier,
		leaves:   leaves,
		counts:   make([]int, len(leaves)),
		exposure: make([]float64, len(leaves)),
	}
}

// update is the prepared, not-yet-committed effect of one observation on the
// leaf bookkeeping. Splitting preparation from commit keeps ingestion
// atomic: a rejected observation changes nothing.
type update struct {
	counts   []int
	exposure []float64
}

// prepare validates obs against the hierarchy and computes its per-leaf
// counts and exposure. An absent observation (nil points) yields an empty
// update: no sensing occurred, so it is evidence of nothing. A present,
// zero-length observation accrues exposure with no events — the region was
// watched and stayed quiet.
func (h *Histogram) prepare(obs sense.Observation) (update, error) {
	if obs.Region == nil {
		return update{}, fmt.Errorf("observation has no region: %w", sense.ErrInvalidAction)
	}
	if obs.Duration <= 0 {
		panic(fmt.Sprintf("Histogram: observation of %s has non-positive duration %v", obs.Region.Description(), obs.Duration))
	}
	box, ok := obs.Region.(*region.Box)
	if !ok {
		return update{}, fmt.Errorf("observation of %s: unsupported region geometry: %w", obs.Region.Description(), sense.ErrInvalidAction)
	}
	if !h.hier.Root().ContainsBox(box) {
		return update{}, fmt.Errorf("observation of %s: outside domain %s: %w", box.Description(), h.hier.Root().Description(), sense.ErrInvalidAction)
	}

	upd := update{
		counts:   make([]int, len(h.leaves)),
		exposure: make([]float64, len(h.leaves)),
	}
	if obs.Points == nil {
		return upd, nil
	}

	for _, x := range obs.Points {
		if !box.Contains(x) {
			return update{}, fmt.Errorf("event %v outside observed region %s: %w", x, box.Description(), sense.ErrInvalidAction)
		}
		leaf, ok := h.hier.Leaf(x)
		if !ok {
			return update{}, fmt.Errorf("event %v outside domain %s: %w", x, h.hier.Root().Description(), sense.ErrInvalidAction)
		}
		upd.counts[leaf]++
	}
	for i, leaf := range h.leaves {
		if ov := region.Overlap(box, leaf); ov > 0 {
			upd.exposure[i] = obs.Duration * ov
		}
	}
	return upd, nil
}

func (h *Histogram) commit(upd update) {
	if upd.counts == nil {
		return
	}
	for i := range h.leaves {
		h.counts[i] += upd.counts[i]
		h.exposure[i] += upd.exposure[i]
	}
}

// LoadData implements sense.RateEstimator: bulk ingestion of an initial
// record set. All records are validated before any is committed, so a
// failed load leaves the estimator unchanged.
func (h *Histogram) LoadData(records []sense.Observation) error {
	upds := make([]update, 0, len(records))
	for i, obs := range records {
		upd, err := h.prepare(obs)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		upds = append(upds, upd)
	}
	for _, upd := range upds {
		h.commit(upd)
	}
	return nil
}

// AddDataPoint implements sense.RateEstimator: incremental ingestion of one
// record. On error the estimator state is unchanged.
func (h *Histogram) AddDataPoint(obs sense.Observation) error {
	upd, err := h.prepare(obs)
	if err != nil {
		return err
	}
	h.commit(upd)
	return nil
}

// Fit implements sense.RateEstimator. Each exposed leaf gets rate
// count/exposure; unexposed leaves are filled with the global rate, total
// events over total exposure. With no exposure at all there is nothing to
// divide by and the estimator simply stays unfitted — not an error, the
// cold-start rounds depend on it. A non-finite leaf rate aborts the refit
// (previous fit retained) with an error wrapping sense.ErrEstimation.
func (h *Histogram) Fit() error {
	total := floats.Sum(h.exposure)
	if total == 0 {
		return nil
	}
	events := 0
	for _, c := range h.counts {
		events += c
	}
	global := float64(events) / total

	rates := make([]float64, len(h.leaves))
	for i := range h.leaves {
		if h.exposure[i] > 0 {
			rates[i] = float64(h.counts[i]) / h.exposure[i]
		} else {
			rates[i] = global
		}
		if math.IsNaN(rates[i]) || math.IsInf(rates[i], 0) {
			return fmt.Errorf("rate on %s diverged (%d events over exposure %v): %w",
				h.leaves[i].Description(), h.counts[i], h.exposure[i], sense.ErrEstimation)
		}
	}
	h.rates = rates
	return nil
}

// Fitted implements sense.RateEstimator.
func (h *Histogram) Fitted() bool {
	return h.rates != nil
}

// MeanRate implements sense.RateEstimator: the fitted rate evaluated on r's
// discretization grid, one value per grid point in grid order.
func (h *Histogram) MeanRate(r sense.Region, n int) ([]float64, error) {
	if !h.Fitted() {
		return nil, fmt.Errorf("mean rate of %s: %w", r.Description(), sense.ErrNotFitted)
	}
	grid := r.Discretize(n)
	out := make([]float64, len(grid))
	for i, x := range grid {
		leaf, ok := h.hier.Leaf(x)
		if !ok {
			return nil, fmt.Errorf("grid point %v of %s outside domain: %w", x, r.Description(), sense.ErrInvalidAction)
		}
		out[i] = h.rates[leaf]
	}
	return out, nil
}

// MeanValue implements sense.RateEstimator: the fitted rate integrated over
// r, Σ rateᵢ·vol(r ∩ leafᵢ) — the expected events per unit time while
// sensing r.
func (h *Histogram) MeanValue(r sense.Region) (float64, error) {
	if !h.Fitted() {
		return 0, fmt.Errorf("mean value of %s: %w", r.Description(), sense.ErrNotFitted)
	}
	box, ok := r.(*region.Box)
	if !ok {
		return 0, fmt.Errorf("mean value of %s: unsupported region geometry: %w", r.Description(), sense.ErrInvalidAction)
	}
	if !h.hier.Root().ContainsBox(box) {
		return 0, fmt.Errorf("mean value of %s: outside domain %s: %w", box.Description(), h.hier.Root().Description(), sense.ErrInvalidAction)
	}
	total := 0.0
	for i, leaf := range h.leaves {
		if ov := region.Overlap(box, leaf); ov > 0 {
			total += h.rates[i] * ov
		}
	}
	return total, nil
}
