// Package poisson implements the inhomogeneous Poisson point process the
// sensing loop observes. Sampling uses thinning: candidate events are drawn
// from a homogeneous process at the declared rate bound and kept with
// probability rate(x)/bound, which yields the target intensity exactly.
package poisson

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sensego/sensego/sense"
	"github.com/sensego/sensego/sense/region"
)

// RateFunc is a ground-truth intensity function: expected events per unit
// volume per unit time at x. Must be non-negative everywhere.
type RateFunc func(x []float64) float64

// ConstantRate returns the homogeneous intensity rate(x) = level.
// Panics if level is negative.
func ConstantRate(level float64) RateFunc {
	if level < 0 || math.IsNaN(level) {
		panic(fmt.Sprintf("ConstantRate: level must be non-negative, got %v", level))
	}
	return func([]float64) float64 {
		return level
	}
}

// Bump is one Gaussian intensity peak.
type Bump struct {
	Center    []float64
	Amplitude float64
	Width     float64
}

// GaussianBumps returns the intensity baseline + Σ aᵢ·exp(-‖x-cᵢ‖²/2σᵢ²)
// together with an upper bound on it (baseline plus the summed amplitudes),
// suitable as the thinning bound of NewProcess. Panics on a negative
// baseline or amplitude, or a non-positive width.
func GaussianBumps(baseline float64, bumps []Bump) (RateFunc, float64) {
	if baseline < 0 || math.IsNaN(baseline) {
		panic(fmt.Sprintf("GaussianBumps: baseline must be non-negative, got %v", baseline))
	}
	bound := baseline
	for i, b := range bumps {
		if b.Amplitude < 0 || math.IsNaN(b.Amplitude) {
			panic(fmt.Sprintf("GaussianBumps: bump %d amplitude must be non-negative, got %v", i, b.Amplitude))
		}
		if b.Width <= 0 || math.IsNaN(b.Width) {
			panic(fmt.Sprintf("GaussianBumps: bump %d width must be positive, got %v", i, b.Width))
		}
		bound += b.Amplitude
	}
	rate := func(x []float64) float64 {
		v := baseline
		for _, b := range bumps {
			if len(b.Center) != len(x) {
				panic(fmt.Sprintf("GaussianBumps: bump center dimension %d does not match point dimension %d", len(b.Center), len(x)))
			}
			d2 := 0.0
			for j := range x {
				d := x[j] - b.Center[j]
				d2 += d * d
			}
			v += b.Amplitude * math.Exp(-d2/(2*b.Width*b.Width))
		}
		return v
	}
	return rate, bound
}

// Process is a Poisson point process over a box domain with a bounded
// intensity. Only the distribution of its samples is reproducible, and only
// under a deterministic rng. Not safe for concurrent use.
type Process struct {
	domain  *region.Box
	rate    RateFunc
	maxRate float64
	rng     *rand.Rand
}

// NewProcess creates a Process with intensity rate over domain. maxRate must
// dominate rate everywhere on the domain; the thinning step panics if it
// catches a violation. Panics on nil arguments or a non-positive maxRate.
func NewProcess(domain *region.Box, rate RateFunc, maxRate float64, rng *rand.Rand) *Process {
	if domain == nil {
		panic("NewProcess: nil domain")
	}
	if rate == nil {
		panic("NewProcess: nil rate function")
	}
	if maxRate <= 0 || math.IsNaN(maxRate) || math.IsInf(maxRate, 0) {
		panic(fmt.Sprintf("NewProcess: maxRate must be positive and finite, got %v", maxRate))
	}
	if rng == nil {
		panic("NewProcess: nil rng")
	}
	return &Process{domain: domain, rate: rate, maxRate: maxRate, rng: rng}
}

// Rate returns the ground-truth intensity at x.
func (p *Process) Rate(x []float64) float64 {
	return p.rate(x)
}

// MaxRate returns the declared intensity bound.
func (p *Process) MaxRate() float64 {
	return p.maxRate
}

// Domain returns the box the process lives on.
func (p *Process) Domain() *region.Box {
	return p.domain
}

// Sample implements sense.Process: the events observed while watching r for
// duration dt. The returned Points is non-nil on success, zero-length when
// no event occurred. A region that is not a box inside the process domain
// cannot be sampled and yields nil Points with an error wrapping
// sense.ErrInvalidAction. Panics on a non-positive dt.
func (p *Process) Sample(r sense.Region, dt float64) (sense.Points, error) {
	if dt <= 0 {
		panic(fmt.Sprintf("Process.Sample: duration must be positive, got %v", dt))
	}
	box, ok := r.(*region.Box)
	if !ok {
		return nil, fmt.Errorf("sampling %s: unsupported region geometry: %w", r.Description(), sense.ErrInvalidAction)
	}
	if !p.domain.ContainsBox(box) {
		return nil, fmt.Errorf("sampling %s: outside process domain %s: %w", box.Description(), p.domain.Description(), sense.ErrInvalidAction)
	}

	lo, hi := box.Bounds()
	n := poissonCount(p.rng, p.maxRate*box.Volume()*dt)
	pts := make(sense.Points, 0, n)
	for i := 0; i < n; i++ {
		x := make([]float64, len(lo))
		for j := range x {
			x[j] = lo[j] + p.rng.Float64()*(hi[j]-lo[j])
		}
		lam := p.rate(x)
		if lam < 0 || lam > p.maxRate || math.IsNaN(lam) {
			panic(fmt.Sprintf("Process.Sample: rate %v at %v violates declared bound [0, %v]", lam, x, p.maxRate))
		}
		// strict < so a zero-rate location never accepts, even when the
		// uniform draw is exactly 0
		if p.rng.Float64()*p.maxRate < lam {
			pts = append(pts, x)
		}
	}
	return pts, nil
}

// poissonCount draws a Poisson(lambda) count by summing unit-exponential
// inter-arrival times until they exceed lambda. Exact for any lambda, and
// safe where the classic product-of-uniforms method underflows.
func poissonCount(rng *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	n := 0
	for t := rng.ExpFloat64(); t < lambda; t += rng.ExpFloat64() {
		n++
	}
	return n
}
