package sense

import "fmt"

// Region is an opaque handle to a subset of the sensing domain. Regions are
// created and owned by the domain decomposition (see sense/region); policies
// hold references and never mutate them.
type Region interface {
	// Volume returns the Lebesgue volume of the region. Always positive.
	Volume() float64
	// Description returns a short human-readable identifier, stable for the
	// lifetime of the region. Used in logs and traces.
	Description() string
	// Discretize returns a coordinate grid covering the region with n points
	// per axis (n^d points for a d-dimensional region), in row-major order.
	Discretize(n int) Points
}

// CostFunc prices the sensing of a region. Implementations must be pure and
// strictly positive: acquisition scores divide by the cost, and a
// non-positive cost is a programming error the engine fails fast on.
type CostFunc func(Region) float64

// VolumeCost returns a cost function proportional to region volume:
// cost(r) = weight · vol(r). Larger regions cost more to sense, so
// cost-normalized scoring favors focused observations. Panics if weight
// is not positive.
func VolumeCost(weight float64) CostFunc {
	if weight <= 0 {
		panic(fmt.Sprintf("VolumeCost: weight must be positive, got %v", weight))
	}
	return func(r Region) float64 {
		return weight * r.Volume()
	}
}

// UniformCost returns a cost function charging the same price for every
// region regardless of size. Panics if c is not positive.
func UniformCost(c float64) CostFunc {
	if c <= 0 {
		panic(fmt.Sprintf("UniformCost: cost must be positive, got %v", c))
	}
	return func(Region) float64 {
		return c
	}
}
