// Package region provides the axis-aligned geometry the sensing loop acts
// on: boxes as the concrete sense.Region, and a hierarchical decomposition
// of a root box into the multi-scale candidate set policies score.
package region

import (
	"fmt"
	"math"
	"strings"

	"github.com/sensego/sensego/sense"
)

// Box is an axis-aligned hyperrectangle [lo_1, hi_1] × ... × [lo_d, hi_d].
// Boxes are immutable after construction and satisfy sense.Region.
type Box struct {
	lo, hi []float64
}

// NewBox creates a Box from per-axis lower and upper bounds. The slices are
// copied. Errors when the dimensions disagree, the box is empty, or any
// bound is non-finite or inverted (lo >= hi).
func NewBox(lo, hi []float64) (*Box, error) {
	if len(lo) == 0 {
		return nil, fmt.Errorf("box needs at least one axis")
	}
	if len(lo) != len(hi) {
		return nil, fmt.Errorf("bound dimensions disagree: %d vs %d", len(lo), len(hi))
	}
	for i := range lo {
		if math.IsNaN(lo[i]) || math.IsInf(lo[i], 0) || math.IsNaN(hi[i]) || math.IsInf(hi[i], 0) {
			return nil, fmt.Errorf("axis %d bounds must be finite, got [%v, %v]", i, lo[i], hi[i])
		}
		if lo[i] >= hi[i] {
			return nil, fmt.Errorf("axis %d bounds inverted or degenerate: [%v, %v]", i, lo[i], hi[i])
		}
	}
	b := &Box{lo: make([]float64, len(lo)), hi: make([]float64, len(hi))}
	copy(b.lo, lo)
	copy(b.hi, hi)
	return b, nil
}

// Interval creates the 1-D box [lo, hi]. Panics on invalid bounds; use
// NewBox when the bounds come from config.
func Interval(lo, hi float64) *Box {
	b, err := NewBox([]float64{lo}, []float64{hi})
	if err != nil {
		panic(fmt.Sprintf("Interval: %v", err))
	}
	return b
}

// Dim returns the number of axes.
func (b *Box) Dim() int {
	return len(b.lo)
}

// Volume implements sense.Region for Box.
func (b *Box) Volume() float64 {
	v := 1.0
	for i := range b.lo {
		v *= b.hi[i] - b.lo[i]
	}
	return v
}

// Description implements sense.Region for Box. The form is stable for the
// lifetime of the box: one [lo,hi] pair per axis, e.g. "box[-1,0]x[0,1]".
func (b *Box) Description() string {
	var sb strings.Builder
	sb.WriteString("box")
	for i := range b.lo {
		if i > 0 {
			sb.WriteString("x")
		}
		fmt.Fprintf(&sb, "[%g,%g]", b.lo[i], b.hi[i])
	}
	return sb.String()
}

// Discretize implements sense.Region for Box: an evenly spaced grid with n
// points per axis including both endpoints, n^d points total in row-major
// order (last axis varies fastest). n == 1 yields the box center.
func (b *Box) Discretize(n int) sense.Points {
	if n < 1 {
		panic(fmt.Sprintf("Box.Discretize: n must be >= 1, got %d", n))
	}
	if n == 1 {
		return sense.Points{b.Center()}
	}

	d := b.Dim()
	axes := make([][]float64, d)
	for i := 0; i < d; i++ {
		axes[i] = make([]float64, n)
		step := (b.hi[i] - b.lo[i]) / float64(n-1)
		for j := 0; j < n; j++ {
			axes[i][j] = b.lo[i] + float64(j)*step
		}
		axes[i][n-1] = b.hi[i] // exact endpoint, no accumulation drift
	}

	total := 1
	for i := 0; i < d; i++ {
		total *= n
	}
	grid := make(sense.Points, total)
	idx := make([]int, d)
	for g := 0; g < total; g++ {
		pt := make([]float64, d)
		for i := 0; i < d; i++ {
			pt[i] = axes[i][idx[i]]
		}
		grid[g] = pt
		for i := d - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < n {
				break
			}
			idx[i] = 0
		}
	}
	return grid
}

// Contains reports whether x lies in the box, boundaries included.
// A point of the wrong dimension is never contained.
func (b *Box) Contains(x []float64) bool {
	if len(x) != b.Dim() {
		return false
	}
	for i := range x {
		if x[i] < b.lo[i] || x[i] > b.hi[i] {
			return false
		}
	}
	return true
}

// ContainsBox reports whether other lies entirely inside b, boundaries
// included.
func (b *Box) ContainsBox(other *Box) bool {
	if other.Dim() != b.Dim() {
		return false
	}
	for i := range b.lo {
		if other.lo[i] < b.lo[i] || other.hi[i] > b.hi[i] {
			return false
		}
	}
	return true
}

// Center returns the midpoint of the box.
func (b *Box) Center() []float64 {
	c := make([]float64, b.Dim())
	for i := range c {
		c[i] = (b.lo[i] + b.hi[i]) / 2
	}
	return c
}

// Bounds returns copies of the per-axis lower and upper bounds.
func (b *Box) Bounds() (lo, hi []float64) {
	lo = make([]float64, len(b.lo))
	hi = make([]float64, len(b.hi))
	copy(lo, b.lo)
	copy(hi, b.hi)
	return lo, hi
}

// Overlap returns the volume of the intersection of a and b, 0 when they
// are disjoint. Panics on dimension mismatch.
func Overlap(a, b *Box) float64 {
	if a.Dim() != b.Dim() {
		panic(fmt.Sprintf("Overlap: dimension mismatch %d vs %d", a.Dim(), b.Dim()))
	}
	v := 1.0
	for i := range a.lo {
		lo := math.Max(a.lo[i], b.lo[i])
		hi := math.Min(a.hi[i], b.hi[i])
		if hi <= lo {
			return 0
		}
		v *= hi - lo
	}
	return v
}

// split halves the box at the midpoint of its widest axis. Ties go to the
// lower axis index, so splitting is deterministic.
func (b *Box) split() (*Box, *Box) {
	axis := 0
	widest := b.hi[0] - b.lo[0]
	for i := 1; i < b.Dim(); i++ {
		if w := b.hi[i] - b.lo[i]; w > widest {
			widest = w
			axis = i
		}
	}
	mid := (b.lo[axis] + b.hi[axis]) / 2

	leftHi := make([]float64, b.Dim())
	copy(leftHi, b.hi)
	leftHi[axis] = mid
	rightLo := make([]float64, b.Dim())
	copy(rightLo, b.lo)
	rightLo[axis] = mid

	left := &Box{lo: append([]float64(nil), b.lo...), hi: leftHi}
	right := &Box{lo: rightLo, hi: append([]float64(nil), b.hi...)}
	return left, right
}
