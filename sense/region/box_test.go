package region

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBox_RejectsMalformedBounds(t *testing.T) {
	tests := []struct {
		name string
		lo   []float64
		hi   []float64
	}{
		{"no axes", nil, nil},
		{"dimension mismatch", []float64{0}, []float64{1, 2}},
		{"inverted", []float64{1}, []float64{0}},
		{"degenerate", []float64{1}, []float64{1}},
		{"nan bound", []float64{0}, []float64{math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBox(tt.lo, tt.hi)
			assert.Error(t, err)
		})
	}
}

func TestBox_Volume(t *testing.T) {
	b, err := NewBox([]float64{-1, 0}, []float64{1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 6.0, b.Volume(), 1e-12)
}

func TestBox_DescriptionIsStable(t *testing.T) {
	b := Interval(-1, 1)
	assert.Equal(t, "box[-1,1]", b.Description())
	assert.Equal(t, b.Description(), b.Description())

	b2, err := NewBox([]float64{-1, 0}, []float64{0.5, 1})
	require.NoError(t, err)
	assert.Equal(t, "box[-1,0.5]x[0,1]", b2.Description())
}

func TestBox_Discretize1D(t *testing.T) {
	// GIVEN the interval [-1, 1]
	b := Interval(-1, 1)

	// WHEN discretized with 5 points
	grid := b.Discretize(5)

	// THEN the grid is evenly spaced and includes both endpoints
	require.Len(t, grid, 5)
	want := []float64{-1, -0.5, 0, 0.5, 1}
	for i, x := range grid {
		assert.InDelta(t, want[i], x[0], 1e-12)
	}
}

func TestBox_Discretize2D_RowMajor(t *testing.T) {
	b, err := NewBox([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	grid := b.Discretize(2)

	// 2^2 corners, last axis varying fastest
	require.Len(t, grid, 4)
	assert.Equal(t, []float64{0, 0}, grid[0])
	assert.Equal(t, []float64{0, 1}, grid[1])
	assert.Equal(t, []float64{1, 0}, grid[2])
	assert.Equal(t, []float64{1, 1}, grid[3])
}

func TestBox_DiscretizeSinglePointIsCenter(t *testing.T) {
	b := Interval(2, 4)
	grid := b.Discretize(1)
	require.Len(t, grid, 1)
	assert.Equal(t, []float64{3}, grid[0])
}

func TestBox_Contains(t *testing.T) {
	b := Interval(-1, 1)
	assert.True(t, b.Contains([]float64{0}))
	assert.True(t, b.Contains([]float64{-1}), "boundary included")
	assert.True(t, b.Contains([]float64{1}), "boundary included")
	assert.False(t, b.Contains([]float64{1.001}))
	assert.False(t, b.Contains([]float64{0, 0}), "wrong dimension")
}

func TestBox_ContainsBox(t *testing.T) {
	outer := Interval(-1, 1)
	assert.True(t, outer.ContainsBox(Interval(-0.5, 0.5)))
	assert.True(t, outer.ContainsBox(outer))
	assert.False(t, outer.ContainsBox(Interval(0, 2)))
}

func TestOverlap(t *testing.T) {
	a := Interval(0, 2)
	assert.InDelta(t, 1.0, Overlap(a, Interval(1, 3)), 1e-12)
	assert.InDelta(t, 0.0, Overlap(a, Interval(2, 3)), 1e-12, "touching boxes do not overlap")
	assert.InDelta(t, 0.0, Overlap(a, Interval(5, 6)), 1e-12)
	assert.InDelta(t, 2.0, Overlap(a, a), 1e-12)
}

func TestBox_BoundsAreCopies(t *testing.T) {
	b := Interval(-1, 1)
	lo, _ := b.Bounds()
	lo[0] = -100
	lo2, _ := b.Bounds()
	assert.Equal(t, -1.0, lo2[0])
}
