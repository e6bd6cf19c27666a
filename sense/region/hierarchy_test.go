package region

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHierarchy_NodeCountIsFullBinaryTree(t *testing.T) {
	root := Interval(-1, 1)
	for levels := 1; levels <= 6; levels++ {
		h, err := NewHierarchy(root, levels)
		require.NoError(t, err)
		assert.Equal(t, (1<<levels)-1, len(h.Nodes()), "levels=%d", levels)
		assert.Equal(t, 1<<(levels-1), h.NumLeaves(), "levels=%d", levels)
	}
}

func TestNewHierarchy_SingleLevelIsRootAlone(t *testing.T) {
	root := Interval(-1, 1)
	h, err := NewHierarchy(root, 1)
	require.NoError(t, err)
	assert.Equal(t, []*Box{root}, h.Nodes())
	assert.Equal(t, []*Box{root}, h.Leaves())
}

func TestHierarchy_LeavesPartitionRoot(t *testing.T) {
	// GIVEN a 4-level decomposition of [-1, 1]
	root := Interval(-1, 1)
	h, err := NewHierarchy(root, 4)
	require.NoError(t, err)

	// THEN the leaf volumes sum to the root volume
	total := 0.0
	for _, leaf := range h.Leaves() {
		total += leaf.Volume()
	}
	assert.InDelta(t, root.Volume(), total, 1e-12)

	// AND the leaves are pairwise non-overlapping
	leaves := h.Leaves()
	for i := range leaves {
		for j := i + 1; j < len(leaves); j++ {
			assert.InDelta(t, 0.0, Overlap(leaves[i], leaves[j]), 1e-12)
		}
	}
}

func TestHierarchy_Leaves1DInAscendingOrder(t *testing.T) {
	h, err := NewHierarchy(Interval(-1, 1), 3)
	require.NoError(t, err)

	prev := math.Inf(-1)
	for _, leaf := range h.Leaves() {
		lo, _ := leaf.Bounds()
		assert.Greater(t, lo[0], prev)
		prev = lo[0]
	}
}

func TestHierarchy_SplitsWidestAxis(t *testing.T) {
	// GIVEN a 2-D root twice as wide on axis 0
	root, err := NewBox([]float64{0, 0}, []float64{2, 1})
	require.NoError(t, err)
	h, err := NewHierarchy(root, 2)
	require.NoError(t, err)

	// THEN the first split halves axis 0
	leaves := h.Leaves()
	require.Len(t, leaves, 2)
	_, hi := leaves[0].Bounds()
	assert.Equal(t, []float64{1, 1}, hi)
}

func TestHierarchy_LeafLookup(t *testing.T) {
	h, err := NewHierarchy(Interval(-1, 1), 3)
	require.NoError(t, err)
	leaves := h.Leaves()

	// Interior points map to the leaf that contains them
	for i, leaf := range leaves {
		idx, ok := h.Leaf(leaf.Center())
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}

	// Points outside the root map to nothing
	_, ok := h.Leaf([]float64{2})
	assert.False(t, ok)

	// Split-plane points resolve to exactly one leaf (the upper side)
	idx, ok := h.Leaf([]float64{0})
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestHierarchy_RegionsExposesAllNodes(t *testing.T) {
	h, err := NewHierarchy(Interval(-1, 1), 3)
	require.NoError(t, err)

	regions := h.Regions()
	require.Len(t, regions, 7)
	assert.Equal(t, h.Root().Description(), regions[0].Description())
}

func TestNewHierarchy_RejectsBadArguments(t *testing.T) {
	_, err := NewHierarchy(nil, 3)
	assert.Error(t, err)
	_, err = NewHierarchy(Interval(-1, 1), 0)
	assert.Error(t, err)
}
