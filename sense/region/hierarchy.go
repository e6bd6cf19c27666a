package region

import (
	"fmt"

	"github.com/sensego/sensego/sense"
)

// Hierarchy is a full binary decomposition of a root box into levels of
// progressively finer sub-boxes. Every node splits at the midpoint of its
// widest axis, so level k holds 2^(k-1) boxes tiling the root. All nodes
// together form the multi-scale candidate set a sensing policy scores:
// coarse nodes buy cheap wide coverage, leaves buy focus.
type Hierarchy struct {
	levels int
	// nodes in breadth-first order: nodes[0] is the root, the children of
	// node i sit at 2i+1 and 2i+2. The last 2^(levels-1) entries are the
	// leaves.
	nodes []*Box
}

// NewHierarchy decomposes root into the given number of levels. levels == 1
// is the root alone; each further level doubles the finest resolution.
func NewHierarchy(root *Box, levels int) (*Hierarchy, error) {
	if root == nil {
		return nil, fmt.Errorf("hierarchy needs a root box")
	}
	if levels < 1 {
		return nil, fmt.Errorf("hierarchy needs at least one level, got %d", levels)
	}

	total := (1 << levels) - 1
	nodes := make([]*Box, total)
	nodes[0] = root
	for i := 0; i < total/2; i++ {
		left, right := nodes[i].split()
		nodes[2*i+1] = left
		nodes[2*i+2] = right
	}
	return &Hierarchy{levels: levels, nodes: nodes}, nil
}

// Levels returns the number of levels, root included.
func (h *Hierarchy) Levels() int {
	return h.levels
}

// Root returns the domain box the hierarchy decomposes.
func (h *Hierarchy) Root() *Box {
	return h.nodes[0]
}

// Nodes returns all 2^levels - 1 boxes in breadth-first order, coarsest
// first. The returned slice is a copy.
func (h *Hierarchy) Nodes() []*Box {
	out := make([]*Box, len(h.nodes))
	copy(out, h.nodes)
	return out
}

// Leaves returns the 2^(levels-1) finest boxes. They tile the root exactly;
// for a 1-D root they come out in ascending coordinate order. The returned
// slice is a copy.
func (h *Hierarchy) Leaves() []*Box {
	leaves := h.nodes[len(h.nodes)/2:]
	out := make([]*Box, len(leaves))
	copy(out, leaves)
	return out
}

// NumLeaves returns the number of leaf boxes.
func (h *Hierarchy) NumLeaves() int {
	return len(h.nodes) - len(h.nodes)/2
}

// Regions returns every node as a sense.Region, breadth-first, for use as a
// policy candidate set.
func (h *Hierarchy) Regions() []sense.Region {
	out := make([]sense.Region, len(h.nodes))
	for i, b := range h.nodes {
		out[i] = b
	}
	return out
}

// Leaf returns the index (into Leaves) of the leaf containing x, or false
// when x lies outside the root. Points exactly on an internal split plane
// resolve to the upper-side leaf, so every point of the root maps to
// exactly one leaf.
func (h *Hierarchy) Leaf(x []float64) (int, bool) {
	if !h.nodes[0].Contains(x) {
		return 0, false
	}
	i := 0
	for 2*i+1 < len(h.nodes) {
		if h.nodes[2*i+2].Contains(x) {
			i = 2*i + 2
		} else {
			i = 2*i + 1
		}
	}
	return i - len(h.nodes)/2, true
}
