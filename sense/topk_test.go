package sense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopKIndices_DescendingScoreOrder(t *testing.T) {
	scores := []float64{0.2, 0.9, 0.5, 0.7}
	assert.Equal(t, []int{1, 3, 2}, topKIndices(scores, 3))
}

func TestTopKIndices_TiesResolveToFirstOccurrence(t *testing.T) {
	// GIVEN duplicate scores
	scores := []float64{0.5, 0.9, 0.5, 0.9}

	// THEN the earlier index wins each tie
	assert.Equal(t, []int{1, 3, 0, 2}, topKIndices(scores, 4))
}

func TestTopKIndices_AllEqualSelectsPrefix(t *testing.T) {
	// All-equal scores degrade to selecting indices 0..k-1 in order,
	// the documented deterministic fallback.
	scores := []float64{1, 1, 1, 1, 1}
	assert.Equal(t, []int{0, 1, 2}, topKIndices(scores, 3))
}

func TestTopKIndices_KClampedToLength(t *testing.T) {
	scores := []float64{0.3, 0.1}
	assert.Equal(t, []int{0, 1}, topKIndices(scores, 10))
}

func TestTopKIndices_SingleWinner(t *testing.T) {
	scores := []float64{0.1, 0.8, 0.3}
	assert.Equal(t, []int{1}, topKIndices(scores, 1))
}
