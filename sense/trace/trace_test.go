package trace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExperimentTrace_FreshRunIDs(t *testing.T) {
	a := NewExperimentTrace(42, "epsilon-greedy")
	b := NewExperimentTrace(42, "epsilon-greedy")

	assert.NotEmpty(t, a.RunID)
	assert.NotEqual(t, a.RunID, b.RunID, "runs sharing a seed must stay distinguishable")
	assert.Equal(t, int64(42), a.Seed)
	assert.Equal(t, "epsilon-greedy", a.Policy)
}

func TestExperimentTrace_RecordsInOrder(t *testing.T) {
	et := NewExperimentTrace(1, "random")
	et.RecordRound(RoundRecord{Round: 1, Cost: 0.5, Events: 2})
	et.RecordRound(RoundRecord{Round: 2, Cost: 1.5, Events: 0})

	require.Len(t, et.Rounds, 2)
	assert.Equal(t, 1, et.Rounds[0].Round)
	assert.Equal(t, 2, et.Rounds[1].Round)
}

func TestExperimentTrace_JSONRoundTrip(t *testing.T) {
	// GIVEN a recorded trace
	et := NewExperimentTrace(7, "epsilon-greedy")
	et.RecordRound(RoundRecord{
		Round:   1,
		Cost:    0.25,
		Events:  3,
		Regions: []string{"box[-1,0]"},
		Indices: []int{1},
	})

	// WHEN written and read back
	path := filepath.Join(t.TempDir(), "trace.json")
	require.NoError(t, et.WriteJSON(path))
	got, err := ReadJSON(path)
	require.NoError(t, err)

	// THEN nothing is lost
	assert.Equal(t, et.RunID, got.RunID)
	assert.Equal(t, et.Seed, got.Seed)
	assert.Equal(t, et.Rounds, got.Rounds)
}

func TestReadJSON_MissingFile(t *testing.T) {
	_, err := ReadJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
