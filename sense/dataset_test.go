package sense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataset_CountEvents_DistinguishesAbsentFromEmpty(t *testing.T) {
	// GIVEN a log with present, absent, and empty observations
	r := &stubRegion{vol: 1, desc: "r"}
	d := NewDataset([]Observation{
		{Region: r, Points: Points{{0.1}, {0.2}}, Duration: 1}, // 2 events
		{Region: r, Points: Points{{0.3}}, Duration: 1},        // 1 event
		{Region: r, Points: nil, Duration: 1},                  // not observed
		{Region: r, Points: Points{}, Duration: 1},             // observed, quiet
	})

	// THEN absent and empty records both contribute 0
	assert.Equal(t, 3, d.CountEvents())
}

func TestDataset_CountEvents_Idempotent(t *testing.T) {
	r := &stubRegion{vol: 1, desc: "r"}
	d := NewDataset([]Observation{{Region: r, Points: Points{{0.5}}, Duration: 1}})

	first := d.CountEvents()
	second := d.CountEvents()
	assert.Equal(t, first, second)
}

func TestDataset_AppendPreservesArrivalOrder(t *testing.T) {
	d := NewDataset(nil)
	a := &stubRegion{vol: 1, desc: "a"}
	b := &stubRegion{vol: 1, desc: "b"}
	d.Append(Observation{Region: a, Points: Points{}, Duration: 1})
	d.Append(Observation{Region: b, Points: nil, Duration: 2})

	recs := d.Records()
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, "a", recs[0].Region.Description())
	assert.Equal(t, "b", recs[1].Region.Description())
}

func TestDataset_RecordsIsACopy(t *testing.T) {
	// GIVEN a log with one record
	r := &stubRegion{vol: 1, desc: "r"}
	d := NewDataset([]Observation{{Region: r, Duration: 1}})

	// WHEN the returned slice is overwritten
	recs := d.Records()
	recs[0] = Observation{}

	// THEN the log is untouched
	assert.Equal(t, "r", d.Records()[0].Region.Description())
}

func TestDataset_InitialSliceNotRetained(t *testing.T) {
	r := &stubRegion{vol: 1, desc: "r"}
	initial := []Observation{{Region: r, Duration: 1}}
	d := NewDataset(initial)

	initial[0] = Observation{}
	assert.Equal(t, "r", d.Records()[0].Region.Description())
}
