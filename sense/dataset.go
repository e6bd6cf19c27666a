package sense

// Observation is one sensing outcome: a region watched for Duration, and the
// events seen. Points follows the nil-vs-empty contract of the Points type:
// nil means the observation produced nothing, empty means zero events were
// genuinely observed. Records are immutable once created.
type Observation struct {
	Region   Region
	Points   Points
	Duration float64
}

// EventCount returns the number of events in the observation; absent
// observations count 0, exactly like genuinely empty ones.
func (o Observation) EventCount() int {
	return len(o.Points)
}

// Dataset is the append-only observation log owned by a policy. Order
// matches arrival order; records are never removed or mutated after
// insertion. Not safe for concurrent use — one policy instance owns it.
type Dataset struct {
	records []Observation
}

// NewDataset creates a Dataset seeded with the given records, in order.
// The slice is copied; the caller keeps no handle into the log.
func NewDataset(initial []Observation) *Dataset {
	d := &Dataset{records: make([]Observation, len(initial))}
	copy(d.records, initial)
	return d
}

// Append adds a record at the end of the log.
func (d *Dataset) Append(obs Observation) {
	d.records = append(d.records, obs)
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns the log in arrival order. The returned slice is a copy;
// the records themselves are shared and must not be mutated.
func (d *Dataset) Records() []Observation {
	out := make([]Observation, len(d.records))
	copy(out, d.records)
	return out
}

// CountEvents returns the total number of observed events across the log.
// Absent observations (nil points) and empty observations both contribute 0.
// Pure query: calling it twice without appends yields identical results.
func (d *Dataset) CountEvents() int {
	total := 0
	for _, rec := range d.records {
		total += rec.EventCount()
	}
	return total
}
