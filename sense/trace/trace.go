package trace

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// ExperimentTrace collects round records during a sensing run. The RunID
// distinguishes runs that share a seed and configuration.
type ExperimentTrace struct {
	RunID  string        `json:"run_id"`
	Seed   int64         `json:"seed"`
	Policy string        `json:"policy"`
	Rounds []RoundRecord `json:"rounds"`
}

// NewExperimentTrace creates an ExperimentTrace ready for recording, with a
// fresh random RunID.
func NewExperimentTrace(seed int64, policy string) *ExperimentTrace {
	return &ExperimentTrace{
		RunID:  uuid.NewString(),
		Seed:   seed,
		Policy: policy,
		Rounds: make([]RoundRecord, 0),
	}
}

// RecordRound appends one round record.
func (et *ExperimentTrace) RecordRound(rec RoundRecord) {
	et.Rounds = append(et.Rounds, rec)
}

// WriteJSON dumps the trace to path as indented JSON.
func (et *ExperimentTrace) WriteJSON(path string) error {
	data, err := json.MarshalIndent(et, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling trace: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// ReadJSON loads a trace previously dumped with WriteJSON.
func ReadJSON(path string) (*ExperimentTrace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	var et ExperimentTrace
	if err := json.Unmarshal(data, &et); err != nil {
		return nil, fmt.Errorf("parsing trace: %w", err)
	}
	return &et, nil
}
