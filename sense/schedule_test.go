package sense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaturatingSchedule_Formula(t *testing.T) {
	s := SaturatingSchedule()
	// Round one is pure exploitation; t=4 halves the exploit probability.
	assert.InDelta(t, 0.0, s(1), 1e-12)
	assert.InDelta(t, 0.5, s(4), 1e-12)
	assert.InDelta(t, 0.9, s(100), 1e-12)
}

func TestDecaySchedule_Formula(t *testing.T) {
	s := DecaySchedule()
	assert.InDelta(t, 1.0, s(1), 1e-12)
	assert.InDelta(t, 0.5, s(4), 1e-12)
	assert.InDelta(t, 0.1, s(100), 1e-12)
}

func TestConstantSchedule_IgnoresRound(t *testing.T) {
	s := ConstantSchedule(0.3)
	assert.Equal(t, 0.3, s(1))
	assert.Equal(t, 0.3, s(1000))
}

func TestConstantSchedule_RejectsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { ConstantSchedule(-0.1) })
	assert.Panics(t, func() { ConstantSchedule(1.1) })
}

func TestParseSchedule(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		eps      float64
		wantErr  bool
		wantAt4  float64
	}{
		{"default is saturating", "", 0, false, 0.5},
		{"saturating by name", "saturating", 0, false, 0.5},
		{"decay", "decay", 0, false, 0.5},
		{"constant", "constant", 0.2, false, 0.2},
		{"constant out of range", "constant", 1.5, true, 0},
		{"unknown name", "annealed", 0, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseSchedule(tt.schedule, tt.eps)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantAt4, s(4), 1e-12)
		})
	}
}
