package sense

import (
	"fmt"
	"math"
)

// Schedule maps the 1-based round counter to an exploration threshold in
// [0, 1]. Each round the policy draws p uniform on [0, 1) and exploits only
// when p exceeds the threshold, so a threshold of 0 always exploits and a
// threshold of 1 never does.
type Schedule func(t int) float64

// SaturatingSchedule returns the default threshold 1 - 1/sqrt(t): round one
// is pure exploitation (threshold 0) and the exploit probability then decays
// as 1/sqrt(t), shifting the budget toward exploration as the estimate of
// high-rate areas firms up.
func SaturatingSchedule() Schedule {
	return func(t int) float64 {
		return 1.0 - 1.0/math.Sqrt(float64(t))
	}
}

// DecaySchedule returns the threshold 1/sqrt(t): heavy exploration early,
// increasingly greedy later. The classic epsilon-greedy decay.
func DecaySchedule() Schedule {
	return func(t int) float64 {
		return 1.0 / math.Sqrt(float64(t))
	}
}

// ConstantSchedule returns a fixed threshold for every round.
// Panics if eps is outside [0, 1].
func ConstantSchedule(eps float64) Schedule {
	if eps < 0 || eps > 1 || math.IsNaN(eps) {
		panic(fmt.Sprintf("ConstantSchedule: eps must be in [0, 1], got %v", eps))
	}
	return func(int) float64 {
		return eps
	}
}

// ParseSchedule creates a Schedule from its config name. "saturating" and
// the empty string give SaturatingSchedule, "decay" gives DecaySchedule,
// and "constant" gives ConstantSchedule(eps); eps is ignored by the others.
func ParseSchedule(name string, eps float64) (Schedule, error) {
	switch name {
	case "", "saturating":
		return SaturatingSchedule(), nil
	case "decay":
		return DecaySchedule(), nil
	case "constant":
		if eps < 0 || eps > 1 || math.IsNaN(eps) {
			return nil, fmt.Errorf("constant schedule requires eps in [0, 1], got %v", eps)
		}
		return ConstantSchedule(eps), nil
	default:
		return nil, fmt.Errorf("unknown epsilon schedule %q", name)
	}
}
