package proficiency

import "math"

// Tier-dependent temporal constants. Casual (beginner) practice is assumed
// to be forgotten more slowly and smoothed more heavily; advanced play is
// treated as a high-fidelity skill sample and tracked rapidly.
const (
	// DecayRateStandard is the per-day exponential decay rate for the
	// advanced player tier.
	DecayRateStandard = 0.02
	// DecayRateLenient is the per-day exponential decay rate for the
	// beginner player tier.
	DecayRateLenient = 0.01

	// AlphaMastery is the EMA learning rate for advanced-tier tracks.
	AlphaMastery = 0.70
	// AlphaBeginner is the EMA learning rate for beginner-tier tracks.
	AlphaBeginner = 0.40
	// AlphaGlobal is the EMA learning rate for the aggregate headline
	// tracker, which smooths heavily across all play.
	AlphaGlobal = 0.15
)

// Decay applies exponential time-decay to a competency value:
// decayed = competency * e^(-rate * daysElapsed).
//
// daysElapsed <= 0 is an identity: reading a score must never shrink it,
// and clock skew must not inflate it.
func Decay(competency, daysElapsed, rate float64) float64 {
	if daysElapsed <= 0 {
		return clampUnit(competency)
	}
	return clampUnit(competency * math.Exp(-rate*daysElapsed))
}

// Smooth blends a prior competency with new evidence via an exponential
// moving average: prior*(1-alpha) + current*alpha.
func Smooth(prior, current, alpha float64) float64 {
	a := clampUnit(alpha)
	return clampUnit(clampUnit(prior)*(1-a) + clampUnit(current)*a)
}

// DecayThenSmooth composes the two transforms in the required order: decay
// fully discounts stale history first, then new evidence is blended in.
// The absence penalty itself must not be smoothed away, so the reverse
// order would be wrong.
func DecayThenSmooth(prior, current, daysElapsed, rate, alpha float64) float64 {
	return Smooth(Decay(prior, daysElapsed, rate), current, alpha)
}
