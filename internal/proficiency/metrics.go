package proficiency

// Metrics is the raw per-session measurement tuple fed to Evaluate.
type Metrics struct {
	// Accuracy is the fraction of correct answers in [0,1].
	Accuracy float64
	// AvgSpeedSecs is the mean seconds per answer (>= 0).
	AvgSpeedSecs float64
	// Coverage is the fraction of the note vocabulary touched, in [0,1].
	Coverage float64
	// Consistency is the session-to-session stability measure in [0,1].
	Consistency float64
}

// NeutralCoverage and NeutralConsistency are the defaults used when a
// metric is not yet measurable.
const (
	NeutralCoverage    = 0.5
	NeutralConsistency = 0.5
)

// DefaultMetrics returns a Metrics with neutral coverage and consistency.
func DefaultMetrics() Metrics {
	return Metrics{
		Coverage:    NeutralCoverage,
		Consistency: NeutralConsistency,
	}
}

// Profile selects the evaluator's weighting behavior.
type Profile int

const (
	// ProfileStandard is the default adult/advanced learning weighting.
	ProfileStandard Profile = iota
	// ProfileLenient favors accuracy and rewards early progress, for
	// beginner players.
	ProfileLenient
	// ProfileMastery drops coverage and consistency so each session
	// stands alone, for marathon and speed play at the advanced tier.
	ProfileMastery
)

// profileWeights holds the fixed weighted-sum coefficients for a profile.
type profileWeights struct {
	accuracy      float64
	speed         float64
	coverage      float64
	consistency   float64
	baselineSecs  float64 // seconds per answer at which the speed score is 0
	resultScale   float64 // multiplier applied to the combined score
	boostFloor    float64 // scores at or above this get the boost
	boostMultiple float64
}

var weightsByProfile = map[Profile]profileWeights{
	ProfileStandard: {
		accuracy:     0.50,
		speed:        0.20,
		coverage:     0.20,
		consistency:  0.10,
		baselineSecs: 3.0,
		resultScale:  1.0,
	},
	ProfileLenient: {
		accuracy:     0.70,
		speed:        0.10,
		coverage:     0.15,
		consistency:  0.05,
		baselineSecs: 5.0,
		resultScale:  1.3,
	},
	ProfileMastery: {
		accuracy:      0.80,
		speed:         0.20,
		baselineSecs:  3.0,
		resultScale:   1.0,
		boostFloor:    0.85,
		boostMultiple: 1.15,
	},
}

// Evaluate turns a metrics tuple into a single normalized performance value
// in [0,1]. It is pure: identical inputs always produce identical output.
func Evaluate(m Metrics, p Profile) float64 {
	w, ok := weightsByProfile[p]
	if !ok {
		w = weightsByProfile[ProfileStandard]
	}

	normSpeed := clampUnit(1.0 - clampNonNeg(m.AvgSpeedSecs)/w.baselineSecs)

	score := w.accuracy*clampUnit(m.Accuracy) +
		w.speed*normSpeed +
		w.coverage*clampUnit(m.Coverage) +
		w.consistency*clampUnit(m.Consistency)

	score *= w.resultScale
	if w.boostMultiple > 0 && score >= w.boostFloor {
		score *= w.boostMultiple
	}
	return clampUnit(score)
}

// clampUnit clamps v into the unit interval [0,1]. Competency, accuracy,
// coverage and consistency values all carry this invariant.
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampNonNeg clamps v to be >= 0. Used for durations and counts that a
// buggy caller could hand in negative.
func clampNonNeg(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
