package proficiency

// Band is the qualitative 5-level label derived from a competency value.
// It is a pure function of competency and is never persisted separately.
type Band int

const (
	BandEarlyLearning Band = iota
	BandDeveloping
	BandFunctional
	BandIndependent
	BandMastered
)

// BandOf maps a (possibly decayed) competency value to its band.
// Boundaries sit at 0.2 / 0.4 / 0.6 / 0.8.
func BandOf(competency float64) Band {
	c := clampUnit(competency)
	switch {
	case c < 0.2:
		return BandEarlyLearning
	case c < 0.4:
		return BandDeveloping
	case c < 0.6:
		return BandFunctional
	case c < 0.8:
		return BandIndependent
	default:
		return BandMastered
	}
}

// Name returns the short display name for the band.
func (b Band) Name() string {
	switch b {
	case BandDeveloping:
		return "Developing"
	case BandFunctional:
		return "Functional"
	case BandIndependent:
		return "Independent"
	case BandMastered:
		return "Mastered"
	default:
		return "Early Learning"
	}
}

// Description returns a one-line explanation shown next to the band name.
func (b Band) Description() string {
	switch b {
	case BandDeveloping:
		return "Finding the fingerings with some hesitation"
	case BandFunctional:
		return "Reliable on familiar notes at a steady pace"
	case BandIndependent:
		return "Quick and accurate across most of the range"
	case BandMastered:
		return "Fluent recall across the full range under pressure"
	default:
		return "Just getting started with this combination"
	}
}
