package proficiency

// PlayerTier selects the behavioral variant of the engine: how forgiving
// the evaluator is, how fast competency decays, and how quickly it tracks
// new evidence.
type PlayerTier int

const (
	// TierBeginner is the lenient variant for younger or new players.
	TierBeginner PlayerTier = iota
	// TierAdvanced is the standard variant for experienced players.
	TierAdvanced
)

// String returns the persisted identifier for the tier.
func (t PlayerTier) String() string {
	if t == TierAdvanced {
		return "advanced"
	}
	return "beginner"
}

// TierFromString parses a persisted tier identifier. Unknown values fall
// back to beginner, the game's default.
func TierFromString(s string) PlayerTier {
	if s == "advanced" {
		return TierAdvanced
	}
	return TierBeginner
}

// Difficulty is the 4-level practice difficulty schedule. Harder practice
// contributes proportionally more to competency via its weight.
type Difficulty int

const (
	DifficultyNovice Difficulty = iota
	DifficultyIntermediate
	DifficultyProficient
	DifficultyVirtuoso
)

// difficultyWeights is the fixed CEFR-style multiplier schedule.
var difficultyWeights = [...]float64{1.0, 1.5, 2.5, 4.0}

// maxDifficultyWeight is the weight of the hardest difficulty; weighted
// performance is normalized against it.
const maxDifficultyWeight = 4.0

// Weight returns the difficulty's fixed multiplier. Unknown values fall
// back to the lowest weight.
func (d Difficulty) Weight() float64 {
	if d < DifficultyNovice || int(d) >= len(difficultyWeights) {
		return difficultyWeights[DifficultyNovice]
	}
	return difficultyWeights[d]
}

// String returns the persisted identifier for the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyIntermediate:
		return "intermediate"
	case DifficultyProficient:
		return "proficient"
	case DifficultyVirtuoso:
		return "virtuoso"
	default:
		return "novice"
	}
}

// DifficultyFromString parses a persisted difficulty identifier.
func DifficultyFromString(s string) Difficulty {
	switch s {
	case "intermediate":
		return DifficultyIntermediate
	case "proficient":
		return DifficultyProficient
	case "virtuoso":
		return DifficultyVirtuoso
	default:
		return DifficultyNovice
	}
}

// WeightedPerformance rescales a raw performance value by the difficulty
// weight, normalized so a perfect session at the hardest difficulty maps
// to 1.0 and a perfect session at the easiest maps to a fraction of it.
func WeightedPerformance(raw float64, d Difficulty) float64 {
	return clampUnit(clampUnit(raw) * d.Weight() / maxDifficultyWeight)
}
