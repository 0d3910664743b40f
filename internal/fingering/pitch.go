// Package fingering holds the static instrument knowledge: transposition
// pitches, the note vocabulary, and the valve-combination charts that map a
// written note to the buttons that produce it.
package fingering

// Pitch is the transposition key of an instrument or of written music.
type Pitch string

const (
	PitchC  Pitch = "C"
	PitchBb Pitch = "Bb"
	PitchEb Pitch = "Eb"
	PitchF  Pitch = "F"
)

// AllPitches returns the tracked pitches in display order. The proficiency
// registry fans out one track per (instrument pitch, written pitch) pair
// drawn from this set.
func AllPitches() []Pitch {
	return []Pitch{PitchC, PitchBb, PitchEb, PitchF}
}

// Valid reports whether p is one of the tracked pitches.
func (p Pitch) Valid() bool {
	switch p {
	case PitchC, PitchBb, PitchEb, PitchF:
		return true
	}
	return false
}

// DisplayName returns the human-readable pitch name.
func (p Pitch) DisplayName() string {
	switch p {
	case PitchBb:
		return "B♭"
	case PitchEb:
		return "E♭"
	case PitchF:
		return "F"
	default:
		return "C"
	}
}

// writtenOffset is the number of semitones added to a concert-pitch note to
// get the note as written for an instrument in this pitch. A B♭ instrument
// sounds a major second below written, an E♭ instrument a major sixth, an F
// instrument a perfect fifth.
func (p Pitch) writtenOffset() int {
	switch p {
	case PitchBb:
		return 2
	case PitchEb:
		return 9
	case PitchF:
		return 7
	default:
		return 0
	}
}

// TransposeInterval returns the semitone shift needed to play music written
// in the given key on an instrument pitched at p.
func TransposeInterval(instrument, written Pitch) int {
	return instrument.writtenOffset() - written.writtenOffset()
}
