package fingering

import (
	"fmt"
	"strconv"
	"strings"
)

// noteNames lists the chromatic scale using sharps; chart note identifiers
// always use this spelling ("C4", "F#3", "A#5").
var noteNames = [...]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// parseNote converts a note identifier like "F#3" into an absolute semitone
// index (12 per octave, C0 = 0).
func parseNote(note string) (int, error) {
	if len(note) < 2 {
		return 0, fmt.Errorf("malformed note %q", note)
	}

	nameLen := 1
	if strings.ContainsRune(note[1:], '#') {
		nameLen = 2
	}
	name := note[:nameLen]

	idx := -1
	for i, n := range noteNames {
		if n == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, fmt.Errorf("unknown note name in %q", note)
	}

	octave, err := strconv.Atoi(note[nameLen:])
	if err != nil {
		return 0, fmt.Errorf("malformed octave in %q: %w", note, err)
	}
	return octave*12 + idx, nil
}

// formatNote converts an absolute semitone index back to a note identifier.
func formatNote(semis int) string {
	octave := semis / 12
	idx := semis % 12
	if idx < 0 {
		idx += 12
		octave--
	}
	return fmt.Sprintf("%s%d", noteNames[idx], octave)
}

// Transpose shifts a note identifier by the given number of semitones.
func Transpose(note string, semitones int) (string, error) {
	semis, err := parseNote(note)
	if err != nil {
		return "", err
	}
	return formatNote(semis + semitones), nil
}
