package fingering

import "testing"

func TestParseNote(t *testing.T) {
	cases := []struct {
		note string
		want int
	}{
		{"C0", 0},
		{"C4", 48},
		{"F#3", 42},
		{"A#5", 70},
		{"B5", 71},
	}
	for _, c := range cases {
		got, err := parseNote(c.note)
		if err != nil {
			t.Errorf("parseNote(%q): %v", c.note, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseNote(%q) = %d, want %d", c.note, got, c.want)
		}
	}
}

func TestParseNote_Malformed(t *testing.T) {
	for _, note := range []string{"", "C", "H4", "C#", "C4x", "#4"} {
		if _, err := parseNote(note); err == nil {
			t.Errorf("parseNote(%q): expected error", note)
		}
	}
}

func TestFormatNote_RoundTrip(t *testing.T) {
	for _, note := range []string{"C0", "F#3", "G4", "A#5", "C6"} {
		semis, err := parseNote(note)
		if err != nil {
			t.Fatalf("parseNote(%q): %v", note, err)
		}
		if got := formatNote(semis); got != note {
			t.Errorf("round trip %q -> %q", note, got)
		}
	}
}

func TestTranspose(t *testing.T) {
	cases := []struct {
		note  string
		semis int
		want  string
	}{
		{"C4", 2, "D4"},
		{"C4", -2, "A#3"},
		{"B4", 1, "C5"},
		{"C4", 0, "C4"},
		{"A4", 9, "F#5"},
	}
	for _, c := range cases {
		got, err := Transpose(c.note, c.semis)
		if err != nil {
			t.Errorf("Transpose(%q, %d): %v", c.note, c.semis, err)
			continue
		}
		if got != c.want {
			t.Errorf("Transpose(%q, %d) = %q, want %q", c.note, c.semis, got, c.want)
		}
	}
}

func TestTransposeInterval(t *testing.T) {
	// Playing concert-pitch (C) music on a B♭ trumpet shifts written notes
	// up a major second.
	if got := TransposeInterval(PitchBb, PitchC); got != 2 {
		t.Errorf("Bb reading C = %d, want 2", got)
	}
	// The native combination needs no shift.
	for _, p := range AllPitches() {
		if got := TransposeInterval(p, p); got != 0 {
			t.Errorf("TransposeInterval(%s, %s) = %d, want 0", p, p, got)
		}
	}
}
