package fingering

import "testing"

func TestDefaultChart_LoadsAndValidates(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if c.Name() != "three-valve" {
		t.Errorf("Name = %q, want three-valve", c.Name())
	}
	if c.VocabularySize() != 31 {
		t.Errorf("VocabularySize = %d, want 31", c.VocabularySize())
	}
}

func TestChart_Lookup(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	combos, ok := c.Lookup("C4")
	if !ok {
		t.Fatal("C4 should be producible")
	}
	if len(combos) != 1 || !combos[0].Equal(Fingering{}) {
		t.Errorf("C4 fingerings = %v, want open horn", combos)
	}

	combos, ok = c.Lookup("F#3")
	if !ok || !combos[0].Equal(Fingering{1, 2, 3}) {
		t.Errorf("F#3 fingerings = %v, want 123", combos)
	}

	if _, ok := c.Lookup("C2"); ok {
		t.Error("C2 is outside the chart and must not resolve")
	}
}

func TestChart_ResolveTransposes(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	// Concert C4 written for a B♭ instrument is D4, fingered 1-3.
	combos, ok := c.Resolve("C4", PitchBb, PitchC)
	if !ok {
		t.Fatal("concert C4 on a Bb instrument should resolve")
	}
	if !combos[0].Equal(Fingering{1, 3}) {
		t.Errorf("fingerings = %v, want [1 3]", combos)
	}

	// The native combination resolves without a shift.
	combos, ok = c.Resolve("G4", PitchBb, PitchBb)
	if !ok || !combos[0].Equal(Fingering{}) {
		t.Errorf("native G4 = %v, want open horn", combos)
	}

	// Transposing below the chart's range is not producible.
	if _, ok := c.Resolve("G3", PitchC, PitchBb); ok {
		t.Error("note transposed below the chart must not resolve")
	}
}

func TestChart_MatchesAcceptsAlternates(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	// C#5 accepts both 1-2 and the 1-2-3 alternate.
	if !c.Matches("C#5", Fingering{1, 2}, PitchBb, PitchBb) {
		t.Error("primary fingering rejected")
	}
	if !c.Matches("C#5", Fingering{1, 2, 3}, PitchBb, PitchBb) {
		t.Error("alternate fingering rejected")
	}
	if c.Matches("C#5", Fingering{1}, PitchBb, PitchBb) {
		t.Error("wrong fingering accepted")
	}
}

func TestChart_VocabularyOrdered(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	vocab := c.Vocabulary()
	prev := -1
	for _, note := range vocab {
		semis, err := parseNote(note)
		if err != nil {
			t.Fatalf("vocabulary note %q: %v", note, err)
		}
		if semis <= prev {
			t.Fatalf("vocabulary out of order at %q", note)
		}
		prev = semis
	}
}

func TestValidateChart_RejectsBadData(t *testing.T) {
	cases := map[string]string{
		"bad valve":    `{"name":"x","notes":[{"note":"C4","fingerings":[[4]]}]}`,
		"bad note":     `{"name":"x","notes":[{"note":"X9","fingerings":[[1]]}]}`,
		"empty notes":  `{"name":"x","notes":[]}`,
		"missing name": `{"notes":[{"note":"C4","fingerings":[[1]]}]}`,
	}
	for label, raw := range cases {
		if err := validateChart([]byte(raw)); err == nil {
			t.Errorf("%s: expected validation error", label)
		}
	}
}

func TestFingeringString(t *testing.T) {
	if got := (Fingering{}).String(); got != "0" {
		t.Errorf("open horn = %q, want 0", got)
	}
	if got := (Fingering{1, 3}).String(); got != "13" {
		t.Errorf("String = %q, want 13", got)
	}
}
