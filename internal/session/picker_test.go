package session

import (
	"testing"

	"github.com/abhisek/valvo/internal/fingering"
)

func testChart(t *testing.T) *fingering.Chart {
	t.Helper()
	chart, err := fingering.Default()
	if err != nil {
		t.Fatalf("load chart: %v", err)
	}
	return chart
}

func TestPickerServesFullVocabulary(t *testing.T) {
	chart := testChart(t)
	p := NewPicker(chart, fingering.PitchBb, fingering.PitchBb, nil, nil, 1)

	if p.PoolSize() != chart.VocabularySize() {
		t.Fatalf("pool size = %d, want %d", p.PoolSize(), chart.VocabularySize())
	}

	seen := make(map[string]bool)
	for i := 0; i < p.PoolSize(); i++ {
		seen[p.Next()] = true
	}
	if len(seen) != p.PoolSize() {
		t.Errorf("first pass served %d distinct prompts, want %d", len(seen), p.PoolSize())
	}
}

func TestPickerPrioritizesUncoveredNotes(t *testing.T) {
	chart := testChart(t)

	// Mark everything covered except one note.
	covered := make(map[string]bool)
	for _, n := range chart.Vocabulary() {
		covered[n] = true
	}
	delete(covered, "G4")

	p := NewPicker(chart, fingering.PitchBb, fingering.PitchBb, covered, nil, 7)
	if got := p.Next(); got != "G4" {
		t.Errorf("first prompt = %q, want uncovered G4", got)
	}
}

func TestPickerRanksMissedNotesAfterUncovered(t *testing.T) {
	chart := testChart(t)

	covered := make(map[string]bool)
	for _, n := range chart.Vocabulary() {
		covered[n] = true
	}
	delete(covered, "C5")

	p := NewPicker(chart, fingering.PitchBb, fingering.PitchBb, covered, []string{"F#4", "D4"}, 3)
	if got := p.Next(); got != "C5" {
		t.Fatalf("first prompt = %q, want uncovered C5", got)
	}
	if got := p.Next(); got != "F#4" {
		t.Errorf("second prompt = %q, want most-missed F#4", got)
	}
	if got := p.Next(); got != "D4" {
		t.Errorf("third prompt = %q, want D4", got)
	}
}

func TestPickerNoBackToBackRepeats(t *testing.T) {
	chart := testChart(t)
	p := NewPicker(chart, fingering.PitchBb, fingering.PitchBb, nil, nil, 42)

	// Run well past several reshuffles.
	prev := ""
	for i := 0; i < p.PoolSize()*5; i++ {
		got := p.Next()
		if got == prev {
			t.Fatalf("prompt %d repeated %q back to back", i, got)
		}
		prev = got
	}
}

func TestPickerTransposesPromptsIntoWrittenKey(t *testing.T) {
	chart := testChart(t)

	// Bb instrument reading concert-pitch music: prompts sit a major
	// second below the chart's written range.
	p := NewPicker(chart, fingering.PitchBb, fingering.PitchC, nil, nil, 1)
	if p.PoolSize() != chart.VocabularySize() {
		t.Fatalf("pool size = %d, want %d", p.PoolSize(), chart.VocabularySize())
	}
	for i := 0; i < p.PoolSize(); i++ {
		prompt := p.Next()
		if _, ok := chart.Resolve(prompt, fingering.PitchBb, fingering.PitchC); !ok {
			t.Errorf("prompt %q does not resolve onto the chart", prompt)
		}
	}
}
