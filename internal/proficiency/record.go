package proficiency

import (
	"sort"
	"time"
)

const (
	// SeedCompetency is the competency a brand-new track starts at. It is
	// deliberately above zero so a first-time player sees early progress
	// rather than a discouraging 0.
	SeedCompetency = 0.2

	// HistoryCap bounds the persisted session history per track. This is a
	// storage policy, not a correctness requirement: the oldest entry is
	// evicted first.
	HistoryCap = 30

	// consistencyWindow is how many persisted session accuracies (plus the
	// current one) feed the consistency measure.
	consistencyWindow = 9
)

// SessionRecord is one immutable entry in a track's session history.
type SessionRecord struct {
	Timestamp           time.Time `json:"timestamp"`
	RawAccuracy         float64   `json:"raw_accuracy"`
	RawPerformance      float64   `json:"raw_performance"`
	WeightedPerformance float64   `json:"weighted_performance"`
	Difficulty          string    `json:"difficulty"`
	CompetencyAfter     float64   `json:"competency_after"`
	Mode                string    `json:"mode"`
}

// CompetencyRecord is the persisted state for one track: the smoothed,
// decaying competency value plus the history and coverage that feed it.
type CompetencyRecord struct {
	TrackKey     string
	Competency   float64
	LastPractice time.Time
	History      []SessionRecord
	NotesCovered map[string]bool
	CreatedAt    time.Time
}

// NewCompetencyRecord seeds a fresh record for a track that has never been
// practiced.
func NewCompetencyRecord(trackKey string, now time.Time) *CompetencyRecord {
	return &CompetencyRecord{
		TrackKey:     trackKey,
		Competency:   SeedCompetency,
		LastPractice: now,
		NotesCovered: make(map[string]bool),
		CreatedAt:    now,
	}
}

// CoverNotes unions the practiced notes into the coverage set. The set only
// ever grows.
func (r *CompetencyRecord) CoverNotes(notes []string) {
	if r.NotesCovered == nil {
		r.NotesCovered = make(map[string]bool)
	}
	for _, n := range notes {
		if n != "" {
			r.NotesCovered[n] = true
		}
	}
}

// Coverage returns the fraction of the note vocabulary covered so far,
// against a fixed external denominator.
func (r *CompetencyRecord) Coverage(totalNotes int) float64 {
	if totalNotes <= 0 {
		return 0
	}
	frac := float64(len(r.NotesCovered)) / float64(totalNotes)
	return clampUnit(frac)
}

// AppendSession appends a session record, evicting the oldest entry beyond
// the history cap.
func (r *CompetencyRecord) AppendSession(sr SessionRecord) {
	r.History = append(r.History, sr)
	if len(r.History) > HistoryCap {
		r.History = r.History[len(r.History)-HistoryCap:]
	}
}

// NotesCoveredSorted returns the coverage set as a sorted slice for stable
// persistence.
func (r *CompetencyRecord) NotesCoveredSorted() []string {
	notes := make([]string, 0, len(r.NotesCovered))
	for n := range r.NotesCovered {
		notes = append(notes, n)
	}
	sort.Strings(notes)
	return notes
}

// recentAccuracies returns up to consistencyWindow of the most recent
// persisted session accuracies, oldest first.
func (r *CompetencyRecord) recentAccuracies() []float64 {
	hist := r.History
	if len(hist) > consistencyWindow {
		hist = hist[len(hist)-consistencyWindow:]
	}
	accs := make([]float64, 0, len(hist))
	for _, sr := range hist {
		accs = append(accs, sr.RawAccuracy)
	}
	return accs
}
