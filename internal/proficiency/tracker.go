package proficiency

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// Repo is the persistence collaborator for competency records. A missing
// record is reported as (nil, nil), never as an error.
type Repo interface {
	// LoadTrack returns the persisted record for trackKey, or nil if the
	// track has never been saved.
	LoadTrack(ctx context.Context, trackKey string) (*CompetencyRecord, error)

	// SaveTrack persists the record as a unit.
	SaveTrack(ctx context.Context, rec *CompetencyRecord) error
}

// ErrNegativeCount reports a caller contract violation: answer counts can
// never be negative. Zero totals are fine and handled as zero accuracy.
var ErrNegativeCount = errors.New("proficiency: negative answer count")

// consistencyScale is the accuracy standard deviation at which the
// consistency score bottoms out at 0.
const consistencyScale = 0.3

// TrackerConfig fixes the behavioral parameters of a Tracker. All of them
// are explicit so every computation stays a pure function of its inputs.
type TrackerConfig struct {
	// Alpha is the EMA learning rate used when blending new evidence.
	Alpha float64
	// DecayRate is the per-day exponential decay rate.
	DecayRate float64
	// Profile selects the evaluator weighting.
	Profile Profile
	// TotalNotes is the fixed coverage denominator: the size of the note
	// vocabulary for the instrument/key space.
	TotalNotes int
}

// ConfigForTier returns the tracker configuration for a player tier.
// The mode decides whether the evaluator may lean on coverage and
// consistency (learning) or each session must stand alone (marathon,
// speed at the advanced tier).
func ConfigForTier(tier PlayerTier, learningMode bool, totalNotes int) TrackerConfig {
	if tier == TierBeginner {
		return TrackerConfig{
			Alpha:      AlphaBeginner,
			DecayRate:  DecayRateLenient,
			Profile:    ProfileLenient,
			TotalNotes: totalNotes,
		}
	}
	cfg := TrackerConfig{
		Alpha:      AlphaMastery,
		DecayRate:  DecayRateStandard,
		Profile:    ProfileMastery,
		TotalNotes: totalNotes,
	}
	if learningMode {
		cfg.Profile = ProfileStandard
	}
	return cfg
}

// SessionInput is the finalized telemetry of one completed game session.
type SessionInput struct {
	CorrectCount   int
	TotalCount     int
	AvgSpeedSecs   float64
	NotesPracticed []string
	Difficulty     Difficulty
	Mode           string
}

// SessionResult is what RecordSession hands back for immediate display.
type SessionResult struct {
	Competency          float64
	DisplayScore        int
	Band                Band
	WeightedPerformance float64
}

// TrackStatus is the read-only projection returned by CurrentCompetency.
type TrackStatus struct {
	Competency            float64
	DisplayScore          int
	Band                  Band
	DaysSinceLastPractice float64
	TotalSessions         int
	NotesCoveredCount     int
}

// Tracker owns the competency lifecycle for opaque track keys: load prior
// state, decay it for elapsed time, blend in the new session's weighted
// performance, persist, and report the banded display value.
type Tracker struct {
	repo Repo
	cfg  TrackerConfig
	now  func() time.Time
}

// NewTracker creates a tracker over the given persistence collaborator.
func NewTracker(repo Repo, cfg TrackerConfig) *Tracker {
	return &Tracker{repo: repo, cfg: cfg, now: time.Now}
}

// WithClock overrides the tracker's clock. Tests use this to make decay
// deterministic.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// RecordSession applies one completed session to the track's competency.
//
// If persisting the updated record fails, the computed result is still
// returned alongside the error so a transient storage hiccup never blocks
// the player's feedback loop; the caller decides whether to retry.
func (t *Tracker) RecordSession(ctx context.Context, trackKey string, in SessionInput) (*SessionResult, error) {
	if in.CorrectCount < 0 || in.TotalCount < 0 {
		return nil, fmt.Errorf("%w: correct=%d total=%d", ErrNegativeCount, in.CorrectCount, in.TotalCount)
	}

	now := t.now()
	rec, err := t.loadOrSeed(ctx, trackKey, now)
	if err != nil {
		return nil, err
	}

	rawAccuracy := 0.0
	if in.TotalCount > 0 {
		rawAccuracy = clampUnit(float64(in.CorrectCount) / float64(in.TotalCount))
	}

	rec.CoverNotes(in.NotesPracticed)

	metrics := Metrics{
		Accuracy:     rawAccuracy,
		AvgSpeedSecs: clampNonNeg(in.AvgSpeedSecs),
		Coverage:     rec.Coverage(t.cfg.TotalNotes),
		Consistency:  consistency(rec.recentAccuracies(), rawAccuracy),
	}

	rawPerformance := Evaluate(metrics, t.cfg.Profile)
	weighted := WeightedPerformance(rawPerformance, in.Difficulty)

	days := elapsedDays(rec.LastPractice, now)
	rec.Competency = DecayThenSmooth(rec.Competency, weighted, days, t.cfg.DecayRate, t.cfg.Alpha)
	rec.LastPractice = now

	rec.AppendSession(SessionRecord{
		Timestamp:           now,
		RawAccuracy:         rawAccuracy,
		RawPerformance:      rawPerformance,
		WeightedPerformance: weighted,
		Difficulty:          in.Difficulty.String(),
		CompetencyAfter:     rec.Competency,
		Mode:                in.Mode,
	})

	result := &SessionResult{
		Competency:          rec.Competency,
		DisplayScore:        displayScore(rec.Competency),
		Band:                BandOf(rec.Competency),
		WeightedPerformance: weighted,
	}

	if err := t.repo.SaveTrack(ctx, rec); err != nil {
		return result, fmt.Errorf("persist track %q: %w", trackKey, err)
	}
	return result, nil
}

// CurrentCompetency reports what the score would show right now, applying
// decay for display without mutating or persisting anything. Viewing
// progress never counts as practice.
func (t *Tracker) CurrentCompetency(ctx context.Context, trackKey string) (*TrackStatus, error) {
	rec, err := t.repo.LoadTrack(ctx, trackKey)
	if err != nil {
		return nil, fmt.Errorf("load track %q: %w", trackKey, err)
	}
	now := t.now()
	if rec == nil {
		rec = NewCompetencyRecord(trackKey, now)
	}

	days := elapsedDays(rec.LastPractice, now)
	decayed := Decay(rec.Competency, days, t.cfg.DecayRate)

	return &TrackStatus{
		Competency:            decayed,
		DisplayScore:          displayScore(decayed),
		Band:                  BandOf(decayed),
		DaysSinceLastPractice: math.Max(0, days),
		TotalSessions:         len(rec.History),
		NotesCoveredCount:     len(rec.NotesCovered),
	}, nil
}

// loadOrSeed loads the persisted record, seeding a fresh one when the track
// is new. A missing or unreadable record is a new track, not an error.
func (t *Tracker) loadOrSeed(ctx context.Context, trackKey string, now time.Time) (*CompetencyRecord, error) {
	rec, err := t.repo.LoadTrack(ctx, trackKey)
	if err != nil {
		return nil, fmt.Errorf("load track %q: %w", trackKey, err)
	}
	if rec == nil {
		rec = NewCompetencyRecord(trackKey, now)
	}
	if rec.NotesCovered == nil {
		rec.NotesCovered = make(map[string]bool)
	}
	rec.Competency = clampUnit(rec.Competency)
	return rec, nil
}

// consistency computes the stability score from recent session accuracies
// plus the current one: 1 minus the scaled standard deviation, floored at
// 0. Below two samples it is not yet measurable and stays neutral.
func consistency(recent []float64, current float64) float64 {
	samples := append(append([]float64{}, recent...), current)
	if len(samples) < 2 {
		return NeutralConsistency
	}

	mean := 0.0
	for _, s := range samples {
		mean += s
	}
	mean /= float64(len(samples))

	variance := 0.0
	for _, s := range samples {
		d := s - mean
		variance += d * d
	}
	variance /= float64(len(samples))

	return math.Max(0, 1-math.Sqrt(variance)/consistencyScale)
}

// elapsedDays converts the gap between two instants into fractional days.
func elapsedDays(from, to time.Time) float64 {
	if from.IsZero() {
		return 0
	}
	return to.Sub(from).Hours() / 24
}

// displayScore converts internal competency to the 0-100 display scale.
func displayScore(competency float64) int {
	return int(math.Round(clampUnit(competency) * 100))
}
