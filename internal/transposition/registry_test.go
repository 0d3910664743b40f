package transposition

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/valvo/internal/fingering"
	"github.com/abhisek/valvo/internal/proficiency"
)

// memRepo is an in-memory proficiency.Repo for registry tests.
type memRepo struct {
	recs map[string]*proficiency.CompetencyRecord
}

func newMemRepo() *memRepo {
	return &memRepo{recs: make(map[string]*proficiency.CompetencyRecord)}
}

func (r *memRepo) LoadTrack(_ context.Context, trackKey string) (*proficiency.CompetencyRecord, error) {
	rec, ok := r.recs[trackKey]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *memRepo) SaveTrack(_ context.Context, rec *proficiency.CompetencyRecord) error {
	cp := *rec
	r.recs[rec.TrackKey] = &cp
	return nil
}

func newTestRegistry(repo proficiency.Repo) *Registry {
	cfg := proficiency.ConfigForTier(proficiency.TierAdvanced, true, 31)
	tracker := proficiency.NewTracker(repo, cfg).WithClock(func() time.Time {
		return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	})
	return NewRegistry(tracker, "player-1")
}

func TestRegistry_TrackKeyComposite(t *testing.T) {
	r := newTestRegistry(newMemRepo())
	if got := r.TrackKey(fingering.PitchBb, fingering.PitchC); got != "player-1/Bb/C" {
		t.Errorf("TrackKey = %q, want player-1/Bb/C", got)
	}
}

func TestRegistry_CombinationsAreIndependent(t *testing.T) {
	repo := newMemRepo()
	r := newTestRegistry(repo)
	ctx := context.Background()

	in := proficiency.SessionInput{CorrectCount: 19, TotalCount: 20, AvgSpeedSecs: 1, Difficulty: proficiency.DifficultyVirtuoso, Mode: "learning"}
	for i := 0; i < 5; i++ {
		if _, err := r.RecordSession(ctx, fingering.PitchBb, fingering.PitchC, in); err != nil {
			t.Fatal(err)
		}
	}

	practiced, err := r.Current(ctx, fingering.PitchBb, fingering.PitchC)
	if err != nil {
		t.Fatal(err)
	}
	untouched, err := r.Current(ctx, fingering.PitchBb, fingering.PitchEb)
	if err != nil {
		t.Fatal(err)
	}

	if practiced.Competency <= proficiency.SeedCompetency {
		t.Errorf("practiced track stuck at %f", practiced.Competency)
	}
	if untouched.Competency != proficiency.SeedCompetency {
		t.Errorf("untouched track moved to %f, want seed", untouched.Competency)
	}
	if untouched.TotalSessions != 0 {
		t.Errorf("untouched track has %d sessions", untouched.TotalSessions)
	}
}

func TestRegistry_AllTracksDiagonalIsNil(t *testing.T) {
	r := newTestRegistry(newMemRepo())
	tracks, err := r.AllTracks(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	pitches := fingering.AllPitches()
	if len(tracks) != len(pitches) {
		t.Fatalf("rows = %d, want %d", len(tracks), len(pitches))
	}
	for _, instrument := range pitches {
		row, ok := tracks[instrument]
		if !ok {
			t.Fatalf("missing row for %s", instrument)
		}
		for _, written := range pitches {
			cell, ok := row[written]
			if !ok {
				t.Fatalf("missing cell %s/%s", instrument, written)
			}
			if instrument == written && cell != nil {
				t.Errorf("diagonal %s/%s should be nil", instrument, written)
			}
			if instrument != written && cell == nil {
				t.Errorf("off-diagonal %s/%s should have a snapshot", instrument, written)
			}
		}
	}
}

func TestRegistry_DefaultTrackIsNativeCombination(t *testing.T) {
	repo := newMemRepo()
	r := newTestRegistry(repo)
	ctx := context.Background()

	in := proficiency.SessionInput{CorrectCount: 18, TotalCount: 20, AvgSpeedSecs: 1, Difficulty: proficiency.DifficultyProficient, Mode: "learning"}
	if _, err := r.RecordSession(ctx, fingering.PitchBb, fingering.PitchBb, in); err != nil {
		t.Fatal(err)
	}

	headline, err := r.DefaultTrack(ctx, fingering.PitchBb)
	if err != nil {
		t.Fatal(err)
	}
	direct, err := r.Current(ctx, fingering.PitchBb, fingering.PitchBb)
	if err != nil {
		t.Fatal(err)
	}
	if *headline != *direct {
		t.Errorf("DefaultTrack %+v != native combination %+v", headline, direct)
	}
	if headline.TotalSessions != 1 {
		t.Errorf("TotalSessions = %d, want 1", headline.TotalSessions)
	}
}

func TestRegistry_RejectsUnknownPitch(t *testing.T) {
	r := newTestRegistry(newMemRepo())
	_, err := r.RecordSession(context.Background(), fingering.Pitch("H"), fingering.PitchC, proficiency.SessionInput{})
	if !errors.Is(err, ErrUnknownPitch) {
		t.Errorf("err = %v, want ErrUnknownPitch", err)
	}
	_, err = r.Current(context.Background(), fingering.PitchC, fingering.Pitch("Z"))
	if !errors.Is(err, ErrUnknownPitch) {
		t.Errorf("err = %v, want ErrUnknownPitch", err)
	}
}
