package proficiency

import (
	"context"
	"errors"
	"testing"
	"time"
)

// memRepo is an in-memory Repo for tracker tests.
type memRepo struct {
	recs     map[string]*CompetencyRecord
	saves    int
	failSave bool
}

func newMemRepo() *memRepo {
	return &memRepo{recs: make(map[string]*CompetencyRecord)}
}

func (r *memRepo) LoadTrack(_ context.Context, trackKey string) (*CompetencyRecord, error) {
	rec, ok := r.recs[trackKey]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *memRepo) SaveTrack(_ context.Context, rec *CompetencyRecord) error {
	if r.failSave {
		return errors.New("disk full")
	}
	r.saves++
	cp := *rec
	r.recs[rec.TrackKey] = &cp
	return nil
}

var testBase = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

func newTestTracker(repo Repo, tier PlayerTier, at *time.Time) *Tracker {
	cfg := ConfigForTier(tier, true, 34)
	return NewTracker(repo, cfg).WithClock(func() time.Time { return *at })
}

func TestRecordSession_SeedsNewTrack(t *testing.T) {
	repo := newMemRepo()
	now := testBase
	tr := newTestTracker(repo, TierBeginner, &now)

	res, err := tr.RecordSession(context.Background(), "p1/Bb/C", SessionInput{
		CorrectCount: 10,
		TotalCount:   20,
		AvgSpeedSecs: 5.0,
		Difficulty:   DifficultyNovice,
		Mode:         "learning",
	})
	if err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	// Lenient raw: (0.7*0.5 + 0.1*0 + 0.15*0 + 0.05*0.5) * 1.3 = 0.4875.
	// Novice weighting: 0.4875/4 = 0.121875.
	// Seed blend at alpha 0.4: 0.2*0.6 + 0.121875*0.4 = 0.16875.
	if !almostEqual(res.Competency, 0.16875) {
		t.Errorf("Competency = %f, want 0.16875", res.Competency)
	}
	if res.DisplayScore != 17 {
		t.Errorf("DisplayScore = %d, want 17", res.DisplayScore)
	}
	if res.Band != BandEarlyLearning {
		t.Errorf("Band = %s, want Early Learning", res.Band.Name())
	}
	if !almostEqual(res.WeightedPerformance, 0.121875) {
		t.Errorf("WeightedPerformance = %f, want 0.121875", res.WeightedPerformance)
	}
}

func TestRecordSession_ZeroTotalIsZeroAccuracy(t *testing.T) {
	repo := newMemRepo()
	now := testBase
	tr := newTestTracker(repo, TierAdvanced, &now)

	if _, err := tr.RecordSession(context.Background(), "p1/Bb/C", SessionInput{
		TotalCount: 0,
		Mode:       "learning",
	}); err != nil {
		t.Fatalf("zero total must not error: %v", err)
	}
	rec := repo.recs["p1/Bb/C"]
	if rec == nil || len(rec.History) != 1 {
		t.Fatal("session not persisted")
	}
	if rec.History[0].RawAccuracy != 0 {
		t.Errorf("RawAccuracy = %f, want 0", rec.History[0].RawAccuracy)
	}
}

func TestRecordSession_NegativeCountsRejected(t *testing.T) {
	repo := newMemRepo()
	now := testBase
	tr := newTestTracker(repo, TierAdvanced, &now)

	_, err := tr.RecordSession(context.Background(), "p1/Bb/C", SessionInput{CorrectCount: -1, TotalCount: 5})
	if !errors.Is(err, ErrNegativeCount) {
		t.Errorf("err = %v, want ErrNegativeCount", err)
	}
	if repo.saves != 0 {
		t.Error("nothing should be persisted on contract violation")
	}
}

func TestRecordSession_NotesCoveredOnlyGrows(t *testing.T) {
	repo := newMemRepo()
	now := testBase
	tr := newTestTracker(repo, TierBeginner, &now)
	ctx := context.Background()

	sessions := [][]string{
		{"C4", "D4", "E4"},
		{"C4", "D4"}, // repeats must not shrink the set
		{"F4"},
		{},
	}
	wantSizes := []int{3, 3, 4, 4}

	for i, notes := range sessions {
		now = now.Add(time.Hour)
		if _, err := tr.RecordSession(ctx, "p1/Bb/C", SessionInput{
			CorrectCount:   1,
			TotalCount:     2,
			NotesPracticed: notes,
			Mode:           "learning",
		}); err != nil {
			t.Fatalf("session %d: %v", i, err)
		}
		if got := len(repo.recs["p1/Bb/C"].NotesCovered); got != wantSizes[i] {
			t.Errorf("after session %d: covered = %d, want %d", i, got, wantSizes[i])
		}
	}
}

func TestRecordSession_HistoryCappedAtThirty(t *testing.T) {
	repo := newMemRepo()
	now := testBase
	tr := newTestTracker(repo, TierAdvanced, &now)
	ctx := context.Background()

	for i := 0; i < HistoryCap+5; i++ {
		now = now.Add(time.Hour)
		if _, err := tr.RecordSession(ctx, "p1/Bb/C", SessionInput{
			CorrectCount: i,
			TotalCount:   HistoryCap + 5,
			Mode:         "learning",
		}); err != nil {
			t.Fatalf("session %d: %v", i, err)
		}
	}

	hist := repo.recs["p1/Bb/C"].History
	if len(hist) != HistoryCap {
		t.Fatalf("history length = %d, want %d", len(hist), HistoryCap)
	}
	// Most recent 30 in chronological order.
	for i := 1; i < len(hist); i++ {
		if !hist[i].Timestamp.After(hist[i-1].Timestamp) {
			t.Fatalf("history out of order at %d", i)
		}
	}
	wantLastAcc := float64(HistoryCap+4) / float64(HistoryCap+5)
	if !almostEqual(hist[len(hist)-1].RawAccuracy, wantLastAcc) {
		t.Errorf("newest accuracy = %f, want %f", hist[len(hist)-1].RawAccuracy, wantLastAcc)
	}
}

func TestRecordSession_DecayAppliedBeforeBlend(t *testing.T) {
	ctx := context.Background()
	in := SessionInput{CorrectCount: 18, TotalCount: 20, AvgSpeedSecs: 1.0, Difficulty: DifficultyVirtuoso, Mode: "speed"}

	run := func(gap time.Duration) float64 {
		repo := newMemRepo()
		now := testBase
		tr := newTestTracker(repo, TierAdvanced, &now)
		if _, err := tr.RecordSession(ctx, "k", in); err != nil {
			t.Fatal(err)
		}
		now = now.Add(gap)
		res, err := tr.RecordSession(ctx, "k", in)
		if err != nil {
			t.Fatal(err)
		}
		return res.Competency
	}

	rested := run(time.Hour)
	absent := run(90 * 24 * time.Hour)
	if absent >= rested {
		t.Errorf("90-day absence competency %f should be below %f", absent, rested)
	}
}

func TestCurrentCompetency_DoesNotMutate(t *testing.T) {
	repo := newMemRepo()
	now := testBase
	tr := newTestTracker(repo, TierAdvanced, &now)
	ctx := context.Background()

	if _, err := tr.RecordSession(ctx, "k", SessionInput{CorrectCount: 9, TotalCount: 10, AvgSpeedSecs: 1, Mode: "learning"}); err != nil {
		t.Fatal(err)
	}
	savesAfterRecord := repo.saves

	now = now.Add(10 * 24 * time.Hour)
	first, err := tr.CurrentCompetency(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	second, err := tr.CurrentCompetency(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}

	if repo.saves != savesAfterRecord {
		t.Error("CurrentCompetency must not persist anything")
	}
	if *first != *second {
		t.Errorf("back-to-back reads differ: %+v vs %+v", first, second)
	}
	if !almostEqual(first.DaysSinceLastPractice, 10) {
		t.Errorf("DaysSinceLastPractice = %f, want 10", first.DaysSinceLastPractice)
	}
}

func TestCurrentCompetency_AppliesDecayForDisplay(t *testing.T) {
	repo := newMemRepo()
	now := testBase
	tr := newTestTracker(repo, TierAdvanced, &now)
	ctx := context.Background()

	res, err := tr.RecordSession(ctx, "k", SessionInput{CorrectCount: 10, TotalCount: 10, AvgSpeedSecs: 0.5, Difficulty: DifficultyVirtuoso, Mode: "speed"})
	if err != nil {
		t.Fatal(err)
	}

	now = now.Add(60 * 24 * time.Hour)
	status, err := tr.CurrentCompetency(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	want := Decay(res.Competency, 60, DecayRateStandard)
	if !almostEqual(status.Competency, want) {
		t.Errorf("decayed competency = %f, want %f", status.Competency, want)
	}
	// The persisted value is untouched.
	if !almostEqual(repo.recs["k"].Competency, res.Competency) {
		t.Error("persisted competency must not change on read")
	}
}

func TestCurrentCompetency_MissingTrackSeedsDefaults(t *testing.T) {
	repo := newMemRepo()
	now := testBase
	tr := newTestTracker(repo, TierBeginner, &now)

	status, err := tr.CurrentCompetency(context.Background(), "never-practiced")
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(status.Competency, SeedCompetency) {
		t.Errorf("Competency = %f, want seed %f", status.Competency, SeedCompetency)
	}
	if status.DisplayScore != 20 {
		t.Errorf("DisplayScore = %d, want 20", status.DisplayScore)
	}
	if status.TotalSessions != 0 || status.NotesCoveredCount != 0 {
		t.Errorf("fresh track should have no sessions or notes: %+v", status)
	}
	if len(repo.recs) != 0 {
		t.Error("read of a missing track must not persist a record")
	}
}

func TestRecordSession_PersistFailureStillReturnsResult(t *testing.T) {
	repo := newMemRepo()
	repo.failSave = true
	now := testBase
	tr := newTestTracker(repo, TierAdvanced, &now)

	res, err := tr.RecordSession(context.Background(), "k", SessionInput{CorrectCount: 5, TotalCount: 10, Mode: "learning"})
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if res == nil {
		t.Fatal("computed result must be returned despite persistence failure")
	}
	if res.Competency <= 0 || res.Competency > 1 {
		t.Errorf("Competency = %f, out of range", res.Competency)
	}
}

func TestConsistency_NeutralBelowTwoSamples(t *testing.T) {
	if got := consistency(nil, 0.8); got != NeutralConsistency {
		t.Errorf("consistency = %f, want neutral %f", got, NeutralConsistency)
	}
}

func TestConsistency_StableHistoryScoresHigh(t *testing.T) {
	stable := consistency([]float64{0.8, 0.8, 0.8}, 0.8)
	if !almostEqual(stable, 1.0) {
		t.Errorf("consistency = %f, want 1.0", stable)
	}
	// Samples [1.0, 0.5]: stddev 0.25, consistency = 1 - 0.25/0.3 ≈ 0.1667.
	erratic := consistency([]float64{1.0}, 0.5)
	if !almostEqual(erratic, 0.166667) {
		t.Errorf("consistency = %f, want 0.166667", erratic)
	}
}

func TestConsistency_FloorsAtZero(t *testing.T) {
	if got := consistency([]float64{1.0, 0.0, 1.0}, 0.0); got != 0 {
		t.Errorf("consistency = %f, want 0", got)
	}
}
