package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/valvo/internal/proficiency"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestTrackRepo_MissingTrackIsNil(t *testing.T) {
	s := openTestStore(t)
	rec, err := s.TrackRepo().LoadTrack(context.Background(), "nobody/C/Bb")
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if rec != nil {
		t.Fatal("missing track must load as nil, not error")
	}
}

func TestTrackRepo_SaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.TrackRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	rec := proficiency.NewCompetencyRecord("p1/Bb/C", now)
	rec.Competency = 0.37
	rec.CoverNotes([]string{"C4", "D4", "G4"})
	rec.AppendSession(proficiency.SessionRecord{
		Timestamp:           now,
		RawAccuracy:         0.8,
		RawPerformance:      0.6,
		WeightedPerformance: 0.375,
		Difficulty:          "proficient",
		CompetencyAfter:     0.37,
		Mode:                "learning",
	})

	if err := repo.SaveTrack(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := repo.LoadTrack(ctx, "p1/Bb/C")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected record")
	}
	if loaded.Competency != 0.37 {
		t.Errorf("Competency = %f, want 0.37", loaded.Competency)
	}
	if len(loaded.NotesCovered) != 3 {
		t.Errorf("NotesCovered = %d, want 3", len(loaded.NotesCovered))
	}
	if len(loaded.History) != 1 || loaded.History[0].Mode != "learning" {
		t.Errorf("History = %+v", loaded.History)
	}
	if !loaded.LastPractice.Equal(now) {
		t.Errorf("LastPractice = %v, want %v", loaded.LastPractice, now)
	}
}

func TestTrackRepo_SaveOverwritesAsUnit(t *testing.T) {
	s := openTestStore(t)
	repo := s.TrackRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	rec := proficiency.NewCompetencyRecord("p1/Bb/C", now)
	if err := repo.SaveTrack(ctx, rec); err != nil {
		t.Fatal(err)
	}

	rec.Competency = 0.55
	rec.CoverNotes([]string{"A4"})
	if err := repo.SaveTrack(ctx, rec); err != nil {
		t.Fatal(err)
	}

	loaded, err := repo.LoadTrack(ctx, "p1/Bb/C")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Competency != 0.55 || len(loaded.NotesCovered) != 1 {
		t.Errorf("loaded = %+v, want updated row", loaded)
	}

	all, err := s.AllTrackRecords(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("track rows = %d, want 1 (upsert, not append)", len(all))
	}
}

func TestEventRepo_TrackAccuracy(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	answers := []bool{true, true, false, true}
	for i, correct := range answers {
		err := events.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:         "s1",
			TrackKey:          "p1/Bb/Bb",
			Note:              "G4",
			ExpectedFingering: "0",
			AnsweredFingering: "0",
			Correct:           correct,
			TimeMs:            900 + i,
			Mode:              "learning",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	acc, count, err := events.TrackAccuracy(ctx, "p1/Bb/Bb")
	if err != nil {
		t.Fatal(err)
	}
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %f, want 0.75", acc)
	}

	// An untouched track has no answers.
	acc, count, err = events.TrackAccuracy(ctx, "p1/Bb/F")
	if err != nil {
		t.Fatal(err)
	}
	if acc != 0 || count != 0 {
		t.Errorf("empty track accuracy = %f/%d, want 0/0", acc, count)
	}
}

func TestEventRepo_HardestNotes(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	misses := []string{"F#4", "D4", "F#4", "F#4", "D4", "A4"}
	for _, note := range misses {
		err := events.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:         "s1",
			TrackKey:          "k",
			Note:              note,
			ExpectedFingering: "2",
			AnsweredFingering: "1",
			Correct:           false,
			TimeMs:            1200,
			Mode:              "speed",
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	notes, err := events.HardestNotes(ctx, "k", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 2 || notes[0] != "F#4" || notes[1] != "D4" {
		t.Errorf("HardestNotes = %v, want [F#4 D4]", notes)
	}
}

func TestEventRepo_RecentSessions(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	for i, id := range []string{"s1", "s2", "s3"} {
		err := events.AppendSessionEvent(ctx, SessionEventData{
			SessionID: id,
			Action:    "start",
			TrackKey:  "p1/Bb/Bb",
			Mode:      "learning",
			Tier:      "beginner",
		})
		if err != nil {
			t.Fatal(err)
		}
		err = events.AppendSessionEvent(ctx, SessionEventData{
			SessionID:       id,
			Action:          "end",
			TrackKey:        "p1/Bb/Bb",
			Mode:            "learning",
			Tier:            "beginner",
			QuestionsServed: 20,
			CorrectAnswers:  10 + i,
			DurationSecs:    60,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	recent, err := events.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent sessions = %d, want 2", len(recent))
	}
	if recent[0].SessionID != "s3" || recent[1].SessionID != "s2" {
		t.Errorf("order = [%s %s], want newest first [s3 s2]", recent[0].SessionID, recent[1].SessionID)
	}
	if recent[0].CorrectAnswers != 12 {
		t.Errorf("CorrectAnswers = %d, want 12", recent[0].CorrectAnswers)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Tracks: []TrackRecordData{
				{TrackKey: "p1/Bb/C", Competency: 0.4},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("Sequence = %d, want 42", snap.Sequence)
	}
	if len(snap.Data.Tracks) != 1 || snap.Data.Tracks[0].TrackKey != "p1/Bb/C" {
		t.Errorf("Tracks = %+v", snap.Data.Tracks)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if latest == nil || latest.Sequence != 4 {
		t.Errorf("latest after prune = %+v, want sequence 4", latest)
	}
}

func TestSequenceCounter_Monotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	prev := int64(-1)
	for i := 0; i < 10; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if seq <= prev {
			t.Fatalf("sequence not monotonic: %d after %d", seq, prev)
		}
		prev = seq
	}
}
