package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/valvo/ent"
	"github.com/abhisek/valvo/ent/trackrecord"
	entschema "github.com/abhisek/valvo/ent/schema"
	"github.com/abhisek/valvo/internal/proficiency"
)

// trackRepo implements proficiency.Repo using the ent client.
type trackRepo struct {
	client *ent.Client
}

func (r *trackRepo) LoadTrack(ctx context.Context, trackKey string) (*proficiency.CompetencyRecord, error) {
	row, err := r.client.TrackRecord.Query().
		Where(trackrecord.TrackKey(trackKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query track %q: %w", trackKey, err)
	}
	return entTrackToRecord(row), nil
}

func (r *trackRepo) SaveTrack(ctx context.Context, rec *proficiency.CompetencyRecord) error {
	history := historyToData(rec.History)
	notes := rec.NotesCoveredSorted()

	existing, err := r.client.TrackRecord.Query().
		Where(trackrecord.TrackKey(rec.TrackKey)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query track %q: %w", rec.TrackKey, err)
	}

	if existing == nil {
		_, err = r.client.TrackRecord.Create().
			SetTrackKey(rec.TrackKey).
			SetCompetency(rec.Competency).
			SetLastPractice(rec.LastPractice).
			SetSessionHistory(history).
			SetNotesCovered(notes).
			SetCreatedAt(rec.CreatedAt).
			Save(ctx)
	} else {
		_, err = existing.Update().
			SetCompetency(rec.Competency).
			SetLastPractice(rec.LastPractice).
			SetSessionHistory(history).
			SetNotesCovered(notes).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save track %q: %w", rec.TrackKey, err)
	}
	return nil
}

// entTrackToRecord converts a persisted row back to the domain record.
// Unparseable entries are skipped rather than failing the load: a damaged
// row degrades to a thinner history, never a broken session.
func entTrackToRecord(row *ent.TrackRecord) *proficiency.CompetencyRecord {
	rec := &proficiency.CompetencyRecord{
		TrackKey:     row.TrackKey,
		Competency:   row.Competency,
		LastPractice: row.LastPractice,
		NotesCovered: make(map[string]bool, len(row.NotesCovered)),
		CreatedAt:    row.CreatedAt,
	}
	for _, n := range row.NotesCovered {
		rec.NotesCovered[n] = true
	}
	for _, sd := range row.SessionHistory {
		ts, err := time.Parse(time.RFC3339, sd.Timestamp)
		if err != nil {
			continue
		}
		rec.History = append(rec.History, proficiency.SessionRecord{
			Timestamp:           ts,
			RawAccuracy:         sd.RawAccuracy,
			RawPerformance:      sd.RawPerformance,
			WeightedPerformance: sd.WeightedPerformance,
			Difficulty:          sd.Difficulty,
			CompetencyAfter:     sd.CompetencyAfter,
			Mode:                sd.Mode,
		})
	}
	return rec
}

func historyToData(history []proficiency.SessionRecord) []entschema.SessionRecordData {
	out := make([]entschema.SessionRecordData, 0, len(history))
	for _, sr := range history {
		out = append(out, entschema.SessionRecordData{
			Timestamp:           sr.Timestamp.Format(time.RFC3339),
			RawAccuracy:         sr.RawAccuracy,
			RawPerformance:      sr.RawPerformance,
			WeightedPerformance: sr.WeightedPerformance,
			Difficulty:          sr.Difficulty,
			CompetencyAfter:     sr.CompetencyAfter,
			Mode:                sr.Mode,
		})
	}
	return out
}

// AllTrackRecords exports every persisted track, for snapshots and the
// stats views.
func (s *Store) AllTrackRecords(ctx context.Context) ([]TrackRecordData, error) {
	rows, err := s.client.TrackRecord.Query().
		Order(ent.Asc(trackrecord.FieldTrackKey)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all tracks: %w", err)
	}

	out := make([]TrackRecordData, 0, len(rows))
	for _, row := range rows {
		td := TrackRecordData{
			TrackKey:              row.TrackKey,
			Competency:            row.Competency,
			LastPracticeTimestamp: row.LastPractice.Format(time.RFC3339),
			NotesCovered:          row.NotesCovered,
			CreatedAt:             row.CreatedAt.Format(time.RFC3339),
		}
		for _, sd := range row.SessionHistory {
			td.SessionHistory = append(td.SessionHistory, SessionRecordJSON(sd))
		}
		out = append(out, td)
	}
	return out, nil
}

// DeleteAllTracks wipes every track record. Reset snapshots the state
// first so this is recoverable.
func (s *Store) DeleteAllTracks(ctx context.Context) (int, error) {
	n, err := s.client.TrackRecord.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete tracks: %w", err)
	}
	return n, nil
}
