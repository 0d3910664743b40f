package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/valvo/ent"
	"github.com/abhisek/valvo/ent/answerevent"
	"github.com/abhisek/valvo/ent/sessionevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTrackKey(data.TrackKey).
		SetNote(data.Note).
		SetExpectedFingering(data.ExpectedFingering).
		SetAnsweredFingering(data.AnsweredFingering).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetMode(data.Mode).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetTrackKey(data.TrackKey).
		SetMode(data.Mode).
		SetTier(data.Tier).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendProficiencyEvent(ctx context.Context, data ProficiencyEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ProficiencyEvent.Create().
		SetSequence(seqNum).
		SetTrackKey(data.TrackKey).
		SetRawPerformance(data.RawPerformance).
		SetWeightedPerformance(data.WeightedPerformance).
		SetCompetencyBefore(data.CompetencyBefore).
		SetCompetencyAfter(data.CompetencyAfter).
		SetBand(data.Band)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save proficiency event: %w", err)
	}
	return nil
}

func (r *eventRepo) TrackAccuracy(ctx context.Context, trackKey string) (float64, int, error) {
	total, err := r.client.AnswerEvent.Query().
		Where(answerevent.TrackKey(trackKey)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count answers: %w", err)
	}
	if total == 0 {
		return 0, 0, nil
	}

	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.TrackKey(trackKey), answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct answers: %w", err)
	}

	return float64(correct) / float64(total), total, nil
}

func (r *eventRepo) HardestNotes(ctx context.Context, trackKey string, lastN int) ([]string, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.TrackKey(trackKey), answerevent.Correct(false)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query wrong answers: %w", err)
	}

	misses := make(map[string]int)
	for _, e := range events {
		misses[e.Note]++
	}

	type missCount struct {
		note  string
		count int
	}
	counts := make([]missCount, 0, len(misses))
	for note, count := range misses {
		counts = append(counts, missCount{note, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].note < counts[j].note
	})

	if lastN > 0 && len(counts) > lastN {
		counts = counts[:lastN]
	}
	notes := make([]string, len(counts))
	for i, c := range counts {
		notes[i] = c.note
	}
	return notes, nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummaryRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	out := make([]SessionSummaryRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, SessionSummaryRecord{
			SessionID:       row.SessionID,
			TrackKey:        row.TrackKey,
			Mode:            row.Mode,
			Tier:            row.Tier,
			QuestionsServed: row.QuestionsServed,
			CorrectAnswers:  row.CorrectAnswers,
			DurationSecs:    row.DurationSecs,
			Timestamp:       row.Timestamp,
		})
	}
	return out, nil
}
