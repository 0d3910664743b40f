package store

import (
	"context"
	"time"
)

// AnswerEventData captures a single valve-combination answer.
type AnswerEventData struct {
	SessionID         string
	TrackKey          string
	Note              string
	ExpectedFingering string
	AnsweredFingering string
	Correct           bool
	TimeMs            int
	Mode              string
}

// SessionEventData captures a session lifecycle event (start or end).
type SessionEventData struct {
	SessionID       string
	Action          string // "start" or "end"
	TrackKey        string
	Mode            string
	Tier            string
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// ProficiencyEventData captures one competency update for audit.
type ProficiencyEventData struct {
	TrackKey            string
	RawPerformance      float64
	WeightedPerformance float64
	CompetencyBefore    float64
	CompetencyAfter     float64
	Band                string
	SessionID           string
}

// EventRepo provides append access to domain events plus the aggregate
// queries the stats views need.
type EventRepo interface {
	// AppendAnswerEvent records one answered note.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendProficiencyEvent records a competency update.
	AppendProficiencyEvent(ctx context.Context, data ProficiencyEventData) error

	// TrackAccuracy returns the all-time answer accuracy and answer count
	// for a track.
	TrackAccuracy(ctx context.Context, trackKey string) (float64, int, error)

	// HardestNotes returns the notes with the most wrong answers on a
	// track, most-missed first, limited to lastN.
	HardestNotes(ctx context.Context, trackKey string, lastN int) ([]string, error)

	// RecentSessions returns the most recent completed sessions, newest
	// first, limited to limit.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummaryRecord, error)
}

// SessionSummaryRecord is one completed session as read back from the event
// log for the history view.
type SessionSummaryRecord struct {
	SessionID       string
	TrackKey        string
	Mode            string
	Tier            string
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
	Timestamp       time.Time
}

// TrackRecordData is the serialized form of a full competency record, used
// for snapshots and export. Timestamps are ISO 8601.
type TrackRecordData struct {
	TrackKey              string              `json:"track_key"`
	Competency            float64             `json:"competency"`
	LastPracticeTimestamp string              `json:"lastPracticeTimestamp"`
	SessionHistory        []SessionRecordJSON `json:"sessionHistory"`
	NotesCovered          []string            `json:"notesCovered"`
	CreatedAt             string              `json:"createdAt"`
}

// SessionRecordJSON is one serialized session history entry.
type SessionRecordJSON struct {
	Timestamp           string  `json:"timestamp"`
	RawAccuracy         float64 `json:"raw_accuracy"`
	RawPerformance      float64 `json:"raw_performance"`
	WeightedPerformance float64 `json:"weighted_performance"`
	Difficulty          string  `json:"difficulty"`
	CompetencyAfter     float64 `json:"competency_after"`
	Mode                string  `json:"mode"`
}

// SnapshotData captures the full player state at a point in time.
type SnapshotData struct {
	Version int               `json:"version"`
	Tracks  []TrackRecordData `json:"tracks"`
}

// Snapshot represents a point-in-time capture of player state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages player state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
