package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecordData is the serialized form of one session history entry.
type SessionRecordData struct {
	Timestamp           string  `json:"timestamp"`
	RawAccuracy         float64 `json:"raw_accuracy"`
	RawPerformance      float64 `json:"raw_performance"`
	WeightedPerformance float64 `json:"weighted_performance"`
	Difficulty          string  `json:"difficulty"`
	CompetencyAfter     float64 `json:"competency_after"`
	Mode                string  `json:"mode"`
}

// TrackRecord is the persisted competency state for one track. It is
// read-modify-written as a unit: a session update replaces the whole row.
type TrackRecord struct {
	ent.Schema
}

func (TrackRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("track_key").
			Unique().
			NotEmpty().
			Comment("Composite (player, instrument pitch, written key) identifier"),
		field.Float("competency").
			Comment("Normalized proficiency in [0,1]"),
		field.Time("last_practice").
			Comment("Instant of the most recent recorded session"),
		field.JSON("session_history", []SessionRecordData{}).
			Optional().
			Comment("Most recent sessions, capped at 30, oldest first"),
		field.JSON("notes_covered", []string{}).
			Optional().
			Comment("Distinct written notes ever practiced on this track"),
		field.Time("created_at").
			Default(time.Now).
			Comment("Instant of first record creation"),
	}
}

func (TrackRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("track_key"),
	}
}
