package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single valve-combination answer within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("track_key").
			NotEmpty().
			Comment("The (player, instrument, written key) track practiced"),
		field.String("note").
			NotEmpty().
			Comment("The written note shown, e.g. F#4"),
		field.String("expected_fingering").
			NotEmpty().
			Comment("The primary valve combination, method-book style (0, 13, 123)"),
		field.String("answered_fingering").
			NotEmpty().
			Comment("The combination the player pressed, or empty-on-timeout marker"),
		field.Bool("correct").
			Comment("Whether the combination matched any accepted fingering"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
		field.String("mode").
			NotEmpty().
			Comment("learning, marathon, or speed"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("track_key"),
		index.Fields("correct"),
	}
}
