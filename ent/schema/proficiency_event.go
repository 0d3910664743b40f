package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProficiencyEvent records a competency update for audit and analytics.
type ProficiencyEvent struct {
	ent.Schema
}

func (ProficiencyEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProficiencyEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("track_key").NotEmpty(),
		field.Float("raw_performance"),
		field.Float("weighted_performance"),
		field.Float("competency_before"),
		field.Float("competency_after"),
		field.String("band").NotEmpty(),
		field.String("session_id").Optional(),
	}
}

func (ProficiencyEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("track_key"),
	}
}
