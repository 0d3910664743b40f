// Code generated by ent, DO NOT EDIT.

package proficiencyevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/valvo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TrackKey applies equality check predicate on the "track_key" field. It's identical to TrackKeyEQ.
func TrackKey(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldTrackKey, v))
}

// RawPerformance applies equality check predicate on the "raw_performance" field. It's identical to RawPerformanceEQ.
func RawPerformance(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldRawPerformance, v))
}

// WeightedPerformance applies equality check predicate on the "weighted_performance" field. It's identical to WeightedPerformanceEQ.
func WeightedPerformance(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldWeightedPerformance, v))
}

// CompetencyBefore applies equality check predicate on the "competency_before" field. It's identical to CompetencyBeforeEQ.
func CompetencyBefore(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldCompetencyBefore, v))
}

// CompetencyAfter applies equality check predicate on the "competency_after" field. It's identical to CompetencyAfterEQ.
func CompetencyAfter(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldCompetencyAfter, v))
}

// Band applies equality check predicate on the "band" field. It's identical to BandEQ.
func Band(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldBand, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TrackKeyEQ applies the EQ predicate on the "track_key" field.
func TrackKeyEQ(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldTrackKey, v))
}

// TrackKeyNEQ applies the NEQ predicate on the "track_key" field.
func TrackKeyNEQ(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldTrackKey, v))
}

// TrackKeyIn applies the In predicate on the "track_key" field.
func TrackKeyIn(vs ...string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldTrackKey, vs...))
}

// TrackKeyNotIn applies the NotIn predicate on the "track_key" field.
func TrackKeyNotIn(vs ...string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldTrackKey, vs...))
}

// TrackKeyGT applies the GT predicate on the "track_key" field.
func TrackKeyGT(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldTrackKey, v))
}

// TrackKeyGTE applies the GTE predicate on the "track_key" field.
func TrackKeyGTE(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldTrackKey, v))
}

// TrackKeyLT applies the LT predicate on the "track_key" field.
func TrackKeyLT(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldTrackKey, v))
}

// TrackKeyLTE applies the LTE predicate on the "track_key" field.
func TrackKeyLTE(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldTrackKey, v))
}

// TrackKeyContains applies the Contains predicate on the "track_key" field.
func TrackKeyContains(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldContains(FieldTrackKey, v))
}

// TrackKeyHasPrefix applies the HasPrefix predicate on the "track_key" field.
func TrackKeyHasPrefix(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldHasPrefix(FieldTrackKey, v))
}

// TrackKeyHasSuffix applies the HasSuffix predicate on the "track_key" field.
func TrackKeyHasSuffix(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldHasSuffix(FieldTrackKey, v))
}

// TrackKeyEqualFold applies the EqualFold predicate on the "track_key" field.
func TrackKeyEqualFold(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEqualFold(FieldTrackKey, v))
}

// TrackKeyContainsFold applies the ContainsFold predicate on the "track_key" field.
func TrackKeyContainsFold(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldContainsFold(FieldTrackKey, v))
}

// RawPerformanceEQ applies the EQ predicate on the "raw_performance" field.
func RawPerformanceEQ(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldRawPerformance, v))
}

// RawPerformanceNEQ applies the NEQ predicate on the "raw_performance" field.
func RawPerformanceNEQ(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldRawPerformance, v))
}

// RawPerformanceIn applies the In predicate on the "raw_performance" field.
func RawPerformanceIn(vs ...float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldRawPerformance, vs...))
}

// RawPerformanceNotIn applies the NotIn predicate on the "raw_performance" field.
func RawPerformanceNotIn(vs ...float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldRawPerformance, vs...))
}

// RawPerformanceGT applies the GT predicate on the "raw_performance" field.
func RawPerformanceGT(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldRawPerformance, v))
}

// RawPerformanceGTE applies the GTE predicate on the "raw_performance" field.
func RawPerformanceGTE(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldRawPerformance, v))
}

// RawPerformanceLT applies the LT predicate on the "raw_performance" field.
func RawPerformanceLT(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldRawPerformance, v))
}

// RawPerformanceLTE applies the LTE predicate on the "raw_performance" field.
func RawPerformanceLTE(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldRawPerformance, v))
}

// WeightedPerformanceEQ applies the EQ predicate on the "weighted_performance" field.
func WeightedPerformanceEQ(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldWeightedPerformance, v))
}

// WeightedPerformanceNEQ applies the NEQ predicate on the "weighted_performance" field.
func WeightedPerformanceNEQ(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldWeightedPerformance, v))
}

// WeightedPerformanceIn applies the In predicate on the "weighted_performance" field.
func WeightedPerformanceIn(vs ...float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldWeightedPerformance, vs...))
}

// WeightedPerformanceNotIn applies the NotIn predicate on the "weighted_performance" field.
func WeightedPerformanceNotIn(vs ...float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldWeightedPerformance, vs...))
}

// WeightedPerformanceGT applies the GT predicate on the "weighted_performance" field.
func WeightedPerformanceGT(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldWeightedPerformance, v))
}

// WeightedPerformanceGTE applies the GTE predicate on the "weighted_performance" field.
func WeightedPerformanceGTE(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldWeightedPerformance, v))
}

// WeightedPerformanceLT applies the LT predicate on the "weighted_performance" field.
func WeightedPerformanceLT(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldWeightedPerformance, v))
}

// WeightedPerformanceLTE applies the LTE predicate on the "weighted_performance" field.
func WeightedPerformanceLTE(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldWeightedPerformance, v))
}

// CompetencyBeforeEQ applies the EQ predicate on the "competency_before" field.
func CompetencyBeforeEQ(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldCompetencyBefore, v))
}

// CompetencyBeforeNEQ applies the NEQ predicate on the "competency_before" field.
func CompetencyBeforeNEQ(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldCompetencyBefore, v))
}

// CompetencyBeforeIn applies the In predicate on the "competency_before" field.
func CompetencyBeforeIn(vs ...float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldCompetencyBefore, vs...))
}

// CompetencyBeforeNotIn applies the NotIn predicate on the "competency_before" field.
func CompetencyBeforeNotIn(vs ...float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldCompetencyBefore, vs...))
}

// CompetencyBeforeGT applies the GT predicate on the "competency_before" field.
func CompetencyBeforeGT(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldCompetencyBefore, v))
}

// CompetencyBeforeGTE applies the GTE predicate on the "competency_before" field.
func CompetencyBeforeGTE(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldCompetencyBefore, v))
}

// CompetencyBeforeLT applies the LT predicate on the "competency_before" field.
func CompetencyBeforeLT(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldCompetencyBefore, v))
}

// CompetencyBeforeLTE applies the LTE predicate on the "competency_before" field.
func CompetencyBeforeLTE(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldCompetencyBefore, v))
}

// CompetencyAfterEQ applies the EQ predicate on the "competency_after" field.
func CompetencyAfterEQ(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldCompetencyAfter, v))
}

// CompetencyAfterNEQ applies the NEQ predicate on the "competency_after" field.
func CompetencyAfterNEQ(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldCompetencyAfter, v))
}

// CompetencyAfterIn applies the In predicate on the "competency_after" field.
func CompetencyAfterIn(vs ...float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldCompetencyAfter, vs...))
}

// CompetencyAfterNotIn applies the NotIn predicate on the "competency_after" field.
func CompetencyAfterNotIn(vs ...float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldCompetencyAfter, vs...))
}

// CompetencyAfterGT applies the GT predicate on the "competency_after" field.
func CompetencyAfterGT(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldCompetencyAfter, v))
}

// CompetencyAfterGTE applies the GTE predicate on the "competency_after" field.
func CompetencyAfterGTE(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldCompetencyAfter, v))
}

// CompetencyAfterLT applies the LT predicate on the "competency_after" field.
func CompetencyAfterLT(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldCompetencyAfter, v))
}

// CompetencyAfterLTE applies the LTE predicate on the "competency_after" field.
func CompetencyAfterLTE(v float64) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldCompetencyAfter, v))
}

// BandEQ applies the EQ predicate on the "band" field.
func BandEQ(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldBand, v))
}

// BandNEQ applies the NEQ predicate on the "band" field.
func BandNEQ(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldBand, v))
}

// BandIn applies the In predicate on the "band" field.
func BandIn(vs ...string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldBand, vs...))
}

// BandNotIn applies the NotIn predicate on the "band" field.
func BandNotIn(vs ...string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldBand, vs...))
}

// BandGT applies the GT predicate on the "band" field.
func BandGT(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldBand, v))
}

// BandGTE applies the GTE predicate on the "band" field.
func BandGTE(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldBand, v))
}

// BandLT applies the LT predicate on the "band" field.
func BandLT(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldBand, v))
}

// BandLTE applies the LTE predicate on the "band" field.
func BandLTE(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldBand, v))
}

// BandContains applies the Contains predicate on the "band" field.
func BandContains(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldContains(FieldBand, v))
}

// BandHasPrefix applies the HasPrefix predicate on the "band" field.
func BandHasPrefix(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldHasPrefix(FieldBand, v))
}

// BandHasSuffix applies the HasSuffix predicate on the "band" field.
func BandHasSuffix(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldHasSuffix(FieldBand, v))
}

// BandEqualFold applies the EqualFold predicate on the "band" field.
func BandEqualFold(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEqualFold(FieldBand, v))
}

// BandContainsFold applies the ContainsFold predicate on the "band" field.
func BandContainsFold(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldContainsFold(FieldBand, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProficiencyEvent) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProficiencyEvent) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProficiencyEvent) predicate.ProficiencyEvent {
	return predicate.ProficiencyEvent(sql.NotPredicates(p))
}
