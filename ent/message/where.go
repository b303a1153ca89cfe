// Code generated by ent, DO NOT EDIT.

package message

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conclave-dev/conclave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSessionID, v))
}

// FromPersona applies equality check predicate on the "from_persona" field. It's identical to FromPersonaEQ.
func FromPersona(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldFromPersona, v))
}

// ToPersona applies equality check predicate on the "to_persona" field. It's identical to ToPersonaEQ.
func ToPersona(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldToPersona, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// InternalReasoning applies equality check predicate on the "internal_reasoning" field. It's identical to InternalReasoningEQ.
func InternalReasoning(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldInternalReasoning, v))
}

// DelegateToPersona applies equality check predicate on the "delegate_to_persona" field. It's identical to DelegateToPersonaEQ.
func DelegateToPersona(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldDelegateToPersona, v))
}

// DelegationContext applies equality check predicate on the "delegation_context" field. It's identical to DelegationContextEQ.
func DelegationContext(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldDelegationContext, v))
}

// IsStuck applies equality check predicate on the "is_stuck" field. It's identical to IsStuckEQ.
func IsStuck(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIsStuck, v))
}

// RawResponse applies equality check predicate on the "raw_response" field. It's identical to RawResponseEQ.
func RawResponse(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldRawResponse, v))
}

// ParentMessageID applies equality check predicate on the "parent_message_id" field. It's identical to ParentMessageIDEQ.
func ParentMessageID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldParentMessageID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldSessionID, v))
}

// FromPersonaEQ applies the EQ predicate on the "from_persona" field.
func FromPersonaEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldFromPersona, v))
}

// FromPersonaNEQ applies the NEQ predicate on the "from_persona" field.
func FromPersonaNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldFromPersona, v))
}

// FromPersonaIn applies the In predicate on the "from_persona" field.
func FromPersonaIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldFromPersona, vs...))
}

// FromPersonaNotIn applies the NotIn predicate on the "from_persona" field.
func FromPersonaNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldFromPersona, vs...))
}

// FromPersonaGT applies the GT predicate on the "from_persona" field.
func FromPersonaGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldFromPersona, v))
}

// FromPersonaGTE applies the GTE predicate on the "from_persona" field.
func FromPersonaGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldFromPersona, v))
}

// FromPersonaLT applies the LT predicate on the "from_persona" field.
func FromPersonaLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldFromPersona, v))
}

// FromPersonaLTE applies the LTE predicate on the "from_persona" field.
func FromPersonaLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldFromPersona, v))
}

// FromPersonaContains applies the Contains predicate on the "from_persona" field.
func FromPersonaContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldFromPersona, v))
}

// FromPersonaHasPrefix applies the HasPrefix predicate on the "from_persona" field.
func FromPersonaHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldFromPersona, v))
}

// FromPersonaHasSuffix applies the HasSuffix predicate on the "from_persona" field.
func FromPersonaHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldFromPersona, v))
}

// FromPersonaEqualFold applies the EqualFold predicate on the "from_persona" field.
func FromPersonaEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldFromPersona, v))
}

// FromPersonaContainsFold applies the ContainsFold predicate on the "from_persona" field.
func FromPersonaContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldFromPersona, v))
}

// ToPersonaEQ applies the EQ predicate on the "to_persona" field.
func ToPersonaEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldToPersona, v))
}

// ToPersonaNEQ applies the NEQ predicate on the "to_persona" field.
func ToPersonaNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldToPersona, v))
}

// ToPersonaIn applies the In predicate on the "to_persona" field.
func ToPersonaIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldToPersona, vs...))
}

// ToPersonaNotIn applies the NotIn predicate on the "to_persona" field.
func ToPersonaNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldToPersona, vs...))
}

// ToPersonaGT applies the GT predicate on the "to_persona" field.
func ToPersonaGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldToPersona, v))
}

// ToPersonaGTE applies the GTE predicate on the "to_persona" field.
func ToPersonaGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldToPersona, v))
}

// ToPersonaLT applies the LT predicate on the "to_persona" field.
func ToPersonaLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldToPersona, v))
}

// ToPersonaLTE applies the LTE predicate on the "to_persona" field.
func ToPersonaLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldToPersona, v))
}

// ToPersonaContains applies the Contains predicate on the "to_persona" field.
func ToPersonaContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldToPersona, v))
}

// ToPersonaHasPrefix applies the HasPrefix predicate on the "to_persona" field.
func ToPersonaHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldToPersona, v))
}

// ToPersonaHasSuffix applies the HasSuffix predicate on the "to_persona" field.
func ToPersonaHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldToPersona, v))
}

// ToPersonaIsNil applies the IsNil predicate on the "to_persona" field.
func ToPersonaIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldToPersona))
}

// ToPersonaNotNil applies the NotNil predicate on the "to_persona" field.
func ToPersonaNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldToPersona))
}

// ToPersonaEqualFold applies the EqualFold predicate on the "to_persona" field.
func ToPersonaEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldToPersona, v))
}

// ToPersonaContainsFold applies the ContainsFold predicate on the "to_persona" field.
func ToPersonaContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldToPersona, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldContent, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldType, vs...))
}

// InternalReasoningEQ applies the EQ predicate on the "internal_reasoning" field.
func InternalReasoningEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldInternalReasoning, v))
}

// InternalReasoningNEQ applies the NEQ predicate on the "internal_reasoning" field.
func InternalReasoningNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldInternalReasoning, v))
}

// InternalReasoningIn applies the In predicate on the "internal_reasoning" field.
func InternalReasoningIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldInternalReasoning, vs...))
}

// InternalReasoningNotIn applies the NotIn predicate on the "internal_reasoning" field.
func InternalReasoningNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldInternalReasoning, vs...))
}

// InternalReasoningGT applies the GT predicate on the "internal_reasoning" field.
func InternalReasoningGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldInternalReasoning, v))
}

// InternalReasoningGTE applies the GTE predicate on the "internal_reasoning" field.
func InternalReasoningGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldInternalReasoning, v))
}

// InternalReasoningLT applies the LT predicate on the "internal_reasoning" field.
func InternalReasoningLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldInternalReasoning, v))
}

// InternalReasoningLTE applies the LTE predicate on the "internal_reasoning" field.
func InternalReasoningLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldInternalReasoning, v))
}

// InternalReasoningContains applies the Contains predicate on the "internal_reasoning" field.
func InternalReasoningContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldInternalReasoning, v))
}

// InternalReasoningHasPrefix applies the HasPrefix predicate on the "internal_reasoning" field.
func InternalReasoningHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldInternalReasoning, v))
}

// InternalReasoningHasSuffix applies the HasSuffix predicate on the "internal_reasoning" field.
func InternalReasoningHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldInternalReasoning, v))
}

// InternalReasoningIsNil applies the IsNil predicate on the "internal_reasoning" field.
func InternalReasoningIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldInternalReasoning))
}

// InternalReasoningNotNil applies the NotNil predicate on the "internal_reasoning" field.
func InternalReasoningNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldInternalReasoning))
}

// InternalReasoningEqualFold applies the EqualFold predicate on the "internal_reasoning" field.
func InternalReasoningEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldInternalReasoning, v))
}

// InternalReasoningContainsFold applies the ContainsFold predicate on the "internal_reasoning" field.
func InternalReasoningContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldInternalReasoning, v))
}

// DelegateToPersonaEQ applies the EQ predicate on the "delegate_to_persona" field.
func DelegateToPersonaEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldDelegateToPersona, v))
}

// DelegateToPersonaNEQ applies the NEQ predicate on the "delegate_to_persona" field.
func DelegateToPersonaNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldDelegateToPersona, v))
}

// DelegateToPersonaIn applies the In predicate on the "delegate_to_persona" field.
func DelegateToPersonaIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldDelegateToPersona, vs...))
}

// DelegateToPersonaNotIn applies the NotIn predicate on the "delegate_to_persona" field.
func DelegateToPersonaNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldDelegateToPersona, vs...))
}

// DelegateToPersonaGT applies the GT predicate on the "delegate_to_persona" field.
func DelegateToPersonaGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldDelegateToPersona, v))
}

// DelegateToPersonaGTE applies the GTE predicate on the "delegate_to_persona" field.
func DelegateToPersonaGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldDelegateToPersona, v))
}

// DelegateToPersonaLT applies the LT predicate on the "delegate_to_persona" field.
func DelegateToPersonaLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldDelegateToPersona, v))
}

// DelegateToPersonaLTE applies the LTE predicate on the "delegate_to_persona" field.
func DelegateToPersonaLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldDelegateToPersona, v))
}

// DelegateToPersonaContains applies the Contains predicate on the "delegate_to_persona" field.
func DelegateToPersonaContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldDelegateToPersona, v))
}

// DelegateToPersonaHasPrefix applies the HasPrefix predicate on the "delegate_to_persona" field.
func DelegateToPersonaHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldDelegateToPersona, v))
}

// DelegateToPersonaHasSuffix applies the HasSuffix predicate on the "delegate_to_persona" field.
func DelegateToPersonaHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldDelegateToPersona, v))
}

// DelegateToPersonaIsNil applies the IsNil predicate on the "delegate_to_persona" field.
func DelegateToPersonaIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldDelegateToPersona))
}

// DelegateToPersonaNotNil applies the NotNil predicate on the "delegate_to_persona" field.
func DelegateToPersonaNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldDelegateToPersona))
}

// DelegateToPersonaEqualFold applies the EqualFold predicate on the "delegate_to_persona" field.
func DelegateToPersonaEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldDelegateToPersona, v))
}

// DelegateToPersonaContainsFold applies the ContainsFold predicate on the "delegate_to_persona" field.
func DelegateToPersonaContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldDelegateToPersona, v))
}

// DelegationContextEQ applies the EQ predicate on the "delegation_context" field.
func DelegationContextEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldDelegationContext, v))
}

// DelegationContextNEQ applies the NEQ predicate on the "delegation_context" field.
func DelegationContextNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldDelegationContext, v))
}

// DelegationContextIn applies the In predicate on the "delegation_context" field.
func DelegationContextIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldDelegationContext, vs...))
}

// DelegationContextNotIn applies the NotIn predicate on the "delegation_context" field.
func DelegationContextNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldDelegationContext, vs...))
}

// DelegationContextGT applies the GT predicate on the "delegation_context" field.
func DelegationContextGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldDelegationContext, v))
}

// DelegationContextGTE applies the GTE predicate on the "delegation_context" field.
func DelegationContextGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldDelegationContext, v))
}

// DelegationContextLT applies the LT predicate on the "delegation_context" field.
func DelegationContextLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldDelegationContext, v))
}

// DelegationContextLTE applies the LTE predicate on the "delegation_context" field.
func DelegationContextLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldDelegationContext, v))
}

// DelegationContextContains applies the Contains predicate on the "delegation_context" field.
func DelegationContextContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldDelegationContext, v))
}

// DelegationContextHasPrefix applies the HasPrefix predicate on the "delegation_context" field.
func DelegationContextHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldDelegationContext, v))
}

// DelegationContextHasSuffix applies the HasSuffix predicate on the "delegation_context" field.
func DelegationContextHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldDelegationContext, v))
}

// DelegationContextIsNil applies the IsNil predicate on the "delegation_context" field.
func DelegationContextIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldDelegationContext))
}

// DelegationContextNotNil applies the NotNil predicate on the "delegation_context" field.
func DelegationContextNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldDelegationContext))
}

// DelegationContextEqualFold applies the EqualFold predicate on the "delegation_context" field.
func DelegationContextEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldDelegationContext, v))
}

// DelegationContextContainsFold applies the ContainsFold predicate on the "delegation_context" field.
func DelegationContextContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldDelegationContext, v))
}

// IsStuckEQ applies the EQ predicate on the "is_stuck" field.
func IsStuckEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIsStuck, v))
}

// IsStuckNEQ applies the NEQ predicate on the "is_stuck" field.
func IsStuckNEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldIsStuck, v))
}

// RawResponseEQ applies the EQ predicate on the "raw_response" field.
func RawResponseEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldRawResponse, v))
}

// RawResponseNEQ applies the NEQ predicate on the "raw_response" field.
func RawResponseNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldRawResponse, v))
}

// RawResponseIn applies the In predicate on the "raw_response" field.
func RawResponseIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldRawResponse, vs...))
}

// RawResponseNotIn applies the NotIn predicate on the "raw_response" field.
func RawResponseNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldRawResponse, vs...))
}

// RawResponseGT applies the GT predicate on the "raw_response" field.
func RawResponseGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldRawResponse, v))
}

// RawResponseGTE applies the GTE predicate on the "raw_response" field.
func RawResponseGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldRawResponse, v))
}

// RawResponseLT applies the LT predicate on the "raw_response" field.
func RawResponseLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldRawResponse, v))
}

// RawResponseLTE applies the LTE predicate on the "raw_response" field.
func RawResponseLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldRawResponse, v))
}

// RawResponseContains applies the Contains predicate on the "raw_response" field.
func RawResponseContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldRawResponse, v))
}

// RawResponseHasPrefix applies the HasPrefix predicate on the "raw_response" field.
func RawResponseHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldRawResponse, v))
}

// RawResponseHasSuffix applies the HasSuffix predicate on the "raw_response" field.
func RawResponseHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldRawResponse, v))
}

// RawResponseIsNil applies the IsNil predicate on the "raw_response" field.
func RawResponseIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldRawResponse))
}

// RawResponseNotNil applies the NotNil predicate on the "raw_response" field.
func RawResponseNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldRawResponse))
}

// RawResponseEqualFold applies the EqualFold predicate on the "raw_response" field.
func RawResponseEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldRawResponse, v))
}

// RawResponseContainsFold applies the ContainsFold predicate on the "raw_response" field.
func RawResponseContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldRawResponse, v))
}

// ParentMessageIDEQ applies the EQ predicate on the "parent_message_id" field.
func ParentMessageIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldParentMessageID, v))
}

// ParentMessageIDNEQ applies the NEQ predicate on the "parent_message_id" field.
func ParentMessageIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldParentMessageID, v))
}

// ParentMessageIDIn applies the In predicate on the "parent_message_id" field.
func ParentMessageIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldParentMessageID, vs...))
}

// ParentMessageIDNotIn applies the NotIn predicate on the "parent_message_id" field.
func ParentMessageIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldParentMessageID, vs...))
}

// ParentMessageIDGT applies the GT predicate on the "parent_message_id" field.
func ParentMessageIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldParentMessageID, v))
}

// ParentMessageIDGTE applies the GTE predicate on the "parent_message_id" field.
func ParentMessageIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldParentMessageID, v))
}

// ParentMessageIDLT applies the LT predicate on the "parent_message_id" field.
func ParentMessageIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldParentMessageID, v))
}

// ParentMessageIDLTE applies the LTE predicate on the "parent_message_id" field.
func ParentMessageIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldParentMessageID, v))
}

// ParentMessageIDContains applies the Contains predicate on the "parent_message_id" field.
func ParentMessageIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldParentMessageID, v))
}

// ParentMessageIDHasPrefix applies the HasPrefix predicate on the "parent_message_id" field.
func ParentMessageIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldParentMessageID, v))
}

// ParentMessageIDHasSuffix applies the HasSuffix predicate on the "parent_message_id" field.
func ParentMessageIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldParentMessageID, v))
}

// ParentMessageIDIsNil applies the IsNil predicate on the "parent_message_id" field.
func ParentMessageIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldParentMessageID))
}

// ParentMessageIDNotNil applies the NotNil predicate on the "parent_message_id" field.
func ParentMessageIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldParentMessageID))
}

// ParentMessageIDEqualFold applies the EqualFold predicate on the "parent_message_id" field.
func ParentMessageIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldParentMessageID, v))
}

// ParentMessageIDContainsFold applies the ContainsFold predicate on the "parent_message_id" field.
func ParentMessageIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldParentMessageID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldTimestamp, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.Message) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReplies applies the HasEdge predicate on the "replies" edge.
func HasReplies() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RepliesTable, RepliesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRepliesWith applies the HasEdge predicate on the "replies" edge with a given conditions (other predicates).
func HasRepliesWith(preds ...predicate.Message) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newRepliesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Message) predicate.Message {
	return predicate.Message(sql.NotPredicates(p))
}
