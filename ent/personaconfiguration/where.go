// Code generated by ent, DO NOT EDIT.

package personaconfiguration

import (
	"entgo.io/ent/dialect/sql"
	"github.com/conclave-dev/conclave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldContainsFold(FieldID, id))
}

// Persona applies equality check predicate on the "persona" field. It's identical to PersonaEQ.
func Persona(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldPersona, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldDisplayName, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldModelName, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldSystemPrompt, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldTemperature, v))
}

// MaxTokens applies equality check predicate on the "max_tokens" field. It's identical to MaxTokensEQ.
func MaxTokens(v int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldMaxTokens, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldEnabled, v))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldSortOrder, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldDescription, v))
}

// PersonaEQ applies the EQ predicate on the "persona" field.
func PersonaEQ(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldPersona, v))
}

// PersonaNEQ applies the NEQ predicate on the "persona" field.
func PersonaNEQ(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNEQ(FieldPersona, v))
}

// PersonaIn applies the In predicate on the "persona" field.
func PersonaIn(vs ...string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldIn(FieldPersona, vs...))
}

// PersonaNotIn applies the NotIn predicate on the "persona" field.
func PersonaNotIn(vs ...string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNotIn(FieldPersona, vs...))
}

// PersonaGT applies the GT predicate on the "persona" field.
func PersonaGT(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGT(FieldPersona, v))
}

// PersonaGTE applies the GTE predicate on the "persona" field.
func PersonaGTE(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGTE(FieldPersona, v))
}

// PersonaLT applies the LT predicate on the "persona" field.
func PersonaLT(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLT(FieldPersona, v))
}

// PersonaLTE applies the LTE predicate on the "persona" field.
func PersonaLTE(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLTE(FieldPersona, v))
}

// PersonaContains applies the Contains predicate on the "persona" field.
func PersonaContains(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldContains(FieldPersona, v))
}

// PersonaHasPrefix applies the HasPrefix predicate on the "persona" field.
func PersonaHasPrefix(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldHasPrefix(FieldPersona, v))
}

// PersonaHasSuffix applies the HasSuffix predicate on the "persona" field.
func PersonaHasSuffix(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldHasSuffix(FieldPersona, v))
}

// PersonaEqualFold applies the EqualFold predicate on the "persona" field.
func PersonaEqualFold(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEqualFold(FieldPersona, v))
}

// PersonaContainsFold applies the ContainsFold predicate on the "persona" field.
func PersonaContainsFold(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldContainsFold(FieldPersona, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldContainsFold(FieldDisplayName, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldContainsFold(FieldModelName, v))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLTE(FieldTemperature, v))
}

// MaxTokensEQ applies the EQ predicate on the "max_tokens" field.
func MaxTokensEQ(v int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldMaxTokens, v))
}

// MaxTokensNEQ applies the NEQ predicate on the "max_tokens" field.
func MaxTokensNEQ(v int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNEQ(FieldMaxTokens, v))
}

// MaxTokensIn applies the In predicate on the "max_tokens" field.
func MaxTokensIn(vs ...int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldIn(FieldMaxTokens, vs...))
}

// MaxTokensNotIn applies the NotIn predicate on the "max_tokens" field.
func MaxTokensNotIn(vs ...int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNotIn(FieldMaxTokens, vs...))
}

// MaxTokensGT applies the GT predicate on the "max_tokens" field.
func MaxTokensGT(v int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGT(FieldMaxTokens, v))
}

// MaxTokensGTE applies the GTE predicate on the "max_tokens" field.
func MaxTokensGTE(v int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGTE(FieldMaxTokens, v))
}

// MaxTokensLT applies the LT predicate on the "max_tokens" field.
func MaxTokensLT(v int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLT(FieldMaxTokens, v))
}

// MaxTokensLTE applies the LTE predicate on the "max_tokens" field.
func MaxTokensLTE(v int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLTE(FieldMaxTokens, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNEQ(FieldEnabled, v))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLTE(FieldSortOrder, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.FieldContainsFold(FieldDescription, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PersonaConfiguration) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PersonaConfiguration) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PersonaConfiguration) predicate.PersonaConfiguration {
	return predicate.PersonaConfiguration(sql.NotPredicates(p))
}
