// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conclave-dev/conclave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTitle, v))
}

// ProblemStatement applies equality check predicate on the "problem_statement" field. It's identical to ProblemStatementEQ.
func ProblemStatement(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProblemStatement, v))
}

// CurrentPersona applies equality check predicate on the "current_persona" field. It's identical to CurrentPersonaEQ.
func CurrentPersona(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCurrentPersona, v))
}

// FinalSolution applies equality check predicate on the "final_solution" field. It's identical to FinalSolutionEQ.
func FinalSolution(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFinalSolution, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTitle, v))
}

// ProblemStatementEQ applies the EQ predicate on the "problem_statement" field.
func ProblemStatementEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProblemStatement, v))
}

// ProblemStatementNEQ applies the NEQ predicate on the "problem_statement" field.
func ProblemStatementNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldProblemStatement, v))
}

// ProblemStatementIn applies the In predicate on the "problem_statement" field.
func ProblemStatementIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldProblemStatement, vs...))
}

// ProblemStatementNotIn applies the NotIn predicate on the "problem_statement" field.
func ProblemStatementNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldProblemStatement, vs...))
}

// ProblemStatementGT applies the GT predicate on the "problem_statement" field.
func ProblemStatementGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldProblemStatement, v))
}

// ProblemStatementGTE applies the GTE predicate on the "problem_statement" field.
func ProblemStatementGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldProblemStatement, v))
}

// ProblemStatementLT applies the LT predicate on the "problem_statement" field.
func ProblemStatementLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldProblemStatement, v))
}

// ProblemStatementLTE applies the LTE predicate on the "problem_statement" field.
func ProblemStatementLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldProblemStatement, v))
}

// ProblemStatementContains applies the Contains predicate on the "problem_statement" field.
func ProblemStatementContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldProblemStatement, v))
}

// ProblemStatementHasPrefix applies the HasPrefix predicate on the "problem_statement" field.
func ProblemStatementHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldProblemStatement, v))
}

// ProblemStatementHasSuffix applies the HasSuffix predicate on the "problem_statement" field.
func ProblemStatementHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldProblemStatement, v))
}

// ProblemStatementEqualFold applies the EqualFold predicate on the "problem_statement" field.
func ProblemStatementEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldProblemStatement, v))
}

// ProblemStatementContainsFold applies the ContainsFold predicate on the "problem_statement" field.
func ProblemStatementContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldProblemStatement, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentPersonaEQ applies the EQ predicate on the "current_persona" field.
func CurrentPersonaEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCurrentPersona, v))
}

// CurrentPersonaNEQ applies the NEQ predicate on the "current_persona" field.
func CurrentPersonaNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCurrentPersona, v))
}

// CurrentPersonaIn applies the In predicate on the "current_persona" field.
func CurrentPersonaIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCurrentPersona, vs...))
}

// CurrentPersonaNotIn applies the NotIn predicate on the "current_persona" field.
func CurrentPersonaNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCurrentPersona, vs...))
}

// CurrentPersonaGT applies the GT predicate on the "current_persona" field.
func CurrentPersonaGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCurrentPersona, v))
}

// CurrentPersonaGTE applies the GTE predicate on the "current_persona" field.
func CurrentPersonaGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCurrentPersona, v))
}

// CurrentPersonaLT applies the LT predicate on the "current_persona" field.
func CurrentPersonaLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCurrentPersona, v))
}

// CurrentPersonaLTE applies the LTE predicate on the "current_persona" field.
func CurrentPersonaLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCurrentPersona, v))
}

// CurrentPersonaContains applies the Contains predicate on the "current_persona" field.
func CurrentPersonaContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldCurrentPersona, v))
}

// CurrentPersonaHasPrefix applies the HasPrefix predicate on the "current_persona" field.
func CurrentPersonaHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldCurrentPersona, v))
}

// CurrentPersonaHasSuffix applies the HasSuffix predicate on the "current_persona" field.
func CurrentPersonaHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldCurrentPersona, v))
}

// CurrentPersonaIsNil applies the IsNil predicate on the "current_persona" field.
func CurrentPersonaIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCurrentPersona))
}

// CurrentPersonaNotNil applies the NotNil predicate on the "current_persona" field.
func CurrentPersonaNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCurrentPersona))
}

// CurrentPersonaEqualFold applies the EqualFold predicate on the "current_persona" field.
func CurrentPersonaEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldCurrentPersona, v))
}

// CurrentPersonaContainsFold applies the ContainsFold predicate on the "current_persona" field.
func CurrentPersonaContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldCurrentPersona, v))
}

// FinalSolutionEQ applies the EQ predicate on the "final_solution" field.
func FinalSolutionEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFinalSolution, v))
}

// FinalSolutionNEQ applies the NEQ predicate on the "final_solution" field.
func FinalSolutionNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldFinalSolution, v))
}

// FinalSolutionIn applies the In predicate on the "final_solution" field.
func FinalSolutionIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldFinalSolution, vs...))
}

// FinalSolutionNotIn applies the NotIn predicate on the "final_solution" field.
func FinalSolutionNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldFinalSolution, vs...))
}

// FinalSolutionGT applies the GT predicate on the "final_solution" field.
func FinalSolutionGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldFinalSolution, v))
}

// FinalSolutionGTE applies the GTE predicate on the "final_solution" field.
func FinalSolutionGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldFinalSolution, v))
}

// FinalSolutionLT applies the LT predicate on the "final_solution" field.
func FinalSolutionLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldFinalSolution, v))
}

// FinalSolutionLTE applies the LTE predicate on the "final_solution" field.
func FinalSolutionLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldFinalSolution, v))
}

// FinalSolutionContains applies the Contains predicate on the "final_solution" field.
func FinalSolutionContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldFinalSolution, v))
}

// FinalSolutionHasPrefix applies the HasPrefix predicate on the "final_solution" field.
func FinalSolutionHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldFinalSolution, v))
}

// FinalSolutionHasSuffix applies the HasSuffix predicate on the "final_solution" field.
func FinalSolutionHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldFinalSolution, v))
}

// FinalSolutionIsNil applies the IsNil predicate on the "final_solution" field.
func FinalSolutionIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldFinalSolution))
}

// FinalSolutionNotNil applies the NotNil predicate on the "final_solution" field.
func FinalSolutionNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldFinalSolution))
}

// FinalSolutionEqualFold applies the EqualFold predicate on the "final_solution" field.
func FinalSolutionEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldFinalSolution, v))
}

// FinalSolutionContainsFold applies the ContainsFold predicate on the "final_solution" field.
func FinalSolutionContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldFinalSolution, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMemories applies the HasEdge predicate on the "memories" edge.
func HasMemories() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MemoriesTable, MemoriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMemoriesWith applies the HasEdge predicate on the "memories" edge with a given conditions (other predicates).
func HasMemoriesWith(preds ...predicate.Memory) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newMemoriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
