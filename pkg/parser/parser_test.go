package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-dev/conclave/pkg/models"
)

func TestParse_PlainAnswer(t *testing.T) {
	resp := Parse("The capital of France is Paris.")
	assert.Equal(t, TypeAnswer, resp.Type)
	assert.Equal(t, "The capital of France is Paris.", resp.Content)
	assert.Equal(t, "The capital of France is Paris.", resp.RawResponse)
	assert.Empty(t, resp.InternalReasoning)
	assert.False(t, resp.IsStuck)
}

func TestParse_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t  "} {
		resp := Parse(input)
		assert.Equal(t, TypeAnswer, resp.Type)
		assert.Empty(t, resp.Content)
		assert.Equal(t, input, resp.RawResponse)
	}
}

func TestParse_Delegation(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantPersona models.Persona
		wantContext string
		wantContent string
	}{
		{
			name:        "bare delegation",
			input:       "[DELEGATE:TechnicalArchitect] Design the storage layer.",
			wantPersona: models.PersonaTechnicalArchitect,
			wantContext: "Design the storage layer.",
			wantContent: "Design the storage layer.",
		},
		{
			name:        "preceding text becomes content",
			input:       "This needs an architect.\n[DELEGATE:TechnicalArchitect] Design the storage layer.",
			wantPersona: models.PersonaTechnicalArchitect,
			wantContext: "Design the storage layer.",
			wantContent: "This needs an architect.",
		},
		{
			name:        "alias resolution",
			input:       "[DELEGATE:ta] size the database",
			wantPersona: models.PersonaTechnicalArchitect,
			wantContext: "size the database",
			wantContent: "size the database",
		},
		{
			name:        "lowercase tag with spacing",
			input:       "[delegate: Senior Developer ] implement it",
			wantPersona: models.PersonaSeniorDeveloper,
			wantContext: "implement it",
			wantContent: "implement it",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Parse(tt.input)
			require.Equal(t, TypeDelegation, resp.Type)
			require.NotNil(t, resp.DelegateToPersona)
			assert.Equal(t, tt.wantPersona, *resp.DelegateToPersona)
			assert.Equal(t, tt.wantContext, resp.DelegationContext)
			assert.Equal(t, tt.wantContent, resp.Content)
		})
	}
}

func TestParse_DelegationUnknownPersona(t *testing.T) {
	resp := Parse("[DELEGATE:DatabaseAdmin] tune the indexes")
	assert.Equal(t, TypeDelegation, resp.Type)
	assert.Nil(t, resp.DelegateToPersona)
	assert.Equal(t, "tune the indexes", resp.DelegationContext)
}

func TestParse_Clarification(t *testing.T) {
	resp := Parse("I need more detail.\n[CLARIFY] Which database engine should we target?")
	assert.Equal(t, TypeClarification, resp.Type)
	assert.Equal(t, "Which database engine should we target?", resp.ClarificationQuestion)
	assert.Equal(t, "I need more detail.", resp.Content)
}

func TestParse_SolutionConcatenatesPrecedingText(t *testing.T) {
	resp := Parse("Summary of the approach.\n[SOLUTION] Use a queue with two workers.")
	assert.Equal(t, TypeSolution, resp.Type)
	assert.Equal(t, "Summary of the approach.\n\nUse a queue with two workers.", resp.Content)
}

func TestParse_SolutionWithoutPreceding(t *testing.T) {
	resp := Parse("[SOLUTION] Use a queue with two workers.")
	assert.Equal(t, TypeSolution, resp.Type)
	assert.Equal(t, "Use a queue with two workers.", resp.Content)
}

func TestParse_Stuck(t *testing.T) {
	resp := Parse("I tried three approaches.\n[STUCK] Cannot determine the schema.")
	assert.Equal(t, TypeStuck, resp.Type)
	assert.True(t, resp.IsStuck)
	assert.Equal(t, "I tried three approaches.\n\nCannot determine the schema.", resp.Content)
}

func TestParse_Decline(t *testing.T) {
	resp := Parse("[DECLINE] This is a backend task, outside my role.")
	assert.Equal(t, TypeDecline, resp.Type)
	assert.Equal(t, "This is a backend task, outside my role.", resp.Content)
	assert.False(t, resp.IsStuck)
}

func TestParse_PrimaryTypePriority(t *testing.T) {
	// Delegation wins over a later solution tag, and over an earlier
	// decline tag: types are tested in a fixed order, not by position.
	resp := Parse("[DECLINE] not me\n[DELEGATE:SeniorQA] verify it\n[SOLUTION] done")
	require.Equal(t, TypeDelegation, resp.Type)
	require.NotNil(t, resp.DelegateToPersona)
	assert.Equal(t, models.PersonaSeniorQA, *resp.DelegateToPersona)
	assert.Equal(t, "verify it", resp.DelegationContext)
}

func TestParse_ReasoningExtracted(t *testing.T) {
	resp := Parse("[REASONING]\nThe task is ambiguous but solvable.\n[/REASONING]\n[SOLUTION] Ship it.")
	assert.Equal(t, TypeSolution, resp.Type)
	assert.Equal(t, "The task is ambiguous but solvable.", resp.InternalReasoning)
	assert.Equal(t, "Ship it.", resp.Content)
}

func TestParse_ReasoningMayContainTags(t *testing.T) {
	// Tags inside a reasoning block must not influence the primary type.
	resp := Parse("[REASONING]I considered [DELEGATE:SeniorDeveloper] but decided against it.[/REASONING]\nHere is my answer.")
	assert.Equal(t, TypeAnswer, resp.Type)
	assert.Nil(t, resp.DelegateToPersona)
	assert.Equal(t, "I considered [DELEGATE:SeniorDeveloper] but decided against it.", resp.InternalReasoning)
	assert.Equal(t, "Here is my answer.", resp.Content)
}

func TestParse_StoreDirectives(t *testing.T) {
	resp := Parse("[STORE:db choice] PostgreSQL 16 with pgvector.\n[STORE:api style] REST with JSON.\nMoving on.")
	require.Len(t, resp.Stores, 2)
	assert.Equal(t, "db choice", resp.Stores[0].Identifier)
	assert.Equal(t, "PostgreSQL 16 with pgvector.", resp.Stores[0].Content)
	assert.Equal(t, "api style", resp.Stores[1].Identifier)
	assert.Equal(t, "REST with JSON.\nMoving on.", resp.Stores[1].Content)
	// Store directives do not change the primary type.
	assert.Equal(t, TypeAnswer, resp.Type)
}

func TestParse_StoreWithEmptyIdentifierIgnored(t *testing.T) {
	resp := Parse("[STORE:] orphan content")
	assert.Empty(t, resp.Stores)
	assert.Equal(t, TypeAnswer, resp.Type)
}

func TestParse_RememberDirectives(t *testing.T) {
	resp := Parse("[REMEMBER:db choice]\n[REMEMBER:api style]\nLet me reconsider.")
	assert.Equal(t, []string{"db choice", "api style"}, resp.Recalls)
	assert.Equal(t, "Let me reconsider.", resp.Content)
}

func TestParse_FileDirectives(t *testing.T) {
	resp := Parse("[FILE:docs/plan.md]\n# Plan\nStep one.\n[/FILE]\n[SOLUTION] Plan written.")
	require.Len(t, resp.Files, 1)
	assert.Equal(t, "docs/plan.md", resp.Files[0].Path)
	assert.Equal(t, "\n# Plan\nStep one.\n", resp.Files[0].Body)
	assert.Equal(t, TypeSolution, resp.Type)
	assert.Equal(t, "Plan written.", resp.Content)
}

func TestParse_TagsStrippedFromContent(t *testing.T) {
	resp := Parse("Before.\n[STORE:note] remembered text\n[REMEMBER:note]\nAfter.")
	assert.Equal(t, TypeAnswer, resp.Type)
	assert.NotContains(t, resp.Content, "[STORE")
	assert.NotContains(t, resp.Content, "[REMEMBER")
	assert.Contains(t, resp.Content, "Before.")
	assert.Contains(t, resp.Content, "After.")
}

func TestParse_NewlineRunsCollapsed(t *testing.T) {
	resp := Parse("First.\n\n\n\n\nSecond.")
	assert.Equal(t, "First.\n\nSecond.", resp.Content)
}

func TestParse_Idempotent(t *testing.T) {
	input := "Preamble.\n[REASONING]hidden[/REASONING]\n[DELEGATE:BA] gather requirements"
	first := Parse(input)
	second := Parse(input)
	assert.Equal(t, first, second)
}

func TestParse_MalformedDegradesToAnswer(t *testing.T) {
	// An unterminated reasoning block is not a recognized pair; the
	// stray open tag is stripped and the rest survives as an answer.
	resp := Parse("[REASONING] never closed, just text")
	assert.Equal(t, TypeAnswer, resp.Type)
	assert.Equal(t, "never closed, just text", resp.Content)
	assert.Equal(t, "[REASONING] never closed, just text", resp.RawResponse)
}

func TestParse_RawResponseAlwaysPreserved(t *testing.T) {
	input := "text [DELEGATE:nobody] context"
	resp := Parse(input)
	assert.Equal(t, input, resp.RawResponse)
}
