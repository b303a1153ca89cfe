package orchestrator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/ent/message"
)

func timelineMsg(from string, msgType message.Type, content string) *ent.Message {
	return &ent.Message{
		SessionID:   "sess-1",
		FromPersona: from,
		Type:        msgType,
		Content:     content,
	}
}

func TestCompilePartialSolutionOrdersContributions(t *testing.T) {
	msgs := []*ent.Message{
		timelineMsg("User", message.TypeProblemStatement, "Solve X."),
		timelineMsg("Coordinator", message.TypeDelegation, "BA, please analyze."),
		timelineMsg("BusinessAnalyst", message.TypeAnswer, "X has three constraints."),
		timelineMsg("SeniorDeveloper", message.TypeStuck, "I give up."),
		timelineMsg("TechnicalArchitect", message.TypeAnswer, "A queue-based design fits."),
	}

	out := CompilePartialSolution(msgs)

	assert.Contains(t, out, "partial progress")
	assert.Contains(t, out, "**BusinessAnalyst:**\nX has three constraints.")
	assert.Contains(t, out, "**TechnicalArchitect:**\nA queue-based design fits.")
	assert.Contains(t, out, "Split the problem into smaller problems")

	// Chronological order is preserved.
	assert.Less(t,
		strings.Index(out, "BusinessAnalyst"),
		strings.Index(out, "TechnicalArchitect"))
}

func TestCompilePartialSolutionSkipsNonContributions(t *testing.T) {
	msgs := []*ent.Message{
		timelineMsg("User", message.TypeProblemStatement, "Solve X."),
		timelineMsg("User", message.TypeUserResponse, "More detail."),
		timelineMsg("SeniorDeveloper", message.TypeStuck, "I give up."),
		timelineMsg("UXEngineer", message.TypeDecline, "Not my area."),
		timelineMsg("JuniorQA", message.TypeAnswer, "   "),
	}

	out := CompilePartialSolution(msgs)

	assert.NotContains(t, out, "Solve X.")
	assert.NotContains(t, out, "I give up.")
	assert.NotContains(t, out, "Not my area.")
	assert.NotContains(t, out, "JuniorQA")

	// With nothing to show, the write-up is the bare explanatory
	// sentence, without the next-steps footer.
	assert.Equal(t, "The team was unable to make any progress on this problem.", out)
}

func TestCompilePartialSolutionEmptyTimeline(t *testing.T) {
	out := CompilePartialSolution(nil)
	assert.Equal(t, "The team was unable to make any progress on this problem.", out)
}
