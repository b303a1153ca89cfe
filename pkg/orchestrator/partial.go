package orchestrator

import (
	"strings"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/ent/message"
	"github.com/conclave-dev/conclave/pkg/models"
)

const partialPreamble = "The team could not fully solve this problem. " +
	"Below is the partial progress gathered before the session stalled."

const partialFooter = "To move forward, you can:\n" +
	"1. Provide additional detail or clarification and resume the session.\n" +
	"2. Split the problem into smaller problems and start a new session for each.\n" +
	"3. Rephrase the problem or suggest a different approach."

const partialEmpty = "The team was unable to make any progress on this problem."

// CompilePartialSolution assembles the give-up write-up from a session's
// timeline: every substantive persona contribution in chronological
// order, attributed by persona. User messages and stuck/decline notices
// carry no solution content and are skipped.
func CompilePartialSolution(msgs []*ent.Message) string {
	var contributions []string
	for _, m := range msgs {
		if m.FromPersona == string(models.PersonaUser) {
			continue
		}
		if m.Type == message.TypeStuck || m.Type == message.TypeDecline {
			continue
		}
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		contributions = append(contributions, "**"+m.FromPersona+":**\n"+content)
	}

	if len(contributions) == 0 {
		return partialEmpty
	}

	var b strings.Builder
	b.WriteString(partialPreamble)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(contributions, "\n\n"))
	b.WriteString("\n\n")
	b.WriteString(partialFooter)
	return b.String()
}
