package persona

import (
	"fmt"
	"strings"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/pkg/llm"
	"github.com/conclave-dev/conclave/pkg/models"
)

// historyWindow is the number of prior messages included in each
// model invocation.
const historyWindow = 10

// formatInstructions is the response grammar appended to every persona's
// system prompt. Personas signal intent with bracket tags; anything
// untagged is a plain answer.
const formatInstructions = `RESPONSE FORMAT

You communicate with the team through bracket tags. Use them exactly as shown:

[REASONING] your private reasoning [/REASONING]
    Optional. Kept out of the visible conversation.

[DELEGATE:PersonaName] task description
    Hand the task to another team member. Valid names: Coordinator,
    BusinessAnalyst, TechnicalArchitect, SeniorDeveloper, JuniorDeveloper,
    SeniorQA, JuniorQA, UXEngineer, UIEngineer, DocumentWriter.

[CLARIFY] question for the user
    Pause the session and ask the user a question.

[SOLUTION] the final solution
    Deliver the finished result.

[STUCK] why you cannot proceed
    Admit you are blocked.

[DECLINE] why this is outside your role
    Refuse a task that does not fit your specialty.

[STORE:short identifier] content to remember
    Save a note to your personal memory for this session.

[REMEMBER:short identifier]
    Recall a previously stored note.

[FILE:relative/path.ext]
file contents
[/FILE]
    Write a file into the session workspace.

Use at most one of DELEGATE, CLARIFY, SOLUTION, STUCK, or DECLINE per response.
A response with none of them is treated as a plain answer.`

// buildSystemPrompt composes the full system prompt for one invocation:
// the persona's configured base prompt, the response grammar, the
// session context, and any recalled memories.
func buildSystemPrompt(cfg *ent.PersonaConfiguration, session *ent.Session, memories []*ent.Memory) string {
	var sb strings.Builder

	sb.WriteString(cfg.SystemPrompt)
	sb.WriteString("\n\n")
	sb.WriteString(formatInstructions)

	sb.WriteString("\n\nSESSION CONTEXT\n")
	fmt.Fprintf(&sb, "Session ID: %s\n", session.ID)
	fmt.Fprintf(&sb, "Status: %s\n", session.Status)
	fmt.Fprintf(&sb, "Problem statement:\n%s\n", session.ProblemStatement)

	if len(memories) > 0 {
		sb.WriteString("\nYOUR MEMORIES\n")
		for _, m := range memories {
			fmt.Fprintf(&sb, "[%s]\n%s\n\n", m.Identifier, m.Content)
		}
	}

	return sb.String()
}

// buildConversation renders the session history plus the incoming
// message as chat turns. User-authored messages get the user role;
// everything else is assistant output.
func buildConversation(history []*ent.Message, incoming *ent.Message) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+1)

	for _, msg := range history {
		if msg.ID == incoming.ID {
			continue
		}
		messages = append(messages, llm.Message{
			Role:    roleFor(msg.FromPersona),
			Content: fmt.Sprintf("%s: %s", msg.FromPersona, msg.Content),
		})
	}

	messages = append(messages, llm.Message{
		Role:    "user",
		Content: renderIncoming(incoming),
	})

	return messages
}

// renderIncoming prefixes the incoming message with its origin and, for
// delegations, the task context.
func renderIncoming(msg *ent.Message) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Message from %s:\n%s", msg.FromPersona, msg.Content)
	if msg.DelegationContext != nil && *msg.DelegationContext != "" && *msg.DelegationContext != msg.Content {
		fmt.Fprintf(&sb, "\n\nYour task: %s", *msg.DelegationContext)
	}
	return sb.String()
}

func roleFor(fromPersona string) string {
	if fromPersona == models.PersonaUser.String() {
		return "user"
	}
	return "assistant"
}
