package parser

import (
	"regexp"
	"strings"

	"github.com/conclave-dev/conclave/pkg/models"
)

// ResponseType classifies the primary intent of a persona response.
type ResponseType string

const (
	TypeAnswer        ResponseType = "answer"
	TypeDelegation    ResponseType = "delegation"
	TypeClarification ResponseType = "clarification"
	TypeSolution      ResponseType = "solution"
	TypeStuck         ResponseType = "stuck"
	TypeDecline       ResponseType = "decline"
)

// StoreDirective is a memory-store request extracted from a response.
type StoreDirective struct {
	Identifier string
	Content    string
}

// FileDirective is a file-write request extracted from a response.
type FileDirective struct {
	Path string
	Body string
}

// PersonaResponse is the result of parsing raw model output.
type PersonaResponse struct {
	Type              ResponseType
	Content           string
	InternalReasoning string

	// Delegation fields (populated when Type is TypeDelegation).
	// DelegateToPersona is nil when the named persona could not be
	// resolved; callers must treat that as a malformed delegation.
	DelegateToPersona *models.Persona
	DelegationContext string

	// Clarification question (populated when Type is TypeClarification).
	ClarificationQuestion string

	IsStuck     bool
	RawResponse string

	// Side-effect directives, in order of appearance.
	Stores  []StoreDirective
	Recalls []string
	Files   []FileDirective
}

// Tag patterns (compiled once).
var (
	reasoningPattern = regexp.MustCompile(`(?is)\[REASONING\](.*?)\[/REASONING\]`)
	filePattern      = regexp.MustCompile(`(?is)\[FILE\s*:\s*([^\]\n]+)\](.*?)\[/FILE\]`)
	// Matches any recognized tag. Group 1 is the tag name, group 2 the
	// optional argument after the colon.
	tagPattern = regexp.MustCompile(`(?i)\[(DELEGATE|STORE|REMEMBER|FILE)\s*:\s*([^\]\n]*)\]|\[(CLARIFY|SOLUTION|STUCK|DECLINE|REASONING|/REASONING|/FILE)\]`)
	// Collapse runs of three or more newlines.
	newlineRunPattern = regexp.MustCompile(`\n{3,}`)
)

type tagOccurrence struct {
	name  string // upper-cased tag name
	arg   string // trimmed argument, "" when absent
	start int    // byte offset of '['
	end   int    // byte offset just past ']'
}

// Parse converts raw model output into a structured PersonaResponse.
// The parser is intentionally forgiving: malformed directives degrade
// to a plain answer with the original text preserved in RawResponse,
// and it never returns an error.
func Parse(text string) *PersonaResponse {
	resp := &PersonaResponse{
		Type:        TypeAnswer,
		RawResponse: text,
	}
	if strings.TrimSpace(text) == "" {
		return resp
	}

	// REASONING blocks come out first so their bodies can contain other
	// tags without confusing primary-type detection.
	var reasoning []string
	work := reasoningPattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := reasoningPattern.FindStringSubmatch(m)
		if body := strings.TrimSpace(sub[1]); body != "" {
			reasoning = append(reasoning, body)
		}
		return ""
	})
	resp.InternalReasoning = strings.Join(reasoning, "\n\n")

	// FILE blocks are likewise extracted whole; their bodies are
	// verbatim payloads, not response text.
	work = filePattern.ReplaceAllStringFunc(work, func(m string) string {
		sub := filePattern.FindStringSubmatch(m)
		path := strings.TrimSpace(sub[1])
		if path != "" {
			resp.Files = append(resp.Files, FileDirective{Path: path, Body: sub[2]})
		}
		return ""
	})

	tags := scanTags(work)

	for i, tag := range tags {
		switch tag.name {
		case "STORE":
			if tag.arg != "" {
				resp.Stores = append(resp.Stores, StoreDirective{
					Identifier: tag.arg,
					Content:    strings.TrimSpace(payloadAfter(work, tags, i)),
				})
			}
		case "REMEMBER":
			if tag.arg != "" {
				resp.Recalls = append(resp.Recalls, tag.arg)
			}
		}
	}

	primary, idx := pickPrimary(tags)
	if primary == nil {
		resp.Content = cleanContent(work)
		return resp
	}

	preceding := cleanContent(work[:primary.start])
	payload := cleanContent(payloadAfter(work, tags, idx))

	switch primary.name {
	case "DELEGATE":
		resp.Type = TypeDelegation
		if p, ok := models.ResolvePersona(primary.arg); ok {
			resp.DelegateToPersona = &p
		}
		resp.DelegationContext = payload
		resp.Content = firstNonEmpty(preceding, payload)
	case "CLARIFY":
		resp.Type = TypeClarification
		resp.ClarificationQuestion = payload
		resp.Content = firstNonEmpty(preceding, payload)
	case "SOLUTION":
		resp.Type = TypeSolution
		resp.Content = joinSections(preceding, payload)
	case "STUCK":
		resp.Type = TypeStuck
		resp.IsStuck = true
		resp.Content = joinSections(preceding, payload)
	case "DECLINE":
		resp.Type = TypeDecline
		resp.Content = firstNonEmpty(preceding, payload)
	}

	return resp
}

// scanTags finds every recognized tag occurrence in order of appearance.
func scanTags(text string) []tagOccurrence {
	matches := tagPattern.FindAllStringSubmatchIndex(text, -1)
	tags := make([]tagOccurrence, 0, len(matches))
	for _, m := range matches {
		var name, arg string
		if m[2] != -1 {
			name = strings.ToUpper(text[m[2]:m[3]])
			arg = strings.TrimSpace(text[m[4]:m[5]])
		} else {
			name = strings.ToUpper(text[m[6]:m[7]])
		}
		tags = append(tags, tagOccurrence{name: name, arg: arg, start: m[0], end: m[1]})
	}
	return tags
}

// payloadAfter returns the raw text between the end of tags[i] and the
// start of the next tag (or end of text).
func payloadAfter(text string, tags []tagOccurrence, i int) string {
	end := len(text)
	if i+1 < len(tags) {
		end = tags[i+1].start
	}
	return text[tags[i].end:end]
}

// pickPrimary selects the primary-type tag. Types are tested in a fixed
// priority order; within a type the first occurrence wins.
func pickPrimary(tags []tagOccurrence) (*tagOccurrence, int) {
	for _, name := range []string{"DELEGATE", "CLARIFY", "SOLUTION", "STUCK", "DECLINE"} {
		for i := range tags {
			if tags[i].name == name {
				return &tags[i], i
			}
		}
	}
	return nil, -1
}

// cleanContent strips all remaining tag occurrences and normalizes
// whitespace.
func cleanContent(text string) string {
	text = tagPattern.ReplaceAllString(text, "")
	text = newlineRunPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// joinSections concatenates preceding text and payload with a blank
// line between them, dropping whichever is empty.
func joinSections(preceding, payload string) string {
	switch {
	case preceding == "":
		return payload
	case payload == "":
		return preceding
	default:
		return preceding + "\n\n" + payload
	}
}
