package llm

import "context"

// Provider is the interface personas use to obtain model completions.
type Provider interface {
	// Generate sends a conversation to the model and returns the
	// assistant text. Transport and protocol failures are returned as
	// errors; an HTTP 200 with no choices yields an empty Result.
	Generate(ctx context.Context, req *Request) (*Result, error)
}

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request describes a single completion call.
type Request struct {
	Model        string
	SystemPrompt string
	Messages     []Message
	Temperature  float64
	MaxTokens    int
}

// Result is the assistant output of a completion call.
type Result struct {
	Content      string
	Model        string
	FinishReason string
	PromptTokens int
	OutputTokens int
}
