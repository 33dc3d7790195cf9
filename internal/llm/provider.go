package llm

import "context"

// Provider is the core abstraction for talking to a completion service.
type Provider interface {
	// Generate sends the conversation to the model and returns its reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system instruction. Sets the assistant's role and guidelines.
	System string

	// Messages is the conversation history, oldest first. The last message
	// is the one the model should answer.
	Messages []Message

	// MaxTokens caps the reply length. Zero leaves it to the provider.
	MaxTokens int

	// Sampling parameters. Zero values are not sent.
	Temperature float64
	TopP        float64
	TopK        int
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the model's output.
type Response struct {
	// Text is the generated reply. It may be empty when the model returned
	// no usable content.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
