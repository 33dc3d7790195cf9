package chat

import (
	"context"

	"github.com/edgeai/edgeai/internal/llm"
)

// Completer produces the assistant's reply to text given the prior
// transcript.
type Completer interface {
	Complete(ctx context.Context, history []Message, text string) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, history []Message, text string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, history []Message, text string) (string, error) {
	return f(ctx, history, text)
}

// SystemInstruction frames every conversation.
const SystemInstruction = `You are EDGE-AI, an expert AI assistant dedicated to promoting gender equality awareness among Filipino students and teachers.
Your goal is to provide accurate, culturally sensitive, and educational information about gender issues in the Philippines.

Key Guidelines:
1. Use real-world Philippine context (e.g., mention specific laws like RA 9710 or RA 11313).
2. Reference data from the Philippine Statistics Authority (PSA) when discussing education or labor gaps.
3. Address topics like gender stereotyping, the STEM gap, and leadership inequality.
4. Be empathetic, objective, and encouraging.
5. Use clear, accessible language suitable for high school and college students.
6. If asked about controversial topics, provide a balanced educational perspective rooted in human rights.
7. Always encourage users to check official sources for legal matters.`

// Sampling used for every chat request.
const (
	Temperature = 0.7
	TopP        = 0.95
	TopK        = 40
)

// PurposeChat labels chat requests in the request log.
const PurposeChat = "chat"

// Assistant is a Completer backed by an llm.Provider.
type Assistant struct {
	provider llm.Provider
	purpose  string
}

// NewAssistant wraps provider. Requests are logged under PurposeChat.
func NewAssistant(provider llm.Provider) *Assistant {
	return &Assistant{provider: provider, purpose: PurposeChat}
}

// WithPurpose returns a copy that logs requests under purpose.
func (a *Assistant) WithPurpose(purpose string) *Assistant {
	cp := *a
	cp.purpose = purpose
	return &cp
}

// Complete sends the conversation to the provider and returns its text.
// An empty reply is returned as-is; the session turns it into an apology.
func (a *Assistant) Complete(ctx context.Context, history []Message, text string) (string, error) {
	resp, err := a.provider.Generate(llm.WithPurpose(ctx, a.purpose), BuildRequest(history, text))
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// BuildRequest maps a transcript and new message to a provider request.
// The whole transcript is sent, greeting included.
func BuildRequest(history []Message, text string) llm.Request {
	msgs := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		role := llm.RoleUser
		if m.Speaker == SpeakerAssistant {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Text})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: text})

	return llm.Request{
		System:      SystemInstruction,
		Messages:    msgs,
		Temperature: Temperature,
		TopP:        TopP,
		TopK:        TopK,
	}
}
