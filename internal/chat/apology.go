package chat

import (
	"github.com/edgeai/edgeai/internal/llm"
)

// Apologies shown in place of a reply.
const (
	ApologyEmpty      = "I'm sorry, I couldn't process that. Please try again."
	ApologyCredential = "Connection Error: Please ensure you have selected a valid Gemini API key via the setup screen."
	ApologyConnection = "I encountered a connection issue. Please check your internet and try again."
)

// Apology picks the message for a failed turn. A nil err means the
// service answered with nothing.
func Apology(err error) string {
	switch {
	case err == nil:
		return ApologyEmpty
	case llm.IsCredentialError(err):
		return ApologyCredential
	default:
		return ApologyConnection
	}
}
