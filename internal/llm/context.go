package llm

import (
	"context"
	"strings"
)

// PurposeUnknown labels requests made without a purpose in the context.
const PurposeUnknown = "unknown"

type purposeKey struct{}

// WithPurpose tags ctx with the label the request log files calls under,
// such as "chat" for the TUI or "chat-cli" for the chat command.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, strings.TrimSpace(purpose))
}

// PurposeFrom returns the label set by WithPurpose, or PurposeUnknown.
func PurposeFrom(ctx context.Context) string {
	if v, _ := ctx.Value(purposeKey{}).(string); v != "" {
		return v
	}
	return PurposeUnknown
}
