package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeai/edgeai/internal/llm"
)

func TestBuildRequest(t *testing.T) {
	history := []Message{
		{Speaker: SpeakerAssistant, Text: Greeting},
		{Speaker: SpeakerUser, Text: "What is SOGIE?"},
		{Speaker: SpeakerAssistant, Text: "SOGIE stands for..."},
	}

	req := BuildRequest(history, "And the E?")

	assert.Equal(t, SystemInstruction, req.System)
	assert.InDelta(t, 0.7, req.Temperature, 1e-9)
	assert.InDelta(t, 0.95, req.TopP, 1e-9)
	assert.Equal(t, 40, req.TopK)

	require.Len(t, req.Messages, 4, "whole transcript plus the new message")
	assert.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: Greeting}, req.Messages[0])
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "What is SOGIE?"}, req.Messages[1])
	assert.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: "SOGIE stands for..."}, req.Messages[2])
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "And the E?"}, req.Messages[3])
}

func TestBuildRequest_FirstTurn(t *testing.T) {
	s := NewSession()
	turn, ok := s.Begin("hello")
	require.True(t, ok)

	req := BuildRequest(turn.History, turn.Text)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: Greeting}, req.Messages[0])
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "hello"}, req.Messages[1])
}

func TestAssistant_Complete(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Allies speak up."})
	a := NewAssistant(mock)

	got, err := a.Complete(context.Background(), []Message{{Speaker: SpeakerAssistant, Text: Greeting}}, "How to be a good ally?")
	require.NoError(t, err)
	assert.Equal(t, "Allies speak up.", got)

	req, ok := mock.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "How to be a good ally?", req.Messages[len(req.Messages)-1].Content)
}

func TestAssistant_PropagatesError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	a := NewAssistant(mock)

	_, err := a.Complete(context.Background(), nil, "hi")
	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

type purposeProvider struct {
	got string
}

func (p *purposeProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.got = llm.PurposeFrom(ctx)
	return &llm.Response{Text: "ok"}, nil
}

func (p *purposeProvider) ModelID() string { return "purpose" }

func TestAssistant_Purpose(t *testing.T) {
	p := &purposeProvider{}

	_, err := NewAssistant(p).Complete(context.Background(), nil, "hi")
	require.NoError(t, err)
	assert.Equal(t, PurposeChat, p.got)

	_, err = NewAssistant(p).WithPurpose("chat-cli").Complete(context.Background(), nil, "hi")
	require.NoError(t, err)
	assert.Equal(t, "chat-cli", p.got)
}

func TestSession_WithAssistantEndToEnd(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Gender is a social construct."},
		llm.MockResponse{Err: &llm.ErrInvalidCredential{StatusCode: 403, Err: errors.New("forbidden")}},
	)
	s := NewSession()
	a := NewAssistant(mock)

	msg, ok := s.Send(context.Background(), a, "Difference between sex and gender?")
	require.True(t, ok)
	assert.Equal(t, "Gender is a social construct.", msg.Text)

	msg, ok = s.Send(context.Background(), a, "Tell me more")
	require.True(t, ok)
	assert.Equal(t, ApologyCredential, msg.Text)
	assert.Equal(t, 5, s.Len())
}
