package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeai/edgeai/internal/llm"
)

func replyWith(text string, err error) Completer {
	return CompleterFunc(func(context.Context, []Message, string) (string, error) {
		return text, err
	})
}

func TestNewSession_GreetingOnly(t *testing.T) {
	s := NewSession()

	msgs := s.Transcript()
	require.Len(t, msgs, 1)
	assert.Equal(t, SpeakerAssistant, msgs[0].Speaker)
	assert.Equal(t, Greeting, msgs[0].Text)
	assert.False(t, s.Pending())
	assert.NotEmpty(t, s.ID())
	assert.NotEqual(t, s.ID(), NewSession().ID())
}

func TestBegin_RejectsBlank(t *testing.T) {
	s := NewSession()
	for _, text := range []string{"", "   ", "\n\t "} {
		_, ok := s.Begin(text)
		assert.False(t, ok, "text %q should be rejected", text)
	}
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Pending())
}

func TestBegin_AppendsOptimistically(t *testing.T) {
	s := NewSession()

	turn, ok := s.Begin("  What is SOGIE?  ")
	require.True(t, ok)
	assert.True(t, s.Pending())
	assert.Equal(t, "What is SOGIE?", turn.Text)
	assert.Equal(t, s.ID(), turn.SessionID)

	msgs := s.Transcript()
	require.Len(t, msgs, 2)
	assert.Equal(t, SpeakerUser, msgs[1].Speaker)
	assert.Equal(t, "What is SOGIE?", msgs[1].Text)

	// History excludes the message just appended.
	require.Len(t, turn.History, 1)
	assert.Equal(t, Greeting, turn.History[0].Text)
}

func TestBegin_RejectsWhilePending(t *testing.T) {
	s := NewSession()

	_, ok := s.Begin("first")
	require.True(t, ok)

	_, ok = s.Begin("second")
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestComplete_Success(t *testing.T) {
	s := NewSession()
	turn, _ := s.Begin("hello")

	assert.True(t, s.Complete(turn, "Hi there!", nil))
	assert.False(t, s.Pending())

	msgs := s.Transcript()
	require.Len(t, msgs, 3)
	assert.Equal(t, SpeakerAssistant, msgs[2].Speaker)
	assert.Equal(t, "Hi there!", msgs[2].Text)
}

func TestComplete_FailureAppendsApology(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  string
	}{
		{"empty reply", "", nil, ApologyEmpty},
		{"whitespace reply", "  \n", nil, ApologyEmpty},
		{"missing key", "", fmt.Errorf("gemini: %w", llm.ErrMissingCredential), ApologyCredential},
		{"rejected key", "", &llm.ErrInvalidCredential{StatusCode: 400, Err: errors.New("API key not valid")}, ApologyCredential},
		{"model not found", "", &llm.ErrInvalidCredential{StatusCode: 404, Err: errors.New("not found")}, ApologyCredential},
		{"network", "", &llm.ErrProviderUnavailable{Err: errors.New("dial tcp")}, ApologyConnection},
		{"rate limit", "", &llm.ErrRateLimit{Err: errors.New("429")}, ApologyConnection},
		{"anything else", "", errors.New("boom"), ApologyConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			turn, _ := s.Begin("hello")

			require.True(t, s.Complete(turn, tt.reply, tt.err))
			assert.False(t, s.Pending())

			msgs := s.Transcript()
			require.Len(t, msgs, 3, "user message plus apology")
			assert.Equal(t, SpeakerAssistant, msgs[2].Speaker)
			assert.Equal(t, tt.want, msgs[2].Text)
		})
	}
}

func TestComplete_ErrorWinsOverPartialReply(t *testing.T) {
	s := NewSession()
	turn, _ := s.Begin("hello")

	s.Complete(turn, "partial", errors.New("stream broke"))
	msgs := s.Transcript()
	assert.Equal(t, ApologyConnection, msgs[len(msgs)-1].Text)
}

func TestReset(t *testing.T) {
	s := NewSession()
	turn, _ := s.Begin("hello")
	s.Complete(turn, "hi", nil)
	s.Begin("pending question")
	gen := s.Generation()

	s.Reset()

	msgs := s.Transcript()
	require.Len(t, msgs, 1)
	assert.Equal(t, Greeting, msgs[0].Text)
	assert.False(t, s.Pending())
	assert.Equal(t, gen+1, s.Generation())

	// Idempotent.
	s.Reset()
	assert.Equal(t, 1, s.Len())
}

func TestComplete_StaleTurnDropped(t *testing.T) {
	s := NewSession()
	stale, _ := s.Begin("before reset")
	s.Reset()

	assert.False(t, s.Complete(stale, "late answer", nil))
	assert.Equal(t, 1, s.Len())

	// A new turn still works after the stale reply was dropped.
	fresh, ok := s.Begin("after reset")
	require.True(t, ok)
	assert.True(t, s.Complete(fresh, "answer", nil))
	assert.Equal(t, 3, s.Len())
}

func TestComplete_ForeignTurnDropped(t *testing.T) {
	a, b := NewSession(), NewSession()
	turn, _ := a.Begin("hello")
	b.Begin("hello")

	assert.False(t, b.Complete(turn, "wrong session", nil))
	assert.True(t, b.Pending())
	assert.Equal(t, 2, b.Len())
}

func TestComplete_Twice(t *testing.T) {
	s := NewSession()
	turn, _ := s.Begin("hello")

	assert.True(t, s.Complete(turn, "one", nil))
	assert.False(t, s.Complete(turn, "two", nil))
	assert.Equal(t, 3, s.Len())
}

func TestSend(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := NewSession()
		var gotHistory []Message
		var gotText string
		c := CompleterFunc(func(_ context.Context, history []Message, text string) (string, error) {
			gotHistory, gotText = history, text
			return "RA 11313 is the Safe Spaces Act.", nil
		})

		msg, ok := s.Send(context.Background(), c, "What is the Safe Spaces Act?")
		require.True(t, ok)
		assert.Equal(t, "RA 11313 is the Safe Spaces Act.", msg.Text)
		assert.Equal(t, "What is the Safe Spaces Act?", gotText)
		assert.Len(t, gotHistory, 1)
		assert.Equal(t, 3, s.Len())
		assert.False(t, s.Pending())
	})

	t.Run("failure grows transcript by two", func(t *testing.T) {
		s := NewSession()
		msg, ok := s.Send(context.Background(), replyWith("", errors.New("offline")), "hello")
		require.True(t, ok)
		assert.Equal(t, ApologyConnection, msg.Text)
		assert.Equal(t, 3, s.Len())
		assert.False(t, s.Pending())
	})

	t.Run("blank is a no-op", func(t *testing.T) {
		s := NewSession()
		called := false
		c := CompleterFunc(func(context.Context, []Message, string) (string, error) {
			called = true
			return "x", nil
		})
		_, ok := s.Send(context.Background(), c, "   ")
		assert.False(t, ok)
		assert.False(t, called)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("reset during request drops reply", func(t *testing.T) {
		s := NewSession()
		c := CompleterFunc(func(context.Context, []Message, string) (string, error) {
			s.Reset()
			return "late", nil
		})
		_, ok := s.Send(context.Background(), c, "hello")
		assert.False(t, ok)
		assert.Equal(t, 1, s.Len())
		assert.False(t, s.Pending())
	})

	t.Run("history carries earlier turns", func(t *testing.T) {
		s := NewSession()
		s.Send(context.Background(), replyWith("first answer", nil), "first")

		var gotHistory []Message
		c := CompleterFunc(func(_ context.Context, history []Message, _ string) (string, error) {
			gotHistory = history
			return "second answer", nil
		})
		s.Send(context.Background(), c, "second")

		require.Len(t, gotHistory, 3)
		assert.Equal(t, "first", gotHistory[1].Text)
		assert.Equal(t, "first answer", gotHistory[2].Text)
	})
}

func TestTranscriptIsCopy(t *testing.T) {
	s := NewSession()
	msgs := s.Transcript()
	msgs[0].Text = "tampered"
	assert.Equal(t, Greeting, s.Transcript()[0].Text)
}
