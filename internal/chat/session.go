// Package chat keeps the assistant conversation transcript and mediates
// calls to the completion service.
package chat

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Greeting is the fixed first message of every transcript.
const Greeting = "Hello! I am EDGE-AI. I'm your Gender Equality Assistant. How can I help you today?"

// Speaker identifies who wrote a message.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Message is one transcript entry.
type Message struct {
	Speaker Speaker
	Text    string
	Time    time.Time
}

// Turn is an admitted user message waiting for its reply. It carries the
// session ID and generation it was admitted under; Complete drops turns
// whose generation has since been reset.
type Turn struct {
	SessionID  string
	Generation uint64
	// History is the transcript before the user message was appended.
	History []Message
	Text    string
}

// Session is a chat transcript with at most one request in flight.
// The transcript always starts with the greeting and is never empty.
type Session struct {
	mu         sync.Mutex
	id         string
	transcript []Message
	pending    bool
	generation uint64
	now        func() time.Time
}

// NewSession returns a session holding only the greeting.
func NewSession() *Session {
	s := &Session{
		id:  uuid.NewString(),
		now: time.Now,
	}
	s.transcript = []Message{s.greeting()}
	return s
}

func (s *Session) greeting() Message {
	return Message{Speaker: SpeakerAssistant, Text: Greeting, Time: s.now()}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Transcript returns a copy of the messages in order.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.transcript)
}

// Len returns the number of messages in the transcript.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transcript)
}

// Pending reports whether a request is in flight.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Generation returns the current reset generation.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Begin admits a user message: it is rejected when blank after trimming
// or while another request is pending. On admission the message is
// appended, the session becomes pending, and the returned Turn must be
// passed to Complete.
func (s *Session) Begin(text string) (Turn, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Turn{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending {
		return Turn{}, false
	}

	turn := Turn{
		SessionID:  s.id,
		Generation: s.generation,
		History:    slices.Clone(s.transcript),
		Text:       text,
	}
	s.transcript = append(s.transcript, Message{Speaker: SpeakerUser, Text: text, Time: s.now()})
	s.pending = true
	return turn, true
}

// Complete finishes a turn. A failed or empty reply is replaced by an
// apology so every admitted message gets an answer, and pending is
// cleared. A turn from another session or an older generation is
// discarded and Complete returns false.
func (s *Session) Complete(turn Turn, reply string, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if turn.SessionID != s.id || turn.Generation != s.generation || !s.pending {
		return false
	}

	text := reply
	if err != nil || strings.TrimSpace(reply) == "" {
		text = Apology(err)
	}
	s.transcript = append(s.transcript, Message{Speaker: SpeakerAssistant, Text: text, Time: s.now()})
	s.pending = false
	return true
}

// Reset restores the greeting-only transcript and clears pending. The
// generation is bumped so a reply to a turn begun before the reset is
// dropped.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = []Message{s.greeting()}
	s.pending = false
	s.generation++
}

// Send runs a full turn synchronously: Begin, the completion call, then
// Complete. It returns the assistant message appended, or false when the
// text was not admitted or the session was reset meanwhile.
func (s *Session) Send(ctx context.Context, c Completer, text string) (Message, bool) {
	turn, ok := s.Begin(text)
	if !ok {
		return Message{}, false
	}

	reply, err := c.Complete(ctx, turn.History, turn.Text)
	if !s.Complete(turn, reply, err) {
		return Message{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript[len(s.transcript)-1], true
}
