// Package chat is the assistant conversation screen.
package chat

import (
	"context"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/edgeai/edgeai/internal/chat"
	"github.com/edgeai/edgeai/internal/router"
	"github.com/edgeai/edgeai/internal/screen"
	"github.com/edgeai/edgeai/internal/ui/components"
	"github.com/edgeai/edgeai/internal/ui/layout"
	"github.com/edgeai/edgeai/internal/ui/theme"
)

const maxInputLen = 1000

// replyMsg carries the completion result for a turn.
type replyMsg struct {
	turn  chat.Turn
	reply string
	err   error
}

// ChatScreen shows a transcript and an input line. Every visit starts a
// fresh session.
type ChatScreen struct {
	completer   chat.Completer
	session     *chat.Session
	suggestions []string
	input       components.TextInput
	cancel      context.CancelFunc
	back        int // lines scrolled up from the bottom
	height      int
	logger      *zap.Logger
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.Closer = (*ChatScreen)(nil)

// New creates a chat screen. logger may be nil.
func New(completer chat.Completer, suggestions []string, logger *zap.Logger) *ChatScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatScreen{
		completer:   completer,
		session:     chat.NewSession(),
		suggestions: suggestions,
		input:       components.NewTextInput("Ask about gender equality...", maxInputLen),
		logger:      logger,
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	s.logger.Debug("chat session opened", zap.String("session_id", s.session.ID()))
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return router.ViewChat.Heading()
}

// Session returns the screen's transcript.
func (s *ChatScreen) Session() *chat.Session {
	return s.session
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Alt+1-" + strconv.Itoa(min(len(s.suggestions), 9)), Description: "Suggestion"},
		{Key: "Ctrl+R", Description: "Reset"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

// Close cancels any request in flight.
func (s *ChatScreen) Close() {
	s.stop()
}

func (s *ChatScreen) stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		return s, s.handleReply(msg)

	case tea.KeyPressMsg:
		key := msg.String()
		switch key {
		case "enter":
			return s, s.send(s.input.Value())
		case "ctrl+r":
			s.reset()
			return s, nil
		case "pgup":
			s.back += max(s.height/2, 1)
			return s, nil
		case "pgdown":
			s.back = max(s.back-max(s.height/2, 1), 0)
			return s, nil
		}
		if i, ok := suggestionIndex(key); ok {
			if i < len(s.suggestions) {
				return s, s.send(s.suggestions[i])
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func suggestionIndex(key string) (int, bool) {
	d, ok := strings.CutPrefix(key, "alt+")
	if !ok || len(d) != 1 || d[0] < '1' || d[0] > '9' {
		return 0, false
	}
	return int(d[0] - '1'), true
}

// send admits text and starts the completion call. It returns nil when
// the text is blank or a reply is still pending.
func (s *ChatScreen) send(text string) tea.Cmd {
	turn, ok := s.session.Begin(text)
	if !ok {
		return nil
	}
	s.input.Reset()
	s.back = 0

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	completer := s.completer

	s.logger.Debug("chat turn started",
		zap.String("session_id", turn.SessionID),
		zap.Uint64("generation", turn.Generation),
		zap.Int("history", len(turn.History)),
	)

	return func() tea.Msg {
		reply, err := completer.Complete(ctx, turn.History, turn.Text)
		return replyMsg{turn: turn, reply: reply, err: err}
	}
}

func (s *ChatScreen) handleReply(msg replyMsg) tea.Cmd {
	if !s.session.Complete(msg.turn, msg.reply, msg.err) {
		s.logger.Debug("dropped stale chat reply",
			zap.String("session_id", msg.turn.SessionID),
			zap.Uint64("generation", msg.turn.Generation),
		)
		return nil
	}
	s.stop()
	s.back = 0
	if msg.err != nil {
		s.logger.Warn("chat completion failed",
			zap.String("session_id", msg.turn.SessionID),
			zap.Error(msg.err),
		)
	}
	return nil
}

func (s *ChatScreen) reset() {
	s.stop()
	s.session.Reset()
	s.input.Reset()
	s.back = 0
	s.logger.Debug("chat reset",
		zap.String("session_id", s.session.ID()),
		zap.Uint64("generation", s.session.Generation()),
	)
}

func (s *ChatScreen) View(width, height int) string {
	s.height = height
	cw := components.ContentWidth(width)

	head := components.SectionTitle(
		"EDGE-AI Assistant",
		"Ask about Philippine laws, statistics, or gender concepts.",
		cw,
	)

	var footer strings.Builder
	footer.WriteString(s.renderSuggestions(cw))
	footer.WriteString(s.input.View(cw))

	avail := height - lipgloss.Height(head) - lipgloss.Height(footer.String()) - 2
	body := s.renderTranscript(cw, avail)

	view := head + "\n" + body + "\n" + footer.String()
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, view)
}

func (s *ChatScreen) renderSuggestions(cw int) string {
	if len(s.suggestions) == 0 || s.session.Len() > 1 {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.Hint.Render("Try asking:"))
	b.WriteString("\n")
	num := lipgloss.NewStyle().Foreground(theme.ArcadeYellow)
	text := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 4)
	for i, sug := range s.suggestions[:min(len(s.suggestions), 9)] {
		b.WriteString(num.Render(strconv.Itoa(i+1)+" ") + text.Render(sug))
		b.WriteString("\n")
	}
	return b.String()
}

// renderTranscript draws the messages and keeps the last avail lines,
// shifted up by the scroll amount.
func (s *ChatScreen) renderTranscript(cw, avail int) string {
	var blocks []string
	for _, m := range s.session.Transcript() {
		blocks = append(blocks, renderMessage(m, cw))
	}
	if s.session.Pending() {
		blocks = append(blocks, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("EDGE-AI is thinking..."))
	}

	lines := strings.Split(strings.Join(blocks, "\n"), "\n")
	if avail <= 0 || len(lines) <= avail {
		s.back = 0
		return strings.Join(lines, "\n")
	}

	s.back = min(s.back, len(lines)-avail)
	end := len(lines) - s.back
	return strings.Join(lines[end-avail:end], "\n")
}

func renderMessage(m chat.Message, cw int) string {
	bubbleWidth := cw * 3 / 4
	stamp := theme.Hint.Render(m.Time.Format("15:04"))

	if m.Speaker == chat.SpeakerUser {
		bubble := lipgloss.NewStyle().
			Foreground(theme.Text).
			Background(theme.Primary).
			Padding(0, 1).
			MaxWidth(bubbleWidth).
			Render(wrap(m.Text, bubbleWidth-2))
		block := lipgloss.JoinVertical(lipgloss.Right, bubble, stamp)
		return lipgloss.PlaceHorizontal(cw, lipgloss.Right, block)
	}

	name := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("EDGE-AI")
	bubble := lipgloss.NewStyle().
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(wrap(m.Text, bubbleWidth-4))
	return name + " " + stamp + "\n" + bubble
}

func wrap(text string, width int) string {
	width = max(width, 10)
	return lipgloss.NewStyle().Width(min(lipgloss.Width(text), width)).Render(text)
}
