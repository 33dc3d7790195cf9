// Package setup is the credential gate shown when no completion service
// is configured at startup.
package setup

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edgeai/edgeai/internal/router"
	"github.com/edgeai/edgeai/internal/screen"
	"github.com/edgeai/edgeai/internal/ui/components"
	"github.com/edgeai/edgeai/internal/ui/layout"
	"github.com/edgeai/edgeai/internal/ui/theme"
)

// BillingURL explains how to obtain a key.
const BillingURL = "https://ai.google.dev/gemini-api/docs/billing"

// ConnectFunc configures the completion service with the given key.
type ConnectFunc func(ctx context.Context, key string) error

type connectedMsg struct {
	err error
}

// SetupScreen asks for a Gemini API key and, once the service is
// configured, replaces itself with the screen built by next.
type SetupScreen struct {
	input      components.TextInput
	connect    ConnectFunc
	next       func() screen.Screen
	connecting bool
	errMsg     string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen.
func New(connect ConnectFunc, next func() screen.Screen) *SetupScreen {
	return &SetupScreen{
		input:   components.NewMaskedInput("Paste your Gemini API key"),
		connect: connect,
		next:    next,
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SetupScreen) Title() string {
	return "Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Select Gemini API Key"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case connectedMsg:
		s.connecting = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, router.Replace(s.next())

	case tea.KeyPressMsg:
		if s.connecting {
			return s, nil
		}
		if msg.String() == "enter" {
			return s.submit()
		}
		s.errMsg = ""
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SetupScreen) submit() (screen.Screen, tea.Cmd) {
	key := strings.TrimSpace(s.input.Value())
	if key == "" {
		s.errMsg = "Please enter an API key."
		return s, nil
	}
	s.connecting = true
	s.errMsg = ""
	connect := s.connect
	return s, func() tea.Msg {
		if connect == nil {
			return connectedMsg{err: errors.New("no connector configured")}
		}
		return connectedMsg{err: connect(context.Background(), key)}
	}
}

func (s *SetupScreen) View(width, height int) string {
	cw := min(components.ContentWidth(width), 60)

	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("🔒 AI Connection Required")

	body := lipgloss.NewStyle().
		Width(cw - 6).
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Render("To use the EDGE-AI Chatbot and educational research tools, you must provide a Gemini API key from a paid GCP project.")

	sections := []string{title, "", body, "", s.input.View(cw - 6)}

	switch {
	case s.connecting:
		sections = append(sections, "", theme.Hint.Render("Connecting..."))
	case s.errMsg != "":
		sections = append(sections, "", lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	button := components.Button{Label: "Select Gemini API Key", Active: !s.connecting, Disabled: s.connecting}
	link := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Learn about API billing: " + BillingURL)
	sections = append(sections, "", button.View(), "", link)

	card := components.ArcadeCard(lipgloss.JoinVertical(lipgloss.Center, sections...), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
