package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/edgeai/edgeai/internal/llm"
	"github.com/edgeai/edgeai/internal/router"
	"github.com/edgeai/edgeai/internal/screens/home"
	"github.com/edgeai/edgeai/internal/screens/setup"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// step feeds msg to the model and then every message produced by the
// returned command, skipping timer ticks.
func step(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		next, _ = m.Update(out)
		m = next.(AppModel)
	}
	return m
}

// press feeds msg without running the returned command.
func press(m AppModel, msg tea.Msg) AppModel {
	next, _ := m.Update(msg)
	return next.(AppModel)
}

func sized(m AppModel) AppModel {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(AppModel)
}

func TestWelcomeGoesHomeWhenConnected(t *testing.T) {
	m := sized(newAppModel(Options{Provider: llm.NewEchoProvider()}))
	m = step(t, m, keyPress('x'))

	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home screen, got %T", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("welcome should be replaced, depth %d", m.router.Depth())
	}
}

func TestCredentialGate(t *testing.T) {
	var gotKey string
	m := sized(newAppModel(Options{
		Connect: func(_ context.Context, key string) (llm.Provider, error) {
			gotKey = key
			return llm.NewEchoProvider(), nil
		},
	}))
	m = step(t, m, keyPress('x'))

	if _, ok := m.router.Active().(*setup.SetupScreen); !ok {
		t.Fatalf("expected setup screen, got %T", m.router.Active())
	}
	if !strings.Contains(m.status(), "AI offline") {
		t.Error("header should show the offline status")
	}

	for _, r := range "AIza-test" {
		m = press(m, keyPress(r))
	}
	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = next.(AppModel)
	if cmd == nil {
		t.Fatal("enter should start connecting")
	}
	m = step(t, m, cmd())

	if gotKey != "AIza-test" {
		t.Errorf("connect received %q", gotKey)
	}
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home after connecting, got %T", m.router.Active())
	}
	if m.conn.get() == nil {
		t.Error("provider should be installed")
	}
}

func TestCredentialGateFailureStays(t *testing.T) {
	m := sized(newAppModel(Options{
		Connect: func(context.Context, string) (llm.Provider, error) {
			return nil, errors.New("bad key")
		},
	}))
	m = step(t, m, keyPress('x'))
	m = press(m, keyPress('k'))
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = step(t, m, cmd())

	if _, ok := m.router.Active().(*setup.SetupScreen); !ok {
		t.Fatalf("failed connect should stay on setup, got %T", m.router.Active())
	}
}

func TestEscPopsToHome(t *testing.T) {
	m := sized(newAppModel(Options{Provider: llm.NewEchoProvider()}))
	m = step(t, m, keyPress('x'))
	m = step(t, m, keyPress('3'))
	if m.router.Depth() != 2 {
		t.Fatalf("expected statistics pushed, depth %d", m.router.Depth())
	}

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("esc should return home, got %T", m.router.Active())
	}

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 1 {
		t.Error("esc at the bottom should be a no-op")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Provider: llm.NewEchoProvider()})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestFooterUsesScreenHints(t *testing.T) {
	m := sized(newAppModel(Options{Provider: llm.NewEchoProvider()}))
	m = step(t, m, keyPress('x'))
	var keys []string
	for _, h := range m.footerHints(m.router.Active()) {
		keys = append(keys, h.Description)
	}
	joined := strings.Join(keys, ",")
	if !strings.Contains(joined, "Featured") || !strings.HasSuffix(joined, "Quit") {
		t.Errorf("footer should list home key hints then quit, got %s", joined)
	}
	if m.status() != "● mock" {
		t.Errorf("unexpected status %q", m.status())
	}
}
