// Package app is the root Bubble Tea model that hosts the screen stack.
package app

import (
	"context"
	"errors"
	"sync"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/edgeai/edgeai/internal/chat"
	"github.com/edgeai/edgeai/internal/content"
	"github.com/edgeai/edgeai/internal/llm"
	"github.com/edgeai/edgeai/internal/quiz"
	"github.com/edgeai/edgeai/internal/router"
	"github.com/edgeai/edgeai/internal/screen"
	"github.com/edgeai/edgeai/internal/screens/home"
	"github.com/edgeai/edgeai/internal/screens/setup"
	"github.com/edgeai/edgeai/internal/screens/welcome"
	"github.com/edgeai/edgeai/internal/ui/layout"
)

// ConnectFunc builds a provider from an API key entered on the setup screen.
type ConnectFunc func(ctx context.Context, key string) (llm.Provider, error)

// Options holds dependencies injected into the app.
type Options struct {
	Catalog *content.Catalog

	// Provider is the configured completion service. When nil the app
	// asks for a key on the setup screen and builds one with Connect.
	Provider llm.Provider
	Connect  ConnectFunc

	Logger *zap.Logger
}

// connection holds the provider, which the setup screen may install
// from a command goroutine.
type connection struct {
	mu       sync.Mutex
	provider llm.Provider
}

func (c *connection) get() llm.Provider {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.provider
}

func (c *connection) set(p llm.Provider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.provider = p
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	conn   *connection
	width  int
	height int
}

// newAppModel wires the screens: welcome first, then the credential gate
// when no provider is configured, then home.
func newAppModel(opts Options) AppModel {
	if opts.Catalog == nil {
		opts.Catalog = content.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	logger := opts.Logger
	conn := &connection{provider: opts.Provider}

	quizSession, err := quiz.NewSession(opts.Catalog.Questions(), nil)
	if err != nil {
		logger.Error("quiz unavailable", zap.Error(err))
	}

	newHome := func() screen.Screen {
		return home.New(home.Deps{
			Catalog:   opts.Catalog,
			Assistant: chat.NewAssistant(conn.get()),
			Quiz:      quizSession,
			Logger:    logger,
		})
	}

	connect := func(ctx context.Context, key string) error {
		if opts.Connect == nil {
			return errors.New("no provider factory configured")
		}
		p, err := opts.Connect(ctx, key)
		if err != nil {
			logger.Warn("provider setup failed", zap.Error(err))
			return err
		}
		conn.set(p)
		logger.Info("provider connected", zap.String("model", p.ModelID()))
		return nil
	}

	afterWelcome := func() screen.Screen {
		if conn.get() != nil {
			return newHome()
		}
		return setup.New(connect, newHome)
	}

	return AppModel{
		router: router.New(welcome.New(afterWelcome)),
		conn:   conn,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.CloseAll()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Pop
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// status describes the completion service for the header.
func (m AppModel) status() string {
	if p := m.conn.get(); p != nil {
		return "● " + p.ModelID()
	}
	return "○ AI offline"
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		if opts.Logger != nil {
			opts.Logger.Error("program exited with error", zap.Error(err))
		}
		return err
	}
	return nil
}
