// Package home is the landing screen: slideshow, fact ticker and the
// menu into every section.
package home

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/edgeai/edgeai/internal/chat"
	"github.com/edgeai/edgeai/internal/content"
	"github.com/edgeai/edgeai/internal/quiz"
	"github.com/edgeai/edgeai/internal/router"
	"github.com/edgeai/edgeai/internal/screen"
	chatscreen "github.com/edgeai/edgeai/internal/screens/chat"
	feedbackscreen "github.com/edgeai/edgeai/internal/screens/feedback"
	"github.com/edgeai/edgeai/internal/screens/modules"
	quizscreen "github.com/edgeai/edgeai/internal/screens/quiz"
	"github.com/edgeai/edgeai/internal/screens/resources"
	"github.com/edgeai/edgeai/internal/screens/stats"
	"github.com/edgeai/edgeai/internal/ui/components"
	"github.com/edgeai/edgeai/internal/ui/layout"
)

// Rotation intervals for the slideshow and the fact ticker.
var (
	SlideInterval = 6 * time.Second
	FactInterval  = 8 * time.Second
)

// FeaturedModuleID is the module behind the recommended-study card.
const FeaturedModuleID = "women-in-stem"

// Deps are the services the home screen hands to the sections it opens.
type Deps struct {
	Catalog   *content.Catalog
	Assistant chat.Completer
	Quiz      *quiz.Session
	Logger    *zap.Logger
}

type slideTickMsg struct{ gen uint64 }

type factTickMsg struct{ gen uint64 }

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps     Deps
	menu     components.Menu
	views    []router.View
	slides   []content.Slide
	facts    []string
	slide    int
	fact     int
	gen      uint64
	feedback *feedbackscreen.FeedbackScreen
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps Deps) *HomeScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	h := &HomeScreen{
		deps:     deps,
		views:    router.MenuViews(),
		slides:   deps.Catalog.Slides(),
		facts:    deps.Catalog.Facts(),
		feedback: feedbackscreen.New(deps.Logger.Named("feedback")),
	}

	items := make([]components.MenuItem, 0, len(h.views)+1)
	for _, v := range h.views {
		items = append(items, components.MenuItem{
			Label:    v.Heading(),
			Action:   func() tea.Cmd { return h.open(v) },
			Disabled: v == router.ViewQuiz && deps.Quiz == nil,
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Exit",
		Action: func() tea.Cmd { return tea.Quit },
	})
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.startTimers()
}

// Resume restarts the timers that stopped while another screen was on top.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.startTimers()
}

func (h *HomeScreen) startTimers() tea.Cmd {
	h.gen++
	return tea.Batch(slideTick(h.gen), factTick(h.gen))
}

func slideTick(gen uint64) tea.Cmd {
	return tea.Tick(SlideInterval, func(time.Time) tea.Msg { return slideTickMsg{gen: gen} })
}

func factTick(gen uint64) tea.Cmd {
	return tea.Tick(FactInterval, func(time.Time) tea.Msg { return factTickMsg{gen: gen} })
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "←→", Description: "Slides"},
		{Key: "F", Description: "Next fact"},
		{Key: "S", Description: "Featured"},
	}
}

// Slide returns the index of the slide on display.
func (h *HomeScreen) Slide() int {
	return h.slide
}

// Fact returns the index of the fact on display.
func (h *HomeScreen) Fact() int {
	return h.fact
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case slideTickMsg:
		if msg.gen != h.gen {
			return h, nil
		}
		h.slide = next(h.slide, 1, len(h.slides))
		return h, slideTick(h.gen)

	case factTickMsg:
		if msg.gen != h.gen {
			return h, nil
		}
		h.fact = next(h.fact, 1, len(h.facts))
		return h, factTick(h.gen)

	case tea.KeyPressMsg:
		switch key := msg.String(); key {
		case "left", "h":
			h.slide = next(h.slide, -1, len(h.slides))
			return h, nil
		case "right", "l":
			h.slide = next(h.slide, 1, len(h.slides))
			return h, nil
		case "f":
			h.fact = next(h.fact, 1, len(h.facts))
			return h, nil
		case "s":
			if m, ok := h.deps.Catalog.Module(FeaturedModuleID); ok {
				return h, router.Push(modules.NewDetail(m))
			}
			return h, nil
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				if i := int(key[0] - '1'); i < len(h.menu.Items)-1 && !h.menu.Items[i].Disabled {
					h.menu.Selected = i
					return h, h.open(h.views[i])
				}
				return h, nil
			}
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func next(i, step, n int) int {
	if n == 0 {
		return 0
	}
	return (i + step + n) % n
}

// Open builds the screen for a top-level view.
func (h *HomeScreen) Open(v router.View) screen.Screen {
	d := h.deps
	switch v {
	case router.ViewModules:
		return modules.New(d.Catalog)
	case router.ViewChat:
		return chatscreen.New(d.Assistant, d.Catalog.Suggestions(), d.Logger.Named("chat"))
	case router.ViewStatistics:
		return stats.New(d.Catalog.Datasets())
	case router.ViewQuiz:
		if d.Quiz == nil {
			return nil
		}
		return quizscreen.New(d.Quiz, d.Logger.Named("quiz"))
	case router.ViewResources:
		return resources.New(d.Catalog)
	case router.ViewFeedback:
		return h.feedback
	}
	return nil
}

func (h *HomeScreen) open(v router.View) tea.Cmd {
	s := h.Open(v)
	if s == nil {
		return nil
	}
	h.deps.Logger.Debug("open view", zap.String("view", v.String()))
	return router.Push(s)
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 40 || width < 90
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if len(h.slides) > 0 {
		sections = append(sections, renderSlide(h.slides[h.slide], h.slide, len(h.slides), cw))
	}
	if len(h.facts) > 0 {
		sections = append(sections, renderFact(h.facts[h.fact], cw))
	}
	sections = append(sections, renderMenu(h.menu, h.views, cw))
	if !compact {
		if m, ok := h.deps.Catalog.Module(FeaturedModuleID); ok {
			sections = append(sections, renderFeatured(m, cw))
		}
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
