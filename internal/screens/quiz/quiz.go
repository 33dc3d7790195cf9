// Package quiz is the exam-mode quiz screen. Answers are only revealed
// once the whole round is finished.
package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	engine "github.com/edgeai/edgeai/internal/quiz"
	"github.com/edgeai/edgeai/internal/router"
	"github.com/edgeai/edgeai/internal/screen"
	"github.com/edgeai/edgeai/internal/ui/components"
	"github.com/edgeai/edgeai/internal/ui/layout"
	"github.com/edgeai/edgeai/internal/ui/theme"
)

// QuizScreen plays rounds from a shared session so the used pool
// survives retakes and revisits.
type QuizScreen struct {
	session *engine.Session
	round   *engine.Round
	cursor  int
	scroll  components.Scroller
	height  int
	logger  *zap.Logger
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen over session. logger may be nil.
func New(session *engine.Session, logger *zap.Logger) *QuizScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizScreen{session: session, logger: logger}
}

// Init begins a fresh round.
func (s *QuizScreen) Init() tea.Cmd {
	s.start()
	return nil
}

func (s *QuizScreen) start() {
	s.round = s.session.Start()
	s.cursor = 0
	s.scroll = components.Scroller{}
	s.logger.Debug("quiz round started",
		zap.Int("round", s.session.Rounds()),
		zap.Int("pool", len(s.session.Used())),
	)
}

// Round returns the round being played.
func (s *QuizScreen) Round() *engine.Round {
	return s.round
}

func (s *QuizScreen) Title() string {
	return router.ViewQuiz.Heading()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.round != nil && s.round.Completed() {
		return []layout.KeyHint{
			{Key: "R", Description: "Retake"},
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Choose"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.round == nil {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.round.Completed() {
		switch key {
		case "r", "R":
			s.start()
		default:
			s.scroll = s.scroll.Update(msg, s.height-2)
		}
		return s, nil
	}

	options := len(s.round.Current().Options)
	switch key {
	case "1", "2", "3", "4", "a", "b", "c", "d":
		i := choiceIndex(key)
		if s.round.Select(i) {
			s.cursor = i
		}
	case "up", "k":
		s.cursor = (s.cursor + options - 1) % options
		s.round.Select(s.cursor)
	case "down", "j":
		s.cursor = (s.cursor + 1) % options
		s.round.Select(s.cursor)
	case "enter", "space":
		if _, chosen := s.round.Selected(); !chosen {
			return s, nil
		}
		s.round.ConfirmAndAdvance()
		s.cursor = 0
		if s.round.Completed() {
			s.logger.Info("quiz round completed",
				zap.Int("round", s.session.Rounds()),
				zap.Int("score", s.round.Score()),
				zap.Int("total", s.round.Total()),
			)
		}
	}
	return s, nil
}

func choiceIndex(key string) int {
	switch key {
	case "1", "a":
		return 0
	case "2", "b":
		return 1
	case "3", "c":
		return 2
	default:
		return 3
	}
}

func (s *QuizScreen) View(width, height int) string {
	s.height = height
	if s.round == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var body string
	if s.round.Completed() {
		body = s.scroll.View(s.renderResults(cw), height)
	} else {
		body = s.renderQuestion(cw)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (s *QuizScreen) renderQuestion(cw int) string {
	r := s.round
	var b strings.Builder

	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("Question %d", r.Step()+1))
	right := theme.Tag.Render("Exam Mode")
	gap := max(cw-lipgloss.Width(left)-lipgloss.Width(right), 1)
	b.WriteString(left + strings.Repeat(" ", gap) + right)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(r.Step())/float64(r.Total()), false, cw)
	bar.Suffix = fmt.Sprintf("%d/%d", r.Step(), r.Total())
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	q := r.Current()
	mc := components.NewMultiChoice(q.Prompt, q.Options)
	if sel, ok := r.Selected(); ok {
		mc.Selected = sel
	}
	b.WriteString(mc.View(cw))
	b.WriteString("\n")

	label := "Confirm & Next"
	if r.IsLast() {
		label = "Finish & Reveal Results"
	}
	_, chosen := r.Selected()
	btn := components.NewButton(label, chosen)
	btn.Disabled = !chosen
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, btn.View()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		theme.Hint.Render("Answers will be revealed at the end of the quiz")))

	return b.String()
}

func (s *QuizScreen) renderResults(cw int) string {
	r := s.round
	var b strings.Builder

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(cw, lipgloss.Center, str)
	}

	b.WriteString(center(theme.Title.Render("Quiz Complete!")))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Foreground(theme.TextDim).Render(engine.Verdict(r.Score()))))
	b.WriteString("\n\n")

	score := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("%d/%d", r.Score(), r.Total()))
	b.WriteString(center(theme.Hint.Render("Final Score") + "  " + score))
	b.WriteString("\n")
	bar := components.NewProgressBar("", float64(r.Score())/float64(r.Total()), true, cw)
	bar.Color = theme.Success
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(center(components.NewButton("Retake (New Questions)  [R]", true).View()))
	b.WriteString("\n\n")

	for i, item := range r.Review() {
		b.WriteString(components.ArcadeCard(renderReviewItem(i, item, cw-4), cw))
		b.WriteString("\n")
	}

	return b.String()
}

func renderReviewItem(i int, item engine.ReviewItem, width int) string {
	var b strings.Builder

	status := theme.Correct.Render("✓ Correct")
	if !item.Correct {
		status = theme.Incorrect.Render("✗ Incorrect")
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Q%d  ", i+1)) + status)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).Bold(true).Render(item.Prompt))
	b.WriteString("\n\n")

	choiceColor := theme.Success
	if !item.Correct {
		choiceColor = theme.Error
	}
	b.WriteString(theme.Hint.Render("Your Choice: "))
	b.WriteString(lipgloss.NewStyle().Foreground(choiceColor).Render(item.SelectedText))
	b.WriteString("\n")
	if !item.Correct {
		b.WriteString(theme.Hint.Render("Correct Answer: "))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(item.CorrectText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render("Educational Insight"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.TextDim).Render(item.Explanation))

	return b.String()
}
