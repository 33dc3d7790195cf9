// Package feedback is the feedback form screen. Submissions are logged
// and kept in memory for the rest of the run.
package feedback

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/edgeai/edgeai/internal/feedback"
	"github.com/edgeai/edgeai/internal/router"
	"github.com/edgeai/edgeai/internal/screen"
	"github.com/edgeai/edgeai/internal/ui/components"
	"github.com/edgeai/edgeai/internal/ui/layout"
	"github.com/edgeai/edgeai/internal/ui/theme"
)

type field int

const (
	fieldName field = iota
	fieldRole
	fieldRating
	fieldClarity
	fieldComments
	fieldSubmit
	fieldCount
)

// FeedbackScreen edits a feedback.Form one field at a time.
type FeedbackScreen struct {
	form      feedback.Form
	name      components.TextInput
	clarity   components.TextInput
	comments  components.TextInput
	focus     field
	errMsg    string
	submitted []feedback.Submission
	thanked   bool
	now       func() time.Time
	logger    *zap.Logger
}

var _ screen.Screen = (*FeedbackScreen)(nil)
var _ screen.KeyHintProvider = (*FeedbackScreen)(nil)

// New creates the feedback screen. logger may be nil.
func New(logger *zap.Logger) *FeedbackScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &FeedbackScreen{now: time.Now, logger: logger}
	s.clear()
	return s
}

func (s *FeedbackScreen) clear() {
	s.form = feedback.NewForm()
	s.name = components.NewTextInput("Your Name", feedback.MaxTextLen)
	s.clarity = components.NewTextInput("Was the information easy to understand?", feedback.MaxTextLen)
	s.comments = components.NewTextInput("Any bugs? Suggestions for new topics?", feedback.MaxTextLen)
	s.name.Label = "Name (Optional)"
	s.clarity.Label = "Content Clarity"
	s.comments.Label = "Other Comments / Suggestions"
	s.clarity.Blur()
	s.comments.Blur()
	s.focus = fieldName
	s.errMsg = ""
	s.thanked = false
}

// Init shows a fresh form when the screen is reopened after a submission.
func (s *FeedbackScreen) Init() tea.Cmd {
	if s.thanked {
		s.clear()
	}
	return s.name.Init()
}

func (s *FeedbackScreen) Title() string {
	return router.ViewFeedback.Heading()
}

// Submissions returns the accepted submissions so far.
func (s *FeedbackScreen) Submissions() []feedback.Submission {
	return s.submitted
}

func (s *FeedbackScreen) KeyHints() []layout.KeyHint {
	if s.thanked {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send Another Message"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Next/Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FeedbackScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if s.thanked {
			if kmsg.String() == "enter" {
				s.clear()
				return s, s.name.Focus()
			}
			return s, nil
		}

		switch kmsg.String() {
		case "tab", "down":
			return s, s.moveFocus(1)
		case "shift+tab", "up":
			return s, s.moveFocus(-1)
		case "enter":
			if s.focus == fieldSubmit {
				s.submit()
				return s, nil
			}
			return s, s.moveFocus(1)
		case "left", "right":
			step := 1
			if kmsg.String() == "left" {
				step = -1
			}
			switch s.focus {
			case fieldRole:
				if step > 0 {
					s.form.Role = s.form.NextRole()
				} else {
					s.form.Role = s.form.PrevRole()
				}
				return s, nil
			case fieldRating:
				s.form.Rating = s.form.AdjustRating(step)
				return s, nil
			}
		}
	}

	if s.thanked {
		return s, nil
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldClarity:
		s.clarity, cmd = s.clarity.Update(msg)
	case fieldComments:
		s.comments, cmd = s.comments.Update(msg)
	case fieldRating:
		if kmsg, ok := msg.(tea.KeyPressMsg); ok {
			if k := kmsg.String(); len(k) == 1 && k[0] >= '1' && k[0] <= '5' {
				s.form.Rating = int(k[0] - '0')
			}
		}
	}
	return s, cmd
}

func (s *FeedbackScreen) moveFocus(step int) tea.Cmd {
	s.focus = (s.focus + field(step) + fieldCount) % fieldCount
	s.name.Blur()
	s.clarity.Blur()
	s.comments.Blur()
	switch s.focus {
	case fieldName:
		return s.name.Focus()
	case fieldClarity:
		return s.clarity.Focus()
	case fieldComments:
		return s.comments.Focus()
	}
	return nil
}

func (s *FeedbackScreen) submit() {
	s.form.Name = s.name.Value()
	s.form.Clarity = s.clarity.Value()
	s.form.Comments = s.comments.Value()

	sub, err := s.form.Submit(s.now())
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.submitted = append(s.submitted, sub)
	s.thanked = true
	s.errMsg = ""
	s.logger.Info("feedback submitted",
		zap.String("name", sub.DisplayName()),
		zap.String("role", string(sub.Role)),
		zap.Int("rating", sub.Rating),
		zap.String("clarity", sub.Clarity),
		zap.String("comments", sub.Comments),
		zap.Time("submitted_at", sub.SubmittedAt),
	)
}

func (s *FeedbackScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var body string
	if s.thanked {
		body = s.renderThanks(cw)
	} else {
		body = s.renderForm(cw)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (s *FeedbackScreen) renderThanks(cw int) string {
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Bold(true).Render("Maraming Salamat!"))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(
		"Your feedback helps us build a more inclusive platform for everyone."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		components.NewButton("Send Another Message", true).View()))
	return b.String()
}

func (s *FeedbackScreen) renderForm(cw int) string {
	var b strings.Builder
	b.WriteString(components.SectionTitle(
		"User Feedback",
		"Tell us about your experience with the platform. Your input shapes what we build next.",
		cw,
	))
	b.WriteString("\n\n")

	b.WriteString(s.name.View(cw))
	b.WriteString("\n")
	b.WriteString(s.renderRoles(cw))
	b.WriteString("\n\n")
	b.WriteString(s.renderRating())
	b.WriteString("\n\n")
	b.WriteString(s.clarity.View(cw))
	b.WriteString("\n")
	b.WriteString(s.comments.View(cw))
	b.WriteString("\n")

	btn := components.NewButton("Submit Feedback", s.focus == fieldSubmit)
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, btn.View()))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Error).Render(s.errMsg))
	}
	return b.String()
}

func (s *FeedbackScreen) label(text string, f field) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.focus == f {
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return style.Render(text)
}

func (s *FeedbackScreen) renderRoles(cw int) string {
	labels := make([]string, 0, len(feedback.Roles()))
	active := 0
	for i, r := range feedback.Roles() {
		labels = append(labels, string(r))
		if r == s.form.Role {
			active = i
		}
	}
	return s.label("I am a...", fieldRole) + "\n" + components.Tabs(labels, active)
}

func (s *FeedbackScreen) renderRating() string {
	var stars strings.Builder
	for i := feedback.MinRating; i <= feedback.MaxRating; i++ {
		if i <= s.form.Rating {
			stars.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("★ "))
		} else {
			stars.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("☆ "))
		}
	}
	scale := theme.Hint.Render("Poor") + "  " + stars.String() + " " + theme.Hint.Render("Excellent")
	value := lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("  %d/%d", s.form.Rating, feedback.MaxRating))
	return s.label("Overall Experience (1-5)", fieldRating) + "\n" + scale + value
}
