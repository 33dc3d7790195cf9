package feedback

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/edgeai/edgeai/internal/feedback"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *FeedbackScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func newScreen() *FeedbackScreen {
	s := New(nil)
	s.now = func() time.Time { return time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC) }
	s.Init()
	return s
}

func TestDefaults(t *testing.T) {
	s := newScreen()
	if s.form.Role != feedback.RoleStudent || s.form.Rating != feedback.DefaultRating {
		t.Errorf("unexpected defaults: %+v", s.form)
	}
	if !s.name.Focused() || s.clarity.Focused() || s.comments.Focused() {
		t.Error("only the name field should start focused")
	}
}

func TestRoleAndRatingSelectors(t *testing.T) {
	s := newScreen()
	s.Update(key(tea.KeyTab))
	s.Update(key(tea.KeyRight))
	s.Update(key(tea.KeyRight))
	if s.form.Role != feedback.RoleParent {
		t.Errorf("expected Parent, got %s", s.form.Role)
	}
	s.Update(key(tea.KeyLeft))
	if s.form.Role != feedback.RoleTeacher {
		t.Errorf("expected Teacher, got %s", s.form.Role)
	}

	s.Update(key(tea.KeyTab))
	s.Update(key(tea.KeyRight))
	if s.form.Rating != feedback.MaxRating {
		t.Errorf("rating should clamp at %d, got %d", feedback.MaxRating, s.form.Rating)
	}
	s.Update(key(tea.KeyLeft))
	s.Update(key(tea.KeyLeft))
	if s.form.Rating != 3 {
		t.Errorf("expected rating 3, got %d", s.form.Rating)
	}
	s.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	if s.form.Rating != 1 {
		t.Errorf("digit should set the rating, got %d", s.form.Rating)
	}
}

func TestSubmitFlow(t *testing.T) {
	s := newScreen()
	typeText(s, "  Maria  ")

	// name -> role -> rating -> clarity
	for range 3 {
		s.Update(key(tea.KeyEnter))
	}
	if !s.clarity.Focused() {
		t.Fatal("enter should advance focus to clarity")
	}
	typeText(s, "Very clear")
	s.Update(key(tea.KeyEnter))
	typeText(s, "More quizzes please")
	s.Update(key(tea.KeyEnter))
	if s.focus != fieldSubmit {
		t.Fatalf("expected submit focus, got %d", s.focus)
	}
	s.Update(key(tea.KeyEnter))

	subs := s.Submissions()
	if len(subs) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(subs))
	}
	got := subs[0]
	if got.Name != "Maria" || got.Clarity != "Very clear" || got.Comments != "More quizzes please" {
		t.Errorf("unexpected submission %+v", got)
	}
	if !strings.Contains(s.View(100, 40), "Maraming Salamat!") {
		t.Error("thank-you view expected after submit")
	}

	s.Update(key(tea.KeyEnter))
	if s.thanked || s.name.Value() != "" || s.focus != fieldName {
		t.Error("Send Another Message should reset the form")
	}
	if len(s.Submissions()) != 1 {
		t.Error("earlier submissions should be kept")
	}
}

func TestAnonymousSubmission(t *testing.T) {
	s := newScreen()
	s.Update(key(tea.KeyUp)) // wraps to submit
	if s.focus != fieldSubmit {
		t.Fatalf("up from the first field should wrap to submit, got %d", s.focus)
	}
	s.Update(key(tea.KeyEnter))
	if got := s.Submissions()[0].DisplayName(); got != "Anonymous" {
		t.Errorf("expected Anonymous, got %q", got)
	}
}

func TestFormViewLabels(t *testing.T) {
	view := newScreen().View(100, 60)
	for _, want := range []string{"User Feedback", "Name (Optional)", "I am a...", "Overall Experience (1-5)", "Content Clarity", "Other Comments / Suggestions"} {
		if !strings.Contains(view, want) {
			t.Errorf("form view missing %q", want)
		}
	}
}
