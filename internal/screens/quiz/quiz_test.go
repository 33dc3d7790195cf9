package quiz

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/edgeai/edgeai/internal/content"
	engine "github.com/edgeai/edgeai/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newScreen(t *testing.T) *QuizScreen {
	t.Helper()
	sess, err := engine.NewSession(content.Default().Questions(), rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	s := New(sess, nil)
	s.Init()
	return s
}

func TestEnterWithoutChoiceDoesNothing(t *testing.T) {
	s := newScreen(t)
	s.Update(specialKey(tea.KeyEnter))
	if s.Round().Step() != 0 {
		t.Errorf("expected step 0, got %d", s.Round().Step())
	}
}

func TestNumberKeySelects(t *testing.T) {
	s := newScreen(t)
	s.Update(keyPress('3'))
	if sel, ok := s.Round().Selected(); !ok || sel != 2 {
		t.Errorf("expected tentative choice 2, got %d (%v)", sel, ok)
	}
	s.Update(keyPress('1'))
	if sel, _ := s.Round().Selected(); sel != 0 {
		t.Errorf("choice should be changeable, got %d", sel)
	}
}

func TestArrowsMoveSelection(t *testing.T) {
	s := newScreen(t)
	s.Update(specialKey(tea.KeyDown))
	if sel, _ := s.Round().Selected(); sel != 1 {
		t.Errorf("expected choice 1 after down, got %d", sel)
	}
	s.Update(specialKey(tea.KeyUp))
	s.Update(specialKey(tea.KeyUp))
	if sel, _ := s.Round().Selected(); sel != 3 {
		t.Errorf("up should wrap to the last option, got %d", sel)
	}
}

func TestFinishRoundShowsResults(t *testing.T) {
	s := newScreen(t)
	view := s.View(100, 40)
	if !strings.Contains(view, "Question 1") || !strings.Contains(view, "Exam Mode") {
		t.Errorf("unexpected question view:\n%s", view)
	}

	for step := range engine.RoundSize {
		if step == engine.RoundSize-1 {
			if !strings.Contains(s.View(100, 40), "Finish & Reveal Results") {
				t.Error("last question should offer Finish & Reveal Results")
			}
		}
		s.Update(keyPress('1'))
		s.Update(specialKey(tea.KeyEnter))
	}

	if !s.Round().Completed() {
		t.Fatal("round should be completed")
	}
	view = s.View(100, 1000)
	for _, want := range []string{"Quiz Complete!", "Final Score", "Educational Insight", engine.Verdict(s.Round().Score())} {
		if !strings.Contains(view, want) {
			t.Errorf("results view missing %q", want)
		}
	}
}

func TestRetakeStartsNewRound(t *testing.T) {
	s := newScreen(t)
	first := s.Round()
	for range engine.RoundSize {
		s.Update(keyPress('2'))
		s.Update(specialKey(tea.KeyEnter))
	}

	s.Update(keyPress('r'))
	if s.Round() == first {
		t.Fatal("retake should start a new round")
	}
	if s.Round().Completed() || s.Round().Step() != 0 {
		t.Error("retake round should start at the first question")
	}
	if s.session.Rounds() != 2 {
		t.Errorf("expected 2 rounds on the shared session, got %d", s.session.Rounds())
	}
}

func TestRevisitKeepsPool(t *testing.T) {
	sess, _ := engine.NewSession(content.Default().Questions(), rand.New(rand.NewPCG(3, 4)))

	a := New(sess, nil)
	a.Init()
	b := New(sess, nil)
	b.Init()

	if sess.Rounds() != 2 {
		t.Fatalf("expected 2 rounds, got %d", sess.Rounds())
	}
	if a.Round() == b.Round() {
		t.Error("each visit should get its own round")
	}
}
