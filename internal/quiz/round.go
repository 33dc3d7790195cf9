package quiz

import (
	"errors"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/edgeai/edgeai/internal/content"
)

// RoundSize is the number of questions asked per round.
const RoundSize = content.MinQuestions

// ErrCatalogTooSmall is returned when the question bank cannot fill a round.
var ErrCatalogTooSmall = errors.New("quiz: question bank is smaller than a round")

// Pool is the set of question IDs already served in the current session.
// It is a plain value: NewRound never mutates the pool it is given.
type Pool map[string]struct{}

// Contains reports whether the question ID has been served.
func (p Pool) Contains(id string) bool {
	_, ok := p[id]
	return ok
}

// Answer is a committed choice for one question.
type Answer struct {
	Question content.Question
	Selected int
}

// IsCorrect reports whether the committed choice is the correct option.
func (a Answer) IsCorrect() bool {
	return a.Selected == a.Question.Correct
}

// Round is one pass of RoundSize questions. It moves from step 0 to
// completion through ConfirmAndAdvance and is terminal once completed.
type Round struct {
	questions []content.Question
	current   int
	selected  int // -1 when no tentative choice
	answers   []Answer
	completed bool
}

// NewRound samples RoundSize questions from bank that are not in used.
// When fewer than RoundSize unused questions remain the pool starts over
// from the whole bank. The chosen questions keep the shuffled order.
// It returns the round and the pool including the chosen IDs.
func NewRound(bank []content.Question, used Pool, rng *rand.Rand) (*Round, Pool, error) {
	if len(bank) < RoundSize {
		return nil, used, ErrCatalogTooSmall
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	next := make(Pool, len(used)+RoundSize)
	maps.Copy(next, used)

	available := make([]content.Question, 0, len(bank))
	for _, q := range bank {
		if !next.Contains(q.ID) {
			available = append(available, q)
		}
	}
	if len(available) < RoundSize {
		clear(next)
		available = slices.Clone(bank)
	}

	rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	chosen := slices.Clone(available[:RoundSize])
	for _, q := range chosen {
		next[q.ID] = struct{}{}
	}

	return &Round{
		questions: chosen,
		selected:  -1,
		answers:   make([]Answer, 0, RoundSize),
	}, next, nil
}

// Questions returns the round's questions in presentation order.
func (r *Round) Questions() []content.Question {
	return slices.Clone(r.questions)
}

// Current returns the question at the current step.
func (r *Round) Current() content.Question {
	return r.questions[r.current]
}

// Step returns the zero-based index of the current question.
func (r *Round) Step() int {
	return r.current
}

// Total returns the number of questions in the round.
func (r *Round) Total() int {
	return len(r.questions)
}

// IsLast reports whether the current question is the final one.
func (r *Round) IsLast() bool {
	return r.current == len(r.questions)-1
}

// Select records a tentative choice for the current question. It can be
// called repeatedly; nothing is committed until ConfirmAndAdvance.
// Returns false when the round is completed or the index is out of range.
func (r *Round) Select(option int) bool {
	if r.completed {
		return false
	}
	if option < 0 || option >= len(r.questions[r.current].Options) {
		return false
	}
	r.selected = option
	return true
}

// Selected returns the tentative choice, if any.
func (r *Round) Selected() (int, bool) {
	return r.selected, r.selected >= 0
}

// ConfirmAndAdvance commits the tentative choice and moves to the next
// question, or completes the round after the last one. Returns false and
// changes nothing when there is no choice or the round is completed.
func (r *Round) ConfirmAndAdvance() bool {
	if r.completed || r.selected < 0 {
		return false
	}

	r.answers = append(r.answers, Answer{
		Question: r.questions[r.current],
		Selected: r.selected,
	})
	r.selected = -1

	if len(r.answers) == len(r.questions) {
		r.completed = true
		return true
	}
	r.current++
	return true
}

// Completed reports whether every question has been answered.
func (r *Round) Completed() bool {
	return r.completed
}

// Answers returns the committed answers in presentation order.
func (r *Round) Answers() []Answer {
	return slices.Clone(r.answers)
}

// Score counts the correct answers.
func (r *Round) Score() int {
	n := 0
	for _, a := range r.answers {
		if a.IsCorrect() {
			n++
		}
	}
	return n
}

// ReviewItem describes one answered question for the results view.
type ReviewItem struct {
	QuestionID   string
	Prompt       string
	Selected     int
	SelectedText string
	// CorrectText is only set when the answer was wrong.
	CorrectText string
	Correct     bool
	Explanation string
}

// Review builds the per-question review in the order questions were asked.
func (r *Round) Review() []ReviewItem {
	items := make([]ReviewItem, len(r.answers))
	for i, a := range r.answers {
		item := ReviewItem{
			QuestionID:   a.Question.ID,
			Prompt:       a.Question.Prompt,
			Selected:     a.Selected,
			SelectedText: a.Question.Options[a.Selected],
			Correct:      a.IsCorrect(),
			Explanation:  a.Question.Explanation,
		}
		if !item.Correct {
			item.CorrectText = a.Question.CorrectText()
		}
		items[i] = item
	}
	return items
}
