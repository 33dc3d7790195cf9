package quiz

import (
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/edgeai/edgeai/internal/content"
)

// Session owns the question bank, the used pool and the random source for
// a run of the app. Retakes start new rounds from the same session so the
// pool carries across them.
type Session struct {
	bank   []content.Question
	used   Pool
	rng    *rand.Rand
	round  *Round
	rounds int
}

// NewSession creates a quiz session. rng may be nil for a randomly
// seeded source.
func NewSession(bank []content.Question, rng *rand.Rand) (*Session, error) {
	if len(bank) < RoundSize {
		return nil, ErrCatalogTooSmall
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Session{
		bank: slices.Clone(bank),
		used: Pool{},
		rng:  rng,
	}, nil
}

// Start discards the current round and begins a new one.
func (s *Session) Start() *Round {
	round, used, err := NewRound(s.bank, s.used, s.rng)
	if err != nil {
		// NewSession guarantees the bank size.
		panic(err)
	}
	s.round = round
	s.used = used
	s.rounds++
	return round
}

// Round returns the current round, or nil before the first Start.
func (s *Session) Round() *Round {
	return s.round
}

// Used returns a copy of the served-question pool.
func (s *Session) Used() Pool {
	return maps.Clone(s.used)
}

// Rounds returns how many rounds have been started.
func (s *Session) Rounds() int {
	return s.rounds
}
