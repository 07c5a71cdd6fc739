package quiz

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/quizbank/internal/bank"
)

// DefaultSize is the number of questions sampled when no size is configured.
const DefaultSize = 4

// Phase is the lifecycle phase of a session.
type Phase int

const (
	PhaseFresh     Phase = iota // Accepting answers
	PhaseSubmitted              // Answers locked, report available
)

func (p Phase) String() string {
	switch p {
	case PhaseFresh:
		return "fresh"
	case PhaseSubmitted:
		return "submitted"
	}
	return "unknown"
}

// Rand is the randomness source used for sampling. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// globalRand adapts the math/rand/v2 top-level functions to Rand.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Session is one quiz attempt: the sampled questions, the answers recorded so
// far and whether the attempt was submitted. Positions are 1-based.
type Session struct {
	// ID identifies the attempt.
	ID string

	// Warning is set when the bank was smaller than recommended.
	Warning *bank.ValidationWarning

	questions []bank.Question
	answers   map[int]bank.OptionKey
	submitted bool
}

// Start samples min(size, bank size) distinct questions uniformly at random
// and returns a fresh session. A size <= 0 selects DefaultSize; a nil rng uses
// the global source.
func Start(b *bank.Bank, size int, rng Rand) *Session {
	if size <= 0 {
		size = DefaultSize
	}
	if rng == nil {
		rng = globalRand{}
	}
	return &Session{
		ID:        uuid.New().String(),
		Warning:   b.Warning(),
		questions: sample(b.Questions(), size, rng),
		answers:   make(map[int]bank.OptionKey),
	}
}

// sample shuffles the first k slots of pool in place (partial Fisher-Yates)
// and returns them.
func sample(pool []bank.Question, k int, rng Rand) []bank.Question {
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}

// Len returns the number of selected questions.
func (s *Session) Len() int { return len(s.questions) }

// Question returns the question at a 1-based position.
func (s *Session) Question(position int) (bank.Question, bool) {
	if !s.inRange(position) {
		return bank.Question{}, false
	}
	return s.questions[position-1], true
}

// Questions returns a copy of the selected questions in position order.
func (s *Session) Questions() []bank.Question {
	out := make([]bank.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Answer returns the recorded answer for a position, if any.
func (s *Session) Answer(position int) (bank.OptionKey, bool) {
	k, ok := s.answers[position]
	return k, ok
}

// Answers returns a copy of the recorded answers keyed by position.
func (s *Session) Answers() map[int]bank.OptionKey {
	out := make(map[int]bank.OptionKey, len(s.answers))
	for p, k := range s.answers {
		out[p] = k
	}
	return out
}

// AnsweredCount returns how many positions have a recorded answer.
func (s *Session) AnsweredCount() int { return len(s.answers) }

// Submitted reports whether the session was submitted.
func (s *Session) Submitted() bool { return s.submitted }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	if s.submitted {
		return PhaseSubmitted
	}
	return PhaseFresh
}

// RecordAnswer sets or overwrites the answer for a position. It is rejected
// with an *InteractionError, leaving the session untouched, once the session
// is submitted or when the position or key is invalid.
func (s *Session) RecordAnswer(position int, key bank.OptionKey) error {
	if s.submitted {
		return &InteractionError{Reason: ReasonSubmitted, Position: position, Key: key}
	}
	if !s.inRange(position) {
		return &InteractionError{Reason: ReasonPosition, Position: position, Key: key}
	}
	if !key.Valid() {
		return &InteractionError{Reason: ReasonOption, Position: position, Key: key}
	}
	s.answers[position] = key
	return nil
}

// Submit locks the session. Submitting again has no effect.
func (s *Session) Submit() {
	s.submitted = true
}

func (s *Session) inRange(position int) bool {
	return position >= 1 && position <= len(s.questions)
}
