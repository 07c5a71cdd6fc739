package bank

import (
	"fmt"
	"strings"
)

// OptionKey identifies one of the three answer options of a question.
type OptionKey string

const (
	OptionA OptionKey = "A"
	OptionB OptionKey = "B"
	OptionC OptionKey = "C"
)

// Keys returns the option keys in display order.
func Keys() []OptionKey {
	return []OptionKey{OptionA, OptionB, OptionC}
}

// Valid reports whether k is one of A, B or C.
func (k OptionKey) Valid() bool {
	return k.Index() >= 0
}

// Index returns the display position of k (0 for A), or -1 if k is invalid.
func (k OptionKey) Index() int {
	switch k {
	case OptionA:
		return 0
	case OptionB:
		return 1
	case OptionC:
		return 2
	}
	return -1
}

// KeyAt returns the option key shown at display index i.
func KeyAt(i int) (OptionKey, bool) {
	keys := Keys()
	if i < 0 || i >= len(keys) {
		return "", false
	}
	return keys[i], true
}

// ParseOptionKey parses a user-supplied key such as "b" or " C ".
func ParseOptionKey(s string) (OptionKey, bool) {
	k := OptionKey(strings.ToUpper(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", false
	}
	return k, true
}

// Question is a single multiple-choice question. The zero value is not
// usable; questions are built by the loader or NewQuestion and never change
// afterwards.
type Question struct {
	text    string
	options [3]string
	correct OptionKey
}

// NewQuestion builds a question, checking that all three options are present
// and that correct names one of them.
func NewQuestion(text string, options map[OptionKey]string, correct OptionKey) (Question, error) {
	q := Question{text: text, correct: correct}
	for i, k := range Keys() {
		opt, ok := options[k]
		if !ok {
			return Question{}, fmt.Errorf("missing option %s", k)
		}
		q.options[i] = opt
	}
	if !correct.Valid() {
		return Question{}, fmt.Errorf("correct key %q invalid", correct)
	}
	return q, nil
}

// Text returns the question prompt.
func (q Question) Text() string { return q.text }

// Correct returns the key of the correct option.
func (q Question) Correct() OptionKey { return q.correct }

// Option returns the text of option k, or "" if k is invalid.
func (q Question) Option(k OptionKey) string {
	i := k.Index()
	if i < 0 {
		return ""
	}
	return q.options[i]
}

// Options returns a copy of the option texts keyed by option key.
func (q Question) Options() map[OptionKey]string {
	out := make(map[OptionKey]string, len(q.options))
	for i, k := range Keys() {
		out[k] = q.options[i]
	}
	return out
}

// Bank is the validated, read-only collection of questions a quiz samples from.
type Bank struct {
	source    string
	questions []Question
}

// New wraps questions into a Bank. An empty question list is rejected.
func New(source string, questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, &LoadError{Source: source, Reason: reasonEmpty}
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Bank{source: source, questions: qs}, nil
}

// Source returns the identity of the source the bank was loaded from.
func (b *Bank) Source() string { return b.source }

// Len returns the number of questions in the bank.
func (b *Bank) Len() int { return len(b.questions) }

// Question returns the i-th question (0-based).
func (b *Bank) Question(i int) Question { return b.questions[i] }

// Questions returns a copy of all questions in bank order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Warning returns an advisory when the bank is smaller than MinRecommended,
// or nil.
func (b *Bank) Warning() *ValidationWarning {
	if len(b.questions) >= MinRecommended {
		return nil
	}
	return &ValidationWarning{Size: len(b.questions), Minimum: MinRecommended}
}
