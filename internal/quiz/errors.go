package quiz

import (
	"errors"
	"fmt"

	"github.com/abhisek/quizbank/internal/bank"
)

// ErrNotSubmitted is returned by Score for a session that was not submitted.
// Hosts never reach it through normal flow.
var ErrNotSubmitted = errors.New("quiz: session not submitted")

// InteractionReason says why an interaction was rejected.
type InteractionReason string

const (
	ReasonSubmitted InteractionReason = "submitted"
	ReasonPosition  InteractionReason = "position"
	ReasonOption    InteractionReason = "option"
)

// InteractionError reports a rejected answer. The session is unchanged.
type InteractionError struct {
	Reason   InteractionReason
	Position int
	Key      bank.OptionKey
}

func (e *InteractionError) Error() string {
	switch e.Reason {
	case ReasonSubmitted:
		return "answers are locked after submission"
	case ReasonPosition:
		return fmt.Sprintf("question %d does not exist", e.Position)
	case ReasonOption:
		return fmt.Sprintf("question %d: invalid option %q", e.Position, string(e.Key))
	}
	return "invalid interaction"
}
