package quiz

import "github.com/abhisek/quizbank/internal/ui/components"

// answerMsg is an option choice tagged with the session it was made in, so a
// choice that lands after a reset is dropped.
type answerMsg struct {
	sessionID string
	choice    components.OptionChosenMsg
}

type submitMsg struct{}

type resetMsg struct{}
