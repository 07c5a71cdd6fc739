// Package form holds the presentation helpers shared by the terminal and web
// answer forms. Nothing here keeps state: labels and keys are derived from the
// question and the session on every render.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/quizbank/internal/bank"
	"github.com/abhisek/quizbank/internal/quiz"
)

// Label renders an option as shown to the user, e.g. "B) Manómetro".
func Label(key bank.OptionKey, text string) string {
	return fmt.Sprintf("%s) %s", key, text)
}

// Labels returns the labels of a question's options in display order.
func Labels(q bank.Question) []string {
	keys := bank.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, Label(k, q.Option(k)))
	}
	return out
}

// OptionKeyOf maps a selected label back to its option key. Both a bare key
// ("b") and a full label ("B) text") are accepted.
func OptionKeyOf(position int, selected string) (bank.OptionKey, error) {
	head := selected
	if i := strings.Index(selected, ")"); i >= 0 {
		head = selected[:i]
	}
	key, ok := bank.ParseOptionKey(head)
	if !ok {
		return "", &quiz.InteractionError{
			Reason:   quiz.ReasonOption,
			Position: position,
			Key:      bank.OptionKey(strings.TrimSpace(selected)),
		}
	}
	return key, nil
}

// DisplayedKey is the option shown as selected for a position: the recorded
// answer, or A when nothing was recorded yet. The A default becomes an answer
// only through CommitDisplayed.
func DisplayedKey(s *quiz.Session, position int) bank.OptionKey {
	if k, ok := s.Answer(position); ok {
		return k
	}
	return bank.OptionA
}

// CommitDisplayed records the displayed option of every unanswered position,
// so that what the form shows is what gets scored. Hosts call it right before
// Submit. It returns the number of positions filled.
func CommitDisplayed(s *quiz.Session) (int, error) {
	filled := 0
	for pos := 1; pos <= s.Len(); pos++ {
		if _, ok := s.Answer(pos); ok {
			continue
		}
		if err := s.RecordAnswer(pos, DisplayedKey(s, pos)); err != nil {
			return filled, err
		}
		filled++
	}
	return filled, nil
}

// Progress renders "answered/total" for headers.
func Progress(s *quiz.Session) string {
	return fmt.Sprintf("%d/%d answered", s.AnsweredCount(), s.Len())
}

// FormatGrade renders a grade with at most two decimals, e.g. 7.5 or 10.
func FormatGrade(g float64) string {
	out := strconv.FormatFloat(g, 'f', 2, 64)
	return strings.TrimSuffix(strings.TrimRight(out, "0"), ".")
}
