package quiz

import "github.com/abhisek/quizbank/internal/bank"

// QuestionResult is the scoring outcome for one position.
type QuestionResult struct {
	Position  int            `json:"position"`
	Text      string         `json:"text"`
	Chosen    bank.OptionKey `json:"chosen,omitempty"` // empty when unanswered
	Answered  bool           `json:"answered"`
	Correct   bank.OptionKey `json:"correct"`
	IsCorrect bool           `json:"is_correct"`
}

// Report is the scored result of a submitted session.
type Report struct {
	PerQuestion    []QuestionResult `json:"per_question"`
	PointsEarned   int              `json:"points_earned"`
	TotalQuestions int              `json:"total_questions"`
	GradeOutOf10   float64          `json:"grade_out_of_10"`
}

// Percent returns the share of correct answers in [0, 1].
func (r *Report) Percent() float64 {
	return r.GradeOutOf10 / 10
}

// Score compares the recorded answers with the answer key. Unanswered
// positions count as incorrect; there is no partial credit.
func Score(s *Session) (*Report, error) {
	if !s.Submitted() {
		return nil, ErrNotSubmitted
	}

	n := s.Len()
	r := &Report{
		PerQuestion:    make([]QuestionResult, 0, n),
		TotalQuestions: n,
	}
	for pos := 1; pos <= n; pos++ {
		q, _ := s.Question(pos)
		chosen, answered := s.Answer(pos)
		res := QuestionResult{
			Position:  pos,
			Text:      q.Text(),
			Chosen:    chosen,
			Answered:  answered,
			Correct:   q.Correct(),
			IsCorrect: answered && chosen == q.Correct(),
		}
		if res.IsCorrect {
			r.PointsEarned++
		}
		r.PerQuestion = append(r.PerQuestion, res)
	}
	if n > 0 {
		r.GradeOutOf10 = float64(r.PointsEarned) / float64(n) * 10
	}
	return r, nil
}
