package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizbank/internal/bank"
	"github.com/abhisek/quizbank/internal/quiz"
)

func testQuestion(t *testing.T) bank.Question {
	t.Helper()
	q, err := bank.NewQuestion("¿Qué mide un tacómetro?", map[bank.OptionKey]string{
		bank.OptionA: "Velocidad de rotación",
		bank.OptionB: "Temperatura",
		bank.OptionC: "Humedad",
	}, bank.OptionA)
	require.NoError(t, err)
	return q
}

func TestLabels(t *testing.T) {
	labels := Labels(testQuestion(t))
	assert.Equal(t, []string{
		"A) Velocidad de rotación",
		"B) Temperatura",
		"C) Humedad",
	}, labels)
}

func TestOptionKeyOf(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		want     bank.OptionKey
		wantErr  bool
	}{
		{"full label", "B) Temperatura", bank.OptionB, false},
		{"bare key", "c", bank.OptionC, false},
		{"padded key", " A ", bank.OptionA, false},
		{"label with parenthesis in text", "A) Velocidad (rpm)", bank.OptionA, false},
		{"unknown key", "D) Otro", "", true},
		{"empty", "", "", true},
		{"text only", "Temperatura", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OptionKeyOf(2, tt.selected)
			if tt.wantErr {
				var ie *quiz.InteractionError
				require.ErrorAs(t, err, &ie)
				assert.Equal(t, quiz.ReasonOption, ie.Reason)
				assert.Equal(t, 2, ie.Position)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionKeyOf_RoundTripsLabels(t *testing.T) {
	q := testQuestion(t)
	for i, label := range Labels(q) {
		got, err := OptionKeyOf(1, label)
		require.NoError(t, err)
		want, _ := bank.KeyAt(i)
		assert.Equal(t, want, got)
	}
}

func TestDisplayedKey(t *testing.T) {
	b, err := bank.New("mem", []bank.Question{testQuestion(t), testQuestion(t)})
	require.NoError(t, err)
	s := quiz.Start(b, 2, nil)

	assert.Equal(t, bank.OptionA, DisplayedKey(s, 1), "defaults to A")
	assert.Zero(t, s.AnsweredCount(), "the default is not recorded")

	require.NoError(t, s.RecordAnswer(2, bank.OptionC))
	assert.Equal(t, bank.OptionC, DisplayedKey(s, 2))
	assert.Equal(t, "1/2 answered", Progress(s))
}

func TestCommitDisplayed(t *testing.T) {
	b, err := bank.New("mem", []bank.Question{testQuestion(t), testQuestion(t), testQuestion(t)})
	require.NoError(t, err)
	s := quiz.Start(b, 3, nil)
	require.NoError(t, s.RecordAnswer(2, bank.OptionC))

	filled, err := CommitDisplayed(s)
	require.NoError(t, err)
	assert.Equal(t, 2, filled)
	assert.Equal(t, 3, s.AnsweredCount())

	k, _ := s.Answer(1)
	assert.Equal(t, bank.OptionA, k)
	k, _ = s.Answer(2)
	assert.Equal(t, bank.OptionC, k, "recorded answers are kept")

	s.Submit()
	rep, err := quiz.Score(s)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.PointsEarned, "untouched questions keyed A score")

	_, err = CommitDisplayed(quiz.Start(b, 3, nil))
	assert.NoError(t, err)
}

func TestCommitDisplayed_AfterSubmit(t *testing.T) {
	b, err := bank.New("mem", []bank.Question{testQuestion(t)})
	require.NoError(t, err)
	s := quiz.Start(b, 1, nil)
	s.Submit()

	filled, err := CommitDisplayed(s)
	var ie *quiz.InteractionError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, quiz.ReasonSubmitted, ie.Reason)
	assert.Zero(t, filled)
}

func TestFormatGrade(t *testing.T) {
	tests := map[float64]string{
		0:          "0",
		2.5:        "2.5",
		7.5:        "7.5",
		10:         "10",
		10.0 / 3.0: "3.33",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatGrade(in), "FormatGrade(%v)", in)
	}
}
