package quiz

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizbank/internal/bank"
	"github.com/abhisek/quizbank/internal/form"
	qz "github.com/abhisek/quizbank/internal/quiz"
	"github.com/abhisek/quizbank/internal/router"
	"github.com/abhisek/quizbank/internal/screen"
	"github.com/abhisek/quizbank/internal/screens/report"
	"github.com/abhisek/quizbank/internal/ui/components"
	"github.com/abhisek/quizbank/internal/ui/layout"
)

const (
	buttonSubmit = iota
	buttonReset
)

// QuizScreen shows every question of the current session as an option panel.
// Focus moves over the panels and then the Submit and New quiz buttons.
type QuizScreen struct {
	state   *qz.AppState
	panels  []components.OptionPanel
	buttons []components.Button
	focus   int
	notice  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.NoticeProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over the state's current session.
func New(state *qz.AppState) *QuizScreen {
	s := &QuizScreen{
		state: state,
		buttons: []components.Button{
			buttonSubmit: components.NewButton("Submit", func() tea.Cmd {
				return func() tea.Msg { return submitMsg{} }
			}),
			buttonReset: components.NewButton("New quiz", func() tea.Cmd {
				return func() tea.Msg { return resetMsg{} }
			}),
		},
	}
	for i := range s.buttons {
		s.buttons[i].Key = keys.Press
	}
	s.rebuild()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return activeHints(s.session().Submitted(), s.focus >= len(s.panels))
}

func (s *QuizScreen) Status() string {
	sess := s.session()
	if !sess.Submitted() {
		return form.Progress(sess)
	}
	if rep, err := qz.Score(sess); err == nil {
		return fmt.Sprintf("Grade %s / 10", form.FormatGrade(rep.GradeOutOf10))
	}
	return "submitted"
}

func (s *QuizScreen) Warning() string {
	if w := s.session().Warning; w != nil {
		return w.Error()
	}
	return ""
}

func (s *QuizScreen) Notice() string {
	return s.notice
}

func (s *QuizScreen) session() *qz.Session {
	return s.state.Session
}

// rebuild recreates the panels from the session, e.g. after a reset.
func (s *QuizScreen) rebuild() {
	sess := s.session()
	s.panels = make([]components.OptionPanel, 0, sess.Len())
	for i, q := range sess.Questions() {
		pos := i + 1
		p := components.NewOptionPanel(pos, q.Text(), form.Labels(q))
		s.panels = append(s.panels, p)
	}
	s.focus = 0
	s.notice = ""
	s.sync()
}

// sync copies the session state onto the panels and buttons.
func (s *QuizScreen) sync() {
	sess := s.session()
	for i := range s.panels {
		p := &s.panels[i]
		_, p.Answered = sess.Answer(p.Position)
		p.Cursor = form.DisplayedKey(sess, p.Position).Index()
		p.Locked = sess.Submitted()
		p.Focused = i == s.focus
		p.Reveal = -1
		if p.Locked {
			q, _ := sess.Question(p.Position)
			p.Reveal = q.Correct().Index()
		}
	}
	for i := range s.buttons {
		s.buttons[i].Active = s.focus == len(s.panels)+i
	}
	s.buttons[buttonSubmit].Disabled = sess.Submitted()
}

func (s *QuizScreen) focusTargets() int {
	return len(s.panels) + len(s.buttons)
}

func (s *QuizScreen) moveFocus(delta int) {
	n := s.focusTargets()
	s.focus = ((s.focus+delta)%n + n) % n
	s.sync()
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		return s.handleAnswer(msg)
	case submitMsg:
		return s.handleSubmit()
	case resetMsg:
		return s.handleReset()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Next):
		s.moveFocus(1)
		return s, nil
	case key.Matches(msg, keys.Prev):
		s.moveFocus(-1)
		return s, nil
	case key.Matches(msg, keys.Submit):
		return s.handleSubmit()
	case key.Matches(msg, keys.Reset):
		return s.handleReset()
	}

	if s.focus >= len(s.panels) {
		i := s.focus - len(s.panels)
		var cmd tea.Cmd
		s.buttons[i], cmd = s.buttons[i].Update(msg)
		return s, cmd
	}

	if s.session().Submitted() {
		if !isPanelKey(msg) {
			return s, nil
		}
		s.notice = (&qz.InteractionError{Reason: qz.ReasonSubmitted}).Error()
		return s, nil
	}

	var cmd tea.Cmd
	s.panels[s.focus], cmd = s.panels[s.focus].Update(msg)
	if cmd == nil {
		return s, nil
	}
	id := s.session().ID
	return s, func() tea.Msg {
		if c, ok := cmd().(components.OptionChosenMsg); ok {
			return answerMsg{sessionID: id, choice: c}
		}
		return nil
	}
}

func (s *QuizScreen) handleAnswer(msg answerMsg) (screen.Screen, tea.Cmd) {
	sess := s.session()
	if msg.sessionID != sess.ID {
		return s, nil
	}
	logger := s.state.Logger()

	opt, ok := bank.KeyAt(msg.choice.Index)
	var err error
	if !ok {
		err = &qz.InteractionError{Reason: qz.ReasonOption, Position: msg.choice.Position}
	} else {
		err = sess.RecordAnswer(msg.choice.Position, opt)
	}
	if err != nil {
		logger.Debug("answer rejected", "position", msg.choice.Position, "err", err)
		s.notice = err.Error()
	} else {
		logger.Debug("answer recorded", "position", msg.choice.Position, "key", opt)
		s.notice = ""
	}
	s.sync()
	return s, nil
}

func (s *QuizScreen) handleSubmit() (screen.Screen, tea.Cmd) {
	sess := s.session()
	if !sess.Submitted() {
		filled, err := form.CommitDisplayed(sess)
		if err != nil {
			s.notice = err.Error()
			return s, nil
		}
		if filled > 0 {
			s.state.Logger().Debug("defaults recorded", "session", sess.ID, "positions", filled)
		}
	}
	sess.Submit()
	s.sync()

	rep, err := qz.Score(sess)
	if err != nil {
		s.notice = err.Error()
		return s, nil
	}
	s.notice = ""
	s.state.Logger().Info("quiz submitted",
		"session", sess.ID,
		"points", rep.PointsEarned,
		"total", rep.TotalQuestions,
		"grade", rep.GradeOutOf10)

	reportScreen := report.New(rep, func() tea.Cmd {
		s.handleReset()
		return func() tea.Msg { return router.PopScreenMsg{} }
	})
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: reportScreen}
	}
}

func (s *QuizScreen) handleReset() (screen.Screen, tea.Cmd) {
	s.state.Reset()
	s.rebuild()
	return s, nil
}
