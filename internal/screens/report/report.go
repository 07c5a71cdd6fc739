package report

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbank/internal/form"
	qz "github.com/abhisek/quizbank/internal/quiz"
	"github.com/abhisek/quizbank/internal/screen"
	"github.com/abhisek/quizbank/internal/ui/components"
	"github.com/abhisek/quizbank/internal/ui/layout"
	"github.com/abhisek/quizbank/internal/ui/theme"
)

var resetKey = key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "New quiz"))

// ReportScreen displays the graded results of a submitted session.
type ReportScreen struct {
	report  *qz.Report
	onReset func() tea.Cmd
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)
var _ screen.StatusProvider = (*ReportScreen)(nil)

// New creates a ReportScreen. onReset is called when the user asks for a new
// quiz and returns the navigation command.
func New(report *qz.Report, onReset func() tea.Cmd) *ReportScreen {
	return &ReportScreen{report: report, onReset: onReset}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Results"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	h := resetKey.Help()
	return []layout.KeyHint{
		{Key: h.Key, Description: h.Desc},
		{Key: "Esc", Description: "Back to answers"},
	}
}

func (s *ReportScreen) Status() string {
	return fmt.Sprintf("%d / %d correct", s.report.PointsEarned, s.report.TotalQuestions)
}

func (s *ReportScreen) Warning() string {
	return ""
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, resetKey) && s.onReset != nil {
		return s, s.onReset()
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	rep := s.report
	if rep == nil {
		return ""
	}
	contentWidth := min(width-8, 80)

	var b strings.Builder

	b.WriteString(theme.Title.Width(contentWidth).Render("Quiz results"))
	b.WriteString("\n\n")

	for _, r := range rep.PerQuestion {
		b.WriteString(renderResult(r, contentWidth))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Body.Bold(true).Render(
		fmt.Sprintf("Points: %d / %d    Grade: %s / 10",
			rep.PointsEarned, rep.TotalQuestions, form.FormatGrade(rep.GradeOutOf10))))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", rep.GradeOutOf10, 10, contentWidth).View())

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func renderResult(r qz.QuestionResult, width int) string {
	chosen := "no answer"
	if r.Answered {
		chosen = "chose " + string(r.Chosen)
	}
	detail := fmt.Sprintf("%s, correct %s", chosen, r.Correct)

	mark, style := "✗", theme.Incorrect
	if r.IsCorrect {
		mark, style = "✓", theme.Correct
	}

	text := fmt.Sprintf("%d. %s", r.Position, r.Text)
	maxText := max(width-lipgloss.Width(detail)-6, 10)
	if lipgloss.Width(text) > maxText {
		text = truncate(text, maxText)
	}
	return style.Render(mark) + " " + theme.Body.Render(text) + "  " + theme.Muted.Render("("+detail+")")
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
