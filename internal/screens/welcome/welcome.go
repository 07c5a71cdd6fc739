package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbank/internal/router"
	"github.com/abhisek/quizbank/internal/screen"
	"github.com/abhisek/quizbank/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 300 * time.Millisecond
	detailsAt    = 800 * time.Millisecond
)

type tickMsg time.Time

// Intro describes the bank the quiz draws from.
type Intro struct {
	Source    string
	Questions int
	Size      int
	Warning   string
}

// WelcomeScreen reveals the banner and bank summary, then hands over to the
// quiz on the first key press.
type WelcomeScreen struct {
	intro        Intro
	quizFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with the screen produced by
// quizFactory.
func New(intro Intro, quizFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		intro:       intro,
		quizFactory: quizFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= detailsAt {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.quizFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	if w.elapsed >= bannerAt {
		sections = append(sections, RenderBanner(width), "")
		sections = append(sections, theme.Body.Bold(true).Render("I N D U S T R I A L"))
	}

	if w.elapsed >= detailsAt {
		in := w.intro
		size := min(in.Size, in.Questions)
		sections = append(sections, "",
			theme.Muted.Render(fmt.Sprintf("%d questions in %s", in.Questions, in.Source)),
			theme.Body.Render(fmt.Sprintf("Each quiz picks %d at random, without repeats.", size)),
		)
		if in.Warning != "" {
			sections = append(sections, theme.Warning.Render("! "+in.Warning))
		}
	}

	sections = append(sections, "", theme.Hint.Render("press any key to start"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
