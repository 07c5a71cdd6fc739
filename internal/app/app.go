package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/quizbank/internal/quiz"
	"github.com/abhisek/quizbank/internal/router"
	"github.com/abhisek/quizbank/internal/screen"
	quizscreen "github.com/abhisek/quizbank/internal/screens/quiz"
	"github.com/abhisek/quizbank/internal/screens/welcome"
	"github.com/abhisek/quizbank/internal/ui/layout"
)

// Options configures the terminal application.
type Options struct {
	State *qz.AppState
	// SkipIntro starts directly on the quiz.
	SkipIntro bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the intro screen, or on the
// quiz when the intro is skipped.
func newAppModel(opts Options) AppModel {
	quizFactory := func() screen.Screen {
		return quizscreen.New(opts.State)
	}
	if opts.SkipIntro {
		return AppModel{router: router.New(quizFactory())}
	}

	intro := welcome.Intro{
		Source:    opts.State.Bank.Source(),
		Questions: opts.State.Bank.Len(),
		Size:      opts.State.Size,
	}
	if w := opts.State.Bank.Warning(); w != nil {
		intro.Warning = w.Error()
	}
	return AppModel{router: router.New(welcome.New(intro, quizFactory))}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()

	var title, status, warning, notice string
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
		warning = sp.Warning()
	}
	if np, ok := active.(screen.NoticeProvider); ok {
		notice = np.Notice()
	}

	header := layout.RenderHeader(title, status, warning, m.width)
	footer := layout.RenderFooter(m.footerHints(active), notice, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		hints := kp.KeyHints()
		if len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.State == nil {
		return fmt.Errorf("app: no quiz state")
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		opts.State.Logger().Error("program exited", "err", err)
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
