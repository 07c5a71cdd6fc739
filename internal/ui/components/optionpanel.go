package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizbank/internal/ui/theme"
)

// OptionChosenMsg reports that the user picked an option in a panel.
type OptionChosenMsg struct {
	Position int
	Index    int
}

// PanelKeyMap holds the bindings an OptionPanel reacts to while focused.
type PanelKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Direct []key.Binding
}

// DefaultPanelKeys moves with the arrows and picks directly with a/b/c or 1/2/3.
var DefaultPanelKeys = PanelKeyMap{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Choose")),
	Down: key.NewBinding(key.WithKeys("down", "j")),
	Direct: []key.Binding{
		key.NewBinding(key.WithKeys("a", "1"), key.WithHelp("a/b/c", "Pick")),
		key.NewBinding(key.WithKeys("b", "2")),
		key.NewBinding(key.WithKeys("c", "3")),
	},
}

// OptionPanel renders one question with its options. The cursor always
// points at an option; Answered tells whether it reflects a recorded choice.
type OptionPanel struct {
	Position int
	Question string
	Options  []string
	Cursor   int
	Answered bool
	Focused  bool
	Locked   bool

	// Reveal is the index of the correct option once the panel is locked and
	// results are shown. Negative hides it.
	Reveal int
}

// NewOptionPanel creates a panel for the question at a 1-based position.
func NewOptionPanel(position int, question string, options []string) OptionPanel {
	return OptionPanel{
		Position: position,
		Question: question,
		Options:  options,
		Reveal:   -1,
	}
}

// Update moves the cursor and emits OptionChosenMsg for every change. Moving
// onto an option chooses it.
func (p OptionPanel) Update(msg tea.Msg) (OptionPanel, tea.Cmd) {
	if p.Locked || !p.Focused {
		return p, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	next := -1
	switch {
	case key.Matches(kmsg, DefaultPanelKeys.Up):
		next = max(p.Cursor-1, 0)
	case key.Matches(kmsg, DefaultPanelKeys.Down):
		next = min(p.Cursor+1, len(p.Options)-1)
	default:
		for i, b := range DefaultPanelKeys.Direct {
			if i < len(p.Options) && key.Matches(kmsg, b) {
				next = i
				break
			}
		}
	}
	if next < 0 {
		return p, nil
	}
	if next == p.Cursor && p.Answered {
		return p, nil
	}

	p.Cursor = next
	p.Answered = true
	pos, idx := p.Position, next
	return p, func() tea.Msg { return OptionChosenMsg{Position: pos, Index: idx} }
}

// View renders the panel at the given outer width.
func (p OptionPanel) View(width int) string {
	var b strings.Builder

	header := fmt.Sprintf("%d. %s", p.Position, p.Question)
	b.WriteString(theme.Body.Bold(true).Render(header))

	for i, opt := range p.Options {
		b.WriteString("\n")
		marker := "( )"
		if i == p.Cursor {
			marker = "(•)"
		}
		line := marker + " " + opt

		switch {
		case p.Reveal >= 0 && i == p.Reveal:
			b.WriteString(theme.Correct.Render(line))
		case p.Reveal >= 0 && i == p.Cursor && p.Answered:
			b.WriteString(theme.Incorrect.Render(line))
		case p.Locked:
			b.WriteString(theme.Muted.Render(line))
		case i == p.Cursor && p.Answered:
			b.WriteString(theme.Selected.Render(line))
		case i == p.Cursor:
			b.WriteString(theme.Hint.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
	}

	style := theme.Panel
	switch {
	case p.Locked:
		style = theme.PanelLocked
	case p.Focused:
		style = theme.PanelFocused
	}
	return style.Width(max(width, 20)).Render(b.String())
}
