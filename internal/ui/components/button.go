package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizbank/internal/ui/theme"
)

// DefaultButtonKey presses the active button.
var DefaultButtonKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Press"))

// Button is a styled button component. Only an active button reacts to Key.
type Button struct {
	Label    string
	Key      key.Binding
	Active   bool
	Disabled bool
	OnPress  func() tea.Cmd
}

// NewButton creates a new button pressed with DefaultButtonKey.
func NewButton(label string, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Key:     DefaultButtonKey,
		OnPress: onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.Disabled {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(kmsg, b.Key) && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	switch {
	case b.Disabled:
		return theme.ButtonInactive.Strikethrough(true).Render(b.Label)
	case b.Active:
		return theme.ButtonActive.Render("▸ " + b.Label)
	default:
		return theme.ButtonInactive.Render(b.Label)
	}
}
