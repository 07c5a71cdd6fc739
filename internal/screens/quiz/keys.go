package quiz

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizbank/internal/ui/components"
	"github.com/abhisek/quizbank/internal/ui/layout"
)

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Reset  key.Binding
	Press  key.Binding
}

var keys = keyMap{
	Next:   key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("Tab", "Next")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("Shift+Tab", "Prev")),
	Submit: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Submit")),
	Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "New quiz")),
	Press:  components.DefaultButtonKey,
}

func isPanelKey(msg tea.KeyMsg) bool {
	pk := components.DefaultPanelKeys
	return key.Matches(msg, pk.Up, pk.Down) || key.Matches(msg, pk.Direct...)
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}

func activeHints(submitted, onButton bool) []layout.KeyHint {
	if onButton {
		return []layout.KeyHint{
			hint(keys.Press),
			hint(keys.Next),
			hint(keys.Prev),
			hint(keys.Reset),
		}
	}
	if submitted {
		return []layout.KeyHint{
			hint(keys.Next),
			hint(keys.Reset),
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		hint(components.DefaultPanelKeys.Up),
		hint(components.DefaultPanelKeys.Direct[0]),
		hint(keys.Next),
		hint(keys.Submit),
		hint(keys.Reset),
	}
}
