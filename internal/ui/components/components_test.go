package components

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func focusedPanel() OptionPanel {
	p := NewOptionPanel(2, "¿Qué mide un manómetro?", []string{"A) Caudal", "B) Presión", "C) Nivel"})
	p.Focused = true
	return p
}

func chosen(t *testing.T, cmd tea.Cmd) OptionChosenMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(OptionChosenMsg)
	if !ok {
		t.Fatalf("expected OptionChosenMsg, got %T", cmd())
	}
	return msg
}

func TestOptionPanel_DirectPick(t *testing.T) {
	p, cmd := focusedPanel().Update(keyPress('b'))
	msg := chosen(t, cmd)
	if msg.Position != 2 || msg.Index != 1 {
		t.Errorf("got %+v, want position 2 index 1", msg)
	}
	if p.Cursor != 1 || !p.Answered {
		t.Errorf("cursor = %d answered = %v", p.Cursor, p.Answered)
	}

	_, cmd = p.Update(keyPress('3'))
	if chosen(t, cmd).Index != 2 {
		t.Error("expected '3' to pick the third option")
	}
}

func TestOptionPanel_ArrowsChoose(t *testing.T) {
	p := focusedPanel()
	p, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if chosen(t, cmd).Index != 1 {
		t.Error("down should choose the next option")
	}
	p, cmd = p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	p, cmd = p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if cmd != nil {
		t.Error("down at the last answered option should be a no-op")
	}
	if p.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", p.Cursor)
	}
}

func TestOptionPanel_UpOnUnansweredRecordsA(t *testing.T) {
	_, cmd := focusedPanel().Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if chosen(t, cmd).Index != 0 {
		t.Error("up on an unanswered panel should record the first option")
	}
}

func TestOptionPanel_IgnoresWhenLockedOrBlurred(t *testing.T) {
	p := focusedPanel()
	p.Locked = true
	if _, cmd := p.Update(keyPress('c')); cmd != nil {
		t.Error("locked panel should ignore keys")
	}

	p = focusedPanel()
	p.Focused = false
	if _, cmd := p.Update(keyPress('c')); cmd != nil {
		t.Error("blurred panel should ignore keys")
	}

	if _, cmd := focusedPanel().Update(keyPress('d')); cmd != nil {
		t.Error("unknown option key should be ignored")
	}
}

func TestOptionPanel_View(t *testing.T) {
	view := focusedPanel().View(50)
	for _, want := range []string{"2. ¿Qué mide un manómetro?", "A) Caudal", "B) Presión", "C) Nivel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestButton_Press(t *testing.T) {
	pressed := false
	b := NewButton("Submit", func() tea.Cmd {
		pressed = true
		return nil
	})

	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed {
		t.Error("inactive button should not fire")
	}

	b.Active = true
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !pressed {
		t.Error("active button should fire on Enter")
	}

	pressed = false
	b.Disabled = true
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed {
		t.Error("disabled button should not fire")
	}
}

func TestButton_CustomKey(t *testing.T) {
	pressed := false
	b := NewButton("Go", func() tea.Cmd {
		pressed = true
		return nil
	})
	b.Key = key.NewBinding(key.WithKeys("space"))
	b.Active = true

	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed {
		t.Error("Enter should not fire a button bound to space")
	}
	b.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if !pressed {
		t.Error("expected space to fire the button")
	}
}

func TestProgressBar_Fraction(t *testing.T) {
	tests := []struct {
		value, max, want float64
	}{
		{7.5, 10, 0.75},
		{0, 10, 0},
		{12, 10, 1},
		{3, 0, 0},
	}
	for _, tt := range tests {
		got := NewProgressBar("Grade", tt.value, tt.max, 40).Fraction()
		if got != tt.want {
			t.Errorf("Fraction(%v/%v) = %v, want %v", tt.value, tt.max, got, tt.want)
		}
	}
	if view := NewProgressBar("Grade", 7.5, 10, 40).View(); !strings.Contains(view, "7.5 / 10") {
		t.Errorf("view = %q, want it to contain %q", view, "7.5 / 10")
	}
}
