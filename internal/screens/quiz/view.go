package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbank/internal/ui/theme"
)

const maxPanelWidth = 90

func (s *QuizScreen) View(width, height int) string {
	panelWidth := min(width-4, maxPanelWidth)

	rendered := make([]string, len(s.panels))
	heights := make([]int, len(s.panels))
	for i, p := range s.panels {
		rendered[i] = p.View(panelWidth)
		heights[i] = lipgloss.Height(rendered[i])
	}

	buttons := s.renderButtons()
	// One line each for the scroll markers and the gap above the buttons.
	budget := height - lipgloss.Height(buttons) - 3

	focus := min(s.focus, len(s.panels)-1)
	start, end := window(heights, focus, budget)

	var b strings.Builder
	if start > 0 {
		b.WriteString(theme.Muted.Render(fmt.Sprintf("  ↑ %d more", start)))
	}
	b.WriteString("\n")
	for i := start; i < end; i++ {
		b.WriteString(rendered[i])
		b.WriteString("\n")
	}
	if rest := len(s.panels) - end; rest > 0 {
		b.WriteString(theme.Muted.Render(fmt.Sprintf("  ↓ %d more", rest)))
	}
	b.WriteString("\n")
	b.WriteString(buttons)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *QuizScreen) renderButtons() string {
	parts := make([]string, 0, 2*len(s.buttons))
	for i, btn := range s.buttons {
		if i > 0 {
			parts = append(parts, "  ")
		}
		parts = append(parts, btn.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// window picks the run of panels around focus that fits in budget lines. The
// focused panel is always included, even when it alone overflows.
func window(heights []int, focus, budget int) (start, end int) {
	if len(heights) == 0 || focus < 0 {
		return 0, 0
	}
	start, end = focus, focus+1
	used := heights[focus]
	for {
		grown := false
		if end < len(heights) && used+heights[end] <= budget {
			used += heights[end]
			end++
			grown = true
		}
		if start > 0 && used+heights[start-1] <= budget {
			start--
			used += heights[start]
			grown = true
		}
		if !grown {
			return start, end
		}
	}
}
