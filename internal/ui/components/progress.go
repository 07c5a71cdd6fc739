package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbank/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for a value out of a maximum, e.g. a
// grade out of 10.
type ProgressBar struct {
	Label string
	Value float64
	Max   float64
	Width int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, value, maxValue float64, width int) ProgressBar {
	return ProgressBar{
		Label: label,
		Value: value,
		Max:   maxValue,
		Width: width,
	}
}

// Fraction returns Value/Max clamped to [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Max <= 0 {
		return 0
	}
	return min(max(p.Value/p.Max, 0), 1)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result = theme.Body.Render(p.Label) + "  "
	}

	suffix := theme.Muted.Render(fmt.Sprintf("  %s / %s", trimFloat(p.Value), trimFloat(p.Max)))
	barWidth := max(p.Width-lipgloss.Width(result)-lipgloss.Width(suffix), 4)

	filled := int(float64(barWidth) * p.Fraction())
	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return result + suffix
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
