package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/edgeai/edgeai/internal/ui/theme"
)

var choiceLabels = []string{"A", "B", "C", "D", "E", "F"}

// MultiChoice renders a list of options with a radio marker on the
// tentative choice. Selected is -1 when nothing is chosen yet.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int
}

// NewMultiChoice creates a multiple-choice view with no selection.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Selected: -1,
	}
}

// View renders the question and its options at the given width.
func (m MultiChoice) View(width int) string {
	var b strings.Builder

	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(width)
	b.WriteString(questionStyle.Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		label := fmt.Sprint(i + 1)
		if i < len(choiceLabels) {
			label = choiceLabels[i]
		}

		marker := "( )"
		style := lipgloss.NewStyle().
			Width(width).
			Foreground(theme.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1)
		if i == m.Selected {
			marker = "(●)"
			style = style.
				Foreground(theme.ArcadeYellow).
				Bold(true).
				BorderForeground(theme.Primary)
		}

		b.WriteString(style.Render(fmt.Sprintf("%s %s)  %s", marker, label, opt)))
		b.WriteString("\n")
	}

	return b.String()
}
