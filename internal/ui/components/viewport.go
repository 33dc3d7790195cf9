package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edgeai/edgeai/internal/ui/theme"
)

// Scroller tracks a vertical offset into pre-rendered content.
type Scroller struct {
	Offset int
}

// Update moves the offset for the usual scrolling keys. page is the
// number of lines a page key moves.
func (s Scroller) Update(msg tea.Msg, page int) Scroller {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s
	}
	switch kmsg.String() {
	case "up", "k":
		s.Offset--
	case "down", "j":
		s.Offset++
	case "pgup", "b":
		s.Offset -= max(page, 1)
	case "pgdown", "space", "f":
		s.Offset += max(page, 1)
	case "home", "g":
		s.Offset = 0
	case "end", "G":
		s.Offset = 1 << 30
	}
	s.Offset = max(s.Offset, 0)
	return s
}

// View shows height lines of content starting at the offset, clamping
// the offset to the content. A position indicator is appended when the
// content overflows.
func (s *Scroller) View(content string, height int) string {
	lines := strings.Split(content, "\n")
	if height <= 0 {
		return ""
	}
	if len(lines) <= height {
		s.Offset = 0
		return content
	}

	visible := height - 1
	maxOffset := len(lines) - visible
	s.Offset = min(s.Offset, maxOffset)

	window := lines[s.Offset : s.Offset+visible]
	pct := 100
	if maxOffset > 0 {
		pct = s.Offset * 100 / maxOffset
	}
	indicator := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		strings.Repeat(" ", 2) + "── " + strconv.Itoa(pct) + "% ──")
	return strings.Join(window, "\n") + "\n" + indicator
}
