package components

import (
	"github.com/edgeai/edgeai/internal/ui/theme"
)

// Button is a styled, display-only button. Screens decide what a key
// press on it does; Disabled buttons render dimmed.
type Button struct {
	Label    string
	Active   bool
	Disabled bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{
		Label:  label,
		Active: active,
	}
}

// View renders the button.
func (b Button) View() string {
	switch {
	case b.Disabled:
		return theme.ButtonDisabled.Render(b.Label)
	case b.Active:
		return theme.ButtonActive.Render("▸ " + b.Label)
	default:
		return theme.ButtonInactive.Render(b.Label)
	}
}
