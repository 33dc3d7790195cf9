package components

import (
	"image/color"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edgeai/edgeai/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with EDGE-AI styling.
type TextInput struct {
	Model    textinput.Model
	Label    string
	MaxWidth int
}

// NewTextInput creates a focused text input. maxLen limits the number of
// characters when positive.
func NewTextInput(placeholder string, maxLen int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Focus()

	if maxLen > 0 {
		ti.CharLimit = maxLen
	}

	return TextInput{
		Model:    ti,
		MaxWidth: maxLen,
	}
}

// NewMaskedInput creates a focused input that echoes '•' for every
// character. Used for API keys.
func NewMaskedInput(placeholder string) TextInput {
	t := NewTextInput(placeholder, 0)
	t.Model.EchoMode = textinput.EchoPassword
	t.Model.EchoCharacter = '•'
	return t
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input, with its label above when set.
func (t TextInput) View(width int) string {
	if width > 4 {
		t.Model.SetWidth(width - 4)
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.borderColor()).
		Width(width).
		Render(t.Model.View())
	if t.Label == "" {
		return box
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(t.Label)
	return label + "\n" + box
}

func (t TextInput) borderColor() color.Color {
	if t.Model.Focused() {
		return theme.Primary
	}
	return theme.Border
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Reset clears the input.
func (t *TextInput) Reset() {
	t.Model.Reset()
}
