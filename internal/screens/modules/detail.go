package modules

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edgeai/edgeai/internal/content"
	"github.com/edgeai/edgeai/internal/screen"
	"github.com/edgeai/edgeai/internal/ui/components"
	"github.com/edgeai/edgeai/internal/ui/layout"
	"github.com/edgeai/edgeai/internal/ui/theme"
)

// DetailScreen shows one module as a scrollable article.
type DetailScreen struct {
	module content.Module
	scroll components.Scroller
	height int
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// NewDetail creates the article screen for m.
func NewDetail(m content.Module) *DetailScreen {
	return &DetailScreen{module: m}
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailScreen) Title() string {
	return d.module.Title
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "PgUp/PgDn", Description: "Page"},
		{Key: "Esc", Description: "Back to Library"},
	}
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	d.scroll = d.scroll.Update(msg, d.height-2)
	return d, nil
}

func (d *DetailScreen) View(width, height int) string {
	d.height = height
	cw := components.ContentWidth(width)
	article := renderArticle(d.module, cw)
	view := d.scroll.View(article, height)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, view)
}

func renderArticle(m content.Module, cw int) string {
	var b strings.Builder

	b.WriteString(theme.Tag.Render(strings.ToUpper(string(m.Kind))))
	b.WriteString(" ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(regionLabel(m.Region)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Bold(true).Render(m.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Italic(true).Render(m.Description))
	b.WriteString("\n\n")

	b.WriteString(RenderMarkdown(m.Body, cw))
	b.WriteString("\n")

	if len(m.KeyPoints) > 0 {
		b.WriteString("\n")
		b.WriteString(heading("Key Takeaways", cw))
		b.WriteString("\n")
		for _, p := range m.KeyPoints {
			b.WriteString(bullet("✓", p, cw, theme.Success))
			b.WriteString("\n")
		}
	}

	if len(m.References) > 0 {
		b.WriteString("\n")
		b.WriteString(heading("References & Further Reading", cw))
		b.WriteString("\n")
		for i, r := range m.References {
			b.WriteString(bullet(fmt.Sprintf("%d.", i+1), r.Label, cw, theme.ArcadeCyan))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + r.URL))
			b.WriteString("\n")
		}
	}

	if m.Link != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Full source: "))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Underline(true).Render(m.Link))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderMarkdown renders the small markdown subset used by module
// bodies: "#"-prefixed headings, "-" or "*" bullets, and paragraphs.
// Bold markers are stripped.
func RenderMarkdown(src string, width int) string {
	var out []string
	for _, raw := range strings.Split(src, "\n") {
		line := strings.ReplaceAll(strings.TrimRight(raw, " \t"), "**", "")
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			out = append(out, "")
		case strings.HasPrefix(trimmed, "#"):
			out = append(out, heading(strings.TrimSpace(strings.TrimLeft(trimmed, "#")), width))
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			out = append(out, bullet("•", trimmed[2:], width, theme.Secondary))
		default:
			out = append(out, lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(trimmed))
		}
	}
	return strings.Join(out, "\n")
}

func heading(text string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Primary).
		Bold(true).
		Render(text)
}

// bullet renders text with a hanging indent after marker.
func bullet(marker, text string, width int, c color.Color) string {
	m := lipgloss.NewStyle().Foreground(c).Bold(true).Render(" " + marker + " ")
	body := lipgloss.NewStyle().
		Width(max(width-lipgloss.Width(m), 10)).
		Foreground(theme.Text).
		Render(text)
	return lipgloss.JoinHorizontal(lipgloss.Top, m, body)
}
