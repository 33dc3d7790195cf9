package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/edgeai/edgeai/internal/content"
	"github.com/edgeai/edgeai/internal/router"
	"github.com/edgeai/edgeai/internal/ui/components"
	"github.com/edgeai/edgeai/internal/ui/theme"
)

const titleFull = ` ███████╗██████╗  ██████╗ ███████╗       █████╗ ██╗
 ██╔════╝██╔══██╗██╔════╝ ██╔════╝      ██╔══██╗██║
 █████╗  ██║  ██║██║  ███╗█████╗  █████╗███████║██║
 ██╔══╝  ██║  ██║██║   ██║██╔══╝  ╚════╝██╔══██║██║
 ███████╗██████╔╝╚██████╔╝███████╗      ██║  ██║██║
 ╚══════╝╚═════╝  ╚═════╝ ╚══════╝      ╚═╝  ╚═╝╚═╝`

const titleCompact = "E · D · G · E  -  A · I"

// renderTitle returns the block-letter title or the compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}
	tagline := lipgloss.NewStyle().Foreground(theme.TextDim).Render("GENDER EQUALITY PLATFORM")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title) + "\n" + tagline)
}

// renderSlide renders the current slideshow card with position dots.
func renderSlide(s content.Slide, idx, total, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Tag.Render(s.Tag))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(s.Subtitle))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(cw - 4).Foreground(theme.TextDim).Render(s.Description))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(cw-4, lipgloss.Center, dots(idx, total)))
	return components.ArcadeCard(b.String(), cw)
}

func dots(idx, total int) string {
	parts := make([]string, total)
	for i := range parts {
		if i == idx {
			parts[i] = lipgloss.NewStyle().Foreground(theme.Text).Render("━━")
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("•")
		}
	}
	return strings.Join(parts, " ")
}

// renderFact renders the live learning feed line.
func renderFact(fact string, cw int) string {
	label := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render("ⓘ LIVE LEARNING FEED")
	text := lipgloss.NewStyle().Width(cw - 4).Foreground(theme.Text).Render(fact)
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Padding(0, 1).
		Render(label + "\n" + text)
}

// renderMenu renders menu items as single text lines with the selected
// view's description below.
func renderMenu(m components.Menu, views []router.View, cw int) string {
	head := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Platform Core Features")

	var lines []string
	for i, item := range m.Items {
		num := "   "
		if i < len(views) {
			num = string(rune('1'+i)) + ". "
		}
		var line string
		switch {
		case item.Disabled:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + num + item.Label)
		case i == m.Selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + num + item.Label + " ")
		default:
			line = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + num + item.Label)
		}
		lines = append(lines, line)
	}

	desc := ""
	if m.Selected < len(views) {
		desc = lipgloss.NewStyle().
			Width(cw).
			Foreground(theme.TextDim).
			Italic(true).
			Render(views[m.Selected].Description())
	}
	return head + "\n" + strings.Join(lines, "\n") + "\n\n" + desc
}

// renderFeatured renders the recommended study card.
func renderFeatured(m content.Module, cw int) string {
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("★ RECOMMENDED STUDY")
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw - 4).Render(m.Title)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 4).Render(m.Description)
	hint := theme.Hint.Render("Press S to read the article")
	return components.ArcadeCard(label+"\n"+title+"\n"+desc+"\n"+hint, cw)
}
