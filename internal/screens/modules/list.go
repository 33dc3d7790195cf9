// Package modules shows the learning library and module articles.
package modules

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edgeai/edgeai/internal/content"
	"github.com/edgeai/edgeai/internal/router"
	"github.com/edgeai/edgeai/internal/screen"
	"github.com/edgeai/edgeai/internal/ui/components"
	"github.com/edgeai/edgeai/internal/ui/layout"
	"github.com/edgeai/edgeai/internal/ui/theme"
)

// Tab filters, "All" first.
var tabs = []struct {
	label string
	kind  content.Kind
}{
	{"All", ""},
	{"Laws", content.KindLaw},
	{"Articles", content.KindArticle},
	{"Studies", content.KindStudy},
}

// linesPerItem is the rendered height of one list entry.
const linesPerItem = 3

// ListScreen lists modules with a kind filter and a text search.
type ListScreen struct {
	catalog  *content.Catalog
	tab      int
	search   components.TextInput
	items    []content.Module
	selected int
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates the module library screen.
func New(catalog *content.Catalog) *ListScreen {
	search := components.NewTextInput("Search modules...", 80)
	search.Blur()
	l := &ListScreen{
		catalog: catalog,
		search:  search,
	}
	l.refresh()
	return l
}

func (l *ListScreen) Init() tea.Cmd {
	return nil
}

func (l *ListScreen) Title() string {
	return router.ViewModules.String()
}

func (l *ListScreen) KeyHints() []layout.KeyHint {
	if l.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Filter"},
		{Key: "/", Description: "Search"},
		{Key: "Enter", Description: "Read"},
		{Key: "Esc", Description: "Back"},
	}
}

// Items returns the modules currently shown.
func (l *ListScreen) Items() []content.Module {
	return l.items
}

func (l *ListScreen) refresh() {
	l.items = l.catalog.FilterModules(tabs[l.tab].kind, l.search.Value())
	l.selected = min(l.selected, max(len(l.items)-1, 0))
}

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if l.search.Focused() {
		if ok && (kmsg.String() == "enter" || kmsg.String() == "down" || kmsg.String() == "tab") {
			l.search.Blur()
			return l, nil
		}
		var cmd tea.Cmd
		l.search, cmd = l.search.Update(msg)
		l.refresh()
		return l, cmd
	}
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "/":
		return l, l.search.Focus()
	case "tab", "right", "l":
		l.tab = (l.tab + 1) % len(tabs)
		l.selected = 0
		l.refresh()
	case "shift+tab", "left", "h":
		l.tab = (l.tab + len(tabs) - 1) % len(tabs)
		l.selected = 0
		l.refresh()
	case "up", "k":
		if l.selected > 0 {
			l.selected--
		}
	case "down", "j":
		if l.selected < len(l.items)-1 {
			l.selected++
		}
	case "enter":
		if len(l.items) > 0 {
			return l, router.Push(NewDetail(l.items[l.selected]))
		}
	}
	return l, nil
}

func (l *ListScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	header := components.SectionTitle(
		"Learning Modules",
		"Explore Philippine laws, articles, and research on gender equality.",
		cw,
	)

	labels := make([]string, len(tabs))
	for i, t := range tabs {
		labels[i] = t.label
	}
	controls := components.Tabs(labels, l.tab) + "\n" + l.search.View(cw)

	top := header + "\n\n" + controls + "\n"
	listHeight := max(height-lipgloss.Height(top)-1, linesPerItem)

	var list string
	if len(l.items) == 0 {
		list = theme.Hint.Render("No modules match your search.")
	} else {
		list = l.renderItems(cw, listHeight)
	}

	body := top + "\n" + list
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}

func (l *ListScreen) renderItems(cw, height int) string {
	visible := max(height/linesPerItem, 1)
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.items))

	rows := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		rows = append(rows, renderItem(l.items[i], i == l.selected, cw))
	}
	if end < len(l.items) || start > 0 {
		rows = append(rows, theme.Hint.Render(fmt.Sprintf("%d of %d", l.selected+1, len(l.items))))
	}
	return strings.Join(rows, "\n")
}

func renderItem(m content.Module, selected bool, cw int) string {
	marker := "  "
	titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if selected {
		marker = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("▸ ")
		titleStyle = titleStyle.Foreground(theme.ArcadeYellow)
	}

	tag := theme.Tag.Render(strings.ToUpper(string(m.Kind)))
	region := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(regionLabel(m.Region))
	title := titleStyle.Render(truncate(m.Title, cw-lipgloss.Width(tag)-lipgloss.Width(region)-6))
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + truncate(m.Description, cw-4))

	return marker + tag + " " + title + " " + region + "\n" + desc + "\n"
}

func regionLabel(r content.Region) string {
	if r == content.RegionPH {
		return "🇵🇭 PH"
	}
	return "🌐 Global"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
