// Package resources lists partner organizations and every source cited
// by the module library.
package resources

import (
	"strconv"
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

// Citation is a reference together with the modules that cite it.
type Citation struct {
	content.Reference
	Modules []string
}

// Citations collects module references, merged by URL, in first-seen
// order. A module's full-source link counts as a reference.
func Citations(modules []content.Module) []Citation {
	var out []Citation
	index := make(map[string]int)

	add := func(ref content.Reference, title string) {
		key := strings.TrimSuffix(strings.TrimSpace(ref.URL), "/")
		if key == "" {
			return
		}
		if i, ok := index[key]; ok {
			out[i].Modules = append(out[i].Modules, title)
			return
		}
		index[key] = len(out)
		out = append(out, Citation{Reference: ref, Modules: []string{title}})
	}

	for _, m := range modules {
		for _, r := range m.References {
			add(r, m.Title)
		}
		if m.Link != "" {
			add(content.Reference{Label: m.Title, URL: m.Link}, m.Title)
		}
	}
	return out
}

// ResourcesScreen is a scrollable directory of organizations and sources.
type ResourcesScreen struct {
	orgs      []content.Organization
	citations []Citation
	scroll    components.Scroller
	height    int
}

var _ screen.Screen = (*ResourcesScreen)(nil)
var _ screen.KeyHintProvider = (*ResourcesScreen)(nil)

// New creates the resources screen from the catalog.
func New(catalog *content.Catalog) *ResourcesScreen {
	return &ResourcesScreen{
		orgs:      catalog.Organizations(),
		citations: Citations(catalog.Modules()),
	}
}

func (s *ResourcesScreen) Init() tea.Cmd {
	return nil
}

func (s *ResourcesScreen) Title() string {
	return router.ViewResources.Heading()
}

func (s *ResourcesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "PgUp/PgDn", Description: "Page"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResourcesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.scroll = s.scroll.Update(msg, s.height-2)
	return s, nil
}

func (s *ResourcesScreen) View(width, height int) string {
	s.height = height
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(components.SectionTitle(
		"Partner Organizations",
		"Institutions working on gender equality in the Philippines and worldwide.",
		cw,
	))
	b.WriteString("\n\n")

	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	dim := lipgloss.NewStyle().Width(cw - 4).Foreground(theme.TextDim)
	link := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Underline(true)

	for _, o := range s.orgs {
		card := name.Render(o.Name) + "\n" + dim.Render(o.Description) + "\n" + link.Render(o.URL)
		b.WriteString(components.ArcadeCard(card, cw))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.SectionTitle(
		"References & Further Reading",
		"Every source cited across the module library.",
		cw,
	))
	b.WriteString("\n\n")

	if len(s.citations) == 0 {
		b.WriteString(theme.Hint.Render("No references yet."))
	}
	for i, c := range s.citations {
		num := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(strconv.Itoa(i+1) + ".")
		b.WriteString(num + " " + name.Render(c.Label) + "\n")
		b.WriteString("   " + link.Render(c.URL) + "\n")
		b.WriteString("   " + dim.Render("Cited in: "+strings.Join(c.Modules, ", ")) + "\n")
	}

	view := s.scroll.View(b.String(), height)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, view)
}
