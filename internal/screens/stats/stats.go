// Package stats renders the sex-disaggregated statistics as bar charts.
package stats

import (
	"image/color"
	"math"
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

// StatsScreen shows one dataset at a time.
type StatsScreen struct {
	datasets []content.Dataset
	current  int
	scroll   components.Scroller
	height   int
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the statistics screen.
func New(datasets []content.Dataset) *StatsScreen {
	return &StatsScreen{datasets: datasets}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return router.ViewStatistics.String()
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→/Tab", Description: "Dataset"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

// Current returns the dataset on display.
func (s *StatsScreen) Current() content.Dataset {
	return s.datasets[s.current]
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if len(s.datasets) == 0 {
		return s, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "right", "l":
			s.current = (s.current + 1) % len(s.datasets)
			s.scroll.Offset = 0
			return s, nil
		case "shift+tab", "left", "h":
			s.current = (s.current + len(s.datasets) - 1) % len(s.datasets)
			s.scroll.Offset = 0
			return s, nil
		}
	}
	s.scroll = s.scroll.Update(msg, s.height-2)
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	s.height = height
	cw := components.ContentWidth(width)

	header := components.SectionTitle(
		"Philippines 2024 Gender Statistics",
		"Official data extracted from the 'Women and Men Fact Sheet 2024' (PSA/CHED/DepEd).",
		cw,
	)
	if len(s.datasets) == 0 {
		return header + "\n\n" + theme.Hint.Render("No statistics available.")
	}

	labels := make([]string, len(s.datasets))
	for i, d := range s.datasets {
		labels[i] = tabLabel(d)
	}

	body := header + "\n\n" + components.Tabs(labels, s.current) + "\n\n" + renderDataset(s.Current(), cw)
	view := s.scroll.View(body, height)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, view)
}

func renderDataset(d content.Dataset, cw int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(d.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(d.Description))
	b.WriteString("\n\n")

	female := lipgloss.NewStyle().Foreground(theme.Female).Render("■ Female")
	male := lipgloss.NewStyle().Foreground(theme.Male).Render("■ Male")
	b.WriteString(female + "   " + male)
	b.WriteString("\n\n")

	hi := d.Max()
	for _, row := range d.Rows {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(row.Category))
		b.WriteString("\n")
		b.WriteString(bar("F", row.Female, hi, d.Unit, cw, theme.Female))
		b.WriteString("\n")
		b.WriteString(bar("M", row.Male, hi, d.Unit, cw, theme.Male))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + GapNote(row, d.Unit)))
		b.WriteString("\n\n")
	}

	return b.String()
}

func bar(label string, v, hi float64, unit string, cw int, c color.Color) string {
	p := components.NewProgressBar("  "+label, Share(v, hi), false, cw)
	p.LabelWidth = 3
	p.Suffix = FormatValue(v, unit)
	p.Color = c
	return p.View()
}

// Share returns v as a fraction of hi, or 0 when hi is not positive.
func Share(v, hi float64) float64 {
	if hi <= 0 {
		return 0
	}
	return v / hi
}

// FormatValue formats a data point with its unit. Counts get thousands
// separators; percentages keep one decimal.
func FormatValue(v float64, unit string) string {
	if unit == "" {
		return groupThousands(int64(math.Round(v)))
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + unit
}

// GapNote describes which group is ahead and by how much.
func GapNote(row content.StatRow, unit string) string {
	diff := row.Female - row.Male
	switch {
	case diff > 0:
		return "Female +" + FormatValue(diff, unit)
	case diff < 0:
		return "Male +" + FormatValue(-diff, unit)
	default:
		return "Parity"
	}
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

func tabLabel(d content.Dataset) string {
	if d.ID == "" {
		return d.Title
	}
	return strings.ToUpper(d.ID[:1]) + d.ID[1:]
}
