package modules

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/edgeai/edgeai/internal/content"
	"github.com/edgeai/edgeai/internal/router"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func text(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestListShowsAllModules(t *testing.T) {
	c := content.Default()
	l := New(c)
	if got, want := len(l.Items()), len(c.Modules()); got != want {
		t.Fatalf("expected %d modules, got %d", want, got)
	}
}

func TestTabFiltersByKind(t *testing.T) {
	l := New(content.Default())

	l.Update(key(tea.KeyTab))
	if len(l.Items()) == 0 {
		t.Fatal("expected at least one law module")
	}
	for _, m := range l.Items() {
		if m.Kind != content.KindLaw {
			t.Errorf("module %q has kind %s under the Laws tab", m.ID, m.Kind)
		}
	}

	l.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if len(l.Items()) != len(content.Default().Modules()) {
		t.Error("shift+tab should return to All")
	}
}

func TestSearchFilters(t *testing.T) {
	l := New(content.Default())

	l.Update(text('/'))
	for _, r := range "harassment" {
		l.Update(text(r))
	}
	if len(l.Items()) == 0 {
		t.Fatal("expected a match for harassment")
	}
	for _, m := range l.Items() {
		hay := strings.ToLower(m.Title + " " + m.Description)
		if !strings.Contains(hay, "harassment") {
			t.Errorf("module %q does not match the query", m.ID)
		}
	}

	l.Update(key(tea.KeyEnter))
	if l.search.Focused() {
		t.Error("enter should leave the search box")
	}
}

func TestSearchNoMatch(t *testing.T) {
	l := New(content.Default())
	l.Update(text('/'))
	for _, r := range "zzzqqq" {
		l.Update(text(r))
	}
	if len(l.Items()) != 0 {
		t.Fatalf("expected no matches, got %d", len(l.Items()))
	}
	if !strings.Contains(l.View(100, 40), "No modules match") {
		t.Error("expected empty-state message")
	}
	l.Update(key(tea.KeyEnter))
	if _, cmd := l.Update(key(tea.KeyEnter)); cmd != nil {
		t.Error("enter on an empty list should do nothing")
	}
}

func TestEnterOpensDetail(t *testing.T) {
	l := New(content.Default())
	l.Update(key(tea.KeyDown))

	_, cmd := l.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	detail, ok := msg.Screen.(*DetailScreen)
	if !ok {
		t.Fatalf("expected DetailScreen, got %T", msg.Screen)
	}
	if detail.Title() != l.Items()[1].Title {
		t.Errorf("opened %q, want %q", detail.Title(), l.Items()[1].Title)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("### Heading\nSome **bold** text.\n\n- point one", 60)
	for _, want := range []string{"Heading", "Some bold text.", "point one", "•"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered markdown missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "###") || strings.Contains(out, "**") {
		t.Errorf("markup should be stripped:\n%s", out)
	}
}

func TestDetailRendersSections(t *testing.T) {
	m, ok := content.Default().Module("concepts-101")
	if !ok {
		t.Fatal("missing concepts-101")
	}
	article := renderArticle(m, 70)
	for _, want := range []string{"Key Takeaways", "References", m.References[0].URL} {
		if !strings.Contains(article, want) {
			t.Errorf("article missing %q", want)
		}
	}
}
