package resources

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/edgeai/edgeai/internal/content"
)

func TestCitationsMergeByURL(t *testing.T) {
	modules := []content.Module{
		{
			Title: "A",
			References: []content.Reference{
				{Label: "PCW", URL: "https://pcw.gov.ph/"},
				{Label: "Blank", URL: "  "},
			},
		},
		{
			Title:      "B",
			Link:       "https://example.org/b",
			References: []content.Reference{{Label: "PCW site", URL: "https://pcw.gov.ph"}},
		},
	}

	got := Citations(modules)
	if len(got) != 2 {
		t.Fatalf("expected 2 citations, got %d: %+v", len(got), got)
	}
	if got[0].Label != "PCW" {
		t.Errorf("first-seen label should win, got %q", got[0].Label)
	}
	if strings.Join(got[0].Modules, ",") != "A,B" {
		t.Errorf("expected PCW cited in A and B, got %v", got[0].Modules)
	}
	if got[1].URL != "https://example.org/b" || got[1].Label != "B" {
		t.Errorf("module link should become a citation, got %+v", got[1])
	}
}

func TestViewListsOrganizations(t *testing.T) {
	catalog := content.Default()
	s := New(catalog)
	view := s.View(100, 1000)

	for _, o := range catalog.Organizations() {
		if !strings.Contains(view, o.Name) {
			t.Errorf("view missing organization %q", o.Name)
		}
	}
	if !strings.Contains(view, "References & Further Reading") {
		t.Error("view missing references heading")
	}
}

func TestScrollMovesOffset(t *testing.T) {
	s := New(content.Default())
	s.View(100, 10)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.scroll.Offset != 1 {
		t.Errorf("expected offset 1 after down, got %d", s.scroll.Offset)
	}
}
