package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EmbeddedCatalogLoads(t *testing.T) {
	c := Default()

	assert.Equal(t, "v1.0.0", c.Version())
	assert.Len(t, c.Modules(), 11)
	assert.Len(t, c.Datasets(), 4)
	assert.Len(t, c.Questions(), 8)
	assert.Len(t, c.Organizations(), 2)
	assert.Len(t, c.Slides(), 4)
	assert.Len(t, c.Facts(), 4)
	assert.Len(t, c.Suggestions(), 5)
	assert.GreaterOrEqual(t, len(c.Questions()), MinQuestions)
}

func TestDefault_QuestionsAreWellFormed(t *testing.T) {
	for _, q := range Default().Questions() {
		require.Len(t, q.Options, OptionsPerQuestion, q.ID)
		assert.GreaterOrEqual(t, q.Correct, 0, q.ID)
		assert.Less(t, q.Correct, len(q.Options), q.ID)
		assert.NotEmpty(t, q.Explanation, q.ID)
	}
}

func TestModule_Lookup(t *testing.T) {
	c := Default()

	m, ok := c.Module("law-ra-7877")
	require.True(t, ok)
	assert.Equal(t, KindLaw, m.Kind)
	assert.Equal(t, RegionPH, m.Region)
	assert.NotEmpty(t, m.KeyPoints)

	_, ok = c.Module("does-not-exist")
	assert.False(t, ok)
}

func TestFilterModules(t *testing.T) {
	c := Default()

	tests := []struct {
		name  string
		kind  Kind
		query string
		want  []string
	}{
		{
			name: "all laws",
			kind: KindLaw,
			want: []string{"ph-legal-frameworks", "law-ra-7877", "law-ra-8353"},
		},
		{
			name:  "search is case-insensitive",
			query: "  sOgIe ",
			want:  []string{"sogie-explained"},
		},
		{
			name:  "search matches description",
			query: "workplace",
			want:  []string{"law-ra-7877"},
		},
		{
			name:  "kind and query combine",
			kind:  KindStudy,
			query: "stem",
			want:  []string{"women-in-stem"},
		},
		{
			name:  "no match",
			kind:  KindLaw,
			query: "bechdel",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, m := range c.FilterModules(tt.kind, tt.query) {
				got = append(got, m.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterModules_EmptyReturnsAll(t *testing.T) {
	c := Default()
	assert.Len(t, c.FilterModules("", ""), len(c.Modules()))
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()

	qs := c.Questions()
	qs[0].Options[0] = "mutated"
	qs[0].Prompt = "mutated"
	assert.NotEqual(t, "mutated", c.Questions()[0].Options[0])
	assert.NotEqual(t, "mutated", c.Questions()[0].Prompt)

	m, _ := c.Module("concepts-101")
	m.KeyPoints[0] = "mutated"
	again, _ := c.Module("concepts-101")
	assert.NotEqual(t, "mutated", again.KeyPoints[0])

	d, _ := c.Dataset("economic")
	d.Rows[0].Female = -1
	again2, _ := c.Dataset("economic")
	assert.NotEqual(t, -1.0, again2.Rows[0].Female)
}

func TestDatasetMax(t *testing.T) {
	d, ok := Default().Dataset("graduates")
	require.True(t, ok)
	assert.Equal(t, 53355.0, d.Max())
	assert.Equal(t, 0.0, Dataset{}.Max())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalCatalog(5)), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Questions(), 5)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_EmptyPathUsesEmbedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Same(t, Default(), c)
}

func TestParse_RejectsSchemaViolations(t *testing.T) {
	_, err := Parse([]byte("version: v1.0.0\nmodules: []\ndatasets: []\nquestions: nope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("version: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse catalog")
}

// minimalCatalog builds a valid catalog with n questions.
func minimalCatalog(n int) string {
	var b strings.Builder
	b.WriteString("version: v1.2.0\nmodules: []\ndatasets: []\nquestions:\n")
	for i := range n {
		b.WriteString("- id: q" + string(rune('a'+i)) + "\n")
		b.WriteString("  prompt: Question " + string(rune('A'+i)) + "?\n")
		b.WriteString("  options: [one, two, three, four]\n")
		b.WriteString("  correct: 0\n")
		b.WriteString("  explanation: because\n")
	}
	return b.String()
}
