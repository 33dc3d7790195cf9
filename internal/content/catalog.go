package content

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// catalogFile is the on-disk shape of a catalog.
type catalogFile struct {
	Version       string         `yaml:"version"`
	Modules       []Module       `yaml:"modules"`
	Datasets      []Dataset      `yaml:"datasets"`
	Organizations []Organization `yaml:"organizations"`
	Questions     []Question     `yaml:"questions"`
	Slides        []Slide        `yaml:"slides"`
	Facts         []string       `yaml:"facts"`
	Suggestions   []string       `yaml:"suggestions"`
}

// Catalog is the read-only learning content. It is built once and never
// mutated; every accessor hands out copies.
type Catalog struct {
	version       string
	modules       []Module
	moduleIndex   map[string]int
	datasets      []Dataset
	datasetIndex  map[string]int
	organizations []Organization
	questions     []Question
	slides        []Slide
	facts         []string
	suggestions   []string
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(defaultCatalog)
})

// Default returns the catalog embedded in the binary. An invalid embedded
// catalog is a build defect, so it panics.
func Default() *Catalog {
	c, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("content: embedded catalog is invalid: %v", err))
	}
	return c
}

// Load returns the catalog at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog, checks it against the catalog schema and
// then validates its contents.
func Parse(data []byte) (*Catalog, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validateCatalog(f); err != nil {
		return nil, err
	}

	return build(f), nil
}

func build(f catalogFile) *Catalog {
	c := &Catalog{
		version:       f.Version,
		modules:       f.Modules,
		moduleIndex:   make(map[string]int, len(f.Modules)),
		datasets:      f.Datasets,
		datasetIndex:  make(map[string]int, len(f.Datasets)),
		organizations: f.Organizations,
		questions:     f.Questions,
		slides:        f.Slides,
		facts:         f.Facts,
		suggestions:   f.Suggestions,
	}
	for i, m := range c.modules {
		c.moduleIndex[m.ID] = i
	}
	for i, d := range c.datasets {
		c.datasetIndex[d.ID] = i
	}
	return c
}

// Version returns the catalog's semantic version.
func (c *Catalog) Version() string {
	return c.version
}

// Modules returns all modules in catalog order.
func (c *Catalog) Modules() []Module {
	out := make([]Module, len(c.modules))
	for i, m := range c.modules {
		out[i] = m.clone()
	}
	return out
}

// Module looks up a module by ID.
func (c *Catalog) Module(id string) (Module, bool) {
	i, ok := c.moduleIndex[id]
	if !ok {
		return Module{}, false
	}
	return c.modules[i].clone(), true
}

// FilterModules returns the modules of the given kind (all kinds when kind
// is empty) whose title or description contains query, ignoring case.
func (c *Catalog) FilterModules(kind Kind, query string) []Module {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Module
	for _, m := range c.modules {
		if kind != "" && m.Kind != kind {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(m.Title), q) &&
			!strings.Contains(strings.ToLower(m.Description), q) {
			continue
		}
		out = append(out, m.clone())
	}
	return out
}

// Datasets returns all statistical datasets.
func (c *Catalog) Datasets() []Dataset {
	out := make([]Dataset, len(c.datasets))
	for i, d := range c.datasets {
		out[i] = d.clone()
	}
	return out
}

// Dataset looks up a dataset by ID.
func (c *Catalog) Dataset(id string) (Dataset, bool) {
	i, ok := c.datasetIndex[id]
	if !ok {
		return Dataset{}, false
	}
	return c.datasets[i].clone(), true
}

// Questions returns the quiz question bank.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	for i, q := range c.questions {
		out[i] = q.clone()
	}
	return out
}

// Organizations returns the partner organizations.
func (c *Catalog) Organizations() []Organization {
	return slices.Clone(c.organizations)
}

// Slides returns the home slideshow entries.
func (c *Catalog) Slides() []Slide {
	return slices.Clone(c.slides)
}

// Facts returns the "did you know" facts.
func (c *Catalog) Facts() []string {
	return slices.Clone(c.facts)
}

// Suggestions returns the canned chat prompts.
func (c *Catalog) Suggestions() []string {
	return slices.Clone(c.suggestions)
}
