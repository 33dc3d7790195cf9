package content

import "slices"

// Kind classifies a learning module.
type Kind string

const (
	KindLaw     Kind = "Law"
	KindArticle Kind = "Article"
	KindStudy   Kind = "Study"
)

// AllKinds returns the module kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindLaw, KindArticle, KindStudy}
}

// Region is the geographic scope of a module.
type Region string

const (
	RegionPH     Region = "PH"
	RegionGlobal Region = "Global"
)

// Reference is an external source cited by a module.
type Reference struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Module is a single article, law summary or study in the library.
type Module struct {
	ID          string      `yaml:"id"`
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Kind        Kind        `yaml:"kind"`
	Region      Region      `yaml:"region"`
	Link        string      `yaml:"link"`
	Image       string      `yaml:"image"`
	Body        string      `yaml:"body"`
	KeyPoints   []string    `yaml:"key_points"`
	References  []Reference `yaml:"references"`
}

func (m Module) clone() Module {
	m.KeyPoints = slices.Clone(m.KeyPoints)
	m.References = slices.Clone(m.References)
	return m
}

// StatRow is one category of a dataset with its female and male values.
type StatRow struct {
	Category string  `yaml:"category"`
	Female   float64 `yaml:"female"`
	Male     float64 `yaml:"male"`
}

// Dataset is a table of sex-disaggregated statistics.
type Dataset struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Unit        string    `yaml:"unit"`
	Description string    `yaml:"description"`
	Rows        []StatRow `yaml:"rows"`
}

// Max returns the largest value across both series, or 0 for an empty dataset.
func (d Dataset) Max() float64 {
	var hi float64
	for _, r := range d.Rows {
		hi = max(hi, r.Female, r.Male)
	}
	return hi
}

func (d Dataset) clone() Dataset {
	d.Rows = slices.Clone(d.Rows)
	return d
}

// Organization is a partner institution listed under resources.
type Organization struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// Question is a multiple-choice quiz item. ID is its identity; two
// questions with the same prompt are still distinct.
type Question struct {
	ID          string   `yaml:"id"`
	Prompt      string   `yaml:"prompt"`
	Options     []string `yaml:"options"`
	Correct     int      `yaml:"correct"`
	Explanation string   `yaml:"explanation"`
}

// CorrectText returns the text of the correct option.
func (q Question) CorrectText() string {
	return q.Options[q.Correct]
}

func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

// Slide is one entry of the home screen slideshow.
type Slide struct {
	Tag         string `yaml:"tag"`
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Description string `yaml:"description"`
}
