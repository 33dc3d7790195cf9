package content

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

const (
	// MinQuestions is the smallest question bank a quiz round can draw from.
	MinQuestions = 5

	// OptionsPerQuestion is the fixed number of choices for every question.
	OptionsPerQuestion = 4

	// SupportedMajor is the catalog format major version this build reads.
	SupportedMajor = "v1"
)

// validateCatalog performs all content checks on a decoded catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(f catalogFile) error {
	var errs []string

	switch {
	case !semver.IsValid(f.Version):
		errs = append(errs, fmt.Sprintf("version %q is not a semantic version", f.Version))
	case semver.Major(f.Version) != SupportedMajor:
		errs = append(errs, fmt.Sprintf("version %s is not supported (want %s.x)", f.Version, SupportedMajor))
	}

	moduleIDs := make(map[string]bool, len(f.Modules))
	for _, m := range f.Modules {
		if m.ID == "" {
			errs = append(errs, fmt.Sprintf("module %q has no ID", m.Title))
			continue
		}
		if moduleIDs[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
		}
		moduleIDs[m.ID] = true

		switch m.Kind {
		case KindLaw, KindArticle, KindStudy:
		default:
			errs = append(errs, fmt.Sprintf("module %q has unknown kind %q", m.ID, m.Kind))
		}
		switch m.Region {
		case RegionPH, RegionGlobal:
		default:
			errs = append(errs, fmt.Sprintf("module %q has unknown region %q", m.ID, m.Region))
		}
	}

	datasetIDs := make(map[string]bool, len(f.Datasets))
	for _, d := range f.Datasets {
		if datasetIDs[d.ID] {
			errs = append(errs, fmt.Sprintf("duplicate dataset ID: %q", d.ID))
		}
		datasetIDs[d.ID] = true
		if len(d.Rows) == 0 {
			errs = append(errs, fmt.Sprintf("dataset %q has no rows", d.ID))
		}
		for _, r := range d.Rows {
			if r.Female < 0 || r.Male < 0 {
				errs = append(errs, fmt.Sprintf("dataset %q row %q has a negative value", d.ID, r.Category))
			}
		}
	}

	if len(f.Questions) < MinQuestions {
		errs = append(errs, fmt.Sprintf("need at least %d questions, got %d", MinQuestions, len(f.Questions)))
	}
	questionIDs := make(map[string]bool, len(f.Questions))
	for _, q := range f.Questions {
		if questionIDs[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		questionIDs[q.ID] = true

		if len(q.Options) != OptionsPerQuestion {
			errs = append(errs, fmt.Sprintf("question %q: want %d options, got %d", q.ID, OptionsPerQuestion, len(q.Options)))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			errs = append(errs, fmt.Sprintf("question %q: correct index %d out of range", q.ID, q.Correct))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
