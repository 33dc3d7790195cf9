// Package feedback holds the user feedback form.
package feedback

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Role is who the respondent says they are.
type Role string

const (
	RoleStudent  Role = "Student"
	RoleTeacher  Role = "Teacher"
	RoleParent   Role = "Parent"
	RoleAdvocate Role = "Advocate"
)

// Roles lists the choices in display order.
func Roles() []Role {
	return []Role{RoleStudent, RoleTeacher, RoleParent, RoleAdvocate}
}

// Rating bounds.
const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = MaxRating
)

// MaxTextLen caps each free-text field, in runes.
const MaxTextLen = 2000

var (
	ErrInvalidRating = errors.New("feedback: rating must be between 1 and 5")
	ErrInvalidRole   = errors.New("feedback: unknown role")
	ErrTooLong       = errors.New("feedback: text too long")
)

// Form is the editable state of the feedback form.
type Form struct {
	Name     string
	Role     Role
	Rating   int
	Clarity  string
	Comments string
}

// NewForm returns an empty form with the default role and rating.
func NewForm() Form {
	return Form{Role: RoleStudent, Rating: DefaultRating}
}

// Submission is an accepted form.
type Submission struct {
	Name        string
	Role        Role
	Rating      int
	Clarity     string
	Comments    string
	SubmittedAt time.Time
}

// DisplayName returns the name or "Anonymous".
func (s Submission) DisplayName() string {
	if s.Name == "" {
		return "Anonymous"
	}
	return s.Name
}

// Validate checks every field.
func (f Form) Validate() error {
	if f.Rating < MinRating || f.Rating > MaxRating {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, f.Rating)
	}
	if !validRole(f.Role) {
		return fmt.Errorf("%w: %q", ErrInvalidRole, f.Role)
	}
	for _, field := range []struct{ name, value string }{
		{"name", f.Name},
		{"clarity", f.Clarity},
		{"comments", f.Comments},
	} {
		if utf8.RuneCountInString(field.value) > MaxTextLen {
			return fmt.Errorf("%w: %s exceeds %d characters", ErrTooLong, field.name, MaxTextLen)
		}
	}
	return nil
}

// Submit validates the form and returns the trimmed submission.
func (f Form) Submit(now time.Time) (Submission, error) {
	if err := f.Validate(); err != nil {
		return Submission{}, err
	}
	return Submission{
		Name:        strings.TrimSpace(f.Name),
		Role:        f.Role,
		Rating:      f.Rating,
		Clarity:     strings.TrimSpace(f.Clarity),
		Comments:    strings.TrimSpace(f.Comments),
		SubmittedAt: now,
	}, nil
}

// NextRole cycles forward through Roles.
func (f Form) NextRole() Role {
	return cycleRole(f.Role, 1)
}

// PrevRole cycles backward through Roles.
func (f Form) PrevRole() Role {
	return cycleRole(f.Role, -1)
}

// AdjustRating moves the rating by delta, clamped to the valid range.
func (f Form) AdjustRating(delta int) int {
	return min(max(f.Rating+delta, MinRating), MaxRating)
}

func cycleRole(r Role, step int) Role {
	roles := Roles()
	for i, candidate := range roles {
		if candidate == r {
			return roles[(i+step+len(roles))%len(roles)]
		}
	}
	return roles[0]
}

func validRole(r Role) bool {
	for _, candidate := range Roles() {
		if candidate == r {
			return true
		}
	}
	return false
}
