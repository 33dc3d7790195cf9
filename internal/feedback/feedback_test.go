package feedback

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewForm_Defaults(t *testing.T) {
	f := NewForm()
	assert.Equal(t, 5, f.Rating)
	assert.Equal(t, RoleStudent, f.Role)
	assert.NoError(t, f.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Form)
		wantErr error
	}{
		{"defaults", func(*Form) {}, nil},
		{"anonymous is fine", func(f *Form) { f.Name = "" }, nil},
		{"rating zero", func(f *Form) { f.Rating = 0 }, ErrInvalidRating},
		{"rating six", func(f *Form) { f.Rating = 6 }, ErrInvalidRating},
		{"rating one", func(f *Form) { f.Rating = 1 }, nil},
		{"unknown role", func(f *Form) { f.Role = "Alien" }, ErrInvalidRole},
		{"long comments", func(f *Form) { f.Comments = strings.Repeat("a", MaxTextLen+1) }, ErrTooLong},
		{"max comments", func(f *Form) { f.Comments = strings.Repeat("ñ", MaxTextLen) }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm()
			tt.mutate(&f)
			err := f.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmit(t *testing.T) {
	now := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)
	f := Form{
		Name:     "  Maria  ",
		Role:     RoleTeacher,
		Rating:   4,
		Clarity:  " Very clear. ",
		Comments: "Add a module on RA 11313.\n",
	}

	sub, err := f.Submit(now)
	require.NoError(t, err)
	assert.Equal(t, "Maria", sub.Name)
	assert.Equal(t, RoleTeacher, sub.Role)
	assert.Equal(t, 4, sub.Rating)
	assert.Equal(t, "Very clear.", sub.Clarity)
	assert.Equal(t, "Add a module on RA 11313.", sub.Comments)
	assert.Equal(t, now, sub.SubmittedAt)
	assert.Equal(t, "Maria", sub.DisplayName())
}

func TestSubmit_Invalid(t *testing.T) {
	f := NewForm()
	f.Rating = 9
	_, err := f.Submit(time.Now())
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestDisplayName_Anonymous(t *testing.T) {
	sub, err := NewForm().Submit(time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", sub.DisplayName())
}

func TestRoleCycling(t *testing.T) {
	f := NewForm()
	assert.Equal(t, RoleTeacher, f.NextRole())
	assert.Equal(t, RoleAdvocate, f.PrevRole())

	f.Role = RoleAdvocate
	assert.Equal(t, RoleStudent, f.NextRole())

	f.Role = "bogus"
	assert.Equal(t, RoleStudent, f.NextRole())
}

func TestAdjustRating(t *testing.T) {
	f := NewForm()
	assert.Equal(t, 5, f.AdjustRating(1))
	assert.Equal(t, 4, f.AdjustRating(-1))

	f.Rating = 1
	assert.Equal(t, 1, f.AdjustRating(-1))
	assert.Equal(t, 3, f.AdjustRating(2))
}
