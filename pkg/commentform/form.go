// Package commentform drives the modal used to rate and comment on a dish.
package commentform

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/confusion/pkg/comment"
)

// DefaultRating is the star rating a freshly opened form starts with.
const DefaultRating = 5

var (
	// ErrNotOpen is returned by operations that need the modal to be open.
	ErrNotOpen = errors.New("commentform: modal is not open")
	// ErrAlreadyOpen is returned when opening a modal that is already open.
	ErrAlreadyOpen = errors.New("commentform: modal is already open")
	// ErrInvalid is returned when submit finds invalid fields.
	ErrInvalid = errors.New("commentform: invalid comment")
)

// State is the modal lifecycle state.
type State int

const (
	// Closed means the modal is hidden.
	Closed State = iota
	// Open means the modal is visible and accepts edits.
	Open
	// Submitting means the comment is being handed to the store.
	Submitting
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Submitting:
		return "submitting"
	default:
		return "closed"
	}
}

// Fields are the values the user edits. An empty Author or Comment means the
// user has not typed anything yet.
type Fields struct {
	Rating  int
	Author  string
	Comment string
}

// Defaults returns the values a form opens and resets with.
func Defaults() Fields {
	return Fields{Rating: DefaultRating}
}

// Field names used in validation problems.
const (
	FieldRating  = "rating"
	FieldAuthor  = "author"
	FieldComment = "comment"
)

// FieldError explains why a single field is invalid.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validation is the result of checking a set of fields.
type Validation struct {
	Valid    bool
	Problems []FieldError
}

// Problem returns the message for the given field, if any.
func (v Validation) Problem(field string) (string, bool) {
	for _, p := range v.Problems {
		if p.Field == field {
			return p.Message, true
		}
	}
	return "", false
}

func (v Validation) Error() string {
	parts := make([]string, 0, len(v.Problems))
	for _, p := range v.Problems {
		parts = append(parts, p.Error())
	}
	return strings.Join(parts, "; ")
}

// Validate checks the fields without touching any form state.
func Validate(f Fields) Validation {
	var problems []FieldError
	if f.Rating < comment.MinRating || f.Rating > comment.MaxRating {
		problems = append(problems, FieldError{
			Field:   FieldRating,
			Message: fmt.Sprintf("must be between %d and %d", comment.MinRating, comment.MaxRating),
		})
	}
	if strings.TrimSpace(f.Author) == "" {
		problems = append(problems, FieldError{Field: FieldAuthor, Message: "is required"})
	}
	if strings.TrimSpace(f.Comment) == "" {
		problems = append(problems, FieldError{Field: FieldComment, Message: "is required"})
	}
	return Validation{Valid: len(problems) == 0, Problems: problems}
}

// Poster receives submitted comments.
type Poster interface {
	PostComment(ctx context.Context, c *comment.Comment) error
}

// PosterFunc adapts a function to Poster.
type PosterFunc func(ctx context.Context, c *comment.Comment) error

// PostComment implements Poster.
func (f PosterFunc) PostComment(ctx context.Context, c *comment.Comment) error {
	return f(ctx, c)
}

// Form is the comment modal for one dish.
type Form struct {
	itemID int
	poster Poster
	now    func() time.Time

	state      State
	fields     Fields
	validation Validation
}

// New returns a closed form bound to a dish.
func New(itemID int, poster Poster) *Form {
	return &Form{
		itemID: itemID,
		poster: poster,
		now:    time.Now,
		fields: Defaults(),
	}
}

// SetClock overrides the time source used to date comments.
func (f *Form) SetClock(now func() time.Time) {
	if now != nil {
		f.now = now
	}
}

// ItemID is the dish the form comments on.
func (f *Form) ItemID() int { return f.itemID }

// State returns the lifecycle state.
func (f *Form) State() State { return f.state }

// IsOpen reports whether the modal is visible.
func (f *Form) IsOpen() bool { return f.state != Closed }

// Fields returns the current values.
func (f *Form) Fields() Fields { return f.fields }

// Validation returns the problems found by the last rejected submit.
func (f *Form) Validation() Validation { return f.validation }

// Open shows the modal with default values.
func (f *Form) Open() error {
	if f.state != Closed {
		return ErrAlreadyOpen
	}
	f.reset()
	f.state = Open
	return nil
}

// SetRating stores the star rating. Range checks happen on submit.
func (f *Form) SetRating(r int) error {
	if f.state != Open {
		return ErrNotOpen
	}
	f.fields.Rating = r
	return nil
}

// SetAuthor stores the author name.
func (f *Form) SetAuthor(author string) error {
	if f.state != Open {
		return ErrNotOpen
	}
	f.fields.Author = author
	return nil
}

// SetComment stores the comment text.
func (f *Form) SetComment(text string) error {
	if f.state != Open {
		return ErrNotOpen
	}
	f.fields.Comment = text
	return nil
}

// Submit validates the fields and posts the comment. Invalid fields keep the
// modal open and nothing is posted. Otherwise the modal closes and resets
// whether or not the post succeeds; a post failure is returned.
func (f *Form) Submit(ctx context.Context) (*comment.Comment, error) {
	if f.state != Open {
		return nil, ErrNotOpen
	}
	v := Validate(f.fields)
	if !v.Valid {
		f.validation = v
		return nil, fmt.Errorf("%w: %s", ErrInvalid, v.Error())
	}

	f.state = Submitting
	c := comment.New(
		f.itemID,
		f.fields.Rating,
		strings.TrimSpace(f.fields.Author),
		strings.TrimSpace(f.fields.Comment),
		f.now(),
	)
	var err error
	if f.poster != nil {
		err = f.poster.PostComment(ctx, c)
	}
	f.reset()
	f.state = Closed
	if err != nil {
		return nil, fmt.Errorf("commentform: post comment: %w", err)
	}
	return c, nil
}

// Cancel closes the modal and throws away anything typed.
func (f *Form) Cancel() error {
	if f.state != Open {
		return ErrNotOpen
	}
	f.reset()
	f.state = Closed
	return nil
}

func (f *Form) reset() {
	f.fields = Defaults()
	f.validation = Validation{}
}
