// Package comment holds the dish comment record.
package comment

import (
	"fmt"
	"strings"
	"time"
)

const (
	// MinRating is the lowest star rating a comment can carry.
	MinRating = 1
	// MaxRating is the highest star rating a comment can carry.
	MaxRating = 5
)

// Comment is a rating and remark left on a dish. It is never mutated after
// the store accepts it.
type Comment struct {
	ID     int       `json:"id"`
	ItemID int       `json:"dishId"`
	Rating int       `json:"rating"`
	Author string    `json:"author"`
	Text   string    `json:"comment"`
	Date   Timestamp `json:"date"`
}

// New builds an unsaved comment dated at the provided instant.
func New(itemID, rating int, author, text string, at time.Time) *Comment {
	return &Comment{
		ItemID: itemID,
		Rating: rating,
		Author: author,
		Text:   text,
		Date:   Timestamp{Time: at},
	}
}

// Stars renders the rating as filled and empty stars.
func (c *Comment) Stars() string {
	r := c.Rating
	if r < 0 {
		r = 0
	}
	if r > MaxRating {
		r = MaxRating
	}
	return strings.Repeat("★", r) + strings.Repeat("☆", MaxRating-r)
}

// Byline renders the attribution line shown under a comment.
func (c *Comment) Byline() string {
	return fmt.Sprintf("-- %s, %s", c.Author, c.Date.Display())
}

func (c *Comment) String() string {
	return fmt.Sprintf("%s %s %s", c.Stars(), c.Text, c.Byline())
}
