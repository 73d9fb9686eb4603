// Package menu provides the immutable dish catalog and the static pages of
// the restaurant.
package menu

import "fmt"

// Item is a dish on the menu. Items are loaded once and referenced by ID.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category,omitempty"`
	Label       string `json:"label,omitempty"`
	Price       string `json:"price,omitempty"`
	Featured    bool   `json:"featured,omitempty"`
}

// Title is the name with the label appended, e.g. "Uthappizza (Hot)".
func (i Item) Title() string {
	if i.Label != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Label)
	}
	return i.Name
}

// FilterValue is the text list filtering matches against.
func (i Item) FilterValue() string { return i.Name }

// Promotion is a featured offer shown on the home page.
type Promotion struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Label       string `json:"label,omitempty"`
	Price       string `json:"price,omitempty"`
	Featured    bool   `json:"featured,omitempty"`
	Description string `json:"description"`
}

// Leader is a member of the corporate leadership listed on the about page.
type Leader struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Designation string `json:"designation"`
	Abbr        string `json:"abbr"`
	Featured    bool   `json:"featured,omitempty"`
	Description string `json:"description"`
}
