package menu

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed about.md
var aboutMarkdown string

//go:embed contact.md
var contactMarkdown string

// Page is a static informational screen rendered from markdown.
type Page struct {
	Title    string
	Markdown string
}

// HomePage summarizes the featured dish, promotion and leader.
func (c *Catalog) HomePage() Page {
	var b strings.Builder
	b.WriteString("# Ristorante con Fusion\n")
	if d, ok := c.FeaturedDish(); ok {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", d.Name, d.Description)
	}
	if p, ok := c.FeaturedPromotion(); ok {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", p.Name, p.Description)
	}
	if l, ok := c.FeaturedLeader(); ok {
		fmt.Fprintf(&b, "\n## %s\n\n*%s*\n\n%s\n", l.Name, l.Designation, l.Description)
	}
	return Page{Title: "Home", Markdown: b.String()}
}

// AboutPage tells the restaurant history and lists the leadership.
func (c *Catalog) AboutPage() Page {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(aboutMarkdown))
	b.WriteString("\n\n# Corporate Leadership\n")
	for _, l := range c.leaders {
		fmt.Fprintf(&b, "\n## %s\n\n*%s*\n\n%s\n", l.Name, l.Designation, l.Description)
	}
	return Page{Title: "About Us", Markdown: b.String()}
}

// ContactPage lists the restaurant address and contact channels.
func ContactPage() Page {
	return Page{Title: "Contact Us", Markdown: strings.TrimSpace(contactMarkdown)}
}
