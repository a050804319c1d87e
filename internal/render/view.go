// Package render turns record lists into display models. It never touches
// templates or I/O; the web templates apply these models to the page.
package render

// Placeholder messages shown instead of cards when a list is empty.
const (
	NoRecipes  = "No recipes found with these ingredients."
	NoProjects = "No projects found."
)

// Field is one labelled line of a card.
type Field struct {
	Label string
	Value string
}

// Chip is a clickable tag.
type Chip struct {
	Label  string
	Active bool
}

// Link is an outbound anchor.
type Link struct {
	Label string
	Href  string
}

// Card is one display unit.
type Card struct {
	Title       string
	Description string
	Fields      []Field
	Chips       []Chip
	Links       []Link
}

// View is the content of one replaceable region: either cards or the
// placeholder in Empty, never both.
type View struct {
	Cards []Card
	Empty string
}

// IsEmpty reports whether the placeholder should be shown.
func (v View) IsEmpty() bool { return len(v.Cards) == 0 }
