package models

// Anchor is one row of a slug table (complexity, subject, chapter,
// exercise). All four tables share this shape.
type Anchor struct {
	ID   int    `db:"id"`
	Slug string `db:"slug"`
	Name string `db:"name"`
}
