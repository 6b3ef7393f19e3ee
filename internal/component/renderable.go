package component

import "github.com/gdamore/tcell/v2"

// Renderable is how an entity is drawn: one glyph in one colour.
type Renderable struct {
	Glyph rune
	Color tcell.Color
}
