// Package assets holds the fixed rule data: archetype stats, colours, and
// the layout constants of the terminal panel.
package assets

import (
	"github.com/gdamore/tcell/v2"

	"tombs-roguelike/internal/component"
)

// Archetype is the template an entity is built from.
type Archetype struct {
	Name    string
	Glyph   rune
	Color   tcell.Color
	HP      int
	Defense int
	Power   int
	Death   component.DeathBehavior
}

// MonsterKind selects a monster archetype.
type MonsterKind uint8

const (
	MonsterOrc   MonsterKind = iota // weak, common
	MonsterTroll                    // strong, rare
)

// OrcChance is the percentage of spawns that are orcs; the rest are trolls.
const OrcChance = 80

// Player is the hero template.
var Player = Archetype{
	Name: "player", Glyph: '@', Color: ColorWhite,
	HP: 30, Defense: 2, Power: 5, Death: component.DeathPlayer,
}

// Monsters maps each kind to its template.
var Monsters = map[MonsterKind]Archetype{
	MonsterOrc: {
		Name: "orc", Glyph: 'o', Color: ColorDesaturatedGreen,
		HP: 10, Defense: 0, Power: 2, Death: component.DeathMonster,
	},
	MonsterTroll: {
		Name: "troll", Glyph: 'T', Color: ColorDarkerGreen,
		HP: 14, Defense: 1, Power: 3, Death: component.DeathMonster,
	},
}

// Corpse presentation for anything whose fighter has died.
const GlyphCorpse = '%'

// ColorCorpse is the colour of remains.
var ColorCorpse = ColorDarkRed
