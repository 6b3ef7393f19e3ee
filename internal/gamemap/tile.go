package gamemap

// Tile holds the movement, sight and memory state for one map cell.
type Tile struct {
	Blocked     bool
	BlocksSight bool
	Explored    bool
}

// NewTile returns a tile whose sight blocking follows its movement blocking.
func NewTile(blocked bool) Tile {
	return Tile{Blocked: blocked, BlocksSight: blocked}
}

// NewTileSight returns a tile with sight blocking set independently,
// e.g. a chasm that blocks movement but not sight.
func NewTileSight(blocked, blocksSight bool) Tile {
	return Tile{Blocked: blocked, BlocksSight: blocksSight}
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return NewTile(true)
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return NewTile(false)
}
