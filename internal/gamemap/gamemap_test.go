package gamemap

import (
	"errors"
	"testing"
)

func TestInBounds(t *testing.T) {
	g := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := g.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestNewGridIsSolidRock(t *testing.T) {
	g := New(6, 4)
	for y := range 4 {
		for x := range 6 {
			tile, err := g.Tile(x, y)
			if err != nil {
				t.Fatalf("Tile(%d,%d): %v", x, y, err)
			}
			if !tile.Blocked || !tile.BlocksSight || tile.Explored {
				t.Fatalf("tile (%d,%d) = %+v; want blocked, sight-blocking, unexplored", x, y, *tile)
			}
		}
	}
}

func TestTileOutOfBounds(t *testing.T) {
	g := New(5, 5)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		if _, err := g.Tile(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Tile(%d,%d) err = %v; want ErrOutOfBounds", p[0], p[1], err)
		}
	}
	if blocked, err := g.IsBlocked(7, 7); !blocked || !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("IsBlocked out of bounds = %v, %v; want true, ErrOutOfBounds", blocked, err)
	}
	if err := g.Carve(-3, 2); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Carve out of bounds err = %v; want ErrOutOfBounds", err)
	}
}

func TestNewTileSightDefaults(t *testing.T) {
	if tile := NewTile(true); !tile.BlocksSight {
		t.Error("blocked tile should block sight by default")
	}
	if tile := NewTile(false); tile.BlocksSight {
		t.Error("open tile should not block sight by default")
	}
	if tile := NewTileSight(true, false); !tile.Blocked || tile.BlocksSight {
		t.Errorf("override ignored: %+v", tile)
	}
}

func TestCarveKeepsExplored(t *testing.T) {
	g := New(5, 5)
	g.Explore(2, 2)
	if err := g.Carve(2, 2); err != nil {
		t.Fatal(err)
	}
	tile, _ := g.Tile(2, 2)
	if tile.Blocked || tile.BlocksSight {
		t.Errorf("carved tile should be open, got %+v", *tile)
	}
	if !tile.Explored {
		t.Error("carving must not clear the explored flag")
	}
}

func TestRoomCenter(t *testing.T) {
	r := NewRoom(0, 0, 4, 4)
	cx, cy := r.Center()
	if cx != 2 || cy != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", cx, cy)
	}
	// Odd spans truncate.
	r = NewRoom(2, 2, 5, 5)
	cx, cy = r.Center()
	if cx != 4 || cy != 4 {
		t.Errorf("expected center (4,4), got (%d,%d)", cx, cy)
	}
}

func TestRoomIntersects(t *testing.T) {
	a := Room{0, 0, 4, 4}
	b := Room{3, 3, 7, 7}
	c := Room{5, 5, 9, 9}
	edge := Room{4, 0, 8, 4}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
	if !a.Intersects(edge) || !edge.Intersects(a) {
		t.Error("rooms sharing an edge should intersect")
	}
}

func TestIsTransparent(t *testing.T) {
	cases := []struct {
		name string
		tile Tile
		x, y int
		want bool
	}{
		{"wall is opaque", MakeWall(), 2, 2, false},
		{"floor is transparent", MakeFloor(), 2, 2, true},
		{"glass blocks movement only", NewTileSight(true, false), 2, 2, false},
		{"curtain blocks sight only", NewTileSight(false, true), 2, 2, false},
		{"out-of-bounds x=-1", MakeWall(), -1, 0, false},
		{"out-of-bounds y=-1", MakeWall(), 0, -1, false},
		{"out-of-bounds beyond width", MakeWall(), 10, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := New(5, 5)
			if g.InBounds(tc.x, tc.y) {
				if err := g.Set(tc.x, tc.y, tc.tile); err != nil {
					t.Fatal(err)
				}
			}
			if got := g.IsTransparent(tc.x, tc.y); got != tc.want {
				t.Errorf("IsTransparent(%d,%d) = %v; want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}
