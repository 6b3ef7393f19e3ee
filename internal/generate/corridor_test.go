package generate

import (
	"testing"

	"tombs-roguelike/internal/gamemap"
)

func open(g *gamemap.Grid, x, y int) bool {
	blocked, err := g.IsBlocked(x, y)
	return err == nil && !blocked
}

// allFloorRow checks that every tile at y between x1 and x2 (inclusive) is open.
func allFloorRow(g *gamemap.Grid, x1, x2, y int) bool {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if !open(g, x, y) {
			return false
		}
	}
	return true
}

// allFloorCol checks that every tile at x between y1 and y2 (inclusive) is open.
func allFloorCol(g *gamemap.Grid, y1, y2, x int) bool {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if !open(g, x, y) {
			return false
		}
	}
	return true
}

func TestCarveH(t *testing.T) {
	g := gamemap.New(20, 20)
	if err := carveH(g, 3, 8, 5); err != nil {
		t.Fatal(err)
	}
	if !allFloorRow(g, 3, 8, 5) {
		t.Error("carveH(3,8,5) should carve floor tiles from x=3 to x=8 at y=5")
	}
	// Tiles just outside the segment must remain walls.
	if open(g, 2, 5) {
		t.Error("tile at x=2 should remain wall (not part of segment)")
	}
	if open(g, 9, 5) {
		t.Error("tile at x=9 should remain wall (not part of segment)")
	}
	if g.IsTransparent(9, 5) || !g.IsTransparent(8, 5) {
		t.Error("carved tiles must stop blocking sight, others must not")
	}
}

func TestCarveHReversedArgs(t *testing.T) {
	g := gamemap.New(20, 20)
	if err := carveH(g, 8, 3, 5); err != nil {
		t.Fatal(err)
	}
	if !allFloorRow(g, 3, 8, 5) {
		t.Error("carveH with reversed x args should still carve x=3..8")
	}
}

func TestCarveV(t *testing.T) {
	g := gamemap.New(20, 20)
	if err := carveV(g, 2, 7, 4); err != nil {
		t.Fatal(err)
	}
	if !allFloorCol(g, 2, 7, 4) {
		t.Error("carveV(2,7,4) should carve floor tiles from y=2 to y=7 at x=4")
	}
	if open(g, 4, 1) || open(g, 4, 8) {
		t.Error("tiles beyond the segment should remain wall")
	}
}

func TestCarveOutOfBoundsFails(t *testing.T) {
	g := gamemap.New(10, 10)
	if err := carveH(g, 5, 12, 3); err == nil {
		t.Fatal("carving past the grid edge must fail")
	}
}

func TestCarveTunnelBothShapes(t *testing.T) {
	for _, hFirst := range []bool{true, false} {
		g := gamemap.New(20, 20)
		if err := carveTunnel(g, 2, 2, 10, 8, hFirst); err != nil {
			t.Fatal(err)
		}
		if hFirst {
			if !allFloorRow(g, 2, 10, 2) || !allFloorCol(g, 2, 8, 10) {
				t.Error("horizontal-first tunnel should bend at (10,2)")
			}
			if open(g, 2, 8) {
				t.Error("horizontal-first tunnel must not carve the other elbow")
			}
		} else {
			if !allFloorCol(g, 2, 8, 2) || !allFloorRow(g, 2, 10, 8) {
				t.Error("vertical-first tunnel should bend at (2,8)")
			}
			if open(g, 10, 2) {
				t.Error("vertical-first tunnel must not carve the other elbow")
			}
		}
	}
}

func TestCarveRoomInterior(t *testing.T) {
	g := gamemap.New(20, 20)
	r := gamemap.NewRoom(2, 2, 5, 5)
	if err := carveRoom(g, r); err != nil {
		t.Fatal(err)
	}
	for y := 2; y <= 7; y++ {
		for x := 2; x <= 7; x++ {
			interior := x > 2 && x < 7 && y > 2 && y < 7
			if open(g, x, y) != interior {
				t.Errorf("(%d,%d) open=%v; want %v", x, y, open(g, x, y), interior)
			}
		}
	}
}
