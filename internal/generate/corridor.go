package generate

import "tombs-roguelike/internal/gamemap"

// carveRoom opens the interior of r, leaving its bounds as the wall ring.
func carveRoom(g *gamemap.Grid, r gamemap.Room) error {
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			if err := g.Carve(x, y); err != nil {
				return err
			}
		}
	}
	return nil
}

// carveTunnel digs an L-shaped tunnel between two room centers. When
// horizontalFirst is set the elbow sits at (x2, y1), otherwise at (x1, y2).
func carveTunnel(g *gamemap.Grid, x1, y1, x2, y2 int, horizontalFirst bool) error {
	if horizontalFirst {
		if err := carveH(g, x1, x2, y1); err != nil {
			return err
		}
		return carveV(g, y1, y2, x2)
	}
	if err := carveV(g, y1, y2, x1); err != nil {
		return err
	}
	return carveH(g, x1, x2, y2)
}

func carveH(g *gamemap.Grid, x1, x2, y int) error {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if err := g.Carve(x, y); err != nil {
			return err
		}
	}
	return nil
}

func carveV(g *gamemap.Grid, y1, y2, x int) error {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if err := g.Carve(x, y); err != nil {
			return err
		}
	}
	return nil
}
