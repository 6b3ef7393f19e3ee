package fov

import "tombs-roguelike/internal/gamemap"

// View caches the visible set from the player's position. It recomputes
// only after MarkDirty, so a stale set is never served after a move and a
// still player costs nothing.
type View struct {
	Radius     int
	LightWalls bool

	dirty      bool
	visible    Set
	recomputes int
}

// NewView returns a dirty View; the first Update always computes.
func NewView(radius int, lightWalls bool) *View {
	return &View{Radius: radius, LightWalls: lightWalls, dirty: true, visible: Set{}}
}

// MarkDirty flags the cached set as stale.
func (v *View) MarkDirty() { v.dirty = true }

// Dirty reports whether the next Update will recompute.
func (v *View) Dirty() bool { return v.dirty }

// Update recomputes the visible set from (ox, oy) if dirty and marks each
// visible tile explored. Explored flags are never cleared. It reports
// whether a recomputation happened. On error the view stays dirty.
func (v *View) Update(g *gamemap.Grid, ox, oy int) (bool, error) {
	if !v.dirty {
		return false, nil
	}
	set, err := Compute(g, ox, oy, v.Radius, v.LightWalls)
	if err != nil {
		return false, err
	}
	for p := range set {
		g.Explore(p.X, p.Y)
	}
	v.visible = set
	v.dirty = false
	v.recomputes++
	return true, nil
}

// Visible returns the current visible set. Callers must not modify it.
func (v *View) Visible() Set { return v.visible }

// Contains reports whether (x, y) is currently visible.
func (v *View) Contains(x, y int) bool { return v.visible.Contains(x, y) }

// Recomputes counts the recomputations so far.
func (v *View) Recomputes() int { return v.recomputes }
