package render

// Camera translates between world coordinates and screen coordinates.
// Each world tile is one terminal column.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int
	ViewHeight int
}

// NewCamera creates a camera with the given viewport size.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Follow positions the viewport over (cx, cy), clamped so it never shows
// past the edges of a worldW×worldH map. A map smaller than the viewport
// is pinned to the top-left corner.
func (c *Camera) Follow(cx, cy, worldW, worldH int) {
	c.OffsetX = clamp(cx-c.ViewWidth/2, 0, worldW-c.ViewWidth)
	c.OffsetY = clamp(cy-c.ViewHeight/2, 0, worldH-c.ViewHeight)
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
