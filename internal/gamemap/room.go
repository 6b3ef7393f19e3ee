package gamemap

// Room is an axis-aligned rectangle characterising a room on the map.
// The bounds are the room's wall ring; the carved floor is the interior.
type Room struct {
	X1, Y1, X2, Y2 int
}

// NewRoom builds a room with its origin at (x, y) spanning w by h.
func NewRoom(x, y, w, h int) Room {
	return Room{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the room, truncated toward the origin.
func (r Room) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Room) Intersects(other Room) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether (x, y) lies inside the room's closed bounds.
func (r Room) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}
