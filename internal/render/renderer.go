// Package render draws snapshots of a session onto a tcell screen.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"tombs-roguelike/assets"
)

// Mode selects the screen layout.
type Mode uint8

const (
	ModeFull    Mode = iota // map above the status panel
	ModeMapOnly             // map uses the whole screen
)

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	mode   Mode
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, camera: NewCamera(0, 0)}
}

// Mode returns the current layout.
func (r *Renderer) Mode() Mode { return r.mode }

// ToggleMode flips between the full layout and the map-only layout.
func (r *Renderer) ToggleMode() {
	if r.mode == ModeFull {
		r.mode = ModeMapOnly
	} else {
		r.mode = ModeFull
	}
}

// Draw renders one complete frame and shows it.
func (r *Renderer) Draw(s Snapshot) {
	w, h := r.screen.Size()
	mapH := h
	if r.mode == ModeFull {
		mapH = max(h-assets.PanelHeight, 0)
	}
	r.camera.ViewWidth, r.camera.ViewHeight = w, mapH
	r.camera.Follow(s.PlayerX, s.PlayerY, s.Grid.Width, s.Grid.Height)

	r.screen.Clear()
	r.drawMap(s)
	r.drawEntities(s)
	if r.mode == ModeFull {
		r.drawPanel(s, h-assets.PanelHeight)
	}
	r.screen.Show()
}

// tileBackground returns the background for (x, y), or false for tiles the
// player has never seen.
func tileBackground(s Snapshot, x, y int) (tcell.Color, bool) {
	t, err := s.Grid.Tile(x, y)
	if err != nil {
		return tcell.ColorDefault, false
	}
	switch {
	case s.Visible.Contains(x, y) && t.BlocksSight:
		return assets.ColorLightWall, true
	case s.Visible.Contains(x, y):
		return assets.ColorLightGround, true
	case t.Explored && t.BlocksSight:
		return assets.ColorDarkWall, true
	case t.Explored:
		return assets.ColorDarkGround, true
	}
	return tcell.ColorDefault, false
}

func (r *Renderer) drawMap(s Snapshot) {
	for y := range s.Grid.Height {
		for x := range s.Grid.Width {
			bg, seen := tileBackground(s, x, y)
			if !seen {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			r.screen.SetContent(sx, sy, ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}
}

// drawEntities draws in snapshot order so later entities cover earlier
// ones; the tile background shows through.
func (r *Renderer) drawEntities(s Snapshot) {
	for _, e := range s.Entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.X, e.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.Color)
		if bg, ok := tileBackground(s, e.X, e.Y); ok {
			style = style.Background(bg)
		}
		r.putGlyph(sx, sy, e.Glyph, style)
	}
}

// putGlyph draws a single glyph, padding the second column of wide runes.
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
