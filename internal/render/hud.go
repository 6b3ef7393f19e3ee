package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"tombs-roguelike/assets"
)

// drawPanel renders the HP bar and the message log in the panel whose top
// row is y.
func (r *Renderer) drawPanel(s Snapshot, y int) {
	r.drawBar(1, y+1, assets.BarWidth, "HP", s.HP, s.MaxHP, assets.ColorLightRed, assets.ColorDarkerRed)
	for i, line := range s.Messages {
		r.drawText(assets.MsgX, y+1+i, line.Text, tcell.StyleDefault.Foreground(line.Color))
	}
}

// barFill returns how many of width cells a value/maximum bar fills.
func barFill(value, maximum, width int) int {
	if maximum <= 0 || value <= 0 {
		return 0
	}
	return min(value*width/maximum, width)
}

// drawBar renders a labelled gauge with centred "name: value/maximum".
func (r *Renderer) drawBar(x, y, width int, name string, value, maximum int, bar, back tcell.Color) {
	fill := barFill(value, maximum, width)
	for i := range width {
		bg := back
		if i < fill {
			bg = bar
		}
		r.screen.SetContent(x+i, y, ' ', nil, tcell.StyleDefault.Background(bg))
	}

	text := fmt.Sprintf("%s: %d/%d", name, value, maximum)
	col := x + (width-runewidth.StringWidth(text))/2
	for _, ch := range text {
		bg := back
		if col-x < fill {
			bg = bar
		}
		r.screen.SetContent(col, y, ch, nil, tcell.StyleDefault.Foreground(assets.ColorWhite).Background(bg))
		col += runewidth.RuneWidth(ch)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
