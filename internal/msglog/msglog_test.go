package msglog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogKeepsLastCapacityLines(t *testing.T) {
	l := New(3, 80)
	for i := range 7 {
		l.Add(fmt.Sprintf("msg %d", i), tcell.ColorWhite)
	}
	lines := l.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "msg 4", lines[0].Text)
	assert.Equal(t, "msg 5", lines[1].Text)
	assert.Equal(t, "msg 6", lines[2].Text)
}

func TestLogKeepsColors(t *testing.T) {
	l := New(4, 80)
	l.Add("peach", tcell.ColorOrange)
	l.Add("red", tcell.ColorRed)
	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, tcell.ColorOrange, lines[0].Color)
	assert.Equal(t, tcell.ColorRed, lines[1].Color)
}

func TestLogWrappedLinesEvictIndividually(t *testing.T) {
	l := New(2, 10)
	l.Add("first", tcell.ColorWhite)
	l.Add("alpha beta gamma", tcell.ColorRed) // wraps to two lines
	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "alpha beta", lines[0].Text)
	assert.Equal(t, "gamma", lines[1].Text)
	assert.Equal(t, tcell.ColorRed, lines[1].Color)
}

func TestLinesIsACopy(t *testing.T) {
	l := New(2, 10)
	l.Add("hello", tcell.ColorWhite)
	lines := l.Lines()
	lines[0].Text = "changed"
	assert.Equal(t, "hello", l.Lines()[0].Text)
}

func TestWrap(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "orc attacks", 20, []string{"orc attacks"}},
		{"exact width", "abc def", 7, []string{"abc def"}},
		{"greedy break", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"long word alone", "a extraordinarily b", 5, []string{"a", "extraordinarily", "b"}},
		{"collapses spaces", "  so   much   space ", 40, []string{"so much space"}},
		{"empty", "   ", 10, nil},
		{"no wrapping", "one two three", 0, []string{"one two three"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Wrap(tc.text, tc.width))
		})
	}
}

func TestWrapNeverSplitsWords(t *testing.T) {
	text := "W E L C O M E ! Prepare to perish in the Tombs of the Ancient Kings."
	for width := 1; width <= 30; width++ {
		lines := Wrap(text, width)
		assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(lines, " ")))
		for _, line := range lines {
			if strings.Contains(line, " ") {
				assert.LessOrEqual(t, runewidth.StringWidth(line), width, "line %q", line)
			}
		}
	}
}

func TestWrapMeasuresDisplayWidth(t *testing.T) {
	// Each CJK rune is two columns wide.
	assert.Equal(t, []string{"日本", "語"}, Wrap("日本 語", 5))
}
