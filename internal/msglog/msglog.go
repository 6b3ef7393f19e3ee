// Package msglog keeps the most recent game messages, wrapped to the width
// of the message panel.
package msglog

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Line is one display line of the log.
type Line struct {
	Text  string
	Color tcell.Color
}

// Log is a fixed-capacity FIFO of wrapped lines.
type Log struct {
	capacity int
	width    int
	lines    []Line
}

// New returns a Log holding at most capacity lines of at most width
// display columns each. A width of zero or less disables wrapping.
func New(capacity, width int) *Log {
	return &Log{capacity: capacity, width: width, lines: make([]Line, 0, capacity)}
}

// Add wraps text and appends each line, evicting the oldest lines once
// the log is full.
func (l *Log) Add(text string, color tcell.Color) {
	for _, s := range Wrap(text, l.width) {
		l.push(Line{Text: s, Color: color})
	}
}

func (l *Log) push(line Line) {
	if l.capacity <= 0 {
		return
	}
	if len(l.lines) == l.capacity {
		l.lines = slices.Delete(l.lines, 0, 1)
	}
	l.lines = append(l.lines, line)
}

// Lines returns a copy of the log, oldest first.
func (l *Log) Lines() []Line {
	return slices.Clone(l.lines)
}

// Len returns the number of stored lines.
func (l *Log) Len() int { return len(l.lines) }

// Wrap splits text greedily into lines no wider than width display
// columns. Words are never split; a word wider than width gets a line of
// its own. Runs of whitespace collapse to one space.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}
	var (
		out  []string
		cur  strings.Builder
		curW int
	)
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if curW > 0 && curW+1+ww > width {
			out = append(out, cur.String())
			cur.Reset()
			curW = 0
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(w)
		curW += ww
	}
	return append(out, cur.String())
}
