// Package ssh adapts a gliderlabs SSH session into a tcell terminal.
package ssh

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPty is returned for sessions opened without a pseudo-terminal.
var ErrNoPty = errors.New("session has no pty")

// Tty implements tcell.Tty over one SSH channel. Window changes reported
// by the client are forwarded to tcell as resize notifications.
type Tty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu       sync.Mutex
	window   gossh.Window
	onResize func()
	watching bool
}

var _ tcell.Tty = (*Tty)(nil)

// NewTty wraps s. It fails with ErrNoPty unless the client requested a
// pty, and also returns the TERM the client announced.
func NewTty(s gossh.Session) (*Tty, string, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, "", ErrNoPty
	}
	return &Tty{session: s, winCh: winCh, window: pty.Window}, pty.Term, nil
}

func (t *Tty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *Tty) Close() error                { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and torn
// down by the SSH server.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the most recent client window size.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The first call starts the
// watcher, which lives until the client's window channel closes.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	start := !t.watching
	t.watching = true
	t.mu.Unlock()
	if start {
		go t.watch()
	}
}

func (t *Tty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
