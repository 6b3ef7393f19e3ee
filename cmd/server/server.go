package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"unicode"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/spf13/cobra"

	"tombs-roguelike/internal/game"
	internalssh "tombs-roguelike/internal/ssh"
)

// allowedTerms is the set of TERM values accepted from clients. Anything
// else falls back to xterm-256color so a client cannot point terminfo at
// arbitrary names.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

const fallbackTerm = "xterm-256color"

// resolveTerm returns term when it is allowed and fallbackTerm otherwise.
func resolveTerm(term string) string {
	if allowedTerms[term] {
		return term
	}
	return fallbackTerm
}

// termMu serialises os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

func runServer(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	if err := genFlags.Config().Validate(); err != nil {
		return err
	}
	signer, err := loadOrCreateHostKey(keyFile, logger)
	if err != nil {
		return err
	}

	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", port),
		Handler:     func(s gossh.Session) { handleSession(s, logger) },
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		_ = srv.Close()
	}()

	logger.Info("listening", "port", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// handleSession runs one game for the lifetime of the connection.
func handleSession(s gossh.Session, logger *slog.Logger) {
	log := logger.With("user", sanitizeName(s.User()), "remote", s.RemoteAddr().String())
	log.Info("session opened")
	defer log.Info("session closed")

	tty, term, err := internalssh.NewTty(s)
	if err != nil {
		fmt.Fprintln(s, "This game needs a terminal. Connect with: ssh -t -p", port, "<host>")
		log.Warn("rejected session", "err", err)
		return
	}
	term = resolveTerm(term)

	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.Error("terminal setup", "term", term, "err", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		log.Error("screen init", "err", err)
		return
	}
	defer screen.Fini()

	roller, seed := genFlags.Roller()
	session, err := game.NewSession(genFlags.Config(), roller, log)
	if err != nil {
		log.Error("new session", "err", err)
		return
	}
	log.Info("game started", "seed", seed, "term", term)
	if err := game.New(screen, session, game.PolicyBlocking).Run(s.Context()); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("game ended with error", "err", err)
	}
}

// sanitizeName makes a client-supplied user name safe for logs: control
// characters are dropped and the result is cut to 16 bytes on a rune
// boundary.
func sanitizeName(name string) string {
	const maxBytes = 16
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		if b.Len()+len(string(r)) > maxBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
