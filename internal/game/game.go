package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"tombs-roguelike/assets"
	"tombs-roguelike/internal/render"
)

// Policy selects how the run loop waits for input.
type Policy uint8

const (
	PolicyBlocking Policy = iota // one turn per key press
	PolicyRealtime               // fixed frame rate; idle frames pass IntentNone
)

// Game drives a Session against a tcell screen.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	session  *Session
	policy   Policy
	logger   *slog.Logger
}

// New binds a session to an initialised screen.
func New(screen tcell.Screen, s *Session, policy Policy) *Game {
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		session:  s,
		policy:   policy,
		logger:   s.logger,
	}
}

// Run is the main loop. It returns nil when the player exits and
// ctx.Err() when the context is cancelled first.
func (g *Game) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			// wake PollEvent
			_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	g.draw()
	if g.policy == PolicyRealtime {
		return g.runRealtime(ctx, stop)
	}
	return g.runBlocking(ctx)
}

func (g *Game) runBlocking(ctx context.Context) error {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return nil // screen finalised
		}
		halt, err := g.handle(ctx, ev)
		if halt || err != nil {
			return err
		}
	}
}

func (g *Game) runRealtime(ctx context.Context, stop <-chan struct{}) error {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
			if _, ok := ev.(*tcell.EventInterrupt); ok {
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / assets.LimitFPS)
	defer ticker.Stop()
	var pending tcell.Event // key held over for the next frame
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		handled := false
		if pending != nil {
			ev := pending
			pending, handled = nil, true
			if halt, err := g.handle(ctx, ev); halt || err != nil {
				return err
			}
		}
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				if _, isKey := ev.(*tcell.EventKey); isKey {
					if handled {
						pending = ev // one key per frame
						break drain
					}
					handled = true
				}
				if halt, err := g.handle(ctx, ev); halt || err != nil {
					return err
				}
			default:
				break drain
			}
		}
		if !handled {
			if _, err := g.step(IntentNone); err != nil {
				return err
			}
			g.draw()
		}
	}
}

// handle processes one event and reports whether the loop should end.
func (g *Game) handle(ctx context.Context, ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.draw()
	case *tcell.EventInterrupt:
		return true, ctx.Err()
	case *tcell.EventKey:
		out, err := g.step(KeyToIntent(ev))
		if err != nil {
			return true, err
		}
		if out.Halt {
			return true, nil
		}
		g.draw()
	}
	return false, nil
}

func (g *Game) step(intent Intent) (Outcome, error) {
	out, err := g.session.Step(intent)
	if err != nil {
		g.logger.Error("step failed", "intent", intent, "err", err)
		return out, err
	}
	if out.ToggleDisplay {
		g.renderer.ToggleMode()
	}
	return out, nil
}

func (g *Game) draw() {
	g.renderer.Draw(g.session.Snapshot())
}
