package game

import (
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"tombs-roguelike/assets"
	"tombs-roguelike/internal/entity"
	"tombs-roguelike/internal/generate"
	"tombs-roguelike/internal/render"
	"tombs-roguelike/internal/system"
	"tombs-roguelike/internal/world"
)

// Outcome tells the run loop what a step asks of it.
type Outcome struct {
	Halt          bool // leave the loop
	ToggleDisplay bool // switch the renderer's display mode
	TurnTaken     bool // the player spent a turn
}

// Session is one game from welcome to exit. It is owned by a single
// goroutine.
type Session struct {
	w      *world.World
	logger *slog.Logger
	runLog RunLog
}

// NewSession generates a dungeon with cfg and roller and starts a session
// on it.
func NewSession(cfg generate.Config, roller dice.Roller, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	d, err := generate.Generate(cfg, roller)
	if err != nil {
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}
	wcfg := world.DefaultConfig()
	wcfg.Logger = logger
	w, err := world.New(d, wcfg)
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	return FromWorld(w)
}

// FromWorld starts a session on an already-populated world.
func FromWorld(w *world.World) (*Session, error) {
	s := &Session{w: w, logger: w.Logger, runLog: newRunLog()}
	w.Message(assets.Welcome, assets.ColorDarkFlame)
	if err := w.RefreshView(); err != nil {
		return nil, err
	}
	return s, nil
}

// World exposes the simulation state. Callers outside the owning goroutine
// must not touch it.
func (s *Session) World() *world.World { return s.w }

// RunLog returns the statistics gathered so far.
func (s *Session) RunLog() RunLog { return s.runLog }

// Step applies one intent and, when the player spent a turn, runs the
// monsters' pass.
func (s *Session) Step(intent Intent) (Outcome, error) {
	switch intent {
	case IntentExit:
		s.logger.Info("session halted", "state", s.w.State, "run", s.runLog)
		return Outcome{Halt: true}, nil
	case IntentToggleDisplayMode:
		return Outcome{ToggleDisplay: true}, nil
	}
	if s.w.State != world.StatePlaying {
		return Outcome{}, nil
	}
	dx, dy := intentToDelta(intent)
	if dx == 0 && dy == 0 {
		return Outcome{}, nil
	}

	took, err := s.playerMove(dx, dy)
	if err != nil || !took {
		return Outcome{}, err
	}
	s.runLog.TurnsPlayed++
	if s.w.State == world.StatePlaying {
		if err := s.monstersAct(); err != nil {
			return Outcome{TurnTaken: true}, err
		}
	}
	return Outcome{TurnTaken: true}, nil
}

// playerMove attacks a fighter at the destination or walks there. It
// reports whether a turn was spent.
func (s *Session) playerMove(dx, dy int) (bool, error) {
	p := s.w.PlayerEntity()
	dest := p.Pos.Add(dx, dy)
	if target, ok := s.w.Entities.FighterAt(dest.X, dest.Y); ok && target != s.w.Player {
		name := s.w.Entities.Get(target).Name
		res := system.Attack(s.w, s.w.Player, target)
		s.runLog.DamageDealt += res.Damage
		if res.Killed {
			s.runLog.EnemiesKilled[name]++
		}
		return true, nil
	}
	res, err := system.TryMove(s.w, s.w.Player, dx, dy)
	if err != nil {
		return false, err
	}
	if res != system.MoveOK {
		return false, nil
	}
	s.w.View.MarkDirty()
	return true, nil
}

// monstersAct gives every AI-driven entity one turn in registry order,
// stopping as soon as the player dies.
func (s *Session) monstersAct() error {
	if err := s.w.RefreshView(); err != nil {
		return err
	}
	player := s.w.PlayerEntity().Fighter
	before := player.HP
	defer func() { s.runLog.DamageTaken += before - player.HP }()

	for _, h := range s.w.Entities.Order() {
		if h == s.w.Player {
			continue
		}
		if e := s.w.Entities.Get(h); e == nil || e.AI == nil {
			continue
		}
		if err := system.TakeTurn(s.w, h); err != nil {
			return err
		}
		if s.w.State == world.StateDead {
			s.logger.Info("player killed", "run", s.runLog)
			break
		}
	}
	return nil
}

// Snapshot collects the drawable state. Only entities standing in the
// player's view are included, and the player is always drawn last.
func (s *Session) Snapshot() render.Snapshot {
	w := s.w
	p := w.PlayerEntity()
	snap := render.Snapshot{
		Grid:     w.Grid,
		Visible:  w.View.Visible(),
		PlayerX:  p.Pos.X,
		PlayerY:  p.Pos.Y,
		Dead:     w.State == world.StateDead,
		Messages: w.Log.Lines(),
	}
	for _, h := range w.Entities.Order() {
		e := w.Entities.Get(h)
		if h == w.Player || !snap.Visible.Contains(e.Pos.X, e.Pos.Y) {
			continue
		}
		snap.Entities = append(snap.Entities, view(e))
	}
	snap.Entities = append(snap.Entities, view(p))
	if p.Fighter != nil {
		snap.HP, snap.MaxHP = p.Fighter.HP, p.Fighter.MaxHP()
	}
	return snap
}

func view(e *entity.Entity) render.EntityView {
	return render.EntityView{Name: e.Name, X: e.Pos.X, Y: e.Pos.Y, Glyph: e.Render.Glyph, Color: e.Render.Color}
}
