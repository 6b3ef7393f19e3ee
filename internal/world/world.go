// Package world is the single context a simulation runs against: the
// dungeon grid, every entity, the player's view, the game state and the
// message log. Nothing here is global; every operation receives a *World.
package world

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"tombs-roguelike/assets"
	"tombs-roguelike/internal/entity"
	"tombs-roguelike/internal/factory"
	"tombs-roguelike/internal/fov"
	"tombs-roguelike/internal/gamemap"
	"tombs-roguelike/internal/generate"
	"tombs-roguelike/internal/msglog"
)

// State is the overall status of a session.
type State uint8

const (
	StatePlaying State = iota
	StateDead
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateDead:
		return "dead"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Config holds the fixed session tunables.
type Config struct {
	TorchRadius int
	LightWalls  bool
	MsgCapacity int
	MsgWidth    int
	Logger      *slog.Logger
}

// DefaultConfig mirrors the classic terminal layout.
func DefaultConfig() Config {
	return Config{
		TorchRadius: assets.TorchRadius,
		LightWalls:  assets.FOVLightWalls,
		MsgCapacity: assets.MsgHeight,
		MsgWidth:    assets.MsgWidth,
	}
}

// World is the state of one simulation session.
type World struct {
	Grid     *gamemap.Grid
	Rooms    []gamemap.Room
	Entities *entity.Registry
	Player   entity.Handle
	State    State
	View     *fov.View
	Log      *msglog.Log
	Logger   *slog.Logger
}

// New takes ownership of a generated dungeon and populates the registry:
// the player first, then monsters in spawn order.
func New(d *generate.Dungeon, cfg Config) (*World, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	blocked, err := d.Grid.IsBlocked(d.PlayerX, d.PlayerY)
	if err != nil {
		return nil, fmt.Errorf("player spawn: %w", err)
	}
	if blocked {
		return nil, fmt.Errorf("player spawn (%d,%d) is not an open tile", d.PlayerX, d.PlayerY)
	}

	w := &World{
		Grid:     d.Grid,
		Rooms:    d.Rooms,
		Entities: entity.NewRegistry(),
		State:    StatePlaying,
		View:     fov.NewView(cfg.TorchRadius, cfg.LightWalls),
		Log:      msglog.New(cfg.MsgCapacity, cfg.MsgWidth),
		Logger:   logger,
	}
	w.Player = factory.NewPlayer(w.Entities, d.PlayerX, d.PlayerY)
	for _, s := range d.Monsters {
		if _, err := factory.NewMonster(w.Entities, s.Kind, s.X, s.Y); err != nil {
			return nil, fmt.Errorf("spawn at (%d,%d): %w", s.X, s.Y, err)
		}
	}
	logger.Info("dungeon ready",
		"width", d.Grid.Width, "height", d.Grid.Height,
		"rooms", len(d.Rooms), "monsters", len(d.Monsters),
		"spawn_x", d.PlayerX, "spawn_y", d.PlayerY)
	return w, nil
}

// PlayerEntity returns the player's record.
func (w *World) PlayerEntity() *entity.Entity {
	return w.Entities.Get(w.Player)
}

// Message appends a line to the message log.
func (w *World) Message(text string, color tcell.Color) {
	w.Log.Add(text, color)
}

// IsBlocked reports whether terrain or a blocking entity occupies (x, y).
// Coordinates outside the grid fail with gamemap.ErrOutOfBounds.
func (w *World) IsBlocked(x, y int) (bool, error) {
	blocked, err := w.Grid.IsBlocked(x, y)
	if err != nil || blocked {
		return true, err
	}
	_, occupied := w.Entities.BlockingAt(x, y)
	return occupied, nil
}

// EndGame moves the session to StateDead. It reports false if the session
// was already over.
func (w *World) EndGame() bool {
	if w.State == StateDead {
		return false
	}
	w.State = StateDead
	w.Logger.Info("game over", "player", w.Player)
	return true
}

// RefreshView recomputes the player's view if it is stale.
func (w *World) RefreshView() error {
	p := w.PlayerEntity()
	done, err := w.View.Update(w.Grid, p.Pos.X, p.Pos.Y)
	if err != nil {
		return fmt.Errorf("refresh view: %w", err)
	}
	if done {
		w.Logger.Debug("view recomputed", "x", p.Pos.X, "y", p.Pos.Y, "visible", len(w.View.Visible()))
	}
	return nil
}
