// Package cli holds the command-line plumbing shared by the local game and
// the SSH server.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tombs-roguelike/internal/generate"
	"tombs-roguelike/internal/rng"
)

// GeneratorFlags are the dungeon knobs exposed on the command line.
type GeneratorFlags struct {
	Width       int
	Height      int
	MaxRooms    int
	RoomMin     int
	RoomMax     int
	MaxMonsters int
	Seed        int64
}

// Bind registers the generator flags on cmd with the classic defaults.
func (f *GeneratorFlags) Bind(cmd *cobra.Command) {
	d := generate.DefaultConfig()
	fs := cmd.Flags()
	fs.IntVar(&f.Width, "width", d.Width, "dungeon width in tiles")
	fs.IntVar(&f.Height, "height", d.Height, "dungeon height in tiles")
	fs.IntVar(&f.MaxRooms, "max-rooms", d.MaxRooms, "room placement attempts")
	fs.IntVar(&f.RoomMin, "room-min", d.RoomMinSize, "smallest room side")
	fs.IntVar(&f.RoomMax, "room-max", d.RoomMaxSize, "largest room side")
	fs.IntVar(&f.MaxMonsters, "max-monsters", d.MaxMonstersPerRoom, "most monsters per room")
	fs.Int64Var(&f.Seed, "seed", 0, "random seed (0 picks one from the clock)")
}

// Config converts the flags to a generator configuration.
func (f GeneratorFlags) Config() generate.Config {
	return generate.Config{
		Width:              f.Width,
		Height:             f.Height,
		MaxRooms:           f.MaxRooms,
		RoomMinSize:        f.RoomMin,
		RoomMaxSize:        f.RoomMax,
		MaxMonstersPerRoom: f.MaxMonsters,
	}
}

// Roller returns the random source for one dungeon, and the seed it used.
func (f GeneratorFlags) Roller() (*rng.Roller, int64) {
	seed := f.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rng.New(seed), seed
}

// OpenLog returns a text logger writing to path, or a discarding logger
// when path is empty. The returned closer must be called on exit.
func OpenLog(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}
