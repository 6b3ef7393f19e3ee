package generate

import (
	"errors"
	"fmt"

	"tombs-roguelike/assets"
)

// ErrInvalidConfig is returned by Validate and Generate for unusable knobs.
var ErrInvalidConfig = errors.New("invalid dungeon config")

// Config drives procedural generation for one dungeon.
type Config struct {
	Width, Height      int
	MaxRooms           int
	RoomMinSize        int
	RoomMaxSize        int
	MaxMonstersPerRoom int
}

// DefaultConfig returns the classic 80x43 layout.
func DefaultConfig() Config {
	return Config{
		Width:              assets.MapWidth,
		Height:             assets.MapHeight,
		MaxRooms:           assets.MaxRooms,
		RoomMinSize:        assets.RoomMinSize,
		RoomMaxSize:        assets.RoomMaxSize,
		MaxMonstersPerRoom: assets.MaxRoomMonsters,
	}
}

// Validate checks that every candidate room fits inside the grid and has
// at least one interior floor tile.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.MaxRooms < 1:
		return fmt.Errorf("%w: max rooms %d", ErrInvalidConfig, c.MaxRooms)
	case c.RoomMinSize < 2:
		return fmt.Errorf("%w: room min size %d is below 2", ErrInvalidConfig, c.RoomMinSize)
	case c.RoomMinSize > c.RoomMaxSize:
		return fmt.Errorf("%w: room size range [%d,%d]", ErrInvalidConfig, c.RoomMinSize, c.RoomMaxSize)
	case c.RoomMaxSize+1 > c.Width || c.RoomMaxSize+1 > c.Height:
		return fmt.Errorf("%w: room max size %d does not fit %dx%d", ErrInvalidConfig, c.RoomMaxSize, c.Width, c.Height)
	case c.MaxMonstersPerRoom < 0:
		return fmt.Errorf("%w: max monsters %d", ErrInvalidConfig, c.MaxMonstersPerRoom)
	}
	return nil
}
