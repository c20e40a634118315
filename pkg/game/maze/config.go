package maze

import (
	"errors"
	"fmt"

	"wraithmaze/pkg/game/generator"
)

// ErrInvalidConfig is returned when maze dimensions cannot produce a playable maze
var ErrInvalidConfig = errors.New("invalid maze configuration")

// Default layout values
const (
	DefaultGridWidth   = 18
	DefaultGridHeight  = 13
	DefaultCellSize    = 40
	DefaultWallTile    = 25
	DefaultWorldWidth  = 1000
	DefaultWorldHeight = 760

	// DefaultEntranceHeight is the entrance and exit zone height; the zones
	// straddle the maze edge by half of it
	DefaultEntranceHeight = 40

	// SafeRoomScale is the side of a safe room relative to the cell size
	SafeRoomScale = 0.7
)

// Config describes the grid, its cell size and the world it is centred in.
type Config struct {
	GridWidth   int
	GridHeight  int
	CellSize    float64
	WallTile    float64
	WorldWidth  float64
	WorldHeight float64
	Generator   string

	// EntranceHeight sizes the entrance and exit zones. Zero uses CellSize.
	EntranceHeight float64
}

// DefaultConfig returns the standard 18x13 maze centred in a 1000x760 world
func DefaultConfig() Config {
	return Config{
		GridWidth:   DefaultGridWidth,
		GridHeight:  DefaultGridHeight,
		CellSize:    DefaultCellSize,
		WallTile:    DefaultWallTile,
		WorldWidth:  DefaultWorldWidth,
		WorldHeight: DefaultWorldHeight,
		Generator:   generator.DefaultName,

		EntranceHeight: DefaultEntranceHeight,
	}
}

// Validate reports the first problem with the configuration, wrapping ErrInvalidConfig
func (c Config) Validate() error {
	switch {
	case c.GridWidth < 3 || c.GridHeight < 3:
		return fmt.Errorf("%w: grid %dx%d is smaller than 3x3", ErrInvalidConfig, c.GridWidth, c.GridHeight)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %v", ErrInvalidConfig, c.CellSize)
	case c.WallTile <= 0:
		return fmt.Errorf("%w: wall tile %v", ErrInvalidConfig, c.WallTile)
	case c.EntranceHeight < 0:
		return fmt.Errorf("%w: entrance height %v", ErrInvalidConfig, c.EntranceHeight)
	case float64(c.GridWidth)*c.CellSize > c.WorldWidth || float64(c.GridHeight)*c.CellSize > c.WorldHeight:
		return fmt.Errorf("%w: %dx%d cells of %v do not fit a %vx%v world",
			ErrInvalidConfig, c.GridWidth, c.GridHeight, c.CellSize, c.WorldWidth, c.WorldHeight)
	}
	return nil
}
