// Package state holds everything that belongs to one play session: the
// current world, the outcome, and pending restart requests. There is no
// package-level game state; every collaborator receives the session.
package state

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"

	"wraithmaze/pkg/game/entities"
	"wraithmaze/pkg/game/maze"
)

// Outcome is the result of the current round
type Outcome int

const (
	Playing Outcome = iota
	Escaped
	Caught
)

// String returns the message id for the outcome
func (o Outcome) String() string {
	switch o {
	case Playing:
		return "PLAYING"
	case Escaped:
		return "OUTCOME_ESCAPED"
	case Caught:
		return "OUTCOME_CAUGHT"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the round has ended
func (o Outcome) Terminal() bool {
	return o == Escaped || o == Caught
}

// World is one maze with the actors in it. The session replaces the whole
// World at once so a tick never sees a new maze with old actors.
type World struct {
	Maze    *maze.Maze
	Player  *entities.Player
	Wraiths []*entities.Wraith
}

// NewWorld places a fresh player at the maze start and spawns the wraiths
func NewWorld(m *maze.Maze) *World {
	return &World{
		Maze:    m,
		Player:  entities.NewPlayer(m.StartPosition()),
		Wraiths: entities.SpawnWraiths(m),
	}
}

// MazeFactory builds a maze from a seed
type MazeFactory func(seed int64) (*maze.Maze, error)

// request is a deferred world change applied at the start of a tick
type request int

const (
	requestNone request = iota
	requestRestart
	requestRegenerate
)

// Session is the explicit context for one play-through
type Session struct {
	ID      uuid.UUID
	Seed    int64
	Debug   bool
	World   *World
	Outcome Outcome
	Ticks   uint64
	Rounds  int

	newMaze MazeFactory
	rng     *rand.Rand
	pending request
}

// NewSession creates a session and builds its first world
func NewSession(seed int64, newMaze MazeFactory) (*Session, error) {
	s := &Session{
		ID:      uuid.New(),
		Seed:    seed,
		newMaze: newMaze,
		rng:     rand.New(rand.NewSource(seed)),
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	log.Printf("[SESSION] %s started (seed %d)", s.ID, seed)
	return s, nil
}

// ReplaceWorld swaps in w as the current world
func (s *Session) ReplaceWorld(w *World) {
	s.World = w
}

// Restart builds a new maze, player and wraiths and resets the outcome
func (s *Session) Restart() error {
	m, err := s.nextMaze()
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	s.ReplaceWorld(NewWorld(m))
	s.Outcome = Playing
	s.Rounds++
	return nil
}

// Regenerate builds a new maze but keeps the player, moved to the new start
// with full energy. Wraiths are respawned. The outcome is not touched.
func (s *Session) Regenerate() error {
	m, err := s.nextMaze()
	if err != nil {
		return fmt.Errorf("regenerate: %w", err)
	}

	player := s.World.Player
	player.Respawn(m.StartPosition())
	s.ReplaceWorld(&World{
		Maze:    m,
		Player:  player,
		Wraiths: entities.SpawnWraiths(m),
	})
	return nil
}

func (s *Session) nextMaze() (*maze.Maze, error) {
	return s.newMaze(s.rng.Int63())
}

// RequestRestart asks for a restart at the start of the next tick
func (s *Session) RequestRestart() {
	s.pending = requestRestart
}

// RequestRegenerate asks for a new maze at the start of the next tick.
// A pending restart takes priority.
func (s *Session) RequestRegenerate() {
	if s.pending != requestRestart {
		s.pending = requestRegenerate
	}
}

// ApplyPending performs any requested restart or regeneration
func (s *Session) ApplyPending() error {
	req := s.pending
	s.pending = requestNone

	switch req {
	case requestRestart:
		log.Printf("[SESSION] %s restarting", s.ID)
		return s.Restart()
	case requestRegenerate:
		log.Printf("[SESSION] %s regenerating maze", s.ID)
		return s.Regenerate()
	}
	return nil
}

// HasPending reports whether a world change is queued
func (s *Session) HasPending() bool {
	return s.pending != requestNone
}

// ToggleDebug flips the diagnostics flag
func (s *Session) ToggleDebug() {
	s.Debug = !s.Debug
}
