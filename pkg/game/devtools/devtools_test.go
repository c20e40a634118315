package devtools

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engineinput "wraithmaze/pkg/engine/input"
	"wraithmaze/pkg/engine/world"
	"wraithmaze/pkg/game/entities"
	"wraithmaze/pkg/game/maze"
	"wraithmaze/pkg/game/state"
)

func TestDevGrid_ConnectedWithDeadEnds(t *testing.T) {
	g := DevGrid()
	cx, _ := g.CenterPosition()

	reached := g.Reachable(world.Cell{X: cx, Y: 0})
	assert.Equal(t, g.OpenCount(), reached.Size(), "every open cell should be reachable")
	assert.True(t, reached.Has(world.Cell{X: cx, Y: g.Rows() - 1}))

	m, err := DevMaze(maze.DefaultConfig())
	require.NoError(t, err)
	assert.Len(t, m.SafeRooms, 3)
	start := m.StartPosition()
	assert.True(t, m.CanOccupy(start.X, start.Y, entities.PlayerRadius))
}

func TestWriteMaze_Plain(t *testing.T) {
	g, err := world.ParseGrid("#.#", "#.#", "#.#")
	require.NoError(t, err)
	m, err := maze.FromGrid(g, maze.Config{CellSize: 10, WallTile: 10, WorldWidth: 30, WorldHeight: 30})
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteMaze(&buf, m, false)
	assert.Equal(t, "#E#\n#.#\n#X#\n", buf.String())
}

func TestWriteWorld_OverlaysActors(t *testing.T) {
	g, err := world.ParseGrid("#.#", "#.#", "#.#")
	require.NoError(t, err)
	m, err := maze.FromGrid(g, maze.Config{CellSize: 10, WallTile: 10, WorldWidth: 30, WorldHeight: 30})
	require.NoError(t, err)

	wd := &state.World{
		Maze:    m,
		Player:  entities.NewPlayer(world.Point{X: 15, Y: 15}),
		Wraiths: []*entities.Wraith{entities.NewWraith(1, world.Point{X: 15, Y: 25})},
	}

	var buf bytes.Buffer
	WriteWorld(&buf, wd, false)
	assert.Equal(t, "#E#\n#@#\n#2#\n", buf.String())
}

func TestWriteMaze_ColouredKeepsSymbols(t *testing.T) {
	m, err := maze.Generate(maze.DefaultConfig(), 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteMaze(&buf, m, true)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, maze.DefaultGridHeight)
}

func TestWriteSessionReport(t *testing.T) {
	s, err := state.NewSession(9, func(seed int64) (*maze.Maze, error) {
		return maze.Generate(maze.DefaultConfig(), seed)
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSessionReport(&buf, s))
	out := buf.String()
	assert.Contains(t, out, "session_seed: 9")
	assert.Contains(t, out, "generator: Recursive Backtracker")
	assert.Contains(t, out, Legend)
	assert.Contains(t, out, "@")
}

func TestDumpSessionToFile(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := state.NewSession(9, func(seed int64) (*maze.Maze, error) {
		return maze.Generate(maze.DefaultConfig(), seed)
	})
	require.NoError(t, err)

	path, err := DumpSessionToFile(s)
	require.NoError(t, err)
	assert.Equal(t, "maze_dump.txt", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "=== MAZE DUMP ===")
}

func TestCopyMaze(t *testing.T) {
	m, err := maze.Generate(maze.DefaultConfig(), 4)
	require.NoError(t, err)

	orig := clipboardWrite
	defer func() { clipboardWrite = orig }()

	var copied string
	clipboardWrite = func(s string) error { copied = s; return nil }

	require.NoError(t, CopyMaze(m))
	assert.Equal(t, m.String(), copied)

	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	assert.Error(t, CopyMaze(m))
}

func TestWriteBindings(t *testing.T) {
	var buf bytes.Buffer
	WriteBindings(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, len(engineinput.Actions()))
	assert.Contains(t, buf.String(), "COPY_MAZE")
	assert.Regexp(t, `Copy Maze\s+COPY_MAZE\s+f2`, buf.String())
	assert.Regexp(t, `Confirm\s+CONFIRM\s+enter, gamepad_a, gamepad_start, space`, buf.String())
}
