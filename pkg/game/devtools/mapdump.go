// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gookit/color"

	"wraithmaze/pkg/engine/terminal"
	"wraithmaze/pkg/engine/world"
	"wraithmaze/pkg/game/maze"
	"wraithmaze/pkg/game/state"
)

const mapDumpFilename = "maze_dump.txt"

// Legend describes the dump symbols
const Legend = "# = wall  . = open  E = entrance  X = exit  S = safe room  W = wraith spawn  @ = player  1-3 = wraith"

var symbolStyles = map[rune]color.Style{
	'#': {color.FgGray},
	'.': {color.FgDarkGray},
	'E': {color.FgGreen, color.OpBold},
	'X': {color.FgGreen, color.OpBold},
	'S': {color.FgCyan, color.OpBold},
	'W': {color.FgRed},
	'@': {color.FgGreen, color.BgBlack, color.OpBold},
}

var wraithStyle = color.Style{color.FgMagenta, color.OpBold}

// clipboardWrite is swapped out in tests
var clipboardWrite = clipboard.WriteAll

// WriteMaze writes the maze as text, one character per cell
func WriteMaze(w io.Writer, m *maze.Maze, colored bool) {
	writeGrid(w, m, nil, colored)
}

// WriteWorld writes the maze with the player and wraiths overlaid
func WriteWorld(w io.Writer, wd *state.World, colored bool) {
	writeGrid(w, wd.Maze, overlay(wd), colored)
}

// overlay maps cells holding actors to their symbols. The player wins a shared cell.
func overlay(wd *state.World) map[world.Cell]rune {
	marks := make(map[world.Cell]rune)
	for _, wr := range wd.Wraiths {
		marks[wd.Maze.CellAt(wr.Pos.X, wr.Pos.Y)] = rune('1' + wr.ID)
	}
	if wd.Player != nil {
		marks[wd.Maze.CellAt(wd.Player.Pos.X, wd.Player.Pos.Y)] = '@'
	}
	return marks
}

func writeGrid(w io.Writer, m *maze.Maze, marks map[world.Cell]rune, colored bool) {
	grid := m.Grid()
	for y := 0; y < grid.Rows(); y++ {
		var sb strings.Builder
		for x := 0; x < grid.Cols(); x++ {
			c := world.Cell{X: x, Y: y}
			sym, ok := marks[c]
			if !ok {
				sym = m.Symbol(c)
			}
			sb.WriteString(styleSymbol(sym, colored))
		}
		fmt.Fprintln(w, sb.String())
	}
}

func styleSymbol(sym rune, colored bool) string {
	s := string(sym)
	if !colored {
		return s
	}
	if sym >= '1' && sym <= '9' {
		return wraithStyle.Sprint(s)
	}
	if style, ok := symbolStyles[sym]; ok {
		return style.Sprint(s)
	}
	return s
}

// PrintMaze writes the maze to stdout, coloured when stdout is a terminal
func PrintMaze(m *maze.Maze) {
	colored := terminal.IsTerminal(os.Stdout.Fd()) && color.SupportColor()
	WriteMaze(os.Stdout, m, colored)
}

// DumpSessionToFile writes metadata, legend and the annotated maze of the
// current session to maze_dump.txt and returns the absolute path.
func DumpSessionToFile(s *state.Session) (string, error) {
	if s.World == nil || s.World.Maze == nil {
		return "", fmt.Errorf("no maze")
	}

	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteSessionReport(f, s); err != nil {
		return "", err
	}
	return absPath, nil
}

// WriteSessionReport writes the text dump used by DumpSessionToFile
func WriteSessionReport(w io.Writer, s *state.Session) error {
	wd := s.World
	m := wd.Maze
	grid := m.Grid()
	worldW, worldH := m.Size()

	var sb strings.Builder
	sb.WriteString("=== MAZE DUMP ===\n\n")
	sb.WriteString("--- Metadata ---\n")
	fmt.Fprintf(&sb, "session: %s\n", s.ID)
	fmt.Fprintf(&sb, "session_seed: %d\n", s.Seed)
	fmt.Fprintf(&sb, "maze_seed: %d\n", m.Seed())
	fmt.Fprintf(&sb, "generator: %s\n", m.GeneratorName())
	fmt.Fprintf(&sb, "grid: %dx%d cell_size: %v\n", grid.Cols(), grid.Rows(), m.CellSize())
	fmt.Fprintf(&sb, "world: %vx%v offset: %v,%v\n", worldW, worldH, m.Offset().X, m.Offset().Y)
	fmt.Fprintf(&sb, "tick: %d outcome: %s\n", s.Ticks, s.Outcome)
	if p := wd.Player; p != nil {
		fmt.Fprintf(&sb, "player: %.1f,%.1f energy: %.1f sprinting: %v\n", p.Pos.X, p.Pos.Y, p.Energy, p.Sprinting)
	}
	for _, wr := range wd.Wraiths {
		fmt.Fprintf(&sb, "wraith %d: %.1f,%.1f speed: %v\n", wr.ID, wr.Pos.X, wr.Pos.Y, wr.Speed)
	}
	sb.WriteString("\n--- Legend ---\n")
	sb.WriteString(Legend + "\n\n")
	sb.WriteString("--- Map ---\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	WriteWorld(w, wd, false)
	return nil
}

// CopyMaze puts the plain-text maze on the system clipboard
func CopyMaze(m *maze.Maze) error {
	if err := clipboardWrite(m.String()); err != nil {
		return fmt.Errorf("copy maze to clipboard: %w", err)
	}
	return nil
}
