package devtools

import (
	"wraithmaze/pkg/engine/world"
	"wraithmaze/pkg/game/maze"
)

// devLayout is a hand-built test arena: an open hall with pillars, winding
// corridors for sliding along walls, and three dead ends that become safe rooms.
var devLayout = []string{
	"#########.#########",
	"#.................#",
	"#.##.##.....##.##.#",
	"#.................#",
	"###.###########.###",
	"#...#.........#...#",
	"#.#.#.#######.#.#.#",
	"#.#...#.....#...#.#",
	"#.#####.###.#####.#",
	"#.......#.#.......#",
	"#######.#.#.#######",
	"#.........#.......#",
	"#########.#########",
}

// DevGrid returns the developer test arena grid
func DevGrid() *world.Grid {
	g, err := world.ParseGrid(devLayout...)
	if err != nil {
		panic("invalid dev layout: " + err.Error())
	}
	return g
}

// DevMaze builds the developer test arena with the given layout config.
// Grid dimensions in cfg are ignored.
func DevMaze(cfg maze.Config) (*maze.Maze, error) {
	return maze.FromGrid(DevGrid(), cfg)
}
