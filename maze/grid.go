/*
Package maze generates grid-based mazes that are guaranteed to be solvable
while being deliberately hostile to heuristic pathfinding.

The package is organized as a pipeline over a shared Grid: a base carving
pass produces a perfect maze, a connectivity verifier/repairer restores
reachability after every destructive mutation, a placement optimizer picks
maximally separated start/end cells, and structural and adversarial
injectors add dead-ends, loops, traps and deceptive corridors. The
Generator orchestrates the pipeline and emits an immutable Artifact.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Wall blocks traversal.
	Wall Cell = iota
	// Passage is an open cell a path may travel through.
	Passage
)

// minDimension is the smallest usable maze side. Anything below this has
// no interior to carve.
const minDimension = 5

var (
	// ErrDimensionTooSmall reports maze dimensions below the supported minimum.
	ErrDimensionTooSmall = errors.New("maze dimensions below minimum")
	// ErrOutOfBounds reports a cell access outside the grid.
	ErrOutOfBounds = errors.New("cell position out of bounds")
)

// CellPosition is a 0-indexed (row, col) pair into a Grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Directions lists the four orthogonal unit moves in a fixed order:
// north, south, east, west. Diagonal movement is never allowed.
var Directions = [4]CellPosition{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// Add returns the position shifted by the given delta.
func (cp CellPosition) Add(delta CellPosition) CellPosition {
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

// External converts the 0-indexed internal position to the 1-indexed
// (row, col) pair used by the serialized artifact.
func (cp CellPosition) External() [2]int {
	return [2]int{cp.Row + 1, cp.Col + 1}
}

// FromExternal converts a 1-indexed artifact coordinate to the internal
// 0-indexed position.
func FromExternal(coord [2]int) CellPosition {
	return CellPosition{Row: coord[0] - 1, Col: coord[1] - 1}
}

// Grid is the shared 2D wall/passage substrate every pipeline stage
// mutates in place. The zero value is not usable; construct with NewGrid.
type Grid struct {
	Width  int // Width of the maze (number of columns)
	Height int // Height of the maze (number of rows)

	cells [][]Cell
}

// NewGrid returns a grid of the given dimensions with every cell set to
// Wall. Dimensions below the package minimum are rejected.
func NewGrid(width, height int) (*Grid, error) {
	if min(width, height) < minDimension {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrDimensionTooSmall, width, height, minDimension, minDimension)
	}

	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// InBounds reports whether the position lies inside the grid.
func (g *Grid) InBounds(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.Height && pos.Col >= 0 && pos.Col < g.Width
}

// Interior reports whether the position lies strictly inside the border.
// The outer border stays walled for hedge-style mazes, so carving is
// normally confined to interior cells.
func (g *Grid) Interior(pos CellPosition) bool {
	return pos.Row >= 1 && pos.Row < g.Height-1 && pos.Col >= 1 && pos.Col < g.Width-1
}

// At returns the cell state, treating out-of-bounds positions as Wall.
func (g *Grid) At(pos CellPosition) Cell {
	if !g.InBounds(pos) {
		return Wall
	}
	return g.cells[pos.Row][pos.Col]
}

// IsPassage reports whether the position is an in-bounds open cell.
func (g *Grid) IsPassage(pos CellPosition) bool {
	return g.InBounds(pos) && g.cells[pos.Row][pos.Col] == Passage
}

// Carve opens the cell at the given position. Out-of-bounds positions are
// ignored so corridor-carving loops do not need their own bounds checks.
func (g *Grid) Carve(pos CellPosition) {
	if g.InBounds(pos) {
		g.cells[pos.Row][pos.Col] = Passage
	}
}

// Block converts the cell at the given position back to a wall.
func (g *Grid) Block(pos CellPosition) {
	if g.InBounds(pos) {
		g.cells[pos.Row][pos.Col] = Wall
	}
}

// OpenNeighbors returns the orthogonally adjacent passage cells.
func (g *Grid) OpenNeighbors(pos CellPosition) []CellPosition {
	var result []CellPosition
	for _, delta := range Directions {
		neighbor := pos.Add(delta)
		if g.IsPassage(neighbor) {
			result = append(result, neighbor)
		}
	}
	return result
}

// OpenNeighborCount returns the number of orthogonally adjacent passages.
func (g *Grid) OpenNeighborCount(pos CellPosition) int {
	count := 0
	for _, delta := range Directions {
		if g.IsPassage(pos.Add(delta)) {
			count++
		}
	}
	return count
}

// OpenCells returns every passage position in row-major order.
func (g *Grid) OpenCells() []CellPosition {
	var result []CellPosition
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.cells[row][col] == Passage {
				result = append(result, CellPosition{Row: row, Col: col})
			}
		}
	}
	return result
}

// CountOpen returns the total number of passage cells.
func (g *Grid) CountOpen() int {
	count := 0
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] == Passage {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.Height)
	for i := range cells {
		cells[i] = make([]Cell, g.Width)
		copy(cells[i], g.cells[i])
	}
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// Distances runs a 4-directional BFS over passage cells from the given
// position and returns the distance to every reachable open cell. The
// start position itself maps to 0. A wall start yields an empty map.
func (g *Grid) Distances(from CellPosition) map[CellPosition]int {
	dist := make(map[CellPosition]int)
	if !g.IsPassage(from) {
		return dist
	}

	dist[from] = 0
	queue := []CellPosition{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, delta := range Directions {
			neighbor := current.Add(delta)
			if !g.IsPassage(neighbor) {
				continue
			}
			if _, seen := dist[neighbor]; seen {
				continue
			}
			dist[neighbor] = dist[current] + 1
			queue = append(queue, neighbor)
		}
	}
	return dist
}

// PathLength returns the shortest-path distance between two passage
// cells, or false when no path exists.
func (g *Grid) PathLength(from, to CellPosition) (int, bool) {
	d, ok := g.Distances(from)[to]
	return d, ok
}

// firstOpen returns the first passage cell in row-major order. Used as
// the repair anchor between pipeline stages.
func (g *Grid) firstOpen() (CellPosition, bool) {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.cells[row][col] == Passage {
				return CellPosition{Row: row, Col: col}, true
			}
		}
	}
	return CellPosition{}, false
}

// manhattan returns the Manhattan distance between two positions.
func manhattan(a, b CellPosition) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// String provides a textual representation of the maze grid, one rune per
// cell: '#' for walls and ' ' for passages.
func (g *Grid) String() string {
	var output strings.Builder
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.cells[row][col] == Wall {
				output.WriteByte('#')
			} else {
				output.WriteByte(' ')
			}
		}
		output.WriteByte('\n')
	}
	return output.String()
}
