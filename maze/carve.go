package maze

import (
	"fmt"
	"math/rand"
)

// CarveStrategy selects the base carving algorithm used to produce the
// perfect-maze skeleton.
type CarveStrategy string

const (
	// CarveDFS is randomized depth-first carving: long winding corridors.
	CarveDFS CarveStrategy = "dfs"
	// CarvePrim is randomized Prim's carving: shorter, more organic branches.
	CarvePrim CarveStrategy = "prim"
)

// latticeSteps are the step-2 moves between lattice cells. Carving moves
// two cells at a time so corridors stay one cell wide with walls between.
var latticeSteps = [4]CellPosition{
	{Row: -2, Col: 0},
	{Row: 2, Col: 0},
	{Row: 0, Col: 2},
	{Row: 0, Col: -2},
}

// carvePerfect carves a perfect maze into an all-wall grid: a spanning
// tree over the odd-coordinate lattice, so that after this pass exactly
// one path exists between any two passage cells. The outer border is left
// fully walled.
func carvePerfect(g *Grid, rng *rand.Rand, strategy CarveStrategy) error {
	switch strategy {
	case CarveDFS, "":
		carveDFS(g, rng)
	case CarvePrim:
		carvePrim(g, rng)
	default:
		return fmt.Errorf("unknown carve strategy %q", strategy)
	}
	return nil
}

// latticeBound returns the largest odd coordinate strictly inside a side
// of the given length. Lattice cells live on odd coordinates only.
func latticeBound(side int) int {
	bound := side - 2
	if bound%2 == 0 {
		bound--
	}
	return bound
}

// inLattice reports whether the position is an odd-coordinate lattice
// cell inside the carvable area of the grid.
func (g *Grid) inLattice(pos CellPosition) bool {
	return pos.Row >= 1 && pos.Row <= latticeBound(g.Height) &&
		pos.Col >= 1 && pos.Col <= latticeBound(g.Width) &&
		pos.Row%2 == 1 && pos.Col%2 == 1
}

// carveDFS carves with randomized depth-first search over the lattice.
// The stack is explicit: recursion depth would track corridor length and
// blow up on large mazes.
func carveDFS(g *Grid, rng *rand.Rand) {
	start := CellPosition{Row: 1, Col: 1}
	g.Carve(start)
	visited := map[CellPosition]struct{}{start: {}}
	stack := []CellPosition{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		order := rng.Perm(len(latticeSteps))
		advanced := false
		for _, i := range order {
			next := current.Add(latticeSteps[i])
			if !g.inLattice(next) {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			// Open the wall cell between the two lattice cells, then the
			// destination itself.
			between := CellPosition{Row: (current.Row + next.Row) / 2, Col: (current.Col + next.Col) / 2}
			g.Carve(between)
			g.Carve(next)
			visited[next] = struct{}{}
			stack = append(stack, next)
			advanced = true
			break
		}

		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}
}

// frontierWall is a candidate expansion in Prim's carving: the wall cell
// between a visited lattice cell and its not-yet-visited opposite.
type frontierWall struct {
	between  CellPosition
	opposite CellPosition
}

// carvePrim carves with randomized Prim's algorithm: grow the tree by
// popping random frontier walls instead of backtracking a stack.
func carvePrim(g *Grid, rng *rand.Rand) {
	start := CellPosition{Row: 1, Col: 1}
	g.Carve(start)
	visited := map[CellPosition]struct{}{start: {}}

	var frontier []frontierWall
	pushFrontier := func(from CellPosition) {
		for _, step := range latticeSteps {
			next := from.Add(step)
			if !g.inLattice(next) {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			frontier = append(frontier, frontierWall{
				between:  CellPosition{Row: (from.Row + next.Row) / 2, Col: (from.Col + next.Col) / 2},
				opposite: next,
			})
		}
	}
	pushFrontier(start)

	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		wall := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if _, seen := visited[wall.opposite]; seen {
			continue
		}
		g.Carve(wall.between)
		g.Carve(wall.opposite)
		visited[wall.opposite] = struct{}{}
		pushFrontier(wall.opposite)
	}
}
