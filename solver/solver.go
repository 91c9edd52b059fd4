/*
Package solver implements maze-solving bots over the serialized maze
artifact: breadth-first search, A* with a Manhattan heuristic, and a
naive greedy walker used to measure how well adversarial mazes degrade
heuristic search.

Solvers consume the artifact form only. An artifact whose endpoints sit
on a wall or outside the grid is rejected before any search runs.
*/
package solver

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/beka-birhanu/labyrinth-api/maze"
)

// ErrNoPath reports a maze whose start and end are not connected. A
// generated artifact should never trigger this; a hand-edited one can.
var ErrNoPath = errors.New("no path from start to end")

// BFS returns a shortest path from start to end as 1-indexed (row, col)
// coordinates, inclusive of both endpoints.
func BFS(a *maze.Artifact) ([][2]int, error) {
	g, start, end, err := a.ToGrid()
	if err != nil {
		return nil, err
	}

	parents := map[maze.CellPosition]maze.CellPosition{start: start}
	queue := []maze.CellPosition{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == end {
			return reconstruct(parents, start, end), nil
		}
		for _, delta := range maze.Directions {
			neighbor := current.Add(delta)
			if !g.IsPassage(neighbor) {
				continue
			}
			if _, seen := parents[neighbor]; seen {
				continue
			}
			parents[neighbor] = current
			queue = append(queue, neighbor)
		}
	}
	return nil, fmt.Errorf("%w: start %v end %v", ErrNoPath, a.Start, a.End)
}

// AStar returns a shortest path using A* with the Manhattan distance
// heuristic. The heuristic is admissible on a 4-connected grid, so the
// result length always matches BFS; what differs is how much of the maze
// gets expanded, which is exactly what adversarial mazes attack.
func AStar(a *maze.Artifact) ([][2]int, error) {
	g, start, end, err := a.ToGrid()
	if err != nil {
		return nil, err
	}

	gScore := map[maze.CellPosition]int{start: 0}
	parents := map[maze.CellPosition]maze.CellPosition{start: start}
	closed := map[maze.CellPosition]struct{}{}

	open := &nodeHeap{{pos: start, priority: heuristic(start, end)}}
	heap.Init(open)

	for open.Len() > 0 {
		current := heap.Pop(open).(node)
		if current.pos == end {
			return reconstruct(parents, start, end), nil
		}
		if _, done := closed[current.pos]; done {
			continue
		}
		closed[current.pos] = struct{}{}

		for _, delta := range maze.Directions {
			neighbor := current.pos.Add(delta)
			if !g.IsPassage(neighbor) {
				continue
			}
			tentative := gScore[current.pos] + 1
			if known, seen := gScore[neighbor]; seen && known <= tentative {
				continue
			}
			gScore[neighbor] = tentative
			parents[neighbor] = current.pos
			heap.Push(open, node{pos: neighbor, priority: tentative + heuristic(neighbor, end)})
		}
	}
	return nil, fmt.Errorf("%w: start %v end %v", ErrNoPath, a.Start, a.End)
}

// GreedyWalk simulates a naive heuristic walker: always step to the
// unvisited neighbor closest (Manhattan) to the end, backtracking when
// stuck, giving up when the step budget runs out. Returns whether the end
// was reached and how many steps were spent. Deceptive mazes are built to
// make this walker burn its budget.
func GreedyWalk(a *maze.Artifact, budget int) (bool, int, error) {
	g, start, end, err := a.ToGrid()
	if err != nil {
		return false, 0, err
	}

	visited := map[maze.CellPosition]struct{}{start: {}}
	trail := []maze.CellPosition{start}
	current := start
	steps := 0

	for steps < budget {
		if current == end {
			return true, steps, nil
		}

		next, ok := greedyStep(g, current, end, visited)
		if !ok {
			// Dead end for the greedy walker: backtrack one cell.
			if len(trail) <= 1 {
				return false, steps, nil
			}
			trail = trail[:len(trail)-1]
			current = trail[len(trail)-1]
			steps++
			continue
		}

		visited[next] = struct{}{}
		trail = append(trail, next)
		current = next
		steps++
	}
	return current == end, steps, nil
}

func greedyStep(g *maze.Grid, current, end maze.CellPosition, visited map[maze.CellPosition]struct{}) (maze.CellPosition, bool) {
	var best maze.CellPosition
	bestDist := -1
	for _, delta := range maze.Directions {
		neighbor := current.Add(delta)
		if !g.IsPassage(neighbor) {
			continue
		}
		if _, seen := visited[neighbor]; seen {
			continue
		}
		if d := heuristic(neighbor, end); bestDist < 0 || d < bestDist {
			best = neighbor
			bestDist = d
		}
	}
	return best, bestDist >= 0
}

func heuristic(a, b maze.CellPosition) int {
	return absInt(a.Row-b.Row) + absInt(a.Col-b.Col)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// reconstruct walks the parent chain from end back to start and returns
// the path in 1-indexed artifact coordinates.
func reconstruct(parents map[maze.CellPosition]maze.CellPosition, start, end maze.CellPosition) [][2]int {
	var reversed []maze.CellPosition
	for current := end; ; current = parents[current] {
		reversed = append(reversed, current)
		if current == start {
			break
		}
	}

	path := make([][2]int, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i].External())
	}
	return path
}

// node is an A* open-set entry.
type node struct {
	pos      maze.CellPosition
	priority int
}

type nodeHeap []node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
