package maze

import (
	"errors"
	"fmt"
	"sort"
)

// ErrReferenceInWall reports a connectivity check whose reference cell is
// not a passage. This should be impossible given the pipeline invariants,
// so it is surfaced loudly instead of silently corrected.
var ErrReferenceInWall = errors.New("connectivity reference cell is a wall")

// Report is the result of a connectivity verification pass.
type Report struct {
	ReachableCount int            // open cells reachable from the reference
	Unreachable    []CellPosition // open cells not reachable from the reference
}

// Connected reports whether every open cell was reachable.
func (r Report) Connected() bool {
	return len(r.Unreachable) == 0
}

// Verify runs a BFS from the reference cell and reports every passage
// cell that cannot be reached from it. Any unreachable cell is a defect
// that Repair can fix.
func Verify(g *Grid, reference CellPosition) (Report, error) {
	if !g.IsPassage(reference) {
		return Report{}, fmt.Errorf("%w: (%d,%d)", ErrReferenceInWall, reference.Row, reference.Col)
	}

	reached := g.Distances(reference)
	report := Report{ReachableCount: len(reached)}
	for _, cell := range g.OpenCells() {
		if _, ok := reached[cell]; !ok {
			report.Unreachable = append(report.Unreachable, cell)
		}
	}
	return report, nil
}

// Repair reconnects every passage cell to the component containing the
// reference cell and returns the number of wall cells carved. For each
// disconnected region it picks the region cell closest (Manhattan) to the
// reachable set and carves a straight axis-alternating corridor to the
// nearest reachable cell. Newly carved cells join the reachable set
// immediately, so later regions can attach to fresh corridors.
//
// Repair is idempotent: on an already-connected grid it carves nothing.
func Repair(g *Grid, reference CellPosition) (int, error) {
	if !g.IsPassage(reference) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrReferenceInWall, reference.Row, reference.Col)
	}

	carved := 0
	// Every pass reconnects at least one whole region, so the loop is
	// bounded by the number of open cells.
	for {
		report, err := Verify(g, reference)
		if err != nil {
			return carved, err
		}
		if report.Connected() {
			return carved, nil
		}

		reached := g.Distances(reference)
		from, to := closestDisconnectedPair(report.Unreachable, reached)
		carved += carveCorridor(g, from, to)
	}
}

// closestDisconnectedPair returns the (unreachable, reachable) cell pair
// with the smallest Manhattan separation. Ties break deterministically on
// scan order so repair behaves the same for the same defect.
func closestDisconnectedPair(unreachable []CellPosition, reached map[CellPosition]int) (CellPosition, CellPosition) {
	// Map iteration order is randomized; sort the reachable set so the
	// chosen pair is stable.
	reachable := make([]CellPosition, 0, len(reached))
	for cell := range reached {
		reachable = append(reachable, cell)
	}
	sort.Slice(reachable, func(i, j int) bool {
		if reachable[i].Row != reachable[j].Row {
			return reachable[i].Row < reachable[j].Row
		}
		return reachable[i].Col < reachable[j].Col
	})

	best := manhattan(unreachable[0], reachable[0]) + 1
	var bestFrom, bestTo CellPosition
	for _, from := range unreachable {
		for _, to := range reachable {
			if d := manhattan(from, to); d < best {
				best = d
				bestFrom, bestTo = from, to
			}
		}
	}
	return bestFrom, bestTo
}

// carveCorridor opens a Manhattan-aligned corridor between two cells,
// alternating row and column moves so the connector weaves rather than
// running as one straight hallway. Returns the number of cells carved.
func carveCorridor(g *Grid, from, to CellPosition) int {
	carved := 0
	current := from
	preferRow := true
	for current != to {
		rowDone := current.Row == to.Row
		colDone := current.Col == to.Col

		if (preferRow && !rowDone) || colDone {
			if current.Row < to.Row {
				current.Row++
			} else {
				current.Row--
			}
		} else {
			if current.Col < to.Col {
				current.Col++
			} else {
				current.Col--
			}
		}
		preferRow = !preferRow

		if !g.IsPassage(current) {
			g.Carve(current)
			carved++
		}
	}
	return carved
}
