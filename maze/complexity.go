package maze

import "math/rand"

// sizeFactor scales mutation counts so small mazes still get
// proportionally enough structure and large mazes are not overwhelmed.
func sizeFactor(g *Grid) float64 {
	f := 15.0 / float64(max(g.Width, g.Height))
	if f > 1.0 {
		f = 1.0
	}
	return f
}

// injectComplexity applies the structural mutation passes in order, each
// one followed by a connectivity repair. The mutations may temporarily
// sever parts of the maze; the repair pass restores the invariant before
// the next mutation runs. The repair anchor is re-derived after every
// pass since a mutation may wall off the previous anchor.
func injectComplexity(g *Grid, rng *rand.Rand) error {
	passes := []func(*Grid, *rand.Rand){
		addDeadEnds,
		addLoops,
		breakEdgeRuns,
		addHedgeIslands,
		breakOpenAreas,
	}
	for _, pass := range passes {
		pass(g, rng)
		anchor, ok := g.firstOpen()
		if !ok {
			return ErrNoOpenCells
		}
		if _, err := Repair(g, anchor); err != nil {
			return err
		}
	}
	return nil
}

// addDeadEnds walls off passage cells that have at least three open
// neighbors. The neighbor requirement guarantees the cell was never the
// sole connector, so each conversion leaves a dead-end stub rather than
// a severed region.
func addDeadEnds(g *Grid, rng *rand.Rand) {
	count := int(float64(g.Width*g.Height) / 20.0 * sizeFactor(g))
	if count < 2 {
		count = 2
	}
	for i := 0; i < count; i++ {
		pos := randomInterior(g, rng)
		if g.IsPassage(pos) && g.OpenNeighborCount(pos) >= 3 {
			g.Block(pos)
		}
	}
}

// addLoops reopens wall cells that touch at least two passages, creating
// cycles. Loops only ever add reachability.
func addLoops(g *Grid, rng *rand.Rand) {
	count := int(float64(g.Width*g.Height) / 15.0 * sizeFactor(g))
	if count < 2 {
		count = 2
	}
	for i := 0; i < count; i++ {
		pos := randomInterior(g, rng)
		if g.At(pos) == Wall && g.OpenNeighborCount(pos) >= 2 {
			g.Carve(pos)
		}
	}
}

// breakEdgeRuns scans the rows and columns adjacent to the border for
// long straight passage runs and breaks each at its midpoint, carving a
// perpendicular escape cell so the two halves stay connected locally.
// Long border corridors make hugging the wall a winning strategy.
func breakEdgeRuns(g *Grid, rng *rand.Rand) {
	maxRun := max(3, min(g.Width, g.Height)/5)

	for _, row := range []int{1, g.Height - 2} {
		breakRunsInLine(g, lineCells(row, 1, g.Width-2, true), maxRun)
	}
	for _, col := range []int{1, g.Width - 2} {
		breakRunsInLine(g, lineCells(col, 1, g.Height-2, false), maxRun)
	}
}

// lineCells enumerates the cells of a single row (horizontal=true) or
// column between the from/to coordinates inclusive.
func lineCells(fixed, from, to int, horizontal bool) []CellPosition {
	var cells []CellPosition
	for i := from; i <= to; i++ {
		if horizontal {
			cells = append(cells, CellPosition{Row: fixed, Col: i})
		} else {
			cells = append(cells, CellPosition{Row: i, Col: fixed})
		}
	}
	return cells
}

// breakRunsInLine walls the midpoint of every passage run longer than
// maxRun and carves one perpendicular interior neighbor of the new wall
// to preserve a local detour.
func breakRunsInLine(g *Grid, line []CellPosition, maxRun int) {
	runStart := -1
	for i := 0; i <= len(line); i++ {
		open := i < len(line) && g.IsPassage(line[i])
		if open && runStart < 0 {
			runStart = i
		}
		if open || runStart < 0 {
			continue
		}

		if runLen := i - runStart; runLen > maxRun {
			mid := line[runStart+runLen/2]
			g.Block(mid)
			carvePerpendicular(g, mid, line)
		}
		runStart = -1
	}
}

// carvePerpendicular opens an interior cell orthogonal to the line at
// the given position.
func carvePerpendicular(g *Grid, pos CellPosition, line []CellPosition) {
	horizontal := len(line) > 1 && line[0].Row == line[1].Row
	for _, delta := range Directions {
		if horizontal && delta.Row == 0 {
			continue
		}
		if !horizontal && delta.Col == 0 {
			continue
		}
		neighbor := pos.Add(delta)
		if g.Interior(neighbor) {
			g.Carve(neighbor)
			return
		}
	}
}

// addHedgeIslands drops isolated wall cells into well-connected passages,
// the texture of trimmed hedge branches. Same safety predicate as
// addDeadEnds but sparser and biased to the maze interior.
func addHedgeIslands(g *Grid, rng *rand.Rand) {
	count := int(float64(g.Width*g.Height) / 40.0 * sizeFactor(g))
	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		pos := CellPosition{
			Row: g.Height/4 + rng.Intn(max(1, g.Height/2)),
			Col: g.Width/4 + rng.Intn(max(1, g.Width/2)),
		}
		if g.IsPassage(pos) && g.OpenNeighborCount(pos) >= 3 {
			g.Block(pos)
		}
	}
}

// breakOpenAreas finds 2x2 all-passage blocks and walls one random cell
// of each, preventing large featureless rooms.
func breakOpenAreas(g *Grid, rng *rand.Rand) {
	for row := 1; row < g.Height-2; row++ {
		for col := 1; col < g.Width-2; col++ {
			block := [4]CellPosition{
				{Row: row, Col: col},
				{Row: row, Col: col + 1},
				{Row: row + 1, Col: col},
				{Row: row + 1, Col: col + 1},
			}
			allOpen := true
			for _, cell := range block {
				if !g.IsPassage(cell) {
					allOpen = false
					break
				}
			}
			if allOpen {
				g.Block(block[rng.Intn(len(block))])
			}
		}
	}
}

// randomInterior returns a uniformly random interior position.
func randomInterior(g *Grid, rng *rand.Rand) CellPosition {
	return CellPosition{
		Row: 1 + rng.Intn(g.Height-2),
		Col: 1 + rng.Intn(g.Width-2),
	}
}
