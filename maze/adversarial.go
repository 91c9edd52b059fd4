package maze

import "math/rand"

// Adversarial feature generators. Each takes the grid plus the chosen
// start/end cells, returns the number of features added, and relies on
// the caller running Repair immediately afterwards: the generators may
// sever connectivity as a side effect, but they never remove the repair
// pass's ability to restore it. None of them may wall off the start or
// end cell itself.

const (
	// deceptiveBias is the probability a deceptive corridor steps toward
	// the goal instead of drifting randomly.
	deceptiveBias = 0.8
	// trapConnectProb is the probability a trap branch genuinely connects
	// back into the maze instead of dead-ending.
	trapConnectProb = 0.1
	// windingTurnProb is the per-step probability a narrow passage
	// changes direction.
	windingTurnProb = 0.35
)

// injectAdversarial runs every adversarial generator in order, repairing
// connectivity after each one. Returns the total number of features added.
func injectAdversarial(g *Grid, start, end CellPosition, rng *rand.Rand) (int, error) {
	generators := []func(*Grid, CellPosition, CellPosition, *rand.Rand) int{
		addDeceptivePaths,
		addHeuristicTraps,
		addNarrowWindingPassages,
		addMemoryIntensiveRegions,
		addStrategicLoops,
	}

	total := 0
	for _, generate := range generators {
		total += generate(g, start, end, rng)
		if _, err := Repair(g, start); err != nil {
			return total, err
		}
	}
	return total, nil
}

// addDeceptivePaths carves corridors that head convincingly toward the
// end cell and then dead-end, leaving a single escape direction chosen to
// pull the walker even farther from the goal. A* expands nodes that
// shrink the heuristic, so these corridors soak up its budget.
func addDeceptivePaths(g *Grid, start, end CellPosition, rng *rand.Rand) int {
	count := max(1, min(g.Width, g.Height)/8)
	open := g.OpenCells()
	if len(open) == 0 {
		return 0
	}

	added := 0
	for i := 0; i < count; i++ {
		origin := open[rng.Intn(len(open))]
		if origin == end || manhattan(origin, end) < 4 {
			continue
		}

		// Entry corridor: biased toward the goal.
		length := 3 + rng.Intn(max(2, min(g.Width, g.Height)/3))
		tip := carveBiased(g, origin, end, length, deceptiveBias, rng)

		// Seal the tip except for one escape, picked to maximize the
		// distance increase from the goal.
		escape := awayDirection(tip, end)
		for _, delta := range Directions {
			neighbor := tip.Add(delta)
			if delta == escape || !g.Interior(neighbor) || neighbor == start || neighbor == end {
				continue
			}
			g.Block(neighbor)
		}

		// Escape corridor runs away from the goal; the repair pass will
		// stitch it back to the nearest reachable cell.
		escapeLen := 2 + rng.Intn(4)
		cursor := tip
		for step := 0; step < escapeLen; step++ {
			next := cursor.Add(escape)
			if !g.Interior(next) {
				break
			}
			g.Carve(next)
			cursor = next
		}
		added++
	}
	return added
}

// addHeuristicTraps builds goal-facing corridors that fan into many
// promising-looking branches, almost all of which terminate. A heuristic
// search has to expand every branch; a small fraction genuinely connect,
// which forces exploration rather than letting a solver prune the whole
// structure.
func addHeuristicTraps(g *Grid, start, end CellPosition, rng *rand.Rand) int {
	count := max(1, min(g.Width, g.Height)/10)
	open := g.OpenCells()
	if len(open) == 0 {
		return 0
	}

	added := 0
	for i := 0; i < count; i++ {
		origin := open[rng.Intn(len(open))]
		if manhattan(origin, end) < 6 {
			continue
		}

		entryLen := 2 + rng.Intn(4)
		hub := carveBiased(g, origin, end, entryLen, deceptiveBias, rng)

		branches := 5 + rng.Intn(6)
		for b := 0; b < branches; b++ {
			branchLen := 2 + rng.Intn(max(2, min(g.Width, g.Height)/4))
			tip := carveBiased(g, hub, end, branchLen, 0.6, rng)
			if rng.Float64() < trapConnectProb {
				// Let this branch keep going until it merges with an
				// existing passage.
				mergeIntoMaze(g, tip, end, rng)
			}
		}
		added++
	}
	return added
}

// addNarrowWindingPassages carves single-width corridors that change
// direction frequently, walling both perpendicular sides at every step so
// the passage cannot be shortcut. Targeted near the start, the end, and
// the midpoint between them, where solvers spend most of their time.
func addNarrowWindingPassages(g *Grid, start, end CellPosition, rng *rand.Rand) int {
	mid := CellPosition{Row: (start.Row + end.Row) / 2, Col: (start.Col + end.Col) / 2}
	targets := []CellPosition{start, end, mid}

	added := 0
	for _, target := range targets {
		origin := jitter(g, target, max(2, min(g.Width, g.Height)/6), rng)
		if !g.Interior(origin) {
			continue
		}
		g.Carve(origin)

		length := 4 + rng.Intn(max(3, min(g.Width, g.Height)/2))
		dir := Directions[rng.Intn(len(Directions))]
		cursor := origin
		for step := 0; step < length; step++ {
			if rng.Float64() < windingTurnProb {
				dir = perpendicular(dir, rng)
			}
			next := cursor.Add(dir)
			if !g.Interior(next) {
				dir = perpendicular(dir, rng)
				continue
			}
			g.Carve(next)
			// Force walls on both perpendicular sides of the new cell.
			for _, side := range []CellPosition{perp(dir), negate(perp(dir))} {
				wall := next.Add(side)
				if g.Interior(wall) && wall != start && wall != end {
					g.Block(wall)
				}
			}
			cursor = next
		}
		added++
	}
	return added
}

// addMemoryIntensiveRegions opens dense semi-random lattices:
// checkerboard-spaced cells with probabilistic connections and occasional
// 2x2 blocks. The branching factor inside these regions maximizes the
// frontier a search has to track.
func addMemoryIntensiveRegions(g *Grid, start, end CellPosition, rng *rand.Rand) int {
	count := max(1, min(g.Width, g.Height)/12)

	added := 0
	for i := 0; i < count; i++ {
		size := 4 + rng.Intn(max(2, min(g.Width, g.Height)/4))
		top := 1 + rng.Intn(max(1, g.Height-size-2))
		left := 1 + rng.Intn(max(1, g.Width-size-2))

		for row := top; row < top+size && row < g.Height-1; row++ {
			for col := left; col < left+size && col < g.Width-1; col++ {
				pos := CellPosition{Row: row, Col: col}
				switch {
				case (row+col)%2 == 0:
					g.Carve(pos)
				case rng.Float64() < 0.5:
					// Probabilistic connection between checkerboard cells.
					g.Carve(pos)
				}
			}
		}

		// A few 2x2 open pockets inside the lattice.
		pockets := 1 + rng.Intn(3)
		for p := 0; p < pockets; p++ {
			row := top + rng.Intn(max(1, size-1))
			col := left + rng.Intn(max(1, size-1))
			for _, delta := range [4]CellPosition{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
				pos := CellPosition{Row: row, Col: col}.Add(delta)
				if g.Interior(pos) {
					g.Carve(pos)
				}
			}
		}
		added++
	}
	return added
}

// addStrategicLoops connects pairs of open cells that are physically
// close but far apart through the maze, multiplying the alternative
// routes a search must consider.
func addStrategicLoops(g *Grid, start, end CellPosition, rng *rand.Rand) int {
	count := max(1, min(g.Width, g.Height)/10)
	minRadius := max(3, min(g.Width, g.Height)/5)
	open := g.OpenCells()
	if len(open) < 2 {
		return 0
	}

	added := 0
	for attempt := 0; attempt < count*6 && added < count; attempt++ {
		a := open[rng.Intn(len(open))]
		b := open[rng.Intn(len(open))]
		if manhattan(a, b) < minRadius {
			continue
		}
		// Skip pairs that already have a near-direct route; connecting
		// those adds nothing for a search to consider.
		if pathLen, ok := g.PathLength(a, b); ok && pathLen <= 2*manhattan(a, b) {
			continue
		}
		carveWindingConnector(g, a, b, rng)
		added++
	}
	return added
}

// carveBiased carves up to length cells starting from origin, stepping
// toward the target with the given probability and randomly otherwise.
// Returns the final corridor tip.
func carveBiased(g *Grid, origin, target CellPosition, length int, bias float64, rng *rand.Rand) CellPosition {
	cursor := origin
	for step := 0; step < length; step++ {
		dir := randomDirection(rng)
		if rng.Float64() < bias {
			dir = towardDirection(cursor, target, rng)
		}
		next := cursor.Add(dir)
		if !g.Interior(next) {
			continue
		}
		g.Carve(next)
		cursor = next
	}
	return cursor
}

// carveWindingConnector opens a jittered corridor between two cells: the
// axis-alternating repair corridor with occasional random detours.
func carveWindingConnector(g *Grid, from, to CellPosition, rng *rand.Rand) {
	cursor := from
	for cursor != to {
		var dir CellPosition
		if rng.Float64() < 0.25 {
			dir = randomDirection(rng)
		} else {
			dir = towardDirection(cursor, to, rng)
		}
		next := cursor.Add(dir)
		if !g.Interior(next) {
			// Fall back onto the direct corridor for the remainder.
			carveCorridor(g, cursor, to)
			return
		}
		g.Carve(next)
		cursor = next
	}
}

// mergeIntoMaze extends a corridor from the tip until it touches an
// already-open cell or runs out of room.
func mergeIntoMaze(g *Grid, tip, target CellPosition, rng *rand.Rand) {
	cursor := tip
	for step := 0; step < 32; step++ {
		dir := towardDirection(cursor, target, rng)
		next := cursor.Add(dir)
		if !g.Interior(next) {
			return
		}
		if g.IsPassage(next) {
			return
		}
		g.Carve(next)
		cursor = next
	}
}

// towardDirection returns a unit move that reduces the Manhattan
// distance to the target, chosen randomly when both axes improve.
func towardDirection(from, to CellPosition, rng *rand.Rand) CellPosition {
	var options []CellPosition
	if to.Row < from.Row {
		options = append(options, CellPosition{Row: -1, Col: 0})
	}
	if to.Row > from.Row {
		options = append(options, CellPosition{Row: 1, Col: 0})
	}
	if to.Col < from.Col {
		options = append(options, CellPosition{Row: 0, Col: -1})
	}
	if to.Col > from.Col {
		options = append(options, CellPosition{Row: 0, Col: 1})
	}
	if len(options) == 0 {
		return randomDirection(rng)
	}
	return options[rng.Intn(len(options))]
}

// awayDirection returns the unit move that increases the distance to the
// target the most, preferring the axis with the smaller current gap so
// the escape bends the path instead of simply backtracking.
func awayDirection(from, target CellPosition) CellPosition {
	rowDir := CellPosition{Row: 1, Col: 0}
	if target.Row > from.Row {
		rowDir = CellPosition{Row: -1, Col: 0}
	}
	colDir := CellPosition{Row: 0, Col: 1}
	if target.Col > from.Col {
		colDir = CellPosition{Row: 0, Col: -1}
	}
	if abs(from.Row-target.Row) < abs(from.Col-target.Col) {
		return rowDir
	}
	return colDir
}

func randomDirection(rng *rand.Rand) CellPosition {
	return Directions[rng.Intn(len(Directions))]
}

// perp returns a fixed perpendicular of the given unit move.
func perp(dir CellPosition) CellPosition {
	return CellPosition{Row: dir.Col, Col: dir.Row}
}

// perpendicular returns a random perpendicular of the given unit move.
func perpendicular(dir CellPosition, rng *rand.Rand) CellPosition {
	p := perp(dir)
	if rng.Intn(2) == 0 {
		return negate(p)
	}
	return p
}

func negate(dir CellPosition) CellPosition {
	return CellPosition{Row: -dir.Row, Col: -dir.Col}
}

// jitter returns a position displaced from the target by up to radius in
// each axis, clamped to the interior.
func jitter(g *Grid, target CellPosition, radius int, rng *rand.Rand) CellPosition {
	pos := CellPosition{
		Row: target.Row + rng.Intn(2*radius+1) - radius,
		Col: target.Col + rng.Intn(2*radius+1) - radius,
	}
	pos.Row = min(max(pos.Row, 1), g.Height-2)
	pos.Col = min(max(pos.Col, 1), g.Width-2)
	return pos
}
