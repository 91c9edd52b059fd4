package maze

import (
	"errors"
	"math/rand"
)

// PlacementTier records which stage of the fallback chain produced a
// start/end pair. Lower tiers carry stronger separation guarantees; tests
// and callers can tell an ideal placement from a degraded one.
type PlacementTier int

const (
	// TierPrimary is the diameter search with the hard separation
	// requirement satisfied.
	TierPrimary PlacementTier = iota
	// TierRelaxed is the same search over a widened candidate pool.
	TierRelaxed
	// TierCorner is the best diagonal corner pair, separation ignored.
	TierCorner
	// TierRandom is the most distant pair from a random sample.
	TierRandom
	// TierFixed is the absolute fallback: fixed opposite corners.
	TierFixed
)

func (t PlacementTier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierRelaxed:
		return "relaxed"
	case TierCorner:
		return "corner"
	case TierRandom:
		return "random"
	case TierFixed:
		return "fixed"
	}
	return "unknown"
}

// Placement is a chosen start/end pair together with its true path
// distance and the fallback tier that produced it.
type Placement struct {
	Start      CellPosition
	End        CellPosition
	PathLength int
	Tier       PlacementTier
}

// ErrNoOpenCells reports a grid without enough passages to place on.
var ErrNoOpenCells = errors.New("not enough open cells for placement")

// Scoring weights. Path distance dominates so that a pair is chosen for
// how far apart it is through the maze, with physical distance only
// breaking ties. The alignment penalty discourages pairs sharing nearly
// the same row or column, which would make straight-line heuristics
// accurate.
const (
	pathWeight     = 100
	physicalWeight = 3
	alignPenalty   = 40
)

// choosePlacement selects a start/end pair maximizing path distance
// relative to physical separation, via a double-BFS diameter
// approximation with a multi-tier fallback chain. The grid must already
// be connected; the search never fails outright, it only degrades.
func choosePlacement(g *Grid, rng *rand.Rand) (Placement, error) {
	open := g.OpenCells()
	if len(open) < 2 {
		return Placement{}, ErrNoOpenCells
	}

	sep := max(g.Width, g.Height) / 2

	// Tier 1: corner regions, mid-edges and a random sample as BFS seeds.
	pool := seedCandidates(g, rng, open, sampleSize(len(open)))
	if best, ok := searchBestPair(g, pool, sep); ok {
		best.Tier = TierPrimary
		return best, nil
	}

	// Tier 2: same search, three times the random candidates.
	pool = seedCandidates(g, rng, open, 3*sampleSize(len(open)))
	if best, ok := searchBestPair(g, pool, sep); ok {
		best.Tier = TierRelaxed
		return best, nil
	}

	// Tier 3: best diagonal corner pair, separation ignored, accepted
	// only when the maze path is substantially longer than the crow-flies
	// distance between the corners.
	if best, ok := bestCornerPair(g); ok && float64(best.PathLength) > 1.5*float64(manhattan(best.Start, best.End)) {
		best.Tier = TierCorner
		return best, nil
	}

	// Tier 4: most path-distant pair among random samples.
	if best, ok := bestRandomPair(g, rng, open); ok {
		best.Tier = TierRandom
		return best, nil
	}

	// Absolute fallback: fixed opposite corners, nudged onto the nearest
	// open cells. The grid is connected, so a path is guaranteed.
	start := nearestOpen(open, CellPosition{Row: 1, Col: 1})
	end := nearestOpen(open, CellPosition{Row: g.Height - 2, Col: g.Width - 2})
	if start == end {
		end = farthestOpen(open, start)
	}
	length, _ := g.PathLength(start, end)
	return Placement{Start: start, End: end, PathLength: length, Tier: TierFixed}, nil
}

// sampleSize scales the random candidate count with maze size, clamped
// to the 10..50 range.
func sampleSize(openCount int) int {
	n := openCount / 20
	if n < 10 {
		n = 10
	}
	if n > 50 {
		n = 50
	}
	return n
}

// seedCandidates builds the BFS seed pool: the open cell nearest each
// corner, the open cell nearest each mid-edge, and randomCount random
// open cells.
func seedCandidates(g *Grid, rng *rand.Rand, open []CellPosition, randomCount int) []CellPosition {
	targets := []CellPosition{
		{Row: 1, Col: 1},
		{Row: 1, Col: g.Width - 2},
		{Row: g.Height - 2, Col: 1},
		{Row: g.Height - 2, Col: g.Width - 2},
		{Row: 1, Col: g.Width / 2},
		{Row: g.Height - 2, Col: g.Width / 2},
		{Row: g.Height / 2, Col: 1},
		{Row: g.Height / 2, Col: g.Width - 2},
	}

	seen := make(map[CellPosition]struct{})
	var pool []CellPosition
	add := func(pos CellPosition) {
		if _, dup := seen[pos]; !dup {
			seen[pos] = struct{}{}
			pool = append(pool, pos)
		}
	}

	for _, target := range targets {
		add(nearestOpen(open, target))
	}
	for i := 0; i < randomCount; i++ {
		add(open[rng.Intn(len(open))])
	}
	return pool
}

// searchBestPair runs a single-source BFS from every candidate and keeps
// the best-scoring pair that meets the hard separation requirement on
// both row and column difference.
func searchBestPair(g *Grid, candidates []CellPosition, sep int) (Placement, bool) {
	var best Placement
	bestScore := -1 << 62
	found := false

	for _, a := range candidates {
		dist := g.Distances(a)
		for b, d := range dist {
			if b == a {
				continue
			}
			if abs(a.Row-b.Row) < sep || abs(a.Col-b.Col) < sep {
				continue
			}
			score := pairScore(g, a, b, d)
			if score < bestScore {
				continue
			}
			// Map iteration order is randomized; break score ties on
			// coordinates so the same seed always picks the same pair.
			if found && score == bestScore && !pairBefore(a, b, best.Start, best.End) {
				continue
			}
			bestScore = score
			best = Placement{Start: a, End: b, PathLength: d}
			found = true
		}
	}
	return best, found
}

// pairBefore reports whether pair (a1,b1) orders before (a2,b2) in
// row-major coordinate order.
func pairBefore(a1, b1, a2, b2 CellPosition) bool {
	if a1 != a2 {
		return posBefore(a1, a2)
	}
	return posBefore(b1, b2)
}

func posBefore(p, q CellPosition) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// pairScore weighs true path distance against physical separation and
// penalizes near-aligned pairs.
func pairScore(g *Grid, a, b CellPosition, pathDist int) int {
	score := pathDist*pathWeight + manhattan(a, b)*physicalWeight

	rowDiff := abs(a.Row - b.Row)
	colDiff := abs(a.Col - b.Col)
	if threshold := g.Height / 5; rowDiff < threshold {
		score -= (threshold - rowDiff) * alignPenalty
	}
	if threshold := g.Width / 5; colDiff < threshold {
		score -= (threshold - colDiff) * alignPenalty
	}
	return score
}

// bestCornerPair evaluates the two diagonal corner pairs and returns the
// one with the longer maze path.
func bestCornerPair(g *Grid) (Placement, bool) {
	open := g.OpenCells()
	if len(open) < 2 {
		return Placement{}, false
	}

	topLeft := nearestOpen(open, CellPosition{Row: 1, Col: 1})
	topRight := nearestOpen(open, CellPosition{Row: 1, Col: g.Width - 2})
	bottomLeft := nearestOpen(open, CellPosition{Row: g.Height - 2, Col: 1})
	bottomRight := nearestOpen(open, CellPosition{Row: g.Height - 2, Col: g.Width - 2})

	var best Placement
	found := false
	for _, pair := range [][2]CellPosition{{topLeft, bottomRight}, {topRight, bottomLeft}} {
		if pair[0] == pair[1] {
			continue
		}
		if length, ok := g.PathLength(pair[0], pair[1]); ok && (!found || length > best.PathLength) {
			best = Placement{Start: pair[0], End: pair[1], PathLength: length}
			found = true
		}
	}
	return best, found
}

// bestRandomPair samples random open pairs and keeps the most
// path-distant connected one.
const randomPairSamples = 50

func bestRandomPair(g *Grid, rng *rand.Rand, open []CellPosition) (Placement, bool) {
	var best Placement
	found := false
	for i := 0; i < randomPairSamples; i++ {
		a := open[rng.Intn(len(open))]
		b := open[rng.Intn(len(open))]
		if a == b {
			continue
		}
		if length, ok := g.PathLength(a, b); ok && (!found || length > best.PathLength) {
			best = Placement{Start: a, End: b, PathLength: length}
			found = true
		}
	}
	return best, found
}

// nearestOpen returns the open cell with the smallest Manhattan distance
// to the target.
func nearestOpen(open []CellPosition, target CellPosition) CellPosition {
	best := open[0]
	bestDist := manhattan(best, target)
	for _, cell := range open[1:] {
		if d := manhattan(cell, target); d < bestDist {
			best = cell
			bestDist = d
		}
	}
	return best
}

// farthestOpen returns the open cell with the largest Manhattan distance
// to the target.
func farthestOpen(open []CellPosition, target CellPosition) CellPosition {
	best := open[0]
	bestDist := manhattan(best, target)
	for _, cell := range open[1:] {
		if d := manhattan(cell, target); d > bestDist {
			best = cell
			bestDist = d
		}
	}
	return best
}
