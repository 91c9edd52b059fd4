package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/google/uuid"
)

var (
	// ErrInvalidSolution reports a submitted move list that breaks the
	// maze rules: wrong endpoints, a non-orthogonal step, or a wall hit.
	ErrInvalidSolution = errors.New("invalid solution")
)

// Challenge is a published maze puzzle: the immutable artifact plus the
// metadata solvers compete on.
type Challenge struct {
	ID       uuid.UUID      `bson:"_id"`
	Artifact *maze.Artifact `bson:"artifact"`
	// Adversarial marks mazes shaped to degrade heuristic search.
	Adversarial bool `bson:"adversarial"`
	// OptimalLength is the shortest start-to-end path length in steps,
	// fixed at creation time and used as the scoring baseline.
	OptimalLength int       `bson:"optimalLength"`
	CreatedAt     time.Time `bson:"createdAt"`
}

// ValidateSolution replays a submitted move list (1-indexed coordinates,
// start through end inclusive) against the challenge's maze and returns
// the number of steps taken. Every transition must be a single
// orthogonal move onto a passage cell.
func (c *Challenge) ValidateSolution(moves [][2]int) (int, error) {
	if len(moves) < 2 {
		return 0, fmt.Errorf("%w: need at least start and end positions", ErrInvalidSolution)
	}
	if moves[0] != c.Artifact.Start {
		return 0, fmt.Errorf("%w: first position %v is not the start %v", ErrInvalidSolution, moves[0], c.Artifact.Start)
	}
	if moves[len(moves)-1] != c.Artifact.End {
		return 0, fmt.Errorf("%w: last position %v is not the end %v", ErrInvalidSolution, moves[len(moves)-1], c.Artifact.End)
	}

	grid, _, _, err := c.Artifact.ToGrid()
	if err != nil {
		return 0, err
	}

	previous := maze.FromExternal(moves[0])
	for idx, coord := range moves[1:] {
		current := maze.FromExternal(coord)
		if !grid.IsPassage(current) {
			return 0, fmt.Errorf("%w: move %d enters a wall at %v", ErrInvalidSolution, idx+1, coord)
		}
		if dr, dc := absDiff(current.Row, previous.Row), absDiff(current.Col, previous.Col); dr+dc != 1 {
			return 0, fmt.Errorf("%w: move %d from %v to %v is not a single orthogonal step", ErrInvalidSolution, idx+1, moves[idx], coord)
		}
		previous = current
	}
	return len(moves) - 1, nil
}

// Score converts a validated solution length into leaderboard points.
// A shortest path scores 1000; longer routes decay proportionally.
func (c *Challenge) Score(steps int) float64 {
	if steps <= 0 {
		return 0
	}
	return 1000 * float64(c.OptimalLength) / float64(steps)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
