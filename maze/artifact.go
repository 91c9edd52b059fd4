package maze

import (
	"errors"
	"fmt"
)

// Artifact is the immutable serialized form of a generated maze. All
// coordinates are 1-indexed (row, col) pairs; passages are implicit: any
// in-bounds cell not listed in Walls is passable.
type Artifact struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Start  [2]int   `json:"start"`
	End    [2]int   `json:"end"`
	Walls  [][2]int `json:"walls"`
}

var (
	// ErrInvalidArtifact reports an artifact violating the maze
	// invariants: endpoints on a wall, out of bounds, or coincident.
	ErrInvalidArtifact = errors.New("invalid maze artifact")
)

// Validate checks the artifact's structural invariants. It does not
// verify solvability; use a solver for the path-existence check.
func (a *Artifact) Validate() error {
	if min(a.Width, a.Height) < minDimension {
		return fmt.Errorf("%w: dimensions %dx%d below minimum %d", ErrInvalidArtifact, a.Width, a.Height, minDimension)
	}
	if !a.coordInBounds(a.Start) {
		return fmt.Errorf("%w: start %v out of bounds", ErrInvalidArtifact, a.Start)
	}
	if !a.coordInBounds(a.End) {
		return fmt.Errorf("%w: end %v out of bounds", ErrInvalidArtifact, a.End)
	}
	if a.Start == a.End {
		return fmt.Errorf("%w: start and end coincide at %v", ErrInvalidArtifact, a.Start)
	}
	for _, wall := range a.Walls {
		if !a.coordInBounds(wall) {
			return fmt.Errorf("%w: wall %v out of bounds", ErrInvalidArtifact, wall)
		}
		if wall == a.Start {
			return fmt.Errorf("%w: start %v is a wall", ErrInvalidArtifact, a.Start)
		}
		if wall == a.End {
			return fmt.Errorf("%w: end %v is a wall", ErrInvalidArtifact, a.End)
		}
	}
	return nil
}

func (a *Artifact) coordInBounds(coord [2]int) bool {
	return coord[0] >= 1 && coord[0] <= a.Height && coord[1] >= 1 && coord[1] <= a.Width
}

// ToGrid reconstructs the mutable grid plus the internal start/end
// positions from the artifact. Duplicate wall entries are harmless.
func (a *Artifact) ToGrid() (*Grid, CellPosition, CellPosition, error) {
	if err := a.Validate(); err != nil {
		return nil, CellPosition{}, CellPosition{}, err
	}

	g, err := NewGrid(a.Width, a.Height)
	if err != nil {
		return nil, CellPosition{}, CellPosition{}, err
	}
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			g.Carve(CellPosition{Row: row, Col: col})
		}
	}
	for _, wall := range a.Walls {
		g.Block(FromExternal(wall))
	}
	return g, FromExternal(a.Start), FromExternal(a.End), nil
}

// snapshotArtifact takes the immutable export of a grid and placement.
func snapshotArtifact(g *Grid, placement Placement) *Artifact {
	var walls [][2]int
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			pos := CellPosition{Row: row, Col: col}
			if g.At(pos) == Wall {
				walls = append(walls, pos.External())
			}
		}
	}
	return &Artifact{
		Width:  g.Width,
		Height: g.Height,
		Start:  placement.Start.External(),
		End:    placement.End.External(),
		Walls:  walls,
	}
}
