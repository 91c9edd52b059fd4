package maze

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarvePerfect(t *testing.T) {
	for _, strategy := range []CarveStrategy{CarveDFS, CarvePrim} {
		t.Run(fmt.Sprintf("%s produces a connected maze", strategy), func(t *testing.T) {
			g, err := NewGrid(21, 15)
			assert.NoError(t, err)

			rng := rand.New(rand.NewSource(42))
			assert.NoError(t, carvePerfect(g, rng, strategy))

			// Every lattice cell must be carved and reachable from the root.
			dist := g.Distances(CellPosition{Row: 1, Col: 1})
			for row := 1; row <= latticeBound(g.Height); row += 2 {
				for col := 1; col <= latticeBound(g.Width); col += 2 {
					pos := CellPosition{Row: row, Col: col}
					assert.True(t, g.IsPassage(pos), "lattice cell %v not carved", pos)
					_, reachable := dist[pos]
					assert.True(t, reachable, "lattice cell %v not reachable", pos)
				}
			}

			// Every open cell is in one component.
			assert.Len(t, dist, g.CountOpen())
		})

		t.Run(fmt.Sprintf("%s keeps the border walled", strategy), func(t *testing.T) {
			g, err := NewGrid(17, 17)
			assert.NoError(t, err)

			rng := rand.New(rand.NewSource(7))
			assert.NoError(t, carvePerfect(g, rng, strategy))

			for col := 0; col < g.Width; col++ {
				assert.Equal(t, Wall, g.At(CellPosition{Row: 0, Col: col}))
				assert.Equal(t, Wall, g.At(CellPosition{Row: g.Height - 1, Col: col}))
			}
			for row := 0; row < g.Height; row++ {
				assert.Equal(t, Wall, g.At(CellPosition{Row: row, Col: 0}))
				assert.Equal(t, Wall, g.At(CellPosition{Row: row, Col: g.Width - 1}))
			}
		})
	}

	t.Run("perfect maze has exactly one path between cells", func(t *testing.T) {
		g, err := NewGrid(15, 15)
		assert.NoError(t, err)

		rng := rand.New(rand.NewSource(3))
		assert.NoError(t, carvePerfect(g, rng, CarveDFS))

		// A spanning tree over n cells has n-1 edges. Count passage
		// adjacencies; each edge is seen twice.
		edges := 0
		for _, cell := range g.OpenCells() {
			edges += g.OpenNeighborCount(cell)
		}
		assert.Equal(t, g.CountOpen()-1, edges/2)
	})

	t.Run("unknown strategy is rejected", func(t *testing.T) {
		g, err := NewGrid(11, 11)
		assert.NoError(t, err)

		rng := rand.New(rand.NewSource(1))
		assert.Error(t, carvePerfect(g, rng, CarveStrategy("wilson")))
	})

	t.Run("empty strategy defaults to dfs", func(t *testing.T) {
		g, err := NewGrid(11, 11)
		assert.NoError(t, err)

		rng := rand.New(rand.NewSource(1))
		assert.NoError(t, carvePerfect(g, rng, ""))
		assert.True(t, g.IsPassage(CellPosition{Row: 1, Col: 1}))
	})
}

func TestLatticeBound(t *testing.T) {
	assert.Equal(t, 9, latticeBound(11))
	assert.Equal(t, 9, latticeBound(12))
	assert.Equal(t, 11, latticeBound(13))
}
