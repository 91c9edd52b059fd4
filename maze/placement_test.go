package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func carvedGrid(t *testing.T, width, height int, seed int64) *Grid {
	t.Helper()
	g, err := NewGrid(width, height)
	assert.NoError(t, err)
	assert.NoError(t, carvePerfect(g, rand.New(rand.NewSource(seed)), CarveDFS))
	return g
}

func TestChoosePlacement(t *testing.T) {
	t.Run("picks separated endpoints on a full maze", func(t *testing.T) {
		g := carvedGrid(t, 21, 21, 11)
		rng := rand.New(rand.NewSource(11))

		placement, err := choosePlacement(g, rng)
		assert.NoError(t, err)
		assert.NotEqual(t, placement.Start, placement.End)
		assert.True(t, g.IsPassage(placement.Start))
		assert.True(t, g.IsPassage(placement.End))

		// The diagonal corner cells qualify, so the primary search cannot
		// come up empty here.
		assert.Equal(t, TierPrimary, placement.Tier)

		sep := max(g.Width, g.Height) / 2
		assert.GreaterOrEqual(t, abs(placement.Start.Row-placement.End.Row), sep)
		assert.GreaterOrEqual(t, abs(placement.Start.Col-placement.End.Col), sep)
	})

	t.Run("reports the true path length", func(t *testing.T) {
		g := carvedGrid(t, 15, 15, 23)
		rng := rand.New(rand.NewSource(23))

		placement, err := choosePlacement(g, rng)
		assert.NoError(t, err)

		length, ok := g.PathLength(placement.Start, placement.End)
		assert.True(t, ok)
		assert.Equal(t, length, placement.PathLength)
	})

	t.Run("degrades instead of failing on a cramped grid", func(t *testing.T) {
		// Two adjacent open cells can never satisfy the separation
		// requirement, so the chain must fall through to a weaker tier.
		g, err := NewGrid(7, 7)
		assert.NoError(t, err)
		g.Carve(CellPosition{Row: 1, Col: 1})
		g.Carve(CellPosition{Row: 1, Col: 2})

		placement, err := choosePlacement(g, rand.New(rand.NewSource(5)))
		assert.NoError(t, err)
		assert.NotEqual(t, TierPrimary, placement.Tier)
		assert.NotEqual(t, placement.Start, placement.End)
		assert.True(t, g.IsPassage(placement.Start))
		assert.True(t, g.IsPassage(placement.End))
	})

	t.Run("breaks score ties deterministically", func(t *testing.T) {
		// An open room with one far corner blocked leaves two symmetric
		// end cells with identical scores; the chosen pair must not
		// depend on map iteration order.
		build := func() *Grid {
			g, err := NewGrid(12, 12)
			assert.NoError(t, err)
			for row := 1; row <= 10; row++ {
				for col := 1; col <= 10; col++ {
					g.Carve(CellPosition{Row: row, Col: col})
				}
			}
			g.Block(CellPosition{Row: 10, Col: 10})
			return g
		}

		first, err := choosePlacement(build(), rand.New(rand.NewSource(42)))
		assert.NoError(t, err)
		for i := 0; i < 49; i++ {
			next, err := choosePlacement(build(), rand.New(rand.NewSource(42)))
			assert.NoError(t, err)
			assert.Equal(t, first, next)
		}
	})

	t.Run("rejects a grid without enough open cells", func(t *testing.T) {
		g, err := NewGrid(7, 7)
		assert.NoError(t, err)
		g.Carve(CellPosition{Row: 3, Col: 3})

		_, err = choosePlacement(g, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrNoOpenCells)
	})
}

func TestSampleSize(t *testing.T) {
	assert.Equal(t, 10, sampleSize(40))
	assert.Equal(t, 25, sampleSize(500))
	assert.Equal(t, 50, sampleSize(5000))
}

func TestPlacementTierString(t *testing.T) {
	assert.Equal(t, "primary", TierPrimary.String())
	assert.Equal(t, "fixed", TierFixed.String())
	assert.Equal(t, "unknown", PlacementTier(99).String())
}
