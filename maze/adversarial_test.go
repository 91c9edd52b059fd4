package maze

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInjectAdversarial(t *testing.T) {
	t.Run("preserves connectivity and endpoints", func(t *testing.T) {
		for _, seed := range []int64{1, 2, 3, 4, 5} {
			t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
				g := carvedGrid(t, 25, 25, seed)
				rng := rand.New(rand.NewSource(seed))
				assert.NoError(t, injectComplexity(g, rng))

				placement, err := choosePlacement(g, rng)
				assert.NoError(t, err)

				features, err := injectAdversarial(g, placement.Start, placement.End, rng)
				assert.NoError(t, err)
				assert.Greater(t, features, 0)

				assert.True(t, g.IsPassage(placement.Start), "start was walled over")
				assert.True(t, g.IsPassage(placement.End), "end was walled over")

				report, err := Verify(g, placement.Start)
				assert.NoError(t, err)
				assert.True(t, report.Connected(), "disconnected after adversarial shaping:\n%s", g.String())

				_, ok := g.PathLength(placement.Start, placement.End)
				assert.True(t, ok, "no path from start to end")
			})
		}
	})

	t.Run("adds passages rather than sealing the maze", func(t *testing.T) {
		g := carvedGrid(t, 21, 21, 7)
		rng := rand.New(rand.NewSource(7))
		assert.NoError(t, injectComplexity(g, rng))

		placement, err := choosePlacement(g, rng)
		assert.NoError(t, err)
		openBefore := g.CountOpen()

		_, err = injectAdversarial(g, placement.Start, placement.End, rng)
		assert.NoError(t, err)

		// Traps and deceptive corridors carve new cells; sealing work is
		// limited to corridor tips.
		assert.Greater(t, g.CountOpen(), openBefore/2)
	})
}

func TestDirectionHelpers(t *testing.T) {
	t.Run("awayDirection escapes along the tighter axis", func(t *testing.T) {
		from := CellPosition{Row: 5, Col: 5}
		target := CellPosition{Row: 5, Col: 9}
		// Row gap is zero, so the escape bends off the row axis.
		assert.Equal(t, CellPosition{Row: 1, Col: 0}, awayDirection(from, target))

		target = CellPosition{Row: 9, Col: 5}
		assert.Equal(t, CellPosition{Row: 0, Col: 1}, awayDirection(from, target))
	})

	t.Run("perp swaps axes", func(t *testing.T) {
		assert.Equal(t, CellPosition{Row: 0, Col: 1}, perp(CellPosition{Row: 1, Col: 0}))
		assert.Equal(t, CellPosition{Row: 1, Col: 0}, perp(CellPosition{Row: 0, Col: 1}))
	})

	t.Run("negate reverses a direction", func(t *testing.T) {
		assert.Equal(t, CellPosition{Row: -1, Col: 0}, negate(CellPosition{Row: 1, Col: 0}))
	})

	t.Run("jitter stays in the interior", func(t *testing.T) {
		g, err := NewGrid(15, 15)
		assert.NoError(t, err)
		rng := rand.New(rand.NewSource(3))

		for i := 0; i < 50; i++ {
			pos := jitter(g, CellPosition{Row: 1, Col: 1}, 4, rng)
			assert.True(t, g.Interior(pos), "jittered position %v left the interior", pos)
		}
	})
}
