package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// twoIslandGrid builds a grid with two open regions that do not touch.
func twoIslandGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(11, 11)
	assert.NoError(t, err)

	for col := 1; col <= 3; col++ {
		g.Carve(CellPosition{Row: 1, Col: col})
	}
	for col := 7; col <= 9; col++ {
		g.Carve(CellPosition{Row: 9, Col: col})
	}
	return g
}

func TestVerify(t *testing.T) {
	t.Run("reports disconnected cells", func(t *testing.T) {
		g := twoIslandGrid(t)

		report, err := Verify(g, CellPosition{Row: 1, Col: 1})
		assert.NoError(t, err)
		assert.False(t, report.Connected())
		assert.Equal(t, 3, report.ReachableCount)
		assert.Len(t, report.Unreachable, 3)
	})

	t.Run("connected grid passes", func(t *testing.T) {
		g, err := NewGrid(7, 7)
		assert.NoError(t, err)
		for col := 1; col <= 5; col++ {
			g.Carve(CellPosition{Row: 3, Col: col})
		}

		report, err := Verify(g, CellPosition{Row: 3, Col: 1})
		assert.NoError(t, err)
		assert.True(t, report.Connected())
		assert.Equal(t, 5, report.ReachableCount)
	})

	t.Run("wall reference fails loudly", func(t *testing.T) {
		g, err := NewGrid(7, 7)
		assert.NoError(t, err)
		g.Carve(CellPosition{Row: 1, Col: 1})

		_, err = Verify(g, CellPosition{Row: 3, Col: 3})
		assert.ErrorIs(t, err, ErrReferenceInWall)
	})
}

func TestRepair(t *testing.T) {
	t.Run("reconnects disconnected regions", func(t *testing.T) {
		g := twoIslandGrid(t)
		reference := CellPosition{Row: 1, Col: 1}

		carved, err := Repair(g, reference)
		assert.NoError(t, err)
		assert.Greater(t, carved, 0)

		report, err := Verify(g, reference)
		assert.NoError(t, err)
		assert.True(t, report.Connected())
	})

	t.Run("is idempotent", func(t *testing.T) {
		g := twoIslandGrid(t)
		reference := CellPosition{Row: 1, Col: 1}

		_, err := Repair(g, reference)
		assert.NoError(t, err)

		carved, err := Repair(g, reference)
		assert.NoError(t, err)
		assert.Equal(t, 0, carved)
	})

	t.Run("carves nothing on a connected grid", func(t *testing.T) {
		g, err := NewGrid(7, 7)
		assert.NoError(t, err)
		for col := 1; col <= 5; col++ {
			g.Carve(CellPosition{Row: 2, Col: col})
		}

		carved, err := Repair(g, CellPosition{Row: 2, Col: 1})
		assert.NoError(t, err)
		assert.Equal(t, 0, carved)
	})

	t.Run("wall reference fails loudly", func(t *testing.T) {
		g := twoIslandGrid(t)

		_, err := Repair(g, CellPosition{Row: 5, Col: 5})
		assert.ErrorIs(t, err, ErrReferenceInWall)
	})

	t.Run("is deterministic for the same defect", func(t *testing.T) {
		first := twoIslandGrid(t)
		second := twoIslandGrid(t)
		reference := CellPosition{Row: 1, Col: 1}

		_, err := Repair(first, reference)
		assert.NoError(t, err)
		_, err = Repair(second, reference)
		assert.NoError(t, err)

		assert.Equal(t, first.String(), second.String())
	})
}

func TestCarveCorridor(t *testing.T) {
	g, err := NewGrid(11, 11)
	assert.NoError(t, err)

	from := CellPosition{Row: 2, Col: 2}
	to := CellPosition{Row: 6, Col: 7}
	g.Carve(from)
	g.Carve(to)

	carved := carveCorridor(g, from, to)
	assert.Equal(t, manhattan(from, to)-1, carved)

	length, ok := g.PathLength(from, to)
	assert.True(t, ok)
	assert.Equal(t, manhattan(from, to), length)
}
