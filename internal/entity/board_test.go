package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinningLines_Table(t *testing.T) {
	t.Run("Table holds exactly 49 lines", func(t *testing.T) {
		require.Len(t, WinningLines, 49)
	})

	t.Run("Every line holds 3 distinct in-bounds cells", func(t *testing.T) {
		for _, line := range WinningLines {
			seen := map[Coord]bool{}
			for _, cell := range line {
				assert.GreaterOrEqual(t, cell.Layer, 0)
				assert.Less(t, cell.Layer, BoardSize)
				assert.GreaterOrEqual(t, cell.Row, 0)
				assert.Less(t, cell.Row, BoardSize)
				assert.GreaterOrEqual(t, cell.Col, 0)
				assert.Less(t, cell.Col, BoardSize)
				seen[cell] = true
			}
			assert.Len(t, seen, 3, "line %v repeats a cell", line)
		}
	})

	t.Run("No line is listed twice", func(t *testing.T) {
		seen := map[[3]Coord]bool{}
		for _, line := range WinningLines {
			assert.False(t, seen[line], "line %v listed twice", line)
			seen[line] = true
		}
	})
}

func TestBoard_CheckWin(t *testing.T) {
	t.Run("Empty board has no winner", func(t *testing.T) {
		board := Board{}

		_, won := board.CheckWin(PlayerX)

		assert.False(t, won)
	})

	t.Run("Empty symbol never wins", func(t *testing.T) {
		board := Board{}

		_, won := board.CheckWin(EmptyCell)

		assert.False(t, won)
	})

	t.Run("Each of the 49 lines wins when fully occupied", func(t *testing.T) {
		for _, line := range WinningLines {
			// Given: a fresh board with X on all 3 cells of the line
			board := Board{}
			for _, cell := range line {
				board.SetCell(cell, PlayerX)
			}

			// When: checking both symbols
			cells, won := board.CheckWin(PlayerX)

			// Then: exactly that line wins for X and nothing wins for O
			require.True(t, won, "line %v did not win", line)
			assert.Equal(t, line, cells)

			_, won = board.CheckWin(PlayerO)
			assert.False(t, won)
		}
	})

	t.Run("A mixed line does not win", func(t *testing.T) {
		board := Board{}
		board.SetCell(Coord{0, 0, 0}, PlayerX)
		board.SetCell(Coord{1, 1, 1}, PlayerO)
		board.SetCell(Coord{2, 2, 2}, PlayerX)

		_, won := board.CheckWin(PlayerX)
		assert.False(t, won)

		_, won = board.CheckWin(PlayerO)
		assert.False(t, won)
	})

	t.Run("First matching line in table order is reported", func(t *testing.T) {
		// Given: X occupies the whole top layer
		board := Board{}
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				board.SetCell(Coord{0, row, col}, PlayerX)
			}
		}

		// When: checking for X
		cells, won := board.CheckWin(PlayerX)

		// Then: the first in-layer row of layer 0 is reported
		require.True(t, won)
		assert.Equal(t, [3]Coord{{0, 0, 0}, {0, 0, 1}, {0, 0, 2}}, cells)
	})
}

func TestBoard_CheckDraw(t *testing.T) {
	t.Run("Empty board is not a draw", func(t *testing.T) {
		board := Board{}

		assert.False(t, board.CheckDraw())
	})

	t.Run("Full board is a draw", func(t *testing.T) {
		board := fullBoard(PlayerO)

		assert.True(t, board.CheckDraw())
	})

	t.Run("One empty cell is not a draw", func(t *testing.T) {
		board := fullBoard(PlayerO)
		board.SetCell(Coord{2, 2, 2}, EmptyCell)

		assert.False(t, board.CheckDraw())
	})
}

func TestToggleSymbol(t *testing.T) {
	assert.Equal(t, PlayerO, ToggleSymbol(PlayerX))
	assert.Equal(t, PlayerX, ToggleSymbol(PlayerO))
}

func fullBoard(symbol string) Board {
	board := Board{}
	for layer := 0; layer < BoardSize; layer++ {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				board.SetCell(Coord{layer, row, col}, symbol)
			}
		}
	}

	return board
}
