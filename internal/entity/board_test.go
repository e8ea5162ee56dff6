package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func TestBoard_CellAt(t *testing.T) {
	t.Run("Returns cell contents", func(t *testing.T) {
		// Given: a board with X in the centre
		board := NewBoard()
		board.Place(Move{Row: 1, Col: 1}, PlayerX)

		// When: reading the centre and a corner
		centre, err := board.CellAt(1, 1)
		require.NoError(t, err)
		corner, err := board.CellAt(2, 2)
		require.NoError(t, err)

		// Then: the centre holds X and the corner is empty
		assert.Equal(t, PlayerX, centre)
		assert.Equal(t, EmptyCell, corner)
	})

	t.Run("Out of range", func(t *testing.T) {
		board := NewBoard()

		for _, coords := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			// When: reading outside the grid
			_, err := board.CellAt(coords[0], coords[1])

			// Then: ErrOutOfRange is returned
			assert.ErrorIs(t, err, apperror.ErrOutOfRange, "coords %v", coords)
		}
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Empty board lists every cell in row-major order", func(t *testing.T) {
		board := NewBoard()

		cells := board.EmptyCells()

		expected := []Move{
			{0, 0}, {0, 1}, {0, 2},
			{1, 0}, {1, 1}, {1, 2},
			{2, 0}, {2, 1}, {2, 2},
		}
		assert.Equal(t, expected, cells)
	})

	t.Run("Skips occupied cells", func(t *testing.T) {
		// Given: a board with X and O placed
		board := Board{
			{PlayerX, EmptyCell, PlayerO},
			{EmptyCell, PlayerX, EmptyCell},
			{PlayerO, EmptyCell, EmptyCell},
		}

		// When: listing empty cells
		cells := board.EmptyCells()

		// Then: only the empty ones remain, still row-major
		assert.Equal(t, []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}, cells)
	})

	t.Run("Full board has none", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerO, PlayerX},
			{PlayerO, PlayerX, PlayerO},
			{PlayerO, PlayerX, PlayerO},
		}

		assert.Empty(t, board.EmptyCells())
		assert.True(t, board.IsFull())
	})
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board and its clone
	board := NewBoard()
	board.Place(Move{Row: 0, Col: 0}, PlayerX)
	clone := board.Clone()

	// When: the clone is mutated
	clone.Place(Move{Row: 2, Col: 2}, PlayerO)

	// Then: the original board is untouched
	assert.Equal(t, EmptyCell, board[2][2])
	assert.Equal(t, PlayerO, clone[2][2])
	assert.Equal(t, PlayerX, clone[0][0])
}

func TestBoard_String(t *testing.T) {
	board := Board{
		{PlayerX, EmptyCell, PlayerO},
		{EmptyCell, PlayerX, EmptyCell},
		{EmptyCell, EmptyCell, EmptyCell},
	}

	expected := "X |   | O\n---------\n  | X |  \n---------\n  |   |  "
	assert.Equal(t, expected, board.String())
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.True(t, PlayerX.IsPlayer())
	assert.False(t, EmptyCell.IsPlayer())
}

func TestParseMove(t *testing.T) {
	t.Run("Converts 1-indexed input", func(t *testing.T) {
		move, err := ParseMove("1", " 3 ")

		require.NoError(t, err)
		assert.Equal(t, Move{Row: 0, Col: 2}, move)
	})

	t.Run("Rejects bad input", func(t *testing.T) {
		cases := [][2]string{{"0", "1"}, {"4", "1"}, {"1", "x"}, {"", "2"}, {"-1", "2"}}
		for _, c := range cases {
			_, err := ParseMove(c[0], c[1])

			assert.ErrorIs(t, err, apperror.ErrOutOfRange, "input %v", c)
		}
	})
}
