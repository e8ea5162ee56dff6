package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func TestRandomStrategy_DefineMovement(t *testing.T) {
	t.Run("Always picks an empty cell", func(t *testing.T) {
		_, st := suite.New(t)

		// Given: a board with a single row left open
		board := entity.Board{
			{x, o, x},
			{o, x, o},
			{e, e, e},
		}
		strategy := NewRandomStrategy(o, st.Rand)

		for range 50 {
			// When: the strategy picks a move
			move, err := strategy.DefineMovement(board)

			// Then: the move is one of the empty cells
			require.NoError(t, err)
			assert.Equal(t, 2, move.Row)
			assert.Contains(t, board.EmptyCells(), move)
		}
	})

	t.Run("Covers every empty cell over many draws", func(t *testing.T) {
		_, st := suite.New(t)
		board := entity.NewBoard()
		strategy := NewRandomStrategy(x, st.Rand)

		seen := make(map[entity.Move]int)
		for range 900 {
			move, err := strategy.DefineMovement(board)
			require.NoError(t, err)
			seen[move]++
		}

		assert.Len(t, seen, 9)
	})

	t.Run("Full board", func(t *testing.T) {
		board := entity.Board{{x, o, x}, {o, x, o}, {o, x, o}}
		strategy := NewRandomStrategy(o, nil)

		_, err := strategy.DefineMovement(board)

		assert.ErrorIs(t, err, apperror.ErrNoLegalMoves)
		assert.Equal(t, o, strategy.Mark())
	})
}
