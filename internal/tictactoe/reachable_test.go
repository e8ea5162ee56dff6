package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// hasLine reports whether mark owns any full line.
func hasLine(board entity.Board, mark entity.Mark) bool {
	for _, line := range WinLines {
		if board[line[0].Row][line[0].Col] == mark &&
			board[line[1].Row][line[1].Col] == mark &&
			board[line[2].Row][line[2].Col] == mark {
			return true
		}
	}
	return false
}

func TestReachableBoards(t *testing.T) {
	var (
		games     int
		positions int
		walk      func(game entity.Game)
	)

	walk = func(game entity.Game) {
		positions++
		board := game.Board

		// no legal game gives both marks a line
		require.False(t, hasLine(board, x) && hasLine(board, o), "board\n%s", board)

		// winner and draw never coincide
		_, won := Winner(board)
		require.False(t, won && IsDraw(board), "board\n%s", board)
		require.Equal(t, won || IsDraw(board), IsTerminal(board))
		require.Equal(t, IsTerminal(board), game.IsFinished())

		if game.IsFinished() {
			games++
			return
		}

		for _, move := range board.EmptyCells() {
			next := game
			require.NoError(t, MakeTurn(&next, game.Turn, move))
			walk(next)
		}
	}

	walk(*entity.NewGame("walk"))

	// every distinct move sequence to a finished game
	require.Equal(t, 255168, games)
	require.Equal(t, 549946, positions)
}
