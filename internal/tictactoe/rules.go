package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// WinLines holds the 8 winning lines: rows, columns, main diagonal, anti-diagonal.
var WinLines = [8][3]entity.Move{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// Winner - returns the mark owning a full line. X is checked before O, so a board
// holding full lines of both marks (unreachable in play) reports X.
func Winner(board entity.Board) (entity.Mark, bool) {
	for _, mark := range entity.Marks {
		for _, line := range WinLines {
			if board[line[0].Row][line[0].Col] == mark &&
				board[line[1].Row][line[1].Col] == mark &&
				board[line[2].Row][line[2].Col] == mark {
				return mark, true
			}
		}
	}

	return entity.EmptyCell, false
}

// IsDraw - true when nobody has a line and no empty cell is left.
func IsDraw(board entity.Board) bool {
	if _, ok := Winner(board); ok {
		return false
	}

	return board.IsFull()
}

func IsTerminal(board entity.Board) bool {
	_, won := Winner(board)
	return won || IsDraw(board)
}

// Outcome - derives the game outcome from the board contents.
func Outcome(board entity.Board) entity.Outcome {
	if winner, ok := Winner(board); ok {
		return entity.Won(winner)
	}

	if board.IsFull() {
		return entity.Drawn()
	}

	return entity.Ongoing()
}

// ValidateMove - checks that move is on the board and targets an empty cell.
func ValidateMove(board entity.Board, move entity.Move) error {
	cell, err := board.CellAt(move.Row, move.Col)
	if err != nil {
		return err
	}

	if cell != entity.EmptyCell {
		return fmt.Errorf("%w: %s holds %s", apperror.ErrCellOccupied, move, cell)
	}

	return nil
}

// MakeTurn - applies mark at move to the game and recomputes its outcome.
// Validation failures leave the game untouched and wrap apperror.ErrInvalidMove.
func MakeTurn(game *entity.Game, mark entity.Mark, move entity.Move) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if err := ValidateMove(game.Board, move); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	game.Board.Place(move, mark)
	game.Moves++
	updateGameStatus(game, mark)

	return nil
}

// updateGameStatus - recomputes the outcome after a move and passes the turn on.
func updateGameStatus(game *entity.Game, mark entity.Mark) {
	game.Outcome = Outcome(game.Board)
	if game.Outcome.IsFinished() {
		return
	}

	game.Turn = mark.Opponent()
}
