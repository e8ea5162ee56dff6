package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Mark is a player identity placed into a cell. EmptyCell marks an unoccupied cell.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const BoardSize = 3

// Marks lists the player marks in the order the rules engine checks them.
var Marks = [2]Mark{PlayerX, PlayerO}

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Board is the 3x3 grid. It is a value type: assigning or passing a Board copies it.
type Board [BoardSize][BoardSize]Mark

// NewBoard - creates an empty board.
func NewBoard() Board {
	return Board{}
}

// CellAt - returns the contents of the cell at (row, col), 0-indexed.
func (that *Board) CellAt(row, col int) (Mark, error) {
	move := Move{Row: row, Col: col}
	if !move.InRange() {
		return EmptyCell, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, move)
	}

	return that[row][col], nil
}

// EmptyCells - returns every empty coordinate in row-major order.
// Strategies enumerate moves in this order, so it decides tie-breaks.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == EmptyCell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Place - puts mark into the cell without any validation, callers check legality first.
func (that *Board) Place(move Move, mark Mark) {
	that[move.Row][move.Col] = mark
}

// Clone - returns an independent copy of the board.
func (that *Board) Clone() Board {
	return *that
}

// IsFull - reports whether no empty cell is left.
func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that Board) String() string {
	var sb strings.Builder
	for row := range BoardSize {
		if row > 0 {
			sb.WriteString("\n---------\n")
		}
		for col := range BoardSize {
			if col > 0 {
				sb.WriteString(" | ")
			}
			cell := that[row][col]
			if cell == EmptyCell {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(string(cell))
		}
	}

	return sb.String()
}
