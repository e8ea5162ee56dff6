package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Move is a 0-indexed board coordinate.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// UserMove - converts a 1-indexed (row, col) pair from a player into a Move.
func UserMove(row, col int) Move {
	return Move{Row: row - 1, Col: col - 1}
}

// ParseMove - parses 1-indexed row and column strings typed by a player.
func ParseMove(row, col string) (Move, error) {
	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return Move{}, fmt.Errorf("%w: row %q", apperror.ErrOutOfRange, row)
	}

	c, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return Move{}, fmt.Errorf("%w: column %q", apperror.ErrOutOfRange, col)
	}

	move := UserMove(r, c)
	if !move.InRange() {
		return Move{}, fmt.Errorf("%w: row %d, column %d", apperror.ErrOutOfRange, r, c)
	}

	return move, nil
}
