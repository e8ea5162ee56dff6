package apperror

import "errors"

var (
	ErrOutOfRange   = errors.New("coordinate is out of range")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidMove  = errors.New("invalid move")
	ErrNoLegalMoves = errors.New("no legal moves left")

	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
)
