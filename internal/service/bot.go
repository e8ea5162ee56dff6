package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	DifficultyEasy       = "easy"
	DifficultyImpossible = "impossible"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Strategy picks a move for the mark it is bound to.
type Strategy interface {
	Mark() entity.Mark
	DefineMovement(board entity.Board) (entity.Move, error)
}

type StrategyOptions struct {
	Logger   *slog.Logger
	Rand     *rand.Rand
	Parallel bool
}

// NewStrategy - builds the bot for a difficulty: easy plays randomly, impossible plays minimax.
func NewStrategy(difficulty string, mark entity.Mark, opts StrategyOptions) (Strategy, error) {
	if !mark.IsPlayer() {
		return nil, fmt.Errorf("invalid bot mark %q", mark)
	}

	switch difficulty {
	case DifficultyEasy:
		return NewRandomStrategy(mark, opts.Rand), nil
	case DifficultyImpossible:
		return NewMinimaxStrategy(mark, WithLogger(opts.Logger), WithParallel(opts.Parallel)), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDifficulty, difficulty)
	}
}
