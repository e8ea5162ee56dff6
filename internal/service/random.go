package service

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// RandomStrategy picks uniformly among the empty cells.
type RandomStrategy struct {
	mark entity.Mark
	rand *rand.Rand
}

// NewRandomStrategy - rnd may be nil, a randomly seeded source is used then.
func NewRandomStrategy(mark entity.Mark, rnd *rand.Rand) *RandomStrategy {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // it's ok
	}

	return &RandomStrategy{
		mark: mark,
		rand: rnd,
	}
}

func (that *RandomStrategy) Mark() entity.Mark {
	return that.mark
}

func (that *RandomStrategy) DefineMovement(board entity.Board) (entity.Move, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Move{}, apperror.ErrNoLegalMoves
	}

	return availableCells[that.rand.IntN(len(availableCells))], nil
}
