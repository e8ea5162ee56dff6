package service

import (
	"log/slog"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	WinScore  = 10
	LossScore = -10
	DrawScore = 0
)

// Evaluate - scores a terminal board from the perspective mark.
// Non-terminal boards score as a draw.
func Evaluate(board entity.Board, perspective entity.Mark) int {
	if tictactoe.IsDraw(board) {
		return DrawScore
	}

	winner, ok := tictactoe.Winner(board)
	switch {
	case !ok:
		return DrawScore
	case winner == perspective:
		return WinScore
	default:
		return LossScore
	}
}

// Minimax - scores board for perspective with active to move, searching the whole
// remaining game tree. Both sides are assumed to play optimally.
func Minimax(board entity.Board, active, perspective entity.Mark) int {
	var s searcher
	return s.minimax(board, active, perspective)
}

// searcher counts visited nodes of one branch.
type searcher struct {
	nodes int
}

func (that *searcher) minimax(board entity.Board, active, perspective entity.Mark) int {
	that.nodes++

	if tictactoe.IsTerminal(board) {
		return Evaluate(board, perspective)
	}

	moves := board.EmptyCells()
	scores := make([]int, 0, len(moves))
	for _, move := range moves {
		child := board.Clone()
		child.Place(move, active)
		scores = append(scores, that.minimax(child, active.Opponent(), perspective))
	}

	if active == perspective {
		return slices.Max(scores)
	}
	return slices.Min(scores)
}

// MinimaxStrategy plays the game-theoretically optimal move.
type MinimaxStrategy struct {
	mark     entity.Mark
	logger   *slog.Logger
	parallel bool
}

type MinimaxOption func(*MinimaxStrategy)

func WithLogger(logger *slog.Logger) MinimaxOption {
	return func(s *MinimaxStrategy) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithParallel - search every top-level branch in its own goroutine.
func WithParallel(parallel bool) MinimaxOption {
	return func(s *MinimaxStrategy) {
		s.parallel = parallel
	}
}

func NewMinimaxStrategy(mark entity.Mark, opts ...MinimaxOption) *MinimaxStrategy {
	strategy := &MinimaxStrategy{
		mark:   mark,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(strategy)
	}

	strategy.logger = strategy.logger.With("component", "minimax", "mark", mark)

	return strategy
}

func (that *MinimaxStrategy) Mark() entity.Mark {
	return that.mark
}

func (that *MinimaxStrategy) DefineMovement(board entity.Board) (entity.Move, error) {
	move, _, err := that.BestMove(board)
	return move, err
}

// BestMove - returns the optimal move and its score. Among equal scores the move
// that comes first in row-major order wins.
func (that *MinimaxStrategy) BestMove(board entity.Board) (entity.Move, int, error) {
	moves := board.EmptyCells()
	if len(moves) == 0 || tictactoe.IsTerminal(board) {
		return entity.Move{}, 0, apperror.ErrNoLegalMoves
	}

	started := time.Now()
	scores := make([]int, len(moves))
	nodes := make([]int, len(moves))

	search := func(i int) {
		child := board.Clone()
		child.Place(moves[i], that.mark)

		var s searcher
		scores[i] = s.minimax(child, that.mark.Opponent(), that.mark)
		nodes[i] = s.nodes
	}

	if that.parallel {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := range moves {
			g.Go(func() error {
				search(i)
				return nil
			})
		}
		_ = g.Wait() // branches never fail
	} else {
		for i := range moves {
			search(i)
		}
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	var total int
	for _, n := range nodes {
		total += n
	}

	that.logger.Debug("search finished",
		"move", moves[best].String(),
		"score", scores[best],
		"nodes", total,
		"elapsed", time.Since(started),
	)

	return moves[best], scores[best], nil
}
