package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Strategy picks moves for one mark, see service.NewStrategy.
type Strategy interface {
	Mark() entity.Mark
	DefineMovement(board entity.Board) (entity.Move, error)
}

// Session owns the canonical board of one game and sequences the moves of
// both players until the game is won or drawn.
type Session struct {
	logger *slog.Logger
	game   *entity.Game
}

func NewSession(logger *slog.Logger) *Session {
	id := uuid.NewString()

	return &Session{
		logger: logger.With("component", "session", "sessionID", id),
		game:   entity.NewGame(id),
	}
}

func (that *Session) ID() string {
	return that.game.ID
}

// Board - returns a copy of the current board.
func (that *Session) Board() entity.Board {
	return that.game.Board.Clone()
}

// Turn - returns the mark expected to move next.
func (that *Session) Turn() entity.Mark {
	return that.game.Turn
}

func (that *Session) Outcome() entity.Outcome {
	return that.game.Outcome
}

func (that *Session) IsFinished() bool {
	return that.game.IsFinished()
}

func (that *Session) Moves() int {
	return that.game.Moves
}

// SubmitMove - plays move for the mark on turn. A rejected move leaves the
// session unchanged and the same mark stays on turn.
func (that *Session) SubmitMove(move entity.Move) error {
	return that.makeTurn(that.game.Turn, move)
}

// SubmitUserMove - parses 1-indexed row and column input and plays it.
func (that *Session) SubmitUserMove(row, col string) (entity.Move, error) {
	if err := that.game.ConfirmOngoingState(); err != nil {
		return entity.Move{}, err
	}

	move, err := entity.ParseMove(row, col)
	if err != nil {
		that.logger.Debug("rejected move input", "row", row, "col", col, "error", err)
		return entity.Move{}, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	if err = that.SubmitMove(move); err != nil {
		return move, err
	}

	return move, nil
}

// RequestAIMove - asks the strategy for a move and plays it. The move is
// validated again before it touches the board.
func (that *Session) RequestAIMove(bot Strategy) (entity.Move, error) {
	if err := that.game.ConfirmOngoingState(); err != nil {
		return entity.Move{}, err
	}

	if bot.Mark() != that.game.Turn {
		return entity.Move{}, fmt.Errorf("%w: bot plays %s", apperror.ErrNotYourTurn, bot.Mark())
	}

	move, err := bot.DefineMovement(that.game.Board.Clone())
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to define movement: %w", err)
	}

	if err = that.makeTurn(bot.Mark(), move); err != nil {
		that.logger.Error("bot selected invalid move", "mark", bot.Mark(), "move", move.String(), "error", err)
		return move, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}

// PlayOut - lets two strategies play the session to the end.
func (that *Session) PlayOut(ctx context.Context, playerX, playerO Strategy) (entity.Outcome, error) {
	if playerX.Mark() != entity.PlayerX || playerO.Mark() != entity.PlayerO {
		return that.Outcome(), fmt.Errorf("%w: strategies must play X and O", apperror.ErrNotYourTurn)
	}

	for !that.IsFinished() {
		if err := ctx.Err(); err != nil {
			return that.Outcome(), fmt.Errorf("play out interrupted: %w", err)
		}

		bot := playerX
		if that.game.Turn == entity.PlayerO {
			bot = playerO
		}

		if _, err := that.RequestAIMove(bot); err != nil {
			return that.Outcome(), err
		}
	}

	return that.Outcome(), nil
}

func (that *Session) makeTurn(mark entity.Mark, move entity.Move) error {
	if err := tictactoe.MakeTurn(that.game, mark, move); err != nil {
		that.logger.Debug("rejected move", "mark", mark, "move", move.String(), "error", err)
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.logger.Debug("move accepted", "mark", mark, "move", move.String(), "moves", that.game.Moves)

	if that.game.IsFinished() {
		that.logger.Info("game finished", "outcome", that.game.Outcome.String(), "moves", that.game.Moves)
	}

	return nil
}
