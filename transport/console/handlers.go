package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const invalidMovementMessage = "Select a valid Movement please"

// ChooseMode - asks for the play mode and, against the AI, its difficulty.
func (that *Console) ChooseMode(ctx context.Context) (string, error) {
	for {
		choice, err := that.ask(ctx, "Select Play Mode:\n\t[1] 2 Players\n\t[2] Play against AI\n")
		if err != nil {
			return "", err
		}

		switch choice {
		case "1":
			return config.ModePvP, nil
		case "2":
			return that.chooseDifficulty(ctx)
		default:
			that.println("Unknown option", choice)
		}
	}
}

func (that *Console) chooseDifficulty(ctx context.Context) (string, error) {
	for {
		choice, err := that.ask(ctx, "\nSelect Difficulty Level:\n\t[1] Easy\n\t[2] Impossible\n")
		if err != nil {
			return "", err
		}

		switch choice {
		case "1":
			return config.ModeEasy, nil
		case "2":
			return config.ModeImpossible, nil
		default:
			that.println("Unknown option", choice)
		}
	}
}

// Play - runs the prompt loop until the session is finished. bot is nil when
// two people share the keyboard.
func (that *Console) Play(ctx context.Context, session gameSession, bot usecase.Strategy) error {
	log := that.logger.With("method", "Play")

	that.clear()
	for !session.IsFinished() {
		if bot != nil && session.Turn() == bot.Mark() {
			move, err := session.RequestAIMove(bot)
			if err != nil {
				return fmt.Errorf("AI selected wrong movement: %w", err)
			}
			log.Debug("AI moved", "move", move.String())
			continue
		}

		that.renderBoard(session.Board())
		if bot != nil {
			that.println("Your Turn!")
		} else {
			that.println(that.styleMark(session.Turn()), "Turn!")
		}

		row, err := that.ask(ctx, "Enter row (1, 2 or 3): ")
		if err != nil {
			return err
		}

		col, err := that.ask(ctx, "Enter column (1, 2 or 3): ")
		if err != nil {
			return err
		}

		_, err = session.SubmitUserMove(row, col)
		that.clear()
		switch {
		case errors.Is(err, apperror.ErrInvalidMove):
			that.println(invalidMovementMessage)
		case err != nil:
			return err
		}
	}

	that.renderBoard(session.Board())
	that.println(resultMessage(session.Outcome(), bot))

	return nil
}

func resultMessage(outcome entity.Outcome, bot usecase.Strategy) string {
	if outcome.Status == entity.StatusDraw {
		return "The game is a draw!"
	}

	if bot == nil {
		return fmt.Sprintf("Player %s wins!", outcome.Winner)
	}

	if outcome.Winner == bot.Mark() {
		return "You Lose!\nAI Rules!"
	}

	return "You Win!"
}

// ReportArena - prints the tally of a finished arena run.
func (that *Console) ReportArena(stats usecase.ArenaStats) {
	that.println(fmt.Sprintf("Games: %d\n%s wins: %d\n%s wins: %d\nDraws: %d",
		stats.Total(),
		that.styleMark(entity.PlayerX), stats.XWins,
		that.styleMark(entity.PlayerO), stats.OWins,
		stats.Draws,
	))
}
