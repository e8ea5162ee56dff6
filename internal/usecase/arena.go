package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type ArenaStats struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}

func (that ArenaStats) Total() int {
	return that.XWins + that.OWins + that.Draws
}

func (that *ArenaStats) record(outcome entity.Outcome) {
	switch {
	case outcome.Status == entity.StatusDraw:
		that.Draws++
	case outcome.Winner == entity.PlayerX:
		that.XWins++
	case outcome.Winner == entity.PlayerO:
		that.OWins++
	}
}

// Arena plays a series of games between two strategies. X always opens.
type Arena struct {
	logger  *slog.Logger
	playerX Strategy
	playerO Strategy
}

func NewArena(logger *slog.Logger, playerX, playerO Strategy) *Arena {
	return &Arena{
		logger:  logger,
		playerX: playerX,
		playerO: playerO,
	}
}

// Run - plays games one after another. On cancellation the stats of the
// finished games are returned together with the error.
func (that *Arena) Run(ctx context.Context, games int) (ArenaStats, error) {
	log := that.logger.With("component", "arena")

	var stats ArenaStats
	for i := range games {
		session := NewSession(that.logger)

		outcome, err := session.PlayOut(ctx, that.playerX, that.playerO)
		if err != nil {
			return stats, fmt.Errorf("game %d: %w", i+1, err)
		}

		stats.record(outcome)
	}

	log.Info("arena finished", "games", stats.Total(), "xWins", stats.XWins, "oWins", stats.OWins, "draws", stats.Draws)

	return stats, nil
}
