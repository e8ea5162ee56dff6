package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Game is the live state of one session: the canonical board, the mark on turn
// and the outcome recomputed after every applied move.
type Game struct {
	ID      string  `json:"id"`
	Board   Board   `json:"board"`
	Turn    Mark    `json:"player_turn"`
	Outcome Outcome `json:"outcome"`
	Moves   int     `json:"moves"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		Board:   NewBoard(),
		Turn:    PlayerX,
		Outcome: Ongoing(),
	}
}

func (that *Game) IsFinished() bool {
	return that.Outcome.IsFinished()
}

func (that *Game) IsOngoing() bool {
	return that.Outcome.Status == StatusOngoing
}

// ConfirmOngoingState - returns an error unless further moves are allowed.
func (that *Game) ConfirmOngoingState() error {
	switch that.Outcome.Status {
	case StatusOngoing:
		return nil
	case StatusWon, StatusDraw:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("unknown game status: %s", that.Outcome.Status)
	}
}
