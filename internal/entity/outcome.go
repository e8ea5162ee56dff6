package entity

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"
)

// Outcome is derived from board contents. Winner is set only when Status is StatusWon.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func Ongoing() Outcome {
	return Outcome{Status: StatusOngoing}
}

func Won(mark Mark) Outcome {
	return Outcome{Status: StatusWon, Winner: mark}
}

func Drawn() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWon:
		return "player " + string(that.Winner) + " wins"
	case StatusDraw:
		return "draw"
	default:
		return string(StatusOngoing)
	}
}
