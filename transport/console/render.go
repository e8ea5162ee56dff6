package console

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	colorX = "1" // red
	colorO = "4" // blue
)

func (that *Console) styleMark(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return that.out.String(string(mark)).Foreground(that.out.Color(colorX)).Bold().String()
	case entity.PlayerO:
		return that.out.String(string(mark)).Foreground(that.out.Color(colorO)).Bold().String()
	default:
		return " "
	}
}

// renderBoard - draws the board the way players read it, rows top to bottom.
func (that *Console) renderBoard(board entity.Board) {
	var sb strings.Builder
	for row := range entity.BoardSize {
		if row > 0 {
			sb.WriteString("----------\n")
		}
		cells := make([]string, 0, entity.BoardSize)
		for col := range entity.BoardSize {
			cells = append(cells, that.styleMark(board[row][col]))
		}
		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n\n")

	that.print(sb.String())
}
