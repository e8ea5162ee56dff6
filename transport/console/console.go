package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var ErrInputClosed = errors.New("input closed")

type gameSession interface {
	Board() entity.Board
	Turn() entity.Mark
	Outcome() entity.Outcome
	IsFinished() bool

	SubmitUserMove(row, col string) (entity.Move, error)
	RequestAIMove(bot usecase.Strategy) (entity.Move, error)
}

// Console is the terminal front end: it prompts, renders the board and
// forwards moves to a session. It holds no game rules of its own.
type Console struct {
	logger *slog.Logger
	out    *termenv.Output
	color  bool

	lines <-chan string
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, color bool) *Console {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI
	}

	return &Console{
		logger: logger.With("component", "console"),
		out:    termenv.NewOutput(out, termenv.WithProfile(profile)),
		color:  color,
		lines:  readLines(in),
	}
}

// readLines - feeds input lines into a channel so prompts can be abandoned on cancellation.
func readLines(in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines
}

// ask - prints prompt and waits for the next input line.
func (that *Console) ask(ctx context.Context, prompt string) (string, error) {
	that.print(prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", ErrInputClosed
		}
		return strings.TrimSpace(line), nil
	}
}

func (that *Console) print(a ...any) {
	fmt.Fprint(that.out, a...)
}

func (that *Console) println(a ...any) {
	fmt.Fprintln(that.out, a...)
}

func (that *Console) clear() {
	if that.color {
		that.out.ClearScreen()
	}
}
