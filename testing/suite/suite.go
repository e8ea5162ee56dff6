package suite

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"testing"
	"time"
)

const (
	maxWaitDuration = 120 * time.Second

	seed1 = 42
	seed2 = 1024
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Rand *rand.Rand
}

// New - returns a context bounded by maxWaitDuration and a suite with a logger
// and a deterministically seeded random source.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	level := slog.LevelInfo
	if testing.Verbose() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Rand:   rand.New(rand.NewPCG(seed1, seed2)), //nolint: gosec // it's ok
	}
}
