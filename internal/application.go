package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	cli := console.New(logger, os.Stdin, os.Stdout, conf.Color)

	mode := conf.Mode
	if mode == "" {
		chosen, err := cli.ChooseMode(ctx)
		if err != nil {
			return fmt.Errorf("failed to choose play mode: %w", err)
		}
		mode = chosen
	}

	log.Info("Starting game", "mode", mode)

	err := play(ctx, logger, conf, cli, mode)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, console.ErrInputClosed):
		log.Info("Game interrupted, shutting down", "reason", err)
		return nil
	case err != nil:
		return err
	default:
		return nil
	}
}

func play(ctx context.Context, logger *slog.Logger, conf *config.Config, cli *console.Console, mode string) error {
	switch mode {
	case config.ModeArena:
		return runArena(ctx, logger, conf, cli)
	case config.ModePvP:
		return cli.Play(ctx, usecase.NewSession(logger), nil)
	default:
		bot, err := service.NewStrategy(mode, entity.Mark(conf.AIMark), service.StrategyOptions{
			Logger:   logger,
			Parallel: conf.ParallelSearch,
		})
		if err != nil {
			return fmt.Errorf("failed to create bot: %w", err)
		}

		return cli.Play(ctx, usecase.NewSession(logger), bot)
	}
}

// runArena - plays the configured bot against a random opponent.
func runArena(ctx context.Context, logger *slog.Logger, conf *config.Config, cli *console.Console) error {
	seed := conf.Arena.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rnd := rand.New(rand.NewPCG(seed, seed)) //nolint: gosec // it's ok

	botMark := entity.Mark(conf.AIMark)
	bot, err := service.NewStrategy(conf.Arena.Difficulty, botMark, service.StrategyOptions{
		Logger:   logger,
		Rand:     rnd,
		Parallel: conf.ParallelSearch,
	})
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}
	opponent := service.NewRandomStrategy(botMark.Opponent(), rnd)

	playerX, playerO := bot, service.Strategy(opponent)
	if botMark == entity.PlayerO {
		playerX, playerO = opponent, bot
	}

	stats, err := usecase.NewArena(logger, playerX, playerO).Run(ctx, conf.Arena.Games)
	cli.ReportArena(stats)
	if err != nil {
		return fmt.Errorf("arena stopped: %w", err)
	}

	return nil
}
