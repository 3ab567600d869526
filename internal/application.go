package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/boardgame-core/internal/config"
	"github.com/rocketscienceinc/boardgame-core/internal/usecase"
)

// RunApp - runs the configured self-play matches.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	runner := usecase.NewMatchRunner(logger, conf)

	log.Info("Starting matches", "rounds", conf.Matches)

	results, err := runner.RunAll(ctx)
	if err != nil {
		return fmt.Errorf("matches failed: %w", err)
	}

	for _, result := range results {
		log.Info("Final board",
			"game", result.Game,
			"session", result.SessionID,
			"outcome", result.Outcome.String(),
			"board", result.Board.String(),
		)
	}

	return nil
}
