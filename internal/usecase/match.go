package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/boardgame-core/internal/config"
	"github.com/rocketscienceinc/boardgame-core/internal/controller"
	"github.com/rocketscienceinc/boardgame-core/internal/entity"
	"github.com/rocketscienceinc/boardgame-core/internal/othello"
	"github.com/rocketscienceinc/boardgame-core/internal/tictactoe"
)

// MatchResult summarises one finished self-play game.
type MatchResult struct {
	SessionID string
	Game      string
	Outcome   entity.Outcome
	Turns     int
	Passes    int
	Board     *entity.Board
}

// MatchRunner plays games where both sides use the rules' own move choice.
type MatchRunner struct {
	logger *slog.Logger
	conf   *config.Config
}

func NewMatchRunner(logger *slog.Logger, conf *config.Config) *MatchRunner {
	return &MatchRunner{
		logger: logger,
		conf:   conf,
	}
}

// RunAll plays conf.Matches rounds, each round one tic-tac-toe and one othello game.
func (that *MatchRunner) RunAll(ctx context.Context) ([]*MatchResult, error) {
	results := make([]*MatchResult, 0, 2*that.conf.Matches)

	for round := 0; round < that.conf.Matches; round++ {
		result, err := that.PlayTicTacToe(ctx)
		if err != nil {
			return results, fmt.Errorf("tic-tac-toe round %d: %w", round, err)
		}
		results = append(results, result)

		result, err = that.PlayOthello(ctx)
		if err != nil {
			return results, fmt.Errorf("othello round %d: %w", round, err)
		}
		results = append(results, result)
	}

	return results, nil
}

func (that *MatchRunner) PlayTicTacToe(ctx context.Context) (*MatchResult, error) {
	first, err := that.conf.TicTacToe.First()
	if err != nil {
		return nil, fmt.Errorf("failed to read first player: %w", err)
	}

	session, err := controller.New(that.logger, tictactoe.NewRules(that.logger), tictactoe.NewBoard(), first)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return that.play(ctx, "tictactoe", session)
}

func (that *MatchRunner) PlayOthello(ctx context.Context) (*MatchResult, error) {
	first, err := that.conf.Othello.First()
	if err != nil {
		return nil, fmt.Errorf("failed to read first player: %w", err)
	}

	board, err := othello.NewBoard(that.conf.Othello.Rows, that.conf.Othello.Cols)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	session, err := controller.New(that.logger, othello.Rules{}, board, first)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return that.play(ctx, "othello", session)
}

func (that *MatchRunner) play(ctx context.Context, game string, session *controller.Controller) (*MatchResult, error) {
	log := that.logger.With("method", "play", "game", game, "session", session.ID())

	for state := session.State(); !state.IsOver(); state = session.State() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("match interrupted: %w", err)
		}

		if _, err := session.PlayBest(state.Player); err != nil {
			return nil, fmt.Errorf("failed to make turn: %w", err)
		}
	}

	result := &MatchResult{
		SessionID: session.ID(),
		Game:      game,
		Outcome:   session.Outcome(),
		Board:     session.Board(),
	}

	for _, turn := range session.History() {
		if turn.Passed {
			result.Passes++
		} else {
			result.Turns++
		}
	}

	log.Info("match finished", "outcome", result.Outcome.String(), "turns", result.Turns, "passes", result.Passes)

	return result, nil
}
