package usecase

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/boardgame-core/internal/apperror"
	"github.com/rocketscienceinc/boardgame-core/internal/config"
	"github.com/rocketscienceinc/boardgame-core/internal/entity"
	"github.com/rocketscienceinc/boardgame-core/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *config.Config {
	return &config.Config{
		LogLevel:  "info",
		Matches:   1,
		Othello:   config.Othello{Rows: 8, Cols: 8, FirstPlayer: "black"},
		TicTacToe: config.TicTacToe{FirstPlayer: "X"},
	}
}

func TestMatchRunner_PlayTicTacToe(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a runner with default settings
	runner := NewMatchRunner(st.Logger, defaultConfig())

	// When: minimax plays both sides
	result, err := runner.PlayTicTacToe(ctx)
	require.NoError(t, err)

	// Then: the game is drawn on a full board
	assert.Equal(t, "tictactoe", result.Game)
	assert.Equal(t, entity.Draw, result.Outcome)
	assert.Equal(t, 9, result.Turns)
	assert.Zero(t, result.Passes)
	assert.True(t, result.Board.IsFull())
}

func TestMatchRunner_PlayOthello(t *testing.T) {
	t.Run("Standard board", func(t *testing.T) {
		ctx, st := suite.New(t)
		runner := NewMatchRunner(st.Logger, defaultConfig())

		// When: the greedy chooser plays both sides
		result, err := runner.PlayOthello(ctx)
		require.NoError(t, err)

		// Then: the game finished and no cells were lost
		assert.NotEqual(t, entity.InProgress, result.Outcome)
		board := result.Board
		assert.Equal(t, 64, board.Count(entity.PlayerA)+board.Count(entity.PlayerB)+board.Count(entity.EmptyCell))
		assert.Equal(t, board.Size()-4, result.Turns+board.Count(entity.EmptyCell))
	})

	t.Run("Small board from config", func(t *testing.T) {
		ctx, st := suite.New(t)
		conf := defaultConfig()
		conf.Othello.Rows, conf.Othello.Cols = 4, 4
		runner := NewMatchRunner(st.Logger, conf)

		result, err := runner.PlayOthello(ctx)
		require.NoError(t, err)

		assert.Equal(t, 16, result.Board.Size())
		assert.NotEqual(t, entity.InProgress, result.Outcome)
	})

	t.Run("Odd dimensions are rejected", func(t *testing.T) {
		ctx, st := suite.New(t)
		conf := defaultConfig()
		conf.Othello.Rows = 5
		runner := NewMatchRunner(st.Logger, conf)

		_, err := runner.PlayOthello(ctx)

		require.ErrorIs(t, err, apperror.ErrInvalidDimensions)
	})

	t.Run("Unknown first player", func(t *testing.T) {
		ctx, st := suite.New(t)
		conf := defaultConfig()
		conf.Othello.FirstPlayer = "red"
		runner := NewMatchRunner(st.Logger, conf)

		_, err := runner.PlayOthello(ctx)

		require.ErrorIs(t, err, config.ErrUnknownPlayerName)
	})
}

func TestMatchRunner_RunAll(t *testing.T) {
	t.Run("Plays every round", func(t *testing.T) {
		ctx, st := suite.New(t)
		conf := defaultConfig()
		conf.Matches = 2
		runner := NewMatchRunner(st.Logger, conf)

		results, err := runner.RunAll(ctx)
		require.NoError(t, err)

		require.Len(t, results, 4)
		assert.Equal(t, "tictactoe", results[0].Game)
		assert.Equal(t, "othello", results[1].Game)
		// the same rules and settings give the same games
		assert.True(t, results[1].Board.Equal(results[3].Board))
	})

	t.Run("Stops on a cancelled context", func(t *testing.T) {
		_, st := suite.New(t)
		runner := NewMatchRunner(st.Logger, defaultConfig())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results, err := runner.RunAll(ctx)

		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, results)
	})
}
