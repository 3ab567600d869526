package othello

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/boardgame-core/internal/apperror"
	"github.com/rocketscienceinc/boardgame-core/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(row, col int) entity.Position {
	return entity.Position{Row: row, Col: col}
}

func TestNewBoard(t *testing.T) {
	t.Run("Standard starting position", func(t *testing.T) {
		// When: creating the 8x8 board
		board := NewStandardBoard()

		// Then: the four centre cells are set
		assert.Equal(t, White, board.At(pos(3, 3)))
		assert.Equal(t, Black, board.At(pos(3, 4)))
		assert.Equal(t, Black, board.At(pos(4, 3)))
		assert.Equal(t, White, board.At(pos(4, 4)))
		assert.Equal(t, 60, board.Count(entity.EmptyCell))
	})

	t.Run("Rejects odd dimensions", func(t *testing.T) {
		_, err := NewBoard(7, 8)

		require.ErrorIs(t, err, apperror.ErrInvalidDimensions)
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("Black has four openings", func(t *testing.T) {
		// Given: the starting position
		board := NewStandardBoard()

		// When: computing black's legal moves
		moves := LegalMoves(board, Black)

		// Then: exactly four cells each flip one piece
		require.Len(t, moves, 4)
		for _, cell := range []entity.Position{pos(2, 3), pos(3, 2), pos(4, 5), pos(5, 4)} {
			require.Contains(t, moves, cell)
			assert.Len(t, moves[cell], 1, "cell %s", cell)
		}
		assert.Equal(t, []entity.Position{pos(3, 3)}, moves[pos(2, 3)])
	})

	t.Run("Moves are listed in row-major order", func(t *testing.T) {
		board := NewStandardBoard()

		moves := Moves(board, White)

		require.Len(t, moves, 4)
		assert.Equal(t, pos(2, 4), moves[0].Position)
		assert.Equal(t, pos(3, 5), moves[1].Position)
		assert.Equal(t, pos(4, 2), moves[2].Position)
		assert.Equal(t, pos(5, 3), moves[3].Position)
	})

	t.Run("Runs in several directions are combined", func(t *testing.T) {
		// Given: X at (2,2) can close runs to the east and to the south
		board, err := entity.ParseBoard(
			"..X..",
			"..O..",
			"XO.OX",
			"..O..",
			"..X..",
		)
		require.NoError(t, err)

		// When: computing the flips of the centre cell
		flips := Flips(board, entity.PlayerA, pos(2, 2))

		// Then: all four runs are captured
		assert.ElementsMatch(t, []entity.Position{pos(1, 2), pos(2, 1), pos(2, 3), pos(3, 2)}, flips)
	})

	t.Run("Runs ending in an empty cell or the edge capture nothing", func(t *testing.T) {
		board, err := entity.ParseBoard(
			".OO.",
			"....",
		)
		require.NoError(t, err)

		assert.Empty(t, Flips(board, entity.PlayerA, pos(0, 0)))
		assert.Empty(t, Flips(board, entity.PlayerA, pos(0, 3)))
		assert.Empty(t, LegalMoves(board, entity.PlayerA))
	})

	t.Run("Occupied and outside cells are never legal", func(t *testing.T) {
		board := NewStandardBoard()

		assert.Empty(t, Flips(board, Black, pos(3, 3)))
		assert.Empty(t, Flips(board, Black, pos(-1, 3)))
		assert.Empty(t, Flips(board, entity.EmptyCell, pos(2, 3)))
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("Black opens at (2,3)", func(t *testing.T) {
		// Given: the starting position
		board := NewStandardBoard()
		moves := LegalMoves(board, Black)

		// When: black plays (2,3) with its computed flip-list
		err := ApplyMove(board, Black, entity.Move{Position: pos(2, 3), Flips: moves[pos(2, 3)]})
		require.NoError(t, err)

		// Then: (3,3) turned black
		assert.Equal(t, Black, board.At(pos(2, 3)))
		assert.Equal(t, Black, board.At(pos(3, 3)))
		assert.Equal(t, 4, board.Count(Black))
		assert.Equal(t, 1, board.Count(White))
		assert.Equal(t, 59, board.Count(entity.EmptyCell))
	})

	t.Run("Flip-list order does not matter", func(t *testing.T) {
		board, err := entity.ParseBoard(
			"..X..",
			"..O..",
			"XO.OX",
			"..O..",
			"..X..",
		)
		require.NoError(t, err)

		err = ApplyMove(board, entity.PlayerA, entity.NewMove(2, 2, pos(3, 2), pos(2, 3), pos(2, 1), pos(1, 2)))

		require.NoError(t, err)
		assert.Equal(t, 0, board.Count(entity.PlayerB))
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		board := NewStandardBoard()
		before := board.Clone()

		err := ApplyMove(board, Black, entity.NewMove(3, 3, pos(3, 3)))

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.True(t, before.Equal(board))
	})

	t.Run("Rejects a forged flip-list", func(t *testing.T) {
		board := NewStandardBoard()
		before := board.Clone()

		for _, flips := range [][]entity.Position{
			nil,
			{pos(4, 4)},
			{pos(3, 3), pos(4, 4)},
		} {
			err := ApplyMove(board, Black, entity.Move{Position: pos(2, 3), Flips: flips})

			require.ErrorIs(t, err, apperror.ErrInvalidMove, "flips %v", flips)
		}
		assert.True(t, before.Equal(board))
	})

	t.Run("Rejects a cell without captures", func(t *testing.T) {
		board := NewStandardBoard()

		err := ApplyMove(board, Black, entity.NewMove(0, 0))

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Rejects a cell outside the board", func(t *testing.T) {
		board := NewStandardBoard()

		err := ApplyMove(board, Black, entity.NewMove(8, 0))

		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})
}

func TestOutcome(t *testing.T) {
	t.Run("Starting position is in progress", func(t *testing.T) {
		assert.Equal(t, entity.InProgress, Outcome(NewStandardBoard()))
	})

	t.Run("One side wiped out", func(t *testing.T) {
		board, err := entity.ParseBoard("OOO.", "....")
		require.NoError(t, err)

		assert.Equal(t, entity.WinB, Outcome(board))
	})

	t.Run("Blocked board with equal counts is a draw", func(t *testing.T) {
		board, err := entity.ParseBoard("XO", "OX")
		require.NoError(t, err)

		assert.Equal(t, entity.Draw, Outcome(board))
	})

	t.Run("Blocked board with more black pieces", func(t *testing.T) {
		board, err := entity.ParseBoard("XX", "OX")
		require.NoError(t, err)

		assert.Equal(t, entity.WinA, Outcome(board))
	})
}

func TestGreedy(t *testing.T) {
	t.Run("Prefers the larger capture", func(t *testing.T) {
		board, err := entity.ParseBoard(
			"XO...",
			".....",
			"XOO..",
		)
		require.NoError(t, err)

		move, err := Greedy(board, entity.PlayerA)

		require.NoError(t, err)
		assert.Equal(t, pos(2, 3), move.Position)
		assert.Len(t, move.Flips, 2)
	})

	t.Run("First move wins ties", func(t *testing.T) {
		move, err := Greedy(NewStandardBoard(), Black)

		require.NoError(t, err)
		assert.Equal(t, pos(2, 3), move.Position)
	})

	t.Run("Signals a pass", func(t *testing.T) {
		board, err := entity.ParseBoard("OX......")
		require.NoError(t, err)

		_, err = Greedy(board, entity.PlayerA)

		require.ErrorIs(t, err, apperror.ErrNoMovesAvailable)
	})
}

// TestLegalMoves_RandomPlayouts checks the move generator against direct recomputation
// on positions reached by seeded random play.
func TestLegalMoves_RandomPlayouts(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) //nolint: gosec // deterministic test data

	for game := 0; game < 20; game++ {
		board := NewStandardBoard()
		player := Black

		for Outcome(board) == entity.InProgress {
			moves := LegalMoves(board, player)

			// read-only queries are repeatable
			require.Equal(t, moves, LegalMoves(board, player))

			for _, cell := range board.EmptyCells() {
				flips, legal := moves[cell]
				if legal {
					require.NotEmpty(t, flips)
					require.Equal(t, entity.EmptyCell, board.At(cell))
				} else {
					require.Empty(t, Flips(board, player, cell))
				}
			}

			if len(moves) == 0 {
				player = player.Opponent()
				continue
			}

			list := Moves(board, player)
			move := list[rng.Intn(len(list))]
			require.NoError(t, ApplyMove(board, player, move))
			require.Equal(t, board.Size(), board.Count(Black)+board.Count(White)+board.Count(entity.EmptyCell))

			player = player.Opponent()
		}
	}
}
