package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/boardgame-core/internal/apperror"
	"github.com/rocketscienceinc/boardgame-core/internal/entity"
)

// Terminal scores from the searching side's point of view. They are not adjusted by depth.
const (
	ScoreWin  = 1
	ScoreDraw = 0
	ScoreLoss = -1
)

// Engine picks moves by exhaustive minimax search.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{
		logger: logger.With("component", "minimax"),
	}
}

// BestMove returns the cell that maximises player's minimax score together with that score.
// The search works on a copy, the given board is never modified.
func (that *Engine) BestMove(board *entity.Board, player entity.Mark) (entity.Position, int, error) {
	if !player.IsPlayer() {
		return entity.Position{}, 0, fmt.Errorf("%w: %s", apperror.ErrUnknownPlayer, player)
	}

	s := &search{
		board:     board.Clone(),
		combos:    combosFor(board),
		maximizer: player,
	}

	if result := outcome(s.board, s.combos); result != entity.InProgress {
		return entity.Position{}, 0, fmt.Errorf("%w: game is %s", apperror.ErrNoMovesAvailable, result)
	}

	empty := s.board.EmptyCells()

	// a move that completes a line ends the game at once
	for _, pos := range empty {
		s.board.Set(pos.Row, pos.Col, player)
		won := winner(s.board, s.combos) == player
		s.board.Set(pos.Row, pos.Col, entity.EmptyCell)

		if won {
			that.logger.Debug("winning move found", "player", player.String(), "cell", board.Index(pos))
			return pos, ScoreWin, nil
		}
	}

	bestScore := ScoreLoss - 1
	var bestPos entity.Position
	for _, pos := range empty {
		s.board.Set(pos.Row, pos.Col, player)
		score := s.minimax(false)
		s.board.Set(pos.Row, pos.Col, entity.EmptyCell)

		if score > bestScore {
			bestScore = score
			bestPos = pos
		}
	}

	that.logger.Debug("best move chosen",
		"player", player.String(),
		"cell", board.Index(bestPos),
		"score", bestScore,
		"nodes", s.nodes,
	)

	return bestPos, bestScore, nil
}

// search is the state of one BestMove call. It places and removes marks on its own board.
type search struct {
	board     *entity.Board
	combos    [][lineLength]int
	maximizer entity.Mark
	nodes     int
}

func (that *search) minimax(maximizing bool) int {
	that.nodes++

	switch result := outcome(that.board, that.combos); result {
	case entity.InProgress:
	case entity.Draw:
		return ScoreDraw
	default:
		if result.Winner() == that.maximizer {
			return ScoreWin
		}
		return ScoreLoss
	}

	mark, best := that.maximizer, ScoreLoss-1
	if !maximizing {
		mark, best = that.maximizer.Opponent(), ScoreWin+1
	}

	for cell := 0; cell < that.board.Size(); cell++ {
		pos := that.board.PositionOf(cell)
		if that.board.At(pos) != entity.EmptyCell {
			continue
		}

		that.board.Set(pos.Row, pos.Col, mark)
		score := that.minimax(!maximizing)
		that.board.Set(pos.Row, pos.Col, entity.EmptyCell)

		if (maximizing && score > best) || (!maximizing && score < best) {
			best = score
		}
	}

	return best
}
