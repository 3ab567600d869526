package tictactoe

import (
	"log/slog"

	"github.com/rocketscienceinc/boardgame-core/internal/entity"
)

// Rules plugs the line game into a turn controller. Automatic moves come from the minimax engine.
type Rules struct {
	engine *Engine
}

func NewRules(logger *slog.Logger) *Rules {
	return &Rules{
		engine: NewEngine(logger),
	}
}

func (that *Rules) Name() string {
	return "tictactoe"
}

func (that *Rules) Moves(board *entity.Board, _ entity.Mark) []entity.Move {
	return Moves(board)
}

func (that *Rules) Apply(board *entity.Board, player entity.Mark, move entity.Move) error {
	return ApplyMove(board, player, move)
}

func (that *Rules) Outcome(board *entity.Board) entity.Outcome {
	return Outcome(board)
}

func (that *Rules) Choose(board *entity.Board, player entity.Mark) (entity.Move, error) {
	pos, _, err := that.engine.BestMove(board, player)
	if err != nil {
		return entity.Move{}, err
	}

	return entity.Move{Position: pos}, nil
}
