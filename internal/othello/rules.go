package othello

import "github.com/rocketscienceinc/boardgame-core/internal/entity"

// Rules plugs the capture game into a turn controller.
type Rules struct{}

func (Rules) Name() string {
	return "othello"
}

func (Rules) Moves(board *entity.Board, player entity.Mark) []entity.Move {
	return Moves(board, player)
}

func (Rules) Apply(board *entity.Board, player entity.Mark, move entity.Move) error {
	return ApplyMove(board, player, move)
}

func (Rules) Outcome(board *entity.Board) entity.Outcome {
	return Outcome(board)
}

func (Rules) Choose(board *entity.Board, player entity.Mark) (entity.Move, error) {
	return Greedy(board, player)
}
