package othello

import (
	"fmt"

	"github.com/rocketscienceinc/boardgame-core/internal/apperror"
	"github.com/rocketscienceinc/boardgame-core/internal/entity"
)

// Flips returns the opponent pieces that placing player's piece at pos would turn over.
// An empty result means the placement is not a legal move.
func Flips(board *entity.Board, player entity.Mark, pos entity.Position) []entity.Position {
	if !player.IsPlayer() || !board.Contains(pos.Row, pos.Col) || board.At(pos) != entity.EmptyCell {
		return nil
	}

	opponent := player.Opponent()

	var flips []entity.Position
	for _, dir := range directions {
		var run []entity.Position

		cur := entity.Position{Row: pos.Row + dir.Row, Col: pos.Col + dir.Col}
		for board.Contains(cur.Row, cur.Col) && board.At(cur) == opponent {
			run = append(run, cur)
			cur = entity.Position{Row: cur.Row + dir.Row, Col: cur.Col + dir.Col}
		}

		// the run only counts when it is closed by one of the player's own pieces
		if len(run) > 0 && board.Contains(cur.Row, cur.Col) && board.At(cur) == player {
			flips = append(flips, run...)
		}
	}

	return flips
}

// LegalMoves maps every legal target cell to its flip-list.
func LegalMoves(board *entity.Board, player entity.Mark) map[entity.Position][]entity.Position {
	moves := make(map[entity.Position][]entity.Position)
	for _, move := range Moves(board, player) {
		moves[move.Position] = move.Flips
	}

	return moves
}

// Moves lists the legal moves of player in row-major order.
func Moves(board *entity.Board, player entity.Mark) []entity.Move {
	var moves []entity.Move
	for _, pos := range board.EmptyCells() {
		if flips := Flips(board, player, pos); len(flips) > 0 {
			moves = append(moves, entity.Move{Position: pos, Flips: flips})
		}
	}

	return moves
}

func HasLegalMove(board *entity.Board, player entity.Mark) bool {
	for _, pos := range board.EmptyCells() {
		if len(Flips(board, player, pos)) > 0 {
			return true
		}
	}

	return false
}

// ApplyMove places player's piece and turns over the flip-list. The flip-list must be exactly
// the one a fresh computation yields for this board, player and cell; otherwise nothing changes.
func ApplyMove(board *entity.Board, player entity.Mark, move entity.Move) error {
	if !player.IsPlayer() {
		return fmt.Errorf("%w: %s", apperror.ErrUnknownPlayer, player)
	}

	mark, err := board.Get(move.Row, move.Col)
	if err != nil {
		return err
	}

	if mark != entity.EmptyCell {
		return fmt.Errorf("%w: cell %s is occupied", apperror.ErrInvalidMove, move.Position)
	}

	expected := Flips(board, player, move.Position)
	if len(expected) == 0 {
		return fmt.Errorf("%w: cell %s captures nothing", apperror.ErrInvalidMove, move.Position)
	}

	if !sameCells(expected, move.Flips) {
		return fmt.Errorf("%w: flip-list does not match cell %s", apperror.ErrInvalidMove, move.Position)
	}

	board.Set(move.Row, move.Col, player)
	for _, flip := range expected {
		board.Set(flip.Row, flip.Col, player)
	}

	return nil
}

// Outcome is InProgress while either side can still move, otherwise the larger side wins.
func Outcome(board *entity.Board) entity.Outcome {
	if HasLegalMove(board, Black) || HasLegalMove(board, White) {
		return entity.InProgress
	}

	black, white := Score(board)
	switch {
	case black > white:
		return entity.WinA
	case white > black:
		return entity.WinB
	default:
		return entity.Draw
	}
}

// Greedy picks the move that turns over the most pieces; the first one in row-major order wins ties.
func Greedy(board *entity.Board, player entity.Mark) (entity.Move, error) {
	moves := Moves(board, player)
	if len(moves) == 0 {
		return entity.Move{}, fmt.Errorf("%w: %s must pass", apperror.ErrNoMovesAvailable, player)
	}

	best := moves[0]
	for _, move := range moves[1:] {
		if len(move.Flips) > len(best.Flips) {
			best = move
		}
	}

	return best, nil
}

func sameCells(expected, actual []entity.Position) bool {
	if len(expected) != len(actual) {
		return false
	}

	seen := make(map[entity.Position]struct{}, len(expected))
	for _, pos := range expected {
		seen[pos] = struct{}{}
	}

	for _, pos := range actual {
		if _, ok := seen[pos]; !ok {
			return false
		}
		delete(seen, pos)
	}

	return len(seen) == 0
}
