package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/boardgame-core/internal/apperror"
	"github.com/rocketscienceinc/boardgame-core/internal/entity"
)

const (
	PlayerX = entity.PlayerA
	PlayerO = entity.PlayerB

	Size       = 3
	lineLength = 3
)

// WinCombos holds the cell indexes of every line on the standard 3x3 board.
var WinCombos = winCombos(Size, Size)

func NewBoard() *entity.Board {
	board, err := entity.NewBoard(Size, Size)
	if err != nil {
		panic(fmt.Errorf("standard tic-tac-toe board: %w", err))
	}

	return board
}

// winCombos lists every straight run of lineLength cells: rows, columns and both diagonals.
func winCombos(rows, cols int) [][lineLength]int {
	steps := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

	var combos [][lineLength]int
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			for _, step := range steps {
				endRow := row + step[0]*(lineLength-1)
				endCol := col + step[1]*(lineLength-1)
				if endRow < 0 || endRow >= rows || endCol < 0 || endCol >= cols {
					continue
				}

				var combo [lineLength]int
				for i := range combo {
					combo[i] = (row+step[0]*i)*cols + col + step[1]*i
				}
				combos = append(combos, combo)
			}
		}
	}

	return combos
}

func combosFor(board *entity.Board) [][lineLength]int {
	if board.Rows() == Size && board.Cols() == Size {
		return WinCombos
	}

	return winCombos(board.Rows(), board.Cols())
}

// Winner returns the mark that owns a complete line, or EmptyCell when nobody does.
func Winner(board *entity.Board) entity.Mark {
	return winner(board, combosFor(board))
}

func winner(board *entity.Board, combos [][lineLength]int) entity.Mark {
	for _, combo := range combos {
		a := board.At(board.PositionOf(combo[0]))
		if a == entity.EmptyCell {
			continue
		}

		b, c := board.At(board.PositionOf(combo[1])), board.At(board.PositionOf(combo[2]))
		if a == b && b == c {
			return a
		}
	}

	return entity.EmptyCell
}

// Outcome reports a win as soon as a line is formed and a draw once the board is full.
func Outcome(board *entity.Board) entity.Outcome {
	return outcome(board, combosFor(board))
}

func outcome(board *entity.Board, combos [][lineLength]int) entity.Outcome {
	if mark := winner(board, combos); mark != entity.EmptyCell {
		return entity.OutcomeFor(mark)
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return entity.InProgress
	}

	return entity.Draw
}

// Moves lists every empty cell in row-major order, or nothing once the game is over.
func Moves(board *entity.Board) []entity.Move {
	if Outcome(board) != entity.InProgress {
		return nil
	}

	empty := board.EmptyCells()
	moves := make([]entity.Move, 0, len(empty))
	for _, pos := range empty {
		moves = append(moves, entity.Move{Position: pos})
	}

	return moves
}

// ApplyMove places player's mark on an empty cell of an unfinished board.
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

	if len(move.Flips) > 0 {
		return fmt.Errorf("%w: line game moves flip nothing", apperror.ErrInvalidMove)
	}

	if Outcome(board) != entity.InProgress {
		return apperror.ErrGameFinished
	}

	board.Set(move.Row, move.Col, player)

	return nil
}
