package othello

import (
	"fmt"

	"github.com/rocketscienceinc/boardgame-core/internal/apperror"
	"github.com/rocketscienceinc/boardgame-core/internal/entity"
)

const (
	Black = entity.PlayerA
	White = entity.PlayerB

	Size = 8
)

// directions lists the eight compass steps as (row, col) deltas.
var directions = [8]entity.Position{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

// NewBoard returns the starting position: two white and two black pieces crossed in the centre.
func NewBoard(rows, cols int) (*entity.Board, error) {
	if rows < 2 || cols < 2 || rows%2 != 0 || cols%2 != 0 {
		return nil, fmt.Errorf("%w: othello needs even dimensions, got %dx%d", apperror.ErrInvalidDimensions, rows, cols)
	}

	midRow, midCol := rows/2, cols/2

	return entity.NewBoardWithLayout(rows, cols, map[entity.Position]entity.Mark{
		{Row: midRow - 1, Col: midCol - 1}: White,
		{Row: midRow - 1, Col: midCol}:     Black,
		{Row: midRow, Col: midCol - 1}:     Black,
		{Row: midRow, Col: midCol}:         White,
	})
}

// NewStandardBoard returns the 8x8 starting position.
func NewStandardBoard() *entity.Board {
	board, err := NewBoard(Size, Size)
	if err != nil {
		panic(fmt.Errorf("standard othello board: %w", err))
	}

	return board
}

// Score returns the piece count of each side.
func Score(board *entity.Board) (int, int) {
	return board.Count(Black), board.Count(White)
}
