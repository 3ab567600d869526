package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/boardgame-core/internal/apperror"
)

// Position addresses a cell by row and column, both zero-based.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is a fixed-size grid of marks. Its dimensions never change after construction.
type Board struct {
	rows  int
	cols  int
	cells []Mark
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimensions, rows, cols)
	}

	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Mark, rows*cols),
	}, nil
}

// NewBoardWithLayout creates a board and places the initial marks.
func NewBoardWithLayout(rows, cols int, layout map[Position]Mark) (*Board, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}

	for pos, mark := range layout {
		if !board.Contains(pos.Row, pos.Col) {
			return nil, fmt.Errorf("%w: layout cell %s", apperror.ErrOutOfBounds, pos)
		}

		board.Set(pos.Row, pos.Col, mark)
	}

	return board, nil
}

// ParseBoard builds a board from its text form, one string per row:
// 'X' is PlayerA, 'O' is PlayerB and '.' is an empty cell.
func ParseBoard(lines ...string) (*Board, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", apperror.ErrInvalidDimensions)
	}

	cols := len([]rune(lines[0]))
	board, err := NewBoard(len(lines), cols)
	if err != nil {
		return nil, err
	}

	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrInvalidDimensions, row, len(runes), cols)
		}

		for col, r := range runes {
			mark, ok := ParseMark(r)
			if !ok {
				return nil, fmt.Errorf("unknown mark %q at row %d col %d", r, row, col)
			}
			board.Set(row, col, mark)
		}
	}

	return board, nil
}

func (that *Board) Rows() int {
	return that.rows
}

func (that *Board) Cols() int {
	return that.cols
}

// Size is the number of cells on the board.
func (that *Board) Size() int {
	return len(that.cells)
}

func (that *Board) Contains(row, col int) bool {
	return row >= 0 && row < that.rows && col >= 0 && col < that.cols
}

func (that *Board) Get(row, col int) (Mark, error) {
	if !that.Contains(row, col) {
		return EmptyCell, fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, row, col)
	}

	return that.cells[row*that.cols+col], nil
}

// Set changes one cell. Bounds and occupancy are the caller's responsibility.
func (that *Board) Set(row, col int, mark Mark) {
	that.cells[row*that.cols+col] = mark
}

// At returns the mark of an in-bounds cell. Out of bounds reads as EmptyCell.
func (that *Board) At(pos Position) Mark {
	if !that.Contains(pos.Row, pos.Col) {
		return EmptyCell
	}

	return that.cells[pos.Row*that.cols+pos.Col]
}

func (that *Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that.cells {
		if cell == mark {
			count++
		}
	}

	return count
}

// Index converts a position to its row-major cell index.
func (that *Board) Index(pos Position) int {
	return pos.Row*that.cols + pos.Col
}

// PositionOf converts a row-major cell index to a position.
func (that *Board) PositionOf(cell int) Position {
	return Position{Row: cell / that.cols, Col: cell % that.cols}
}

// EmptyCells lists the empty positions in row-major order.
func (that *Board) EmptyCells() []Position {
	empty := make([]Position, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == EmptyCell {
			empty = append(empty, that.PositionOf(i))
		}
	}

	return empty
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Board) Clone() *Board {
	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)

	return &Board{
		rows:  that.rows,
		cols:  that.cols,
		cells: cells,
	}
}

func (that *Board) Equal(other *Board) bool {
	if other == nil || that.rows != other.rows || that.cols != other.cols {
		return false
	}

	for i := range that.cells {
		if that.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// String renders the board in the format accepted by ParseBoard, rows separated by newlines.
func (that *Board) String() string {
	var sb strings.Builder

	for row := 0; row < that.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < that.cols; col++ {
			sb.WriteString(that.cells[row*that.cols+col].String())
		}
	}

	return sb.String()
}
