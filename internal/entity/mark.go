package entity

import "fmt"

// Mark is the content of a single board cell.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerA
	PlayerB
)

// Opponent returns the other player. EmptyCell has no opponent and is returned unchanged.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return that
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerA || that == PlayerB
}

func (that Mark) String() string {
	switch that {
	case EmptyCell:
		return "."
	case PlayerA:
		return "X"
	case PlayerB:
		return "O"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(that))
	}
}

// ParseMark is the inverse of Mark.String.
func ParseMark(r rune) (Mark, bool) {
	switch r {
	case '.', ' ', '_':
		return EmptyCell, true
	case 'X', 'x':
		return PlayerA, true
	case 'O', 'o':
		return PlayerB, true
	default:
		return EmptyCell, false
	}
}
