package entity

import "fmt"

// Move is a candidate action. Flips is only populated by capture games.
type Move struct {
	Position
	Flips []Position `json:"flips,omitempty"`
}

func NewMove(row, col int, flips ...Position) Move {
	return Move{
		Position: Position{Row: row, Col: col},
		Flips:    flips,
	}
}

// Outcome is derived from a board, never stored next to it.
type Outcome uint8

const (
	InProgress Outcome = iota
	WinA
	WinB
	Draw
)

// OutcomeFor maps a winning mark to its outcome. EmptyCell means a draw.
func OutcomeFor(winner Mark) Outcome {
	switch winner {
	case PlayerA:
		return WinA
	case PlayerB:
		return WinB
	default:
		return Draw
	}
}

// Winner returns the winning mark, or EmptyCell for a draw or an unfinished game.
func (that Outcome) Winner() Mark {
	switch that {
	case WinA:
		return PlayerA
	case WinB:
		return PlayerB
	default:
		return EmptyCell
	}
}

func (that Outcome) IsFinished() bool {
	return that != InProgress
}

func (that Outcome) String() string {
	switch that {
	case InProgress:
		return "in progress"
	case WinA:
		return "win " + PlayerA.String()
	case WinB:
		return "win " + PlayerB.String()
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(that))
	}
}
