package apperror

import "errors"

var (
	ErrOutOfBounds       = errors.New("cell is out of bounds")
	ErrInvalidMove       = errors.New("invalid move")
	ErrNoMovesAvailable  = errors.New("no moves available")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrUnknownPlayer     = errors.New("unknown player")

	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
)
