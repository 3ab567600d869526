package controller

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/boardgame-core/internal/apperror"
	"github.com/rocketscienceinc/boardgame-core/internal/entity"
)

// Rules is the game-specific part of a controller: move generation, move application,
// terminal detection and automatic move choice.
type Rules interface {
	Name() string
	Moves(board *entity.Board, player entity.Mark) []entity.Move
	Apply(board *entity.Board, player entity.Mark, move entity.Move) error
	Outcome(board *entity.Board) entity.Outcome
	Choose(board *entity.Board, player entity.Mark) (entity.Move, error)
}

// Controller owns one game session. It is the only place where the board is mutated.
type Controller struct {
	id     string
	logger *slog.Logger
	rules  Rules

	initial *entity.Board
	first   entity.Mark

	board   *entity.Board
	state   State
	history []Turn
}

// New starts a session on a copy of board with first to move. If first has no legal move
// the turn passes straight to the opponent.
func New(logger *slog.Logger, rules Rules, board *entity.Board, first entity.Mark) (*Controller, error) {
	if !first.IsPlayer() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownPlayer, first)
	}

	id := uuid.NewString()

	controller := &Controller{
		id:      id,
		logger:  logger.With("component", "controller", "game", rules.Name(), "session", id),
		rules:   rules,
		initial: board.Clone(),
		first:   first,
	}
	controller.start()

	return controller, nil
}

func (that *Controller) ID() string {
	return that.id
}

func (that *Controller) State() State {
	return that.state
}

func (that *Controller) Outcome() entity.Outcome {
	return that.state.Outcome
}

// Board returns a copy of the current board.
func (that *Controller) Board() *entity.Board {
	return that.board.Clone()
}

// History returns the moves and passes played so far, oldest first.
func (that *Controller) History() []Turn {
	history := make([]Turn, len(that.history))
	copy(history, that.history)

	return history
}

// LegalMoves lists the moves of the player to move, or nothing once the game is over.
func (that *Controller) LegalMoves() []entity.Move {
	if that.state.Phase == GameOver {
		return nil
	}

	return that.rules.Moves(that.board, that.state.Player)
}

// Play makes player's move on pos, with the capture evidence computed by the rules.
func (that *Controller) Play(player entity.Mark, pos entity.Position) (State, error) {
	if err := that.confirmTurn(player); err != nil {
		return that.state, err
	}

	if _, err := that.board.Get(pos.Row, pos.Col); err != nil {
		return that.state, err
	}

	for _, move := range that.rules.Moves(that.board, player) {
		if move.Position == pos {
			return that.apply(player, move)
		}
	}

	return that.state, fmt.Errorf("%w: %s cannot play %s", apperror.ErrInvalidMove, player, pos)
}

// Apply makes player's move exactly as given. The rules reject evidence that does not
// match the board.
func (that *Controller) Apply(player entity.Mark, move entity.Move) (State, error) {
	if err := that.confirmTurn(player); err != nil {
		return that.state, err
	}

	return that.apply(player, move)
}

// PlayBest lets the rules choose player's move and plays it.
func (that *Controller) PlayBest(player entity.Mark) (State, error) {
	if err := that.confirmTurn(player); err != nil {
		return that.state, err
	}

	move, err := that.rules.Choose(that.board, player)
	if err != nil {
		return that.state, fmt.Errorf("failed to choose move: %w", err)
	}

	return that.apply(player, move)
}

// Reset restores the initial board and first player.
func (that *Controller) Reset() {
	that.logger.Debug("session reset")

	that.start()
}

func (that *Controller) start() {
	that.board = that.initial.Clone()
	that.history = nil
	that.settle(that.first)
}

func (that *Controller) confirmTurn(player entity.Mark) error {
	if that.state.Phase == GameOver {
		return apperror.ErrGameFinished
	}

	if player != that.state.Player {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.state.Player)
	}

	return nil
}

func (that *Controller) apply(player entity.Mark, move entity.Move) (State, error) {
	if err := that.rules.Apply(that.board, player, move); err != nil {
		return that.state, fmt.Errorf("failed to apply move: %w", err)
	}

	that.history = append(that.history, Turn{Player: player, Move: move})
	that.settle(player.Opponent())

	return that.state, nil
}

// settle moves the state machine forward with next nominally to move.
func (that *Controller) settle(next entity.Mark) {
	if outcome := that.rules.Outcome(that.board); outcome.IsFinished() {
		that.finish(outcome)
		return
	}

	if len(that.rules.Moves(that.board, next)) > 0 {
		that.state = State{Phase: AwaitingMove, Player: next}
		return
	}

	that.history = append(that.history, Turn{Player: next, Passed: true})
	that.logger.Debug("player passes", "player", next.String())

	if other := next.Opponent(); len(that.rules.Moves(that.board, other)) > 0 {
		that.state = State{Phase: AwaitingMove, Player: other}
		return
	}

	// rules that report InProgress always leave someone a move
	that.logger.Warn("no legal moves for either side on an unfinished board")
	that.finish(entity.Draw)
}

func (that *Controller) finish(outcome entity.Outcome) {
	that.state = State{Phase: GameOver, Outcome: outcome}

	that.logger.Info("game over",
		"outcome", outcome.String(),
		"turns", len(that.history),
	)
}
