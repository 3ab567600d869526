package controller

import "github.com/rocketscienceinc/boardgame-core/internal/entity"

type Phase uint8

const (
	AwaitingMove Phase = iota
	GameOver
)

func (that Phase) String() string {
	if that == GameOver {
		return "game over"
	}
	return "awaiting move"
}

// State is AwaitingMove(Player) or GameOver(Outcome).
type State struct {
	Phase   Phase
	Player  entity.Mark
	Outcome entity.Outcome
}

func (that State) IsOver() bool {
	return that.Phase == GameOver
}

func (that State) String() string {
	if that.IsOver() {
		return that.Phase.String() + ": " + that.Outcome.String()
	}
	return that.Phase.String() + ": " + that.Player.String()
}

// Turn is one entry of the session history. Passed turns carry no move.
type Turn struct {
	Player entity.Mark
	Move   entity.Move
	Passed bool
}
