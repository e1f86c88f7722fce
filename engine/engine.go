package engine

import (
	"mancala/game"
	"mancala/meta"
)

// MaxMoves caps how many moves a driver will apply to one game.
const MaxMoves = meta.MaxGameLength

// Update notifies an observer of an applied move and the state after it.
// The state is an independent copy.
type Update struct {
	Action game.Action
	State  game.State
	Hash   game.StateHash
}

// UpdateGetter returns the next pending update without blocking, or nil
// when none is pending or the game is over.
type UpdateGetter func() *Update

type Engine interface {
	Init() (game.State, UpdateGetter)
	Play(game.Action) error
}
