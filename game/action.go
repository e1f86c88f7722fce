package game

import "strconv"

// Action identifies the row pit to sow from. Legal actions are always
// non-empty row pits of the player to move, never a store index.
type Action int

func (a Action) String() string {
	return strconv.Itoa(int(a))
}
