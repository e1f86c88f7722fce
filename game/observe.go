package game

import (
	"fmt"
	"strings"
)

// CellStates is the number of distinct bean counts the observation
// tensor can encode per cell. Every reachable count fits: a single cell
// can never hold more than TotalBeans.
const CellStates = TotalBeans + 1

// checkPlayer fails fast on an out-of-range player index. Observation
// queries are the one place the engine validates its caller.
func checkPlayer(player int) {
	if player < 0 || player >= NumPlayers {
		panic(fmt.Sprintf("player index %d out of range [0, %d)", player, NumPlayers))
	}
}

// ObservationTensor encodes the board one-hot as a flattened
// (CellStates x TotalPits) grid: for each cell, a 1.0 at the row matching
// its current bean count, 0.0 elsewhere. Both players observe the same
// full board.
func (gs *GameState) ObservationTensor(player int) []float32 {
	checkPlayer(player)

	values := make([]float32, CellStates*TotalPits)
	for cell, beans := range gs.Board {
		values[beans*TotalPits+cell] = 1.0
	}
	return values
}

// ObservationString is the textual board dump.
func (gs *GameState) ObservationString(player int) string {
	checkPlayer(player)
	return gs.Board.String()
}

// InformationStateString is the space-separated history of applied
// actions; the game is perfect-information, so the full history is the
// information state for either player.
func (gs *GameState) InformationStateString(player int) string {
	checkPlayer(player)

	parts := make([]string, len(gs.history))
	for i, action := range gs.history {
		parts[i] = action.String()
	}
	return strings.Join(parts, " ")
}
