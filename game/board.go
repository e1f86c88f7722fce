package game

import (
	"strconv"
	"strings"
)

const (
	// NumPits is the number of row pits per player.
	NumPits = 6
	// TotalPits is the full ring size: two rows of six plus both stores.
	TotalPits = NumPits*2 + 2
	// InitialBeans is the seed count per row pit at game start.
	InitialBeans = 4
	// TotalBeans is conserved across the whole game: beans only move
	// between pits, they are never removed from the ring.
	TotalBeans = InitialBeans * NumPits * 2

	NumPlayers = 2
)

// Board is the ring of bean counts. Index 0 is player 1's store, index
// TotalPits/2 is player 0's store, 1..6 are player 0's row pits and
// 8..13 are player 1's row pits.
type Board []int

// NewBoard seeds every row pit with InitialBeans and both stores with 0.
func NewBoard() Board {
	b := make(Board, TotalPits)
	for i := range b {
		b[i] = InitialBeans
	}
	b[0] = 0
	b[len(b)/2] = 0
	return b
}

// HomePit returns the store index for a player: 7 for player 0, 0 for
// player 1.
func HomePit(player int) int {
	if player == 0 {
		return TotalPits / 2
	}
	return 0
}

// Sum returns the total bean count over the whole ring.
func (b Board) Sum() int {
	total := 0
	for _, beans := range b {
		total += beans
	}
	return total
}

// RowEmpty reports whether all six of a player's row pits are empty.
func (b Board) RowEmpty(player int) bool {
	for i := 0; i < NumPits; i++ {
		if b[rowPit(player, i)] > 0 {
			return false
		}
	}
	return true
}

// rowPit maps a player and a row offset 0..5 to the ring index. Player
// 1's row runs from the far end of the ring downwards.
func rowPit(player, i int) int {
	if player == 0 {
		return i + 1
	}
	return TotalPits - 1 - i
}

func (b Board) Copy() Board {
	dup := make(Board, len(b))
	copy(dup, b)
	return dup
}

// String renders the three-line board dump: player 1's row from the far
// end of the ring, the two stores, then player 0's row.
func (b Board) String() string {
	var sb strings.Builder
	const separator = "-"

	sb.WriteString(separator)
	for i := 0; i < NumPits; i++ {
		sb.WriteString(strconv.Itoa(b[len(b)-1-i]))
		sb.WriteString(separator)
	}
	sb.WriteString("\n")

	sb.WriteString(strconv.Itoa(b[0]))
	for i := 0; i < NumPits*2-1; i++ {
		sb.WriteString(separator)
	}
	sb.WriteString(strconv.Itoa(b[len(b)/2]))
	sb.WriteString("\n")

	sb.WriteString(separator)
	for i := 0; i < NumPits; i++ {
		sb.WriteString(strconv.Itoa(b[i+1]))
		sb.WriteString(separator)
	}
	return sb.String()
}
