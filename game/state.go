package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

type StateHash uint64

// State is the capability boundary a host framework drives the engine
// through. GameState is the only concrete implementation.
type State interface {
	Mover() int
	LegalActions() []Action
	ApplyAction(Action)
	IsTerminal() bool
	Returns() (float64, float64)
	Clone() State
	Hash() StateHash
}

// snapshot holds everything ApplyAction mutates besides the counters,
// so UndoAction can restore the full state.
type snapshot struct {
	board  Board
	player int
}

// GameState is the dynamic state of one game: the board ring, the player
// to move and the move counter, plus the applied-action history.
type GameState struct {
	Board         Board
	CurrentPlayer int
	NumMoves      int
	history       []Action
	undo          []snapshot
}

// NewGameState returns the start-of-game state: 4 beans in every row
// pit, empty stores, player 0 to move.
func NewGameState() *GameState {
	return &GameState{Board: NewBoard()}
}

// Mover returns the player to move, 0 or 1.
func (gs *GameState) Mover() int {
	return gs.CurrentPlayer
}

// Player returns the identifier of the player to move.
func (gs *GameState) Player() string {
	return fmt.Sprintf("Player%d", gs.CurrentPlayer)
}

// ApplyAction sows the chosen pit: the pit is emptied and its beans are
// dropped one per cell into the following ring cells, passing through
// every cell including both stores. Landing the last bean in the mover's
// own store grants another turn; otherwise the turn passes.
//
// The action must come from LegalActions. Applying any other pit is a
// caller contract violation and is not checked here.
func (gs *GameState) ApplyAction(action Action) {
	gs.undo = append(gs.undo, snapshot{
		board:  gs.Board.Copy(),
		player: gs.CurrentPlayer,
	})

	beans := gs.Board[action]
	gs.Board[action] = 0
	for i := 0; i < beans; i++ {
		gs.Board[(int(action)+i+1)%TotalPits]++
	}
	if (int(action)+beans)%TotalPits != HomePit(gs.CurrentPlayer) {
		gs.CurrentPlayer = 1 - gs.CurrentPlayer
	}
	gs.NumMoves++
	gs.history = append(gs.history, action)
}

// UndoAction reverses the most recent ApplyAction, restoring the board,
// the player to move, the move counter and the history together. It
// reports false on a start-of-game state.
func (gs *GameState) UndoAction() bool {
	if len(gs.undo) == 0 {
		return false
	}
	last := gs.undo[len(gs.undo)-1]
	gs.undo = gs.undo[:len(gs.undo)-1]
	gs.Board = last.board
	gs.CurrentPlayer = last.player
	gs.NumMoves--
	gs.history = gs.history[:len(gs.history)-1]
	return true
}

// LegalActions returns the mover's non-empty row pits in ascending pit
// order, or nothing once the state is terminal.
func (gs *GameState) LegalActions() []Action {
	if gs.IsTerminal() {
		return nil
	}
	var actions []Action
	first := 1
	if gs.CurrentPlayer == 1 {
		first = TotalPits/2 + 1
	}
	for pit := first; pit < first+NumPits; pit++ {
		if gs.Board[pit] > 0 {
			actions = append(actions, Action(pit))
		}
	}
	return actions
}

// IsTerminal reports whether either player's row is completely empty.
// One exhausted side is enough to end the game.
func (gs *GameState) IsTerminal() bool {
	return gs.Board.RowEmpty(0) || gs.Board.RowEmpty(1)
}

// Scores returns the raw bean totals: each player's row pits plus their
// own store.
func (gs *GameState) Scores() (score0, score1 int) {
	for i := 0; i < NumPits; i++ {
		score0 += gs.Board[rowPit(0, i)]
		score1 += gs.Board[rowPit(1, i)]
	}
	score0 += gs.Board[HomePit(0)]
	score1 += gs.Board[HomePit(1)]
	return score0, score1
}

// Returns maps the raw scores to the zero-sum outcome pair: +1 for the
// winner, -1 for the loser, 0 for both on a draw. Meaningful once the
// state is terminal.
func (gs *GameState) Returns() (float64, float64) {
	score0, score1 := gs.Scores()
	switch {
	case score0 > score1:
		return 1.0, -1.0
	case score0 < score1:
		return -1.0, 1.0
	default:
		return 0.0, 0.0
	}
}

// History returns the applied actions in order.
func (gs *GameState) History() []Action {
	dup := make([]Action, len(gs.history))
	copy(dup, gs.history)
	return dup
}

// Copy returns a fully independent deep copy of the state.
func (gs *GameState) Copy() *GameState {
	historyCopy := make([]Action, len(gs.history))
	copy(historyCopy, gs.history)

	undoCopy := make([]snapshot, len(gs.undo))
	for i, s := range gs.undo {
		undoCopy[i] = snapshot{board: s.board.Copy(), player: s.player}
	}

	return &GameState{
		Board:         gs.Board.Copy(),
		CurrentPlayer: gs.CurrentPlayer,
		NumMoves:      gs.NumMoves,
		history:       historyCopy,
		undo:          undoCopy,
	}
}

func (gs *GameState) Clone() State {
	return gs.Copy()
}

// Hash digests the player to move and the board contents.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))
	for _, beans := range gs.Board {
		binary.Write(hasher, binary.LittleEndian, int64(beans))
	}

	return StateHash(hasher.Sum64())
}

func (gs *GameState) String() string {
	return gs.Board.String()
}
