package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestApplyAction(t *testing.T) {
	t.Run("sowing distributes one bean per following cell", func(t *testing.T) {
		gs := NewGameState()
		gs.ApplyAction(1)

		require.Equal(t, 0, gs.Board[1])
		for _, pit := range []int{2, 3, 4, 5} {
			require.Equal(t, 5, gs.Board[pit])
		}
		require.Equal(t, 4, gs.Board[6], "cells past the landing pit are untouched")
		require.Equal(t, TotalBeans, gs.Board.Sum())
		require.Equal(t, 1, gs.NumMoves)
	})

	t.Run("landing in own store grants another turn", func(t *testing.T) {
		gs := NewGameState()
		gs.ApplyAction(3) // 4 beans into 4,5,6,7; lands in player 0's store

		require.Equal(t, 1, gs.Board[HomePit(0)])
		require.Equal(t, 0, gs.CurrentPlayer, "player 0 moves again")
	})

	t.Run("landing elsewhere passes the turn", func(t *testing.T) {
		gs := NewGameState()
		gs.ApplyAction(1) // lands on pit 5

		require.Equal(t, 1, gs.CurrentPlayer)
	})

	t.Run("sowing passes through the opponent store", func(t *testing.T) {
		gs := NewGameState()
		gs.Board = Board{0, 0, 0, 0, 0, 0, 8, 0, 4, 4, 4, 4, 4, 20}
		gs.ApplyAction(6) // 8 beans into 7,8,9,10,11,12,13,0

		require.Equal(t, 1, gs.Board[HomePit(0)])
		require.Equal(t, 1, gs.Board[0], "opponent store receives a bean")
		require.Equal(t, TotalBeans, gs.Board.Sum())
	})

	t.Run("sowing wraps around the ring", func(t *testing.T) {
		gs := NewGameState()
		gs.Board = Board{0, 0, 0, 0, 0, 0, 15, 0, 33, 0, 0, 0, 0, 0}
		gs.ApplyAction(6) // 15 beans into 7..13, 0..7

		require.Equal(t, 2, gs.Board[HomePit(0)], "own store hit twice")
		require.Equal(t, 1, gs.Board[6], "last bean wraps back before the store")
		require.Equal(t, TotalBeans, gs.Board.Sum())
	})
}

func TestLegalActions(t *testing.T) {
	t.Run("player 0 row in ascending order", func(t *testing.T) {
		gs := NewGameState()
		require.Equal(t, []Action{1, 2, 3, 4, 5, 6}, gs.LegalActions())
	})

	t.Run("player 1 row in ascending order", func(t *testing.T) {
		gs := NewGameState()
		gs.CurrentPlayer = 1
		require.Equal(t, []Action{8, 9, 10, 11, 12, 13}, gs.LegalActions())
	})

	t.Run("empty pits are skipped", func(t *testing.T) {
		gs := NewGameState()
		gs.Board[2] = 0
		gs.Board[5] = 0
		gs.Board[1] += 8 // keep the total intact

		require.Equal(t, []Action{1, 3, 4, 6}, gs.LegalActions())
	})

	t.Run("terminal short-circuits legality", func(t *testing.T) {
		gs := NewGameState()
		gs.Board = Board{5, 0, 0, 0, 0, 0, 0, 30, 2, 2, 2, 2, 2, 3}
		gs.CurrentPlayer = 1

		require.Empty(t, gs.LegalActions(), "non-exhausted side still gets no moves")
	})
}

func TestIsTerminal(t *testing.T) {
	gs := NewGameState()
	require.False(t, gs.IsTerminal())

	gs.Board = Board{5, 0, 0, 0, 0, 0, 0, 30, 2, 2, 2, 2, 2, 3}
	require.True(t, gs.IsTerminal(), "player 0's row exhausted")

	gs.Board = Board{30, 2, 2, 2, 2, 2, 3, 5, 0, 0, 0, 0, 0, 0}
	require.True(t, gs.IsTerminal(), "player 1's row exhausted")
}

func TestReturns(t *testing.T) {
	t.Run("player 0 wins 30 to 18", func(t *testing.T) {
		gs := NewGameState()
		gs.Board = Board{5, 0, 0, 0, 0, 0, 0, 30, 2, 2, 2, 2, 2, 3}

		score0, score1 := gs.Scores()
		require.Equal(t, 30, score0)
		require.Equal(t, 18, score1)

		r0, r1 := gs.Returns()
		require.Equal(t, 1.0, r0)
		require.Equal(t, -1.0, r1)
	})

	t.Run("player 1 wins", func(t *testing.T) {
		gs := NewGameState()
		gs.Board = Board{18, 0, 0, 0, 0, 0, 0, 10, 4, 4, 4, 4, 2, 2}

		r0, r1 := gs.Returns()
		require.Equal(t, -1.0, r0)
		require.Equal(t, 1.0, r1)
	})

	t.Run("draw", func(t *testing.T) {
		gs := NewGameState()
		gs.Board = Board{0, 0, 0, 0, 0, 0, 0, 24, 4, 4, 4, 4, 4, 4}

		r0, r1 := gs.Returns()
		require.Equal(t, 0.0, r0)
		require.Equal(t, 0.0, r1)
	})
}

func TestCloneIndependence(t *testing.T) {
	gs := NewGameState()
	gs.ApplyAction(3)

	clone := gs.Clone().(*GameState)
	require.Equal(t, gs.Board, clone.Board)
	require.Equal(t, gs.Hash(), clone.Hash())

	clone.ApplyAction(4)
	require.Equal(t, 4, gs.Board[4], "original board unchanged")
	require.Equal(t, 0, gs.CurrentPlayer, "original mover unchanged")
	require.Equal(t, 1, gs.NumMoves, "original counter unchanged")
	require.Len(t, gs.History(), 1)
}

func TestUndoAction(t *testing.T) {
	t.Run("restores board, mover and counters", func(t *testing.T) {
		gs := NewGameState()
		gs.ApplyAction(3)
		before := gs.Copy()

		gs.ApplyAction(5)
		require.True(t, gs.UndoAction())

		require.Equal(t, before.Board, gs.Board)
		require.Equal(t, before.CurrentPlayer, gs.CurrentPlayer)
		require.Equal(t, before.NumMoves, gs.NumMoves)
		require.Equal(t, before.History(), gs.History())
		require.Equal(t, before.Hash(), gs.Hash())
	})

	t.Run("unwinds back to the start", func(t *testing.T) {
		gs := NewGameState()
		fresh := gs.Copy()

		gs.ApplyAction(3)
		gs.ApplyAction(4)
		gs.ApplyAction(9)
		require.True(t, gs.UndoAction())
		require.True(t, gs.UndoAction())
		require.True(t, gs.UndoAction())

		require.Equal(t, fresh.Board, gs.Board)
		require.Equal(t, 0, gs.NumMoves)
		require.Empty(t, gs.History())
	})

	t.Run("no-op on a fresh state", func(t *testing.T) {
		gs := NewGameState()
		require.False(t, gs.UndoAction())
		require.Equal(t, 0, gs.NumMoves)
	})
}

func TestHash(t *testing.T) {
	gs := NewGameState()
	initial := gs.Hash()

	gs.ApplyAction(1)
	require.NotEqual(t, initial, gs.Hash())

	gs.UndoAction()
	require.Equal(t, initial, gs.Hash())
}

// Random playouts check the conservation, legality-closure and
// terminal-monotonicity properties along full games.
func TestRandomPlayoutInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for g := 0; g < 20; g++ {
		gs := NewGameState()
		for moves := 0; moves < 2000; moves++ {
			actions := gs.LegalActions()
			if len(actions) == 0 {
				require.True(t, gs.IsTerminal())
				break
			}

			mover := gs.CurrentPlayer
			action := actions[rng.Intn(len(actions))]
			require.Positive(t, gs.Board[action], "legal actions are non-empty pits")
			if mover == 0 {
				require.True(t, action >= 1 && action <= 6, "legal actions belong to the mover")
			} else {
				require.True(t, action >= 8 && action <= 13, "legal actions belong to the mover")
			}

			gs.ApplyAction(action)
			require.Equal(t, TotalBeans, gs.Board.Sum(), "beans are conserved")
			for _, beans := range gs.Board {
				require.GreaterOrEqual(t, beans, 0)
			}
		}

		if gs.IsTerminal() {
			require.Empty(t, gs.LegalActions())
			r0, r1 := gs.Returns()
			require.Contains(t, [][2]float64{{1, -1}, {-1, 1}, {0, 0}}, [2]float64{r0, r1})
			require.Equal(t, 0.0, r0+r1, "outcome is zero-sum")
		}
	}
}
