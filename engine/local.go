package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"mancala/game"
	"mancala/player"
	"mancala/utils"
)

// localEngine drives a single game in-process. It owns the authoritative
// state, validates every submitted action against the legal set, and
// publishes an update per applied move.
type localEngine struct {
	state    *game.GameState
	updateCh chan Update
	gameOver bool
}

func NewLocalEngine() *localEngine {
	return &localEngine{}
}

// Init resets the engine to a fresh game and returns a copy of the
// starting state plus a non-blocking update getter.
func (e *localEngine) Init() (game.State, UpdateGetter) {
	e.state = game.NewGameState()
	e.updateCh = make(chan Update, 1)
	e.gameOver = false

	return e.state.Clone(), func() *Update {
		select {
		case u, ok := <-e.updateCh:
			if !ok { // Game over
				return nil
			}
			return &u
		default:
			// No updates yet
			return nil
		}
	}
}

// Play validates and applies one action for the player to move.
func (e *localEngine) Play(action game.Action) error {
	if e.state == nil {
		return fmt.Errorf("engine is not initialized")
	}
	if e.gameOver {
		return fmt.Errorf("game is over - no moves allowed")
	}

	legal := e.state.LegalActions()
	if len(legal) == 0 {
		return fmt.Errorf("illegal move: no legal moves available")
	}
	if utils.FindIndex(legal, action) < 0 {
		return fmt.Errorf("illegal move %v for %s", action, e.state.Player())
	}

	e.state.ApplyAction(action)

	u := Update{Action: action, State: e.state.Clone(), Hash: e.state.Hash()}
	if e.state.IsTerminal() || e.state.NumMoves >= MaxMoves {
		e.gameOver = true
		e.updateCh <- u
		close(e.updateCh)
	} else {
		e.updateCh <- u
	}
	return nil
}

// Result summarizes a finished game.
type Result struct {
	Return0 float64
	Return1 float64
	Score0  int
	Score1  int
	Moves   int
}

// Run plays a full game with one agent per player and returns the
// outcome. Agents see an independent copy of the state on every pick.
func (e *localEngine) Run(agents []player.Agent) (Result, error) {
	if len(agents) != game.NumPlayers {
		return Result{}, fmt.Errorf("need %d agents, got %d", game.NumPlayers, len(agents))
	}

	_, getUpdate := e.Init()
	log.Debug().Msgf("%s is starting", e.state.Player())

	for !e.gameOver {
		view := e.state.Copy()
		action := agents[view.CurrentPlayer].Pick(view)
		if err := e.Play(action); err != nil {
			return Result{}, err
		}
		if u := getUpdate(); u != nil {
			log.Debug().Uint64("hash", uint64(u.Hash)).Msgf("applied pit %v", u.Action)
		}
	}

	ret0, ret1 := e.state.Returns()
	score0, score1 := e.state.Scores()
	return Result{
		Return0: ret0,
		Return1: ret1,
		Score0:  score0,
		Score1:  score1,
		Moves:   e.state.NumMoves,
	}, nil
}

// State exposes the authoritative state for inspection after Run.
func (e *localEngine) State() *game.GameState {
	return e.state
}
