package player

import (
	"golang.org/x/exp/rand"

	"mancala/game"
)

// Agent picks one of the legal actions for the player to move. Agents
// are driver scaffolding, not search: each pick inspects at most one
// application of the public rules.
type Agent interface {
	Pick(gs *game.GameState) game.Action
}

// RandomAgent picks uniformly among the legal actions.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Pick(gs *game.GameState) game.Action {
	actions := gs.LegalActions()
	if len(actions) == 0 {
		panic("no legal actions to pick from")
	}
	return actions[a.rng.Intn(len(actions))]
}

// GreedyAgent picks the action that adds the most beans to its own
// store this move, preferring an extra turn and then the lowest pit on
// ties.
type GreedyAgent struct{}

func NewGreedyAgent() *GreedyAgent {
	return &GreedyAgent{}
}

func (a *GreedyAgent) Pick(gs *game.GameState) game.Action {
	actions := gs.LegalActions()
	if len(actions) == 0 {
		panic("no legal actions to pick from")
	}

	mover := gs.Mover()
	home := game.HomePit(mover)

	best := actions[0]
	bestGain := -1
	bestExtra := false
	for _, action := range actions {
		next := gs.Copy()
		next.ApplyAction(action)
		gain := next.Board[home] - gs.Board[home]
		extra := next.Mover() == mover && !next.IsTerminal()
		if gain > bestGain || (gain == bestGain && extra && !bestExtra) {
			best = action
			bestGain = gain
			bestExtra = extra
		}
	}
	return best
}
