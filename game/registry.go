package game

import (
	"fmt"
	"sort"

	"mancala/meta"
)

// Constructor builds a fresh start-of-game state.
type Constructor func() *GameState

type registration struct {
	info      meta.GameType
	construct Constructor
}

// Registry maps game names to constructors and their metadata. It is a
// plain value owned by the caller; there is no process-wide table and no
// init-time registration.
type Registry struct {
	games map[string]registration
}

func NewRegistry() *Registry {
	return &Registry{games: make(map[string]registration)}
}

// NewMancalaRegistry returns a registry with the one game this module
// implements already registered.
func NewMancalaRegistry() *Registry {
	r := NewRegistry()
	if err := r.Register(meta.Mancala(), NewGameState); err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Register(info meta.GameType, construct Constructor) error {
	if construct == nil {
		return fmt.Errorf("register %q: nil constructor", info.ShortName)
	}
	if _, ok := r.games[info.ShortName]; ok {
		return fmt.Errorf("register %q: already registered", info.ShortName)
	}
	r.games[info.ShortName] = registration{info: info, construct: construct}
	return nil
}

// New builds a fresh state for a registered game.
func (r *Registry) New(name string) (*GameState, error) {
	reg, ok := r.games[name]
	if !ok {
		return nil, fmt.Errorf("unknown game %q", name)
	}
	return reg.construct(), nil
}

// Info returns the metadata descriptor for a registered game.
func (r *Registry) Info(name string) (meta.GameType, bool) {
	reg, ok := r.games[name]
	return reg.info, ok
}

// Games lists the registered game names in sorted order.
func (r *Registry) Games() []string {
	names := make([]string, 0, len(r.games))
	for name := range r.games {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
