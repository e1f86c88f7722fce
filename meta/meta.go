// meta/meta.go
package meta

// GameType is the static metadata descriptor a host framework reads at
// registration time. Read-only after construction.
type GameType struct {
	ShortName          string
	LongName           string
	MinPlayers         int
	MaxPlayers         int
	Deterministic      bool
	PerfectInformation bool
	ZeroSum            bool
	TerminalRewards    bool
	MaxGameLength      int
}

// MaxGameLength caps runaway games in drivers; the rules themselves
// place no bound on game length.
const MaxGameLength = 1000

// Mancala returns the descriptor for the two-player sowing game.
func Mancala() GameType {
	return GameType{
		ShortName:          "mancala",
		LongName:           "Mancala",
		MinPlayers:         2,
		MaxPlayers:         2,
		Deterministic:      true,
		PerfectInformation: true,
		ZeroSum:            true,
		TerminalRewards:    true,
		MaxGameLength:      MaxGameLength,
	}
}
