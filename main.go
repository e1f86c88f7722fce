package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mancala/engine"
	"mancala/experiments"
	"mancala/game"
	"mancala/player"
)

type config struct {
	Games      int    `env:"GAMES" envDefault:"1"`
	Seed       uint64 `env:"SEED" envDefault:"1"`
	Agent0     string `env:"AGENT0" envDefault:"random"`
	Agent1     string `env:"AGENT1" envDefault:"random"`
	Debug      bool   `env:"DEBUG" envDefault:"false"`
	Experiment bool   `env:"EXPERIMENT" envDefault:"false"`
	OutDir     string `env:"OUT_DIR" envDefault:"experiments"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parse env: %v\n", err)
		os.Exit(1)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if cfg.Experiment {
		if err := experiments.RunSelfPlay(cfg.OutDir, cfg.Games); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	registry := game.NewMancalaRegistry()
	info, _ := registry.Info("mancala")
	log.Info().Msgf("playing %s: %s vs %s, %d game(s)", info.LongName, cfg.Agent0, cfg.Agent1, cfg.Games)

	for i := 0; i < cfg.Games; i++ {
		result, err := runGame(cfg, uint64(i))
		if err != nil {
			log.Fatal().Err(err).Msgf("game %d failed", i+1)
		}
		log.Info().Msgf("game %d over in %d moves: returns (%v, %v), beans %d-%d",
			i+1, result.Moves, result.Return0, result.Return1, result.Score0, result.Score1)
	}
}

func runGame(cfg config, offset uint64) (engine.Result, error) {
	agents := []player.Agent{
		newAgent(cfg.Agent0, cfg.Seed+offset*2),
		newAgent(cfg.Agent1, cfg.Seed+offset*2+1),
	}

	eng := engine.NewLocalEngine()
	result, err := eng.Run(agents)
	if err != nil {
		return engine.Result{}, err
	}
	log.Debug().Msgf("final board:\n%s", eng.State())
	return result, nil
}

func newAgent(kind string, seed uint64) player.Agent {
	switch kind {
	case "greedy":
		return player.NewGreedyAgent()
	default:
		return player.NewRandomAgent(seed)
	}
}
