package experiments

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"mancala/engine"
	"mancala/experiments/metrics"
	"mancala/player"
)

const NumGames = 30 // Per match up

var selfPlayConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "random", Seed: 1},
	{ID: 2, Kind: "random", Seed: 2},
	{ID: 3, Kind: "greedy"},
}

// RunSelfPlay plays every agent config against every other (both
// orderings, so each config also starts) and writes the records as CSV
// under baseDir.
func RunSelfPlay(baseDir string, gamesPerMatchup int) error {
	matchUps := [][]metrics.AgentConfig{}
	for _, first := range selfPlayConfigs {
		for _, second := range selfPlayConfigs {
			if first.ID == second.ID {
				continue
			}
			matchUps = append(matchUps, []metrics.AgentConfig{first, second})
		}
	}

	return runExperiment(filepath.Join(baseDir, "selfplay"), selfPlayConfigs, matchUps, gamesPerMatchup)
}

func runExperiment(dir string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, gamesPerMatchup int) error {
	if gamesPerMatchup <= 0 {
		gamesPerMatchup = NumGames
	}

	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return fmt.Errorf("failed to set up experiment writer: %w", err)
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	gameID := 0
	for _, matchUp := range matchUps {
		log.Info().Msgf("match up: agent %d vs agent %d", matchUp[0].ID, matchUp[1].ID)
		for i := 0; i < gamesPerMatchup; i++ {
			gameID++
			record, moves, err := RunGame(gameID, matchUp[0], matchUp[1])
			if err != nil {
				return fmt.Errorf("game %d failed: %w", gameID, err)
			}
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)
		}
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}

	log.Info().Msgf("wrote %d game records to %s", len(gameRecords), writer.BaseDir())
	return nil
}

// RunGame plays one game between two agent configs, collecting per-move
// and per-game metrics.
func RunGame(id int, first, second metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	agents := []player.Agent{
		newAgent(first, uint64(id)),
		newAgent(second, uint64(id)),
	}

	eng := engine.NewLocalEngine()
	_, getUpdate := eng.Init()

	collector := metrics.NewCollector()
	collector.StartGame(eng.State().CurrentPlayer)

	for {
		gs := eng.State()
		if gs.IsTerminal() || gs.NumMoves >= engine.MaxMoves {
			break
		}
		mover := gs.CurrentPlayer

		collector.StartMove()
		action := agents[mover].Pick(gs.Copy())
		if err := eng.Play(action); err != nil {
			return metrics.GameRecord{}, nil, err
		}

		extraTurn := false
		if u := getUpdate(); u != nil {
			extraTurn = u.State.Mover() == mover && !u.State.IsTerminal()
		}
		collector.EndMove(mover, int(action), extraTurn)
	}

	return0, return1 := eng.State().Returns()
	score0, score1 := eng.State().Scores()
	gameMetric, moveMetrics := collector.Complete(return0, return1, score0, score1)

	record := metrics.GameRecord{
		ID:         id,
		Agent1:     first.ID,
		Agent2:     second.ID,
		GameMetric: gameMetric,
	}
	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, m := range moveMetrics {
		moves[i] = metrics.MoveRecord{Game: id, MoveMetric: m}
	}
	return record, moves, nil
}

// seedStride keeps per-game random streams disjoint across a run.
const seedStride = 1 << 32

func newAgent(config metrics.AgentConfig, offset uint64) player.Agent {
	switch config.Kind {
	case "greedy":
		return player.NewGreedyAgent()
	default:
		return player.NewRandomAgent(config.Seed + offset*seedStride)
	}
}
