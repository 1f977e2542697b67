package experiments

import (
	"fmt"

	"azul/agent"
	"azul/config"
	"azul/engine"
	"azul/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// RunSelfPlay plays cfg.Games seeded games between two random agents and
// stores game and move records as CSV.
func RunSelfPlay(cfg config.Config) error {
	log.Info().Msgf("starting self-play experiment: %d games from seed %d...",
		cfg.Games, cfg.Seed)

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + uint64(i)
		agents := [2]agent.Agent{
			agent.NewRandomAgent(seed*2 + 1),
			agent.NewRandomAgent(seed*2 + 2),
		}

		e := engine.NewLocalEngine(seed, agents)
		gameMetric, moveMetrics := e.Run()
		gameMetric.Seed = seed

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     agents[0].Name(),
			Agent2:     agents[1].Name(),
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d: %s (%d-%d) in %d rounds",
			i+1, cfg.Games, gameMetric.Winner, gameMetric.Score1,
			gameMetric.Score2, gameMetric.Rounds)
	}

	writer, err := metrics.NewWriter(cfg.OutputDir, "self_play")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}

	log.Info().Msgf("stored %d game and %d move records in %s",
		len(gameRecords), len(moveRecords), writer.Dir())
	return nil
}
