package metrics

import (
	"time"

	"azul/game"
)

// GameMetric summarizes one completed self-play game.
type GameMetric struct {
	Seed           uint64
	StartingPlayer game.Player
	Winner         string
	Score1         int
	Score2         int
	Rounds         int
	TotalMoves     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

// MoveMetric records one applied move.
type MoveMetric struct {
	Step   int
	Player game.Player
	Action int
	Reward float64
}

// GameRecord is a GameMetric tagged for CSV output.
type GameRecord struct {
	ID     int
	Agent1 string
	Agent2 string
	GameMetric
}

// MoveRecord is a MoveMetric tagged with its game.
type MoveRecord struct {
	Game int
	MoveMetric
}
