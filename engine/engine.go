package engine

import "azul/experiments/metrics"

// MaxMoves caps a single game; random play finishes far earlier, the
// guard only protects against a stuck policy.
const MaxMoves = 10000

type Engine interface {
	// Run plays a game to completion and reports what happened.
	Run() (metrics.GameMetric, []metrics.MoveMetric)
}
