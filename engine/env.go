package engine

import (
	"azul/game"

	"golang.org/x/exp/rand"
)

// Env is the synchronous step interface a driving loop (training or
// interactive) consumes. It owns one GameState and the seeded generator
// that deals factories; a fixed seed reproduces an identical game trace.
type Env struct {
	state *game.GameState
	rng   *rand.Rand
}

func NewEnv(seed uint64) *Env {
	e := &Env{rng: rand.New(rand.NewSource(seed))}
	e.Reset()
	return e
}

// Reset starts a fresh game and returns the initial observation.
func (e *Env) Reset() game.View {
	e.state = game.NewGameState(e.rng)
	return e.state.Snapshot()
}

// Step applies an action id for the active player and returns the new
// observation, the shaped reward, and whether the game ended. An illegal
// id (including any id outside [0,180)) is a no-op with zero reward.
//
// The reward is the tiles placed into the staging row plus the projected
// row and column adjacency of a completed row, minus the penalty cost
// incurred by the move.
func (e *Env) Step(action int) (game.View, float64, bool) {
	if action < 0 || action >= game.NumActions {
		return e.state.Snapshot(), 0, e.state.Over
	}

	pool, color, target := game.Decode(action)
	p := e.state.Current

	out, ok := e.state.Apply(p, pool, color, target)
	if !ok {
		return e.state.Snapshot(), 0, e.state.Over
	}

	analysis := e.state.Analyze(p, color, target)
	reward := float64(out.Placed + analysis.ProjRow + analysis.ProjCol - out.Penalty)

	e.state.AdvanceRound(e.rng)

	return e.state.Snapshot(), reward, e.state.Over
}

// ToPlay returns the active player.
func (e *Env) ToPlay() game.Player {
	return e.state.Current
}

// LegalActions returns the action ids the active player may submit.
func (e *Env) LegalActions() []int {
	return e.state.LegalActions(e.state.Current)
}

// Done reports whether the game has ended.
func (e *Env) Done() bool {
	return e.state.Over
}

// State exposes the underlying state for agents and renderers. Callers
// must not mutate it.
func (e *Env) State() *game.GameState {
	return e.state
}

// Render returns the human-readable board dump.
func (e *Env) Render() string {
	return e.state.String()
}
