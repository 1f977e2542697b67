package agent

import (
	"azul/game"

	"golang.org/x/exp/rand"
)

// Agent selects one of the legal action ids for the player to move. The
// engine guarantees legal is non-empty and drawn from the current state.
type Agent interface {
	Name() string
	ChooseAction(state *game.GameState, legal []int) int
}

// RandomAgent plays uniformly at random over the legal actions, the
// "expert" opponent policy used to assess training progress.
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent seeds the agent's own generator so that game traces stay
// reproducible.
func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Name() string {
	return "random"
}

func (a *RandomAgent) ChooseAction(_ *game.GameState, legal []int) int {
	if len(legal) == 0 {
		panic("no legal actions to choose from")
	}
	return legal[a.rng.Intn(len(legal))]
}

// FirstAgent deterministically plays the lowest legal action id. Useful as
// a fixed baseline and in tests.
type FirstAgent struct{}

func (FirstAgent) Name() string {
	return "first"
}

func (FirstAgent) ChooseAction(_ *game.GameState, legal []int) int {
	if len(legal) == 0 {
		panic("no legal actions to choose from")
	}
	return legal[0]
}
