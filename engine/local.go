package engine

import (
	"time"

	"azul/agent"
	"azul/experiments/metrics"
	"azul/game"

	"github.com/rs/zerolog/log"
)

// LocalEngine drives two agents through one full game on a local Env.
type LocalEngine struct {
	env    *Env
	agents [2]agent.Agent
}

func NewLocalEngine(seed uint64, agents [2]agent.Agent) *LocalEngine {
	for _, a := range agents {
		if a == nil {
			panic("need two agents")
		}
	}
	return &LocalEngine{
		env:    NewEnv(seed),
		agents: agents,
	}
}

// Run executes the game loop until the game ends or MaxMoves is reached.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	view := e.env.Reset()
	starting := view.Current

	log.Debug().Msgf("%s is starting", starting)

	start := time.Now()
	var moves []metrics.MoveMetric

	for step := 1; !e.env.Done() && step <= MaxMoves; step++ {
		p := e.env.ToPlay()
		legal := e.env.LegalActions()
		if len(legal) == 0 {
			panic("no legal moves in a running game")
		}

		action := e.agents[p].ChooseAction(e.env.State(), legal)
		if !contains(legal, action) {
			// An agent that wanders off the legal set forfeits the choice.
			log.Warn().Msgf("%s chose illegal action %d, falling back", p, action)
			action = legal[0]
		}

		_, reward, _ := e.env.Step(action)
		moves = append(moves, metrics.MoveMetric{
			Step:   step,
			Player: p,
			Action: action,
			Reward: reward,
		})
	}

	end := time.Now()
	state := e.env.State()
	gm := metrics.GameMetric{
		StartingPlayer: starting,
		Winner:         state.Winner(),
		Score1:         state.Boards[game.Player1].Score,
		Score2:         state.Boards[game.Player2].Score,
		Rounds:         state.Round,
		TotalMoves:     len(moves),
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
	}

	log.Debug().Msgf("game over after %d moves in %d rounds: %s (%d-%d)",
		gm.TotalMoves, gm.Rounds, gm.Winner, gm.Score1, gm.Score2)

	return gm, moves
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
