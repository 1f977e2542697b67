package game

import "golang.org/x/exp/rand"

// Round state machine. AdvanceRound runs after every applied move; the
// round completes exactly when the pool is empty.

// AdvanceRound checks for round completion and, if the pool is exhausted,
// scores both players, evaluates game end, and either finishes the game
// (end-game bonuses, absorbing state) or starts the next round from the
// injected generator.
func (gs *GameState) AdvanceRound(rng *rand.Rand) {
	if gs.Over || !gs.Pool.Empty() {
		return
	}
	gs.Phase = RoundComplete

	gs.ScoreRound(Player1)
	gs.ScoreRound(Player2)

	if gs.Boards[Player1].HasFullWallRow() || gs.Boards[Player2].HasFullWallRow() {
		gs.Over = true
		gs.ScoreEndgame(Player1)
		gs.ScoreEndgame(Player2)
		return
	}

	gs.StartRound(rng)
}

// StartRound transitions into drafting: penalty tracks are cleared as an
// explicit step (never left to pool reinitialization), factories are
// refilled, and the marked first player takes the turn.
func (gs *GameState) StartRound(rng *rand.Rand) {
	gs.Boards[Player1].ResetPenalty()
	gs.Boards[Player2].ResetPenalty()
	gs.Pool.Refill(rng)
	gs.Current = gs.NextFirst
	gs.FirstTaken = false
	gs.Phase = Drafting
	gs.Round++
}
