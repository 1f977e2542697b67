package game

// LegalActions enumerates the encoded ids of every currently legal move
// for player p, by filtering the full pool x color x target product space.
// The result is deterministic for a given state.
func (gs *GameState) LegalActions(p Player) []int {
	var actions []int
	for pool := 0; pool < NumPoolSlots; pool++ {
		for color := Color(0); color < NumColors; color++ {
			for target := 0; target < NumTargets; target++ {
				if gs.IsLegal(p, pool, color, target) {
					actions = append(actions, Encode(pool, color, target))
				}
			}
		}
	}
	return actions
}
