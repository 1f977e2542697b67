package game

// Outcome reports the immediate effects of an applied move: how many
// drafted tiles landed in the staging row and the penalty cost incurred,
// including the start-player token. Reward computation consumes it.
type Outcome struct {
	Placed  int
	Penalty int
}

// IsLegal reports whether player may draft color from pool slot and place
// into target. Out-of-range indices are illegal, never out-of-bounds.
func (gs *GameState) IsLegal(p Player, pool int, color Color, target int) bool {
	if gs.Over || gs.Phase != Drafting {
		return false
	}
	if p < Player1 || p > Player2 {
		return false
	}
	if pool < 0 || pool >= NumPoolSlots || color < 0 || color >= NumColors {
		return false
	}
	if target < 0 || target >= NumTargets {
		return false
	}
	if gs.Pool.Count(pool, color) == 0 {
		return false
	}
	if target == PenaltyTarget {
		return true
	}
	b := &gs.Boards[p]
	if b.Wall[target][WallColumn(color, target)] {
		return false
	}
	rowColor := b.RowColor(target)
	return rowColor == NoColor || rowColor == color
}

// Apply validates and executes a draft-and-place move for player p. On an
// illegal move it returns ok=false and mutates nothing. On success it
// drafts every tile of color from the slot (a factory spills its leftovers
// to the center), handles the first center draw of the round (start-player
// marker plus one penalty token), fills the staging row with overflow to
// the penalty track, and passes the turn.
func (gs *GameState) Apply(p Player, pool int, color Color, target int) (Outcome, bool) {
	if !gs.IsLegal(p, pool, color, target) {
		return Outcome{}, false
	}

	var out Outcome
	b := &gs.Boards[p]

	drawn := gs.Pool.take(pool, color)
	if pool != CenterSlot {
		gs.Pool.spillToCenter(pool)
	} else if !gs.FirstTaken {
		// First center draw this round: claim the start-player marker and
		// take one penalty token on top of the drafted tiles.
		gs.FirstTaken = true
		gs.NextFirst = p
		out.Penalty += b.AddPenalty(1)
	}

	if target == PenaltyTarget {
		out.Penalty += b.AddPenalty(drawn)
	} else {
		out.Placed = b.PlaceInRow(target, color, drawn)
		out.Penalty += b.AddPenalty(drawn - out.Placed)
	}

	gs.Current = p.Opponent()
	return out, true
}
