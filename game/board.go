package game

// PlayerBoard holds one player's staging rows, wall, penalty track and
// score. Rows and wall persist across rounds (the wall only grows); the
// penalty track is reset between rounds; the score accumulates.
type PlayerBoard struct {
	// Rows are the staging rows. Row r uses slots [0, r+1); unused slots
	// stay NoColor. All occupied slots of a row share one color.
	Rows [NumStagingRows][NumStagingRows]Color
	// Wall is the 5x5 placement grid. Cell (r,c) only ever receives the
	// tile of color (c-r) mod 5 and is never cleared.
	Wall [WallSize][WallSize]bool
	// Penalty is the 7-slot overflow track, filled left to right.
	Penalty [PenaltySlots]bool
	Score   int
}

func NewPlayerBoard() PlayerBoard {
	var b PlayerBoard
	for r := range b.Rows {
		for i := range b.Rows[r] {
			b.Rows[r][i] = NoColor
		}
	}
	return b
}

// RowCapacity returns the number of usable slots in staging row r.
func RowCapacity(r int) int {
	return r + 1
}

// RowColor returns the color occupying staging row r, or NoColor if the
// row is empty.
func (b *PlayerBoard) RowColor(r int) Color {
	return b.Rows[r][0]
}

// RowCount returns the number of occupied slots in staging row r.
func (b *PlayerBoard) RowCount(r int) int {
	count := 0
	for i := 0; i < RowCapacity(r); i++ {
		if b.Rows[r][i] != NoColor {
			count++
		}
	}
	return count
}

// PlaceInRow fills empty slots of staging row r left to right with color,
// consuming at most n tiles, and returns how many tiles it placed. The
// caller routes the remainder to the penalty track.
func (b *PlayerBoard) PlaceInRow(r int, color Color, n int) int {
	placed := 0
	for i := 0; i < RowCapacity(r) && n > 0; i++ {
		if b.Rows[r][i] == NoColor {
			b.Rows[r][i] = color
			placed++
			n--
		}
	}
	return placed
}

// ClearRow empties staging row r after its tiles move to the wall.
func (b *PlayerBoard) ClearRow(r int) {
	for i := 0; i < RowCapacity(r); i++ {
		b.Rows[r][i] = NoColor
	}
}

// AddPenalty occupies up to n empty penalty slots in index order and
// returns the tiered cost of the slots filled by this call. Tiles beyond
// the last slot are discarded with no further effect.
func (b *PlayerBoard) AddPenalty(n int) int {
	cost := 0
	for i := 0; i < PenaltySlots && n > 0; i++ {
		if !b.Penalty[i] {
			b.Penalty[i] = true
			cost += penaltyCosts[i]
			n--
		}
	}
	return cost
}

// PenaltyCost returns the total tiered cost of all occupied penalty slots.
func (b *PlayerBoard) PenaltyCost() int {
	cost := 0
	for i, occupied := range b.Penalty {
		if occupied {
			cost += penaltyCosts[i]
		}
	}
	return cost
}

// ResetPenalty clears the penalty track for a new round.
func (b *PlayerBoard) ResetPenalty() {
	b.Penalty = [PenaltySlots]bool{}
}

// AddScore applies a score delta, clamping the score at zero.
func (b *PlayerBoard) AddScore(delta int) {
	b.Score += delta
	if b.Score < 0 {
		b.Score = 0
	}
}

// WallRowFull reports whether wall row r holds all five tiles.
func (b *PlayerBoard) WallRowFull(r int) bool {
	for c := 0; c < WallSize; c++ {
		if !b.Wall[r][c] {
			return false
		}
	}
	return true
}

// HasFullWallRow reports whether any wall row is complete, the game-end
// condition.
func (b *PlayerBoard) HasFullWallRow() bool {
	for r := 0; r < WallSize; r++ {
		if b.WallRowFull(r) {
			return true
		}
	}
	return false
}
