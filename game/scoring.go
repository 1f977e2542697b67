package game

// Round scoring and end-game bonuses. ScoreRound runs once per player at
// every round end, in fixed Player1-then-Player2 order so simultaneous
// effects stay deterministic.

// ScoreRound moves each completed staging row onto the wall, awards the
// placement plus adjacency points, then charges the penalty track. The
// score never drops below zero.
func (gs *GameState) ScoreRound(p Player) {
	b := &gs.Boards[p]
	for r := 0; r < NumStagingRows; r++ {
		color := b.RowColor(r)
		if color == NoColor || b.RowCount(r) < RowCapacity(r) {
			continue
		}
		b.ClearRow(r)
		c := WallColumn(color, r)
		b.Wall[r][c] = true
		b.AddScore(1 + (rowRun(&b.Wall, r, c) - 1) + (colRun(&b.Wall, r, c) - 1))
	}
	b.AddScore(-b.PenaltyCost())
}

// rowRun returns the length of the contiguous run of set cells through
// (r,c) along row r, including (r,c) itself. The scan resets the run on an
// empty cell before column c and stops at the first empty cell after it.
func rowRun(w *[WallSize][WallSize]bool, r, c int) int {
	run := 0
	for j := 0; j < WallSize; j++ {
		if j < c {
			if w[r][j] {
				run++
			} else {
				run = 0
			}
		} else {
			if !w[r][j] {
				break
			}
			run++
		}
	}
	return run
}

// colRun is rowRun applied down column c.
func colRun(w *[WallSize][WallSize]bool, r, c int) int {
	run := 0
	for i := 0; i < WallSize; i++ {
		if i < r {
			if w[i][c] {
				run++
			} else {
				run = 0
			}
		} else {
			if !w[i][c] {
				break
			}
			run++
		}
	}
	return run
}

// ScoreEndgame adds the final bonuses: 2 per complete wall row, 5 per
// complete column, 7 per color with all five wheel positions placed.
func (gs *GameState) ScoreEndgame(p Player) {
	b := &gs.Boards[p]

	fullRows := 0
	var colCounts, colorCounts [WallSize]int
	for r := 0; r < WallSize; r++ {
		rowCount := 0
		for c := 0; c < WallSize; c++ {
			if b.Wall[r][c] {
				rowCount++
				colCounts[c]++
				colorCounts[WallColor(r, c)]++
			}
		}
		if rowCount == WallSize {
			fullRows++
		}
	}

	fullCols, fullColors := 0, 0
	for i := 0; i < WallSize; i++ {
		if colCounts[i] == WallSize {
			fullCols++
		}
		if colorCounts[i] == WallSize {
			fullColors++
		}
	}

	b.AddScore(2*fullRows + 5*fullCols + 7*fullColors)
}
