package game

// Analysis carries the secondary signals about a just-applied move that
// reward shaping consumes. All values are forecasts or raw counts; nothing
// here mutates state.
type Analysis struct {
	// RowDone reports that the staging row reached exactly its capacity
	// for the played color this turn.
	RowDone bool
	// ProjRow and ProjCol forecast the adjacency runs (including the
	// placed cell) the eventual wall placement will earn. Zero unless
	// RowDone.
	ProjRow int
	ProjCol int
	// RowTiles, ColTiles and ColorTiles count tiles already committed
	// toward the target's wall row, wall column and color: the staging
	// tiles of the played color plus the matching placed wall tiles.
	RowTiles   int
	ColTiles   int
	ColorTiles int
}

// Analyze computes the post-move signals for the acting player and the
// (color, target) just played. Call it on the state immediately after a
// successful Apply. Moves aimed at the penalty track analyze to zero.
func (gs *GameState) Analyze(p Player, color Color, target int) Analysis {
	var a Analysis
	if target < 0 || target >= NumStagingRows {
		return a
	}
	b := &gs.Boards[p]

	inRow := 0
	if b.RowColor(target) == color {
		inRow = b.RowCount(target)
	}
	a.RowDone = inRow == RowCapacity(target)

	c := WallColumn(color, target)
	if a.RowDone {
		// Evaluate the adjacency walk against the pending placement.
		w := b.Wall
		w[target][c] = true
		a.ProjRow = rowRun(&w, target, c)
		a.ProjCol = colRun(&w, target, c)
	}

	a.RowTiles = inRow
	a.ColTiles = inRow
	a.ColorTiles = inRow
	for i := 0; i < WallSize; i++ {
		if b.Wall[target][i] {
			a.RowTiles++
		}
		if b.Wall[i][c] {
			a.ColTiles++
		}
		for j := 0; j < WallSize; j++ {
			if b.Wall[i][j] && WallColor(i, j) == color {
				a.ColorTiles++
			}
		}
	}
	return a
}
