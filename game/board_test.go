package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceInRow(t *testing.T) {
	b := NewPlayerBoard()

	placed := b.PlaceInRow(2, 3, 2)
	require.Equal(t, 2, placed)
	require.Equal(t, Color(3), b.RowColor(2))
	require.Equal(t, 2, b.RowCount(2))

	// Only one slot left in a capacity-3 row.
	placed = b.PlaceInRow(2, 3, 4)
	require.Equal(t, 1, placed, "a full row accepts no more tiles")
	require.Equal(t, 3, b.RowCount(2))
}

func TestClearRow(t *testing.T) {
	b := NewPlayerBoard()
	b.PlaceInRow(4, 1, 5)
	b.ClearRow(4)
	require.Equal(t, 0, b.RowCount(4))
	require.Equal(t, NoColor, b.RowColor(4))
}

func TestPenaltyTiers(t *testing.T) {
	b := NewPlayerBoard()

	require.Equal(t, 2, b.AddPenalty(2), "slots 0-1 cost 1 each")
	require.Equal(t, 6, b.AddPenalty(3), "slots 2-4 cost 2 each")
	require.Equal(t, 6, b.AddPenalty(2), "slots 5-6 cost 3 each")
	require.Equal(t, 14, b.PenaltyCost())

	require.Equal(t, 0, b.AddPenalty(5), "tiles beyond the 7th are discarded")
	require.Equal(t, 14, b.PenaltyCost())

	b.ResetPenalty()
	require.Equal(t, 0, b.PenaltyCost())
}

func TestAddScoreClampsAtZero(t *testing.T) {
	b := NewPlayerBoard()
	b.AddScore(3)
	b.AddScore(-10)
	require.Equal(t, 0, b.Score, "score never goes negative")
	b.AddScore(4)
	require.Equal(t, 4, b.Score)
}

func TestWallRowFull(t *testing.T) {
	b := NewPlayerBoard()
	require.False(t, b.HasFullWallRow())
	for c := 0; c < WallSize; c++ {
		b.Wall[3][c] = true
	}
	require.True(t, b.WallRowFull(3))
	require.True(t, b.HasFullWallRow())
}

func TestWallGeometry(t *testing.T) {
	for r := 0; r < WallSize; r++ {
		for c := 0; c < WallSize; c++ {
			color := WallColor(r, c)
			require.Equal(t, c, WallColumn(color, r),
				"WallColumn must invert WallColor at (%d,%d)", r, c)
		}
	}
}
