package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"azul/game"

	"github.com/stretchr/testify/require"
)

func TestWriterStoresRecords(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "self_play")
	require.NoError(t, err)

	games := []GameRecord{
		{
			ID:     1,
			Agent1: "random",
			Agent2: "random",
			GameMetric: GameMetric{
				Seed:           7,
				StartingPlayer: game.Player1,
				Winner:         "Player2",
				Score1:         31,
				Score2:         44,
				Rounds:         6,
				TotalMoves:     58,
				Duration:       120 * time.Millisecond,
			},
		},
	}
	moves := []MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.Player1, Action: 12, Reward: 3}},
		{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: game.Player2, Action: 98, Reward: -1.5}},
	}

	require.NoError(t, w.WriteGameRecords(games))
	require.NoError(t, w.WriteMoveRecords(moves))

	gameRows := readCSV(t, filepath.Join(w.Dir(), "games.csv"))
	require.Len(t, gameRows, 2, "header plus one record")
	require.Equal(t, "winner", gameRows[0][5])
	require.Equal(t, []string{"1", "random", "random", "7", "Player1",
		"Player2", "31", "44", "6", "58", "120"}, gameRows[1])

	moveRows := readCSV(t, filepath.Join(w.Dir(), "moves.csv"))
	require.Len(t, moveRows, 3)
	require.Equal(t, []string{"1", "1", "Player1", "12", "3"}, moveRows[1])
	require.Equal(t, []string{"1", "2", "Player2", "98", "-1.5"}, moveRows[2])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
