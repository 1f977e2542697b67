package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewGameState(t *testing.T) {
	gs := NewGameState(rand.New(rand.NewSource(3)))

	require.Equal(t, 1, gs.Round)
	require.Equal(t, Drafting, gs.Phase)
	require.False(t, gs.Over)
	require.Equal(t, Player1, gs.Current)
	require.Equal(t, NumFactories*TilesPerFactory, gs.Pool.Total())
	require.Equal(t, NoColor, gs.Boards[Player1].RowColor(0))
}

func TestCopyIsIndependent(t *testing.T) {
	gs := NewGameState(rand.New(rand.NewSource(3)))
	c := gs.Copy()
	require.Equal(t, gs.Hash(), c.Hash())

	legal := c.LegalActions(c.Current)
	pool, color, target := Decode(legal[0])
	_, ok := c.Apply(c.Current, pool, color, target)
	require.True(t, ok)

	require.NotEqual(t, gs.Hash(), c.Hash(), "mutating the copy must not touch the original")
	require.Equal(t, Player1, gs.Current)
}

func TestHashChangesWithState(t *testing.T) {
	gs := NewGameState(rand.New(rand.NewSource(3)))
	h1 := gs.Hash()

	legal := gs.LegalActions(gs.Current)
	pool, color, target := Decode(legal[0])
	_, ok := gs.Apply(gs.Current, pool, color, target)
	require.True(t, ok)

	require.NotEqual(t, h1, gs.Hash())
}

func TestSnapshotIsReadOnly(t *testing.T) {
	gs := NewGameState(rand.New(rand.NewSource(3)))
	before := gs.Hash()

	v := gs.Snapshot()
	require.Equal(t, before, gs.Hash(), "taking a snapshot must not mutate")
	require.Equal(t, gs.Boards[Player1].Score, v.Boards[Player1].Score)
	require.Equal(t, gs.Pool.Slots, v.Pool)

	v.Pool[0][0] = 99
	v.Boards[0].Wall[0][0] = true
	require.Equal(t, before, gs.Hash(), "the snapshot is a detached copy")
}

func TestWinner(t *testing.T) {
	gs := newTestState()
	require.Equal(t, "", gs.Winner(), "no winner while running")

	gs.Over = true
	require.Equal(t, "draw", gs.Winner())

	gs.Boards[Player2].Score = 12
	require.Equal(t, Player2.String(), gs.Winner())
}

func TestStringRendersBothBoards(t *testing.T) {
	gs := NewGameState(rand.New(rand.NewSource(3)))
	s := gs.String()
	require.True(t, strings.Contains(s, "Player1"))
	require.True(t, strings.Contains(s, "Player2"))
	require.True(t, strings.Contains(s, "center"))
}
