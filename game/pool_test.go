package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRefillDealsTwentyTiles(t *testing.T) {
	var p Pool
	p.Refill(rand.New(rand.NewSource(42)))

	require.Equal(t, NumFactories*TilesPerFactory, p.Total())
	for f := 0; f < NumFactories; f++ {
		count := 0
		for c := Color(0); c < NumColors; c++ {
			count += p.Count(f, c)
		}
		require.Equal(t, TilesPerFactory, count, "factory %d must hold 4 tiles", f)
	}
	for c := Color(0); c < NumColors; c++ {
		require.Zero(t, p.Count(CenterSlot, c), "center starts empty")
	}
}

func TestRefillIsSeedReproducible(t *testing.T) {
	var p1, p2 Pool
	p1.Refill(rand.New(rand.NewSource(99)))
	p2.Refill(rand.New(rand.NewSource(99)))
	require.Equal(t, p1, p2, "same seed must deal the same factories")
}

func TestSpillToCenter(t *testing.T) {
	var p Pool
	p.Slots[1] = [NumColors]int{2, 0, 1, 0, 1}
	p.Slots[CenterSlot] = [NumColors]int{0, 1, 0, 0, 0}

	p.spillToCenter(1)

	require.Equal(t, [NumColors]int{}, p.Slots[1], "factory must be emptied")
	require.Equal(t, [NumColors]int{2, 1, 1, 0, 1}, p.Slots[CenterSlot])
}

func TestEmpty(t *testing.T) {
	var p Pool
	require.True(t, p.Empty())
	p.Slots[3][2] = 1
	require.False(t, p.Empty())
}
