package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"golang.org/x/exp/rand"
)

// Phase is the round-level state of the game.
type Phase int

const (
	// Drafting: players alternate drawing from the pool.
	Drafting Phase = iota
	// RoundComplete: the pool is exhausted and scoring has run. The state
	// machine either starts a new round or, if the game ended, stays here.
	RoundComplete
)

type StateHash uint64

// GameState is the complete state of one two-player game. It is owned and
// mutated by exactly one driving loop; engine calls never share it.
type GameState struct {
	Boards [2]PlayerBoard
	Pool   Pool

	Current Player
	// NextFirst is the player who starts the next round. It is claimed by
	// the first center draw of the current round.
	NextFirst Player
	// FirstTaken records whether the start-player marker has been claimed
	// this round.
	FirstTaken bool

	Phase Phase
	Over  bool
	Round int
}

// NewGameState creates a fresh game and deals the first round's factories
// from the injected generator.
func NewGameState(rng *rand.Rand) *GameState {
	gs := &GameState{
		Boards:    [2]PlayerBoard{NewPlayerBoard(), NewPlayerBoard()},
		NextFirst: Player1,
	}
	gs.StartRound(rng)
	return gs
}

// Copy returns an independent copy of the state. Every field is a value
// type, so assignment is a deep copy.
func (gs *GameState) Copy() *GameState {
	c := *gs
	return &c
}

// Winner returns the winning player's name once the game is over, "draw"
// on equal scores, and "" while the game is still running.
func (gs *GameState) Winner() string {
	if !gs.Over {
		return ""
	}
	s1 := gs.Boards[Player1].Score
	s2 := gs.Boards[Player2].Score
	switch {
	case s1 > s2:
		return Player1.String()
	case s2 > s1:
		return Player2.String()
	default:
		return "draw"
	}
}

// Hash returns an FNV-64a digest of the full game state.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Current))
	binary.Write(hasher, binary.LittleEndian, int64(gs.NextFirst))
	binary.Write(hasher, binary.LittleEndian, gs.FirstTaken)
	binary.Write(hasher, binary.LittleEndian, int64(gs.Phase))
	binary.Write(hasher, binary.LittleEndian, gs.Over)
	binary.Write(hasher, binary.LittleEndian, int64(gs.Round))

	for s := range gs.Pool.Slots {
		for c := range gs.Pool.Slots[s] {
			binary.Write(hasher, binary.LittleEndian, int64(gs.Pool.Slots[s][c]))
		}
	}
	for i := range gs.Boards {
		b := &gs.Boards[i]
		binary.Write(hasher, binary.LittleEndian, int64(b.Score))
		for r := range b.Rows {
			for _, color := range b.Rows[r] {
				binary.Write(hasher, binary.LittleEndian, int64(color))
			}
		}
		for r := range b.Wall {
			for _, set := range b.Wall[r] {
				binary.Write(hasher, binary.LittleEndian, set)
			}
		}
		for _, occupied := range b.Penalty {
			binary.Write(hasher, binary.LittleEndian, occupied)
		}
	}

	return StateHash(hasher.Sum64())
}

// BoardView is a read-only snapshot of one player's board.
type BoardView struct {
	Rows    [NumStagingRows][NumStagingRows]Color
	Wall    [WallSize][WallSize]bool
	Penalty [PenaltySlots]bool
	Score   int
}

// View is a read-only snapshot of the observable game state, for
// observation encoders and renderers.
type View struct {
	Boards  [2]BoardView
	Pool    [NumPoolSlots][NumColors]int
	Current Player
	Phase   Phase
	Over    bool
	Round   int
}

// Snapshot captures the current state without mutating it.
func (gs *GameState) Snapshot() View {
	v := View{
		Pool:    gs.Pool.Slots,
		Current: gs.Current,
		Phase:   gs.Phase,
		Over:    gs.Over,
		Round:   gs.Round,
	}
	for i := range gs.Boards {
		v.Boards[i] = BoardView{
			Rows:    gs.Boards[i].Rows,
			Wall:    gs.Boards[i].Wall,
			Penalty: gs.Boards[i].Penalty,
			Score:   gs.Boards[i].Score,
		}
	}
	return v
}

// String renders the full state for humans. The format carries no
// contract.
func (gs *GameState) String() string {
	var sb strings.Builder

	for i := range gs.Boards {
		b := &gs.Boards[i]
		fmt.Fprintf(&sb, "%s: %d points\n", Player(i), b.Score)
		for r := 0; r < WallSize; r++ {
			for c := 0; c < WallSize; c++ {
				if b.Wall[r][c] {
					sb.WriteByte('0' + byte(WallColor(r, c)))
				} else {
					sb.WriteByte('.')
				}
				sb.WriteByte(' ')
			}
			sb.WriteString("| ")
			for s := 0; s < RowCapacity(r); s++ {
				if b.Rows[r][s] == NoColor {
					sb.WriteByte('.')
				} else {
					sb.WriteByte('0' + byte(b.Rows[r][s]))
				}
			}
			sb.WriteByte('\n')
		}
		sb.WriteString("penalty: ")
		for _, occupied := range b.Penalty {
			if occupied {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("=", 20))
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "round %d, %s to play\n", gs.Round, gs.Current)
	for s := range gs.Pool.Slots {
		name := fmt.Sprintf("factory %d", s)
		if s == CenterSlot {
			name = "center   "
		}
		fmt.Fprintf(&sb, "%s %v\n", name, gs.Pool.Slots[s])
	}
	return sb.String()
}
