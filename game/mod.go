package game

// Player identifies one of the two players. Boards are indexed by Player,
// never branched on by name.
type Player int

const (
	Player1 Player = iota
	Player2
)

func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	if p == Player1 {
		return "Player1"
	}
	return "Player2"
}

// Color identifies one of the five tile colors. Staging-row slots hold
// NoColor while empty.
type Color int

const NoColor Color = -1

// Fixed constants of the ruleset. Factory counts, row capacities, and
// penalty costs are not configurable.
const (
	NumColors       = 5
	NumFactories    = 5
	NumPoolSlots    = NumFactories + 1
	CenterSlot      = 5
	TilesPerFactory = 4
	NumStagingRows  = 5
	WallSize        = 5
	PenaltySlots    = 7

	// PenaltyTarget is the placement target that routes drafted tiles
	// straight to the penalty track.
	PenaltyTarget = 5

	NumTargets = 6
	NumActions = NumPoolSlots * NumColors * NumTargets
)

// penaltyCosts is the tiered cost per penalty slot index.
var penaltyCosts = [PenaltySlots]int{1, 1, 2, 2, 2, 3, 3}

// WallColumn returns the column where color lands in the given wall row.
func WallColumn(color Color, row int) int {
	return (int(color) + row) % WallSize
}

// WallColor returns the only color that cell (row, col) may ever hold.
func WallColor(row, col int) Color {
	return Color(((col-row)%WallSize + WallSize) % WallSize)
}
