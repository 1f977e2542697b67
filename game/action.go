package game

// Action ids number the flat (pool, color, target) move space [0, 180).
// Encode and Decode are total over that range; ids whose decoded components
// fall outside the valid ranges are screened by legality checking, not here.

// Encode maps a (pool, color, target) triple to its action id.
func Encode(pool int, color Color, target int) int {
	return pool + int(color)*NumPoolSlots + target*NumPoolSlots*NumColors
}

// Decode is the inverse of Encode.
func Decode(id int) (pool int, color Color, target int) {
	pool = id % NumPoolSlots
	color = Color((id / NumPoolSlots) % NumColors)
	target = id / (NumPoolSlots * NumColors)
	return pool, color, target
}
