package probe

import "github.com/oomph-ac/traverse/game"

// SectorFlags are the per-sector hazard and traversal flags.
type SectorFlags uint16

const (
	Death SectorFlags = 1 << iota
	MonkeySwing
)

// ClimbNorth and its siblings mark a climbable wall on one side of the sector. The bit for a quadrant
// is ClimbNorth << quadrant.
const (
	ClimbNorth SectorFlags = 0x100 << iota
	ClimbEast
	ClimbSouth
	ClimbWest

	ClimbMask = ClimbNorth | ClimbEast | ClimbSouth | ClimbWest
)

// Climb returns the climbable wall bit for the given quadrant.
func Climb(q game.Quadrant) SectorFlags {
	return ClimbNorth << q
}

// Has reports whether all bits of f are set.
func (s SectorFlags) Has(f SectorFlags) bool {
	return s&f == f
}

// RoomFlags classify a whole room.
type RoomFlags uint8

const (
	Swamp RoomFlags = 1 << iota
	Water
)

// Has reports whether all bits of f are set.
func (r RoomFlags) Has(f RoomFlags) bool {
	return r&f == f
}
