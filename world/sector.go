package world

import (
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
)

// Sector is one square cell of a room. Heights are absolute, with Y growing downwards.
type Sector struct {
	Floor   int32
	Ceiling int32

	FloorSlope   bool
	CeilingSlope bool

	Flags probe.SectorFlags
}

// Wall is a solid sector. It has neither a floor nor a ceiling.
var Wall = Sector{Floor: game.NoHeight, Ceiling: game.NoHeight}

// Solid reports whether the sector is a wall.
func (s Sector) Solid() bool {
	return s.Floor == game.NoHeight
}

// contains reports whether y lies in the open space between the floor and the ceiling of the sector.
func (s Sector) contains(y int32) bool {
	return !s.Solid() && y <= s.Floor && y >= s.Ceiling
}

// result converts the sector into a probe result for the room passed.
func (s Sector) result(room int16) probe.Result {
	if s.Solid() {
		return probe.Result{Floor: game.NoHeight, Ceiling: game.NoHeight, Room: room}
	}
	return probe.Result{
		Floor:        s.Floor,
		Ceiling:      s.Ceiling,
		FloorSlope:   s.FloorSlope,
		CeilingSlope: s.CeilingSlope,
		Flags:        s.Flags,
		Room:         room,
	}
}
