package probe

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/traverse/game"
)

// Point is a world position paired with the room it is expected to be in.
type Point struct {
	X, Y, Z int32
	Room    int16
}

// Result is the floor and ceiling found at a single world point. Heights are absolute, with Y growing
// downwards, and are game.NoHeight when nothing was found.
type Result struct {
	Floor   int32
	Ceiling int32

	FloorSlope   bool
	CeilingSlope bool

	Flags SectorFlags
	// Room is the room the probed point resolved to.
	Room int16
}

// Clamp returns the vertical space between the floor and the ceiling.
func (r Result) Clamp() int32 {
	return game.AbsInt32(r.Ceiling - r.Floor)
}

// Geometry bridges the sector/height map and the line of sight service.
type Geometry interface {
	// Probe samples the floor and ceiling at the given point.
	Probe(x, y, z int32, room int16) Result
	// LineOfSight reports whether the segment between the two points is unobstructed.
	LineOfSight(start, end Point) bool
}

// Environment exposes room wide hazard classification.
type Environment interface {
	RoomFlags(room int16) RoomFlags
}

// Ledge is an edge detected in front of an actor. Distance is measured from the actor's collision
// radius, so a negative distance means the actor is embedded past the edge.
type Ledge struct {
	Angle    game.Angle
	Distance float32
}

// LedgeFinder is implemented by geometry that can locate ledges itself. Geometry that does not
// implement it gets a generic probing search.
type LedgeFinder interface {
	NearestLedge(pos Point, forward game.Angle, radius, height int32) (Ledge, bool)
}

// Statics is implemented by geometry that has static obstacles on top of the sector data.
type Statics interface {
	StaticBoxes(around cube.BBox) []cube.BBox
}

// Objects is implemented by worlds that hold climbable poles.
type Objects interface {
	Poles(around cube.BBox) []cube.BBox
}
