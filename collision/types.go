package collision

import (
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
)

// Type is the kind of obstruction found by the last collision pass.
type Type uint8

const (
	None Type = iota
	Front
	Left
	Right
	Top
	TopFront
	Clamp
)

func (t Type) String() string {
	switch t {
	case Front:
		return "front"
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case TopFront:
		return "top_front"
	case Clamp:
		return "clamp"
	}
	return "none"
}

// Mode selects how the probe ring is laid out around the actor.
type Mode uint8

const (
	// FreeFlat lays the probes out along the exact forward angle.
	FreeFlat Mode = iota
	// Quadrants snaps the probes to the grid axis nearest the forward angle.
	Quadrants
)

// Setup is the per test configuration of a collision pass.
type Setup struct {
	Mode Mode

	Radius int32
	Height int32

	ForwardAngle game.Angle

	LowerFloorBound   int32
	UpperFloorBound   int32
	LowerCeilingBound int32
	UpperCeilingBound int32

	// OldPosition is the actor's pose before this tick's movement was applied.
	OldPosition actor.Pose
}

// DefaultSetup returns the setup of a standing actor.
func DefaultSetup() Setup {
	return Setup{
		Radius:            game.ActorRadius,
		Height:            game.ActorHeight,
		LowerFloorBound:   game.NoLowerBound,
		UpperFloorBound:   -game.StepUpHeight,
		LowerCeilingBound: 0,
		UpperCeilingBound: game.MaxHeight,
	}
}

// Position is a probe of the collision ring. Floor is relative to the actor's feet, Ceiling to the top
// of its column. Either is left at game.NoHeight when nothing was found.
type Position struct {
	Floor   int32
	Ceiling int32

	FloorSlope   bool
	CeilingSlope bool

	Flags probe.SectorFlags
}

// Vec3 is an integer world offset.
type Vec3 struct {
	X, Y, Z int32
}

// Info is the result of a collision pass.
type Info struct {
	Setup Setup

	Middle      Position
	MiddleLeft  Position
	MiddleRight Position
	Front       Position
	FrontLeft   Position
	FrontRight  Position

	Type      Type
	Shift     Vec3
	HitStatic bool

	NearestLedgeAngle    game.Angle
	NearestLedgeDistance float32
}

// NewInfo returns an Info using the default setup.
func NewInfo() *Info {
	return &Info{Setup: DefaultSetup()}
}
