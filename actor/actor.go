package actor

import (
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
)

// Pose is a position and orientation in the world. Y grows downwards.
type Pose struct {
	X, Y, Z          int32
	XRot, YRot, ZRot game.Angle
}

// Translate moves the pose dist units along the given horizontal angle.
func (p *Pose) Translate(angle game.Angle, dist float32) {
	p.X = int32(float32(p.X) + game.Sin(angle)*dist)
	p.Z = int32(float32(p.Z) + game.Cos(angle)*dist)
}

// Offset returns the pose moved dist units along the given horizontal angle.
func (p Pose) Offset(angle game.Angle, dist float32) Pose {
	p.Translate(angle, dist)
	return p
}

// Point returns the position of the pose in the given room.
func (p Pose) Point(room int16) probe.Point {
	return probe.Point{X: p.X, Y: p.Y, Z: p.Z, Room: room}
}

// HandStatus tracks whether the actor's hands are free for a new action.
type HandStatus uint8

const (
	HandsFree HandStatus = iota
	HandsBusy
	HandsWeaponDraw
	HandsWeaponReady
)

// WaterStatus is the actor's relation to water, maintained by the water system.
type WaterStatus uint8

const (
	Dry WaterStatus = iota
	Wade
	Surface
	Underwater
)

// Animation is the state of the actor's animation and state machine. Frame is relative to the first
// frame of the current animation.
type Animation struct {
	Number AnimID
	Frame  int32

	ActiveState   State
	TargetState   State
	RequiredState State

	Velocity         int32
	VerticalVelocity int32
	Airborne         bool
}

// Control holds the traversal related control flags of the actor.
type Control struct {
	MoveAngle   game.Angle
	HandStatus  HandStatus
	WaterStatus WaterStatus

	CanClimbLadder bool
	CanMonkeySwing bool

	TurnRate               int32
	CalculatedJumpVelocity int32

	// RunCount is the number of ticks spent running up to a jump, capped once a running jump is possible.
	RunCount      int32
	RunJumpQueued bool

	HoldingFlare         bool
	CanDismountTightrope bool
}

// Actor is the kinematic state of a controllable actor. It is owned by the caller and mutated by
// whichever tester is committing a transition; it must never be used by two testers at once.
type Actor struct {
	Pose      Pose
	Room      int16
	HitPoints int32

	Anim    Animation
	Control Control

	// WaterSurfaceDist is the distance from the actor's feet to the water surface, negative when the
	// surface is above the feet.
	WaterSurfaceDist int32

	// ProjectedFloorHeight is the absolute floor height a committed vault lands on.
	ProjectedFloorHeight int32

	// NextCornerPos is the anchor recorded by the last successful corner test.
	NextCornerPos     Pose
	TargetFacingAngle game.Angle
}

// Point returns the actor's position.
func (a *Actor) Point() probe.Point {
	return a.Pose.Point(a.Room)
}

// Alive reports whether the actor has hit points left.
func (a *Actor) Alive() bool {
	return a.HitPoints > 0
}

// Halt zeroes both velocities and grounds the actor.
func (a *Actor) Halt() {
	a.Anim.Velocity = 0
	a.Anim.VerticalVelocity = 0
	a.Anim.Airborne = false
}

// FallAway launches the actor into the canonical fall-away motion and frees its hands.
func (a *Actor) FallAway() {
	a.Anim.Airborne = true
	a.Anim.Velocity = 2
	a.Anim.VerticalVelocity = 1
	a.Control.HandStatus = HandsFree
}
