package collision

import (
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
)

// SnapToLedge moves the actor onto the nearest ledge found by the last collision pass and turns it to
// face the ledge. offset is a multiple of the collision radius to keep between the column and the edge.
func SnapToLedge(info *Info, a *actor.Actor, offset float32) {
	snap(a, info.NearestLedgeAngle, info.NearestLedgeDistance, float32(info.Setup.Radius)*offset)
}

// SnapToLedgeAt searches for the nearest ledge along angle from the actor's current pose and snaps the
// actor onto it. It reports whether a ledge was found; the actor is left untouched otherwise.
func SnapToLedgeAt(g probe.Geometry, info *Info, a *actor.Actor, angle game.Angle, offset float32) bool {
	l, ok := NearestLedge(g, a.Point(), angle, info.Setup.Radius, info.Setup.Height)
	if !ok {
		return false
	}
	snap(a, l.Angle, l.Distance, float32(info.Setup.Radius)*offset)
	return true
}

func snap(a *actor.Actor, angle game.Angle, dist, margin float32) {
	a.Pose.XRot, a.Pose.YRot, a.Pose.ZRot = 0, angle, 0
	a.Pose.X += game.RoundInt32(game.Sin(angle) * (dist + margin))
	a.Pose.Z += game.RoundInt32(game.Cos(angle) * (dist + margin))
}

// SnapToGrid snaps the actor onto the nearest ledge and then flush against the sector wall it faces.
func SnapToGrid(info *Info, a *actor.Actor) {
	SnapToLedge(info, a, 0)

	r := info.Setup.Radius
	switch a.Pose.YRot.Quadrant() {
	case game.North:
		a.Pose.Z = (a.Pose.Z | sectorMask) - r
	case game.East:
		a.Pose.X = (a.Pose.X | sectorMask) - r
	case game.South:
		a.Pose.Z = (a.Pose.Z &^ sectorMask) + r
	case game.West:
		a.Pose.X = (a.Pose.X &^ sectorMask) + r
	}
}

// SnapToEdgeOfBlock puts a shimmying actor back at the end of the sector edge it was moving along,
// using its position from before the move.
func SnapToEdgeOfBlock(a *actor.Actor, old actor.Pose, q game.Quadrant, right bool) {
	if right {
		switch q {
		case game.North:
			a.Pose.X = old.X&^0x6F | 0x390
		case game.East:
			a.Pose.Z = old.Z &^ 0x38F
		case game.South:
			a.Pose.X = old.X &^ 0x38F
		case game.West:
			a.Pose.Z = old.Z&^0x6F | 0x390
		}
		return
	}
	switch q {
	case game.North:
		a.Pose.X = old.X &^ 0x38F
	case game.East:
		a.Pose.Z = old.Z&^0x6F | 0x390
	case game.South:
		a.Pose.X = old.X&^0x6F | 0x390
	case game.West:
		a.Pose.Z = old.Z &^ 0x38F
	}
}

// Shift applies and clears the correction found by the last collision pass.
func Shift(a *actor.Actor, info *Info) {
	a.Pose.X += info.Shift.X
	a.Pose.Y += info.Shift.Y
	a.Pose.Z += info.Shift.Z
	info.Shift = Vec3{}
}
