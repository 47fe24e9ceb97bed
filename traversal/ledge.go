package traversal

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/traverse/game"
)

// SlopeTolerance returns the largest height difference between the two sides of a ledge that a column
// of the given radius may grab.
func SlopeTolerance(radius int32) float32 {
	return float32(game.StepUpHeight) / float32(game.SectorSize) * float32(radius*2)
}

// ValidLedge reports whether the nearest ledge found by the last collision pass can be grabbed. The
// ledge must be level across the width of the column, close enough, faced squarely and, unless
// ignoreHeadroom is set, have a click of room above it. heightLimit additionally requires both sides of
// the ledge to be within half a click of the top of the column.
func (t *Tester) ValidLedge(ctx *Context, ignoreHeadroom, heightLimit bool) bool {
	a, coll := ctx.Actor, ctx.Coll
	r := float32(coll.Setup.Radius)
	angle := coll.NearestLedgeAngle

	left, right := angle-game.Degrees(90), angle+game.Degrees(90)
	xl, zl := int32(game.Sin(left)*r), int32(game.Cos(left)*r)
	xr, zr := int32(game.Sin(right)*r), int32(game.Cos(right)*r)

	// The space beside the column must be open.
	y := a.Pose.Y - coll.Setup.Height
	l := t.World.Probe(a.Pose.X+xl, y, a.Pose.Z+zl, a.Room)
	rr := t.World.Probe(a.Pose.X+xr, y, a.Pose.Z+zr, a.Room)
	if l.Floor < a.Pose.Y-game.Click(0.5) || rr.Floor < a.Pose.Y-game.Click(0.5) {
		return false
	}
	if l.Ceiling > y || rr.Ceiling > y {
		return false
	}

	// Sample the ledge surface slightly past the column on both sides.
	xf, zf := int32(game.Sin(angle)*r*1.2), int32(game.Cos(angle)*r*1.2)
	leftFloor := t.World.Probe(a.Pose.X+xf+xl, y, a.Pose.Z+zf+zl, a.Room).Floor
	rightFloor := t.World.Probe(a.Pose.X+xf+xr, y, a.Pose.Z+zf+zr, a.Room).Floor
	if leftFloor == game.NoHeight || rightFloor == game.NoHeight {
		return false
	}
	if heightLimit && (game.AbsInt32(leftFloor-y) > game.Click(0.5) || game.AbsInt32(rightFloor-y) > game.Click(0.5)) {
		return false
	}
	if float32(game.AbsInt32(leftFloor-rightFloor)) >= SlopeTolerance(coll.Setup.Radius) {
		return false
	}

	if math32.Abs(coll.NearestLedgeDistance) > float32(game.OffsetRadius(coll.Setup.Radius)) {
		return false
	}
	if !t.ValidLedgeAngle(ctx) {
		return false
	}

	if !ignoreHeadroom {
		if coll.Front.Floor == game.NoHeight || coll.Middle.Ceiling == game.NoHeight {
			return false
		}
		if coll.Front.Floor+coll.Setup.Height-coll.Middle.Ceiling < game.Click(1) {
			return false
		}
	}
	return true
}

// ValidLedgeAngle reports whether the actor faces the nearest ledge closely enough to grab it.
func (t *Tester) ValidLedgeAngle(ctx *Context) bool {
	return (ctx.Coll.NearestLedgeAngle - ctx.Actor.Pose.YRot).Abs() <= game.GrabThreshold.Abs()
}
