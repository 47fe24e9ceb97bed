package traversal

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/collision"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
)

// CornerResult is the kind of corner a hanging actor can shimmy around.
type CornerResult uint8

const (
	CornerNone CornerResult = iota
	CornerInner
	CornerOuter
)

func (c CornerResult) String() string {
	switch c {
	case CornerInner:
		return "inner"
	case CornerOuter:
		return "outer"
	}
	return "none"
}

// CornerTestResult holds the two candidate poses computed by NextCornerPosition. RealPosition is the
// pose the actor ends up in after the turn, ProbePosition a pose slightly further around the corner
// used to validate the ledge there.
type CornerTestResult struct {
	Success       bool
	RealPosition  actor.Pose
	ProbePosition actor.Pose
}

// Ladder corner tables, indexed by the quadrant of the actor's heading: the climb bit that must be set
// at the corner for a ladder to continue around it.
var (
	cornerLeftIntRightExt = [4]probe.SectorFlags{probe.ClimbWest, probe.ClimbNorth, probe.ClimbEast, probe.ClimbSouth}
	cornerLeftExtRightInt = [4]probe.SectorFlags{probe.ClimbEast, probe.ClimbSouth, probe.ClimbWest, probe.ClimbNorth}
)

// NextCornerPosition computes where a hanging actor would end up after turning around a corner of angle
// degrees (negative to the left), moving along its move angle. The corner is inner, turning towards the
// wall, unless outer is set. The actor's pose is always restored.
func (t *Tester) NextCornerPosition(ctx *Context, angle float32, outer bool) CornerTestResult {
	a, coll := ctx.Actor, ctx.Coll
	snap := a.Begin()
	defer snap.Restore()

	turn := -angle
	if outer {
		turn = angle
	}
	r := float32(coll.Setup.Radius)
	push := r * 0.2
	if outer {
		push = -push
	}
	newAngle := a.Pose.YRot - game.Degrees(turn)
	s, c := game.Sin(game.Degrees(turn)), game.Cos(game.Degrees(turn))

	var (
		poses [2]actor.Pose
		found [2]bool
	)
	for i, reach := range [2]float32{2, 2.5} {
		p := snap.Pose()
		p.X -= game.RoundInt32(push * game.Sin(p.YRot))
		p.Z -= game.RoundInt32(push * game.Cos(p.YRot))
		p.X += game.RoundInt32(r * reach * game.Sin(a.Control.MoveAngle))
		p.Z += game.RoundInt32(r * reach * game.Cos(a.Control.MoveAngle))

		// The corner pivot, one radius in front of the actor and one radius to the side it turns from.
		side := p.YRot + game.Degrees(90*-math32.Copysign(1, angle))
		pivot := mgl32.Vec2{
			float32(p.X+game.RoundInt32(r*game.Sin(p.YRot))) + r*game.Sin(side),
			float32(p.Z+game.RoundInt32(r*game.Cos(p.YRot))) + r*game.Cos(side),
		}
		rotated := game.Rotate2D(mgl32.Vec2{float32(p.X), float32(p.Z)}.Sub(pivot), s, c).Add(pivot)
		p.X, p.Z = int32(rotated.X()), int32(rotated.Y())
		p.YRot = newAngle

		a.Pose = p
		found[i] = collision.SnapToLedgeAt(t.World, coll, a, p.YRot, 0)
		poses[i] = a.Pose
		a.Pose = snap.Pose()
	}

	// Only the second pass has to land on the turned heading.
	return CornerTestResult{
		Success:       found[0] && found[1] && newAngle == poses[1].YRot,
		RealPosition:  poses[0],
		ProbePosition: poses[1],
	}
}

// HangCorner reports whether a hanging actor can shimmy around a corner of angle degrees, negative to
// the left. The actor must be moving along the ledge, that is its move angle must point sideways. On
// success the anchor of the turn is recorded in the actor's NextCornerPos. The actor's pose, move angle
// and collision info are restored in every case.
func (t *Tester) HangCorner(ctx *Context, angle float32) CornerResult {
	a, coll := ctx.Actor, ctx.Coll
	if a.Anim.Number != actor.AnimReachToHang || coll.HitStatic {
		return CornerNone
	}

	saved := *coll
	defer func() { *ctx.Coll = saved }()
	snap := a.Begin()
	defer snap.Restore()

	inner, outer := cornerLeftIntRightExt, cornerLeftExtRightInt
	if angle > 0 {
		inner, outer = outer, inner
	}

	if res := t.NextCornerPosition(ctx, angle, false); res.Success && t.cornerAnchor(ctx, res, inner) {
		return CornerInner
	}

	// Outer corners need open space to swing around into.
	r := float32(coll.Setup.Radius + game.Click(1))
	side := a.Pose.YRot + game.Degrees(angle)
	if collision.FloorFront(t.World, a, side, r) < 0 || collision.CeilingFront(t.World, a, side, r, coll.Setup.Height) > 0 {
		return CornerNone
	}
	if !t.SweepClear(a, side, r) {
		return CornerNone
	}

	res := t.NextCornerPosition(ctx, angle, true)
	if collision.FloorFront(t.World, a, a.Pose.YRot, 0) < 0 || collision.CeilingFront(t.World, a, a.Pose.YRot, 0, coll.Setup.Height) > 0 {
		res.Success = false
	}
	if res.Success && t.cornerAnchor(ctx, res, outer) {
		return CornerOuter
	}
	return CornerNone
}

// cornerAnchor records the anchor of a corner turn and validates the hang position past it. A ladder
// continuing around the corner, flagged as in table, is accepted as well.
func (t *Tester) cornerAnchor(ctx *Context, res CornerTestResult, table [4]probe.SectorFlags) bool {
	a, coll := ctx.Actor, ctx.Coll
	pose, moveAngle := a.Pose, a.Control.MoveAngle

	top, _ := t.bounds(a)
	top = game.AbsInt32(top)

	a.Pose = res.RealPosition
	a.NextCornerPos = a.Pose
	if above := collision.AboveFront(t.World, a, a.Pose.YRot, float32(coll.Setup.Radius*2), top+game.ActorHeadroom); above.Floor != game.NoHeight {
		a.NextCornerPos.Y = above.Floor + top
	} else {
		a.NextCornerPos.Y = game.NoHeight
	}
	a.Control.MoveAngle = a.Pose.YRot

	a.Pose = res.ProbePosition
	ok := t.ValidHangPos(ctx)
	a.Pose, a.Control.MoveAngle = pose, moveAngle
	if ok {
		return true
	}

	if !a.Control.CanClimbLadder {
		return false
	}
	flags := t.World.Probe(a.NextCornerPos.X, a.Pose.Y, a.NextCornerPos.Z, a.Room).Flags
	if !flags.Has(table[a.Pose.YRot.Quadrant()]) {
		return false
	}
	a.NextCornerPos.Y = a.Pose.Y
	return true
}

// SweepClear reports whether both sight lines from a hanging actor along angle are unobstructed for
// dist units.
func (t *Tester) SweepClear(a *actor.Actor, angle game.Angle, dist float32) bool {
	return t.los(t.sweep(a, angle, dist, -game.ActorHeadroom)) &&
		t.los(t.sweep(a, angle, dist, -game.ActorHeight+game.ActorHeadroom))
}

// PositionOnLOS reports whether both the upper and lower sight lines from the actor along angle are
// blocked within dist units.
func (t *Tester) PositionOnLOS(a *actor.Actor, angle game.Angle, dist float32) bool {
	return !t.los(t.sweep(a, angle, dist, -game.ActorHeadroom)) &&
		!t.los(t.sweep(a, angle, dist, -game.ActorHeight+game.ActorHeadroom))
}

func (t *Tester) sweep(a *actor.Actor, angle game.Angle, dist float32, yOffset int32) (probe.Point, probe.Point) {
	start := probe.Point{X: a.Pose.X, Y: a.Pose.Y + yOffset, Z: a.Pose.Z, Room: a.Room}
	end := start
	end.X = int32(float32(end.X) + dist*game.Sin(angle))
	end.Z = int32(float32(end.Z) + dist*game.Cos(angle))
	return start, end
}
