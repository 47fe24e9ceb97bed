package traversal

import (
	"github.com/oomph-ac/traverse/collision"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
)

// MonkeyMoveSetup parameterises a monkey swing movement test. Lower and Upper bound the ceiling height
// change along the path.
type MonkeyMoveSetup struct {
	Angle        game.Angle
	Lower, Upper int32
}

// MonkeyMoveTolerance reports whether an actor hanging from a monkey swing ceiling can move along
// s.Angle.
func (t *Tester) MonkeyMoveTolerance(ctx *Context, s MonkeyMoveSetup) bool {
	a := ctx.Actor
	y := a.Pose.Y - game.ActorHeightMonkey

	p := collision.At(t.World, a, s.Angle, float32(game.OffsetRadius(ctx.Coll.Setup.Radius)), 0)
	if p.Ceiling == game.NoHeight || p.Floor == game.NoHeight || p.CeilingSlope {
		return false
	}

	start1 := probe.Point{X: a.Pose.X, Y: y + s.Lower + 1, Z: a.Pose.Z, Room: a.Room}
	end1 := probe.Point{X: p.X, Y: p.Y - game.ActorHeightMonkey + s.Lower + 1, Z: p.Z, Room: a.Room}
	start2 := probe.Point{X: a.Pose.X, Y: y + game.ActorHeightMonkey - 1, Z: a.Pose.Z, Room: a.Room}
	end2 := probe.Point{X: p.X, Y: p.Y - 1, Z: p.Z, Room: a.Room}
	if !t.los(start1, end1) || !t.los(start2, end2) {
		return false
	}

	ceiling := p.Ceiling - y
	return p.Flags.Has(probe.MonkeySwing) &&
		p.Floor-y > game.ActorHeightMonkey &&
		ceiling <= s.Lower && ceiling >= s.Upper &&
		p.Clamp() > game.ActorHeightMonkey
}

func (t *Tester) MonkeyForward(ctx *Context) bool {
	return t.MonkeyMoveTolerance(ctx, MonkeyMoveSetup{Angle: ctx.Actor.Pose.YRot, Lower: game.Click(1.25), Upper: -game.Click(1.25)})
}

func (t *Tester) MonkeyBack(ctx *Context) bool {
	return t.MonkeyMoveTolerance(ctx, MonkeyMoveSetup{Angle: ctx.Actor.Pose.YRot + game.Degrees(180), Lower: game.Click(1.25), Upper: -game.Click(1.25)})
}

func (t *Tester) MonkeyShimmyLeft(ctx *Context) bool {
	return t.MonkeyMoveTolerance(ctx, MonkeyMoveSetup{Angle: ctx.Actor.Pose.YRot - game.Degrees(90), Lower: game.Click(0.5), Upper: -game.Click(0.5)})
}

func (t *Tester) MonkeyShimmyRight(ctx *Context) bool {
	return t.MonkeyMoveTolerance(ctx, MonkeyMoveSetup{Angle: ctx.Actor.Pose.YRot + game.Degrees(90), Lower: game.Click(0.5), Upper: -game.Click(0.5)})
}

// MonkeyGrab reports whether a jumping actor can grab the monkey swing ceiling above it.
func (t *Tester) MonkeyGrab(ctx *Context) bool {
	a, coll := ctx.Actor, ctx.Coll
	if !a.Control.CanMonkeySwing || coll.Middle.Ceiling == game.NoHeight || coll.Middle.Floor == game.NoHeight {
		return false
	}
	return coll.Middle.Ceiling <= game.Click(0.5) &&
		(coll.Middle.Ceiling >= 0 || coll.Type == collision.Top || coll.Type == collision.TopFront) &&
		game.AbsInt32(coll.Middle.Ceiling+coll.Middle.Floor+coll.Setup.Height) > game.ActorHeightMonkey
}

// MonkeyFall reports whether an actor on a monkey swing has lost the ceiling above it.
func (t *Tester) MonkeyFall(ctx *Context) bool {
	a := ctx.Actor
	y := a.Pose.Y - game.ActorHeightMonkey
	p := collision.Middle(t.World, a)
	if !a.Control.CanMonkeySwing || p.Ceiling == game.NoHeight || p.CeilingSlope {
		return true
	}
	return game.AbsInt32(p.Ceiling-y) > game.Click(1.25)
}

// MonkeyStep reports whether the monkey swing ceiling changed by a step the actor can follow.
func (t *Tester) MonkeyStep(ctx *Context) bool {
	a := ctx.Actor
	y := a.Pose.Y - game.ActorHeightMonkey
	p := collision.Middle(t.World, a)
	return p.Ceiling != game.NoHeight && game.AbsInt32(p.Ceiling-y) <= game.Click(1.25)
}
