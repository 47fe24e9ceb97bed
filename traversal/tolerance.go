package traversal

import (
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/collision"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
)

// MoveSetup parameterises a ground movement test. Lower and Upper bound the floor height change along
// the path, positive heights being downwards.
type MoveSetup struct {
	Angle        game.Angle
	Lower, Upper int32

	CheckSlopeDown bool
	CheckSlopeUp   bool
	CheckDeath     bool
}

// NewMoveSetup returns a MoveSetup with every check enabled.
func NewMoveSetup(angle game.Angle, lower, upper int32) MoveSetup {
	return MoveSetup{
		Angle:          angle,
		Lower:          lower,
		Upper:          upper,
		CheckSlopeDown: true,
		CheckSlopeUp:   true,
		CheckDeath:     true,
	}
}

// MoveTolerance reports whether the actor can move along s.Angle with its current collision column.
func (t *Tester) MoveTolerance(ctx *Context, s MoveSetup) bool {
	return t.moveTolerance(ctx.Actor, s, ctx.Coll.Setup.Radius, ctx.Coll.Setup.Height)
}

// CrawlMoveTolerance is MoveTolerance for a crawling column.
func (t *Tester) CrawlMoveTolerance(ctx *Context, s MoveSetup) bool {
	return t.moveTolerance(ctx.Actor, s, game.ActorRadiusCrawl, game.ActorHeightCrawl)
}

func (t *Tester) moveTolerance(a *actor.Actor, s MoveSetup, radius, height int32) bool {
	y := a.Pose.Y
	p := collision.At(t.World, a, s.Angle, float32(game.OffsetRadius(radius)), -height)
	if p.Floor == game.NoHeight || p.Ceiling == game.NoHeight {
		return false
	}

	switch {
	case s.CheckSlopeDown && p.FloorSlope && p.Floor > y:
		return false
	case s.CheckSlopeUp && p.FloorSlope && p.Floor < y:
		return false
	case s.CheckDeath && p.Flags.Has(probe.Death):
		return false
	}

	// Check at the lowest point the actor may step over and at head height.
	if !t.los(probe.Point{X: a.Pose.X, Y: y + s.Upper - 1, Z: a.Pose.Z, Room: a.Room}, probe.Point{X: p.X, Y: y + s.Upper - 1, Z: p.Z, Room: a.Room}) {
		return false
	}
	if !t.los(probe.Point{X: a.Pose.X, Y: y - height + 1, Z: a.Pose.Z, Room: a.Room}, probe.Point{X: p.X, Y: p.Y + 1, Z: p.Z, Room: a.Room}) {
		return false
	}

	floor, ceiling := p.Floor-y, p.Ceiling-y
	return floor <= s.Lower && floor >= s.Upper && ceiling < -height && p.Clamp() > height
}

func (t *Tester) RunForward(ctx *Context) bool {
	return t.MoveTolerance(ctx, MoveSetup{
		Angle:        ctx.Actor.Pose.YRot,
		Lower:        game.NoLowerBound,
		Upper:        -game.StepUpHeight,
		CheckSlopeUp: true,
	})
}

func (t *Tester) WalkForward(ctx *Context) bool {
	return t.MoveTolerance(ctx, NewMoveSetup(ctx.Actor.Pose.YRot, game.StepUpHeight, -game.StepUpHeight))
}

func (t *Tester) WalkBack(ctx *Context) bool {
	return t.MoveTolerance(ctx, NewMoveSetup(ctx.Actor.Pose.YRot+game.Degrees(180), game.StepUpHeight, -game.StepUpHeight))
}

func (t *Tester) RunBack(ctx *Context) bool {
	return t.MoveTolerance(ctx, MoveSetup{
		Angle: ctx.Actor.Pose.YRot + game.Degrees(180),
		Lower: game.NoLowerBound,
		Upper: -game.StepUpHeight,
	})
}

func (t *Tester) StepLeft(ctx *Context) bool {
	return t.MoveTolerance(ctx, NewMoveSetup(ctx.Actor.Pose.YRot-game.Degrees(90), game.Click(0.8), -game.Click(0.8)))
}

func (t *Tester) StepRight(ctx *Context) bool {
	return t.MoveTolerance(ctx, NewMoveSetup(ctx.Actor.Pose.YRot+game.Degrees(90), game.Click(0.8), -game.Click(0.8)))
}

// WadeForwardSwamp and the other swamp variants skip the slope and death checks.
func (t *Tester) WadeForwardSwamp(ctx *Context) bool {
	return t.MoveTolerance(ctx, MoveSetup{Angle: ctx.Actor.Pose.YRot, Lower: game.NoLowerBound, Upper: -game.StepUpHeight})
}

func (t *Tester) WalkBackSwamp(ctx *Context) bool {
	return t.MoveTolerance(ctx, MoveSetup{Angle: ctx.Actor.Pose.YRot + game.Degrees(180), Lower: game.NoLowerBound, Upper: -game.StepUpHeight})
}

func (t *Tester) StepLeftSwamp(ctx *Context) bool {
	return t.MoveTolerance(ctx, MoveSetup{Angle: ctx.Actor.Pose.YRot - game.Degrees(90), Lower: game.NoLowerBound, Upper: -game.Click(0.8)})
}

func (t *Tester) StepRightSwamp(ctx *Context) bool {
	return t.MoveTolerance(ctx, MoveSetup{Angle: ctx.Actor.Pose.YRot + game.Degrees(90), Lower: game.NoLowerBound, Upper: -game.Click(0.8)})
}

func (t *Tester) CrawlForward(ctx *Context) bool {
	return t.CrawlMoveTolerance(ctx, NewMoveSetup(ctx.Actor.Pose.YRot, game.Click(1)-1, -(game.Click(1) - 1)))
}

func (t *Tester) CrawlBack(ctx *Context) bool {
	return t.CrawlMoveTolerance(ctx, NewMoveSetup(ctx.Actor.Pose.YRot+game.Degrees(180), game.Click(1)-1, -(game.Click(1) - 1)))
}

// CrouchRoll reports whether there is room to roll forward out of a crouch.
func (t *Tester) CrouchRoll(ctx *Context) bool {
	a := ctx.Actor
	if ctx.Input.Has(actor.InputFlare|actor.InputDraw) || a.Control.HoldingFlare {
		return false
	}

	y := a.Pose.Y
	p := collision.At(t.World, a, a.Pose.YRot, float32(game.Click(3)), -game.ActorHeightCrawl)
	if p.Floor == game.NoHeight || p.Ceiling == game.NoHeight {
		return false
	}

	floor := p.Floor - y
	return floor <= game.Click(1)-1 && floor >= -(game.Click(1)-1) &&
		p.Ceiling-y < -game.ActorHeightCrawl &&
		!p.FloorSlope &&
		a.WaterSurfaceDist >= -game.Click(1)
}

// CrouchToCrawl reports whether the actor is free to drop from a crouch onto all fours.
func (t *Tester) CrouchToCrawl(ctx *Context) bool {
	a := ctx.Actor
	return !ctx.Input.Has(actor.InputFlare|actor.InputDraw) &&
		a.Control.HandStatus == actor.HandsFree &&
		!a.Control.HoldingFlare
}

// KeepLow reports whether the actor must stay crouched because there is a low ceiling in front of,
// behind or above it.
func (t *Tester) KeepLow(ctx *Context) bool {
	a := ctx.Actor
	radius := game.ActorRadiusCrawl
	switch a.Anim.ActiveState {
	case actor.StateCrouchIdle, actor.StateCrouchTurnLeft, actor.StateCrouchTurnRight:
		radius = game.ActorRadius
	}

	y := a.Pose.Y
	h := ctx.Coll.Setup.Height
	front := collision.At(t.World, a, a.Pose.YRot, float32(radius), -h)
	back := collision.At(t.World, a, a.Pose.YRot+game.Degrees(180), float32(radius), -h)
	mid := collision.Middle(t.World, a)

	return front.Ceiling-y >= -game.ActorHeight ||
		back.Ceiling-y >= -game.ActorHeight ||
		mid.Ceiling-y >= -game.ActorHeight
}
