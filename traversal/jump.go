package traversal

import (
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/collision"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
)

// JumpSetup parameterises a jump test.
type JumpSetup struct {
	Angle    game.Angle
	Distance int32
	// CheckWadeStatus rejects jumps while wading.
	CheckWadeStatus bool
}

// NewJumpSetup returns a JumpSetup with the default take-off distance.
func NewJumpSetup(angle game.Angle) JumpSetup {
	return JumpSetup{Angle: angle, Distance: game.Click(0.85), CheckWadeStatus: true}
}

// JumpTolerance reports whether the actor has room to jump along s.Angle.
func (t *Tester) JumpTolerance(ctx *Context, s JumpSetup) bool {
	a, coll := ctx.Actor, ctx.Coll
	y := a.Pose.Y
	h := coll.Setup.Height

	p := collision.At(t.World, a, s.Angle, float32(s.Distance), -h)
	if p.Floor == game.NoHeight || p.Ceiling == game.NoHeight {
		return false
	}
	if t.swamp(a) || (s.CheckWadeStatus && a.Control.WaterStatus == actor.Wade) {
		return false
	}

	floor, ceiling := p.Floor-y, p.Ceiling-y
	return !t.FacingCorner(a, s.Angle, float32(s.Distance)) &&
		floor >= -game.StepUpHeight &&
		(float32(ceiling) < -(float32(h)+float32(game.ActorHeadroom)*0.8) ||
			(ceiling < -h && floor >= game.Click(0.5)))
}

// runJumpTime is the number of ticks of run-up a running jump needs.
const runJumpTime = 22

// RunJumpControl counts the run-up of a running actor and starts a running jump once jump is pressed
// and the run-up is long enough. A jump pressed too early is queued and taken when the run-up
// completes, for as long as the actor stays in a state a running jump can be queued from.
func (t *Tester) RunJumpControl(ctx *Context) bool {
	a := ctx.Actor
	c := &a.Control
	state := a.Anim.ActiveState

	if !actor.IsRunJumpCountableState(state) {
		c.RunCount = 0
	} else if c.RunCount < runJumpTime {
		c.RunCount++
	}
	if !actor.IsRunJumpQueueableState(state) {
		c.RunJumpQueued = false
		return false
	}
	if !ctx.Input.Has(actor.InputJump) && !c.RunJumpQueued {
		return false
	}
	if !t.RunJumpForward(ctx) {
		c.RunJumpQueued = false
		return false
	}
	if c.RunCount < runJumpTime {
		c.RunJumpQueued = true
		ctx.Trace.Set("jump.run.queued", c.RunCount)
		return false
	}

	c.RunJumpQueued = false
	t.target(ctx, "jump.run", actor.StateJumpForward)
	return true
}

func (t *Tester) RunJumpForward(ctx *Context) bool {
	s := NewJumpSetup(ctx.Actor.Pose.YRot)
	s.Distance = game.Click(1.5)
	return t.JumpTolerance(ctx, s)
}

func (t *Tester) JumpForward(ctx *Context) bool {
	return t.JumpTolerance(ctx, NewJumpSetup(ctx.Actor.Pose.YRot))
}

func (t *Tester) JumpBack(ctx *Context) bool {
	return t.JumpTolerance(ctx, NewJumpSetup(ctx.Actor.Pose.YRot+game.Degrees(180)))
}

func (t *Tester) JumpLeft(ctx *Context) bool {
	return t.JumpTolerance(ctx, NewJumpSetup(ctx.Actor.Pose.YRot-game.Degrees(90)))
}

func (t *Tester) JumpRight(ctx *Context) bool {
	return t.JumpTolerance(ctx, NewJumpSetup(ctx.Actor.Pose.YRot+game.Degrees(90)))
}

// JumpUp tests the space straight above the actor.
func (t *Tester) JumpUp(ctx *Context) bool {
	return t.JumpTolerance(ctx, JumpSetup{})
}

// FacingCorner reports whether the actor faces into a corner: both sight lines 15 degrees to either side
// of angle are blocked within dist units.
func (t *Tester) FacingCorner(a *actor.Actor, angle game.Angle, dist float32) bool {
	start := probe.Point{X: a.Pose.X, Y: a.Pose.Y - game.StepUpHeight, Z: a.Pose.Z, Room: a.Room}
	blocked := func(angle game.Angle) bool {
		end := start
		end.X = int32(float32(end.X) + dist*game.Sin(angle))
		end.Z = int32(float32(end.Z) + dist*game.Cos(angle))
		return !t.los(start, end)
	}
	return blocked(angle-game.Degrees(15)) && blocked(angle+game.Degrees(15))
}

// Splat reports whether a wall stands dist units ahead of the actor, tested height units below its feet
// and side units to its right.
func (t *Tester) Splat(ctx *Context, dist, height, side int32) bool {
	a := ctx.Actor
	s, c := game.Sin(a.Pose.YRot), game.Cos(a.Pose.YRot)

	start := probe.Point{
		X:    int32(float32(a.Pose.X) + float32(side)*c),
		Y:    a.Pose.Y + height,
		Z:    int32(float32(a.Pose.Z) - float32(side)*s),
		Room: a.Room,
	}
	end := probe.Point{
		X:    int32(float32(a.Pose.X) + float32(dist)*s + float32(side)*c),
		Y:    a.Pose.Y + height,
		Z:    int32(float32(a.Pose.Z) + float32(dist)*c - float32(side)*s),
		Room: a.Room,
	}
	return !t.los(start, end)
}

// Land reports whether an airborne actor touches down this tick.
func (t *Tester) Land(ctx *Context) bool {
	a := ctx.Actor
	if !a.Anim.Airborne || a.Anim.VerticalVelocity < 0 {
		return false
	}
	if t.swamp(a) {
		return true
	}

	mid := collision.Middle(t.World, a)
	if mid.Floor == game.NoHeight {
		return false
	}
	return mid.Floor-a.Pose.Y <= a.Anim.VerticalVelocity
}

// Fall reports whether the floor has dropped away from under a grounded actor.
func (t *Tester) Fall(ctx *Context) bool {
	return ctx.Coll.Middle.Floor > game.StepUpHeight && ctx.Actor.Control.WaterStatus != actor.Wade
}

// Slide reports whether the actor stands on a slope steep enough to slide down.
func (t *Tester) Slide(ctx *Context) bool {
	a := ctx.Actor
	if t.swamp(a) {
		return false
	}
	mid := collision.Middle(t.World, a)
	if mid.Floor == game.NoHeight {
		return false
	}
	return game.AbsInt32(mid.Floor-a.Pose.Y) <= game.StepUpHeight && mid.FloorSlope
}

// Step reports whether the floor under the actor changed by a walkable step.
func (t *Tester) Step(ctx *Context) bool {
	a, coll := ctx.Actor, ctx.Coll
	floor := coll.Middle.Floor
	if floor == game.NoHeight {
		return false
	}
	return game.AbsInt32(floor) > 0 &&
		(floor <= game.StepUpHeight || a.Control.WaterStatus == actor.Wade) &&
		floor >= -game.StepUpHeight
}

// StepUp reports whether the floor under the actor rose by more than half a click.
func (t *Tester) StepUp(ctx *Context) bool {
	floor := ctx.Coll.Middle.Floor
	return floor != game.NoHeight && floor < -game.Click(0.5) && floor >= -game.StepUpHeight
}

// StepDown reports whether the floor under the actor dropped by more than half a click.
func (t *Tester) StepDown(ctx *Context) bool {
	floor := ctx.Coll.Middle.Floor
	return floor != game.NoHeight && floor <= game.StepUpHeight && floor > game.Click(0.5)
}

// TightropeDismount reports whether an actor on a tightrope has reached solid floor at its end.
func (t *Tester) TightropeDismount(ctx *Context) bool {
	a := ctx.Actor
	return collision.Middle(t.World, a).Floor == a.Pose.Y && a.Control.CanDismountTightrope
}
