package traversal

import (
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/collision"
	"github.com/oomph-ac/traverse/game"
)

// waterClimbAnims are the water exit animations, indexed by the step height class (one step up, level,
// one step down) and whether the actor has to crouch.
var waterClimbAnims = [3][2]actor.AnimID{
	{actor.AnimOnWaterToStand1Step, actor.AnimOnWaterToCrouch1Step},
	{actor.AnimOnWaterToStand0Step, actor.AnimOnWaterToCrouch0Step},
	{actor.AnimOnWaterToStandM1Step, actor.AnimOnWaterToCrouchM1Step},
}

// WaterStepOut walks a swimming actor out of the water onto shallow floor.
func (t *Tester) WaterStepOut(ctx *Context) bool {
	a, coll := ctx.Actor, ctx.Coll
	if coll.Type == collision.Front || coll.Middle.FloorSlope || coll.Middle.Floor >= 0 || coll.Middle.Floor == game.NoHeight {
		return false
	}

	if coll.Middle.Floor >= -game.Click(0.5) {
		t.Anim.Play(a, actor.AnimStandIdle, 0)
	} else {
		t.Anim.Play(a, actor.AnimOnWaterToWade1Step, 0)
		a.Anim.TargetState = actor.StateIdle
	}

	a.Pose.Y += coll.Middle.Floor + game.Click(2.75) - 9
	t.updateRoom(a, -(game.StepUpHeight - 3))
	a.Pose.XRot, a.Pose.ZRot = 0, 0
	a.Halt()
	a.Control.WaterStatus = actor.Wade
	ctx.Trace.Set("water.step_out", true)
	return true
}

// WaterClimbOut pulls a swimming actor out of the water onto the ledge in front of it.
func (t *Tester) WaterClimbOut(ctx *Context) bool {
	a, coll := ctx.Actor, ctx.Coll
	if coll.Type != collision.Front || !ctx.Input.Has(actor.InputAction) || !t.handsFreeForExit(a) {
		return false
	}
	if coll.Middle.Ceiling > -game.StepUpHeight || coll.Front.Floor == game.NoHeight {
		return false
	}

	frontFloor := coll.Front.Floor + game.ActorHeightSurfaceSwim
	if frontFloor <= -game.Click(2) || frontFloor > game.Click(1.25)-4 {
		return false
	}
	if !t.ValidLedge(ctx, false, false) {
		return false
	}

	surface := collision.AboveFront(t.World, a, coll.Setup.ForwardAngle, float32(game.Click(2)), game.Click(1))
	crouch := surface.Floor == game.NoHeight || surface.Clamp() < game.ActorHeight
	if crouch && !t.Options.CrawlExtended {
		return false
	}

	step := 1
	switch {
	case frontFloor <= -game.Click(1):
		step = 0
	case frontFloor > game.Click(0.5):
		step = 2
	}
	anim := waterClimbAnims[step][0]
	if crouch {
		anim = waterClimbAnims[step][1]
	}
	t.Anim.Play(a, anim, 0)

	t.updateRoom(a, -coll.Setup.Height/2)
	collision.SnapToLedge(coll, a, 1.7)

	a.Pose.Y += frontFloor - 5
	a.Anim.ActiveState = actor.StateOnWaterExit
	a.Halt()
	a.Control.HandStatus = actor.HandsBusy
	a.Control.WaterStatus = actor.Dry
	ctx.Trace.Set("water.climb_out", anim)
	return true
}

// LadderClimbOut pulls a swimming actor out of the water onto the ladder in front of it.
func (t *Tester) LadderClimbOut(ctx *Context) bool {
	a, coll := ctx.Actor, ctx.Coll
	if !ctx.Input.Has(actor.InputAction) || !a.Control.CanClimbLadder || coll.Type != collision.Front || !t.handsFreeForExit(a) {
		return false
	}
	if !t.ClimbStance(ctx) {
		return false
	}

	rot, ok := snapLadderAngle(a.Pose.YRot)
	if !ok {
		return false
	}

	r := game.ActorRadius
	switch rot.Quadrant() {
	case game.North:
		a.Pose.Z = (a.Pose.Z | sectorMask) - r - 1
	case game.East:
		a.Pose.X = (a.Pose.X | sectorMask) - r - 1
	case game.South:
		a.Pose.Z = (a.Pose.Z &^ sectorMask) + r + 1
	case game.West:
		a.Pose.X = (a.Pose.X &^ sectorMask) + r + 1
	}

	t.Anim.Play(a, actor.AnimOnWaterIdle, 0)
	a.Anim.TargetState = actor.StateLadderIdle
	t.updateRoom(a, -coll.Setup.Height/2)

	a.Pose.YRot = rot
	a.Pose.Y -= 10
	a.Pose.XRot, a.Pose.ZRot = 0, 0
	a.Halt()
	a.Control.TurnRate = 0
	a.Control.HandStatus = actor.HandsBusy
	a.Control.WaterStatus = actor.Dry
	ctx.Trace.Set("water.ladder_out", true)
	return true
}

// handsFreeForExit reports whether the actor's hands allow climbing out of the water. A readied flare
// does not get in the way.
func (t *Tester) handsFreeForExit(a *actor.Actor) bool {
	return a.Control.HandStatus == actor.HandsFree ||
		(a.Control.HandStatus == actor.HandsWeaponReady && a.Control.HoldingFlare)
}

// snapLadderAngle snaps a heading within 35 degrees of a grid axis onto it.
func snapLadderAngle(yaw game.Angle) (game.Angle, bool) {
	switch {
	case yaw >= -game.Degrees(35) && yaw <= game.Degrees(35):
		return 0, true
	case yaw >= game.Degrees(55) && yaw <= game.Degrees(125):
		return game.Degrees(90), true
	case yaw >= game.Degrees(145) || yaw <= -game.Degrees(145):
		return game.Degrees(180), true
	case yaw >= -game.Degrees(125) && yaw <= -game.Degrees(55):
		return -game.Degrees(90), true
	}
	return yaw, false
}
