package traversal

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/collision"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
	"github.com/stretchr/testify/require"
)

func TestJumpTolerance(t *testing.T) {
	w := newWorld()
	tr, _ := newTester(w)
	a := newActor(512, 0, 512, 0)

	ctx := newContext(t, a, 0)
	require.True(t, tr.JumpForward(ctx))
	require.True(t, tr.JumpBack(ctx))
	require.True(t, tr.JumpLeft(ctx))
	require.True(t, tr.JumpRight(ctx))
	require.True(t, tr.RunJumpForward(ctx))

	a.Control.WaterStatus = actor.Wade
	require.False(t, tr.JumpForward(ctx))
	require.True(t, tr.JumpUp(ctx))

	a.Control.WaterStatus = actor.Dry
	w.room = probe.Swamp
	require.False(t, tr.JumpForward(ctx))
	require.False(t, tr.JumpUp(ctx))
}

func TestJumpLowCeiling(t *testing.T) {
	tr, _ := newTester(newWorld().set(0, 0, cell{floor: 0, ceiling: -800}))
	require.False(t, tr.JumpUp(newContext(t, newActor(512, 0, 512, 0), 0)))
}

func TestFacingCorner(t *testing.T) {
	tr, _ := newTester(newWorld().wall(0, 1).wall(1, 0))
	a := newActor(900, 0, 900, game.Degrees(45))
	require.True(t, tr.FacingCorner(a, a.Pose.YRot, float32(game.Click(0.85))))
	require.False(t, tr.JumpForward(newContext(t, a, 0)))

	a.Pose.YRot = game.Degrees(-135)
	require.False(t, tr.FacingCorner(a, a.Pose.YRot, float32(game.Click(0.85))))
}

func TestSplat(t *testing.T) {
	tr, _ := newTester(newWorld().wall(0, 1))
	ctx := newContext(t, newActor(512, 0, 900, 0), 0)
	require.True(t, tr.Splat(ctx, 200, -500, 0))
	require.False(t, tr.Splat(ctx, 100, -500, 0))

	ctx.Actor.Pose.YRot = game.Degrees(180)
	require.False(t, tr.Splat(ctx, 200, -500, 0))
}

func TestRunJumpControl(t *testing.T) {
	tr, _ := newTester(newWorld())
	a := newActor(512, 0, 512, 0)
	a.Anim.ActiveState = actor.StateRunForward

	// Jump is pressed on the first tick of the run, so it is queued until the run-up is complete.
	require.False(t, tr.RunJumpControl(newContext(t, a, actor.InputJump)))
	require.True(t, a.Control.RunJumpQueued)
	for range runJumpTime - 2 {
		require.False(t, tr.RunJumpControl(newContext(t, a, actor.InputForward)))
	}
	require.True(t, a.Control.RunJumpQueued)

	ctx := newContext(t, a, actor.InputForward)
	require.True(t, tr.RunJumpControl(ctx))
	require.Equal(t, actor.StateJumpForward, a.Anim.TargetState)
	require.False(t, a.Control.RunJumpQueued)
	require.Equal(t, int32(runJumpTime), a.Control.RunCount)

	v, ok := ctx.Trace.Get("jump.run")
	require.True(t, ok)
	require.Equal(t, actor.StateJumpForward, v)
}

func TestRunJumpControlResets(t *testing.T) {
	tr, _ := newTester(newWorld())
	a := newActor(512, 0, 512, 0)
	a.Anim.ActiveState = actor.StateRunForward
	a.Control.RunCount = 10

	require.False(t, tr.RunJumpControl(newContext(t, a, actor.InputJump)))
	require.True(t, a.Control.RunJumpQueued)

	// Walking keeps counting the run-up, but a running jump cannot be queued from it.
	a.Anim.ActiveState = actor.StateWalkForward
	require.False(t, tr.RunJumpControl(newContext(t, a, actor.InputJump)))
	require.False(t, a.Control.RunJumpQueued)
	require.Equal(t, int32(12), a.Control.RunCount)

	a.Anim.ActiveState = actor.StateIdle
	require.False(t, tr.RunJumpControl(newContext(t, a, actor.InputJump)))
	require.Zero(t, a.Control.RunCount)

	// No room to jump into clears the queue.
	a.Anim.ActiveState = actor.StateRunForward
	a.Control.RunJumpQueued = true
	tr, _ = newTester(newWorld().wall(0, 1))
	a.Pose.Z = 900
	require.False(t, tr.RunJumpControl(newContext(t, a, 0)))
	require.False(t, a.Control.RunJumpQueued)
}

func TestLand(t *testing.T) {
	tr, _ := newTester(newWorld())
	a := newActor(512, -20, 512, 0)
	ctx := newContext(t, a, 0)
	require.False(t, tr.Land(ctx))

	a.Anim.Airborne = true
	a.Anim.VerticalVelocity = 10
	require.False(t, tr.Land(ctx))

	a.Anim.VerticalVelocity = 30
	require.True(t, tr.Land(ctx))
}

func TestStepsAndFalls(t *testing.T) {
	tr, _ := newTester(newWorld())
	ctx := newContext(t, newActor(512, 0, 512, 0), 0)

	ctx.Coll.Middle.Floor = 200
	require.True(t, tr.Step(ctx))
	require.True(t, tr.StepDown(ctx))
	require.False(t, tr.StepUp(ctx))
	require.False(t, tr.Fall(ctx))

	ctx.Coll.Middle.Floor = -200
	require.True(t, tr.StepUp(ctx))
	require.False(t, tr.StepDown(ctx))

	ctx.Coll.Middle.Floor = 600
	require.False(t, tr.Step(ctx))
	require.True(t, tr.Fall(ctx))

	ctx.Actor.Control.WaterStatus = actor.Wade
	require.False(t, tr.Fall(ctx))

	ctx.Coll.Middle.Floor = game.NoHeight
	require.False(t, tr.Step(ctx))
	require.False(t, tr.StepUp(ctx))
}

func TestSlide(t *testing.T) {
	tr, _ := newTester(newWorld().set(0, 0, cell{floor: 0, ceiling: -4096, slope: true}))
	require.True(t, tr.Slide(newContext(t, newActor(512, 0, 512, 0), 0)))

	tr, _ = newTester(newWorld())
	require.False(t, tr.Slide(newContext(t, newActor(512, 0, 512, 0), 0)))
}

func TestTightropeDismount(t *testing.T) {
	tr, _ := newTester(newWorld())
	a := newActor(512, 0, 512, 0)
	require.False(t, tr.TightropeDismount(newContext(t, a, 0)))

	a.Control.CanDismountTightrope = true
	require.True(t, tr.TightropeDismount(newContext(t, a, 0)))
}

func monkeyWorld(flags probe.SectorFlags) *gridWorld {
	return newWorld().set(0, 0, cell{floor: 200, ceiling: -850, flags: flags})
}

func TestMonkeyMove(t *testing.T) {
	tr, _ := newTester(monkeyWorld(probe.MonkeySwing))
	a := newActor(512, 0, 512, 0)
	a.Control.CanMonkeySwing = true
	ctx := newContext(t, a, 0)

	require.True(t, tr.MonkeyForward(ctx))
	require.True(t, tr.MonkeyBack(ctx))
	require.True(t, tr.MonkeyShimmyLeft(ctx))
	require.True(t, tr.MonkeyShimmyRight(ctx))
	require.False(t, tr.MonkeyFall(ctx))
	require.True(t, tr.MonkeyStep(ctx))

	tr, _ = newTester(monkeyWorld(0))
	require.False(t, tr.MonkeyForward(ctx))

	a.Control.CanMonkeySwing = false
	require.True(t, tr.MonkeyFall(ctx))
}

func TestMonkeyGrab(t *testing.T) {
	tr, _ := newTester(newWorld())
	a := newActor(512, 0, 512, 0)
	ctx := newContext(t, a, 0)
	ctx.Coll.Middle = collision.Position{Floor: 500, Ceiling: 0}
	require.False(t, tr.MonkeyGrab(ctx))

	a.Control.CanMonkeySwing = true
	require.True(t, tr.MonkeyGrab(ctx))

	ctx.Coll.Middle = collision.Position{Floor: 50, Ceiling: 0}
	require.False(t, tr.MonkeyGrab(ctx))
}

func TestPoleCollision(t *testing.T) {
	w := newWorld().set(0, 0, cell{floor: 300, ceiling: -4096})
	tr, _ := newTester(w)
	ctx := newContext(t, newActor(512, 0, 512, 0), 0)
	tr.Collide(ctx)

	require.False(t, tr.PoleUp(ctx))
	require.False(t, tr.PoleDown(ctx))

	w.poles = []cube.BBox{cube.Box(500, -3000, 500, 524, 200, 524)}
	require.True(t, tr.PoleUp(ctx))
	require.True(t, tr.PoleDown(ctx))

	// Out of reach sideways.
	w.poles = []cube.BBox{cube.Box(900, -3000, 900, 924, 200, 924)}
	require.False(t, tr.PoleUp(ctx))
}

func TestWaterStepOut(t *testing.T) {
	tr, anim := newTester(newWorld())
	a := newActor(512, 0, 512, 0)
	ctx := newContext(t, a, 0)
	ctx.Coll.Middle.Floor = -100

	require.True(t, tr.WaterStepOut(ctx))
	require.Equal(t, actor.AnimStandIdle, anim.played[0].anim)
	require.Equal(t, int32(-100+game.Click(2.75)-9), a.Pose.Y)
	require.Equal(t, actor.Wade, a.Control.WaterStatus)

	a = newActor(512, 0, 512, 0)
	ctx = newContext(t, a, 0)
	ctx.Coll.Middle.Floor = -200
	require.True(t, tr.WaterStepOut(ctx))
	require.Equal(t, actor.AnimOnWaterToWade1Step, a.Anim.Number)
	require.Equal(t, actor.StateIdle, a.Anim.TargetState)

	ctx.Coll.Middle.Floor = 10
	require.False(t, tr.WaterStepOut(ctx))
	ctx.Coll.Middle.Floor = -100
	ctx.Coll.Type = collision.Front
	require.False(t, tr.WaterStepOut(ctx))
}

func TestWaterClimbOutNeedsAction(t *testing.T) {
	tr, _ := newTester(newWorld())
	ctx := newContext(t, newActor(512, 0, 512, 0), 0)
	ctx.Coll.Type = collision.Front
	require.False(t, tr.WaterClimbOut(ctx))
	require.False(t, tr.LadderClimbOut(ctx))
}

func TestSnapLadderAngle(t *testing.T) {
	for _, tc := range []struct {
		in   float32
		out  float32
		snap bool
	}{
		{in: 10, out: 0, snap: true},
		{in: -30, out: 0, snap: true},
		{in: 80, out: 90, snap: true},
		{in: -100, out: -90, snap: true},
		{in: 170, out: 180, snap: true},
		{in: -170, out: 180, snap: true},
		{in: 45, out: 45},
		{in: -135, out: -135},
	} {
		got, ok := snapLadderAngle(game.Degrees(tc.in))
		require.Equal(t, tc.snap, ok, "angle %v", tc.in)
		require.Equal(t, game.Degrees(tc.out), got, "angle %v", tc.in)
	}
}
