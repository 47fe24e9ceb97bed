package traversal

import (
	"testing"

	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
	"github.com/stretchr/testify/require"
)

// cornerWorld has a single raised sector, so an actor hanging near the east end of its southern edge
// can shimmy around the outer corner onto its eastern edge.
func cornerWorld() *gridWorld {
	return newWorld().block(0, 1, -1024)
}

// innerCornerWorld has raised sectors to the north and east of the actor's sector, so an actor hanging
// from the northern ledge can shimmy around into the eastern one.
func innerCornerWorld() *gridWorld {
	return newWorld().block(0, 1, -1024).block(1, 0, -1024).block(1, 1, -1024)
}

// blindWorld blocks every line of sight but probes like the world it wraps.
type blindWorld struct {
	*gridWorld
}

func (blindWorld) LineOfSight(start, end probe.Point) bool {
	return false
}

func TestHangCornerInner(t *testing.T) {
	tr, _ := newTester(innerCornerWorld())
	a := hangingActor(912)
	a.Control.MoveAngle = game.Degrees(90)
	pose, moveAngle := a.Pose, a.Control.MoveAngle

	ctx := newContext(t, a, actor.InputAction|actor.InputRight)
	coll := *ctx.Coll
	require.Equal(t, CornerInner, tr.HangCorner(ctx, 90))

	require.Equal(t, actor.Pose{X: 924, Y: -262, Z: 904, YRot: game.East.Angle()}, a.NextCornerPos)
	require.Equal(t, pose, a.Pose)
	require.Equal(t, moveAngle, a.Control.MoveAngle)
	require.Equal(t, coll, *ctx.Coll)
}

func TestHangControlInnerCorner(t *testing.T) {
	tr, _ := newTester(innerCornerWorld())
	a := hangingActor(912)
	pose := a.Pose

	ctx := newContext(t, a, actor.InputAction|actor.InputRight)
	tr.HangControl(ctx)
	require.Equal(t, actor.StateShimmyInnerRight, a.Anim.TargetState)
	require.Equal(t, pose, a.Pose)

	v, ok := ctx.Trace.Get("hang.right.corner")
	require.True(t, ok)
	require.Equal(t, actor.StateShimmyInnerRight, v)
}

func TestHangCornerInnerLadder(t *testing.T) {
	// The sector east of the actor is a wall, so there is no ledge to hang from past the corner. The
	// actor's own sector has a ladder on its eastern wall instead.
	w := newWorld().
		set(0, 0, cell{floor: 0, ceiling: -4096, flags: probe.ClimbEast | probe.ClimbNorth}).
		block(0, 1, -1024).
		wall(1, 0).
		wall(1, 1)
	tr, _ := newTester(w)
	a := hangingActor(912)
	a.Control.MoveAngle = game.Degrees(90)
	pose := a.Pose

	require.Equal(t, CornerNone, tr.HangCorner(newContext(t, a, actor.InputAction|actor.InputRight), 90))
	require.Equal(t, pose, a.Pose)

	a.Control.CanClimbLadder = true
	require.Equal(t, CornerInner, tr.HangCorner(newContext(t, a, actor.InputAction|actor.InputRight), 90))
	require.Equal(t, pose, a.Pose)
	require.Equal(t, actor.Pose{X: 924, Y: -262, Z: 904, YRot: game.East.Angle()}, a.NextCornerPos)

	// Only a ladder on the wall being turned into counts.
	w.set(0, 0, cell{floor: 0, ceiling: -4096, flags: probe.ClimbNorth})
	require.Equal(t, CornerNone, tr.HangCorner(newContext(t, a, actor.InputAction|actor.InputRight), 90))
	require.Equal(t, pose, a.Pose)
}

func TestHangCornerOuterNeedsClearSight(t *testing.T) {
	a := hangingActor(1000)
	a.Control.MoveAngle = game.Degrees(90)

	tr, _ := newTester(cornerWorld())
	require.Equal(t, CornerOuter, tr.HangCorner(newContext(t, a, actor.InputAction|actor.InputRight), 90))

	// The same corner with both sight lines blocked has nothing to swing around into.
	tr = New(blindWorld{cornerWorld()}, &mockAnim{}, Options{})
	require.Equal(t, CornerNone, tr.HangCorner(newContext(t, a, actor.InputAction|actor.InputRight), 90))
}

func TestHangCornerOuter(t *testing.T) {
	tr, _ := newTester(cornerWorld())
	a := hangingActor(1000)
	a.Control.MoveAngle = game.Degrees(90)
	pose, moveAngle := a.Pose, a.Control.MoveAngle

	ctx := newContext(t, a, actor.InputAction|actor.InputRight)
	coll := *ctx.Coll
	require.Equal(t, CornerOuter, tr.HangCorner(ctx, 90))

	require.Equal(t, actor.Pose{X: 1124, Y: -262, Z: 1144, YRot: game.West.Angle()}, a.NextCornerPos)
	require.Equal(t, pose, a.Pose)
	require.Equal(t, moveAngle, a.Control.MoveAngle)
	require.Equal(t, coll, *ctx.Coll)
}

func TestNextCornerPositionOuter(t *testing.T) {
	tr, _ := newTester(cornerWorld())
	a := hangingActor(1000)
	a.Control.MoveAngle = game.Degrees(90)
	pose := a.Pose

	res := tr.NextCornerPosition(newContext(t, a, actor.InputAction), 90, true)
	require.True(t, res.Success)
	require.Equal(t, actor.Pose{X: 1124, Y: -262, Z: 1144, YRot: game.West.Angle()}, res.RealPosition)
	require.Equal(t, actor.Pose{X: 1124, Y: -262, Z: 1144, YRot: game.West.Angle()}, res.ProbePosition)
	require.Equal(t, pose, a.Pose)

	// There is no wall to turn into.
	require.False(t, tr.NextCornerPosition(newContext(t, a, actor.InputAction), 90, false).Success)
}

func TestHangCornerRollback(t *testing.T) {
	tr, _ := newTester(cornerWorld())
	a := hangingActor(512)
	a.Control.MoveAngle = game.Degrees(-90)
	pose, moveAngle := a.Pose, a.Control.MoveAngle

	ctx := newContext(t, a, actor.InputAction|actor.InputLeft)
	for _, angle := range []float32{-90, -45, 45, 90} {
		require.Equal(t, CornerNone, tr.HangCorner(ctx, angle), "angle %v", angle)
		require.Equal(t, pose, a.Pose, "angle %v", angle)
		require.Equal(t, moveAngle, a.Control.MoveAngle, "angle %v", angle)
	}
}

func TestHangCornerRequiresHang(t *testing.T) {
	tr, _ := newTester(cornerWorld())
	a := hangingActor(1000)
	a.Anim.Number = actor.AnimHangIdle
	a.Control.MoveAngle = game.Degrees(90)
	require.Equal(t, CornerNone, tr.HangCorner(newContext(t, a, actor.InputAction), 90))
}

func TestHangControlOuterCorner(t *testing.T) {
	tr, _ := newTester(cornerWorld())
	a := hangingActor(1000)
	pose := a.Pose

	ctx := newContext(t, a, actor.InputAction|actor.InputRight)
	tr.HangControl(ctx)
	require.Equal(t, actor.StateShimmyOuterRight, a.Anim.TargetState)
	require.Equal(t, pose, a.Pose)
	require.Equal(t, int32(1124), a.NextCornerPos.X)

	v, ok := ctx.Trace.Get("hang.right.corner")
	require.True(t, ok)
	require.Equal(t, actor.StateShimmyOuterRight, v)
}

func TestCornerSightLines(t *testing.T) {
	tr, _ := newTester(newWorld().wall(1, 0))
	a := newActor(1000, -262, 924, 0)

	require.False(t, tr.SweepClear(a, game.Degrees(90), 356))
	require.True(t, tr.PositionOnLOS(a, game.Degrees(90), 356))
	require.True(t, tr.SweepClear(a, game.Degrees(-90), 356))
	require.False(t, tr.PositionOnLOS(a, game.Degrees(-90), 356))
}
