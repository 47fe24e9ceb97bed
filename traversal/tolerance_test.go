package traversal

import (
	"testing"

	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
	"github.com/stretchr/testify/require"
)

// stepWorld has a single raised sector north of the origin sector.
func stepWorld(c cell) *gridWorld {
	return newWorld().set(0, 1, c)
}

func TestWalkForwardOntoStep(t *testing.T) {
	tr, _ := newTester(stepWorld(cell{floor: -358, ceiling: -4096}))
	ctx := newContext(t, newActor(512, 0, 900, 0), 0)

	require.True(t, tr.WalkForward(ctx))
	require.True(t, tr.RunForward(ctx))
	require.True(t, tr.WalkBack(ctx))
}

func TestWalkForwardDeathSector(t *testing.T) {
	tr, _ := newTester(stepWorld(cell{floor: -358, ceiling: -4096, flags: probe.Death}))
	ctx := newContext(t, newActor(512, 0, 900, 0), 0)

	require.False(t, tr.WalkForward(ctx))
	// Running does not look at death sectors.
	require.True(t, tr.RunForward(ctx))
}

func TestMoveToleranceWall(t *testing.T) {
	tr, _ := newTester(newWorld().wall(0, 1))
	ctx := newContext(t, newActor(512, 0, 900, 0), 0)

	require.False(t, tr.WalkForward(ctx))
	require.False(t, tr.RunForward(ctx))
	require.False(t, tr.WadeForwardSwamp(ctx))
	require.True(t, tr.WalkBack(ctx))
}

func TestMoveToleranceSlopes(t *testing.T) {
	tr, _ := newTester(stepWorld(cell{floor: -300, ceiling: -4096, slope: true}))
	ctx := newContext(t, newActor(512, 0, 900, 0), 0)
	require.False(t, tr.WalkForward(ctx))
	require.False(t, tr.RunForward(ctx))
	require.True(t, tr.WadeForwardSwamp(ctx))

	tr, _ = newTester(stepWorld(cell{floor: 300, ceiling: -4096, slope: true}))
	ctx = newContext(t, newActor(512, 0, 900, 0), 0)
	require.False(t, tr.WalkForward(ctx))
	require.True(t, tr.RunForward(ctx))
}

func TestMoveToleranceBoundsMonotonic(t *testing.T) {
	a := newActor(512, 0, 900, 0)
	for floor := int32(-600); floor <= 600; floor += 50 {
		tr, _ := newTester(stepWorld(cell{floor: floor, ceiling: -4096}))
		ctx := newContext(t, a, 0)

		narrow := tr.MoveTolerance(ctx, NewMoveSetup(0, game.Click(0.5), -game.Click(0.5)))
		wide := tr.MoveTolerance(ctx, NewMoveSetup(0, game.Click(2), -game.Click(2)))
		if narrow {
			require.True(t, wide, "floor %v", floor)
		}
		require.Equal(t, floor <= game.Click(0.5) && floor >= -game.Click(0.5), narrow, "floor %v", floor)
	}
}

func TestCrawlFitsUnderLowCeiling(t *testing.T) {
	tr, _ := newTester(stepWorld(cell{floor: 0, ceiling: -450}))
	ctx := newContext(t, newActor(512, 0, 900, 0), 0)

	require.False(t, tr.WalkForward(ctx))
	require.True(t, tr.CrawlForward(ctx))
}

func TestKeepLow(t *testing.T) {
	tr, _ := newTester(newWorld())
	a := newActor(512, 0, 512, 0)
	a.Anim.ActiveState = actor.StateCrouchIdle
	require.False(t, tr.KeepLow(newContext(t, a, 0)))

	tr, _ = newTester(newWorld().set(0, 0, cell{floor: 0, ceiling: -600}))
	require.True(t, tr.KeepLow(newContext(t, a, 0)))
}

func TestCrouchRoll(t *testing.T) {
	tr, _ := newTester(newWorld())
	a := newActor(512, 0, 512, 0)
	require.True(t, tr.CrouchRoll(newContext(t, a, 0)))
	require.False(t, tr.CrouchRoll(newContext(t, a, actor.InputFlare)))

	a.WaterSurfaceDist = -game.Click(2)
	require.False(t, tr.CrouchRoll(newContext(t, a, 0)))
}

func TestCrouchToCrawl(t *testing.T) {
	tr, _ := newTester(newWorld())
	a := newActor(512, 0, 512, 0)
	require.True(t, tr.CrouchToCrawl(newContext(t, a, 0)))

	a.Control.HandStatus = actor.HandsWeaponReady
	require.False(t, tr.CrouchToCrawl(newContext(t, a, 0)))
}

func TestSlopeToleranceScalesWithRadius(t *testing.T) {
	require.Equal(t, SlopeTolerance(100)*2, SlopeTolerance(200))
	require.Equal(t, float32(75), SlopeTolerance(100))
}

func TestValidLedgeDistance(t *testing.T) {
	tr, _ := newTester(stepWorld(cell{floor: -512, ceiling: -4096}))
	ctx := newContext(t, newActor(512, 0, 900, 0), 0)
	tr.Collide(ctx)
	require.True(t, tr.ValidLedge(ctx, false, false))

	offset := float32(game.OffsetRadius(ctx.Coll.Setup.Radius))
	ctx.Coll.NearestLedgeDistance = offset * 1.5
	require.False(t, tr.ValidLedge(ctx, false, false))

	ctx.Coll.NearestLedgeDistance = offset * 0.5
	require.True(t, tr.ValidLedge(ctx, false, false))

	ctx.Actor.Pose.YRot = game.Degrees(60)
	require.False(t, tr.ValidLedge(ctx, false, false))
}

func TestValidLedgeSlopeDependsOnRadius(t *testing.T) {
	w := newWorld().block(0, 1, -500).block(1, 1, -600)
	tr, _ := newTester(w)
	ctx := newContext(t, newActor(1024, 0, 1000, 0), 0)
	ctx.Coll.NearestLedgeAngle = 0
	ctx.Coll.NearestLedgeDistance = 0

	ctx.Coll.Setup.Radius = 100
	require.False(t, tr.ValidLedge(ctx, true, false))

	ctx.Coll.Setup.Radius = 200
	require.True(t, tr.ValidLedge(ctx, true, false))
}
