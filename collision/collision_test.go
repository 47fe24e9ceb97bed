package collision

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
	"github.com/stretchr/testify/require"
)

type cell struct {
	floor, ceiling int32
	wall           bool
}

// mockGrid is a flat world of sectors with a floor at 0 and a ceiling two sectors up, unless overridden.
type mockGrid struct {
	cells map[[2]int32]cell
}

func (m mockGrid) Probe(x, y, z int32, room int16) probe.Result {
	c, ok := m.cells[[2]int32{x >> 10, z >> 10}]
	if !ok {
		c = cell{floor: 0, ceiling: -2048}
	}
	if c.wall {
		return probe.Result{Floor: game.NoHeight, Ceiling: game.NoHeight, Room: room}
	}
	return probe.Result{Floor: c.floor, Ceiling: c.ceiling, Room: room}
}

func (mockGrid) LineOfSight(start, end probe.Point) bool {
	return true
}

type mockStatics struct {
	mockGrid
	boxes []cube.BBox
}

func (m mockStatics) StaticBoxes(around cube.BBox) []cube.BBox {
	return m.boxes
}

func northWall() mockGrid {
	return mockGrid{cells: map[[2]int32]cell{{0, 1}: {wall: true}}}
}

func newActor(x, y, z int32, yaw game.Angle) *actor.Actor {
	return &actor.Actor{Pose: actor.Pose{X: x, Y: y, Z: z, YRot: yaw}, HitPoints: 1000}
}

func TestGridShift(t *testing.T) {
	require.Equal(t, int32(0), GridShift(1000, 10))
	require.Equal(t, int32(-7), GridShift(1030, 1000))
	require.Equal(t, int32(25), GridShift(1000, 1030))
}

func TestGatherOpenFloor(t *testing.T) {
	a := newActor(512, 0, 512, 0)
	info := NewInfo()
	info.Setup.OldPosition = a.Pose
	Gather(mockGrid{}, a, info)

	require.Equal(t, None, info.Type)
	require.Equal(t, int32(0), info.Middle.Floor)
	// Ceiling is measured from the top of the column.
	require.Equal(t, -2048+game.ActorHeight, info.Middle.Ceiling)
	require.Equal(t, Vec3{}, info.Shift)
}

func TestGatherFrontWall(t *testing.T) {
	a := newActor(512, 0, 950, 0)
	info := NewInfo()
	info.Setup.Mode = Quadrants
	info.Setup.OldPosition = a.Pose
	Gather(northWall(), a, info)

	require.Equal(t, Front, info.Type)
	require.Equal(t, game.NoHeight, info.Front.Floor)
	require.Equal(t, int32(-27), info.Shift.Z)

	Shift(a, info)
	require.Equal(t, int32(923), a.Pose.Z)
	require.Equal(t, Vec3{}, info.Shift)
}

func TestGatherClampAndVoid(t *testing.T) {
	a := newActor(512, 0, 512, 0)
	info := NewInfo()
	info.Setup.OldPosition = actor.Pose{X: 500, Z: 500}
	g := mockGrid{cells: map[[2]int32]cell{{0, 0}: {floor: 0, ceiling: -500}}}
	Gather(g, a, info)
	require.Equal(t, Clamp, info.Type)
	require.Equal(t, Vec3{X: -12, Z: -12}, info.Shift)

	g = mockGrid{cells: map[[2]int32]cell{{0, 0}: {wall: true}}}
	Gather(g, a, info)
	require.Equal(t, Front, info.Type)
}

func TestGatherTop(t *testing.T) {
	a := newActor(512, 0, 512, 0)
	info := NewInfo()
	info.Setup.OldPosition = a.Pose
	// The ceiling dips into the column, but the floor drops away far enough for the actor to fit.
	g := mockGrid{cells: map[[2]int32]cell{{0, 0}: {floor: 200, ceiling: -700}}}
	Gather(g, a, info)
	// The low ceiling also covers the front probe.
	require.Equal(t, TopFront, info.Type)
	require.Equal(t, int32(62), info.Shift.Y)

	info.Setup.LowerCeilingBound = 100
	Gather(g, a, info)
	require.Equal(t, Top, info.Type)
	require.Equal(t, int32(62), info.Shift.Y)
}

func TestGatherShortSectorClamps(t *testing.T) {
	a := newActor(512, 0, 512, 0)
	info := NewInfo()
	info.Setup.OldPosition = a.Pose
	info.Setup.LowerCeilingBound = 100

	// Floor to ceiling is shorter than the actor, so no ceiling shift can make room.
	g := mockGrid{cells: map[[2]int32]cell{{0, 0}: {floor: 0, ceiling: -700}}}
	Gather(g, a, info)
	require.Equal(t, Clamp, info.Type)
	require.Equal(t, Vec3{}, info.Shift)

	g = mockGrid{cells: map[[2]int32]cell{{0, 0}: {floor: 0, ceiling: -800}}}
	Gather(g, a, info)
	require.Equal(t, None, info.Type)
}

func TestGatherHitStatic(t *testing.T) {
	a := newActor(512, 0, 512, 0)
	info := NewInfo()
	g := mockStatics{boxes: []cube.BBox{cube.Box(500, -300, 600, 520, 0, 620)}}
	Gather(g, a, info)
	require.True(t, info.HitStatic)

	g.boxes = []cube.BBox{cube.Box(0, -300, 0, 20, 0, 20)}
	Gather(g, a, info)
	require.False(t, info.HitStatic)
}

func TestNearestLedgeMarch(t *testing.T) {
	a := newActor(512, 0, 900, 0)
	l, ok := NearestLedge(northWall(), a.Point(), 0, game.ActorRadius, game.ActorHeight)
	require.True(t, ok)
	require.Equal(t, game.Angle(0), l.Angle)
	require.Equal(t, float32(24), l.Distance)

	// Facing away from the wall there is nothing within reach.
	l, ok = NearestLedge(northWall(), a.Point(), game.Degrees(180), game.ActorRadius, game.ActorHeight)
	require.False(t, ok)
	require.Equal(t, game.Degrees(180), l.Angle)
	require.Equal(t, float32(game.SectorSize), l.Distance)
}

func TestNearestLedgeStep(t *testing.T) {
	// A block two clicks high to the east of the actor.
	g := mockGrid{cells: map[[2]int32]cell{{1, 0}: {floor: -512, ceiling: -2048}}}
	a := newActor(800, 0, 512, game.Degrees(90))
	l, ok := NearestLedge(g, a.Point(), a.Pose.YRot, game.ActorRadius, game.ActorHeight)
	require.True(t, ok)
	require.Equal(t, game.East.Angle(), l.Angle)
	require.Equal(t, float32(124), l.Distance)
}

func TestSnapping(t *testing.T) {
	a := newActor(512, 0, 900, game.Degrees(10))
	info := NewInfo()
	info.Setup.OldPosition = a.Pose
	info.Setup.ForwardAngle = a.Pose.YRot
	Gather(northWall(), a, info)

	SnapToLedge(info, a, 0)
	require.Equal(t, game.Angle(0), a.Pose.YRot)
	require.Equal(t, int32(924), a.Pose.Z)

	SnapToGrid(info, a)
	require.Equal(t, int32(923), a.Pose.Z)

	b := newActor(512, 0, 900, game.Degrees(-20))
	require.True(t, SnapToLedgeAt(northWall(), info, b, 0, 0.5))
	require.Equal(t, int32(974), b.Pose.Z)
	require.Equal(t, game.Angle(0), b.Pose.YRot)

	c := newActor(512, 0, 200, game.Degrees(180))
	require.False(t, SnapToLedgeAt(northWall(), info, c, c.Pose.YRot, 0))
	require.Equal(t, int32(200), c.Pose.Z)
}

func TestSnapToEdgeOfBlock(t *testing.T) {
	a := newActor(0, 0, 0, 0)
	old := actor.Pose{X: 0x512, Z: 0x512}

	SnapToEdgeOfBlock(a, old, game.North, true)
	require.Equal(t, int32(0x790), a.Pose.X)

	SnapToEdgeOfBlock(a, old, game.North, false)
	require.Equal(t, int32(0x410), a.Pose.X)

	SnapToEdgeOfBlock(a, old, game.East, true)
	require.Equal(t, int32(0x410), a.Pose.Z)
}

func TestProbeHelpers(t *testing.T) {
	g := mockGrid{cells: map[[2]int32]cell{{0, 1}: {floor: -300, ceiling: -1500}}}
	a := newActor(512, -100, 900, 0)

	require.Equal(t, int32(-200), FloorFront(g, a, 0, 200))
	require.Equal(t, int32(100), FloorFront(g, a, 0, 0))
	require.Equal(t, int32(-1500+762+100), CeilingFront(g, a, 0, 200, 762))
	require.Equal(t, game.NoHeight, FloorFront(northWall(), a, 0, 200))

	s := At(g, a, 0, 200, -50)
	require.Equal(t, int32(1100), s.Z)
	require.Equal(t, int32(-150), s.Y)
	require.Equal(t, int32(-300), s.Floor)

	above := AboveFront(g, a, 0, 200, 50)
	require.Equal(t, s, above)
}
