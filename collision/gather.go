package collision

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
)

// Gather runs a full collision pass for the actor using info.Setup and stores the results in info.
func Gather(g probe.Geometry, a *actor.Actor, info *Info) {
	s := &info.Setup
	info.Type = None
	info.Shift = Vec3{}
	info.HitStatic = false

	x, y, z := a.Pose.X, a.Pose.Y, a.Pose.Z
	yTop := y - s.Height
	fx, fz, lx, lz := ring(s.Mode, s.ForwardAngle, s.Radius)

	at := func(dx, dz int32) Position {
		return relative(g.Probe(x+dx, yTop, z+dz, a.Room), y, yTop)
	}
	info.Middle = at(0, 0)
	info.MiddleLeft = at(lx, lz)
	info.MiddleRight = at(-lx, -lz)
	info.Front = at(fx, fz)
	info.FrontLeft = at(fx+lx, fz+lz)
	info.FrontRight = at(fx-lx, fz-lz)

	info.HitStatic = hitStatic(g, float32(x+fx), float32(yTop), float32(y), float32(z+fz), float32(s.Radius))

	ledge, _ := NearestLedge(g, a.Point(), s.ForwardAngle, s.Radius, s.Height)
	info.NearestLedgeAngle = ledge.Angle
	info.NearestLedgeDistance = ledge.Distance

	old := s.OldPosition
	if info.Middle.Floor == game.NoHeight {
		info.Shift = Vec3{X: old.X - x, Y: old.Y - y, Z: old.Z - z}
		info.Type = Front
		return
	}
	if info.Middle.Floor-info.Middle.Ceiling <= 0 {
		info.Shift = Vec3{X: old.X - x, Y: old.Y - y, Z: old.Z - z}
		info.Type = Clamp
		return
	}
	if info.Middle.Ceiling >= 0 {
		info.Shift.Y = info.Middle.Ceiling
		info.Type = Top
	}

	if s.obstructs(info.Front) {
		if info.Type == Top {
			info.Type = TopFront
		} else {
			info.Type = Front
		}
		info.Shift.X, info.Shift.Z = s.shift(x, z, fx, fz)
		return
	}
	if s.obstructs(info.MiddleLeft) {
		info.Type = Left
		info.Shift.X, info.Shift.Z = s.shift(x, z, lx, lz)
		return
	}
	if s.obstructs(info.MiddleRight) {
		info.Type = Right
		info.Shift.X, info.Shift.Z = s.shift(x, z, -lx, -lz)
	}
}

// ring returns the forward and left probe offsets for the given layout.
func ring(mode Mode, forward game.Angle, radius int32) (fx, fz, lx, lz int32) {
	if mode == Quadrants {
		switch forward.Quadrant() {
		case game.North:
			return 0, radius, -radius, 0
		case game.East:
			return radius, 0, 0, radius
		case game.South:
			return 0, -radius, radius, 0
		default:
			return -radius, 0, 0, -radius
		}
	}
	r := float32(radius)
	fx, fz = int32(game.Sin(forward)*r), int32(game.Cos(forward)*r)
	return fx, fz, -fz, fx
}

// obstructs reports whether a probe falls outside the setup's floor and ceiling bounds.
func (s *Setup) obstructs(p Position) bool {
	return p.Floor > s.LowerFloorBound ||
		p.Floor < s.UpperFloorBound ||
		p.Ceiling > s.LowerCeilingBound ||
		p.Ceiling < s.UpperCeilingBound ||
		p.Floor-p.Ceiling <= 0
}

// shift returns the horizontal correction that backs the actor out of an obstruction found at the given
// probe offset.
func (s *Setup) shift(x, z, dx, dz int32) (int32, int32) {
	old := s.OldPosition
	if s.Mode != Quadrants {
		return old.X - x, old.Z - z
	}
	if dx == 0 {
		return old.X - x, GridShift(z+dz, z)
	}
	if dz == 0 {
		return GridShift(x+dx, x), old.Z - z
	}
	return GridShift(x+dx, x), GridShift(z+dz, z)
}

func hitStatic(g probe.Geometry, x, yTop, y, z, r float32) bool {
	st, ok := g.(probe.Statics)
	if !ok {
		return false
	}
	column := cube.Box(x-r, yTop, z-r, x+r, y, z+r)
	for _, bb := range st.StaticBoxes(column) {
		if bb.IntersectsWith(column) {
			return true
		}
	}
	return false
}
