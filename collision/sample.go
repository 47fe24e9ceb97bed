package collision

import (
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
)

// Sample is a raw probe result together with the world point it was taken at.
type Sample struct {
	probe.Result
	X, Y, Z int32
}

// Middle probes the actor's own position.
func Middle(g probe.Geometry, a *actor.Actor) Sample {
	return At(g, a, a.Pose.YRot, 0, 0)
}

// At probes the point dist units away from the actor along angle, yOffset units below its feet.
func At(g probe.Geometry, a *actor.Actor, angle game.Angle, dist float32, yOffset int32) Sample {
	p := a.Pose.Offset(angle, dist)
	s := Sample{X: p.X, Y: a.Pose.Y + yOffset, Z: p.Z}
	s.Result = g.Probe(s.X, s.Y, s.Z, a.Room)
	return s
}

// AboveFront probes the point dist units away along angle at height units above the actor's feet.
func AboveFront(g probe.Geometry, a *actor.Actor, angle game.Angle, dist float32, height int32) Sample {
	return At(g, a, angle, dist, -height)
}

// FloorFront returns the floor dist units away along angle, relative to the actor's feet. The probe is
// taken at standing head height.
func FloorFront(g probe.Geometry, a *actor.Actor, angle game.Angle, dist float32) int32 {
	s := At(g, a, angle, dist, -game.ActorHeight)
	if s.Floor == game.NoHeight {
		return game.NoHeight
	}
	return s.Floor - a.Pose.Y
}

// CeilingFront returns the ceiling dist units away along angle, relative to a point height units above the
// actor's feet.
func CeilingFront(g probe.Geometry, a *actor.Actor, angle game.Angle, dist float32, height int32) int32 {
	s := At(g, a, angle, dist, -height)
	if s.Ceiling == game.NoHeight {
		return game.NoHeight
	}
	return s.Ceiling + height - a.Pose.Y
}

func relative(r probe.Result, feet, head int32) Position {
	p := Position{
		Floor:        r.Floor,
		Ceiling:      r.Ceiling,
		FloorSlope:   r.FloorSlope,
		CeilingSlope: r.CeilingSlope,
		Flags:        r.Flags,
	}
	if p.Floor != game.NoHeight {
		p.Floor -= feet
	}
	if p.Ceiling != game.NoHeight {
		p.Ceiling -= head
	}
	return p
}
