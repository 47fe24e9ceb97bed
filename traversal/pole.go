package traversal

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
)

// poleSphereRadius is the radius of the hand sphere tested against poles.
const poleSphereRadius = 16

// PoleCollision reports whether the actor's hands, above its bounds when up is set and below them
// otherwise, touch a pole. offset moves the hands further out.
func (t *Tester) PoleCollision(ctx *Context, up bool, offset float32) bool {
	objects, ok := t.World.(probe.Objects)
	if !ok {
		return false
	}
	a := ctx.Actor

	pos := mgl32.Vec3{float32(a.Pose.X), float32(a.Pose.Y), float32(a.Pose.Z)}
	bounds := t.Anim.Bounds(a).Translate(pos)
	min, max := bounds.Min(), bounds.Max()

	center := min.Add(max).Mul(0.5)
	reach := (max.Y()-min.Y())/2 + poleSphereRadius + offset
	if up {
		reach = -reach
	}
	center[1] += reach

	r := float32(ctx.Coll.Setup.Radius)
	for _, pole := range objects.Poles(bounds.Grow(game.SectorSize)) {
		pmin, pmax := pole.Min(), pole.Max()
		grown := cube.Box(pmin.X()-r, pmin.Y(), pmin.Z()-r, pmax.X()+r, pmax.Y(), pmax.Z()+r)
		if game.SphereIntersectsBox(center, poleSphereRadius, grown.Min(), grown.Max()) {
			return true
		}
	}
	return false
}

// PoleUp reports whether an actor on a pole can climb further up.
func (t *Tester) PoleUp(ctx *Context) bool {
	return t.PoleCollision(ctx, true, float32(game.Click(1))) && ctx.Coll.Middle.Ceiling < -game.Click(1)
}

// PoleDown reports whether an actor on a pole can slide further down.
func (t *Tester) PoleDown(ctx *Context) bool {
	return t.PoleCollision(ctx, false, 0) && ctx.Coll.Middle.Floor > 0
}
