package traversal

import (
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/collision"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
)

// HangResult is the outcome of a hang re-probe.
type HangResult uint8

const (
	// HangHolding means the actor is still hanging, possibly shifted along the ledge.
	HangHolding HangResult = iota
	// HangStopped means the move was blocked and the actor was put back where it was.
	HangStopped
	// HangReleased means the actor let go of the ledge and is falling.
	HangReleased
)

func (r HangResult) String() string {
	switch r {
	case HangHolding:
		return "holding"
	case HangStopped:
		return "stopped"
	}
	return "released"
}

const (
	// climbTolerance is the largest floor or ceiling intrusion ClimbPos corrects for.
	climbTolerance = 70
	sectorMask     = game.SectorSize - 1
)

// Hang re-probes the ledge a hanging actor holds on to and keeps it attached, moving it along
// MoveAngle if it is shimmying. The actor lets go when the action input is released, when it dies or
// when the ledge has dropped away below it.
func (t *Tester) Hang(ctx *Context) HangResult {
	a, coll := ctx.Actor, ctx.Coll
	r := coll.Setup.Radius
	angle := a.Control.MoveAngle

	var climbShift int32
	switch angle {
	case a.Pose.YRot - game.Degrees(90):
		climbShift = -r
	case a.Pose.YRot + game.Degrees(90):
		climbShift = r
	}

	// Look ahead along the ledge for a drop or a low ceiling.
	pose := a.Pose
	a.Pose.Translate(a.Pose.YRot, float32(r)*0.5)
	hdif := collision.FloorFront(t.World, a, angle, float32(r)*1.4)
	stopped := hdif < game.Click(0.5)
	if collision.CeilingFront(t.World, a, angle, float32(r)*1.5, 0) > -950 {
		stopped = true
	}
	a.Pose = pose

	a.Control.MoveAngle = a.Pose.YRot
	coll.Setup.LowerFloorBound = game.NoLowerBound
	coll.Setup.UpperFloorBound = -game.StepUpHeight
	coll.Setup.LowerCeilingBound = 0
	coll.Setup.ForwardAngle = a.Control.MoveAngle

	embed := float32(4)
	if ctx.Input.Has(actor.InputLeft | actor.InputRight) {
		embed = 16
	}
	a.Pose.Translate(a.Pose.YRot, embed)
	collision.Gather(t.World, a, coll)

	holding := ctx.Input.Has(actor.InputAction) && a.Alive()
	if a.Control.CanClimbLadder {
		if !holding {
			t.Anim.Play(a, actor.AnimFallStart, 0)
			a.Pose.Y += game.StepSize
			a.FallAway()
			t.debugf("hang: released ladder at %v", a.Pose)
			return HangReleased
		}

		a.Control.MoveAngle = angle
		if !t.HangOnClimbWall(ctx) {
			if a.Anim.Number != actor.AnimLadderToHangRight && a.Anim.Number != actor.AnimLadderToHangLeft {
				collision.SnapToEdgeOfBlock(a, coll.Setup.OldPosition, a.Pose.YRot.Quadrant(), a.Anim.ActiveState == actor.StateShimmyRight)
				a.Pose.Y = coll.Setup.OldPosition.Y
				t.Anim.Play(a, actor.AnimReachToHang, actor.FrameHangSettled)
			}
			return HangStopped
		}
		if a.Anim.Number == actor.AnimReachToHang && a.Anim.Frame == actor.FrameHangSettled && t.ClimbStance(ctx) {
			a.Anim.TargetState = actor.StateLadderIdle
		}
		return HangHolding
	}

	if !holding || coll.Front.Floor > 0 {
		t.Anim.Play(a, actor.AnimJumpUp, actor.FrameJumpUpRelease)
		_, bottom := t.bounds(a)
		a.Pose.X += coll.Shift.X
		a.Pose.Y += int32(float32(bottom) * 1.8)
		a.Pose.Z += coll.Shift.Z
		a.FallAway()
		t.debugf("hang: released ledge at %v", a.Pose)
		return HangReleased
	}

	// A drop on the side the actor is shimmying towards is fine when the ledge turns that way.
	if stopped && hdif > 0 && climbShift != 0 && (climbShift > 0) == (coll.MiddleLeft.Floor > coll.MiddleRight.Floor) {
		stopped = false
	}

	top, _ := t.bounds(a)
	verticalShift := game.NoHeight
	if coll.Front.Floor != game.NoHeight {
		verticalShift = coll.Front.Floor - top
	}

	a.Control.MoveAngle = angle
	x, z := a.Pose.X, a.Pose.Z
	if climbShift != 0 {
		x = int32(float32(x) + game.Sin(angle)*float32(climbShift))
		z = int32(float32(z) + game.Cos(angle)*float32(climbShift))
	}

	if t.World.Probe(x, a.Pose.Y, z, a.Room).Flags.Has(probe.Climb(a.Pose.YRot.Quadrant())) {
		if !t.HangOnClimbWall(ctx) {
			verticalShift = 0
		}
	} else if !t.ValidLedge(ctx, true, false) {
		if (climbShift < 0 && coll.FrontLeft.Floor != coll.Front.Floor) ||
			(climbShift > 0 && coll.FrontRight.Floor != coll.Front.Floor) {
			stopped = true
		}
	}

	if !stopped &&
		coll.Middle.Ceiling < 0 &&
		coll.Type == collision.Front &&
		!coll.HitStatic &&
		game.AbsInt32(verticalShift) < game.SlopeDifference &&
		t.ValidLedgeAngle(ctx) {
		if a.Anim.Velocity != 0 {
			collision.SnapToLedge(coll, a, 0)
		}
		a.Pose.Y += verticalShift
		return HangHolding
	}

	old := coll.Setup.OldPosition
	a.Pose.X, a.Pose.Y, a.Pose.Z = old.X, old.Y, old.Z
	if a.Anim.ActiveState == actor.StateShimmyLeft || a.Anim.ActiveState == actor.StateShimmyRight {
		t.Anim.Play(a, actor.AnimReachToHang, actor.FrameHangSettled)
	}
	return HangStopped
}

// HangSideways reports whether a hanging actor can shimmy by angle relative to its heading. The actor's
// pose and move angle are left untouched.
func (t *Tester) HangSideways(ctx *Context, angle game.Angle) bool {
	a := ctx.Actor
	snap := a.Begin()
	defer snap.Restore()

	a.Control.MoveAngle = a.Pose.YRot + angle
	a.Pose.Translate(a.Control.MoveAngle, 16)
	ctx.Coll.Setup.OldPosition.Y = a.Pose.Y

	return t.Hang(ctx) != HangStopped
}

// EdgeKind is the kind of edge caught by a falling or jumping actor.
type EdgeKind int8

const (
	// EdgeBlock is the top of a grid block the hands passed this tick.
	EdgeBlock EdgeKind = -1
	EdgeNone  EdgeKind = 0
	// EdgeLedge is a valid ledge in front of the actor.
	EdgeLedge EdgeKind = 1
)

// EdgeResult is the result of EdgeCatch. Edge is the absolute height of the edge for EdgeBlock.
type EdgeResult struct {
	Kind EdgeKind
	Edge int32
}

// EdgeCatch reports whether the actor's hands reach an edge this tick.
func (t *Tester) EdgeCatch(ctx *Context) EdgeResult {
	a, coll := ctx.Actor, ctx.Coll
	top, _ := t.bounds(a)
	vel := a.Anim.VerticalVelocity

	hdif := coll.Front.Floor - top
	if (hdif < 0) == (hdif+vel < 0) {
		hands := a.Pose.Y + top
		if (hands+vel)&^0xFF != hands&^0xFF {
			if vel > 0 {
				return EdgeResult{Kind: EdgeBlock, Edge: (hands + vel) &^ 0xFF}
			}
			return EdgeResult{Kind: EdgeBlock, Edge: hands &^ 0xFF}
		}
		return EdgeResult{}
	}

	if !t.ValidLedge(ctx, true, false) {
		return EdgeResult{}
	}
	return EdgeResult{Kind: EdgeLedge}
}

// HangSwingIn reports whether the wall below the ledge is open enough for the legs to swing in.
func (t *Tester) HangSwingIn(ctx *Context) bool {
	a := ctx.Actor
	y := a.Pose.Y
	p := collision.At(t.World, a, a.Pose.YRot, float32(game.OffsetRadius(ctx.Coll.Setup.Radius)), 0)
	if p.Floor == game.NoHeight || p.Ceiling == game.NoHeight {
		return false
	}
	return p.Floor-y > 0 && p.Ceiling-y < -game.Click(1.6)
}

// HangJumpUp catches a ledge, ladder or monkey swing ceiling during a vertical jump.
func (t *Tester) HangJumpUp(ctx *Context) bool {
	a, coll := ctx.Actor, ctx.Coll
	if !ctx.Input.Has(actor.InputAction) || a.Control.HandStatus != actor.HandsFree || coll.HitStatic {
		return false
	}

	if t.MonkeyGrab(ctx) {
		t.Anim.Play(a, actor.AnimJumpUpToMonkey, 0)
		t.grabMonkey(ctx)
		return true
	}
	if coll.Middle.Ceiling > -game.StepUpHeight || coll.Type != collision.Front {
		return false
	}

	edge, ladder, ok := t.catchEdge(ctx)
	if !ok {
		return false
	}

	t.Anim.Play(a, actor.AnimReachToHang, actor.FrameHangJumpUp)
	top, _ := t.bounds(a)
	if edge.Kind == EdgeBlock {
		a.Pose.Y = edge.Edge - top + 4
	} else {
		a.Pose.Y += coll.Front.Floor - top
	}

	if ladder {
		collision.SnapToGrid(coll, a)
	} else {
		collision.SnapToLedge(coll, a, 0)
	}
	a.Halt()
	a.Control.HandStatus = actor.HandsBusy
	return true
}

// HangJump catches a ledge, ladder or monkey swing ceiling during a forward jump or fall.
func (t *Tester) HangJump(ctx *Context) bool {
	a, coll := ctx.Actor, ctx.Coll
	if !ctx.Input.Has(actor.InputAction) || a.Control.HandStatus != actor.HandsFree || coll.HitStatic {
		return false
	}

	if t.MonkeyGrab(ctx) {
		t.Anim.Play(a, actor.AnimReachToMonkey, 0)
		t.grabMonkey(ctx)
		return true
	}
	if coll.Middle.Ceiling > -game.StepUpHeight || coll.Middle.Floor < 200 || coll.Type != collision.Front {
		return false
	}

	edge, ladder, ok := t.catchEdge(ctx)
	if !ok {
		return false
	}

	if t.HangSwingIn(ctx) {
		t.Anim.Play(a, actor.AnimReachToHangOscillate, 0)
	} else {
		t.Anim.Play(a, actor.AnimReachToHang, 0)
	}

	top, _ := t.bounds(a)
	if edge.Kind == EdgeBlock {
		a.Pose.Y = edge.Edge - top - 20
		a.Pose.YRot = coll.NearestLedgeAngle
	} else {
		a.Pose.Y += coll.Front.Floor - top - 20
	}

	if ladder {
		collision.SnapToGrid(coll, a)
	} else {
		collision.SnapToLedge(coll, a, 0.2)
	}
	a.Anim.Velocity = 2
	a.Anim.VerticalVelocity = 1
	a.Anim.Airborne = true
	a.Control.HandStatus = actor.HandsBusy
	return true
}

// catchEdge finds an edge the actor can catch and whether it is held as a ladder.
func (t *Tester) catchEdge(ctx *Context) (EdgeResult, bool, bool) {
	edge := t.EdgeCatch(ctx)
	if edge.Kind == EdgeNone {
		return edge, false, false
	}

	ladder := t.HangOnClimbWall(ctx)
	if ladder {
		return edge, true, true
	}
	if edge.Kind == EdgeLedge && t.ValidLedge(ctx, true, true) {
		return edge, false, true
	}
	return edge, false, false
}

func (t *Tester) grabMonkey(ctx *Context) {
	a := ctx.Actor
	a.Halt()
	a.Pose.Y += ctx.Coll.Middle.Ceiling + (game.ActorHeightMonkey - ctx.Coll.Setup.Height)
	a.Control.HandStatus = actor.HandsBusy
}

// ValidHangPos reports whether a hanging actor, at its current pose, would hold on to a valid ledge.
// It reruns the collision pass.
func (t *Tester) ValidHangPos(ctx *Context) bool {
	a, coll := ctx.Actor, ctx.Coll

	front := collision.AboveFront(t.World, a, a.Control.MoveAngle, float32(coll.Setup.Radius+game.Click(0.5)), game.ActorHeight)
	if front.Floor == game.NoHeight || game.AbsInt32(front.Floor-(a.Pose.Y-coll.Setup.Height)) > game.Click(0.5) {
		return false
	}

	a.Pose.Translate(a.Pose.YRot, 8)
	a.Control.MoveAngle = a.Pose.YRot
	coll.Setup.Mode = collision.FreeFlat
	coll.Setup.LowerFloorBound = game.NoLowerBound
	coll.Setup.UpperFloorBound = -game.Click(2)
	coll.Setup.LowerCeilingBound = 0
	coll.Setup.ForwardAngle = a.Control.MoveAngle
	collision.Gather(t.World, a, coll)

	if coll.Middle.Ceiling >= 0 || coll.Type != collision.Front || coll.HitStatic {
		return false
	}
	return t.ValidLedge(ctx, false, false)
}

// ClimbStance reports whether a hanging actor can move onto the ladder in front of it, correcting its
// height if the ladder is slightly offset.
func (t *Tester) ClimbStance(ctx *Context) bool {
	a := ctx.Actor
	r := ctx.Coll.Setup.Radius

	right, shiftRight := t.ClimbPos(ctx, r, r+game.Click(0.5), -700, game.Click(2))
	if right != ClimbOK {
		return false
	}
	left, shiftLeft := t.ClimbPos(ctx, r, -(r + game.Click(0.5)), -700, game.Click(2))
	if left != ClimbOK {
		return false
	}

	switch {
	case shiftRight == 0:
		a.Pose.Y += shiftLeft
	case shiftLeft == 0:
		a.Pose.Y += shiftRight
	case (shiftRight < 0) != (shiftLeft < 0):
		return false
	case shiftRight < 0 && shiftLeft < shiftRight, shiftRight > 0 && shiftLeft > shiftRight:
		a.Pose.Y += shiftLeft
	default:
		a.Pose.Y += shiftRight
	}
	return true
}

// HangOnClimbWall reports whether the actor can hold on to the ladder in front of it. It aligns the
// actor with the wall and adjusts its height when the ladder top is within reach.
func (t *Tester) HangOnClimbWall(ctx *Context) bool {
	a, coll := ctx.Actor, ctx.Coll
	if !a.Control.CanClimbLadder || a.Anim.VerticalVelocity < 0 {
		return false
	}

	grid := *coll
	grid.Setup.Mode = collision.Quadrants
	collision.Gather(t.World, a, &grid)

	switch a.Pose.YRot.Quadrant() {
	case game.North, game.South:
		a.Pose.Z += grid.Shift.Z
	default:
		a.Pose.X += grid.Shift.X
	}

	if a.Control.MoveAngle != a.Pose.YRot {
		l := collision.CeilingFront(t.World, a, a.Pose.YRot, 0, 0)
		r := collision.CeilingFront(t.World, a, a.Control.MoveAngle, float32(game.Click(0.5)), 0)
		if l == game.NoHeight || r == game.NoHeight || game.AbsInt32(l-r) > game.SlopeDifference {
			return false
		}
	}

	top, bottom := t.bounds(a)
	if res, _ := t.ClimbPos(ctx, game.ActorRadius, game.ActorRadius, top, bottom-top); res == ClimbNone {
		return false
	}
	if res, _ := t.ClimbPos(ctx, game.ActorRadius, -game.ActorRadius, top, bottom-top); res == ClimbNone {
		return false
	}

	res, shift := t.ClimbPos(ctx, game.ActorRadius, 0, top, bottom-top)
	switch res {
	case ClimbNone:
		return false
	case ClimbTop:
		a.Pose.Y += shift
	}
	return true
}

// ClimbResult is the result of sampling a climbable wall.
type ClimbResult int8

const (
	// ClimbTop means the top of the wall is within the sampled span.
	ClimbTop  ClimbResult = -1
	ClimbNone ClimbResult = 0
	// ClimbOK means the wall covers the whole span.
	ClimbOK ClimbResult = 1
)

// ClimbPos samples the climbable wall the actor faces. The sampled span is height units tall and starts
// origin units below the actor's feet, right units to the right of the actor along the sector edge in
// front of it. The edge must be no further than front units away. The returned shift is the vertical
// correction that would line the span up with the space in front of the wall.
func (t *Tester) ClimbPos(ctx *Context, front, right, origin, height int32) (ClimbResult, int32) {
	a := ctx.Actor
	q := a.Pose.YRot.Quadrant()
	dx, dz := q.Vec()

	// The right hand side of a heading (dx, dz) is (dz, -dx).
	x := a.Pose.X + dz*right
	z := a.Pose.Z - dx*right
	y := a.Pose.Y + origin

	// wx, wz is just past the sector edge, inside the wall.
	wx, wz := x, z
	var dist int32
	switch q {
	case game.North:
		wz = (z | sectorMask) + 4
		dist = wz - 4 - z
	case game.East:
		wx = (x | sectorMask) + 4
		dist = wx - 4 - x
	case game.South:
		wz = (z &^ sectorMask) - 4
		dist = z - (wz + 4)
	case game.West:
		wx = (x &^ sectorMask) - 4
		dist = x - (wx + 4)
	}
	if dist > front+climbTolerance {
		return ClimbNone, 0
	}

	here := t.World.Probe(x, y, z, a.Room)
	if here.Floor == game.NoHeight || !here.Flags.Has(probe.Climb(q)) {
		return ClimbNone, 0
	}

	var shift int32
	if floor := here.Floor - (y + height); floor < 0 {
		if floor < -climbTolerance {
			return ClimbNone, 0
		}
		shift = floor
	}
	if ceiling := here.Ceiling - y; ceiling > 0 {
		if ceiling > climbTolerance || shift != 0 {
			return ClimbNone, 0
		}
		shift = ceiling
	}

	wallTop := t.World.Probe(wx, y, wz, a.Room)
	if wallTop.Floor == game.NoHeight {
		if t.World.Probe(wx, y+height, wz, a.Room).Floor != game.NoHeight {
			return ClimbNone, 0
		}
		return ClimbOK, shift
	}

	gap := wallTop.Floor - y
	if gap < 0 || gap > game.Click(0.5) {
		return ClimbNone, 0
	}
	return ClimbTop, gap
}
