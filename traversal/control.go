package traversal

import (
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/collision"
	"github.com/oomph-ac/traverse/game"
)

type cornerRule struct {
	angle        float32
	inner, outer actor.State
}

// hangSide is the lateral policy of a hanging actor towards one side: a plain shimmy first, then the
// corners in order.
type hangSide struct {
	name    string
	input   actor.Input
	sign    float32
	shimmy  actor.State
	corners [2]cornerRule
}

var hangSides = [...]hangSide{
	{
		name:   "left",
		input:  actor.InputLeft | actor.InputLeftStep,
		sign:   -1,
		shimmy: actor.StateShimmyLeft,
		corners: [2]cornerRule{
			{angle: 90, inner: actor.StateShimmyInnerLeft, outer: actor.StateShimmyOuterLeft},
			{angle: 45, inner: actor.StateShimmy45InnerLeft, outer: actor.StateShimmy45OuterLeft},
		},
	},
	{
		name:   "right",
		input:  actor.InputRight | actor.InputRightStep,
		sign:   1,
		shimmy: actor.StateShimmyRight,
		corners: [2]cornerRule{
			{angle: 90, inner: actor.StateShimmyInnerRight, outer: actor.StateShimmyOuterRight},
			{angle: 45, inner: actor.StateShimmy45InnerRight, outer: actor.StateShimmy45OuterRight},
		},
	},
}

// climbRule is a way of pulling up onto a ledge, taken while its input is held. A zero input matches
// any input.
type climbRule struct {
	input    actor.Input
	target   actor.State
	required actor.State
}

var climbRules = [...]climbRule{
	{input: actor.InputWalk, target: actor.StateHandstand},
	{input: actor.InputCrouch, target: actor.StateHangToCrawl, required: actor.StateCrouchIdle},
	{target: actor.StateGrabbing},
}

func hanging(a *actor.Actor) bool {
	return a.Anim.Number == actor.AnimReachToHang || a.Anim.Number == actor.AnimHangIdle
}

// HangControl runs one tick of an actor hanging from a ledge: it picks a shimmy or corner turn for
// lateral input, keeps the actor on the ledge and decides on climbing up onto the ledge or onto a ladder.
func (t *Tester) HangControl(ctx *Context) {
	a, coll := ctx.Actor, ctx.Coll
	if !a.Alive() {
		a.Anim.TargetState = actor.StateIdle
	}
	coll.Setup.Mode = collision.FreeFlat

	a.Anim.VerticalVelocity = 0
	a.Anim.Airborne = false

	if hanging(a) {
		for _, side := range hangSides {
			if !ctx.Input.Has(side.input) {
				continue
			}
			if t.HangSideways(ctx, game.Degrees(90*side.sign)) {
				t.target(ctx, "hang."+side.name, side.shimmy)
				return
			}

			a.Control.MoveAngle = a.Pose.YRot + game.Degrees(90*side.sign)
			for _, rule := range side.corners {
				switch t.HangCorner(ctx, rule.angle*side.sign) {
				case CornerInner:
					t.target(ctx, "hang."+side.name+".corner", rule.inner)
					return
				case CornerOuter:
					t.target(ctx, "hang."+side.name+".corner", rule.outer)
					return
				}
			}
		}
	}

	a.Control.MoveAngle = a.Pose.YRot
	res := t.Hang(ctx)
	ctx.Trace.Set("hang", res)
	if !hanging(a) {
		return
	}

	if ctx.Input.Has(actor.InputForward) {
		if coll.Front.Floor > -(game.Click(3.5)-46) && t.ValidLedge(ctx, false, false) && !coll.HitStatic {
			if coll.Front.Floor < -(game.Click(2.5)+10) && standable(coll.Front) && standable(coll.FrontLeft) && standable(coll.FrontRight) {
				for _, rule := range climbRules {
					if rule.input == 0 || ctx.Input.Has(rule.input) {
						t.target(ctx, "hang.climb", rule.target)
						a.Anim.RequiredState = rule.required
						return
					}
				}
			}
			if coll.Front.Floor < -(game.Click(2.5)+10) && crawlable(coll.Front) && crawlable(coll.FrontLeft) && crawlable(coll.FrontRight) {
				t.target(ctx, "hang.climb", actor.StateHangToCrawl)
				a.Anim.RequiredState = actor.StateCrouchIdle
				return
			}
		}

		if a.Control.CanClimbLadder && coll.Middle.Ceiling <= -game.Click(1) && game.AbsInt32(coll.FrontLeft.Ceiling-coll.FrontRight.Ceiling) < game.SlopeDifference {
			t.ladderStance(ctx, actor.AnimLadderShimmyUp)
		}
		return
	}

	if ctx.Input.Has(actor.InputBack) && a.Control.CanClimbLadder && coll.Middle.Floor > game.Click(1.5)-40 {
		t.ladderStance(ctx, actor.AnimLadderShimmyDown)
	}
}

// ShimmyControl runs one tick of an actor shimmying along a ledge towards the right or the left.
func (t *Tester) ShimmyControl(ctx *Context, right bool) {
	a, coll := ctx.Actor, ctx.Coll
	coll.Setup.Mode = collision.FreeFlat

	dir, held := game.Degrees(-90), actor.InputLeft|actor.InputLeftStep
	if right {
		dir, held = game.Degrees(90), actor.InputRight|actor.InputRightStep
	}
	if !ctx.Input.Has(held) {
		a.Anim.TargetState = actor.StateHang
	}

	a.Control.MoveAngle = a.Pose.YRot + dir
	coll.Setup.Radius = game.ActorRadius
	ctx.Trace.Set("shimmy", t.Hang(ctx))
	a.Control.MoveAngle = a.Pose.YRot + dir
}

// ladderStance moves a hanging actor onto the ladder in front of it, or plays anim to shimmy it into
// place first.
func (t *Tester) ladderStance(ctx *Context, anim actor.AnimID) {
	a := ctx.Actor
	if t.ClimbStance(ctx) {
		t.target(ctx, "hang.ladder", actor.StateLadderIdle)
	} else if t.Anim.LastFrame(a) {
		t.Anim.Play(a, anim, 0)
	}
}

// target sets the actor's next state and records the decision.
func (t *Tester) target(ctx *Context, key string, s actor.State) {
	ctx.Actor.Anim.TargetState = s
	ctx.Trace.Set(key, s)
	t.Log.Debug("transition", "test", key, "state", s)
}

func standable(p collision.Position) bool {
	return p.Floor >= p.Ceiling
}

func crawlable(p collision.Position) bool {
	return p.Floor-p.Ceiling >= -game.Click(1)
}
