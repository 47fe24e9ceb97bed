package traversal

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/collision"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
)

// CrawlVaultSetup parameterises a crawl vault. The floor is probed twice in front of the actor, at
// CrossDist where the step is and at DestDist where the actor ends up.
type CrawlVaultSetup struct {
	Lower, Upper int32
	ClampMin     int32
	GapMin       int32

	CrossDist, DestDist int32
	MaxProbeHeightDiff  int32

	CheckSlope bool
	CheckDeath bool
}

// CrawlVaultTolerance reports whether a crawling actor can climb or drop onto the floor in front of it.
func (t *Tester) CrawlVaultTolerance(ctx *Context, s CrawlVaultSetup) bool {
	a := ctx.Actor
	y := a.Pose.Y

	cross := collision.At(t.World, a, a.Pose.YRot, float32(s.CrossDist), -game.ActorHeightCrawl)
	dest := collision.At(t.World, a, a.Pose.YRot, float32(s.DestDist), -game.ActorHeightCrawl)
	mid := collision.Middle(t.World, a)
	for _, p := range [...]collision.Sample{cross, dest, mid} {
		if p.Floor == game.NoHeight || p.Ceiling == game.NoHeight {
			return false
		}
	}

	if s.CheckSlope && dest.FloorSlope {
		return false
	}
	if s.CheckDeath && dest.Flags.Has(probe.Death) {
		return false
	}

	floor := cross.Floor - y
	return floor <= s.Lower && floor >= s.Upper &&
		cross.Clamp() > s.ClampMin && dest.Clamp() > s.ClampMin &&
		game.AbsInt32(mid.Ceiling-cross.Floor) >= s.GapMin &&
		game.AbsInt32(cross.Ceiling-mid.Floor) >= s.GapMin &&
		game.AbsInt32(cross.Floor-dest.Floor) <= s.MaxProbeHeightDiff &&
		cross.Ceiling-y < -s.GapMin
}

func (t *Tester) CrawlUpStep(ctx *Context) bool {
	return t.CrawlVaultTolerance(ctx, CrawlVaultSetup{
		Lower:              -game.Click(1),
		Upper:              -game.StepUpHeight,
		ClampMin:           game.ActorHeightCrawl,
		GapMin:             game.Click(0.6),
		CrossDist:          game.Click(1.2),
		DestDist:           game.Click(2),
		MaxProbeHeightDiff: game.Click(1) - 1,
		CheckSlope:         true,
		CheckDeath:         true,
	})
}

func (t *Tester) CrawlDownStep(ctx *Context) bool {
	return t.CrawlVaultTolerance(ctx, CrawlVaultSetup{
		Lower:              game.StepUpHeight,
		Upper:              game.Click(1),
		ClampMin:           game.ActorHeightCrawl,
		GapMin:             game.Click(0.6),
		CrossDist:          game.Click(1.2),
		DestDist:           game.Click(2),
		MaxProbeHeightDiff: game.Click(1) - 1,
		CheckSlope:         true,
		CheckDeath:         true,
	})
}

// CrawlExitDownStep tests for a step down the actor can stand up on.
func (t *Tester) CrawlExitDownStep(ctx *Context) bool {
	return t.CrawlVaultTolerance(ctx, CrawlVaultSetup{
		Lower:              game.StepUpHeight,
		Upper:              game.Click(1),
		ClampMin:           game.ActorHeight,
		GapMin:             game.Click(1.25),
		CrossDist:          game.Click(1.2),
		DestDist:           game.Click(1.5),
		MaxProbeHeightDiff: -game.MaxHeight,
	})
}

// CrawlExitJump tests for a drop too deep to step down, which the actor leaves by jumping or flipping.
func (t *Tester) CrawlExitJump(ctx *Context) bool {
	return t.CrawlVaultTolerance(ctx, CrawlVaultSetup{
		Lower:              game.NoLowerBound,
		Upper:              game.StepUpHeight + 1,
		ClampMin:           game.ActorHeight,
		GapMin:             game.Click(1.25),
		CrossDist:          game.Click(1.2),
		DestDist:           game.Click(1.5),
		MaxProbeHeightDiff: game.NoLowerBound,
	})
}

// CrawlToHang reports whether a crawling actor can back off the edge behind it into a hang.
func (t *Tester) CrawlToHang(ctx *Context) bool {
	a := ctx.Actor
	y := a.Pose.Y
	angle := a.Pose.YRot + game.Degrees(180)
	dist := float32(game.Click(1.2))

	p := collision.At(t.World, a, angle, dist, -game.ActorHeightCrawl)
	if p.Floor == game.NoHeight || p.Ceiling == game.NoHeight {
		return false
	}
	if t.obstructed(a, p.X, p.Z, game.ActorRadiusCrawl) {
		return false
	}
	return p.Floor-y >= game.ActorHeightStretch && p.Ceiling-y <= -game.Click(0.75)
}

// obstructed reports whether a static obstacle stands in a standing column of the given radius at x, z.
func (t *Tester) obstructed(a *actor.Actor, x, z, radius int32) bool {
	statics, ok := t.World.(probe.Statics)
	if !ok {
		return false
	}
	r := float32(radius)
	column := cube.Box(float32(x)-r, float32(a.Pose.Y-game.ActorHeight), float32(z)-r, float32(x)+r, float32(a.Pose.Y), float32(z)+r)
	for _, box := range statics.StaticBoxes(column.Grow(game.SectorSize)) {
		if box.IntersectsWith(column) {
			return true
		}
	}
	return false
}

// CrawlspaceDive reports whether a running actor diving forward would end up in a crawlspace.
func (t *Tester) CrawlspaceDive(ctx *Context) bool {
	coll := ctx.Coll
	p := collision.At(t.World, ctx.Actor, coll.Setup.ForwardAngle, float32(coll.Setup.Radius), -coll.Setup.Height)
	if p.Floor != game.NoHeight && p.Clamp() < game.ActorHeight {
		return true
	}
	return t.KeepLow(ctx)
}

// CrawlVaultResult is the outcome of CrawlVault.
type CrawlVaultResult struct {
	Success     bool
	TargetState actor.State
}

// crawlRule is one entry of the crawl vault priority order. While input is held, alt is taken instead
// of state, provided altTest passes.
type crawlRule struct {
	test  func(*Tester, *Context) bool
	state actor.State

	input   actor.Input
	alt     actor.State
	altTest func(*Tester, *Context) bool
}

var crawlRules = [...]crawlRule{
	{test: (*Tester).CrawlExitDownStep, state: actor.StateCrawlExitStepDown, input: actor.InputCrouch, alt: actor.StateCrawlStepDown, altTest: (*Tester).CrawlDownStep},
	{test: (*Tester).CrawlExitJump, state: actor.StateCrawlExitJump, input: actor.InputWalk, alt: actor.StateCrawlExitFlip},
	{test: (*Tester).CrawlUpStep, state: actor.StateCrawlStepUp},
	{test: (*Tester).CrawlDownStep, state: actor.StateCrawlStepDown},
}

// CrawlVault picks the crawl vault a crawling actor performs. Holding crouch keeps the actor crawling
// down a step it could otherwise stand up on, holding walk turns an exit jump into a flip.
func (t *Tester) CrawlVault(ctx *Context) CrawlVaultResult {
	if !ctx.Input.Has(actor.InputAction) && !ctx.Input.Has(actor.InputJump) {
		return CrawlVaultResult{}
	}

	for _, rule := range crawlRules {
		ok := rule.test(t, ctx)
		ctx.Trace.Set("crawl."+rule.state.String(), ok)
		if !ok {
			continue
		}
		if rule.input != 0 && ctx.Input.Has(rule.input) {
			if rule.altTest != nil && !rule.altTest(t, ctx) {
				return CrawlVaultResult{}
			}
			return CrawlVaultResult{Success: true, TargetState: rule.alt}
		}
		return CrawlVaultResult{Success: true, TargetState: rule.state}
	}
	return CrawlVaultResult{}
}
