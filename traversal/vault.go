package traversal

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/collision"
	"github.com/oomph-ac/traverse/game"
)

// VaultSetup parameterises a vault. Lower and Upper bound the height of the ledge relative to the
// actor's feet, ClampMin and ClampMax the space above it, and GapMin the space between the ceiling above
// the actor and the ledge.
type VaultSetup struct {
	Lower, Upper       int32
	ClampMin, ClampMax int32
	GapMin             int32

	// CheckSwampDepth only rejects swamps deeper than three clicks. Without it any swamp is rejected.
	CheckSwampDepth bool
}

// VaultResult is the outcome of a vault test. Height is the absolute height the actor lands at.
type VaultResult struct {
	Success bool
	Height  int32

	SetBusyHands    bool
	SnapToLedge     bool
	SetJumpVelocity bool

	TargetState actor.State
}

// VaultTolerance reports whether the ledge in front of the actor fits s. Low ceilings right above the
// probe are scanned through upwards, so a ledge under an overhang is still found.
func (t *Tester) VaultTolerance(ctx *Context, s VaultSetup) VaultResult {
	a, coll := ctx.Actor, ctx.Coll
	y := a.Pose.Y
	dist := float32(game.OffsetRadius(coll.Setup.Radius))

	if t.swamp(a) && (!s.CheckSwampDepth || a.WaterSurfaceDist < -game.Click(3)) {
		return VaultResult{}
	}

	front := collision.At(t.World, a, coll.NearestLedgeAngle, dist, -coll.Setup.Height)
	mid := collision.Middle(t.World, a)

	step := max(game.Click(0.5), s.ClampMin)
	for yOffset := s.Lower; (front.Ceiling-y > -coll.Setup.Height || front.Clamp() <= s.ClampMin || front.Clamp() > s.ClampMax) &&
		yOffset > s.Upper-coll.Setup.Height; yOffset -= step {
		front = collision.At(t.World, a, coll.NearestLedgeAngle, dist, yOffset)
	}

	if front.Floor == game.NoHeight || front.Ceiling == game.NoHeight || mid.Ceiling == game.NoHeight {
		return VaultResult{}
	}

	floor := front.Floor - y
	if floor < s.Lower && floor >= s.Upper &&
		front.Clamp() > s.ClampMin && front.Clamp() <= s.ClampMax &&
		game.AbsInt32(mid.Ceiling-front.Floor) >= s.GapMin {
		return VaultResult{Success: true, Height: front.Floor}
	}
	return VaultResult{}
}

func (t *Tester) vault(ctx *Context, s VaultSetup, climb int32) VaultResult {
	res := t.VaultTolerance(ctx, s)
	if res.Success {
		res.Height += climb
		res.SetBusyHands = true
		res.SnapToLedge = true
	}
	return res
}

func (t *Tester) Vault2Steps(ctx *Context) VaultResult {
	return t.vault(ctx, VaultSetup{
		Lower:           -game.StepUpHeight,
		Upper:           -game.Click(2.5),
		ClampMin:        game.ActorHeight,
		ClampMax:        -game.MaxHeight,
		GapMin:          game.Click(1),
		CheckSwampDepth: true,
	}, game.Click(2))
}

func (t *Tester) Vault3Steps(ctx *Context) VaultResult {
	return t.vault(ctx, VaultSetup{
		Lower:           -game.Click(2.5),
		Upper:           -game.Click(3.5),
		ClampMin:        game.ActorHeight,
		ClampMax:        -game.MaxHeight,
		GapMin:          game.Click(1),
		CheckSwampDepth: true,
	}, game.Click(3))
}

func (t *Tester) Vault1StepToCrouch(ctx *Context) VaultResult {
	return t.vault(ctx, VaultSetup{
		Lower:           0,
		Upper:           -game.StepUpHeight,
		ClampMin:        game.ActorHeightCrawl,
		ClampMax:        game.ActorHeight,
		GapMin:          game.Click(1),
		CheckSwampDepth: true,
	}, game.Click(1))
}

func (t *Tester) Vault2StepsToCrouch(ctx *Context) VaultResult {
	return t.vault(ctx, VaultSetup{
		Lower:           -game.StepUpHeight,
		Upper:           -game.Click(2.5),
		ClampMin:        game.ActorHeightCrawl,
		ClampMax:        game.ActorHeight,
		GapMin:          game.Click(1),
		CheckSwampDepth: true,
	}, game.Click(2))
}

func (t *Tester) Vault3StepsToCrouch(ctx *Context) VaultResult {
	return t.vault(ctx, VaultSetup{
		Lower:           -game.Click(2.5),
		Upper:           -game.Click(3.5),
		ClampMin:        game.ActorHeightCrawl,
		ClampMax:        game.ActorHeight,
		GapMin:          game.Click(1),
		CheckSwampDepth: true,
	}, game.Click(3))
}

// LedgeAutoJump tests for a ledge too high to vault that can be reached by jumping up to it.
func (t *Tester) LedgeAutoJump(ctx *Context) VaultResult {
	res := t.VaultTolerance(ctx, VaultSetup{
		Lower:    -game.Click(3.5),
		Upper:    -game.Click(7.5),
		ClampMin: game.Click(0.1),
		ClampMax: -game.MaxHeight,
		GapMin:   game.Click(0.1),
	})
	res.SnapToLedge = res.Success
	res.SetJumpVelocity = res.Success
	return res
}

// LadderAutoJump tests for a ladder whose bottom is out of reach, but can be jumped to.
func (t *Tester) LadderAutoJump(ctx *Context) VaultResult {
	a, coll := ctx.Actor, ctx.Coll
	y := a.Pose.Y
	mid := collision.Middle(t.World, a)

	if t.ValidLedgeAngle(ctx) &&
		!t.swamp(a) &&
		a.Control.CanClimbLadder &&
		mid.Ceiling != game.NoHeight && mid.Ceiling-y <= -game.Click(6.5) &&
		coll.NearestLedgeDistance <= float32(coll.Setup.Radius) {
		return VaultResult{Success: true, Height: mid.Ceiling, SnapToLedge: true, SetJumpVelocity: true}
	}
	return VaultResult{}
}

// LadderMount tests for a ladder the actor can climb onto directly.
func (t *Tester) LadderMount(ctx *Context) VaultResult {
	a, coll := ctx.Actor, ctx.Coll
	y := a.Pose.Y
	mid := collision.Middle(t.World, a)
	front := collision.At(t.World, a, a.Pose.YRot, float32(coll.Setup.Radius), -coll.Setup.Height)
	if mid.Floor == game.NoHeight || mid.Ceiling == game.NoHeight || front.Ceiling == game.NoHeight {
		return VaultResult{}
	}

	if t.ValidLedgeAngle(ctx) &&
		a.Control.CanClimbLadder &&
		mid.Ceiling-y <= -game.Click(4.5) &&
		mid.Floor-y > -game.Click(6.5) &&
		front.Ceiling-y <= -game.Click(4.5) &&
		coll.NearestLedgeDistance <= float32(coll.Setup.Radius) {
		return VaultResult{Success: true, Height: game.NoHeight, SetBusyHands: true, SnapToLedge: true}
	}
	return VaultResult{}
}

// MonkeyAutoJump tests for a monkey swing ceiling within jumping reach.
func (t *Tester) MonkeyAutoJump(ctx *Context) VaultResult {
	a := ctx.Actor
	y := a.Pose.Y
	mid := collision.Middle(t.World, a)
	if mid.Ceiling == game.NoHeight {
		return VaultResult{}
	}

	if !t.swamp(a) &&
		a.Control.CanMonkeySwing &&
		mid.Ceiling-y < -game.ActorHeightMonkey &&
		mid.Ceiling-y >= -game.Click(7) {
		return VaultResult{Success: true, Height: mid.Ceiling, SetJumpVelocity: true}
	}
	return VaultResult{}
}

// vaultRule is one entry of the vault priority order.
type vaultRule struct {
	state actor.State
	test  func(*Tester, *Context) VaultResult
	// ledge requires a valid ledge in front of the actor.
	ledge bool
	// enabled gates the rule behind an option.
	enabled func(Options) bool
}

func crawlExtended(o Options) bool  { return o.CrawlExtended }
func monkeyAutoJump(o Options) bool { return o.MonkeyAutoJump }

var vaultRules = [...]vaultRule{
	{state: actor.StateVault1StepCrouch, test: (*Tester).Vault1StepToCrouch, ledge: true},
	{state: actor.StateVault2Steps, test: (*Tester).Vault2Steps, ledge: true},
	{state: actor.StateVault2StepsCrouch, test: (*Tester).Vault2StepsToCrouch, ledge: true, enabled: crawlExtended},
	{state: actor.StateVault3Steps, test: (*Tester).Vault3Steps, ledge: true},
	{state: actor.StateVault3StepsCrouch, test: (*Tester).Vault3StepsToCrouch, ledge: true, enabled: crawlExtended},
	{state: actor.StateAutoJump, test: (*Tester).LedgeAutoJump, ledge: true},
	{state: actor.StateAutoJump, test: (*Tester).MonkeyAutoJump, enabled: monkeyAutoJump},
}

// Vault picks the first vault in priority order the actor can perform. The result is only successful if
// the actor's current animation can transition into the vault's state.
func (t *Tester) Vault(ctx *Context) VaultResult {
	a := ctx.Actor
	if !ctx.Input.Has(actor.InputAction) || a.Control.HandStatus != actor.HandsFree {
		return VaultResult{}
	}
	if t.deepSwamp(a) {
		return VaultResult{}
	}

	ledge := t.ValidLedge(ctx, false, false)
	ctx.Trace.Set("ledge", ledge)
	for _, rule := range vaultRules {
		if rule.ledge && !ledge {
			continue
		}
		if rule.enabled != nil && !rule.enabled(t.Options) {
			continue
		}

		res := rule.test(t, ctx)
		ctx.Trace.Set("vault."+rule.state.String(), res.Success)
		if !res.Success {
			continue
		}
		res.TargetState = rule.state
		res.Success = t.Anim.CanTransition(a, rule.state)
		t.debugf("vault: %v height=%v allowed=%v", rule.state, res.Height, res.Success)
		return res
	}
	return VaultResult{}
}

// ApplyVault commits a successful vault to the actor. Results targeting anything but a vault state are
// ignored.
func (t *Tester) ApplyVault(ctx *Context, res VaultResult) {
	a, coll := ctx.Actor, ctx.Coll
	if !res.Success {
		return
	}
	if !actor.IsVaultState(res.TargetState) {
		t.debugf("vault: refusing non-vault state %v", res.TargetState)
		return
	}

	t.target(ctx, "vault", res.TargetState)
	a.ProjectedFloorHeight = res.Height
	if res.SetBusyHands {
		a.Control.HandStatus = actor.HandsBusy
	}
	a.Control.TurnRate = 0

	if res.SnapToLedge {
		collision.SnapToLedge(coll, a, 0.2)
		a.TargetFacingAngle = coll.NearestLedgeAngle
	}
	if res.SetJumpVelocity {
		a.Control.CalculatedJumpVelocity = jumpVelocity(max(a.ProjectedFloorHeight-a.Pose.Y, -game.Click(7.5)))
	}
}

// LadderClimb tests for a ladder the actor can jump to or mount from a standstill and starts the
// transition onto it.
func (t *Tester) LadderClimb(ctx *Context) bool {
	a := ctx.Actor
	if !ctx.Input.Has(actor.InputAction) || !ctx.Input.Has(actor.InputForward) || a.Control.HandStatus != actor.HandsFree {
		return false
	}
	if t.deepSwamp(a) {
		return false
	}

	if res := t.LadderAutoJump(ctx); res.Success {
		a.Control.CalculatedJumpVelocity = jumpVelocity(max(res.Height-a.Pose.Y+game.Click(0.2), -game.Click(7.1)))
		t.mountLadder(ctx, actor.StateJumpUp)
		return true
	}
	if res := t.LadderMount(ctx); res.Success && t.ClimbStance(ctx) {
		t.mountLadder(ctx, actor.StateLadderIdle)
		return true
	}
	return false
}

func (t *Tester) mountLadder(ctx *Context, target actor.State) {
	a, coll := ctx.Actor, ctx.Coll
	t.Anim.Play(a, actor.AnimStandSolid, 0)
	a.Anim.ActiveState = actor.StateIdle
	t.target(ctx, "ladder", target)
	a.Control.HandStatus = actor.HandsBusy
	a.Control.TurnRate = 0

	collision.Shift(a, coll)
	collision.SnapToGrid(coll, a)
	a.TargetFacingAngle = a.Pose.YRot
}

// jumpVelocity returns the upward velocity that carries an actor over height, a negative distance.
func jumpVelocity(height int32) int32 {
	return int32(-3 - math32.Sqrt(max(float32(-9600-12*height), 0)))
}
