package traversal

import (
	"testing"

	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
	"github.com/stretchr/testify/require"
)

func vaultContext(t *testing.T, tr *Tester, in actor.Input) *Context {
	ctx := newContext(t, newActor(512, 0, 900, 0), in)
	tr.Collide(ctx)
	return ctx
}

func TestVaultTwoSteps(t *testing.T) {
	tr, _ := newTester(stepWorld(cell{floor: -512, ceiling: -4096}))
	ctx := vaultContext(t, tr, actor.InputAction)

	res := tr.Vault(ctx)
	require.True(t, res.Success)
	require.Equal(t, actor.StateVault2Steps, res.TargetState)
	require.Equal(t, -512+game.Click(2), res.Height)
	require.True(t, res.SetBusyHands)
	require.True(t, res.SnapToLedge)
	require.False(t, res.SetJumpVelocity)

	require.Equal(t, []string{"ledge", "vault.vault_1_step_crouch", "vault.vault_2_steps"}, ctx.Trace.Keys())
}

func TestVaultRequiresAction(t *testing.T) {
	tr, _ := newTester(stepWorld(cell{floor: -512, ceiling: -4096}))
	require.False(t, tr.Vault(vaultContext(t, tr, 0)).Success)

	ctx := vaultContext(t, tr, actor.InputAction)
	ctx.Actor.Control.HandStatus = actor.HandsWeaponReady
	require.False(t, tr.Vault(ctx).Success)
}

func TestVaultTransitionDenied(t *testing.T) {
	tr, anim := newTester(stepWorld(cell{floor: -512, ceiling: -4096}))
	anim.deny = map[actor.State]bool{actor.StateVault2Steps: true}

	res := tr.Vault(vaultContext(t, tr, actor.InputAction))
	require.False(t, res.Success)
	require.Equal(t, actor.StateVault2Steps, res.TargetState)
}

func TestVaultThreeSteps(t *testing.T) {
	tr, _ := newTester(stepWorld(cell{floor: -768, ceiling: -4096}))
	res := tr.Vault(vaultContext(t, tr, actor.InputAction))
	require.True(t, res.Success)
	require.Equal(t, actor.StateVault3Steps, res.TargetState)
	require.Equal(t, int32(0), res.Height)
}

func TestVaultCrouchNeedsOption(t *testing.T) {
	w := stepWorld(cell{floor: -512, ceiling: -1012})

	tr, _ := newTester(w)
	require.False(t, tr.Vault(vaultContext(t, tr, actor.InputAction)).Success)

	tr.Options.CrawlExtended = true
	res := tr.Vault(vaultContext(t, tr, actor.InputAction))
	require.True(t, res.Success)
	require.Equal(t, actor.StateVault2StepsCrouch, res.TargetState)
}

func TestVaultRulePriority(t *testing.T) {
	index := func(s actor.State) int {
		for i, rule := range vaultRules {
			if rule.state == s {
				return i
			}
		}
		return -1
	}
	require.Less(t, index(actor.StateVault1StepCrouch), index(actor.StateVault2Steps))
	require.Less(t, index(actor.StateVault2Steps), index(actor.StateVault3Steps))
	require.Less(t, index(actor.StateVault3Steps), index(actor.StateAutoJump))
}

func TestVaultSwamp(t *testing.T) {
	w := stepWorld(cell{floor: -512, ceiling: -4096})
	w.room = probe.Swamp
	tr, _ := newTester(w)

	ctx := vaultContext(t, tr, actor.InputAction)
	require.True(t, tr.Vault(ctx).Success)

	ctx = vaultContext(t, tr, actor.InputAction)
	ctx.Actor.WaterSurfaceDist = -game.Click(4)
	require.False(t, tr.Vault(ctx).Success)
}

func TestApplyVault(t *testing.T) {
	tr, _ := newTester(stepWorld(cell{floor: -512, ceiling: -4096}))
	ctx := vaultContext(t, tr, actor.InputAction)
	a := ctx.Actor

	tr.ApplyVault(ctx, tr.Vault(ctx))
	require.Equal(t, actor.StateVault2Steps, a.Anim.TargetState)
	require.Equal(t, int32(0), a.ProjectedFloorHeight)
	require.Equal(t, actor.HandsBusy, a.Control.HandStatus)
	// Snapped a fifth of the radius past the edge.
	require.Equal(t, int32(944), a.Pose.Z)
	require.Equal(t, game.Angle(0), a.TargetFacingAngle)
}

func TestApplyVaultNeedsVaultState(t *testing.T) {
	tr, _ := newTester(stepWorld(cell{floor: -512, ceiling: -4096}))
	ctx := vaultContext(t, tr, actor.InputAction)
	a := ctx.Actor
	pose := a.Pose

	res := tr.Vault(ctx)
	require.True(t, res.Success)
	res.TargetState = actor.StateJumpUp
	tr.ApplyVault(ctx, res)
	require.Equal(t, actor.StateIdle, a.Anim.TargetState)
	require.Equal(t, actor.HandsFree, a.Control.HandStatus)
	require.Equal(t, pose, a.Pose)

	_, ok := ctx.Trace.Get("vault")
	require.False(t, ok)
}

func TestMonkeyAutoJump(t *testing.T) {
	w := newWorld().set(0, 0, cell{floor: 0, ceiling: -1500, flags: probe.MonkeySwing})
	tr, _ := newTester(w)
	tr.Options.MonkeyAutoJump = true

	ctx := newContext(t, newActor(512, 0, 512, 0), actor.InputAction)
	tr.Collide(ctx)
	tr.UpdateEnvironment(ctx)

	res := tr.Vault(ctx)
	require.True(t, res.Success)
	require.Equal(t, actor.StateAutoJump, res.TargetState)
	require.Equal(t, int32(-1500), res.Height)
	require.True(t, res.SetJumpVelocity)
}

func TestJumpVelocity(t *testing.T) {
	require.Equal(t, int32(-3), jumpVelocity(-game.Click(2)))
	require.Equal(t, int32(-112), jumpVelocity(-game.Click(7)))
}
