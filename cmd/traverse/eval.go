package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/settings"
	"github.com/oomph-ac/traverse/traversal"
	"github.com/oomph-ac/traverse/world"
)

var waterStatus = map[string]actor.WaterStatus{
	"dry":        actor.Dry,
	"wade":       actor.Wade,
	"surface":    actor.Surface,
	"underwater": actor.Underwater,
}

type check struct {
	name string
	test func(*traversal.Tester, *traversal.Context) bool
}

var (
	standChecks = []check{
		{"move.run_forward", (*traversal.Tester).RunForward},
		{"move.walk_forward", (*traversal.Tester).WalkForward},
		{"move.walk_back", (*traversal.Tester).WalkBack},
		{"move.run_back", (*traversal.Tester).RunBack},
		{"move.step_left", (*traversal.Tester).StepLeft},
		{"move.step_right", (*traversal.Tester).StepRight},
		{"move.keep_low", (*traversal.Tester).KeepLow},
		{"move.crouch_roll", (*traversal.Tester).CrouchRoll},
		{"move.slide", (*traversal.Tester).Slide},
		{"move.step", (*traversal.Tester).Step},
		{"move.fall", (*traversal.Tester).Fall},
		{"jump.forward", (*traversal.Tester).JumpForward},
		{"jump.back", (*traversal.Tester).JumpBack},
		{"jump.left", (*traversal.Tester).JumpLeft},
		{"jump.right", (*traversal.Tester).JumpRight},
		{"jump.up", (*traversal.Tester).JumpUp},
		{"jump.run_forward", (*traversal.Tester).RunJumpForward},
		{"pole.up", (*traversal.Tester).PoleUp},
		{"pole.down", (*traversal.Tester).PoleDown},
	}
	swampChecks = []check{
		{"swamp.wade_forward", (*traversal.Tester).WadeForwardSwamp},
		{"swamp.walk_back", (*traversal.Tester).WalkBackSwamp},
		{"swamp.step_left", (*traversal.Tester).StepLeftSwamp},
		{"swamp.step_right", (*traversal.Tester).StepRightSwamp},
	}
	crawlChecks = []check{
		{"crawl.forward", (*traversal.Tester).CrawlForward},
		{"crawl.back", (*traversal.Tester).CrawlBack},
		{"crawl.to_hang", (*traversal.Tester).CrawlToHang},
		{"crawl.keep_low", (*traversal.Tester).KeepLow},
	}
	monkeyChecks = []check{
		{"monkey.forward", (*traversal.Tester).MonkeyForward},
		{"monkey.back", (*traversal.Tester).MonkeyBack},
		{"monkey.left", (*traversal.Tester).MonkeyShimmyLeft},
		{"monkey.right", (*traversal.Tester).MonkeyShimmyRight},
		{"monkey.fall", (*traversal.Tester).MonkeyFall},
	}
	jumpChecks = []check{
		{"jump.land", (*traversal.Tester).Land},
		{"move.slide", (*traversal.Tester).Slide},
	}
	waterChecks = []check{
		{"water.step_out", (*traversal.Tester).WaterStepOut},
		{"water.climb_out", (*traversal.Tester).WaterClimbOut},
		{"water.ladder_out", (*traversal.Tester).LadderClimbOut},
	}
)

func newTester(s settings.Settings, w *world.World, log *slog.Logger) *traversal.Tester {
	tr := traversal.New(w, boxAnimator{}, traversal.Options{
		CrawlExtended:  s.Traversal.CrawlExtended,
		MonkeyAutoJump: s.Traversal.MonkeyAutoJump,
	})
	tr.Log = log
	if log.Enabled(context.Background(), slog.LevelDebug) {
		tr.Options.Debugf = func(format string, args ...any) {
			log.Debug(fmt.Sprintf(format, args...))
		}
	}
	return tr
}

// evaluate runs one tick of tests for the context's actor, picking the testers that apply to its posture,
// and commits the transition chosen by the dispatchers. Every outcome is recorded in the context's trace.
func evaluate(tr *traversal.Tester, ctx *traversal.Context) {
	a := ctx.Actor
	tr.Collide(ctx)
	tr.UpdateEnvironment(ctx)

	run := func(checks []check) {
		for _, c := range checks {
			ctx.Trace.Set(c.name, c.test(tr, ctx))
		}
	}

	switch s := a.Anim.ActiveState; {
	case s == actor.StateHang || (s >= actor.StateShimmyLeft && s <= actor.StateShimmy45OuterRight):
		tr.HangControl(ctx)
	case s == actor.StateMonkeyIdle:
		run(monkeyChecks)
	case s >= actor.StateCrouchIdle && s <= actor.StateCrawlExitFlip:
		run(crawlChecks)
		if res := tr.CrawlVault(ctx); res.Success {
			a.Anim.TargetState = res.TargetState
			ctx.Trace.Set("crawl_vault", res.TargetState)
		}
	case a.Control.WaterStatus == actor.Surface:
		run(waterChecks)
	case actor.IsJumpState(s):
		run(jumpChecks)
	default:
		run(standChecks)
		tr.RunJumpControl(ctx)
		if a.Control.WaterStatus == actor.Wade {
			run(swampChecks)
		}
		if a.Control.CanMonkeySwing {
			ctx.Trace.Set("monkey.grab", tr.MonkeyGrab(ctx))
		}
		if res := tr.Vault(ctx); res.Success {
			tr.ApplyVault(ctx, res)
		} else if tr.LadderClimb(ctx) {
			ctx.Trace.Set("ladder.climb", true)
		}
	}
}

func evalCommand(s settings.Settings, log *slog.Logger) error {
	args := CLI.Eval
	w, err := world.Load(args.Level, log)
	if err != nil {
		return err
	}
	defer w.Close()

	state, ok := actor.ParseState(args.State)
	if !ok {
		return fmt.Errorf("unknown state %q", args.State)
	}
	in, ok := actor.ParseInput(args.Input)
	if !ok {
		return fmt.Errorf("unknown input in %v", args.Input)
	}

	a := &actor.Actor{
		Pose:      actor.Pose{X: args.X, Y: args.Y, Z: args.Z, YRot: game.Degrees(args.Yaw)},
		Room:      args.Room,
		HitPoints: 1000,
	}
	a.Anim.ActiveState, a.Anim.TargetState = state, state
	a.Control.MoveAngle = a.Pose.YRot
	a.Control.WaterStatus = waterStatus[args.Water]
	if state == actor.StateHang {
		a.Anim.Number = actor.AnimHangIdle
		a.Control.HandStatus = actor.HandsBusy
	}

	ctx := traversal.NewContext(a, in)
	defer ctx.Release()
	evaluate(newTester(s, w, log), ctx)

	for _, key := range ctx.Trace.Keys() {
		v, _ := ctx.Trace.Get(key)
		fmt.Printf("%-32s %v\n", key, v)
	}
	fmt.Printf("%-32s %+v\n", "pose", a.Pose)
	fmt.Printf("%-32s %v\n", "target", a.Anim.TargetState)
	return nil
}
