package main

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/game"
)

// animStates are the states the animations started by the testers settle in.
var animStates = map[actor.AnimID]actor.State{
	actor.AnimStandIdle:             actor.StateIdle,
	actor.AnimStandSolid:            actor.StateIdle,
	actor.AnimFallStart:             actor.StateFreefall,
	actor.AnimJumpUp:                actor.StateJumpUp,
	actor.AnimJumpUpToMonkey:        actor.StateMonkeyIdle,
	actor.AnimReachToMonkey:         actor.StateMonkeyIdle,
	actor.AnimReachToHang:           actor.StateHang,
	actor.AnimReachToHangOscillate:  actor.StateHang,
	actor.AnimHangIdle:              actor.StateHang,
	actor.AnimLadderToHangLeft:      actor.StateHang,
	actor.AnimLadderToHangRight:     actor.StateHang,
	actor.AnimLadderShimmyUp:        actor.StateLadderIdle,
	actor.AnimLadderShimmyDown:      actor.StateLadderIdle,
	actor.AnimOnWaterIdle:           actor.StateIdle,
	actor.AnimOnWaterToWade1Step:    actor.StateOnWaterExit,
	actor.AnimOnWaterToStand1Step:   actor.StateOnWaterExit,
	actor.AnimOnWaterToStand0Step:   actor.StateOnWaterExit,
	actor.AnimOnWaterToStandM1Step:  actor.StateOnWaterExit,
	actor.AnimOnWaterToCrouch1Step:  actor.StateOnWaterExit,
	actor.AnimOnWaterToCrouch0Step:  actor.StateOnWaterExit,
	actor.AnimOnWaterToCrouchM1Step: actor.StateOnWaterExit,
}

// animLength is the frame count every animation is assumed to have.
const animLength = 30

// boxAnimator is a stand-in for a real animation system. Animations switch instantly, every frame of a
// posture has the same bounds and every state transition is offered.
type boxAnimator struct{}

func (boxAnimator) Play(a *actor.Actor, anim actor.AnimID, frame int32) {
	a.Anim.Number, a.Anim.Frame = anim, frame
	if s, ok := animStates[anim]; ok {
		a.Anim.ActiveState, a.Anim.TargetState = s, s
	}
}

func (boxAnimator) Bounds(a *actor.Actor) cube.BBox {
	switch a.Anim.ActiveState {
	case actor.StateCrawlIdle, actor.StateCrawlStepUp, actor.StateCrawlStepDown, actor.StateCrouchIdle,
		actor.StateCrouchTurnLeft, actor.StateCrouchTurnRight:
		r := float32(game.ActorRadiusCrawl)
		return cube.Box(-r, -float32(game.ActorHeightCrawl), -r, r, 0, r)
	case actor.StateMonkeyIdle:
		r := float32(game.ActorRadius)
		return cube.Box(-r, -float32(game.ActorHeightMonkey), -r, r, 0, r)
	}
	r := float32(game.ActorRadius)
	return cube.Box(-r, -float32(game.ActorHeight), -r, r, 0, r)
}

func (boxAnimator) LastFrame(a *actor.Actor) bool {
	return a.Anim.Frame >= animLength-1
}

func (boxAnimator) CanTransition(*actor.Actor, actor.State) bool {
	return true
}

// advance moves the actor's animation on by one frame, looping at the end.
func advance(a *actor.Actor) {
	a.Anim.Frame = (a.Anim.Frame + 1) % animLength
}
