package actor

// State is a sub-state of the actor's movement state machine.
type State uint16

const (
	StateIdle State = iota
	StateWalkForward
	StateRunForward
	StateSprint
	StateSprintDive
	StateStepUp
	StateStepDown

	StateJumpForward
	StateJumpBack
	StateJumpLeft
	StateJumpRight
	StateJumpUp
	StateFallBack
	StateReach
	StateSwanDive
	StateFreefallDive
	StateFreefall

	StateVault
	StateVault2Steps
	StateVault3Steps
	StateVault1StepCrouch
	StateVault2StepsCrouch
	StateVault3StepsCrouch
	StateAutoJump

	StateHang
	StateShimmyLeft
	StateShimmyRight
	StateShimmyInnerLeft
	StateShimmyInnerRight
	StateShimmyOuterLeft
	StateShimmyOuterRight
	StateShimmy45InnerLeft
	StateShimmy45InnerRight
	StateShimmy45OuterLeft
	StateShimmy45OuterRight
	StateHandstand
	StateGrabbing
	StateHangToCrawl
	StateCorner

	StateCrouchIdle
	StateCrouchTurnLeft
	StateCrouchTurnRight
	StateCrawlIdle
	StateCrawlStepUp
	StateCrawlStepDown
	StateCrawlExitStepDown
	StateCrawlExitJump
	StateCrawlExitFlip

	StateLadderIdle
	StateMonkeyIdle
	StatePoleIdle
	StateOnWaterExit
)

var stateNames = map[State]string{
	StateIdle:               "idle",
	StateWalkForward:        "walk_forward",
	StateRunForward:         "run_forward",
	StateSprint:             "sprint",
	StateSprintDive:         "sprint_dive",
	StateStepUp:             "step_up",
	StateStepDown:           "step_down",
	StateJumpForward:        "jump_forward",
	StateJumpBack:           "jump_back",
	StateJumpLeft:           "jump_left",
	StateJumpRight:          "jump_right",
	StateJumpUp:             "jump_up",
	StateFallBack:           "fall_back",
	StateReach:              "reach",
	StateSwanDive:           "swan_dive",
	StateFreefallDive:       "freefall_dive",
	StateFreefall:           "freefall",
	StateVault:              "vault",
	StateVault2Steps:        "vault_2_steps",
	StateVault3Steps:        "vault_3_steps",
	StateVault1StepCrouch:   "vault_1_step_crouch",
	StateVault2StepsCrouch:  "vault_2_steps_crouch",
	StateVault3StepsCrouch:  "vault_3_steps_crouch",
	StateAutoJump:           "auto_jump",
	StateHang:               "hang",
	StateShimmyLeft:         "shimmy_left",
	StateShimmyRight:        "shimmy_right",
	StateShimmyInnerLeft:    "shimmy_inner_left",
	StateShimmyInnerRight:   "shimmy_inner_right",
	StateShimmyOuterLeft:    "shimmy_outer_left",
	StateShimmyOuterRight:   "shimmy_outer_right",
	StateShimmy45InnerLeft:  "shimmy_45_inner_left",
	StateShimmy45InnerRight: "shimmy_45_inner_right",
	StateShimmy45OuterLeft:  "shimmy_45_outer_left",
	StateShimmy45OuterRight: "shimmy_45_outer_right",
	StateHandstand:          "handstand",
	StateGrabbing:           "grabbing",
	StateHangToCrawl:        "hang_to_crawl",
	StateCorner:             "corner",
	StateCrouchIdle:         "crouch_idle",
	StateCrouchTurnLeft:     "crouch_turn_left",
	StateCrouchTurnRight:    "crouch_turn_right",
	StateCrawlIdle:          "crawl_idle",
	StateCrawlStepUp:        "crawl_step_up",
	StateCrawlStepDown:      "crawl_step_down",
	StateCrawlExitStepDown:  "crawl_exit_step_down",
	StateCrawlExitJump:      "crawl_exit_jump",
	StateCrawlExitFlip:      "crawl_exit_flip",
	StateLadderIdle:         "ladder_idle",
	StateMonkeyIdle:         "monkey_idle",
	StatePoleIdle:           "pole_idle",
	StateOnWaterExit:        "onwater_exit",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// ParseState returns the state with the given name.
func ParseState(name string) (State, bool) {
	for s, n := range stateNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// IsJumpState reports whether the state is an airborne jump or fall.
func IsJumpState(s State) bool {
	switch s {
	case StateJumpForward, StateJumpBack, StateJumpLeft, StateJumpRight, StateJumpUp,
		StateFallBack, StateReach, StateSwanDive, StateFreefallDive, StateFreefall:
		return true
	}
	return false
}

// IsRunJumpQueueableState reports whether a running jump may be queued from the state.
func IsRunJumpQueueableState(s State) bool {
	return s == StateRunForward || s == StateStepUp || s == StateStepDown
}

// IsRunJumpCountableState reports whether the state counts toward a running jump's run-up.
func IsRunJumpCountableState(s State) bool {
	switch s {
	case StateRunForward, StateWalkForward, StateJumpForward, StateSprint, StateSprintDive:
		return true
	}
	return false
}

// IsVaultState reports whether the state is one of the vault transitions.
func IsVaultState(s State) bool {
	switch s {
	case StateVault, StateVault2Steps, StateVault3Steps, StateVault1StepCrouch,
		StateVault2StepsCrouch, StateVault3StepsCrouch, StateAutoJump:
		return true
	}
	return false
}
