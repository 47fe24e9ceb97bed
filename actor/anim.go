package actor

// AnimID identifies an animation the traversal core starts directly.
type AnimID uint16

const (
	AnimStandIdle AnimID = iota
	AnimStandSolid
	AnimFallStart
	AnimJumpUp
	AnimJumpUpToMonkey
	AnimReachToMonkey
	AnimReachToHang
	AnimReachToHangOscillate
	AnimHangIdle
	AnimLadderToHangLeft
	AnimLadderToHangRight
	AnimLadderShimmyUp
	AnimLadderShimmyDown
	AnimOnWaterIdle
	AnimOnWaterToWade1Step
	AnimOnWaterToStand1Step
	AnimOnWaterToStand0Step
	AnimOnWaterToStandM1Step
	AnimOnWaterToCrouch1Step
	AnimOnWaterToCrouch0Step
	AnimOnWaterToCrouchM1Step
)

// Frames within animations that the traversal core checks or resets to.
const (
	// FrameHangSettled is the frame of AnimReachToHang at which the grab has settled.
	FrameHangSettled int32 = 21
	// FrameJumpUpRelease is the frame of AnimJumpUp used when letting go of a ledge.
	FrameJumpUpRelease int32 = 9
	// FrameHangJumpUp is the frame of AnimReachToHang used when catching a ledge from a jump up.
	FrameHangJumpUp int32 = 12
)

var animNames = map[AnimID]string{
	AnimStandIdle:             "stand_idle",
	AnimStandSolid:            "stand_solid",
	AnimFallStart:             "fall_start",
	AnimJumpUp:                "jump_up",
	AnimJumpUpToMonkey:        "jump_up_to_monkey",
	AnimReachToMonkey:         "reach_to_monkey",
	AnimReachToHang:           "reach_to_hang",
	AnimReachToHangOscillate:  "reach_to_hang_oscillate",
	AnimHangIdle:              "hang_idle",
	AnimLadderToHangLeft:      "ladder_to_hang_left",
	AnimLadderToHangRight:     "ladder_to_hang_right",
	AnimLadderShimmyUp:        "ladder_shimmy_up",
	AnimLadderShimmyDown:      "ladder_shimmy_down",
	AnimOnWaterIdle:           "onwater_idle",
	AnimOnWaterToWade1Step:    "onwater_to_wade_1_step",
	AnimOnWaterToStand1Step:   "onwater_to_stand_1_step",
	AnimOnWaterToStand0Step:   "onwater_to_stand_0_step",
	AnimOnWaterToStandM1Step:  "onwater_to_stand_m1_step",
	AnimOnWaterToCrouch1Step:  "onwater_to_crouch_1_step",
	AnimOnWaterToCrouch0Step:  "onwater_to_crouch_0_step",
	AnimOnWaterToCrouchM1Step: "onwater_to_crouch_m1_step",
}

func (a AnimID) String() string {
	if n, ok := animNames[a]; ok {
		return n
	}
	return "unknown"
}
