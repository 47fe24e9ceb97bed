package actor

import "strings"

// Input is the bitmask of control inputs held during a tick.
type Input uint16

const (
	InputForward Input = 1 << iota
	InputBack
	InputLeft
	InputRight
	InputLeftStep
	InputRightStep
	InputAction
	InputJump
	InputCrouch
	InputWalk
	InputSprint
	InputLook
	InputDraw
	InputFlare
)

var inputNames = [...]string{
	"forward", "back", "left", "right", "lstep", "rstep", "action",
	"jump", "crouch", "walk", "sprint", "look", "draw", "flare",
}

// Has reports whether any of the inputs in i are held.
func (in Input) Has(i Input) bool {
	return in&i != 0
}

func (in Input) String() string {
	var names []string
	for bit, name := range inputNames {
		if in&(1<<bit) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// ParseInput parses a list of input names as produced by Input.String.
func ParseInput(names []string) (Input, bool) {
	var in Input
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		found := false
		for bit, name := range inputNames {
			if name == n {
				in |= 1 << bit
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return in, true
}
