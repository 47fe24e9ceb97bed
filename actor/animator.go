package actor

import "github.com/ethaniccc/float32-cube/cube"

// Animator is the animation and state machine collaborator of the traversal core.
type Animator interface {
	// Play starts anim on the actor at the given frame, relative to its first frame, and moves the
	// active and target state to the animation's state.
	Play(a *Actor, anim AnimID, frame int32)
	// Bounds returns the bounding box of the actor's current animation frame, relative to its position.
	// Y grows downwards, so Min().Y() is the top of the box.
	Bounds(a *Actor) cube.BBox
	// LastFrame reports whether the actor is on the last frame of its current animation.
	LastFrame(a *Actor) bool
	// CanTransition reports whether the current animation offers a transition into state.
	CanTransition(a *Actor, to State) bool
}
