package actor

import "github.com/oomph-ac/traverse/game"

// Snapshot is a saved pose and move angle of an actor. A speculative test takes one on entry and
// defers Restore, so that every exit path puts the actor back unless Commit was called.
//
//	snap := a.Begin()
//	defer snap.Restore()
type Snapshot struct {
	a         *Actor
	pose      Pose
	moveAngle game.Angle
	done      bool
}

// Begin saves the actor's pose and move angle.
func (a *Actor) Begin() Snapshot {
	return Snapshot{a: a, pose: a.Pose, moveAngle: a.Control.MoveAngle}
}

// Pose returns the saved pose.
func (s *Snapshot) Pose() Pose {
	return s.pose
}

// Restore puts the saved pose and move angle back onto the actor. It does nothing after Commit or a
// previous Restore.
func (s *Snapshot) Restore() {
	if s.done {
		return
	}
	s.a.Pose = s.pose
	s.a.Control.MoveAngle = s.moveAngle
	s.done = true
}

// Commit keeps the current state of the actor.
func (s *Snapshot) Commit() {
	s.done = true
}
