package traversal

import (
	"log/slog"

	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/collision"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
)

// Options are the optional features of a Tester.
type Options struct {
	// CrawlExtended enables the crouch vault variants and crouching water exits.
	CrawlExtended bool
	// MonkeyAutoJump enables jumping up to a monkey swing ceiling from a standstill.
	MonkeyAutoJump bool

	// Debugf is called with a detailed trace of the decisions made by the testers, if set.
	Debugf func(format string, args ...any)
}

// Tester answers traversal feasibility questions for actors in a world. It holds no per-actor state,
// so one Tester may serve any number of actors as long as each actor is only tested by one goroutine
// at a time.
type Tester struct {
	World probe.Geometry
	// Env classifies rooms. It is nil when the world has no room flags.
	Env  probe.Environment
	Anim actor.Animator

	Options Options
	Log     *slog.Logger
}

// New creates a Tester on top of the geometry and animator passed. If world also implements
// probe.Environment it is used for room flags.
func New(world probe.Geometry, anim actor.Animator, opts Options) *Tester {
	t := &Tester{
		World:   world,
		Anim:    anim,
		Options: opts,
		Log:     slog.New(slog.DiscardHandler),
	}
	if env, ok := world.(probe.Environment); ok {
		t.Env = env
	}
	return t
}

// Collide runs a collision pass for the context's actor with its current setup.
func (t *Tester) Collide(ctx *Context) {
	collision.Gather(t.World, ctx.Actor, ctx.Coll)
}

// UpdateEnvironment derives the ladder and monkey swing flags of the actor from the sector it is in.
// It runs once at the start of a tick, before any tester reads those flags.
func (t *Tester) UpdateEnvironment(ctx *Context) {
	a := ctx.Actor
	mid := collision.Middle(t.World, a)

	a.Control.CanClimbLadder = mid.Floor != game.NoHeight && mid.Flags.Has(probe.Climb(a.Pose.YRot.Quadrant()))
	a.Control.CanMonkeySwing = mid.Ceiling != game.NoHeight && mid.Flags.Has(probe.MonkeySwing)
}

func (t *Tester) swamp(a *actor.Actor) bool {
	return t.Env != nil && t.Env.RoomFlags(a.Room).Has(probe.Swamp)
}

// deepSwamp reports whether the actor is standing in a swamp deep enough to stop climbing actions.
func (t *Tester) deepSwamp(a *actor.Actor) bool {
	return t.swamp(a) && a.WaterSurfaceDist < -game.Click(3)
}

func (t *Tester) los(start, end probe.Point) bool {
	return t.World.LineOfSight(start, end)
}

// bounds returns the top and bottom of the actor's current animation bounds, relative to its feet.
func (t *Tester) bounds(a *actor.Actor) (top, bottom int32) {
	b := t.Anim.Bounds(a)
	return int32(b.Min().Y()), int32(b.Max().Y())
}

// updateRoom re-resolves the actor's room from a point yOffset below its feet.
func (t *Tester) updateRoom(a *actor.Actor, yOffset int32) {
	r := t.World.Probe(a.Pose.X, a.Pose.Y+yOffset, a.Pose.Z, a.Room)
	if r.Floor != game.NoHeight {
		a.Room = r.Room
	}
}

func (t *Tester) debugf(format string, args ...any) {
	if t.Options.Debugf != nil {
		t.Options.Debugf(format, args...)
	}
}
