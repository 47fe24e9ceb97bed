package traversal

import (
	"sync"

	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/collision"
)

// Context is the per-tick state a tester works on: the actor, its collision pass and the input held.
type Context struct {
	Actor *actor.Actor
	Coll  *collision.Info
	Input actor.Input

	// Trace records the outcome of each test run during the tick, in order.
	Trace *Trace
}

var contextPool = sync.Pool{
	New: func() any {
		return &Context{Coll: collision.NewInfo(), Trace: NewTrace()}
	},
}

// NewContext returns a context for one tick of the actor. The collision setup is reset to the standing
// default, facing the actor's heading, with the actor's current pose as its old position. Release should
// be called once the tick is done.
func NewContext(a *actor.Actor, in actor.Input) *Context {
	ctx := contextPool.Get().(*Context)
	ctx.Actor, ctx.Input = a, in

	*ctx.Coll = collision.Info{Setup: collision.DefaultSetup()}
	ctx.Coll.Setup.ForwardAngle = a.Pose.YRot
	ctx.Coll.Setup.OldPosition = a.Pose
	ctx.Trace.Reset()
	return ctx
}

// Release returns the context to the pool. It must not be used afterwards.
func (c *Context) Release() {
	c.Actor = nil
	contextPool.Put(c)
}
