package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/traverse/actor"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
	"github.com/oomph-ac/traverse/settings"
	"github.com/oomph-ac/traverse/traversal"
	"github.com/oomph-ac/traverse/worker"
	"github.com/oomph-ac/traverse/world"
	"github.com/zeebo/xxh3"
)

// soakInputs are the inputs a soak actor picks from every tick.
var soakInputs = []actor.Input{
	0,
	actor.InputForward,
	actor.InputForward | actor.InputWalk,
	actor.InputForward | actor.InputAction,
	actor.InputAction,
	actor.InputAction | actor.InputJump,
	actor.InputAction | actor.InputCrouch,
	actor.InputAction | actor.InputLeft,
	actor.InputAction | actor.InputRight,
	actor.InputBack,
	actor.InputLeftStep,
	actor.InputRightStep,
}

// walkStep is how far a soak actor walks in a tick it is allowed to walk forward.
const walkStep = 64

func soakCommand(s settings.Settings, log *slog.Logger) error {
	args := CLI.Soak
	if args.Actors <= 0 || args.Ticks <= 0 {
		return errors.New("actors and ticks must be positive")
	}

	w, err := world.Load(args.Level, log)
	if err != nil {
		return err
	}
	defer w.Close()

	if s.Stats.Enabled {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(s.Stats.Addr))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
		log.Info("serving runtime statistics", "addr", s.Stats.Addr)
	}

	tr := newTester(s, w, log)
	digests := make([]uint64, args.Actors)
	start := time.Now()

	var wg sync.WaitGroup
	for i := range args.Actors {
		wg.Add(1)
		worker.Submit(func() {
			defer wg.Done()
			digests[i] = soakActor(tr, w, rand.New(rand.NewPCG(args.Seed, uint64(i))), args.Ticks)
		})
	}
	wg.Wait()

	h := xxh3.New()
	var buf [8]byte
	for _, d := range digests {
		binary.LittleEndian.PutUint64(buf[:], d)
		_, _ = h.Write(buf[:])
	}
	log.Info("soak finished", "actors", args.Actors, "ticks", args.Ticks, "elapsed", time.Since(start))
	fmt.Printf("%016x\n", h.Sum64())
	return nil
}

// soakActor runs a single actor through the world for the amount of ticks passed and returns a digest of
// every outcome it went through. The actor is only ever touched by the calling goroutine.
func soakActor(tr *traversal.Tester, w *world.World, rng *rand.Rand, ticks int) uint64 {
	h := xxh3.New()
	a, ok := spawn(w, rng)
	if !ok {
		return h.Sum64()
	}

	for range ticks {
		a.Pose.YRot += game.Angle(rng.IntN(4096) - 2048)
		a.Control.MoveAngle = a.Pose.YRot

		ctx := traversal.NewContext(a, soakInputs[rng.IntN(len(soakInputs))])
		evaluate(tr, ctx)
		_, _ = h.WriteString(ctx.Trace.String())

		if walk, _ := ctx.Trace.Get("move.walk_forward"); walk == true && ctx.Input.Has(actor.InputForward) {
			a.Pose.Translate(a.Pose.YRot, walkStep)
		}
		ctx.Release()

		settle(w, a)
		advance(a)
		_, _ = fmt.Fprintf(h, "%d,%d,%d,%d;", a.Pose.X, a.Pose.Y, a.Pose.Z, a.Room)
	}
	return h.Sum64()
}

// spawn places a new standing actor in the middle of a random open sector of a random room.
func spawn(w *world.World, rng *rand.Rand) (*actor.Actor, bool) {
	rooms := w.Rooms()
	if len(rooms) == 0 {
		return nil, false
	}
	for range 64 {
		r := rooms[rng.IntN(len(rooms))]
		width, depth := r.Layout().Size()
		x, z := rng.Int32N(width), rng.Int32N(depth)
		s := r.Layout().At(x, z)
		if s.Solid() || s.Flags.Has(probe.Death) {
			continue
		}
		a := &actor.Actor{
			Pose: actor.Pose{
				X:    (r.X+x)*game.SectorSize + game.SectorSize/2,
				Y:    s.Floor,
				Z:    (r.Z+z)*game.SectorSize + game.SectorSize/2,
				YRot: game.Angle(rng.IntN(65536)),
			},
			Room:      r.ID,
			HitPoints: 1000,
		}
		a.Control.MoveAngle = a.Pose.YRot
		return a, true
	}
	return nil, false
}

// settle finishes whatever transition the actor committed to during the tick by standing it back up on
// the floor below it, so the next tick starts from a stable posture.
func settle(w *world.World, a *actor.Actor) {
	if a.Anim.TargetState == a.Anim.ActiveState && a.Anim.ActiveState == actor.StateIdle {
		if res := w.Probe(a.Pose.X, a.Pose.Y, a.Pose.Z, a.Room); res.Floor != game.NoHeight {
			a.Pose.Y, a.Room = res.Floor, res.Room
		}
		return
	}

	res := w.Probe(a.Pose.X, a.Pose.Y-game.ActorHeight, a.Pose.Z, a.Room)
	if res.Floor != game.NoHeight {
		a.Pose.Y, a.Room = res.Floor, res.Room
	}
	a.Anim = actor.Animation{Number: actor.AnimStandIdle}
	a.Control.HandStatus = actor.HandsFree
	a.ProjectedFloorHeight = 0
}
