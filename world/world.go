package world

import (
	"log/slog"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
	"github.com/sasha-s/go-deadlock"
)

const (
	// ledgeDiscontinuity is the smallest floor change between two sectors that reads as an edge.
	ledgeDiscontinuity = game.StepSize / 4
)

// World is a reference sector world made of rooms. It implements probe.Geometry along with all of the
// optional probe interfaces, and is safe for concurrent use.
type World struct {
	rooms *orderedmap.OrderedMap[int16, *Room]
	log   *slog.Logger

	deadlock.RWMutex
}

// New creates an empty world. A nil logger discards all output.
func New(log *slog.Logger) *World {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &World{
		rooms: orderedmap.NewOrderedMap[int16, *Room](),
		log:   log,
	}
}

// AddRoom adds a room to the world, replacing any room with the same ID.
func (w *World) AddRoom(r *Room) {
	w.Lock()
	defer w.Unlock()

	if old, ok := w.rooms.Get(r.ID); ok {
		old.layout.Unsubscribe()
		w.log.Debug("replaced room", "room", r.ID)
	}
	w.rooms.Set(r.ID, r)

	width, depth := r.layout.Size()
	w.log.Debug("added room", "room", r.ID, "x", r.X, "z", r.Z, "width", width, "depth", depth, "layout", r.layout.Hash())
}

// RemoveRoom removes the room with the ID passed, returning false if there was no such room.
func (w *World) RemoveRoom(id int16) bool {
	w.Lock()
	defer w.Unlock()

	r, ok := w.rooms.Get(id)
	if !ok {
		return false
	}
	r.layout.Unsubscribe()
	w.rooms.Delete(id)
	w.log.Debug("removed room", "room", id)
	return true
}

// Room returns the room with the ID passed.
func (w *World) Room(id int16) (*Room, bool) {
	w.RLock()
	defer w.RUnlock()
	return w.rooms.Get(id)
}

// Rooms returns all rooms of the world in the order they were added.
func (w *World) Rooms() []*Room {
	w.RLock()
	defer w.RUnlock()

	rooms := make([]*Room, 0, w.rooms.Len())
	for el := w.rooms.Front(); el != nil; el = el.Next() {
		rooms = append(rooms, el.Value)
	}
	return rooms
}

// Close removes all rooms from the world and drops their layouts from the cache if nothing else uses them.
func (w *World) Close() {
	w.Lock()
	for el := w.rooms.Front(); el != nil; el = el.Next() {
		el.Value.layout.Unsubscribe()
	}
	w.rooms = orderedmap.NewOrderedMap[int16, *Room]()
	w.Unlock()

	if n := PurgeLayouts(); n > 0 {
		w.log.Debug("purged layouts", "count", n)
	}
}

// Probe returns the floor and ceiling of the sector at (x, z), in the room that contains height y.
func (w *World) Probe(x, y, z int32, room int16) probe.Result {
	w.RLock()
	defer w.RUnlock()

	s, id, ok := w.locate(x>>10, z>>10, y, room)
	if !ok {
		return probe.Result{Floor: game.NoHeight, Ceiling: game.NoHeight, Room: room}
	}
	return s.result(id)
}

// LineOfSight walks the sectors crossed by the segment and reports whether the segment stays in the open
// space of every one of them.
func (w *World) LineOfSight(start, end probe.Point) bool {
	w.RLock()
	defer w.RUnlock()

	dy := float32(end.Y - start.Y)
	room := start.Room
	from, to := mgl32.Vec2{float32(start.X), float32(start.Z)}, mgl32.Vec2{float32(end.X), float32(end.Z)}

	for c := range game.SectorsBetween(from, to, game.SectorSize) {
		for _, t := range [2]float32{c.Enter, c.Exit} {
			y := start.Y + int32(dy*t)
			s, id, ok := w.locate(c.X, c.Z, y, room)
			if !ok || !s.contains(y) {
				return false
			}
			room = id
		}
	}
	return true
}

func (w *World) RoomFlags(room int16) probe.RoomFlags {
	w.RLock()
	defer w.RUnlock()

	if r, ok := w.rooms.Get(room); ok {
		return r.Flags
	}
	return 0
}

// NearestLedge finds the closest sector edge in the quadrant forward points to, for a column of the given
// radius and height standing at pos. Three parallel lines are followed, through the centre and both sides
// of the column, and the first edge within reach on any of them is returned. An edge is a wall or a floor
// change of more than a quarter click.
func (w *World) NearestLedge(pos probe.Point, forward game.Angle, radius, height int32) (probe.Ledge, bool) {
	w.RLock()
	defer w.RUnlock()

	q := forward.Quadrant()
	dx, dz := q.Vec()
	yTop := pos.Y - height
	reach := radius*2 + game.StepSize

	// Distance from pos to the first sector boundary ahead.
	first := int32(0)
	switch {
	case dx > 0:
		first = (pos.X>>10+1)<<10 - pos.X
	case dx < 0:
		first = pos.X - pos.X>>10<<10
	case dz > 0:
		first = (pos.Z>>10+1)<<10 - pos.Z
	default:
		first = pos.Z - pos.Z>>10<<10
	}

	best := probe.Ledge{Angle: q.Angle(), Distance: float32(game.Sector(1))}
	found := false
	for _, side := range [3]int32{-radius, 0, radius} {
		ox, oz := pos.X+dz*side, pos.Z-dx*side
		near, room, ok := w.locate(ox>>10, oz>>10, yTop, pos.Room)
		if !ok || near.Solid() {
			continue
		}
		sx, sz := ox>>10, oz>>10
		for d := first; d <= reach; d += game.SectorSize {
			sx, sz = sx+dx, sz+dz
			far, id, ok := w.locate(sx, sz, yTop, room)
			if ok && !far.Solid() && game.AbsInt32(far.Floor-near.Floor) <= ledgeDiscontinuity {
				near, room = far, id
				continue
			}
			if dist := float32(d - radius); dist < best.Distance {
				best.Distance, found = dist, true
			}
			break
		}
	}
	return best, found
}

// StaticBoxes returns the static obstacles of all rooms that intersect around.
func (w *World) StaticBoxes(around cube.BBox) []cube.BBox {
	w.RLock()
	defer w.RUnlock()

	var boxes []cube.BBox
	for el := w.rooms.Front(); el != nil; el = el.Next() {
		boxes = overlapping(el.Value.Statics, around, boxes)
	}
	return boxes
}

// Poles returns the poles of all rooms that intersect around.
func (w *World) Poles(around cube.BBox) []cube.BBox {
	w.RLock()
	defer w.RUnlock()

	var boxes []cube.BBox
	for el := w.rooms.Front(); el != nil; el = el.Next() {
		boxes = overlapping(el.Value.Poles, around, boxes)
	}
	return boxes
}

// locate resolves the sector at world sector position (sx, sz) for a point at height y. Rooms may overlap
// horizontally, in which case the room whose open space contains y wins. Otherwise the hint room is used
// if it covers the position, then the room with the nearest floor below y, then the first room added.
// The caller must hold the read lock.
func (w *World) locate(sx, sz, y int32, hint int16) (Sector, int16, bool) {
	var (
		fallback *Room
		sector   Sector
	)
	below := func(s Sector) bool {
		return !s.Solid() && s.Floor >= y
	}

	for el := w.rooms.Front(); el != nil; el = el.Next() {
		r := el.Value
		if !r.covers(sx, sz) {
			continue
		}
		s := r.sector(sx, sz)
		if s.contains(y) {
			return s, r.ID, true
		}

		switch {
		case fallback == nil:
		case fallback.ID == hint:
			continue
		case r.ID == hint:
		case below(s) && (!below(sector) || s.Floor < sector.Floor):
		default:
			continue
		}
		fallback, sector = r, s
	}
	if fallback == nil {
		return Sector{}, 0, false
	}
	return sector, fallback.ID, true
}
