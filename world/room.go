package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/traverse/probe"
)

// Room is an axis aligned grid of sectors placed in the world.
type Room struct {
	ID int16
	// X and Z are the position of the south west corner of the room, in sectors.
	X, Z  int32
	Flags probe.RoomFlags

	// Statics are solid obstacles standing on top of the sector geometry.
	Statics []cube.BBox
	// Poles are the boxes of climbable poles in the room.
	Poles []cube.BBox

	layout *Layout
}

// NewRoom creates a room of width by depth sectors at the sector position (x, z). sectors are listed row
// by row, starting at the south west corner.
func NewRoom(id int16, x, z, width, depth int32, sectors []Sector) *Room {
	return &Room{ID: id, X: x, Z: z, layout: CacheLayout(width, depth, sectors)}
}

// Layout returns the sector layout of the room.
func (r *Room) Layout() *Layout {
	return r.layout
}

// covers reports whether the sector at world sector position (sx, sz) is part of the room.
func (r *Room) covers(sx, sz int32) bool {
	w, d := r.layout.Size()
	return sx >= r.X && sz >= r.Z && sx < r.X+w && sz < r.Z+d
}

// sector returns the sector at world sector position (sx, sz).
func (r *Room) sector(sx, sz int32) Sector {
	return r.layout.At(sx-r.X, sz-r.Z)
}

func overlapping(boxes []cube.BBox, around cube.BBox, dst []cube.BBox) []cube.BBox {
	for _, b := range boxes {
		if b.IntersectsWith(around) {
			dst = append(dst, b)
		}
	}
	return dst
}
