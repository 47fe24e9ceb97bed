package world

import (
	"bytes"
	"encoding/binary"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/oomph-ac/traverse/assert"
	"github.com/oomph-ac/traverse/internal"
	"github.com/zeebo/xxh3"
)

var (
	layoutCache = make(map[uint64]*Layout)
	cMu         sync.Mutex
)

// Layout is an immutable grid of sectors. Rooms with identical geometry share a single Layout.
type Layout struct {
	subs atomic.Int64

	width, depth int32
	sectors      []Sector
	hash         uint64
}

// CacheLayout returns the shared layout holding the sectors passed, row by row from the south west
// corner, creating it if no identical layout is cached. The caller is subscribed to the returned layout
// and must call Unsubscribe once it no longer uses it.
func CacheLayout(width, depth int32, sectors []Sector) *Layout {
	assert.IsTrue(width > 0 && depth > 0, "layout must have a positive size, got %dx%d", width, depth)
	assert.IsTrue(int(width)*int(depth) == len(sectors), "layout of %dx%d has %d sectors", width, depth, len(sectors))

	hash := hashLayout(width, depth, sectors)

	cMu.Lock()
	defer cMu.Unlock()

	l, found := layoutCache[hash]
	if found && (l.width != width || l.depth != depth || !slices.Equal(l.sectors, sectors)) {
		// Hash collision, the layout is kept out of the cache.
		l = &Layout{width: width, depth: depth, sectors: slices.Clone(sectors), hash: hash}
	} else if !found {
		l = &Layout{width: width, depth: depth, sectors: slices.Clone(sectors), hash: hash}
		layoutCache[hash] = l
	}
	l.Subscribe()
	return l
}

// PurgeLayouts removes all layouts without subscribers from the cache and returns how many were removed.
func PurgeLayouts() int {
	cMu.Lock()
	defer cMu.Unlock()

	n := 0
	for hash, l := range layoutCache {
		if l.subs.Load() <= 0 {
			delete(layoutCache, hash)
			n++
		}
	}
	return n
}

func (l *Layout) Subscribe() {
	l.subs.Add(1)
}

func (l *Layout) Unsubscribe() {
	l.subs.Add(-1)
}

// Size returns the width and depth of the layout in sectors.
func (l *Layout) Size() (width, depth int32) {
	return l.width, l.depth
}

// Hash returns the xxh3 hash of the layout's geometry.
func (l *Layout) Hash() uint64 {
	return l.hash
}

// At returns the sector at the local position passed. Positions outside the layout are walls.
func (l *Layout) At(x, z int32) Sector {
	if x < 0 || z < 0 || x >= l.width || z >= l.depth {
		return Wall
	}
	return l.sectors[z*l.width+x]
}

func hashLayout(width, depth int32, sectors []Sector) uint64 {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		internal.BufferPool.Put(buf)
	}()

	var scratch [4]byte
	put := func(v uint32) {
		binary.LittleEndian.PutUint32(scratch[:], v)
		buf.Write(scratch[:])
	}

	put(uint32(width))
	put(uint32(depth))
	for _, s := range sectors {
		put(uint32(s.Floor))
		put(uint32(s.Ceiling))

		var slope uint32
		if s.FloorSlope {
			slope |= 1
		}
		if s.CeilingSlope {
			slope |= 2
		}
		put(slope<<16 | uint32(s.Flags))
	}
	return xxh3.Hash(buf.Bytes())
}
