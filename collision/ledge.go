package collision

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/probe"
)

const (
	// ledgeStep is the distance between two samples of the ledge search.
	ledgeStep = 16
	// ledgeDiscontinuity is the smallest floor change the ledge search treats as an edge.
	ledgeDiscontinuity = game.StepSize / 4
)

// NearestLedge locates the closest edge in front of a column of the given radius and height standing at
// pos. Geometry implementing probe.LedgeFinder answers directly, any other geometry is searched by
// marching three parallel rays along forward. When nothing is found the forward angle is returned with a
// distance of one sector.
func NearestLedge(g probe.Geometry, pos probe.Point, forward game.Angle, radius, height int32) (probe.Ledge, bool) {
	if f, ok := g.(probe.LedgeFinder); ok {
		if l, ok := f.NearestLedge(pos, forward, radius, height); ok {
			return l, true
		}
		return probe.Ledge{Angle: forward, Distance: float32(game.Sector(1))}, false
	}
	return marchLedge(g, pos, forward, radius, height)
}

func marchLedge(g probe.Geometry, pos probe.Point, forward game.Angle, radius, height int32) (probe.Ledge, bool) {
	best := probe.Ledge{Angle: forward, Distance: float32(game.Sector(1))}
	found := false

	s, c := game.Sin(forward), game.Cos(forward)
	r := float32(radius)
	reach := radius*2 + game.StepSize
	yTop := pos.Y - height

	for _, side := range [3]float32{-r, 0, r} {
		ox, oz := float32(pos.X)-c*side, float32(pos.Z)+s*side

		px, pz := int32(ox), int32(oz)
		prev := g.Probe(px, yTop, pz, pos.Room).Floor
		if prev == game.NoHeight {
			continue
		}
		for d := int32(ledgeStep); d <= reach; d += ledgeStep {
			x, z := int32(ox+s*float32(d)), int32(oz+c*float32(d))
			floor := g.Probe(x, yTop, z, pos.Room).Floor
			if floor != game.NoHeight && game.AbsInt32(floor-prev) <= ledgeDiscontinuity {
				prev, px, pz = floor, x, z
				continue
			}
			if l, ok := crossedEdge(pos, px, pz, x, z, s, c, r); ok && l.Distance < best.Distance {
				best, found = l, true
			}
			break
		}
	}
	return best, found
}

// crossedEdge returns the sector edge crossed when moving from (px, pz) to (x, z), as seen from pos.
func crossedEdge(pos probe.Point, px, pz, x, z int32, s, c, r float32) (probe.Ledge, bool) {
	cx, cz := px>>10, pz>>10
	nx, nz := x>>10, z>>10
	alongX := nx != cx && (nz == cz || math32.Abs(s) >= math32.Abs(c))
	alongZ := nz != cz && !alongX

	switch {
	case alongZ && nz > cz:
		return probe.Ledge{Angle: game.North.Angle(), Distance: float32(nz<<10-pos.Z) - r}, true
	case alongZ:
		return probe.Ledge{Angle: game.South.Angle(), Distance: float32(pos.Z-cz<<10) - r}, true
	case alongX && nx > cx:
		return probe.Ledge{Angle: game.East.Angle(), Distance: float32(nx<<10-pos.X) - r}, true
	case alongX:
		return probe.Ledge{Angle: game.West.Angle(), Distance: float32(pos.X-cx<<10) - r}, true
	}
	return probe.Ledge{}, false
}
