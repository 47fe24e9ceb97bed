package game

import (
	"iter"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Crossing is the part of a segment that lies inside one grid cell. Enter and Exit are the segment
// parameters, in [0, 1], at which the segment enters and leaves the cell.
type Crossing struct {
	X, Z        int32
	Enter, Exit float32
}

// SectorsBetween walks the grid cells of the given size crossed by the horizontal segment from start
// to end, in order.
// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L67
func SectorsBetween(start, end mgl32.Vec2, size float32) iter.Seq[Crossing] {
	return func(yield func(Crossing) bool) {
		delta := end.Sub(start)
		cx, cz := cellOf(start.X(), size), cellOf(start.Y(), size)
		ex, ez := cellOf(end.X(), size), cellOf(end.Y(), size)

		stepX := int32(PHPSpaceshipOp(delta.X(), 0))
		stepZ := int32(PHPSpaceshipOp(delta.Y(), 0))

		tMaxX := distanceToBoundary(start.X(), delta.X(), size, cx)
		tMaxZ := distanceToBoundary(start.Y(), delta.Y(), size, cz)

		tDeltaX := float32(math32.MaxFloat32)
		if delta.X() != 0 {
			tDeltaX = size / math32.Abs(delta.X())
		}
		tDeltaZ := float32(math32.MaxFloat32)
		if delta.Y() != 0 {
			tDeltaZ = size / math32.Abs(delta.Y())
		}

		t := float32(0)
		for n := AbsInt32(ex-cx) + AbsInt32(ez-cz); n >= 0; n-- {
			next := math32.Min(math32.Min(tMaxX, tMaxZ), 1)
			if n == 0 {
				next = 1
			}
			if !yield(Crossing{X: cx, Z: cz, Enter: t, Exit: next}) || n == 0 {
				return
			}

			if tMaxX < tMaxZ {
				cx += stepX
				t = tMaxX
				tMaxX += tDeltaX
			} else {
				cz += stepZ
				t = tMaxZ
				tMaxZ += tDeltaZ
			}
		}
	}
}

func cellOf(v, size float32) int32 {
	return int32(math32.Floor(v / size))
}

// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L134
func distanceToBoundary(s, ds, size float32, cell int32) float32 {
	if ds > 0 {
		return ((float32(cell)+1)*size - s) / ds
	} else if ds < 0 {
		return (float32(cell)*size - s) / ds
	}

	return math32.MaxFloat32
}
