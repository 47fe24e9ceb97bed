package game

import "github.com/chewxy/math32"

const (
	// StepSize is the base distance unit of the world, one "click".
	StepSize = 256
	// SectorSize is the horizontal size of one grid sector (four clicks).
	SectorSize = 1024
	// StepUpHeight is the tallest step an actor may walk up or down.
	StepUpHeight = StepSize * 3 / 2
	// BadJumpCeiling is the lowest ceiling clearance a standing jump tolerates.
	BadJumpCeiling = StepSize * 3 / 4
)

const (
	// NoHeight is returned by probes that found no floor or ceiling (inside a wall or the void).
	NoHeight int32 = -0x7F00
	// NoLowerBound disables the lower floor bound of a movement test.
	NoLowerBound = -NoHeight
	// MaxHeight is the most negative height a clamp may span, -MaxHeight is an unbounded clamp.
	MaxHeight int32 = -0x7FFF
)

// Click returns n clicks in world units, truncated toward zero.
func Click(n float32) int32 {
	return int32(n * StepSize)
}

// Sector returns n sectors in world units, truncated toward zero.
func Sector(n float32) int32 {
	return int32(n * SectorSize)
}

// OffsetRadius returns the probe distance used for a collision column of the given radius.
func OffsetRadius(r int32) int32 {
	return int32(math32.Round(float32(r)*math32.Sqrt2 + 4))
}
