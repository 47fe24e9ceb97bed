package collision

import "github.com/oomph-ac/traverse/game"

const sectorMask = game.SectorSize - 1

// GridShift returns the offset that moves src back across the sector boundary that separates it from
// dst. It returns zero when both coordinates share a sector.
func GridShift(src, dst int32) int32 {
	if src>>10 == dst>>10 {
		return 0
	}
	if dst>>10 <= src>>10 {
		return -1 - (src & sectorMask)
	}
	return game.SectorSize + 1 - (src & sectorMask)
}
