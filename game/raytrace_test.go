package game

import (
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestSectorsBetweenStraight(t *testing.T) {
	cells := slices.Collect(SectorsBetween(mgl32.Vec2{512, 512}, mgl32.Vec2{2560, 512}, SectorSize))
	require.Len(t, cells, 3)
	require.Equal(t, int32(0), cells[0].X)
	require.Equal(t, int32(2), cells[2].X)
	require.InDelta(t, 0.25, cells[0].Exit, 1e-5)
	require.InDelta(t, 0.25, cells[1].Enter, 1e-5)
	require.Equal(t, float32(1), cells[2].Exit)
}

func TestSectorsBetweenSameCell(t *testing.T) {
	cells := slices.Collect(SectorsBetween(mgl32.Vec2{100, 100}, mgl32.Vec2{900, 900}, SectorSize))
	require.Equal(t, []Crossing{{X: 0, Z: 0, Enter: 0, Exit: 1}}, cells)
}

func TestSectorsBetweenNegative(t *testing.T) {
	cells := slices.Collect(SectorsBetween(mgl32.Vec2{100, 100}, mgl32.Vec2{100, -1500}, SectorSize))
	require.Len(t, cells, 3)
	require.Equal(t, []int32{0, -1, -2}, []int32{cells[0].Z, cells[1].Z, cells[2].Z})
}
