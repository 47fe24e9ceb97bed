package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AbsInt32 will return the absolute value of an int32.
func AbsInt32(a int32) int32 {
	if a < 0 {
		a = -a
	}

	return a
}

// RoundInt32 rounds a float32 half away from zero into an int32.
func RoundInt32(v float32) int32 {
	return int32(math32.Round(v))
}

// Rotate2D rotates v around the origin by the given sine and cosine.
func Rotate2D(v mgl32.Vec2, s, c float32) mgl32.Vec2 {
	return mgl32.Vec2{v.X()*c - v.Y()*s, v.X()*s + v.Y()*c}
}

// SphereIntersectsBox checks whether a sphere overlaps the box spanned by min and max.
func SphereIntersectsBox(center mgl32.Vec3, radius float32, min, max mgl32.Vec3) bool {
	x := math32.Max(min.X()-center.X(), math32.Max(0, center.X()-max.X()))
	y := math32.Max(min.Y()-center.Y(), math32.Max(0, center.Y()-max.Y()))
	z := math32.Max(min.Z()-center.Z(), math32.Max(0, center.Z()-max.Z()))

	return x*x+y*y+z*z <= radius*radius
}

// PHPSpaceshipOp returns -1 if x < y, 0 if x == y, or 1 if x > y.
func PHPSpaceshipOp(x, y float32) float32 {
	if x < y {
		return -1
	} else if x == y {
		return 0
	}

	return 1
}
