package game

import "github.com/chewxy/math32"

// Angle is a rotation quantized to 65536 steps per full turn. Arithmetic on it wraps around,
// which quadrant and climb flag lookups rely on.
type Angle int16

// Quadrant is one of the four cardinal directions of the sector grid.
type Quadrant uint8

const (
	North Quadrant = iota
	East
	South
	West
)

var sinTable [65536]float32

func init() {
	for i := range sinTable {
		sinTable[i] = math32.Sin(float32(i) * math32.Pi * 2 / 65536)
	}
}

// Degrees converts degrees to an Angle. Values outside of the 16 bit range wrap, so Degrees(180) is
// the same angle as Degrees(-180).
func Degrees(deg float32) Angle {
	return Angle(int32(deg * 65536 / 360))
}

// Degrees returns the angle in degrees in the range [-180, 180).
func (a Angle) Degrees() float32 {
	return float32(a) * 360 / 65536
}

// Abs returns the magnitude of the angle. Unlike the Angle type itself, it can represent a half
// turn, which is returned as 32768.
func (a Angle) Abs() int32 {
	v := int32(a)
	if v < 0 {
		return -v
	}
	return v
}

// Quadrant returns the cardinal direction the angle is closest to.
func (a Angle) Quadrant() Quadrant {
	return Quadrant(uint16(a+Degrees(45)) / uint16(Degrees(90)))
}

// Angle returns the facing angle of the quadrant.
func (q Quadrant) Angle() Angle {
	return Angle(int32(q) * 16384)
}

// Vec returns the unit grid step towards the quadrant.
func (q Quadrant) Vec() (dx, dz int32) {
	switch q {
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	return 0, 1
}

func (q Quadrant) String() string {
	switch q {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// Sin returns the sine of the angle.
func Sin(a Angle) float32 {
	return sinTable[uint16(a)]
}

// Cos returns the cosine of the angle.
func Cos(a Angle) float32 {
	return sinTable[uint16(a)+16384]
}
