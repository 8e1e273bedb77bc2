package antenna

import (
	"fmt"
	"math"
)

// Broadside is the default elevation, pointing into the array's equatorial plane.
const Broadside = math.Pi / 2

// Direction is a far-field look direction in radians.
type Direction struct {
	Azimuth   float64 `json:"azimuth"`
	Elevation float64 `json:"elevation"`
}

// NewDirection returns the direction at azimuth az on the broadside plane.
func NewDirection(az float64) Direction {
	return Direction{Azimuth: az, Elevation: Broadside}
}

// Canonical returns d with its azimuth wrapped into (-pi, pi].
func (d Direction) Canonical() Direction {
	d.Azimuth = WrapPi(d.Azimuth)
	return d
}

func (d Direction) String() string {
	return fmt.Sprintf("(az=%.4f, el=%.4f)", d.Azimuth, d.Elevation)
}

// WrapPi wraps the input angle to (-pi, pi]
func WrapPi(radian float64) float64 {
	if radian > -math.Pi && radian <= math.Pi {
		return radian
	}
	rem := math.Mod(radian+math.Pi, 2*math.Pi)
	if rem <= 0 {
		rem += 2 * math.Pi
	}
	return rem - math.Pi
}

// Radian converts degree to radian
func Radian(degree float64) float64 {
	return degree * math.Pi / 180.0
}

// Degree converts radian to degree
func Degree(radian float64) float64 {
	return radian * 180.0 / math.Pi
}
