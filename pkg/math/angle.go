package math

import "math"

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// FromPolar builds a cartesian vector from a radius and an angle in degrees.
func FromPolar(r, thetaDeg float64) Vec2 {
	rad := DegToRad(thetaDeg)
	return Vec2{
		X: float32(r * math.Cos(rad)),
		Y: float32(r * math.Sin(rad)),
	}
}
