package model

import "math"

// Angle is an ecliptic longitude in degrees, always kept in [0, 360).
type Angle float64

// Normalize wraps any finite degree value into [0, 360).
// Normalize(Normalize(x)) == Normalize(x) for every x.
func Normalize(x float64) Angle {
	r := math.Mod(x, 360)
	if r < 0 {
		r += 360
	}
	// -1e-14 + 360 rounds to 360; also folds -0 to +0.
	if r >= 360 || r == 0 {
		return 0
	}
	return Angle(r)
}

// SignOf returns the Rashi (1..12) containing the longitude.
func SignOf(a Angle) int {
	s := int(float64(Normalize(float64(a)))/30) + 1
	if s > 12 {
		s = 12
	}
	return s
}

// DegreeInSign returns the offset of the longitude within its sign, in [0, 30).
func DegreeInSign(a Angle) float64 {
	n := float64(Normalize(float64(a)))
	return n - 30*float64(SignOf(Angle(n))-1)
}

// SignedDelta returns b-a wrapped into (-180, 180].
func SignedDelta(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// DegreesOf converts radians to degrees.
func DegreesOf(rad float64) float64 { return rad * 180 / math.Pi }
