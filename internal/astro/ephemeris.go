package astro

import (
	"math"

	"vedic-chart/internal/model"
)

// Mean elements are linear in T (degrees, degrees per Julian century).
// Sun and Moon add only the first harmonic of the equation of centre; there
// are no perturbation, nutation, aberration, light-time or parallax terms.
// Expect errors of a degree or so for the Moon and up to a few degrees for
// the outer planets.
const (
	sunL0 = 280.46646
	sunL1 = 36000.76983
	sunM0 = 357.52911
	sunM1 = 35999.05029
	sunC  = 1.914602

	moonL0 = 218.3164477
	moonL1 = 481267.88123421
	moonM0 = 134.9633964
	moonM1 = 477198.8675055
	moonC  = 6.289

	nodeL0 = 125.04452
	nodeL1 = -1934.136261
)

// orbit is a circular heliocentric orbit: mean longitude L0 + L1*T at radius A (AU).
type orbit struct {
	L0, L1, A float64
}

var planetOrbits = map[model.Body]orbit{
	model.Mercury: {252.250906, 149472.6746358, 0.387098},
	model.Venus:   {181.979801, 58517.8156760, 0.723330},
	model.Mars:    {355.433275, 19140.2993313, 1.523679},
	model.Jupiter: {34.351484, 3034.9056746, 5.202603},
	model.Saturn:  {50.077471, 1222.1137943, 9.554909},
}

// SunLongitude is the tropical longitude of the Sun.
func SunLongitude(T float64) model.Angle {
	m := model.Radians(sunM0 + sunM1*T)
	return model.Normalize(sunL0 + sunL1*T + sunC*math.Sin(m))
}

// MoonLongitude is the tropical longitude of the Moon.
func MoonLongitude(T float64) model.Angle {
	m := model.Radians(moonM0 + moonM1*T)
	return model.Normalize(moonL0 + moonL1*T + moonC*math.Sin(m))
}

// RahuLongitude is the tropical longitude of the mean ascending node.
func RahuLongitude(T float64) model.Angle {
	return model.Normalize(nodeL0 + nodeL1*T)
}

// KetuLongitude is always opposite Rahu.
func KetuLongitude(T float64) model.Angle {
	return model.Normalize(float64(RahuLongitude(T)) + 180)
}

// planetLongitude projects a planet's mean heliocentric position onto the
// geocentric ecliptic, taking the Earth opposite the Sun on the same circular model.
func planetLongitude(o orbit, T float64) model.Angle {
	l := model.Radians(o.L0 + o.L1*T)
	e := model.Radians(float64(SunLongitude(T)) + 180)
	x := o.A*math.Cos(l) - math.Cos(e)
	y := o.A*math.Sin(l) - math.Sin(e)
	return model.Normalize(model.DegreesOf(math.Atan2(y, x)))
}

// TropicalLongitude returns the geocentric tropical longitude of b at T.
func TropicalLongitude(b model.Body, T float64) model.Angle {
	switch b {
	case model.Sun:
		return SunLongitude(T)
	case model.Moon:
		return MoonLongitude(T)
	case model.Rahu:
		return RahuLongitude(T)
	case model.Ketu:
		return KetuLongitude(T)
	}
	o, ok := planetOrbits[b]
	if !ok {
		return 0
	}
	return planetLongitude(o, T)
}

// TropicalLongitudes evaluates every body at T.
func TropicalLongitudes(T float64) map[model.Body]model.Angle {
	out := make(map[model.Body]model.Angle, len(model.Bodies))
	for _, b := range model.Bodies {
		out[b] = TropicalLongitude(b, T)
	}
	return out
}

// LongitudeRate returns the apparent motion of b in degrees per day,
// sampled forward by stepDays.
func LongitudeRate(b model.Body, T, stepDays float64) float64 {
	if stepDays <= 0 {
		stepDays = 1
	}
	a := TropicalLongitude(b, T)
	z := TropicalLongitude(b, T+stepDays/DaysPerCentury)
	return model.SignedDelta(float64(a), float64(z)) / stepDays
}

// IsRetrograde reports apparent backward motion. The mean nodes always regress.
func IsRetrograde(b model.Body, T, stepDays float64) bool {
	if b.IsNode() {
		return true
	}
	if b == model.Sun || b == model.Moon {
		return false
	}
	return LongitudeRate(b, T, stepDays) < 0
}
