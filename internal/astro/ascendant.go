package astro

import (
	"fmt"
	"math"

	"vedic-chart/internal/model"
)

// Obliquity of the ecliptic, held fixed at its J2000 value.
const Obliquity = 23.4392911

// PolarLatitudeLimit is the largest |latitude| the ascendant is computed for.
// Closer to a pole every sidereal time maps onto nearly the same angle.
const PolarLatitudeLimit = 89.9

// horizonTolerance bounds hypot(x, y) of the ascendant formula relative to
// its largest term. Below it the ecliptic lies in the horizon and the
// rising point can swing by 180° within a fraction of an arcsecond of RAMC.
const horizonTolerance = 1e-6

// GreenwichSiderealTime returns GMST in degrees for a UT Julian Day.
func GreenwichSiderealTime(jd float64) model.Angle {
	T := Centuries(jd)
	d := jd - J2000
	return model.Normalize(280.46061837 + 360.98564736629*d + 0.000387933*T*T - T*T*T/38710000)
}

// LocalSiderealTime adds the east longitude of the site to GMST.
func LocalSiderealTime(jd, longitude float64) model.Angle {
	return model.Normalize(float64(GreenwichSiderealTime(jd)) + longitude)
}

// TropicalAscendant returns the tropical ecliptic longitude rising in the east.
// Near the poles the formula degenerates and a *model.ComputationError is returned.
func TropicalAscendant(jd, latitude, longitude float64) (model.Angle, error) {
	return ascendantFromRAMC(float64(LocalSiderealTime(jd, longitude)), latitude)
}

func ascendantFromRAMC(ramc, latitude float64) (model.Angle, error) {
	if math.Abs(latitude) >= PolarLatitudeLimit {
		return 0, &model.ComputationError{
			Op:     "ascendant",
			Reason: fmt.Sprintf("latitude %.6f is within %.1f° of a pole", latitude, 90-PolarLatitudeLimit),
		}
	}
	phi := model.Radians(latitude)
	theta := model.Radians(ramc)
	eps := model.Radians(Obliquity)

	tilt := math.Tan(phi) * math.Sin(eps)
	y := math.Cos(theta)
	x := -(math.Sin(theta)*math.Cos(eps) + tilt)
	if math.Hypot(x, y)/math.Max(1, math.Abs(tilt)) < horizonTolerance {
		return 0, &model.ComputationError{
			Op:     "ascendant",
			Reason: fmt.Sprintf("ecliptic coincides with the horizon at latitude %.6f", latitude),
		}
	}
	return model.Normalize(model.DegreesOf(math.Atan2(y, x))), nil
}
