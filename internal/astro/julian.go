// Package astro holds the low-precision astronomy behind a chart: civil time
// to Julian Day, mean-element planetary longitudes, the Lahiri ayanamsa and
// the ascendant.
package astro

import (
	"fmt"
	"time"

	"vedic-chart/internal/model"
)

const (
	// J2000 is the Julian Day of 2000-01-01 12:00 TT.
	J2000          = 2451545.0
	DaysPerCentury = 36525.0
	SecondsPerDay  = 86400
)

// JulianDay returns the Julian Day of t, using its UTC instant.
// The day number follows the Fliegel-Van Flandern integer formula; the
// fraction counts from noon.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	year, month, day := t.Date()

	a := (14 - int(month)) / 12
	y := year + 4800 - a
	m := int(month) + 12*a - 3

	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045

	secs := float64(t.Hour()*3600+t.Minute()*60+t.Second()) + float64(t.Nanosecond())/1e9
	return float64(jdn) + (secs-SecondsPerDay/2)/SecondsPerDay
}

// Centuries returns T, Julian centuries since J2000.
func Centuries(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// PrecisionWarnings flags instants outside [minYear, maxYear], where the
// linear element fits are extrapolated.
func PrecisionWarnings(t time.Time, minYear, maxYear int) []model.Warning {
	y := t.UTC().Year()
	if y >= minYear && y <= maxYear {
		return nil
	}
	return []model.Warning{{
		Code:    model.WarningPrecisionRange,
		Message: fmt.Sprintf("year %d is outside the validated range %d-%d; positions may drift by several degrees", y, minYear, maxYear),
	}}
}
