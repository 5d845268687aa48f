package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedic-chart/internal/model"
)

func TestJulianDay(t *testing.T) {
	cases := []struct {
		name string
		t    time.Time
		want float64
	}{
		{"J2000", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545.0},
		{"unix epoch", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 2440587.5},
		{"meeus 7.a", time.Date(1987, 4, 10, 19, 21, 0, 0, time.UTC), 2446896.30625},
		{"leap day", time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC), 2451603.5},
		{"1900", time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), 2415020.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, JulianDay(tc.t), 1e-9)
		})
	}
}

func TestJulianDayUsesUTCInstant(t *testing.T) {
	ist := time.FixedZone("+05:30", 5*3600+1800)
	local := time.Date(2000, 1, 1, 17, 30, 0, 0, ist)
	assert.Equal(t, JulianDay(local.UTC()), JulianDay(local))
	assert.InDelta(t, J2000, JulianDay(local), 1e-9)
}

func TestCenturies(t *testing.T) {
	assert.Equal(t, 0.0, Centuries(J2000))
	assert.InDelta(t, 1.0, Centuries(J2000+DaysPerCentury), 1e-15)
	assert.InDelta(t, -0.5, Centuries(J2000-DaysPerCentury/2), 1e-15)
}

func TestPrecisionWarnings(t *testing.T) {
	assert.Empty(t, PrecisionWarnings(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), 1900, 2100))
	assert.Empty(t, PrecisionWarnings(time.Date(2100, 12, 31, 0, 0, 0, 0, time.UTC), 1900, 2100))

	w := PrecisionWarnings(time.Date(1850, 6, 1, 0, 0, 0, 0, time.UTC), 1900, 2100)
	require.Len(t, w, 1)
	assert.Equal(t, model.WarningPrecisionRange, w[0].Code)
	assert.Contains(t, w[0].Message, "1850")
}
