package astro

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedic-chart/internal/model"
)

func TestGreenwichSiderealTime(t *testing.T) {
	// Meeus example 12.a: 1987-04-10 0h UT.
	jd := JulianDay(time.Date(1987, 4, 10, 0, 0, 0, 0, time.UTC))
	assert.InDelta(t, 197.693195, float64(GreenwichSiderealTime(jd)), 1e-5)
	assert.InDelta(t, 280.46061837, float64(GreenwichSiderealTime(J2000)), 1e-9)
}

func TestLocalSiderealTime(t *testing.T) {
	assert.InDelta(t, 357.66961837, float64(LocalSiderealTime(J2000, 77.2090)), 1e-8)
	assert.InDelta(t, 180.46061837, float64(LocalSiderealTime(J2000, -100)), 1e-8)
}

func TestTropicalAscendantNewDelhi(t *testing.T) {
	asc, err := TropicalAscendant(J2000, 28.6139, 77.2090)
	require.NoError(t, err)
	assert.InDelta(t, 100.19524802115076, float64(asc), 1e-8)
}

func TestAscendantAtEquator(t *testing.T) {
	// With RAMC 0 on the equator the rising point is the June solstice.
	asc, err := ascendantFromRAMC(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 90, float64(asc), 1e-9)

	asc, err = ascendantFromRAMC(180, 0)
	require.NoError(t, err)
	assert.InDelta(t, 270, float64(asc), 1e-9)
}

func TestAscendantAdvancesThroughZodiac(t *testing.T) {
	// Over one sidereal day the ascendant passes through every sign.
	signs := map[int]bool{}
	for ramc := 0.0; ramc < 360; ramc += 1 {
		asc, err := ascendantFromRAMC(ramc, 28.6139)
		require.NoError(t, err)
		signs[model.SignOf(asc)] = true
	}
	assert.Len(t, signs, 12)
}

func TestAscendantSingularities(t *testing.T) {
	for _, lat := range []float64{90, -90} {
		_, err := TropicalAscendant(J2000, lat, 0)
		require.Error(t, err, "lat %v", lat)
		assert.True(t, errors.Is(err, model.ErrSingularity))
		var ce *model.ComputationError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "ascendant", ce.Op)
	}

	// Ecliptic lying in the horizon plane.
	_, err := ascendantFromRAMC(90, -(90 - Obliquity))
	assert.ErrorIs(t, err, model.ErrSingularity)
}

func TestAscendantNearPole(t *testing.T) {
	for _, lat := range []float64{89.99999, -89.99999, PolarLatitudeLimit, -PolarLatitudeLimit} {
		for ramc := 0.0; ramc < 360; ramc += 60 {
			_, err := ascendantFromRAMC(ramc, lat)
			assert.ErrorIs(t, err, model.ErrSingularity, "lat %v ramc %v", lat, ramc)
		}
	}

	for ramc := 0.0; ramc < 360; ramc += 1 {
		_, err := ascendantFromRAMC(ramc, 89.89)
		require.NoError(t, err, "ramc %v", ramc)
	}
}

func TestAscendantNearHorizonCoincidence(t *testing.T) {
	lat := -(90 - Obliquity)
	for _, ramc := range []float64{90.00001, 89.99999} {
		_, err := ascendantFromRAMC(ramc, lat)
		assert.ErrorIs(t, err, model.ErrSingularity, "ramc %v", ramc)
	}

	// A thousandth of a degree away the rising point is well defined.
	_, err := ascendantFromRAMC(90.001, lat)
	assert.NoError(t, err)
	_, err = ascendantFromRAMC(270, lat)
	assert.NoError(t, err)
}

func TestAscendantHighLatitudeSite(t *testing.T) {
	// Fairbanks never comes close to either degeneracy.
	for ramc := 0.0; ramc < 360; ramc += 0.5 {
		_, err := ascendantFromRAMC(ramc, 64.8378)
		require.NoError(t, err, "ramc %v", ramc)
	}
}

func TestAyanamsa(t *testing.T) {
	assert.InDelta(t, 23.857092, Lahiri.At(0), 1e-12)
	// 2024-06-21 0h UT.
	assert.InDelta(t, 24.198917899307933, Lahiri.At(0.24469541409993156), 1e-9)
	// 50.29"/yr for a century is 1.396944°.
	assert.InDelta(t, 23.857092+5029.0/3600, Lahiri.At(1), 1e-12)

	assert.InDelta(t, 256.5268260615389, float64(Lahiri.Sidereal(SunLongitude(0), 0)), 1e-9)
	assert.InDelta(t, 359.0, float64(Lahiri.Sidereal(model.Angle(22.857092), 0)), 1e-9)
}
