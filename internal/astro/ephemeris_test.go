package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vedic-chart/internal/model"
)

func TestLuminariesAtJ2000(t *testing.T) {
	assert.InDelta(t, 280.3839180615389, float64(SunLongitude(0)), 1e-9)
	assert.InDelta(t, 222.76628231651577, float64(MoonLongitude(0)), 1e-9)
	assert.InDelta(t, 125.04452, float64(RahuLongitude(0)), 1e-12)
	assert.InDelta(t, 305.04452, float64(KetuLongitude(0)), 1e-12)
}

func TestSunAfterOneCentury(t *testing.T) {
	assert.InDelta(t, 281.1220547457051, float64(SunLongitude(1)), 1e-7)
}

func TestTropicalLongitudesInRange(t *testing.T) {
	for T := -1.0; T <= 1.0; T += 0.037 {
		lons := TropicalLongitudes(T)
		assert.Len(t, lons, len(model.Bodies))
		for b, l := range lons {
			assert.GreaterOrEqual(t, float64(l), 0.0, "%s at T=%v", b, T)
			assert.Less(t, float64(l), 360.0, "%s at T=%v", b, T)
		}
		opposite := model.SignedDelta(float64(lons[model.Rahu]), float64(lons[model.Ketu]))
		assert.InDelta(t, 180, opposite, 1e-9)
	}
}

func TestUnknownBody(t *testing.T) {
	assert.Equal(t, model.Angle(0), TropicalLongitude(model.Body("Pluto"), 0))
}

func TestInnerPlanetsStayNearSun(t *testing.T) {
	// Maximum elongation on circular orbits: asin(a).
	for d := 0.0; d < 730; d += 3 {
		T := d / DaysPerCentury
		sun := float64(SunLongitude(T))
		assert.LessOrEqual(t, abs(model.SignedDelta(sun, float64(TropicalLongitude(model.Mercury, T)))), 24.0, "day %v", d)
		assert.LessOrEqual(t, abs(model.SignedDelta(sun, float64(TropicalLongitude(model.Venus, T)))), 48.0, "day %v", d)
	}
}

func TestRetrograde(t *testing.T) {
	for _, T := range []float64{-0.3, 0, 0.25} {
		assert.True(t, IsRetrograde(model.Rahu, T, 1))
		assert.True(t, IsRetrograde(model.Ketu, T, 1))
		assert.False(t, IsRetrograde(model.Sun, T, 1))
		assert.False(t, IsRetrograde(model.Moon, T, 1))
	}
	assert.True(t, IsRetrograde(model.Saturn, 0, 1))
	assert.False(t, IsRetrograde(model.Jupiter, 0, 1))
}

func TestRetrogradeMatchesRate(t *testing.T) {
	retroDays := map[model.Body]int{}
	for d := 0.0; d < 366; d++ {
		T := d / DaysPerCentury
		for _, b := range []model.Body{model.Mercury, model.Venus, model.Mars, model.Jupiter, model.Saturn} {
			r := IsRetrograde(b, T, 1)
			assert.Equal(t, LongitudeRate(b, T, 1) < 0, r)
			if r {
				retroDays[b]++
			}
		}
	}
	assert.Equal(t, 70, retroDays[model.Mercury])
	// Outer planets are retrograde for part of every year, never the whole of it.
	for _, b := range []model.Body{model.Jupiter, model.Saturn} {
		assert.Greater(t, retroDays[b], 60, "%s", b)
		assert.Less(t, retroDays[b], 200, "%s", b)
	}
}

func TestLongitudeRateDefaultsStep(t *testing.T) {
	assert.Equal(t, LongitudeRate(model.Mars, 0, 1), LongitudeRate(model.Mars, 0, 0))
	// The Sun moves just under a degree a day.
	assert.InDelta(t, 1.0, LongitudeRate(model.Sun, 0, 1), 0.05)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
