package dasha

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedic-chart/internal/model"
)

var birth = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// Sidereal Moon for 2000-01-01 12:00 UTC: Swati, ruled by Rahu, 91.8% elapsed.
const swatiMoon = model.Angle(198.90919031651578)

func TestWeightsSumToCycle(t *testing.T) {
	sum := 0.0
	for _, b := range Order {
		sum += Weights[b]
	}
	assert.Equal(t, CycleYears, sum)
	assert.Len(t, Weights, len(Order))
}

func TestSequenceBalance(t *testing.T) {
	periods, err := Sequence(swatiMoon, birth, CycleYears)
	require.NoError(t, err)

	first := periods[0]
	assert.Equal(t, model.Rahu, first.Planet)
	assert.True(t, first.Balance)
	assert.InDelta(t, 1.4725930727037284, first.Years, 1e-9)
	assert.True(t, first.Start.Equal(birth))

	want := []model.Body{
		model.Rahu, model.Jupiter, model.Saturn, model.Mercury, model.Ketu,
		model.Venus, model.Sun, model.Moon, model.Mars, model.Rahu,
	}
	got := make([]model.Body, len(periods))
	for i, p := range periods {
		got[i] = p.Planet
	}
	assert.Equal(t, want, got)

	for _, p := range periods[1:] {
		assert.False(t, p.Balance)
		assert.Equal(t, Weights[p.Planet], p.Years)
	}
}

func TestSequenceContiguousAndCovering(t *testing.T) {
	for _, horizon := range []float64{1, 50, CycleYears, MaxHorizonYears} {
		periods, err := Sequence(swatiMoon, birth, horizon)
		require.NoError(t, err)
		require.NotEmpty(t, periods)

		total := 0.0
		for i, p := range periods {
			assert.True(t, p.End.After(p.Start))
			if i > 0 {
				assert.True(t, periods[i-1].End.Equal(p.Start), "gap before period %d", i)
			}
			total += p.Years
		}
		assert.GreaterOrEqual(t, total, horizon)
		// The last period is kept whole, so it is the only one past the horizon.
		assert.Less(t, total-periods[len(periods)-1].Years, horizon)
		assert.WithinDuration(t, birth.Add(YearsToDuration(total)), periods[len(periods)-1].End, time.Second)
	}
}

func TestSequenceNoElapsedFraction(t *testing.T) {
	periods, err := Sequence(0, birth, CycleYears)
	require.NoError(t, err)

	first := periods[0]
	assert.Equal(t, model.Ketu, first.Planet)
	assert.False(t, first.Balance)
	assert.Equal(t, 7.0, first.Years)
	assert.Len(t, first.Sub, 9)
	// A full cycle starting from Ketu's first instant ends exactly at 120 years.
	assert.Len(t, periods, 9)
}

func TestSequenceRejectsHorizon(t *testing.T) {
	for _, h := range []float64{0, -5, MaxHorizonYears + 1, math.NaN(), math.Inf(1)} {
		_, err := Sequence(swatiMoon, birth, h)
		var ie *model.InputError
		require.ErrorAs(t, err, &ie, "horizon %v", h)
		assert.Equal(t, "horizon_years", ie.Field)
	}
}

func TestAntardashas(t *testing.T) {
	periods, err := Sequence(swatiMoon, birth, CycleYears)
	require.NoError(t, err)

	for i, p := range periods {
		require.NotEmpty(t, p.Sub, "period %d", i)
		assert.True(t, p.Sub[0].Start.Equal(p.Start), "period %d", i)
		assert.True(t, p.Sub[len(p.Sub)-1].End.Equal(p.End), "period %d", i)

		sum := 0.0
		for k, s := range p.Sub {
			if k > 0 {
				assert.True(t, p.Sub[k-1].End.Equal(s.Start))
			}
			sum += s.Years
		}
		assert.InDelta(t, p.Years, sum, 1e-9, "period %d", i)
	}

	// A full Mahadasha opens with its own lord's Antardasha.
	jup := periods[1]
	require.Len(t, jup.Sub, 9)
	assert.Equal(t, model.Jupiter, jup.Sub[0].Planet)
	assert.InDelta(t, 16.0*16/120, jup.Sub[0].Years, 1e-12)
	assert.Equal(t, model.Rahu, jup.Sub[8].Planet)

	// The balance period only keeps the sub-periods after birth. 91.8% of
	// Rahu's 18 years have elapsed, leaving the tail of Moon and all of Mars.
	bal := periods[0]
	require.Len(t, bal.Sub, 2)
	assert.Equal(t, model.Moon, bal.Sub[0].Planet)
	assert.Equal(t, model.Mars, bal.Sub[len(bal.Sub)-1].Planet)
}

func TestCurrentAndUpcoming(t *testing.T) {
	periods, err := Sequence(swatiMoon, birth, CycleYears)
	require.NoError(t, err)

	i, ok := Current(periods, birth)
	require.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = Current(periods, birth.Add(-time.Hour))
	assert.False(t, ok)
	_, ok = Current(periods, periods[len(periods)-1].End)
	assert.False(t, ok)

	at := birth.AddDate(20, 0, 0)
	i, ok = Current(periods, at)
	require.True(t, ok)
	assert.Equal(t, model.Saturn, periods[i].Planet)

	next := Upcoming(periods, at)
	require.NotEmpty(t, next)
	assert.Equal(t, model.Mercury, next[0].Planet)
	assert.Len(t, next, len(periods)-i-1)

	assert.Nil(t, Upcoming(periods, periods[len(periods)-1].End.Add(time.Hour)))
}

func TestYearsToDuration(t *testing.T) {
	assert.Equal(t, 365*24*time.Hour+6*time.Hour, YearsToDuration(1))
	assert.Equal(t, time.Duration(0), YearsToDuration(0))
}
