// Package dasha sequences Vimshottari planetary periods from the Moon's
// position at birth.
package dasha

import (
	"fmt"
	"math"
	"time"

	"vedic-chart/internal/model"
	"vedic-chart/internal/nakshatra"
)

const (
	// CycleYears is the length of one pass through Order.
	CycleYears = 120.0
	// DaysPerYear is the Julian year used to turn period weights into time.
	DaysPerYear = 365.25
	// MaxHorizonYears keeps every offset representable as a time.Duration.
	MaxHorizonYears = 240.0
)

// Order is the fixed cyclic order of lords.
var Order = [9]model.Body{
	model.Ketu, model.Venus, model.Sun, model.Moon, model.Mars,
	model.Rahu, model.Jupiter, model.Saturn, model.Mercury,
}

// Weights are the full period lengths in years; they sum to CycleYears.
var Weights = map[model.Body]float64{
	model.Ketu:    7,
	model.Venus:   20,
	model.Sun:     6,
	model.Moon:    10,
	model.Mars:    7,
	model.Rahu:    18,
	model.Jupiter: 16,
	model.Saturn:  19,
	model.Mercury: 17,
}

// YearsToDuration converts Julian years to a duration.
func YearsToDuration(years float64) time.Duration {
	return time.Duration(math.Round(years * DaysPerYear * 24 * float64(time.Hour)))
}

func orderIndex(b model.Body) int {
	for i, o := range Order {
		if o == b {
			return i
		}
	}
	return -1
}

// Sequence builds the Mahadasha timeline starting at birth.
//
// The first period belongs to the lord of the Moon's nakshatra and lasts only
// the unelapsed share of its weight. Later periods follow Order with full
// weights, end to end, until at least horizonYears are covered. The last
// period is kept whole, so coverage may run past the horizon.
func Sequence(moon model.Angle, birth time.Time, horizonYears float64) ([]model.DashaPeriod, error) {
	if math.IsNaN(horizonYears) || horizonYears <= 0 || horizonYears > MaxHorizonYears {
		return nil, &model.InputError{
			Field:  "horizon_years",
			Reason: fmt.Sprintf("must be within (0, %.0f]", MaxHorizonYears),
		}
	}

	nak := nakshatra.Resolve(moon)
	elapsed := nakshatra.FractionElapsed(moon)
	first := orderIndex(nak.Lord)

	var periods []model.DashaPeriod
	offset := 0.0
	for i := 0; offset < horizonYears; i++ {
		lord := Order[(first+i)%len(Order)]
		full := Weights[lord]
		years, skipped := full, 0.0
		if i == 0 {
			years = full * (1 - elapsed)
			skipped = full * elapsed
		}
		p := model.DashaPeriod{
			Planet:  lord,
			Start:   birth.Add(YearsToDuration(offset)),
			End:     birth.Add(YearsToDuration(offset + years)),
			Years:   years,
			Balance: i == 0 && elapsed > 0,
		}
		p.Sub = subPeriods(lord, birth, offset, offset+years, skipped)
		periods = append(periods, p)
		offset += years
	}
	return periods, nil
}

// subPeriods lays out the nine Antardashas of the Mahadasha spanning
// [start, end) in years from birth. For the balance period the Mahadasha
// conceptually began skipped years before birth; sub-periods that ended
// before start are dropped and the first surviving one is clipped.
func subPeriods(lord model.Body, birth time.Time, start, end, skipped float64) []model.DashaPeriod {
	full := Weights[lord]
	cursor := start - skipped
	first := orderIndex(lord)

	out := make([]model.DashaPeriod, 0, len(Order))
	for k := 0; k < len(Order); k++ {
		sub := Order[(first+k)%len(Order)]
		s := cursor
		e := cursor + full*Weights[sub]/CycleYears
		cursor = e
		if k == len(Order)-1 {
			e = end
		}
		if e <= start {
			continue
		}
		if s < start {
			s = start
		}
		out = append(out, model.DashaPeriod{
			Planet: sub,
			Start:  birth.Add(YearsToDuration(s)),
			End:    birth.Add(YearsToDuration(e)),
			Years:  e - s,
		})
	}
	return out
}

// Current returns the index of the period containing at, or false when at
// lies before the first period or after the last.
func Current(periods []model.DashaPeriod, at time.Time) (int, bool) {
	for i, p := range periods {
		if p.Contains(at) {
			return i, true
		}
	}
	return -1, false
}

// Upcoming returns the periods starting at or after at.
func Upcoming(periods []model.DashaPeriod, at time.Time) []model.DashaPeriod {
	for i, p := range periods {
		if !p.Start.Before(at) {
			return periods[i:]
		}
	}
	return nil
}
