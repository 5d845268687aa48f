package handlers

import (
	"time"

	"vedic-chart/internal/api/models"
	"vedic-chart/internal/dasha"
	"vedic-chart/internal/model"
)

func buildChartView(c *model.Chart, asOf time.Time, withSub bool) models.ChartView {
	v := models.ChartView{
		Name: c.Name,
		Birth: models.BirthView{
			UTC:       c.Birth.UTC,
			Local:     c.Birth.Local,
			JulianDay: c.Birth.JulianDay,
		},
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Ayanamsa:  c.Ayanamsa,
		Ascendant: models.AscendantView{
			Longitude: float64(c.Ascendant.Longitude),
			Sign:      c.Ascendant.Sign,
			SignName:  c.Ascendant.SignName,
			Degree:    c.Ascendant.Degree,
			Nakshatra: nakshatraView(c.Ascendant.Nakshatra),
		},
		Planets:  make([]models.PlanetView, 0, len(c.Planets)),
		Houses:   make([]models.HouseView, 0, len(c.Houses)),
		Dasha:    buildDashaView(c.Dasha, asOf, withSub),
		Panchang: buildPanchangView(c.Panchang),
	}

	for _, p := range c.Planets {
		v.Planets = append(v.Planets, models.PlanetView{
			Name:       string(p.Name),
			Longitude:  float64(p.Longitude),
			Sign:       p.Sign,
			SignName:   p.SignName,
			Degree:     p.Degree,
			House:      p.House,
			Retrograde: p.Retrograde,
			Nakshatra:  nakshatraView(p.Nakshatra),
			Dignity:    string(p.Dignity),
			Strength:   p.Strength,
		})
	}

	for _, h := range c.Houses {
		occ := make([]string, 0, len(h.Occupants))
		for _, b := range h.Occupants {
			occ = append(occ, string(b))
		}
		v.Houses = append(v.Houses, models.HouseView{
			Number:    h.Number,
			Sign:      h.Sign,
			SignName:  h.SignName,
			Lord:      string(h.Lord),
			Occupants: occ,
			Category:  string(h.Category),
		})
	}

	for _, w := range c.Warnings {
		v.Warnings = append(v.Warnings, models.WarningView{Code: w.Code, Message: w.Message})
	}
	return v
}

// buildDashaView splits the timeline at asOf into the running period and the ones after it.
func buildDashaView(periods []model.DashaPeriod, asOf time.Time, withSub bool) models.DashaView {
	v := models.DashaView{AsOf: asOf, Upcoming: []models.PeriodView{}}
	if i, ok := dasha.Current(periods, asOf); ok {
		cur := periodView(periods[i], withSub)
		v.Current = &cur
	}
	for _, p := range dasha.Upcoming(periods, asOf) {
		v.Upcoming = append(v.Upcoming, periodView(p, withSub))
	}
	return v
}

func periodView(p model.DashaPeriod, withSub bool) models.PeriodView {
	out := models.PeriodView{
		Planet:  string(p.Planet),
		Start:   p.Start,
		End:     p.End,
		Years:   p.Years,
		Balance: p.Balance,
	}
	if withSub {
		for _, s := range p.Sub {
			out.Antardashas = append(out.Antardashas, periodView(s, false))
		}
	}
	return out
}

func buildPanchangView(p model.Panchang) models.PanchangView {
	return models.PanchangView{
		Tithi:      p.Tithi.Name,
		TithiIndex: p.Tithi.Index,
		Paksha:     p.Tithi.Paksha,
		Yoga:       p.Yoga.Name,
		Karana:     p.Karana.Name,
		Vara:       p.Vara,
		Nakshatra:  nakshatraView(p.Nakshatra),
		Elongation: float64(p.Elongation),
	}
}

func nakshatraView(n model.Nakshatra) models.NakshatraView {
	return models.NakshatraView{
		Index: n.Index,
		Name:  n.Name,
		Lord:  string(n.Lord),
		Pada:  n.Pada,
	}
}
