package astro

import "vedic-chart/internal/model"

// Ayanamsa is a linear precession model: ReferenceDeg at J2000 plus
// RateArcsecPerYear of drift.
type Ayanamsa struct {
	ReferenceDeg      float64 `yaml:"reference_deg" json:"reference_deg"`
	RateArcsecPerYear float64 `yaml:"rate_arcsec_per_year" json:"rate_arcsec_per_year"`
}

// Lahiri is the Chitrapaksha ayanamsa anchored at J2000.
var Lahiri = Ayanamsa{ReferenceDeg: 23.857092, RateArcsecPerYear: 50.29}

// At returns the ayanamsa in degrees at T.
func (a Ayanamsa) At(T float64) float64 {
	return a.ReferenceDeg + a.RateArcsecPerYear*100*T/3600
}

// Sidereal converts a tropical longitude at T.
func (a Ayanamsa) Sidereal(tropical model.Angle, T float64) model.Angle {
	return model.Normalize(float64(tropical) - a.At(T))
}
