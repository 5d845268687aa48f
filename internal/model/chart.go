package model

import "time"

// Nakshatra locates a longitude among the 27 lunar mansions.
type Nakshatra struct {
	Index int    `json:"index"` // 0..26
	Name  string `json:"name"`
	Lord  Body   `json:"lord"`
	Pada  int    `json:"pada"` // 1..4
}

// Ascendant is the sidereal Lagna.
type Ascendant struct {
	Longitude Angle     `json:"longitude"`
	Sign      int       `json:"sign"`
	SignName  string    `json:"sign_name"`
	Degree    float64   `json:"degree"`
	Nakshatra Nakshatra `json:"nakshatra"`
}

// Planet is one graha's placement. Longitudes are sidereal.
type Planet struct {
	Name       Body      `json:"name"`
	Longitude  Angle     `json:"longitude"`
	Sign       int       `json:"sign"`
	SignName   string    `json:"sign_name"`
	Degree     float64   `json:"degree"`
	House      int       `json:"house"`
	Retrograde bool      `json:"retrograde"`
	Nakshatra  Nakshatra `json:"nakshatra"`
	Dignity    Dignity   `json:"dignity"`
	Strength   float64   `json:"strength"`
}

// House is one of the twelve whole-sign houses counted from the Lagna.
type House struct {
	Number    int           `json:"number"`
	Sign      int           `json:"sign"`
	SignName  string        `json:"sign_name"`
	Lord      Body          `json:"lord"`
	Occupants []Body        `json:"occupants"`
	Category  HouseCategory `json:"category"`
}

// DashaPeriod is a half-open interval [Start, End) ruled by Planet.
// Years is the realized length; for the balance period at birth it is a
// fraction of the lord's full weight.
type DashaPeriod struct {
	Planet  Body          `json:"planet"`
	Start   time.Time     `json:"start"`
	End     time.Time     `json:"end"`
	Years   float64       `json:"years"`
	Balance bool          `json:"balance,omitempty"`
	Sub     []DashaPeriod `json:"antardashas,omitempty"`
}

// Duration returns End-Start.
func (p DashaPeriod) Duration() time.Duration { return p.End.Sub(p.Start) }

// Contains reports whether t falls within [Start, End).
func (p DashaPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Tithi is the lunar day.
type Tithi struct {
	Index  int    `json:"index"` // 0..29
	Name   string `json:"name"`
	Paksha string `json:"paksha"` // Shukla (waxing) or Krishna (waning)
}

// Yoga is the Sun+Moon combination.
type Yoga struct {
	Index int    `json:"index"` // 0..26
	Name  string `json:"name"`
}

// Karana is the half-tithi.
type Karana struct {
	Index int    `json:"index"` // 0..59
	Name  string `json:"name"`
}

// Panchang groups the calendar attributes of the birth moment.
type Panchang struct {
	Tithi      Tithi     `json:"tithi"`
	Yoga       Yoga      `json:"yoga"`
	Karana     Karana    `json:"karana"`
	Vara       string    `json:"vara"`
	Nakshatra  Nakshatra `json:"nakshatra"`
	Elongation Angle     `json:"elongation"`
}

// Moment records the resolved birth instant.
type Moment struct {
	UTC       time.Time `json:"utc"`
	Local     string    `json:"local"`
	JulianDay float64   `json:"julian_day"`
	Centuries float64   `json:"centuries"`
}

// Chart is the complete computed output for one BirthInput.
// A Chart is built once and must not be mutated afterwards.
type Chart struct {
	Name      string        `json:"name,omitempty"`
	Birth     Moment        `json:"birth"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Ayanamsa  float64       `json:"ayanamsa"`
	Ascendant Ascendant     `json:"ascendant"`
	Planets   []Planet      `json:"planets"`
	Houses    []House       `json:"houses"`
	Dasha     []DashaPeriod `json:"dasha"`
	Panchang  Panchang      `json:"panchang"`
	Warnings  []Warning     `json:"warnings,omitempty"`
}

// Planet returns the placement of b.
func (c *Chart) Planet(b Body) (Planet, bool) {
	for _, p := range c.Planets {
		if p.Name == b {
			return p, true
		}
	}
	return Planet{}, false
}
