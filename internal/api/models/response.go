package models

import "time"

// ChartResponse represents the response for one built chart
type ChartResponse struct {
	ID     string    `json:"id"`
	Cached bool      `json:"cached"`
	Chart  ChartView `json:"chart"`
}

// BatchChartResponse keeps the order of the request's births
type BatchChartResponse struct {
	Charts []ChartResponse `json:"charts"`
}

// ChartView is the serialized chart. It carries only plain values.
type ChartView struct {
	Name      string        `json:"name,omitempty"`
	Birth     BirthView     `json:"birth"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Ayanamsa  float64       `json:"ayanamsa"`
	Ascendant AscendantView `json:"ascendant"`
	Planets   []PlanetView  `json:"planets"`
	Houses    []HouseView   `json:"houses"`
	Dasha     DashaView     `json:"dasha"`
	Panchang  PanchangView  `json:"panchang"`
	Warnings  []WarningView `json:"warnings,omitempty"`
}

type BirthView struct {
	UTC       time.Time `json:"utc"`
	Local     string    `json:"local"`
	JulianDay float64   `json:"julian_day"`
}

type NakshatraView struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Lord  string `json:"lord"`
	Pada  int    `json:"pada"`
}

type AscendantView struct {
	Longitude float64       `json:"longitude"`
	Sign      int           `json:"sign"`
	SignName  string        `json:"sign_name"`
	Degree    float64       `json:"degree"`
	Nakshatra NakshatraView `json:"nakshatra"`
}

type PlanetView struct {
	Name       string        `json:"name"`
	Longitude  float64       `json:"longitude"`
	Sign       int           `json:"sign"`
	SignName   string        `json:"sign_name"`
	Degree     float64       `json:"degree"`
	House      int           `json:"house"`
	Retrograde bool          `json:"retrograde"`
	Nakshatra  NakshatraView `json:"nakshatra"`
	Dignity    string        `json:"dignity"`
	Strength   float64       `json:"strength"`
}

type HouseView struct {
	Number    int      `json:"number"`
	Sign      int      `json:"sign"`
	SignName  string   `json:"sign_name"`
	Lord      string   `json:"lord"`
	Occupants []string `json:"occupants"`
	Category  string   `json:"category"`
}

type PeriodView struct {
	Planet      string       `json:"planet"`
	Start       time.Time    `json:"start"`
	End         time.Time    `json:"end"`
	Years       float64      `json:"years"`
	Balance     bool         `json:"balance,omitempty"`
	Antardashas []PeriodView `json:"antardashas,omitempty"`
}

// DashaView is the timeline relative to AsOf: the running period and those after it.
type DashaView struct {
	AsOf     time.Time    `json:"as_of"`
	Current  *PeriodView  `json:"current,omitempty"`
	Upcoming []PeriodView `json:"upcoming"`
}

type PanchangView struct {
	Tithi      string        `json:"tithi"`
	TithiIndex int           `json:"tithi_index"`
	Paksha     string        `json:"paksha"`
	Yoga       string        `json:"yoga"`
	Karana     string        `json:"karana"`
	Vara       string        `json:"vara"`
	Nakshatra  NakshatraView `json:"nakshatra"`
	Elongation float64       `json:"elongation"`
}

type WarningView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PlaceInfo represents a birth-place preset
type PlaceInfo struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	TimeZone  string  `json:"timezone"`
}

// NakshatraInfo describes one lunar mansion
type NakshatraInfo struct {
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Lord     string  `json:"lord"`
	StartDeg float64 `json:"start_deg"`
}

// SignInfo describes one Rashi
type SignInfo struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Lord     string `json:"lord"`
	Element  string `json:"element"`
	Modality string `json:"modality"`
}

// DashaLordInfo is one entry of the Vimshottari cycle
type DashaLordInfo struct {
	Planet string  `json:"planet"`
	Years  float64 `json:"years"`
}

// ReferenceResponse exposes the fixed tables the engine uses
type ReferenceResponse struct {
	Nakshatras []NakshatraInfo `json:"nakshatras"`
	Signs      []SignInfo      `json:"signs"`
	Dasha      []DashaLordInfo `json:"dasha"`
	CycleYears float64         `json:"cycle_years"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
