package models

import "time"

// BirthRequest is the form-collection payload for one birth.
// Coordinates may come from PlaceID; explicit Latitude/Longitude win over the preset.
type BirthRequest struct {
	Name      string   `json:"name,omitempty"`
	Date      string   `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string   `json:"time" binding:"required"` // HH:MM[:SS] local clock time
	UTCOffset string   `json:"utc_offset,omitempty"`    // e.g. "+05:30"
	TimeZone  string   `json:"timezone,omitempty"`      // IANA name
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	PlaceID   string   `json:"place_id,omitempty"`
}

// EngineOverrides adjusts the server's engine settings for one request.
type EngineOverrides struct {
	HorizonYears       float64 `json:"horizon_years,omitempty"`
	RetrogradeStepDays float64 `json:"retrograde_step_days,omitempty"`
}

// ChartRequest represents the request body for building a chart
type ChartRequest struct {
	Birth             BirthRequest     `json:"birth"`
	AsOf              *time.Time       `json:"as_of,omitempty"` // default: request time
	Options           *EngineOverrides `json:"options,omitempty"`
	IncludeAntardasha bool             `json:"include_antardasha,omitempty"`
}

// BatchChartRequest builds several charts with shared options
type BatchChartRequest struct {
	Births            []BirthRequest   `json:"births" binding:"required,min=1,max=100,dive"`
	AsOf              *time.Time       `json:"as_of,omitempty"`
	Options           *EngineOverrides `json:"options,omitempty"`
	IncludeAntardasha bool             `json:"include_antardasha,omitempty"`
}
