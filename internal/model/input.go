package model

import (
	"math"
	"sort"
	"strings"
	"time"
	_ "time/tzdata" // IANA zones must resolve on hosts without a zoneinfo database
)

// BirthInput is the civil description of a birth moment and place.
//
// The clock time is always interpreted in an explicit zone: either UTCOffset
// ("+05:30", "-0800", "Z") or TimeZone (an IANA name such as "Asia/Kolkata").
// When both are given they must agree at the birth instant. Readings that a
// daylight-saving change skips are rejected; readings it repeats need
// UTCOffset to pick one.
type BirthInput struct {
	Name      string  `json:"name,omitempty" yaml:"name"`
	Date      string  `json:"date" yaml:"date"` // YYYY-MM-DD
	Time      string  `json:"time" yaml:"time"` // HH:MM or HH:MM:SS
	UTCOffset string  `json:"utc_offset,omitempty" yaml:"utc_offset"`
	TimeZone  string  `json:"timezone,omitempty" yaml:"timezone"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

const maxOffsetSeconds = 14 * 3600

// Validate checks coordinates and resolves the civil instant.
func (in BirthInput) Validate() error {
	if math.IsNaN(in.Latitude) || in.Latitude < -90 || in.Latitude > 90 {
		return &InputError{Field: "latitude", Reason: "must be within [-90, 90]"}
	}
	if math.IsNaN(in.Longitude) || in.Longitude < -180 || in.Longitude > 180 {
		return &InputError{Field: "longitude", Reason: "must be within [-180, 180]"}
	}
	_, err := in.Instant()
	return err
}

// Instant resolves the civil date and time in the input's zone.
// The returned time carries the birth zone; callers convert to UTC as needed.
func (in BirthInput) Instant() (time.Time, error) {
	date := strings.TrimSpace(in.Date)
	clock := strings.TrimSpace(in.Time)
	if date == "" {
		return time.Time{}, &InputError{Field: "date", Reason: "is required"}
	}
	if clock == "" {
		return time.Time{}, &InputError{Field: "time", Reason: "is required"}
	}
	if len(clock) == len("15:04") {
		clock += ":00"
	}

	loc, err := in.location()
	if err != nil {
		return time.Time{}, err
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return time.Time{}, &InputError{Field: "date", Reason: "expected YYYY-MM-DD: " + err.Error()}
	}
	if _, err := time.Parse("15:04:05", clock); err != nil {
		return time.Time{}, &InputError{Field: "time", Reason: "expected HH:MM or HH:MM:SS: " + err.Error()}
	}
	wall, err := time.Parse("2006-01-02 15:04:05", date+" "+clock)
	if err != nil {
		return time.Time{}, &InputError{Field: "date", Reason: err.Error()}
	}

	zone := in.TimeZone
	if zone == "" {
		zone = in.UTCOffset
	}
	candidates := wallClockInstants(wall, loc)
	if len(candidates) == 0 {
		return time.Time{}, &InputError{Field: "time", Reason: "does not exist in " + zone + " (skipped by a clock change)"}
	}

	if in.TimeZone != "" && in.UTCOffset != "" {
		want, _ := parseOffset(in.UTCOffset)
		for _, t := range candidates {
			if _, got := t.Zone(); got == want {
				return t, nil
			}
		}
		return time.Time{}, &InputError{
			Field:  "utc_offset",
			Reason: "does not match timezone " + in.TimeZone + " at the birth instant",
		}
	}
	if len(candidates) > 1 {
		return time.Time{}, &InputError{Field: "time", Reason: "is ambiguous in " + zone + " (repeated by a clock change); give utc_offset as well"}
	}
	return candidates[0], nil
}

// wallClockInstants returns every instant whose reading in loc is wall
// (given in UTC fields). Zero results mean the reading falls in a DST gap,
// two mean it is repeated when clocks go back.
func wallClockInstants(wall time.Time, loc *time.Location) []time.Time {
	var out []time.Time
	seen := map[int]bool{}
	for _, shift := range []time.Duration{-24 * time.Hour, -12 * time.Hour, 0, 12 * time.Hour, 24 * time.Hour} {
		_, offset := wall.Add(shift).In(loc).Zone()
		if seen[offset] {
			continue
		}
		seen[offset] = true
		t := wall.Add(-time.Duration(offset) * time.Second).In(loc)
		if _, got := t.Zone(); got == offset {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func (in BirthInput) location() (*time.Location, error) {
	offset := strings.TrimSpace(in.UTCOffset)
	zone := strings.TrimSpace(in.TimeZone)
	if offset == "" && zone == "" {
		return nil, &InputError{Field: "utc_offset", Reason: "an explicit UTC offset or IANA timezone is required"}
	}
	if offset != "" {
		secs, err := parseOffset(offset)
		if err != nil {
			return nil, err
		}
		if zone == "" {
			return time.FixedZone(offset, secs), nil
		}
	}
	loc, err := time.LoadLocation(zone)
	if err != nil || zone == "Local" {
		return nil, &InputError{Field: "timezone", Reason: "unknown IANA timezone " + zone}
	}
	return loc, nil
}

func parseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"Z07:00", "-07:00", "-0700", "-07"} {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		_, secs := t.Zone()
		if secs < -maxOffsetSeconds || secs > maxOffsetSeconds {
			break
		}
		return secs, nil
	}
	return 0, &InputError{Field: "utc_offset", Reason: "expected ±HH:MM within ±14:00, got " + s}
}
