package data

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"vedic-chart/internal/model"
)

// Place is a named birth-place preset. Resolving free-text place names to
// coordinates is not done here; presets are curated by hand.
type Place struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	TimeZone  string  `json:"timezone"` // IANA name, e.g. "Asia/Kolkata"
}

// PlaceList represents a collection of places
type PlaceList struct {
	UpdatedAt string  `json:"updated_at"` // ISO 8601 timestamp
	Places    []Place `json:"places"`
}

// LoadPlaces loads places from a JSON file
func LoadPlaces(filePath string) (*PlaceList, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read places file: %w", err)
	}

	var list PlaceList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse places file: %w", err)
	}

	seen := make(map[string]bool, len(list.Places))
	for _, p := range list.Places {
		id := strings.ToLower(p.ID)
		if id == "" {
			return nil, fmt.Errorf("place %q has no id", p.Name)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate place id %q", p.ID)
		}
		seen[id] = true
	}
	return &list, nil
}

// GetDefaultPlacesPath returns the default path for the places file
func GetDefaultPlacesPath() string {
	if path := os.Getenv("PLACES_FILE"); path != "" {
		return path
	}
	return "./data/places.json"
}

// Find looks a place up by case-insensitive ID. A nil list finds nothing.
func (l *PlaceList) Find(id string) (Place, bool) {
	if l == nil {
		return Place{}, false
	}
	for _, p := range l.Places {
		if strings.EqualFold(p.ID, id) {
			return p, true
		}
	}
	return Place{}, false
}

// Apply sets the input's coordinates from the preset, and its timezone when
// the input carries no explicit offset or zone of its own.
func (p Place) Apply(in model.BirthInput) model.BirthInput {
	in.Latitude = p.Latitude
	in.Longitude = p.Longitude
	if in.UTCOffset == "" && in.TimeZone == "" {
		in.TimeZone = p.TimeZone
	}
	return in
}
