// Package nakshatra maps sidereal longitudes onto the 27 lunar mansions.
package nakshatra

import (
	"math"

	"vedic-chart/internal/model"
)

const (
	// Count of mansions around the ecliptic.
	Count = 27
	// Span is 13°20′.
	Span = 360.0 / Count
	// PadaSpan is 3°20′.
	PadaSpan = 360.0 / (Count * 4)
)

// Names indexed 0..26 from Ashwini.
var Names = [Count]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// Lords indexed like Names.
var Lords = [Count]model.Body{
	model.Ketu, model.Venus, model.Sun, model.Moon, model.Mars, model.Rahu, model.Jupiter, model.Saturn, model.Mercury,
	model.Ketu, model.Venus, model.Sun, model.Moon, model.Mars, model.Rahu, model.Jupiter, model.Saturn, model.Mercury,
	model.Ketu, model.Venus, model.Sun, model.Moon, model.Mars, model.Rahu, model.Jupiter, model.Saturn, model.Mercury,
}

// Resolve returns the mansion, lord and pada of a sidereal longitude.
func Resolve(lon model.Angle) model.Nakshatra {
	idx, rem := locate(lon)
	pada := int(rem/PadaSpan) + 1
	if pada > 4 {
		pada = 4
	}
	return model.Nakshatra{
		Index: idx,
		Name:  Names[idx],
		Lord:  Lords[idx],
		Pada:  pada,
	}
}

// FractionElapsed returns how far through its mansion lon lies, in [0, 1).
func FractionElapsed(lon model.Angle) float64 {
	_, rem := locate(lon)
	f := rem / Span
	if f >= 1 {
		f = math.Nextafter(1, 0)
	}
	return f
}

// locate derives index and remainder from the same division so both stay consistent at boundaries.
func locate(lon model.Angle) (int, float64) {
	l := float64(model.Normalize(float64(lon)))
	idx := int(l / Span)
	if idx >= Count {
		idx = Count - 1
	}
	rem := l - float64(idx)*Span
	if rem < 0 {
		rem = 0
	}
	return idx, rem
}
