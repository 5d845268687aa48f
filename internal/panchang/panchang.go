// Package panchang derives the lunar calendar attributes of a moment from
// the sidereal Sun and Moon.
package panchang

import (
	"time"

	"vedic-chart/internal/model"
	"vedic-chart/internal/nakshatra"
)

const (
	tithiSpan  = 12.0
	karanaSpan = 6.0
	yogaSpan   = 360.0 / 27
)

const (
	Shukla  = "Shukla"
	Krishna = "Krishna"
)

var tithiNames = [15]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
}

// YogaNames indexed 0..26.
var YogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana", "Atiganda",
	"Sukarma", "Dhriti", "Shula", "Ganda", "Vriddhi", "Dhruva",
	"Vyaghata", "Harshana", "Vajra", "Siddhi", "Vyatipata", "Variyana",
	"Parigha", "Shiva", "Siddha", "Sadhya", "Shubha", "Shukla",
	"Brahma", "Indra", "Vaidhriti",
}

var movableKaranas = [7]string{"Bava", "Balava", "Kaulava", "Taitila", "Garaja", "Vanija", "Vishti"}

var varaNames = [7]string{"Ravivara", "Somavara", "Mangalavara", "Budhavara", "Guruvara", "Shukravara", "Shanivara"}

// Derive computes Tithi, Yoga, Karana and the Moon's nakshatra from sidereal
// longitudes; Vara comes from the civil weekday of local.
func Derive(sun, moon model.Angle, local time.Time) model.Panchang {
	elong := model.Normalize(float64(moon) - float64(sun))
	return model.Panchang{
		Tithi:      TithiOf(elong),
		Yoga:       YogaOf(sun, moon),
		Karana:     KaranaOf(elong),
		Vara:       varaNames[local.Weekday()],
		Nakshatra:  nakshatra.Resolve(moon),
		Elongation: elong,
	}
}

// TithiOf maps a Moon-Sun elongation to one of 30 lunar days.
func TithiOf(elong model.Angle) model.Tithi {
	idx := clamp(int(float64(elong)/tithiSpan), 29)
	t := model.Tithi{Index: idx, Paksha: Shukla}
	if idx >= 15 {
		t.Paksha = Krishna
	}
	t.Name = tithiNames[idx%15]
	if idx == 29 {
		t.Name = "Amavasya"
	}
	return t
}

// YogaOf maps the sidereal Sun+Moon sum to one of 27 yogas.
func YogaOf(sun, moon model.Angle) model.Yoga {
	sum := model.Normalize(float64(sun) + float64(moon))
	idx := clamp(int(float64(sum)/yogaSpan), 26)
	return model.Yoga{Index: idx, Name: YogaNames[idx]}
}

// KaranaOf maps an elongation to one of 60 half-tithis. The first and the
// last three are fixed karanas; the rest cycle through the seven movable ones.
func KaranaOf(elong model.Angle) model.Karana {
	idx := clamp(int(float64(elong)/karanaSpan), 59)
	var name string
	switch {
	case idx == 0:
		name = "Kimstughna"
	case idx == 57:
		name = "Shakuni"
	case idx == 58:
		name = "Chatushpada"
	case idx == 59:
		name = "Naga"
	default:
		name = movableKaranas[(idx-1)%7]
	}
	return model.Karana{Index: idx, Name: name}
}

func clamp(i, hi int) int {
	if i > hi {
		return hi
	}
	if i < 0 {
		return 0
	}
	return i
}
