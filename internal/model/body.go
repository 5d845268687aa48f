package model

// Body is one of the nine grahas placed in a chart.
// Keep these values stable; they are part of the serialized output.
type Body string

const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mars    Body = "Mars"
	Mercury Body = "Mercury"
	Jupiter Body = "Jupiter"
	Venus   Body = "Venus"
	Saturn  Body = "Saturn"
	Rahu    Body = "Rahu"
	Ketu    Body = "Ketu"
)

// Bodies is the fixed output order of Chart.Planets.
var Bodies = []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// IsNode reports whether b is one of the lunar nodes.
func (b Body) IsNode() bool { return b == Rahu || b == Ketu }

// SignNames indexed by sign-1.
var SignNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signLords = [12]Body{
	Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

// SignName returns the Rashi name for sign 1..12, or "" when out of range.
func SignName(sign int) string {
	if sign < 1 || sign > 12 {
		return ""
	}
	return SignNames[sign-1]
}

// SignLord returns the traditional ruler of sign 1..12.
func SignLord(sign int) Body {
	if sign < 1 || sign > 12 {
		return ""
	}
	return signLords[sign-1]
}

// HouseCategory is the positional class of a house.
type HouseCategory string

const (
	Kendra  HouseCategory = "Kendra"
	Trikona HouseCategory = "Trikona"
	Neutral HouseCategory = "Neutral"
)

// CategoryOf classifies a house by number alone.
func CategoryOf(house int) HouseCategory {
	switch house {
	case 1, 4, 7, 10:
		return Kendra
	case 5, 9:
		return Trikona
	default:
		return Neutral
	}
}

// Dignity describes a planet's standing in the sign it occupies.
type Dignity string

const (
	Exalted     Dignity = "Exalted"
	OwnSign     Dignity = "Own"
	Debilitated Dignity = "Debilitated"
	Ordinary    Dignity = "Neutral"
)
