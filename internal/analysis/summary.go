package analysis

import (
	"vedic-chart/internal/model"
)

// Summary is a chart-level overview used for listings and quick comparison.
// It counts placements only; it does not interpret them.
type Summary struct {
	Name string

	Lagna     string
	MoonSign  string
	SunSign   string
	Nakshatra string

	Elements   map[string]int
	Modalities map[string]int

	KendraOccupants  int
	TrikonaOccupants int
	Retrogrades      int

	MeanStrength float64
	Strongest    model.Body
	Weakest      model.Body
}

var (
	elements   = [4]string{"Fire", "Earth", "Air", "Water"}
	modalities = [3]string{"Movable", "Fixed", "Dual"}
)

// ElementOf returns the element of sign 1..12.
func ElementOf(sign int) string { return elements[(sign-1)%4] }

// ModalityOf returns the modality of sign 1..12.
func ModalityOf(sign int) string { return modalities[(sign-1)%3] }

func Summarize(c *model.Chart) Summary {
	s := Summary{
		Elements:   map[string]int{},
		Modalities: map[string]int{},
	}
	if c == nil {
		return s
	}
	s.Name = c.Name
	s.Lagna = c.Ascendant.SignName
	s.Nakshatra = c.Panchang.Nakshatra.Name
	if p, ok := c.Planet(model.Moon); ok {
		s.MoonSign = p.SignName
	}
	if p, ok := c.Planet(model.Sun); ok {
		s.SunSign = p.SignName
	}

	sum := 0.0
	for _, p := range c.Planets {
		s.Elements[ElementOf(p.Sign)]++
		s.Modalities[ModalityOf(p.Sign)]++
		switch model.CategoryOf(p.House) {
		case model.Kendra:
			s.KendraOccupants++
		case model.Trikona:
			s.TrikonaOccupants++
		}
		if p.Retrograde && !p.Name.IsNode() {
			s.Retrogrades++
		}
		sum += p.Strength
	}

	ranked := RankByStrength(c.Planets)
	if len(ranked) > 0 {
		s.MeanStrength = sum / float64(len(ranked))
		s.Strongest = ranked[0].Name
		s.Weakest = ranked[len(ranked)-1].Name
	}
	return s
}
