package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedic-chart/internal/chart"
	"vedic-chart/internal/model"
)

func TestElementAndModality(t *testing.T) {
	assert.Equal(t, "Fire", ElementOf(1))
	assert.Equal(t, "Earth", ElementOf(2))
	assert.Equal(t, "Air", ElementOf(7))
	assert.Equal(t, "Water", ElementOf(12))
	assert.Equal(t, "Movable", ModalityOf(1))
	assert.Equal(t, "Fixed", ModalityOf(5))
	assert.Equal(t, "Dual", ModalityOf(12))
}

func TestRankByStrength(t *testing.T) {
	planets := []model.Planet{
		{Name: model.Sun, Strength: 65},
		{Name: model.Moon, Strength: 60},
		{Name: model.Jupiter, Strength: 85},
		{Name: model.Mars, Strength: 60},
	}
	ranked := RankByStrength(planets)
	require.Len(t, ranked, 4)

	names := []model.Body{ranked[0].Name, ranked[1].Name, ranked[2].Name, ranked[3].Name}
	assert.Equal(t, []model.Body{model.Jupiter, model.Sun, model.Moon, model.Mars}, names)
	for i, r := range ranked {
		assert.Equal(t, i+1, r.Rank)
	}
	// Input order is untouched.
	assert.Equal(t, model.Sun, planets[0].Name)
}

func TestSummarize(t *testing.T) {
	c, err := chart.New().Build(model.BirthInput{
		Name: "J2000", Date: "2000-01-01", Time: "12:00", UTCOffset: "Z",
		Latitude: 28.6139, Longitude: 77.2090,
	})
	require.NoError(t, err)

	s := Summarize(c)
	assert.Equal(t, "J2000", s.Name)
	assert.Equal(t, "Gemini", s.Lagna)
	assert.Equal(t, "Libra", s.MoonSign)
	assert.Equal(t, "Sagittarius", s.SunSign)
	assert.Equal(t, "Swati", s.Nakshatra)

	// Sun and Mercury in 7, Jupiter in 10; Moon in 5, Mars in 9.
	assert.Equal(t, 3, s.KendraOccupants)
	assert.Equal(t, 2, s.TrikonaOccupants)
	assert.Equal(t, 1, s.Retrogrades) // Saturn; nodes are not counted

	total := 0
	for _, n := range s.Elements {
		total += n
	}
	assert.Equal(t, 9, total)
	assert.Equal(t, model.Jupiter, s.Strongest)
	assert.Equal(t, model.Saturn, s.Weakest)
	assert.InDelta(t, (65+60+60+65+85+40+25+50+40)/9.0, s.MeanStrength, 1e-9)
}

func TestSummarizeNil(t *testing.T) {
	s := Summarize(nil)
	assert.Empty(t, s.Name)
	assert.NotNil(t, s.Elements)
}
