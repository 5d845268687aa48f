package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vedic-chart/internal/model"
)

func TestDignityOf(t *testing.T) {
	cases := []struct {
		body model.Body
		sign int
		want model.Dignity
	}{
		{model.Sun, 1, model.Exalted},
		{model.Sun, 7, model.Debilitated},
		{model.Sun, 5, model.OwnSign},
		{model.Moon, 2, model.Exalted},
		{model.Moon, 8, model.Debilitated},
		{model.Moon, 4, model.OwnSign},
		{model.Mercury, 6, model.Exalted}, // exaltation wins over own sign
		{model.Mercury, 3, model.OwnSign},
		{model.Mercury, 12, model.Debilitated},
		{model.Jupiter, 12, model.OwnSign},
		{model.Saturn, 1, model.Debilitated},
		{model.Saturn, 11, model.OwnSign},
		{model.Venus, 3, model.Ordinary},
		{model.Rahu, 2, model.Exalted},
		{model.Ketu, 2, model.Debilitated},
		{model.Rahu, 5, model.Ordinary},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DignityOf(tc.body, tc.sign), "%s in %d", tc.body, tc.sign)
	}
}

func TestStrength(t *testing.T) {
	cases := []struct {
		name    string
		body    model.Body
		dignity model.Dignity
		house   int
		retro   bool
		want    float64
	}{
		{"baseline", model.Venus, model.Ordinary, 2, false, 50},
		{"exalted kendra", model.Sun, model.Exalted, 1, false, 95},
		{"exalted kendra dig bala", model.Sun, model.Exalted, 10, false, 100},
		{"own trikona", model.Jupiter, model.OwnSign, 9, false, 80},
		{"debilitated dusthana", model.Saturn, model.Debilitated, 8, false, 10},
		{"retrograde", model.Saturn, model.Debilitated, 11, true, 25},
		{"node retrograde ignored", model.Rahu, model.Ordinary, 2, true, 50},
		{"dig bala only", model.Moon, model.Ordinary, 4, false, 75},
		{"clamped high", model.Jupiter, model.Exalted, 1, true, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Strength(tc.body, tc.dignity, tc.house, tc.retro))
		})
	}
}

func TestStrengthBounds(t *testing.T) {
	for _, b := range model.Bodies {
		for sign := 1; sign <= 12; sign++ {
			d := DignityOf(b, sign)
			for house := 1; house <= 12; house++ {
				for _, retro := range []bool{false, true} {
					s := Strength(b, d, house, retro)
					assert.GreaterOrEqual(t, s, 0.0)
					assert.LessOrEqual(t, s, 100.0)
				}
			}
		}
	}
}
