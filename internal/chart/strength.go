package chart

import "vedic-chart/internal/model"

// Exaltation signs; debilitation is the opposite sign.
var exaltation = map[model.Body]int{
	model.Sun:     1,
	model.Moon:    2,
	model.Mars:    10,
	model.Mercury: 6,
	model.Jupiter: 4,
	model.Venus:   12,
	model.Saturn:  7,
	model.Rahu:    2,
	model.Ketu:    8,
}

// Houses where a planet gains directional strength (Dig Bala).
var digBala = map[model.Body]int{
	model.Jupiter: 1,
	model.Mercury: 1,
	model.Moon:    4,
	model.Venus:   4,
	model.Saturn:  7,
	model.Sun:     10,
	model.Mars:    10,
}

const (
	baseStrength       = 50.0
	exaltedBonus       = 30.0
	ownSignBonus       = 20.0
	debilitatedPenalty = -30.0
	kendraBonus        = 15.0
	trikonaBonus       = 10.0
	dusthanaPenalty    = -10.0
	digBalaBonus       = 10.0
	retrogradeBonus    = 5.0
)

// DignityOf classifies b in sign. Exaltation takes precedence over own sign.
func DignityOf(b model.Body, sign int) model.Dignity {
	ex, ok := exaltation[b]
	switch {
	case ok && sign == ex:
		return model.Exalted
	case ok && sign == (ex+5)%12+1:
		return model.Debilitated
	case model.SignLord(sign) == b:
		return model.OwnSign
	default:
		return model.Ordinary
	}
}

// Strength is a deterministic 0..100 score standing in for Shadbala:
// dignity, house category, Dig Bala and retrograde motion (non-nodes only).
func Strength(b model.Body, d model.Dignity, house int, retro bool) float64 {
	s := baseStrength
	switch d {
	case model.Exalted:
		s += exaltedBonus
	case model.OwnSign:
		s += ownSignBonus
	case model.Debilitated:
		s += debilitatedPenalty
	}
	switch {
	case model.CategoryOf(house) == model.Kendra:
		s += kendraBonus
	case model.CategoryOf(house) == model.Trikona:
		s += trikonaBonus
	case house == 6 || house == 8 || house == 12:
		s += dusthanaPenalty
	}
	if digBala[b] == house {
		s += digBalaBonus
	}
	if retro && !b.IsNode() {
		s += retrogradeBonus
	}
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
