package analysis

import (
	"sort"

	"vedic-chart/internal/model"
)

type RankedPlanet struct {
	model.Planet
	Rank int
}

// RankByStrength sorts planets descending by Strength. Ties keep chart order.
func RankByStrength(planets []model.Planet) []RankedPlanet {
	out := make([]RankedPlanet, 0, len(planets))
	for _, p := range planets {
		out = append(out, RankedPlanet{Planet: p})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Strength > out[j].Strength
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
