package chart

import "vedic-chart/internal/model"

// HouseOf counts whole signs from the Lagna: the Lagna sign is house 1.
func HouseOf(sign, lagna int) int {
	h := (sign - lagna + 1) % 12
	if h <= 0 {
		h += 12
	}
	return h
}

// SignOfHouse is the inverse of HouseOf for a fixed Lagna.
func SignOfHouse(house, lagna int) int {
	return (lagna+house-2)%12 + 1
}

// BuildHouses returns all twelve houses with their occupants in Bodies order.
func BuildHouses(lagna int, planets []model.Planet) []model.House {
	houses := make([]model.House, 12)
	for i := range houses {
		n := i + 1
		sign := SignOfHouse(n, lagna)
		houses[i] = model.House{
			Number:    n,
			Sign:      sign,
			SignName:  model.SignName(sign),
			Lord:      model.SignLord(sign),
			Occupants: []model.Body{},
			Category:  model.CategoryOf(n),
		}
	}
	for _, p := range planets {
		if p.House < 1 || p.House > 12 {
			continue
		}
		houses[p.House-1].Occupants = append(houses[p.House-1].Occupants, p.Name)
	}
	return houses
}
