package thali

import (
	"math"

	"github.com/Gobd/desikit"
)

// Stats summarizes a menu.
type Stats struct {
	TotalThalis int      `json:"totalThalis"`
	VegCount    int      `json:"vegCount"`
	NonVegCount int      `json:"nonVegCount"`
	AvgPrice    string   `json:"avgPrice"` // two decimals
	Cheapest    float64  `json:"cheapest"`
	Costliest   float64  `json:"costliest"`
	Names       []string `json:"names"`
}

// GetStats counts veg and non-veg thalis, averages and bounds the prices, and
// lists the names in menu order. Records are not validated. It returns nil
// when records is not a menu or is empty.
func GetStats(records any) *Stats {
	menu, ok := toMenu(records)
	if !ok || len(menu) == 0 {
		return nil
	}

	s := &Stats{
		TotalThalis: len(menu),
		Cheapest:    math.Inf(1),
		Costliest:   math.Inf(-1),
		Names:       make([]string, 0, len(menu)),
	}
	var total float64
	for _, t := range menu {
		if t.IsVeg {
			s.VegCount++
		} else {
			s.NonVegCount++
		}
		total += t.Price
		s.Cheapest = math.Min(s.Cheapest, t.Price)
		s.Costliest = math.Max(s.Costliest, t.Price)
		s.Names = append(s.Names, t.Name)
	}
	s.AvgPrice = desikit.FormatFixed(total/float64(len(menu)), 2)
	return s
}
