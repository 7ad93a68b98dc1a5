package analysis

import (
	"cmp"
	"slices"

	"github.com/nao1215/storestats/internal/dataset"
	"github.com/nao1215/storestats/internal/model"
)

// Efficiency derives the surplus and efficiency of a brand from its totals.
//
//	surplus    = max(0, stock - sold)
//	efficiency = sold / (sold + surplus), or 0 when sold + surplus <= 0
//
// Negative inputs are not clamped.
func Efficiency(sold, stock float64) (surplus, efficiency float64) {
	surplus = max(0, stock-sold)
	if denom := sold + surplus; denom > 0 {
		efficiency = sold / denom
	}
	return surplus, efficiency
}

// BrandEfficiency aggregates sold and stock quantities per brand and ranks
// the brands by efficiency descending. Ties are broken by units sold
// descending, then by brand.
func BrandEfficiency(brand, sold, stock *dataset.Column) []model.BrandAggregate {
	g := groupRows(brand)
	out := make([]model.BrandAggregate, 0, len(g.keys))
	for _, k := range g.keys {
		agg := model.BrandAggregate{
			Brand: k,
			Sold:  sum(sold, g.rows[k]),
			Stock: sum(stock, g.rows[k]),
		}
		agg.Surplus, agg.Efficiency = Efficiency(agg.Sold, agg.Stock)
		out = append(out, agg)
	}
	slices.SortFunc(out, func(a, b model.BrandAggregate) int {
		if c := cmp.Compare(b.Efficiency, a.Efficiency); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Sold, a.Sold); c != 0 {
			return c
		}
		return cmp.Compare(a.Brand, b.Brand)
	})
	return out
}
