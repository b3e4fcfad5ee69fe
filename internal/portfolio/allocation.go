package portfolio

import (
	"fmt"

	"finalloc/internal/currency"
	"finalloc/internal/models"
)

// GroupBy is the allocation dimension.
type GroupBy string

const (
	GroupByAssetClass GroupBy = "assetClass"
	GroupByCountry    GroupBy = "country"
	GroupByCurrency   GroupBy = "currency"
)

// ParseGroupBy validates a groupBy parameter. Empty means assetClass.
func ParseGroupBy(s string) (GroupBy, error) {
	switch GroupBy(s) {
	case "":
		return GroupByAssetClass, nil
	case GroupByAssetClass, GroupByCountry, GroupByCurrency:
		return GroupBy(s), nil
	}
	return "", fmt.Errorf("invalid groupBy %q: must be assetClass, country, or currency", s)
}

// Palette is the chart color sequence; entries cycle through it.
var Palette = []string{
	"#3B82F6", "#EF4444", "#10B981", "#F59E0B", "#8B5CF6",
	"#06B6D4", "#84CC16", "#F97316", "#EC4899", "#6366F1",
}

// AllocationEntry is one slice of an allocation chart.
type AllocationEntry struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
	ColorIndex int     `json:"colorIndex"`
	Color      string  `json:"color"`
}

// Allocate buckets records matching f by groupBy. Entries come out in the
// order their bucket was first seen. In original display mode, when a
// country is selected but no currency is, asset class and country buckets
// are split per currency ("Stock (EUR)") since their amounts cannot be added.
func Allocate(records []models.Investment, f Filter, groupBy GroupBy, table currency.Table) []AllocationEntry {
	subset := f.Apply(records)
	composite := !f.USD() && !f.CurrencySelected() && f.CountrySelected() && groupBy != GroupByCurrency

	var order []string
	sums := make(map[string]float64)
	for _, inv := range subset {
		key := groupKey(inv, groupBy)
		if composite {
			key = fmt.Sprintf("%s (%s)", key, inv.Currency)
		}
		if _, ok := sums[key]; !ok {
			order = append(order, key)
		}
		sums[key] += f.value(inv.Amount, inv.Currency, table)
	}

	var total float64
	for _, key := range order {
		total += sums[key]
	}

	entries := make([]AllocationEntry, 0, len(order))
	for i, key := range order {
		pct := 0.0
		if total != 0 {
			pct = sums[key] / total * 100
		}
		entries = append(entries, AllocationEntry{
			Name:       key,
			Value:      sums[key],
			Percentage: pct,
			ColorIndex: i,
			Color:      Palette[i%len(Palette)],
		})
	}
	return entries
}

func groupKey(inv models.Investment, groupBy GroupBy) string {
	switch groupBy {
	case GroupByCountry:
		return inv.Country
	case GroupByCurrency:
		return inv.Currency
	default:
		return string(inv.AssetClass)
	}
}
