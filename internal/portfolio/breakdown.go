package portfolio

import (
	"sort"

	"finalloc/internal/currency"
	"finalloc/internal/models"
)

// BreakdownRow aggregates records sharing a country, currency, and asset class.
type BreakdownRow struct {
	Country        string  `json:"country"`
	Currency       string  `json:"currency"`
	AssetClass     string  `json:"assetClass"`
	OriginalAmount float64 `json:"originalAmount"`
	USDAmount      float64 `json:"usdAmount"`
	Count          int     `json:"count"`
}

type breakdownKey struct {
	country, currency, assetClass string
}

// Breakdown groups records matching f by (country, currency, asset class),
// largest USD amount first.
func Breakdown(records []models.Investment, f Filter, table currency.Table) []BreakdownRow {
	index := make(map[breakdownKey]int)
	rows := []BreakdownRow{}

	for _, inv := range f.Apply(records) {
		key := breakdownKey{inv.Country, inv.Currency, string(inv.AssetClass)}
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, BreakdownRow{
				Country:    key.country,
				Currency:   key.currency,
				AssetClass: key.assetClass,
			})
		}
		rows[i].OriginalAmount += inv.Amount
		rows[i].USDAmount += table.ToUSD(inv.Amount, inv.Currency)
		rows[i].Count++
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].USDAmount > rows[b].USDAmount
	})
	return rows
}
