package portfolio

import (
	"finalloc/internal/currency"
	"finalloc/internal/models"
)

// Summary holds the headline figures for the working subset.
// TotalGrowth and AverageGrowth are nil when no record has a positive
// original price.
type Summary struct {
	TotalValue       float64         `json:"totalValue"`
	TotalInvestments int             `json:"totalInvestments"`
	Countries        []string        `json:"countries"`
	Currencies       []string        `json:"currencies"`
	AssetClasses     []string        `json:"assetClasses"`
	TotalGrowth      *float64        `json:"totalGrowth"`
	AverageGrowth    *float64        `json:"averageGrowth"`
	DisplayCurrency  DisplayCurrency `json:"displayCurrency"`
	Display          string          `json:"display"`
}

// Summarize computes the summary of records matching f.
func Summarize(records []models.Investment, f Filter, table currency.Table) Summary {
	subset := f.Apply(records)

	var total, original, current float64
	withGrowth := 0
	for _, inv := range subset {
		total += f.value(inv.Amount, inv.Currency, table)

		if inv.OriginalPrice != nil && *inv.OriginalPrice > 0 {
			original += f.value(*inv.OriginalPrice, inv.Currency, table)
			current += f.value(inv.CurrentValue(), inv.Currency, table)
			withGrowth++
		}
	}

	opts := FilterOptions(subset)
	s := Summary{
		TotalValue:       total,
		TotalInvestments: len(subset),
		Countries:        opts.Countries,
		Currencies:       opts.Currencies,
		AssetClasses:     opts.AssetClasses,
		DisplayCurrency:  displayOf(f),
		Display:          FormatValue(total, f),
	}

	if withGrowth > 0 && original > 0 {
		growth := current - original
		avg := growth / original * 100
		s.TotalGrowth = &growth
		s.AverageGrowth = &avg
	}
	return s
}

func displayOf(f Filter) DisplayCurrency {
	if f.USD() {
		return DisplayUSD
	}
	return DisplayOriginal
}
