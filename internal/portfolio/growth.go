package portfolio

import "finalloc/internal/models"

// Growth is the change between a record's cost basis and its current value.
type Growth struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// RecordGrowth returns nil when the record has no positive original price.
// A non-nil livePrice replaces pricePerUnit for records with a quantity.
func RecordGrowth(inv models.Investment, livePrice *float64) *Growth {
	if inv.OriginalPrice == nil || *inv.OriginalPrice <= 0 {
		return nil
	}
	original := *inv.OriginalPrice
	current, _ := currentValue(inv, livePrice)

	amount := current - original
	return &Growth{
		Amount:     amount,
		Percentage: amount / original * 100,
	}
}

// currentValue reports whether the live price was used.
func currentValue(inv models.Investment, livePrice *float64) (float64, bool) {
	if livePrice != nil && inv.Quantity != nil {
		return *inv.Quantity * *livePrice, true
	}
	return inv.CurrentValue(), false
}

// GrowthRow is one line of the growth list.
type GrowthRow struct {
	InvestmentID  string  `json:"investmentId"`
	Name          string  `json:"name"`
	Currency      string  `json:"currency"`
	CurrentValue  float64 `json:"currentValue"`
	Growth        *Growth `json:"growth"`
	LivePriceUsed bool    `json:"livePriceUsed"`
}

// GrowthList computes growth for every record matching f. livePrice may be
// nil; otherwise it returns the live unit price for a record, or nil.
func GrowthList(records []models.Investment, f Filter, livePrice func(models.Investment) *float64) []GrowthRow {
	subset := f.Apply(records)
	rows := make([]GrowthRow, 0, len(subset))
	for _, inv := range subset {
		var live *float64
		if livePrice != nil {
			live = livePrice(inv)
		}
		current, used := currentValue(inv, live)
		rows = append(rows, GrowthRow{
			InvestmentID:  inv.ID,
			Name:          inv.Name,
			Currency:      inv.Currency,
			CurrentValue:  current,
			Growth:        RecordGrowth(inv, live),
			LivePriceUsed: used,
		})
	}
	return rows
}
