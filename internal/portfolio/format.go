package portfolio

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"finalloc/internal/currency"
)

// plainFormatter renders a two-decimal amount without a currency symbol.
var plainFormatter = money.NewFormatter(2, ".", ",", "", "1")

// FormatValue renders a dashboard total for the filter's display mode:
// "$1,234.50" in USD mode, the selected currency's own format when exactly
// one currency is selected, and "1,234.50 (Mixed)" otherwise.
func FormatValue(value float64, f Filter) string {
	switch {
	case f.USD():
		return formatIn(value, currency.USD)
	case f.CurrencySelected():
		code := strings.ToUpper(strings.TrimSpace(f.Currency))
		if money.GetCurrency(code) == nil {
			return code + " " + plainFormatter.Format(minorUnits(value, 2))
		}
		return formatIn(value, code)
	default:
		return plainFormatter.Format(minorUnits(value, 2)) + " (Mixed)"
	}
}

func formatIn(value float64, code string) string {
	cur := money.GetCurrency(code)
	return cur.Formatter().Format(minorUnits(value, cur.Fraction))
}

func minorUnits(value float64, fraction int) int64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return decimal.NewFromFloat(value).Shift(int32(fraction)).Round(0).IntPart()
}
