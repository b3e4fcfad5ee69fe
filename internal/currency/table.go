// Package currency converts record amounts into USD using a table of rates.
package currency

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// USD is the base currency every rate is quoted against.
const USD = "USD"

// defaultRates is the value of one unit of each currency in USD.
var defaultRates = map[string]string{
	"USD": "1",
	"EUR": "0.85",
	"GBP": "0.73",
	"AMD": "0.0026",
	"AED": "0.27",
	"JPY": "0.007",
	"CAD": "0.75",
	"AUD": "0.68",
	"CHF": "0.92",
	"SEK": "0.095",
	"NOK": "0.095",
	"DKK": "0.13",
	"SGD": "0.74",
	"HKD": "0.13",
	"CNY": "0.14",
	"INR": "0.012",
	"BRL": "0.19",
	"MXN": "0.058",
	"ZAR": "0.055",
}

// Table maps currency codes to their USD value. A Table is never mutated
// after construction; With returns a modified copy.
type Table struct {
	rates map[string]decimal.Decimal
}

// DefaultTable returns the built-in static rates.
func DefaultTable() Table {
	rates := make(map[string]decimal.Decimal, len(defaultRates))
	for code, r := range defaultRates {
		rates[code] = decimal.RequireFromString(r)
	}
	return Table{rates: rates}
}

// Rate returns the USD value of one unit of code. Unknown codes convert at parity.
func (t Table) Rate(code string) decimal.Decimal {
	if r, ok := t.rates[strings.ToUpper(code)]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}

// ToUSD converts amount in code into USD.
func (t Table) ToUSD(amount float64, code string) float64 {
	v, _ := decimal.NewFromFloat(amount).Mul(t.Rate(code)).Float64()
	return v
}

// With returns a copy of t with code set to rate.
func (t Table) With(code string, rate decimal.Decimal) Table {
	next := Table{rates: make(map[string]decimal.Decimal, len(t.rates)+1)}
	for k, v := range t.rates {
		next.rates[k] = v
	}
	next.rates[strings.ToUpper(code)] = rate
	return next
}

// Codes returns the known currency codes, sorted.
func (t Table) Codes() []string {
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Floats returns the rates as float64 for JSON responses.
func (t Table) Floats() map[string]float64 {
	out := make(map[string]float64, len(t.rates))
	for code, r := range t.rates {
		out[code], _ = r.Float64()
	}
	return out
}
