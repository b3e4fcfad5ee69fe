// Package portfolio computes dashboard analytics over a snapshot of
// investment records. Every function is pure: it takes the records and a
// rate table and returns a fresh result.
package portfolio

import (
	"fmt"
	"sort"
	"strings"

	"finalloc/internal/currency"
	"finalloc/internal/models"
)

// DisplayCurrency selects how aggregate values are expressed.
type DisplayCurrency string

const (
	// DisplayOriginal sums amounts in their own (possibly mixed) currencies.
	DisplayOriginal DisplayCurrency = "original"
	// DisplayUSD converts each amount to USD before summing.
	DisplayUSD DisplayCurrency = "USD"
)

// ParseDisplayCurrency accepts "original" or "USD" (any case). Empty means original.
func ParseDisplayCurrency(s string) (DisplayCurrency, error) {
	switch {
	case s == "", strings.EqualFold(s, string(DisplayOriginal)):
		return DisplayOriginal, nil
	case strings.EqualFold(s, string(DisplayUSD)):
		return DisplayUSD, nil
	}
	return "", fmt.Errorf("invalid display currency %q: must be original or USD", s)
}

// Filter narrows the record set. An empty value or "all" leaves that
// dimension unconstrained. The selections always apply; DisplayCurrency only
// changes how amounts are converted.
type Filter struct {
	DisplayCurrency DisplayCurrency `json:"displayCurrency"`
	Currency        string          `json:"currency,omitempty"`
	Country         string          `json:"country,omitempty"`
	AssetClass      string          `json:"assetClass,omitempty"`
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, "all")
}

// CurrencySelected reports whether a single currency is selected.
func (f Filter) CurrencySelected() bool { return !isAll(f.Currency) }

// CountrySelected reports whether a single country is selected.
func (f Filter) CountrySelected() bool { return !isAll(f.Country) }

// USD reports whether values are shown converted to USD.
func (f Filter) USD() bool { return f.DisplayCurrency == DisplayUSD }

// Matches reports whether inv is in the working subset.
func (f Filter) Matches(inv models.Investment) bool {
	if f.CurrencySelected() && !strings.EqualFold(inv.Currency, strings.TrimSpace(f.Currency)) {
		return false
	}
	if f.CountrySelected() && inv.Country != strings.TrimSpace(f.Country) {
		return false
	}
	if !isAll(f.AssetClass) && string(inv.AssetClass) != strings.TrimSpace(f.AssetClass) {
		return false
	}
	return true
}

// Apply returns the working subset in input order.
func (f Filter) Apply(records []models.Investment) []models.Investment {
	out := make([]models.Investment, 0, len(records))
	for _, inv := range records {
		if f.Matches(inv) {
			out = append(out, inv)
		}
	}
	return out
}

// value is amount expressed in the filter's display mode.
func (f Filter) value(amount float64, code string, table currency.Table) float64 {
	if f.USD() {
		return table.ToUSD(amount, code)
	}
	return amount
}

// Options are the distinct values a dashboard offers in its filter dropdowns.
type Options struct {
	Currencies   []string `json:"currencies"`
	Countries    []string `json:"countries"`
	AssetClasses []string `json:"assetClasses"`
}

// FilterOptions lists the sorted distinct currencies, countries, and asset
// classes across records.
func FilterOptions(records []models.Investment) Options {
	var currencies, countries, classes distinct
	for _, inv := range records {
		currencies.add(inv.Currency)
		countries.add(inv.Country)
		classes.add(string(inv.AssetClass))
	}
	return Options{
		Currencies:   currencies.sorted(),
		Countries:    countries.sorted(),
		AssetClasses: classes.sorted(),
	}
}

type distinct struct {
	seen   map[string]bool
	values []string
}

func (d *distinct) add(v string) {
	if d.seen == nil {
		d.seen = make(map[string]bool)
	}
	if d.seen[v] {
		return
	}
	d.seen[v] = true
	d.values = append(d.values, v)
}

func (d *distinct) sorted() []string {
	out := append([]string{}, d.values...)
	sort.Strings(out)
	return out
}
