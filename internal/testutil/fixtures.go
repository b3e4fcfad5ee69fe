package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"finalloc/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// String returns a pointer to s.
func String(s string) *string { return &s }

// NewInvestment builds a normalized record with a unique id.
func NewInvestment(name string, class models.AssetClass, currency string, amount float64) models.Investment {
	inv := models.Investment{
		ID:         fmt.Sprintf("inv-%d", nextID()),
		Name:       name,
		Amount:     amount,
		Currency:   currency,
		Country:    "USA",
		AssetClass: class,
		DateAdded:  time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
	}
	inv.Normalize()
	return inv
}

// NewBond builds a Bond maturing on maturity (YYYY-MM-DD) with the given coupon.
func NewBond(amount, coupon float64, currency, maturity string) models.Investment {
	inv := NewInvestment("Treasury", models.AssetClassBond, currency, amount)
	inv.CouponRate = Float(coupon)
	inv.MaturityDate = String(maturity)
	return inv
}
