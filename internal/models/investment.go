package models

import (
	"strings"
	"time"
)

// AssetClass is the category of an investment.
type AssetClass string

const (
	AssetClassStock          AssetClass = "Stock"
	AssetClassBond           AssetClass = "Bond"
	AssetClassETF            AssetClass = "ETF"
	AssetClassMutualFund     AssetClass = "Mutual Fund"
	AssetClassRealEstate     AssetClass = "Real Estate"
	AssetClassCommodity      AssetClass = "Commodity"
	AssetClassCryptocurrency AssetClass = "Cryptocurrency"
	AssetClassCash           AssetClass = "Cash"
	AssetClassDeposit        AssetClass = "Deposit"
	AssetClassPrivateEquity  AssetClass = "Private Equity"
	AssetClassHedgeFund      AssetClass = "Hedge Fund"
	AssetClassXAU            AssetClass = "XAU"
	AssetClassOther          AssetClass = "Other"
)

// AssetClasses lists every supported asset class in display order.
var AssetClasses = []AssetClass{
	AssetClassStock, AssetClassBond, AssetClassETF, AssetClassMutualFund,
	AssetClassRealEstate, AssetClassCommodity, AssetClassCryptocurrency,
	AssetClassCash, AssetClassDeposit, AssetClassPrivateEquity,
	AssetClassHedgeFund, AssetClassXAU, AssetClassOther,
}

// Valid reports whether a is one of the supported asset classes.
func (a AssetClass) Valid() bool {
	for _, c := range AssetClasses {
		if a == c {
			return true
		}
	}
	return false
}

// HasMaturity reports whether records of this class carry a maturity date and coupon.
func (a AssetClass) HasMaturity() bool {
	return a == AssetClassBond || a == AssetClassDeposit
}

// Investment is a single holding in the portfolio. Amounts are in the
// record's own currency.
type Investment struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency"`
	Country         string     `json:"country"`
	AssetClass      AssetClass `json:"assetClass"`
	DateAdded       time.Time  `json:"dateAdded"`
	TransactionDate *string    `json:"transactionDate,omitempty"`
	OriginalPrice   *float64   `json:"originalPrice,omitempty"`
	MaturityDate    *string    `json:"maturityDate,omitempty"`
	CouponRate      *float64   `json:"couponRate,omitempty"`
	Quantity        *float64   `json:"quantity,omitempty"`
	PricePerUnit    *float64   `json:"pricePerUnit,omitempty"`
}

// Normalize applies the construction rules every stored record obeys:
// amount follows quantity*pricePerUnit when both are set, maturity fields
// only survive on Bond and Deposit records, and the currency code is upper case.
func (inv *Investment) Normalize() {
	inv.Name = strings.TrimSpace(inv.Name)
	inv.Country = strings.TrimSpace(inv.Country)
	inv.Currency = strings.ToUpper(strings.TrimSpace(inv.Currency))

	if inv.Quantity != nil && inv.PricePerUnit != nil {
		inv.Amount = *inv.Quantity * *inv.PricePerUnit
	}

	if !inv.AssetClass.HasMaturity() {
		inv.MaturityDate = nil
		inv.CouponRate = nil
	}
}

// CurrentValue is quantity*pricePerUnit when both are known, otherwise amount.
func (inv *Investment) CurrentValue() float64 {
	if inv.Quantity != nil && inv.PricePerUnit != nil {
		return *inv.Quantity * *inv.PricePerUnit
	}
	return inv.Amount
}

// Document is the persisted shape of the whole record store.
type Document struct {
	Investments []Investment `json:"investments"`
}
