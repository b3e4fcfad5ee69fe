// Package pricing looks up live market prices from external data sources.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned by providers whose API key is missing.
var ErrNotConfigured = errors.New("provider API key not configured")

// ErrUnsupportedAssetType is returned when no provider handles an asset type.
var ErrUnsupportedAssetType = errors.New("unsupported asset type")

// PriceData is a single quote as served to the dashboard.
type PriceData struct {
	Symbol           string   `json:"symbol"`
	Price            float64  `json:"price"`
	Currency         string   `json:"currency"`
	LastUpdated      string   `json:"lastUpdated"`
	Change24h        *float64 `json:"change24h,omitempty"`
	ChangePercent24h *float64 `json:"changePercent24h,omitempty"`
}

// AssetType selects the provider used for a lookup.
type AssetType string

const (
	AssetETF            AssetType = "ETF"
	AssetStock          AssetType = "Stock"
	AssetCryptocurrency AssetType = "Cryptocurrency"
	AssetGold           AssetType = "Gold"
)

// ParseAssetType matches s case-insensitively. XAU is an alias of Gold.
func ParseAssetType(s string) (AssetType, error) {
	s = strings.TrimSpace(s)
	for _, t := range []AssetType{AssetETF, AssetStock, AssetCryptocurrency, AssetGold} {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	if strings.EqualFold(s, "XAU") {
		return AssetGold, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAssetType, s)
}

// Asset is one entry of a batch lookup.
type Asset struct {
	Symbol string    `json:"symbol" binding:"required"`
	Type   AssetType `json:"type" binding:"required"`
}

// Provider fetches current market prices for the asset types it supports.
type Provider interface {
	// Name returns the provider's display name (e.g., "CoinGecko").
	Name() string

	// Supports returns true if this provider can quote the given asset type.
	Supports(assetType AssetType) bool

	// FetchPrice fetches the current quote for symbol.
	FetchPrice(ctx context.Context, symbol string) (*PriceData, error)
}

func float(v float64) *float64 { return &v }
