package pricing

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const goldAPIBaseURL = "https://www.goldapi.io/api/XAU/USD"

// goldAPIResponse accepts both the current field names and the older
// *_usd variants.
type goldAPIResponse struct {
	Price         *float64 `json:"price"`
	PriceUSD      *float64 `json:"price_usd"`
	Change        *float64 `json:"ch"`
	ChangeUSD     *float64 `json:"ch_usd"`
	ChangePct     *float64 `json:"chp"`
	ChangePctUSD  *float64 `json:"ch_usd_percent"`
	TimestampUnix int64    `json:"timestamp"`
}

// GoldAPIProvider quotes spot gold in USD from goldapi.io.
type GoldAPIProvider struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string // overridable for tests
}

// NewGoldAPIProvider creates a new Gold API price provider.
func NewGoldAPIProvider(httpClient *http.Client, apiKey string) *GoldAPIProvider {
	return &GoldAPIProvider{httpClient: httpClient, apiKey: apiKey, baseURL: goldAPIBaseURL}
}

// Name returns the provider's display name.
func (p *GoldAPIProvider) Name() string { return "Gold API" }

// Supports returns true for Gold only.
func (p *GoldAPIProvider) Supports(assetType AssetType) bool {
	return assetType == AssetGold
}

// FetchPrice fetches XAU/USD. The symbol is ignored.
func (p *GoldAPIProvider) FetchPrice(ctx context.Context, _ string) (*PriceData, error) {
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	header := http.Header{}
	header.Set("x-access-token", p.apiKey)
	header.Set("Content-Type", "application/json")

	var body goldAPIResponse
	if err := getJSON(ctx, p.httpClient, p.baseURL, header, &body); err != nil {
		return nil, err
	}

	price := firstOf(body.Price, body.PriceUSD)
	if price == nil {
		return nil, fmt.Errorf("no price in gold response")
	}

	updated := time.Now().UTC()
	if body.TimestampUnix > 0 {
		updated = time.Unix(body.TimestampUnix, 0).UTC()
	}

	return &PriceData{
		Symbol:           "XAU",
		Price:            *price,
		Currency:         "USD",
		LastUpdated:      updated.Format(time.RFC3339),
		Change24h:        firstOf(body.Change, body.ChangeUSD),
		ChangePercent24h: firstOf(body.ChangePct, body.ChangePctUSD),
	}, nil
}

func firstOf(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
