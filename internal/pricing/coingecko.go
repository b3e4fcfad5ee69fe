package pricing

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const coinGeckoBaseURL = "https://api.coingecko.com/api/v3/simple/price"

// coinGeckoIDs maps common ticker symbols to CoinGecko coin ids.
var coinGeckoIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"ADA":  "cardano",
	"BNB":  "binancecoin",
	"SOL":  "solana",
	"DOT":  "polkadot",
	"DOGE": "dogecoin",
	"XRP":  "ripple",
	"LTC":  "litecoin",
	"BCH":  "bitcoin-cash",
}

// LookupCoinGeckoID returns the CoinGecko id for symbol. Unknown symbols are
// assumed to already be ids and are returned lower-cased.
func LookupCoinGeckoID(symbol string) string {
	if id, ok := coinGeckoIDs[strings.ToUpper(symbol)]; ok {
		return id
	}
	return strings.ToLower(symbol)
}

type coinGeckoQuote struct {
	USD          *float64 `json:"usd"`
	USD24hChange *float64 `json:"usd_24h_change"`
}

// CoinGeckoProvider fetches prices from CoinGecko for cryptocurrencies.
type CoinGeckoProvider struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
}

// NewCoinGeckoProvider creates a new CoinGecko price provider.
func NewCoinGeckoProvider(httpClient *http.Client) *CoinGeckoProvider {
	return &CoinGeckoProvider{httpClient: httpClient, baseURL: coinGeckoBaseURL}
}

// Name returns the provider's display name.
func (p *CoinGeckoProvider) Name() string { return "CoinGecko" }

// Supports returns true for Cryptocurrency only.
func (p *CoinGeckoProvider) Supports(assetType AssetType) bool {
	return assetType == AssetCryptocurrency
}

// FetchPrice fetches the USD price and 24h change for symbol.
func (p *CoinGeckoProvider) FetchPrice(ctx context.Context, symbol string) (*PriceData, error) {
	id := LookupCoinGeckoID(symbol)

	q := url.Values{}
	q.Set("ids", id)
	q.Set("vs_currencies", "usd")
	q.Set("include_24hr_change", "true")

	var body map[string]coinGeckoQuote
	if err := getJSON(ctx, p.httpClient, p.baseURL+"?"+q.Encode(), nil, &body); err != nil {
		return nil, err
	}

	quote, ok := body[id]
	if !ok || quote.USD == nil {
		return nil, fmt.Errorf("coin %s not found in response", id)
	}

	return &PriceData{
		Symbol:           strings.ToUpper(symbol),
		Price:            *quote.USD,
		Currency:         "USD",
		LastUpdated:      time.Now().UTC().Format(time.RFC3339),
		ChangePercent24h: quote.USD24hChange,
	}, nil
}
