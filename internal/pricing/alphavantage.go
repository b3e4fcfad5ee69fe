package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const alphaVantageBaseURL = "https://www.alphavantage.co/query"

// alphaVantageResponse is the GLOBAL_QUOTE payload. Every field is a string.
type alphaVantageResponse struct {
	GlobalQuote struct {
		Symbol           string `json:"01. symbol"`
		Price            string `json:"05. price"`
		LatestTradingDay string `json:"07. latest trading day"`
		Change           string `json:"09. change"`
		ChangePercent    string `json:"10. change percent"`
	} `json:"Global Quote"`
}

// AlphaVantageProvider quotes stocks and ETFs from Alpha Vantage.
type AlphaVantageProvider struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string // overridable for tests
}

// NewAlphaVantageProvider creates a new Alpha Vantage price provider.
func NewAlphaVantageProvider(httpClient *http.Client, apiKey string) *AlphaVantageProvider {
	return &AlphaVantageProvider{httpClient: httpClient, apiKey: apiKey, baseURL: alphaVantageBaseURL}
}

// Name returns the provider's display name.
func (p *AlphaVantageProvider) Name() string { return "Alpha Vantage" }

// Supports returns true for ETF and Stock.
func (p *AlphaVantageProvider) Supports(assetType AssetType) bool {
	return assetType == AssetETF || assetType == AssetStock
}

// FetchPrice fetches a GLOBAL_QUOTE for symbol.
func (p *AlphaVantageProvider) FetchPrice(ctx context.Context, symbol string) (*PriceData, error) {
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", symbol)
	q.Set("apikey", p.apiKey)

	var body alphaVantageResponse
	if err := getJSON(ctx, p.httpClient, p.baseURL+"?"+q.Encode(), nil, &body); err != nil {
		return nil, err
	}

	quote := body.GlobalQuote
	if quote.Symbol == "" || quote.Price == "" {
		return nil, fmt.Errorf("no quote for %s", symbol)
	}
	price, err := strconv.ParseFloat(quote.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing price %q: %w", quote.Price, err)
	}

	data := &PriceData{
		Symbol:      quote.Symbol,
		Price:       price,
		Currency:    "USD",
		LastUpdated: quote.LatestTradingDay,
	}
	if v, err := strconv.ParseFloat(quote.Change, 64); err == nil {
		data.Change24h = float(v)
	}
	if v, err := strconv.ParseFloat(strings.TrimSuffix(quote.ChangePercent, "%"), 64); err == nil {
		data.ChangePercent24h = float(v)
	}
	return data, nil
}

// getJSON performs a GET and decodes a 200 response into out.
func getJSON(ctx context.Context, client *http.Client, url string, header http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
