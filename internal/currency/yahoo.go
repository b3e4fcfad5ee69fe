package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

const (
	yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	yahooUA       = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"
)

// yahooChartResponse is the subset of the Yahoo Finance v8 chart response we read.
type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				Currency           string  `json:"currency"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// YahooRateSource fetches CODEUSD=X quotes from Yahoo Finance.
type YahooRateSource struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
}

// NewYahooRateSource creates a rate source using httpClient.
func NewYahooRateSource(httpClient *http.Client) *YahooRateSource {
	return &YahooRateSource{httpClient: httpClient, baseURL: yahooChartURL}
}

// FetchUSDRate implements RateFetcher.
func (y *YahooRateSource) FetchUSDRate(ctx context.Context, code string) (decimal.Decimal, error) {
	ticker := code + USD + "=X"
	url := y.baseURL + "/" + ticker + "?interval=1d&range=1d"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("building forex request: %w", err)
	}
	req.Header.Set("User-Agent", yahooUA)

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("forex http request for %s: %w", ticker, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("forex request for %s: unexpected status %d", ticker, resp.StatusCode)
	}

	var chartResp yahooChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chartResp); err != nil {
		return decimal.Zero, fmt.Errorf("decoding forex response for %s: %w", ticker, err)
	}

	if chartResp.Chart.Error != nil {
		return decimal.Zero, fmt.Errorf("forex chart error for %s: %s: %s", ticker, chartResp.Chart.Error.Code, chartResp.Chart.Error.Description)
	}
	if len(chartResp.Chart.Result) == 0 {
		return decimal.Zero, fmt.Errorf("no forex results for %s", ticker)
	}

	rate := chartResp.Chart.Result[0].Meta.RegularMarketPrice
	if rate <= 0 {
		return decimal.Zero, fmt.Errorf("invalid forex rate for %s: %f", ticker, rate)
	}
	return decimal.NewFromFloat(rate), nil
}
