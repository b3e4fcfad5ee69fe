package pricing

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"finalloc/internal/config"
	"finalloc/internal/logger"
)

// PopularETFs are the tickers quoted by PopularETFPrices.
var PopularETFs = []string{"VOO", "VTI", "VXUS", "QQQ", "SPY", "BND", "VT", "VEA", "VWO", "AGG"}

// PopularCryptos are the CoinGecko ids quoted by PopularCryptoPrices.
var PopularCryptos = []string{"bitcoin", "ethereum", "cardano", "binancecoin", "solana", "polkadot"}

// CacheStatus describes the price cache contents.
type CacheStatus struct {
	Size int      `json:"size"`
	Keys []string `json:"keys"`
}

// Options tunes a Service.
type Options struct {
	CacheTTL     time.Duration
	RequestDelay time.Duration
}

// Service dispatches lookups to providers behind a TTL cache. Network
// requests to the same provider are spaced at least RequestDelay apart.
type Service struct {
	providers []Provider
	limiters  []*rate.Limiter
	cache     *priceCache
	log       *zap.SugaredLogger
}

// NewService creates a Service over providers. The first provider that
// supports an asset type handles it.
func NewService(providers []Provider, opts Options) *Service {
	limiters := make([]*rate.Limiter, len(providers))
	for i := range providers {
		limit := rate.Inf
		if opts.RequestDelay > 0 {
			limit = rate.Every(opts.RequestDelay)
		}
		limiters[i] = rate.NewLimiter(limit, 1)
	}
	return &Service{
		providers: providers,
		limiters:  limiters,
		cache:     newPriceCache(opts.CacheTTL),
		log:       logger.Named("pricing"),
	}
}

// NewServiceFromConfig wires the Alpha Vantage, CoinGecko, and Gold API
// providers with the configured keys and timeouts.
func NewServiceFromConfig(cfg *config.Config) *Service {
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	return NewService([]Provider{
		NewAlphaVantageProvider(httpClient, cfg.AlphaVantageKey),
		NewCoinGeckoProvider(httpClient),
		NewGoldAPIProvider(httpClient, cfg.GoldAPIKey),
	}, Options{CacheTTL: cfg.PriceCacheTTL, RequestDelay: cfg.PriceRequestDelay})
}

func (s *Service) providerFor(assetType AssetType) int {
	for i, p := range s.providers {
		if p.Supports(assetType) {
			return i
		}
	}
	return -1
}

// GetPrice returns the quote for symbol, from cache when fresh. Failures are
// logged and reported as (nil, false).
func (s *Service) GetPrice(ctx context.Context, symbol string, assetType AssetType) (*PriceData, bool) {
	key := cacheKey(symbol, assetType)
	if data, ok := s.cache.get(key); ok {
		return data, true
	}

	i := s.providerFor(assetType)
	if i < 0 {
		s.log.Warnw("no provider supports asset type", "symbol", symbol, "asset_type", assetType)
		return nil, false
	}
	p := s.providers[i]

	if err := s.limiters[i].Wait(ctx); err != nil {
		s.log.Debugw("price request cancelled", "symbol", symbol, "provider", p.Name(), "error", err)
		return nil, false
	}

	data, err := p.FetchPrice(ctx, symbol)
	if err != nil {
		s.log.Warnw("failed to fetch price", "symbol", symbol, "provider", p.Name(), "error", err)
		return nil, false
	}

	s.cache.set(key, *data)
	return data, true
}

// GetMultiplePrices looks up every asset. Providers are queried in parallel
// and each provider's requests run in sequence. The result keeps input
// order and skips assets whose price is unavailable.
func (s *Service) GetMultiplePrices(ctx context.Context, assets []Asset) []PriceData {
	groups := make(map[int][]int) // provider index -> asset indexes
	for i, a := range assets {
		p := s.providerFor(a.Type)
		if p < 0 {
			s.log.Warnw("no provider supports asset type", "symbol", a.Symbol, "asset_type", a.Type)
			continue
		}
		groups[p] = append(groups[p], i)
	}

	found := make([]*PriceData, len(assets))
	var g errgroup.Group
	for _, idxs := range groups {
		g.Go(func() error {
			for _, i := range idxs {
				if data, ok := s.GetPrice(ctx, assets[i].Symbol, assets[i].Type); ok {
					found[i] = data
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	prices := make([]PriceData, 0, len(assets))
	for _, data := range found {
		if data != nil {
			prices = append(prices, *data)
		}
	}
	return prices
}

// PopularETFPrices quotes PopularETFs.
func (s *Service) PopularETFPrices(ctx context.Context) []PriceData {
	return s.GetMultiplePrices(ctx, assetsOf(PopularETFs, AssetETF))
}

// PopularCryptoPrices quotes PopularCryptos.
func (s *Service) PopularCryptoPrices(ctx context.Context) []PriceData {
	return s.GetMultiplePrices(ctx, assetsOf(PopularCryptos, AssetCryptocurrency))
}

// GoldPrice quotes XAU/USD.
func (s *Service) GoldPrice(ctx context.Context) (*PriceData, bool) {
	return s.GetPrice(ctx, "XAU", AssetGold)
}

// ClearCache drops every cached quote.
func (s *Service) ClearCache() {
	s.cache.clear()
}

// CacheStatus lists the cached keys.
func (s *Service) CacheStatus() CacheStatus {
	keys := s.cache.keys()
	return CacheStatus{Size: len(keys), Keys: keys}
}

func assetsOf(symbols []string, assetType AssetType) []Asset {
	assets := make([]Asset, len(symbols))
	for i, sym := range symbols {
		assets[i] = Asset{Symbol: sym, Type: assetType}
	}
	return assets
}
