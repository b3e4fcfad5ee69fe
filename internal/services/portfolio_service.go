package services

import (
	"context"
	"time"

	"finalloc/internal/models"
	"finalloc/internal/portfolio"
	"finalloc/internal/pricing"
)

// portfolioService runs the analytics over the current record set and rate table.
type portfolioService struct {
	investments InvestmentServicer
	rates       RateServicer
	prices      PriceServicer
	now         func() time.Time
}

// NewPortfolioService creates a new PortfolioServicer. prices may be nil,
// in which case growth never uses live prices.
func NewPortfolioService(investments InvestmentServicer, rates RateServicer, prices PriceServicer) PortfolioServicer {
	return &portfolioService{
		investments: investments,
		rates:       rates,
		prices:      prices,
		now:         time.Now,
	}
}

func (s *portfolioService) records(ctx context.Context) ([]models.Investment, error) {
	result, err := s.investments.ListInvestments(ctx)
	if err != nil {
		return nil, err
	}
	return result.Investments, nil
}

// Summary returns the headline figures.
func (s *portfolioService) Summary(ctx context.Context, f portfolio.Filter) (*portfolio.Summary, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	summary := portfolio.Summarize(records, f, s.rates.Snapshot())
	return &summary, nil
}

// Allocation returns the chart entries grouped by groupBy.
func (s *portfolioService) Allocation(ctx context.Context, f portfolio.Filter, groupBy portfolio.GroupBy) ([]portfolio.AllocationEntry, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	return portfolio.Allocate(records, f, groupBy, s.rates.Snapshot()), nil
}

// Breakdown returns the (country, currency, asset class) table.
func (s *portfolioService) Breakdown(ctx context.Context, f portfolio.Filter) ([]portfolio.BreakdownRow, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	return portfolio.Breakdown(records, f, s.rates.Snapshot()), nil
}

// Maturity projects Bond and Deposit earnings as of now.
func (s *portfolioService) Maturity(ctx context.Context, f portfolio.Filter) (*portfolio.MaturityReport, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	report := portfolio.ProjectMaturity(records, f, s.now(), s.rates.Snapshot())
	return &report, nil
}

// Growth returns per-record growth. With live, records holding a quantity
// are revalued at the current market price when one is available; the
// record name is used as the ticker.
func (s *portfolioService) Growth(ctx context.Context, f portfolio.Filter, live bool) ([]portfolio.GrowthRow, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	if !live || s.prices == nil {
		return portfolio.GrowthList(records, f, nil), nil
	}

	// Warm the cache in one batch so providers are queried in parallel.
	var assets []pricing.Asset
	seen := make(map[pricing.Asset]bool)
	for _, inv := range f.Apply(records) {
		if a, ok := liveAsset(inv); ok && !seen[a] {
			seen[a] = true
			assets = append(assets, a)
		}
	}
	s.prices.GetMultiplePrices(ctx, assets)

	return portfolio.GrowthList(records, f, func(inv models.Investment) *float64 {
		a, ok := liveAsset(inv)
		if !ok {
			return nil
		}
		data, ok := s.prices.GetPrice(ctx, a.Symbol, a.Type)
		if !ok {
			return nil
		}
		return &data.Price
	}), nil
}

// FilterOptions lists the dropdown values over every record.
func (s *portfolioService) FilterOptions(ctx context.Context) (*portfolio.Options, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	opts := portfolio.FilterOptions(records)
	return &opts, nil
}

// liveAsset maps a record to the price lookup that can revalue it.
func liveAsset(inv models.Investment) (pricing.Asset, bool) {
	if inv.Quantity == nil || inv.Name == "" {
		return pricing.Asset{}, false
	}
	var t pricing.AssetType
	switch inv.AssetClass {
	case models.AssetClassETF:
		t = pricing.AssetETF
	case models.AssetClassStock:
		t = pricing.AssetStock
	case models.AssetClassCryptocurrency:
		t = pricing.AssetCryptocurrency
	case models.AssetClassXAU:
		t = pricing.AssetGold
	default:
		return pricing.Asset{}, false
	}
	return pricing.Asset{Symbol: inv.Name, Type: t}, true
}
