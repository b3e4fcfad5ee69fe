package services

import (
	"context"
	"sync"

	"finalloc/internal/currency"
	"finalloc/internal/models"
	"finalloc/internal/pricing"
)

type auditEntry struct {
	action     string
	resourceID string
	changes    map[string]any
}

type mockAudit struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (m *mockAudit) Log(action, _, resourceID, _ string, changes map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, auditEntry{action: action, resourceID: resourceID, changes: changes})
}

type mockStore struct {
	listFn   func(ctx context.Context) ([]models.Investment, error)
	createFn func(ctx context.Context, inv models.Investment) error
	updateFn func(ctx context.Context, inv models.Investment) error
	deleteFn func(ctx context.Context, id string) (int, error)
}

func (m *mockStore) List(ctx context.Context) ([]models.Investment, error) { return m.listFn(ctx) }
func (m *mockStore) Create(ctx context.Context, inv models.Investment) error {
	return m.createFn(ctx, inv)
}
func (m *mockStore) Update(ctx context.Context, inv models.Investment) error {
	return m.updateFn(ctx, inv)
}
func (m *mockStore) Delete(ctx context.Context, id string) (int, error) { return m.deleteFn(ctx, id) }
func (m *mockStore) Driver() string                                     { return "mock" }

type mockInvestments struct {
	listFn func(ctx context.Context) (*ListResult, error)
}

func (m *mockInvestments) ListInvestments(ctx context.Context) (*ListResult, error) {
	return m.listFn(ctx)
}
func (m *mockInvestments) CreateInvestment(context.Context, models.Investment, string) (*models.Investment, error) {
	panic("not used")
}
func (m *mockInvestments) UpdateInvestment(context.Context, string, models.Investment, string) (*models.Investment, error) {
	panic("not used")
}
func (m *mockInvestments) DeleteInvestment(context.Context, string, string) (int, error) {
	panic("not used")
}

func staticInvestments(records ...models.Investment) *mockInvestments {
	return &mockInvestments{listFn: func(context.Context) (*ListResult, error) {
		return &ListResult{Investments: records, Status: StatusOK}, nil
	}}
}

type mockPrices struct {
	mu         sync.Mutex
	lookups    []pricing.Asset
	batches    [][]pricing.Asset
	getPriceFn func(symbol string, assetType pricing.AssetType) (*pricing.PriceData, bool)
}

func (m *mockPrices) GetPrice(_ context.Context, symbol string, assetType pricing.AssetType) (*pricing.PriceData, bool) {
	m.mu.Lock()
	m.lookups = append(m.lookups, pricing.Asset{Symbol: symbol, Type: assetType})
	m.mu.Unlock()
	return m.getPriceFn(symbol, assetType)
}

func (m *mockPrices) GetMultiplePrices(_ context.Context, assets []pricing.Asset) []pricing.PriceData {
	m.mu.Lock()
	m.batches = append(m.batches, assets)
	m.mu.Unlock()
	return nil
}

func (m *mockPrices) PopularETFPrices(context.Context) []pricing.PriceData    { return nil }
func (m *mockPrices) PopularCryptoPrices(context.Context) []pricing.PriceData { return nil }
func (m *mockPrices) GoldPrice(context.Context) (*pricing.PriceData, bool)    { return nil, false }
func (m *mockPrices) ClearCache()                                             {}
func (m *mockPrices) CacheStatus() pricing.CacheStatus                        { return pricing.CacheStatus{} }

func defaultRates() RateServicer {
	return currency.NewConverter(currency.DefaultTable())
}
