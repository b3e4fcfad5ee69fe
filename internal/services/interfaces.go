package services

import (
	"context"

	"finalloc/internal/currency"
	"finalloc/internal/models"
	"finalloc/internal/portfolio"
	"finalloc/internal/pricing"
)

// StoreStatus tags a list result with the state of the record store.
type StoreStatus string

const (
	StatusOK         StoreStatus = "ok"
	StatusEmpty      StoreStatus = "empty"
	StatusUnreadable StoreStatus = "unreadable"
)

// ListResult is the investment collection plus the store state it was read in.
// Investments is never nil.
type ListResult struct {
	Investments []models.Investment
	Status      StoreStatus
}

// InvestmentServicer defines the contract for investment CRUD.
type InvestmentServicer interface {
	ListInvestments(ctx context.Context) (*ListResult, error)
	CreateInvestment(ctx context.Context, inv models.Investment, ipAddress string) (*models.Investment, error)
	UpdateInvestment(ctx context.Context, id string, inv models.Investment, ipAddress string) (*models.Investment, error)
	DeleteInvestment(ctx context.Context, id, ipAddress string) (int, error)
}

// PortfolioServicer defines the contract for dashboard analytics.
type PortfolioServicer interface {
	Summary(ctx context.Context, f portfolio.Filter) (*portfolio.Summary, error)
	Allocation(ctx context.Context, f portfolio.Filter, groupBy portfolio.GroupBy) ([]portfolio.AllocationEntry, error)
	Breakdown(ctx context.Context, f portfolio.Filter) ([]portfolio.BreakdownRow, error)
	Maturity(ctx context.Context, f portfolio.Filter) (*portfolio.MaturityReport, error)
	Growth(ctx context.Context, f portfolio.Filter, live bool) ([]portfolio.GrowthRow, error)
	FilterOptions(ctx context.Context) (*portfolio.Options, error)
}

// PriceServicer defines the contract for live price lookup.
type PriceServicer interface {
	GetPrice(ctx context.Context, symbol string, assetType pricing.AssetType) (*pricing.PriceData, bool)
	GetMultiplePrices(ctx context.Context, assets []pricing.Asset) []pricing.PriceData
	PopularETFPrices(ctx context.Context) []pricing.PriceData
	PopularCryptoPrices(ctx context.Context) []pricing.PriceData
	GoldPrice(ctx context.Context) (*pricing.PriceData, bool)
	ClearCache()
	CacheStatus() pricing.CacheStatus
}

// RateServicer exposes the current currency table.
type RateServicer interface {
	Snapshot() currency.Table
	Info() currency.Info
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
