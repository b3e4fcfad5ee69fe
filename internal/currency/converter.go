package currency

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"finalloc/internal/logger"
)

// Rate table sources reported by Info.
const (
	SourceStatic = "static"
	SourceLive   = "live"
)

// RateFetcher looks up the current USD value of one unit of a currency.
type RateFetcher interface {
	FetchUSDRate(ctx context.Context, code string) (decimal.Decimal, error)
}

// Info describes the table currently in use.
type Info struct {
	Base        string             `json:"base"`
	Source      string             `json:"source"`
	RefreshedAt *time.Time         `json:"refreshedAt,omitempty"`
	Rates       map[string]float64 `json:"rates"`
}

// Converter holds the current rate table. Readers take a Snapshot and work
// on it without further locking.
type Converter struct {
	mu          sync.RWMutex
	table       Table
	source      string
	refreshedAt time.Time
}

// NewConverter starts from a static table.
func NewConverter(table Table) *Converter {
	return &Converter{table: table, source: SourceStatic}
}

// Snapshot returns the current table.
func (c *Converter) Snapshot() Table {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.table
}

// Info returns the current table with its provenance.
func (c *Converter) Info() Info {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info := Info{Base: USD, Source: c.source, Rates: c.table.Floats()}
	if !c.refreshedAt.IsZero() {
		at := c.refreshedAt
		info.RefreshedAt = &at
	}
	return info
}

// Refresh fetches a new rate for every known currency. A currency whose
// fetch fails keeps its previous rate. It returns an error only when no
// rate could be refreshed.
func (c *Converter) Refresh(ctx context.Context, fetcher RateFetcher) error {
	current := c.Snapshot()
	next := current
	refreshed := 0

	for _, code := range current.Codes() {
		if code == USD {
			continue
		}
		rate, err := fetcher.FetchUSDRate(ctx, code)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Get().Warnw("keeping previous exchange rate", "currency", code, "error", err)
			continue
		}
		next = next.With(code, rate)
		refreshed++
	}

	if refreshed == 0 {
		return fmt.Errorf("no exchange rates refreshed")
	}

	c.mu.Lock()
	c.table = next
	c.source = SourceLive
	c.refreshedAt = time.Now().UTC()
	c.mu.Unlock()

	logger.Get().Infow("exchange rates refreshed", "count", refreshed)
	return nil
}

// Run refreshes immediately and then every interval until ctx is done.
func (c *Converter) Run(ctx context.Context, fetcher RateFetcher, interval time.Duration) {
	if err := c.Refresh(ctx, fetcher); err != nil && ctx.Err() == nil {
		logger.Get().Warnw("exchange rate refresh failed", "error", err)
	}
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Refresh(ctx, fetcher); err != nil && ctx.Err() == nil {
				logger.Get().Warnw("exchange rate refresh failed", "error", err)
			}
		}
	}
}
