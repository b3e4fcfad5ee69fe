// Package store persists the investment collection.
package store

import (
	"context"

	"finalloc/internal/models"
)

// Store is the persistence contract shared by the file and SQL drivers.
// List returns records in insertion order. Update returns
// ErrInvestmentNotFound when no record has the id, and Delete removes every
// record with the id and reports how many were removed.
type Store interface {
	List(ctx context.Context) ([]models.Investment, error)
	Create(ctx context.Context, inv models.Investment) error
	Update(ctx context.Context, inv models.Investment) error
	Delete(ctx context.Context, id string) (int, error)
	Driver() string
}
