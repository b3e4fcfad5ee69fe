package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	apperrors "finalloc/internal/errors"
	"finalloc/internal/logger"
	"finalloc/internal/models"
	"finalloc/internal/store"
	"finalloc/internal/uuid"
)

const resourceInvestment = "investment"

// investmentService handles investment-related business logic.
type investmentService struct {
	store    store.Store
	audit    AuditServicer
	failOpen bool
	now      func() time.Time
	log      *zap.SugaredLogger
}

// NewInvestmentService creates a new InvestmentServicer. With failOpen an
// unreadable store lists as empty with StatusUnreadable instead of failing.
func NewInvestmentService(st store.Store, audit AuditServicer, failOpen bool) InvestmentServicer {
	return &investmentService{
		store:    st,
		audit:    audit,
		failOpen: failOpen,
		now:      time.Now,
		log:      logger.Named("investments"),
	}
}

// ListInvestments returns every record in insertion order.
func (s *investmentService) ListInvestments(ctx context.Context) (*ListResult, error) {
	investments, err := s.store.List(ctx)
	if err != nil {
		if s.failOpen && errors.Is(err, apperrors.ErrStoreUnreadable) {
			s.log.Warnw("record store unreadable, serving empty list",
				"driver", s.store.Driver(),
				"error", err,
			)
			return &ListResult{Investments: []models.Investment{}, Status: StatusUnreadable}, nil
		}
		return nil, err
	}

	if len(investments) == 0 {
		return &ListResult{Investments: []models.Investment{}, Status: StatusEmpty}, nil
	}
	return &ListResult{Investments: investments, Status: StatusOK}, nil
}

// CreateInvestment stores a new record. A missing id or dateAdded is
// assigned here.
func (s *investmentService) CreateInvestment(ctx context.Context, inv models.Investment, ipAddress string) (*models.Investment, error) {
	if inv.ID == "" {
		inv.ID = uuid.New()
	}
	if inv.DateAdded.IsZero() {
		inv.DateAdded = s.now().UTC().Truncate(time.Millisecond)
	}
	inv.Normalize()

	if err := s.store.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.audit.Log(AuditCreate, resourceInvestment, inv.ID, ipAddress, map[string]any{
		"name":       inv.Name,
		"amount":     inv.Amount,
		"currency":   inv.Currency,
		"assetClass": inv.AssetClass,
	})
	return &inv, nil
}

// UpdateInvestment replaces the record with the given id. The path id and
// the stored dateAdded always win over the body.
func (s *investmentService) UpdateInvestment(ctx context.Context, id string, inv models.Investment, ipAddress string) (*models.Investment, error) {
	existing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	inv.ID = id
	inv.DateAdded = existing.DateAdded
	inv.Normalize()

	if err := s.store.Update(ctx, inv); err != nil {
		return nil, err
	}

	s.audit.Log(AuditUpdate, resourceInvestment, id, ipAddress, map[string]any{
		"before": existing,
		"after":  inv,
	})
	return &inv, nil
}

// DeleteInvestment removes every record with the id and returns how many
// were removed. Deleting an unknown id is not an error.
func (s *investmentService) DeleteInvestment(ctx context.Context, id, ipAddress string) (int, error) {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	if n > 0 {
		s.audit.Log(AuditDelete, resourceInvestment, id, ipAddress, map[string]any{"deleted": n})
	}
	return n, nil
}

func (s *investmentService) find(ctx context.Context, id string) (*models.Investment, error) {
	investments, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range investments {
		if investments[i].ID == id {
			return &investments[i], nil
		}
	}
	return nil, apperrors.ErrInvestmentNotFound
}
