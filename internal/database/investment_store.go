package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "finalloc/internal/errors"
	"finalloc/internal/models"
)

// investmentRow is the investments table. seq keeps insertion order.
type investmentRow struct {
	Seq             uint64    `gorm:"column:seq;primaryKey;autoIncrement"`
	ID              string    `gorm:"column:id;uniqueIndex;not null"`
	Name            string    `gorm:"not null"`
	Amount          float64   `gorm:"not null;default:0"`
	Currency        string    `gorm:"type:varchar(3);not null"`
	Country         string    `gorm:"not null"`
	AssetClass      string    `gorm:"not null;index"`
	DateAdded       time.Time `gorm:"not null"`
	TransactionDate *string
	OriginalPrice   *float64
	MaturityDate    *string
	CouponRate      *float64
	Quantity        *float64
	PricePerUnit    *float64
}

func (investmentRow) TableName() string { return "investments" }

func toRow(inv models.Investment) investmentRow {
	return investmentRow{
		ID:              inv.ID,
		Name:            inv.Name,
		Amount:          inv.Amount,
		Currency:        inv.Currency,
		Country:         inv.Country,
		AssetClass:      string(inv.AssetClass),
		DateAdded:       inv.DateAdded.UTC(),
		TransactionDate: inv.TransactionDate,
		OriginalPrice:   inv.OriginalPrice,
		MaturityDate:    inv.MaturityDate,
		CouponRate:      inv.CouponRate,
		Quantity:        inv.Quantity,
		PricePerUnit:    inv.PricePerUnit,
	}
}

func (r investmentRow) toModel() models.Investment {
	return models.Investment{
		ID:              r.ID,
		Name:            r.Name,
		Amount:          r.Amount,
		Currency:        r.Currency,
		Country:         r.Country,
		AssetClass:      models.AssetClass(r.AssetClass),
		DateAdded:       r.DateAdded.UTC(),
		TransactionDate: r.TransactionDate,
		OriginalPrice:   r.OriginalPrice,
		MaturityDate:    r.MaturityDate,
		CouponRate:      r.CouponRate,
		Quantity:        r.Quantity,
		PricePerUnit:    r.PricePerUnit,
	}
}

// SQLStore is the gorm-backed investment store used by the sqlite and
// postgres drivers.
type SQLStore struct {
	db     *gorm.DB
	driver string
}

// NewSQLStore creates a store over db. driver is reported by Driver.
func NewSQLStore(db *gorm.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

// Driver returns the configured SQL driver name.
func (s *SQLStore) Driver() string { return s.driver }

// List returns every investment in insertion order.
func (s *SQLStore) List(ctx context.Context) ([]models.Investment, error) {
	var rows []investmentRow
	if err := s.db.WithContext(ctx).Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnreadable, err)
	}

	investments := make([]models.Investment, 0, len(rows))
	for _, r := range rows {
		investments = append(investments, r.toModel())
	}
	return investments, nil
}

// Create inserts inv. An existing id is refused with ErrDuplicateInvestment.
func (s *SQLStore) Create(ctx context.Context, inv models.Investment) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&investmentRow{}).Where("id = ?", inv.ID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateInvestment
	}

	row := toRow(inv)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateInvestment
		}
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// Update replaces every column of the record with inv.ID.
func (s *SQLStore) Update(ctx context.Context, inv models.Investment) error {
	row := toRow(inv)
	result := s.db.WithContext(ctx).
		Model(&investmentRow{}).
		Where("id = ?", inv.ID).
		Select("*").
		Omit("seq", "id").
		Updates(&row)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrStorage, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrInvestmentNotFound
	}
	return nil
}

// Delete removes the record with id and reports how many rows went away.
func (s *SQLStore) Delete(ctx context.Context, id string) (int, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&investmentRow{})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrStorage, result.Error)
	}
	return int(result.RowsAffected), nil
}
