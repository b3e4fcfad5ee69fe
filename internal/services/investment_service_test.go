package services

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "finalloc/internal/errors"
	"finalloc/internal/models"
	"finalloc/internal/testutil"
	"finalloc/internal/uuid"
)

func TestListInvestments(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		svc := NewInvestmentService(testutil.TempFileStore(t, ""), &mockAudit{}, true)

		result, err := svc.ListInvestments(context.Background())
		testutil.AssertNoError(t, err)
		if result.Status != StatusEmpty || result.Investments == nil || len(result.Investments) != 0 {
			t.Errorf("unexpected result %+v", result)
		}
	})

	t.Run("ok_in_insertion_order", func(t *testing.T) {
		st := testutil.TempFileStore(t, "")
		a := testutil.NewInvestment("A", models.AssetClassStock, "USD", 1)
		b := testutil.NewInvestment("B", models.AssetClassCash, "EUR", 2)
		testutil.Seed(t, st, a, b)
		svc := NewInvestmentService(st, &mockAudit{}, true)

		result, err := svc.ListInvestments(context.Background())
		testutil.AssertNoError(t, err)
		if result.Status != StatusOK || len(result.Investments) != 2 || result.Investments[0].ID != a.ID {
			t.Errorf("unexpected result %+v", result)
		}
	})

	unreadable := &mockStore{listFn: func(context.Context) ([]models.Investment, error) {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnreadable, errors.New("bad json"))
	}}

	t.Run("unreadable_fail_open", func(t *testing.T) {
		svc := NewInvestmentService(unreadable, &mockAudit{}, true)

		result, err := svc.ListInvestments(context.Background())
		testutil.AssertNoError(t, err)
		if result.Status != StatusUnreadable || result.Investments == nil || len(result.Investments) != 0 {
			t.Errorf("unexpected result %+v", result)
		}
	})

	t.Run("unreadable_fail_closed", func(t *testing.T) {
		svc := NewInvestmentService(unreadable, &mockAudit{}, false)

		_, err := svc.ListInvestments(context.Background())
		testutil.AssertAppError(t, err, "STORE_UNREADABLE")
	})
}

func TestCreateInvestment(t *testing.T) {
	t.Run("assigns_id_and_date", func(t *testing.T) {
		audit := &mockAudit{}
		svc := NewInvestmentService(testutil.TempFileStore(t, ""), audit, true).(*investmentService)
		fixed := time.Date(2025, 3, 10, 12, 0, 0, 123456789, time.FixedZone("X", 3600))
		svc.now = func() time.Time { return fixed }

		created, err := svc.CreateInvestment(context.Background(), models.Investment{
			Name:       " VOO ",
			Amount:     100,
			Currency:   "usd",
			Country:    "USA",
			AssetClass: models.AssetClassETF,
		}, "127.0.0.1")
		testutil.AssertNoError(t, err)

		if !uuid.IsValid(created.ID) {
			t.Errorf("expected a generated uuid, got %q", created.ID)
		}
		if want := time.Date(2025, 3, 10, 11, 0, 0, 123000000, time.UTC); !created.DateAdded.Equal(want) {
			t.Errorf("DateAdded = %v, want %v", created.DateAdded, want)
		}
		if created.Name != "VOO" || created.Currency != "USD" {
			t.Errorf("record not normalized: %+v", created)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != AuditCreate || audit.entries[0].resourceID != created.ID {
			t.Errorf("unexpected audit entries %+v", audit.entries)
		}

		result, _ := svc.ListInvestments(context.Background())
		if len(result.Investments) != 1 || result.Investments[0].ID != created.ID {
			t.Errorf("record not stored: %+v", result.Investments)
		}
	})

	t.Run("keeps_client_id_and_units", func(t *testing.T) {
		svc := NewInvestmentService(testutil.TempFileStore(t, ""), &mockAudit{}, true)

		created, err := svc.CreateInvestment(context.Background(), models.Investment{
			ID:           "1700000000000",
			Name:         "BTC",
			Currency:     "USD",
			Country:      "USA",
			AssetClass:   models.AssetClassCryptocurrency,
			Quantity:     testutil.Float(0.5),
			PricePerUnit: testutil.Float(60000),
		}, "")
		testutil.AssertNoError(t, err)
		if created.ID != "1700000000000" || created.Amount != 30000 {
			t.Errorf("unexpected record %+v", created)
		}
	})

	t.Run("duplicate_id", func(t *testing.T) {
		st := testutil.TempFileStore(t, "")
		existing := testutil.NewInvestment("A", models.AssetClassStock, "USD", 1)
		testutil.Seed(t, st, existing)
		audit := &mockAudit{}
		svc := NewInvestmentService(st, audit, true)

		dup := existing
		_, err := svc.CreateInvestment(context.Background(), dup, "")
		testutil.AssertAppError(t, err, "DUPLICATE_INVESTMENT")
		if len(audit.entries) != 0 {
			t.Error("failed create must not be audited")
		}
	})

	t.Run("storage_failure", func(t *testing.T) {
		failing := &mockStore{createFn: func(context.Context, models.Investment) error {
			return apperrors.Wrap(apperrors.ErrStorage, errors.New("disk full"))
		}}
		svc := NewInvestmentService(failing, &mockAudit{}, true)

		_, err := svc.CreateInvestment(context.Background(), models.Investment{Name: "A"}, "")
		testutil.AssertAppError(t, err, "STORAGE_ERROR")
	})
}

func TestUpdateInvestment(t *testing.T) {
	t.Run("replaces_and_preserves_date_added", func(t *testing.T) {
		st := testutil.TempFileStore(t, "")
		original := testutil.NewBond(1000, 5, "EUR", "2030-01-01")
		other := testutil.NewInvestment("Other", models.AssetClassCash, "USD", 5)
		testutil.Seed(t, st, original, other)
		audit := &mockAudit{}
		svc := NewInvestmentService(st, audit, true)

		updated, err := svc.UpdateInvestment(context.Background(), original.ID, models.Investment{
			ID:         "ignored",
			Name:       "Renamed",
			Amount:     2000,
			Currency:   "EUR",
			Country:    "Germany",
			AssetClass: models.AssetClassStock,
			DateAdded:  time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
			CouponRate: testutil.Float(5),
		}, "")
		testutil.AssertNoError(t, err)

		if updated.ID != original.ID || !updated.DateAdded.Equal(original.DateAdded) {
			t.Errorf("id or dateAdded not preserved: %+v", updated)
		}
		if updated.CouponRate != nil {
			t.Error("coupon rate should be dropped for a Stock")
		}

		result, _ := svc.ListInvestments(context.Background())
		if len(result.Investments) != 2 || result.Investments[0].Name != "Renamed" || result.Investments[1].ID != other.ID {
			t.Errorf("unexpected collection %+v", result.Investments)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != AuditUpdate {
			t.Errorf("unexpected audit entries %+v", audit.entries)
		}
	})

	t.Run("unknown_id_leaves_collection_unchanged", func(t *testing.T) {
		st := testutil.TempFileStore(t, "")
		a := testutil.NewInvestment("A", models.AssetClassStock, "USD", 1)
		testutil.Seed(t, st, a)
		svc := NewInvestmentService(st, &mockAudit{}, true)

		_, err := svc.UpdateInvestment(context.Background(), "missing", models.Investment{Name: "X"}, "")
		testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")

		result, _ := svc.ListInvestments(context.Background())
		if len(result.Investments) != 1 || result.Investments[0].Name != "A" {
			t.Errorf("collection changed: %+v", result.Investments)
		}
	})
}

func TestDeleteInvestment(t *testing.T) {
	t.Run("removes_duplicates", func(t *testing.T) {
		st := testutil.TempFileStore(t, "")
		a := testutil.NewInvestment("A", models.AssetClassStock, "USD", 1)
		b := a
		b.Name = "A again"
		keep := testutil.NewInvestment("Keep", models.AssetClassCash, "USD", 2)
		// Legacy documents can hold duplicate ids; write them directly.
		testutil.AssertNoError(t, st.Replace(context.Background(), []models.Investment{a, keep, b}))
		audit := &mockAudit{}
		svc := NewInvestmentService(st, audit, true)

		n, err := svc.DeleteInvestment(context.Background(), a.ID, "")
		testutil.AssertNoError(t, err)
		if n != 2 {
			t.Errorf("deleted = %d, want 2", n)
		}

		result, _ := svc.ListInvestments(context.Background())
		if len(result.Investments) != 1 || result.Investments[0].ID != keep.ID {
			t.Errorf("unexpected collection %+v", result.Investments)
		}
		if len(audit.entries) != 1 || audit.entries[0].changes["deleted"] != 2 {
			t.Errorf("unexpected audit entries %+v", audit.entries)
		}
	})

	t.Run("unknown_id", func(t *testing.T) {
		audit := &mockAudit{}
		svc := NewInvestmentService(testutil.TempFileStore(t, ""), audit, true)

		n, err := svc.DeleteInvestment(context.Background(), "missing", "")
		testutil.AssertNoError(t, err)
		if n != 0 || len(audit.entries) != 0 {
			t.Errorf("n = %d, audit = %+v", n, audit.entries)
		}
	})
}
