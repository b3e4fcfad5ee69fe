package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finalloc/internal/errors"
	"finalloc/internal/models"
	"finalloc/internal/services"
)

// --- mock investment service ---

type mockInvestmentService struct {
	listInvestmentsFn  func(ctx context.Context) (*services.ListResult, error)
	createInvestmentFn func(ctx context.Context, inv models.Investment, ip string) (*models.Investment, error)
	updateInvestmentFn func(ctx context.Context, id string, inv models.Investment, ip string) (*models.Investment, error)
	deleteInvestmentFn func(ctx context.Context, id, ip string) (int, error)
}

func (m *mockInvestmentService) ListInvestments(ctx context.Context) (*services.ListResult, error) {
	if m.listInvestmentsFn != nil {
		return m.listInvestmentsFn(ctx)
	}
	return &services.ListResult{Investments: []models.Investment{}, Status: services.StatusEmpty}, nil
}

func (m *mockInvestmentService) CreateInvestment(ctx context.Context, inv models.Investment, ip string) (*models.Investment, error) {
	if m.createInvestmentFn != nil {
		return m.createInvestmentFn(ctx, inv, ip)
	}
	return &inv, nil
}

func (m *mockInvestmentService) UpdateInvestment(ctx context.Context, id string, inv models.Investment, ip string) (*models.Investment, error) {
	if m.updateInvestmentFn != nil {
		return m.updateInvestmentFn(ctx, id, inv, ip)
	}
	inv.ID = id
	return &inv, nil
}

func (m *mockInvestmentService) DeleteInvestment(ctx context.Context, id, ip string) (int, error) {
	if m.deleteInvestmentFn != nil {
		return m.deleteInvestmentFn(ctx, id, ip)
	}
	return 1, nil
}

var _ services.InvestmentServicer = (*mockInvestmentService)(nil)

func setupInvestmentRouter(handler *InvestmentHandler) *gin.Engine {
	r := gin.New()
	r.GET("/investments", handler.ListInvestments)
	r.POST("/investments", handler.CreateInvestment)
	r.PUT("/investments/:id", handler.UpdateInvestment)
	r.DELETE("/investments/:id", handler.DeleteInvestment)
	return r
}

const validInvestmentBody = `{"name":"VOO","amount":1500.5,"currency":"USD","country":"USA","assetClass":"ETF"}`

// --- tests ---

func TestInvestmentHandler_List(t *testing.T) {
	t.Run("returns 200 with store status header", func(t *testing.T) {
		svc := &mockInvestmentService{
			listInvestmentsFn: func(context.Context) (*services.ListResult, error) {
				return &services.ListResult{
					Investments: []models.Investment{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
					Status:      services.StatusOK,
				}, nil
			},
		}
		r := setupInvestmentRouter(NewInvestmentHandler(svc))

		rec := doRequest(r, http.MethodGet, "/investments", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got := rec.Header().Get(StoreStatusHeader); got != "ok" {
			t.Errorf("expected X-Store-Status ok, got %q", got)
		}
		items := parseJSONArray(t, rec)
		if len(items) != 2 || items[0].(map[string]interface{})["id"] != "a" {
			t.Errorf("unexpected body %v", items)
		}
	})

	t.Run("unreadable store serves empty array", func(t *testing.T) {
		svc := &mockInvestmentService{
			listInvestmentsFn: func(context.Context) (*services.ListResult, error) {
				return &services.ListResult{Investments: []models.Investment{}, Status: services.StatusUnreadable}, nil
			},
		}
		r := setupInvestmentRouter(NewInvestmentHandler(svc))

		rec := doRequest(r, http.MethodGet, "/investments", "")
		if rec.Code != http.StatusOK || rec.Body.String() != "[]" {
			t.Fatalf("expected 200 [], got %d %s", rec.Code, rec.Body.String())
		}
		if got := rec.Header().Get(StoreStatusHeader); got != "unreadable" {
			t.Errorf("expected X-Store-Status unreadable, got %q", got)
		}
	})

	t.Run("returns 500 when failing closed", func(t *testing.T) {
		svc := &mockInvestmentService{
			listInvestmentsFn: func(context.Context) (*services.ListResult, error) {
				return nil, apperrors.Wrap(apperrors.ErrStoreUnreadable, errors.New("bad json"))
			},
		}
		r := setupInvestmentRouter(NewInvestmentHandler(svc))

		rec := doRequest(r, http.MethodGet, "/investments", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "STORE_UNREADABLE")
	})
}

func TestInvestmentHandler_Create(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got models.Investment
		svc := &mockInvestmentService{
			createInvestmentFn: func(_ context.Context, inv models.Investment, _ string) (*models.Investment, error) {
				got = inv
				inv.ID = "generated"
				return &inv, nil
			},
		}
		r := setupInvestmentRouter(NewInvestmentHandler(svc))

		rec := doRequest(r, http.MethodPost, "/investments", validInvestmentBody)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Name != "VOO" || got.Amount != 1500.5 || got.AssetClass != models.AssetClassETF {
			t.Errorf("unexpected record passed to service: %+v", got)
		}
		if !got.DateAdded.IsZero() {
			t.Error("dateAdded should be left for the service to assign")
		}
		if parseJSON(t, rec)["id"] != "generated" {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("keeps client id and dateAdded", func(t *testing.T) {
		var got models.Investment
		svc := &mockInvestmentService{
			createInvestmentFn: func(_ context.Context, inv models.Investment, _ string) (*models.Investment, error) {
				got = inv
				return &inv, nil
			},
		}
		r := setupInvestmentRouter(NewInvestmentHandler(svc))

		body := `{"id":"1700000000000","name":"Bund","amount":1000,"currency":"EUR","country":"Germany","assetClass":"Bond","dateAdded":"2024-05-01T10:00:00+02:00","maturityDate":"2030-06-30","couponRate":2.5}`
		rec := doRequest(r, http.MethodPost, "/investments", body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.ID != "1700000000000" || !got.DateAdded.Equal(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected record %+v", got)
		}
		if got.MaturityDate == nil || *got.MaturityDate != "2030-06-30" || *got.CouponRate != 2.5 {
			t.Errorf("maturity fields not passed: %+v", got)
		}
	})

	t.Run("amount optional with quantity and price per unit", func(t *testing.T) {
		r := setupInvestmentRouter(NewInvestmentHandler(&mockInvestmentService{}))

		body := `{"name":"BTC","currency":"USD","country":"USA","assetClass":"Cryptocurrency","quantity":0.5,"pricePerUnit":60000}`
		rec := doRequest(r, http.MethodPost, "/investments", body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	invalid := map[string]string{
		"missing name":        `{"amount":1,"currency":"USD","country":"USA","assetClass":"ETF"}`,
		"missing amount":      `{"name":"X","currency":"USD","country":"USA","assetClass":"ETF"}`,
		"negative amount":     `{"name":"X","amount":-1,"currency":"USD","country":"USA","assetClass":"ETF"}`,
		"unknown currency":    `{"name":"X","amount":1,"currency":"ZZZ","country":"USA","assetClass":"ETF"}`,
		"unknown asset class": `{"name":"X","amount":1,"currency":"USD","country":"USA","assetClass":"Art"}`,
		"bad maturity date":   `{"name":"X","amount":1,"currency":"USD","country":"USA","assetClass":"Bond","maturityDate":"30/06/2030"}`,
		"negative coupon":     `{"name":"X","amount":1,"currency":"USD","country":"USA","assetClass":"Bond","couponRate":-2}`,
		"malformed json":      `{"name":`,
	}
	for name, body := range invalid {
		t.Run("returns 400 for "+name, func(t *testing.T) {
			called := false
			svc := &mockInvestmentService{
				createInvestmentFn: func(context.Context, models.Investment, string) (*models.Investment, error) {
					called = true
					return nil, nil
				},
			}
			r := setupInvestmentRouter(NewInvestmentHandler(svc))

			rec := doRequest(r, http.MethodPost, "/investments", body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
			if called {
				t.Error("service should not be called")
			}
		})
	}

	t.Run("returns 409 for duplicate id", func(t *testing.T) {
		svc := &mockInvestmentService{
			createInvestmentFn: func(context.Context, models.Investment, string) (*models.Investment, error) {
				return nil, apperrors.ErrDuplicateInvestment
			},
		}
		r := setupInvestmentRouter(NewInvestmentHandler(svc))

		rec := doRequest(r, http.MethodPost, "/investments", validInvestmentBody)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_INVESTMENT")
	})

	t.Run("returns 500 on storage failure without leaking cause", func(t *testing.T) {
		svc := &mockInvestmentService{
			createInvestmentFn: func(context.Context, models.Investment, string) (*models.Investment, error) {
				return nil, apperrors.Wrap(apperrors.ErrStorage, errors.New("open /secret/path: permission denied"))
			},
		}
		r := setupInvestmentRouter(NewInvestmentHandler(svc))

		rec := doRequest(r, http.MethodPost, "/investments", validInvestmentBody)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "STORAGE_ERROR")
		if msg := result["error"].(map[string]interface{})["message"]; msg != "Failed to save investments" {
			t.Errorf("unexpected message %v", msg)
		}
	})
}

func TestInvestmentHandler_Update(t *testing.T) {
	t.Run("path id wins", func(t *testing.T) {
		var gotID string
		svc := &mockInvestmentService{
			updateInvestmentFn: func(_ context.Context, id string, inv models.Investment, _ string) (*models.Investment, error) {
				gotID = id
				inv.ID = id
				return &inv, nil
			},
		}
		r := setupInvestmentRouter(NewInvestmentHandler(svc))

		body := `{"id":"other","name":"VOO","amount":1,"currency":"USD","country":"USA","assetClass":"ETF"}`
		rec := doRequest(r, http.MethodPut, "/investments/abc", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotID != "abc" || parseJSON(t, rec)["id"] != "abc" {
			t.Errorf("expected path id abc, got %q", gotID)
		}
	})

	t.Run("returns 404 for unknown id", func(t *testing.T) {
		svc := &mockInvestmentService{
			updateInvestmentFn: func(context.Context, string, models.Investment, string) (*models.Investment, error) {
				return nil, apperrors.ErrInvestmentNotFound
			},
		}
		r := setupInvestmentRouter(NewInvestmentHandler(svc))

		rec := doRequest(r, http.MethodPut, "/investments/missing", validInvestmentBody)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVESTMENT_NOT_FOUND")
	})

	t.Run("returns 400 for invalid body", func(t *testing.T) {
		r := setupInvestmentRouter(NewInvestmentHandler(&mockInvestmentService{}))

		rec := doRequest(r, http.MethodPut, "/investments/abc", `{"name":""}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestInvestmentHandler_Delete(t *testing.T) {
	t.Run("returns message and count", func(t *testing.T) {
		svc := &mockInvestmentService{
			deleteInvestmentFn: func(_ context.Context, id, _ string) (int, error) {
				if id != "dup" {
					t.Errorf("unexpected id %q", id)
				}
				return 2, nil
			},
		}
		r := setupInvestmentRouter(NewInvestmentHandler(svc))

		rec := doRequest(r, http.MethodDelete, "/investments/dup", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["message"] != "Investment deleted successfully" || result["deleted"] != float64(2) {
			t.Errorf("unexpected body %v", result)
		}
	})

	t.Run("returns 500 on storage failure", func(t *testing.T) {
		svc := &mockInvestmentService{
			deleteInvestmentFn: func(context.Context, string, string) (int, error) {
				return 0, apperrors.Wrap(apperrors.ErrStorage, errors.New("disk full"))
			},
		}
		r := setupInvestmentRouter(NewInvestmentHandler(svc))

		rec := doRequest(r, http.MethodDelete, "/investments/x", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
