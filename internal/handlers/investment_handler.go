package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finalloc/internal/errors"
	"finalloc/internal/models"
	"finalloc/internal/services"
)

// StoreStatusHeader reports the record store state on list responses.
const StoreStatusHeader = "X-Store-Status"

// InvestmentHandler handles investment CRUD requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// InvestmentRequest is the payload for creating or replacing an investment.
// Amount may be omitted when quantity and pricePerUnit are both given.
type InvestmentRequest struct {
	ID              string            `json:"id" binding:"omitempty,max=100"`
	Name            string            `json:"name" binding:"required,min=1,max=200"`
	Amount          *float64          `json:"amount" binding:"omitempty,gte=0"`
	Currency        string            `json:"currency" binding:"required,iso4217"`
	Country         string            `json:"country" binding:"required,min=1,max=100"`
	AssetClass      models.AssetClass `json:"assetClass" binding:"required,asset_class"`
	DateAdded       *time.Time        `json:"dateAdded"`
	TransactionDate *string           `json:"transactionDate" binding:"omitempty,iso_date"`
	OriginalPrice   *float64          `json:"originalPrice" binding:"omitempty,gte=0"`
	MaturityDate    *string           `json:"maturityDate" binding:"omitempty,iso_date"`
	CouponRate      *float64          `json:"couponRate" binding:"omitempty,gte=0"`
	Quantity        *float64          `json:"quantity" binding:"omitempty,gte=0"`
	PricePerUnit    *float64          `json:"pricePerUnit" binding:"omitempty,gte=0"`
}

// DeleteResponse acknowledges a delete.
type DeleteResponse struct {
	Message string `json:"message" example:"Investment deleted successfully"`
	Deleted int    `json:"deleted" example:"1"`
}

// toModel validates the cross-field rules and builds the record.
func (r InvestmentRequest) toModel() (models.Investment, error) {
	hasUnits := r.Quantity != nil && r.PricePerUnit != nil
	if r.Amount == nil && !hasUnits {
		return models.Investment{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is required unless quantity and pricePerUnit are given")
	}

	inv := models.Investment{
		ID:              r.ID,
		Name:            r.Name,
		Currency:        r.Currency,
		Country:         r.Country,
		AssetClass:      r.AssetClass,
		TransactionDate: r.TransactionDate,
		OriginalPrice:   r.OriginalPrice,
		MaturityDate:    r.MaturityDate,
		CouponRate:      r.CouponRate,
		Quantity:        r.Quantity,
		PricePerUnit:    r.PricePerUnit,
	}
	if r.Amount != nil {
		inv.Amount = *r.Amount
	}
	if r.DateAdded != nil {
		inv.DateAdded = r.DateAdded.UTC()
	}
	return inv, nil
}

func bindInvestment(c *gin.Context) (models.Investment, error) {
	var req InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return models.Investment{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return req.toModel()
}

// ListInvestments handles listing every investment.
// @Summary     List investments
// @Description Get every investment in insertion order. X-Store-Status is ok, empty, or unreadable.
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  models.Investment "Investments"
// @Header      200 {string} X-Store-Status "ok | empty | unreadable"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Store unreadable"
// @Router      /investments [get]
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	result, err := h.investmentService.ListInvestments(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header(StoreStatusHeader, string(result.Status))
	c.JSON(http.StatusOK, result.Investments)
}

// CreateInvestment handles adding a new investment.
// @Summary     Create investment
// @Description Add an investment. The server assigns id and dateAdded when absent.
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body InvestmentRequest true "Investment details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Duplicate id"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	inv, err := bindInvestment(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	created, err := h.investmentService.CreateInvestment(c.Request.Context(), inv, c.ClientIP())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateInvestment handles replacing an investment.
// @Summary     Update investment
// @Description Replace the investment with the given id. The path id and the stored dateAdded win.
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Investment ID"
// @Param       request body InvestmentRequest true "Investment details"
// @Success     200 {object} models.Investment "Investment updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	inv, err := bindInvestment(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.investmentService.UpdateInvestment(c.Request.Context(), c.Param("id"), inv, c.ClientIP())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteInvestment handles removing an investment.
// @Summary     Delete investment
// @Description Remove every investment with the given id
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} DeleteResponse "Investment deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	n, err := h.investmentService.DeleteInvestment(c.Request.Context(), c.Param("id"), c.ClientIP())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Message: "Investment deleted successfully", Deleted: n})
}
