package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finalloc/internal/errors"
	"finalloc/internal/portfolio"
	"finalloc/internal/services"
)

// PortfolioHandler serves the dashboard analytics.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// portfolioQuery holds the filter query parameters shared by every
// portfolio endpoint. currencyFilter is the dashboard's older name for
// displayCurrency.
type portfolioQuery struct {
	DisplayCurrency string `form:"displayCurrency"`
	CurrencyFilter  string `form:"currencyFilter"`
	Currency        string `form:"currency"`
	Country         string `form:"country"`
	AssetClass      string `form:"assetClass"`
}

type growthQuery struct {
	Live bool `form:"live"`
}

// AllocationResponse wraps the allocation entries.
type AllocationResponse struct {
	GroupBy portfolio.GroupBy           `json:"groupBy"`
	Entries []portfolio.AllocationEntry `json:"entries"`
}

// BreakdownResponse wraps the breakdown rows.
type BreakdownResponse struct {
	Rows []portfolio.BreakdownRow `json:"rows"`
}

func parseFilter(c *gin.Context) (portfolio.Filter, error) {
	var q portfolioQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return portfolio.Filter{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	raw := q.DisplayCurrency
	if raw == "" {
		raw = q.CurrencyFilter
	}
	display, err := portfolio.ParseDisplayCurrency(raw)
	if err != nil {
		return portfolio.Filter{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	return portfolio.Filter{
		DisplayCurrency: display,
		Currency:        q.Currency,
		Country:         q.Country,
		AssetClass:      q.AssetClass,
	}, nil
}

// GetSummary handles the headline figures.
// @Summary     Portfolio summary
// @Description Totals, distinct dimensions, and growth for the filtered records
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       displayCurrency query string false "original (default) or USD"
// @Param       currency        query string false "Currency filter or all"
// @Param       country         query string false "Country filter or all"
// @Param       assetClass      query string false "Asset class filter or all"
// @Success     200 {object} portfolio.Summary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/summary [get]
func (h *PortfolioHandler) GetSummary(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.portfolioService.Summary(c.Request.Context(), f)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetAllocation handles the allocation chart data.
// @Summary     Portfolio allocation
// @Description Allocation entries grouped by asset class, country, or currency
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       groupBy         query string false "assetClass (default), country, or currency"
// @Param       displayCurrency query string false "original (default) or USD"
// @Param       currency        query string false "Currency filter or all"
// @Param       country         query string false "Country filter or all"
// @Param       assetClass      query string false "Asset class filter or all"
// @Success     200 {object} AllocationResponse "Allocation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/allocation [get]
func (h *PortfolioHandler) GetAllocation(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	groupBy, err := portfolio.ParseGroupBy(c.Query("groupBy"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entries, err := h.portfolioService.Allocation(c.Request.Context(), f, groupBy)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{GroupBy: groupBy, Entries: entries})
}

// GetBreakdown handles the country/currency/asset class table.
// @Summary     Portfolio breakdown
// @Description Records grouped by country, currency, and asset class, largest USD amount first
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       displayCurrency query string false "original (default) or USD"
// @Param       currency        query string false "Currency filter or all"
// @Param       country         query string false "Country filter or all"
// @Param       assetClass      query string false "Asset class filter or all"
// @Success     200 {object} BreakdownResponse "Breakdown"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/breakdown [get]
func (h *PortfolioHandler) GetBreakdown(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.portfolioService.Breakdown(c.Request.Context(), f)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BreakdownResponse{Rows: rows})
}

// GetMaturity handles the maturity projection.
// @Summary     Maturity earnings
// @Description Simple-interest projection for Bond and Deposit records maturing after today
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       currency   query string false "Currency filter or all"
// @Param       country    query string false "Country filter or all"
// @Param       assetClass query string false "Asset class filter or all"
// @Success     200 {object} portfolio.MaturityReport "Maturity report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/maturity [get]
func (h *PortfolioHandler) GetMaturity(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.portfolioService.Maturity(c.Request.Context(), f)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetGrowth handles per-record growth.
// @Summary     Investment growth
// @Description Growth of each record against its original price. live=true revalues quoted holdings at market price.
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       live       query bool   false "Use live prices"
// @Param       currency   query string false "Currency filter or all"
// @Param       country    query string false "Country filter or all"
// @Param       assetClass query string false "Asset class filter or all"
// @Success     200 {array}  portfolio.GrowthRow "Growth rows"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/growth [get]
func (h *PortfolioHandler) GetGrowth(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	var q growthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rows, err := h.portfolioService.Growth(c.Request.Context(), f, q.Live)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetFilterOptions handles the dropdown values.
// @Summary     Filter options
// @Description Sorted distinct currencies, countries, and asset classes over every record
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} portfolio.Options "Filter options"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/filters [get]
func (h *PortfolioHandler) GetFilterOptions(c *gin.Context) {
	opts, err := h.portfolioService.FilterOptions(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, opts)
}
