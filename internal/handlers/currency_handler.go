package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finalloc/internal/services"
)

// CurrencyHandler serves the conversion table.
type CurrencyHandler struct {
	rateService services.RateServicer
}

// NewCurrencyHandler creates a new CurrencyHandler.
func NewCurrencyHandler(rateService services.RateServicer) *CurrencyHandler {
	return &CurrencyHandler{rateService: rateService}
}

// GetRates handles the current currency table.
// @Summary     Currency rates
// @Description USD value of one unit of each currency, with the table source and last refresh
// @Tags        currencies
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} currency.Info "Rates"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /currencies/rates [get]
func (h *CurrencyHandler) GetRates(c *gin.Context) {
	c.JSON(http.StatusOK, h.rateService.Info())
}
