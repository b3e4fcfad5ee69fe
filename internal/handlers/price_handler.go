package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finalloc/internal/errors"
	"finalloc/internal/pricing"
	"finalloc/internal/services"
)

// PriceHandler serves live market prices.
type PriceHandler struct {
	priceService services.PriceServicer
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(priceService services.PriceServicer) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

// BatchPriceRequest is the payload for a batch lookup.
type BatchPriceRequest struct {
	Assets []BatchAsset `json:"assets" binding:"required,min=1,max=50,dive"`
}

// BatchAsset is one asset of a batch lookup.
type BatchAsset struct {
	Symbol string `json:"symbol" binding:"required,max=40"`
	Type   string `json:"type" binding:"required"`
}

// PriceListResponse wraps a list of quotes.
type PriceListResponse struct {
	Prices []pricing.PriceData `json:"prices"`
}

// GetPrice handles a single quote.
// @Summary     Get price
// @Description Current quote for a symbol. Cached for five minutes.
// @Tags        prices
// @Produce     json
// @Security    BearerAuth
// @Param       symbol path  string true "Ticker, coin symbol, or XAU"
// @Param       type   query string true "ETF, Stock, Cryptocurrency, or Gold (XAU)"
// @Success     200 {object} pricing.PriceData "Quote"
// @Failure     400 {object} ErrorResponse "Unsupported asset type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Price unavailable"
// @Router      /prices/{symbol} [get]
func (h *PriceHandler) GetPrice(c *gin.Context) {
	assetType, err := pricing.ParseAssetType(c.Query("type"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrUnsupportedAssetType, err.Error()))
		return
	}

	data, ok := h.priceService.GetPrice(c.Request.Context(), c.Param("symbol"), assetType)
	if !ok {
		respondWithError(c, apperrors.ErrPriceUnavailable)
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetBatchPrices handles a batch lookup.
// @Summary     Get prices
// @Description Quotes for several assets, in request order. Unavailable prices are skipped.
// @Tags        prices
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BatchPriceRequest true "Assets"
// @Success     200 {object} PriceListResponse "Quotes"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /prices/batch [post]
func (h *PriceHandler) GetBatchPrices(c *gin.Context) {
	var req BatchPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	assets := make([]pricing.Asset, 0, len(req.Assets))
	for _, a := range req.Assets {
		t, err := pricing.ParseAssetType(a.Type)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrUnsupportedAssetType, err.Error()))
			return
		}
		assets = append(assets, pricing.Asset{Symbol: a.Symbol, Type: t})
	}

	c.JSON(http.StatusOK, PriceListResponse{Prices: h.priceService.GetMultiplePrices(c.Request.Context(), assets)})
}

// GetPopularETFs handles the popular ETF list.
// @Summary     Popular ETF prices
// @Tags        prices
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} PriceListResponse "Quotes"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /prices/popular/etfs [get]
func (h *PriceHandler) GetPopularETFs(c *gin.Context) {
	c.JSON(http.StatusOK, PriceListResponse{Prices: h.priceService.PopularETFPrices(c.Request.Context())})
}

// GetPopularCrypto handles the popular cryptocurrency list.
// @Summary     Popular crypto prices
// @Tags        prices
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} PriceListResponse "Quotes"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /prices/popular/crypto [get]
func (h *PriceHandler) GetPopularCrypto(c *gin.Context) {
	c.JSON(http.StatusOK, PriceListResponse{Prices: h.priceService.PopularCryptoPrices(c.Request.Context())})
}

// GetGold handles the spot gold quote.
// @Summary     Gold price
// @Tags        prices
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} pricing.PriceData "XAU/USD"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Price unavailable"
// @Router      /prices/gold [get]
func (h *PriceHandler) GetGold(c *gin.Context) {
	data, ok := h.priceService.GoldPrice(c.Request.Context())
	if !ok {
		respondWithError(c, apperrors.ErrPriceUnavailable)
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetCacheStatus handles the cache listing.
// @Summary     Price cache status
// @Tags        prices
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} pricing.CacheStatus "Cache status"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /prices/cache [get]
func (h *PriceHandler) GetCacheStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.priceService.CacheStatus())
}

// ClearCache handles dropping every cached quote.
// @Summary     Clear price cache
// @Tags        prices
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Cache cleared"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /prices/cache [delete]
func (h *PriceHandler) ClearCache(c *gin.Context) {
	h.priceService.ClearCache()
	c.JSON(http.StatusOK, MessageResponse{Message: "Price cache cleared"})
}
