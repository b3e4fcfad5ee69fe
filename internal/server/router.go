// Package server assembles the HTTP API: middleware, handlers, and routes.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"finalloc/internal/config"
	_ "finalloc/internal/docs" // swagger spec
	"finalloc/internal/handlers"
	"finalloc/internal/middleware"
	"finalloc/internal/services"
	"finalloc/internal/store"
)

// Dependencies are the services the router serves.
type Dependencies struct {
	Investments services.InvestmentServicer
	Portfolio   services.PortfolioServicer
	Prices      services.PriceServicer
	Rates       services.RateServicer

	StoreDriver     string
	AuthSecret      string
	CORSAllowOrigin string
}

// NewDependencies wires the services over a record store. auditDB may be nil.
func NewDependencies(cfg *config.Config, st store.Store, auditDB *gorm.DB, rates services.RateServicer, prices services.PriceServicer) Dependencies {
	audit := services.NewAuditService(auditDB)
	investments := services.NewInvestmentService(st, audit, cfg.StoreFailOpen)

	return Dependencies{
		Investments:     investments,
		Portfolio:       services.NewPortfolioService(investments, rates, prices),
		Prices:          prices,
		Rates:           rates,
		StoreDriver:     st.Driver(),
		AuthSecret:      cfg.AuthSecret,
		CORSAllowOrigin: cfg.CORSAllowOrigin,
	}
}

// NewRouter builds the gin engine. Every route is served under /api and
// mirrored under /api/v1. When AuthSecret is set both groups require a
// bearer token; /api/health never does.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(deps.CORSAllowOrigin))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": deps.StoreDriver})
	})

	investmentHandler := handlers.NewInvestmentHandler(deps.Investments)
	portfolioHandler := handlers.NewPortfolioHandler(deps.Portfolio)
	priceHandler := handlers.NewPriceHandler(deps.Prices)
	currencyHandler := handlers.NewCurrencyHandler(deps.Rates)

	for _, prefix := range []string{"/api", "/api/v1"} {
		api := router.Group(prefix)
		api.Use(middleware.AuthMiddleware(deps.AuthSecret))

		investments := api.Group("/investments")
		investments.GET("", investmentHandler.ListInvestments)
		investments.POST("", investmentHandler.CreateInvestment)
		investments.PUT("/:id", investmentHandler.UpdateInvestment)
		investments.DELETE("/:id", investmentHandler.DeleteInvestment)

		portfolio := api.Group("/portfolio")
		portfolio.GET("/summary", portfolioHandler.GetSummary)
		portfolio.GET("/allocation", portfolioHandler.GetAllocation)
		portfolio.GET("/breakdown", portfolioHandler.GetBreakdown)
		portfolio.GET("/maturity", portfolioHandler.GetMaturity)
		portfolio.GET("/growth", portfolioHandler.GetGrowth)
		portfolio.GET("/filters", portfolioHandler.GetFilterOptions)

		prices := api.Group("/prices")
		prices.GET("/popular/etfs", priceHandler.GetPopularETFs)
		prices.GET("/popular/crypto", priceHandler.GetPopularCrypto)
		prices.GET("/gold", priceHandler.GetGold)
		prices.GET("/cache", priceHandler.GetCacheStatus)
		prices.DELETE("/cache", priceHandler.ClearCache)
		prices.POST("/batch", priceHandler.GetBatchPrices)
		prices.GET("/:symbol", priceHandler.GetPrice)

		api.GET("/currencies/rates", currencyHandler.GetRates)
	}

	return router
}
