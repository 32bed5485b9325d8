package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/hypnotizedent/printshop-os-sub011/internal/api/v1"
	"github.com/hypnotizedent/printshop-os-sub011/internal/rest/middleware"
)

type Handlers struct {
	Health  *v1.HealthHandler
	Pricing *v1.PricingHandler
	Rule    *v1.RuleHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Quote routes
	quotes := router.Group("/quotes")
	{
		quotes.POST("/calculate", handlers.Pricing.CalculateQuote)
		quotes.POST("/fixed", handlers.Pricing.GenerateFixedQuote)
		quotes.GET("/history", handlers.Pricing.GetHistory)
	}

	// Pricing administration routes
	pricing := router.Group("/pricing")
	{
		rules := pricing.Group("/rules")
		{
			rules.POST("", handlers.Rule.CreateRule)
			rules.GET("", handlers.Rule.ListRules)
			rules.GET("/:id", handlers.Rule.GetRule)
			rules.PUT("/:id", handlers.Rule.UpdateRule)
			rules.DELETE("/:id", handlers.Rule.DeleteRule)
			rules.GET("/:id/versions", handlers.Rule.GetRuleVersions)
		}

		pricing.GET("/cache/stats", handlers.Pricing.GetCacheStats)
		pricing.DELETE("/cache", handlers.Pricing.ClearCache)
	}
}
