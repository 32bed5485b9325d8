package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypnotizedent/printshop-os-sub011/internal/api"
	v1 "github.com/hypnotizedent/printshop-os-sub011/internal/api/v1"
	"github.com/hypnotizedent/printshop-os-sub011/internal/cache"
	"github.com/hypnotizedent/printshop-os-sub011/internal/config"
	"github.com/hypnotizedent/printshop-os-sub011/internal/logger"
	"github.com/hypnotizedent/printshop-os-sub011/internal/repository"
	"github.com/hypnotizedent/printshop-os-sub011/internal/service"
	"github.com/hypnotizedent/printshop-os-sub011/internal/validator"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Quote cache
			cache.NewInMemoryCache,

			// Repositories
			repository.NewRuleRepository,
			repository.NewGarmentCostRepository,
			repository.NewHistoryRepository,

			// Services
			service.NewServiceParams,
			service.NewPricingService,
			service.NewRuleService,

			// API
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	pricingService service.PricingService,
	ruleService service.RuleService,
) api.Handlers {
	return api.Handlers{
		Health:  v1.NewHealthHandler(logger),
		Pricing: v1.NewPricingHandler(pricingService, logger),
		Rule:    v1.NewRuleHandler(ruleService, logger),
	}
}

func provideRouter(handlers api.Handlers) *gin.Engine {
	return api.NewRouter(handlers)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
