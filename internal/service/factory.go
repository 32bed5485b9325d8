package service

import (
	"github.com/hypnotizedent/printshop-os-sub011/internal/cache"
	"github.com/hypnotizedent/printshop-os-sub011/internal/config"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/garment"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/history"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/rule"
	"github.com/hypnotizedent/printshop-os-sub011/internal/logger"
)

// NewServiceParams assembles the common dependency bag for services
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	ruleRepo rule.Repository,
	garmentCostRepo garment.CostRepository,
	historyRepo history.Repository,
	cache cache.Cache,
) ServiceParams {
	return ServiceParams{
		Logger:          logger,
		Config:          config,
		RuleRepo:        ruleRepo,
		GarmentCostRepo: garmentCostRepo,
		HistoryRepo:     historyRepo,
		Cache:           cache,
	}
}

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	RuleRepo        rule.Repository
	GarmentCostRepo garment.CostRepository
	HistoryRepo     history.Repository

	// Quote cache
	Cache cache.Cache
}
