package testutil

import (
	"context"
	"time"

	"github.com/hypnotizedent/printshop-os-sub011/internal/cache"
	"github.com/hypnotizedent/printshop-os-sub011/internal/config"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/garment"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/history"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/rule"
	"github.com/hypnotizedent/printshop-os-sub011/internal/logger"
	"github.com/hypnotizedent/printshop-os-sub011/internal/repository"
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
	"github.com/hypnotizedent/printshop-os-sub011/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	RuleRepo        rule.Repository
	GarmentCostRepo garment.CostRepository
	HistoryRepo     history.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	cache  cache.Cache
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	s.config = cfg

	var err error
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.cache = cache.NewInMemoryCache(s.config, s.logger)
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
	s.cache.Flush()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = context.WithValue(s.ctx, types.CtxRequestID, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		RuleRepo:        repository.NewInMemoryRuleStore(),
		GarmentCostRepo: repository.NewInMemoryGarmentCostStore(),
		HistoryRepo:     repository.NewInMemoryHistoryStore(),
	}
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.RuleRepo.(*repository.InMemoryRuleStore).Clear()
	s.stores.GarmentCostRepo.(*repository.InMemoryGarmentCostStore).Clear()
	s.stores.HistoryRepo.(*repository.InMemoryHistoryStore).Clear()
}

func (s *BaseServiceTestSuite) ClearStores() {
	s.clearStores()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetCache returns the test quote cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now.UTC()
}

// GetUUID returns a new UUID string
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
