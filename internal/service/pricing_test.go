package service

import (
	"context"
	"testing"

	"github.com/hypnotizedent/printshop-os-sub011/internal/api/dto"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/history"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/rule"
	ierr "github.com/hypnotizedent/printshop-os-sub011/internal/errors"
	"github.com/hypnotizedent/printshop-os-sub011/internal/repository"
	"github.com/hypnotizedent/printshop-os-sub011/internal/testutil"
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// countingRuleStore wraps a rule repository and counts List calls, to
// observe whether a calculation was served from the cache.
type countingRuleStore struct {
	rule.Repository
	listCalls int
}

func (s *countingRuleStore) List(ctx context.Context) ([]*rule.PricingRule, error) {
	s.listCalls++
	return s.Repository.List(ctx)
}

type failingRuleStore struct {
	rule.Repository
}

func (s *failingRuleStore) List(ctx context.Context) ([]*rule.PricingRule, error) {
	return nil, ierr.NewError("rule store unreachable").
		WithHint("Unable to load pricing rules").
		Mark(ierr.ErrStorageUnavailable)
}

type failingHistoryStore struct {
	history.Repository
}

func (s *failingHistoryStore) Save(ctx context.Context, record *history.Record) error {
	return ierr.NewError("ledger unreachable").
		WithHint("Unable to append to the calculation ledger").
		Mark(ierr.ErrStorageUnavailable)
}

type PricingServiceSuite struct {
	testutil.BaseServiceTestSuite
	ruleStore   *countingRuleStore
	params      ServiceParams
	service     PricingService
	ruleService RuleService
}

func TestPricingService(t *testing.T) {
	suite.Run(t, new(PricingServiceSuite))
}

func (s *PricingServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	s.ruleStore = &countingRuleStore{Repository: s.GetStores().RuleRepo}
	s.params = ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		RuleRepo:        s.ruleStore,
		GarmentCostRepo: s.GetStores().GarmentCostRepo,
		HistoryRepo:     s.GetStores().HistoryRepo,
		Cache:           s.GetCache(),
	}
	s.service = NewPricingService(s.params)
	s.ruleService = NewRuleService(s.params)

	s.GetStores().GarmentCostRepo.(*repository.InMemoryGarmentCostStore).
		SetCost("tee-basic", decimal.NewFromFloat(4.50))
}

// embroideryRequest prices 10 basic tees with a 5000 stitch design:
// 45.00 base + 75.00 embroidery, no discount, 35% margin.
func embroideryRequest() dto.CalculateQuoteRequest {
	return dto.CalculateQuoteRequest{
		GarmentID:   "tee-basic",
		Quantity:    10,
		Service:     types.ServiceEmbroidery,
		StitchCount: lo.ToPtr(5000),
	}
}

func (s *PricingServiceSuite) TestEmbroideryQuote() {
	resp, err := s.service.CalculateQuote(s.GetContext(), embroideryRequest())
	s.NoError(err)
	s.Require().NotNil(resp)

	s.Equal("45.00", resp.Breakdown.BaseCost.StringFixed(2))
	s.Equal("75.00", resp.Breakdown.EmbroideryCost.StringFixed(2))
	s.Equal("120.00", resp.Subtotal.StringFixed(2))
	s.Equal("42.00", resp.Breakdown.MarginAmount.StringFixed(2))
	s.Equal("162.00", resp.TotalPrice.StringFixed(2))
	s.Empty(resp.RulesApplied)
	s.GreaterOrEqual(resp.CalculationTimeMs, int64(0))
}

func (s *PricingServiceSuite) TestScreenPrintWithLocations() {
	resp, err := s.service.CalculateQuote(s.GetContext(), dto.CalculateQuoteRequest{
		GarmentID:      "tee-basic",
		Quantity:       10,
		Service:        types.ServiceScreenPrint,
		ColorCount:     lo.ToPtr(2),
		PrintLocations: []string{"front", "sleeve"},
	})
	s.NoError(err)

	// 45.00 base, 20.00 front + 15.00 sleeve surcharges, then 30% of the
	// running 80.00 for the second color.
	s.Equal("35.00", resp.Breakdown.LocationSurcharge.StringFixed(2))
	s.Equal("24.00", resp.Breakdown.ColorAdjustment.StringFixed(2))
	s.Equal("104.00", resp.Subtotal.StringFixed(2))
	s.Equal("140.40", resp.TotalPrice.StringFixed(2))
}

func (s *PricingServiceSuite) TestRuleOverridesSurchargeAndMargin() {
	err := s.GetStores().RuleRepo.Create(s.GetContext(), &rule.PricingRule{
		ID:          "premium-front",
		Description: "Premium front placement with a 50% margin",
		Version:     1,
		Priority:    5,
		Enabled:     true,
		Calculations: rule.Calculations{
			LocationSurcharge: map[string]decimal.Decimal{"front": decimal.NewFromInt(5)},
			MarginTarget:      lo.ToPtr(decimal.NewFromFloat(0.5)),
		},
	})
	s.Require().NoError(err)

	resp, err := s.service.CalculateQuote(s.GetContext(), dto.CalculateQuoteRequest{
		GarmentID:      "tee-basic",
		Quantity:       10,
		Service:        types.ServiceScreenPrint,
		PrintLocations: []string{"front", "sleeve"},
	})
	s.NoError(err)

	// front overridden to 5.00, sleeve keeps its 1.50 default
	s.Equal("65.00", resp.Breakdown.LocationSurcharge.StringFixed(2))
	s.Equal("110.00", resp.Subtotal.StringFixed(2))
	s.Equal("50.00", resp.MarginPct.StringFixed(2))
	s.Equal("165.00", resp.TotalPrice.StringFixed(2))
	s.Equal([]string{"premium-front"}, resp.RulesApplied)
}

func (s *PricingServiceSuite) TestHigherPriorityDiscountWins() {
	for _, r := range []*rule.PricingRule{
		{
			ID: "vip-discount", Description: "VIP discount", Version: 1,
			Priority: 10, Enabled: true,
			Calculations: rule.Calculations{DiscountPct: lo.ToPtr(decimal.NewFromInt(15))},
		},
		{
			ID: "base-discount", Description: "Baseline discount", Version: 1,
			Priority: 1, Enabled: true,
			Calculations: rule.Calculations{DiscountPct: lo.ToPtr(decimal.NewFromInt(5))},
		},
	} {
		s.Require().NoError(s.GetStores().RuleRepo.Create(s.GetContext(), r))
	}

	resp, err := s.service.CalculateQuote(s.GetContext(), embroideryRequest())
	s.NoError(err)

	// 15% of the 120.00 subtotal, then the default margin
	s.Equal("18.00", resp.Breakdown.VolumeDiscount.StringFixed(2))
	s.Equal("137.70", resp.TotalPrice.StringFixed(2))
	// Both matched rules are reported, highest priority first
	s.Equal([]string{"vip-discount", "base-discount"}, resp.RulesApplied)
}

func (s *PricingServiceSuite) TestDisabledAndExpiredRulesIgnored() {
	disabled := &rule.PricingRule{
		ID: "disabled", Description: "Disabled discount", Version: 1,
		Priority: 10, Enabled: false,
		Calculations: rule.Calculations{DiscountPct: lo.ToPtr(decimal.NewFromInt(50))},
	}
	expired := &rule.PricingRule{
		ID: "expired", Description: "Expired discount", Version: 1,
		Priority: 10, Enabled: true,
		ExpiryDate:   lo.ToPtr(s.GetNow().AddDate(0, 0, -1)),
		Calculations: rule.Calculations{DiscountPct: lo.ToPtr(decimal.NewFromInt(50))},
	}
	s.Require().NoError(s.GetStores().RuleRepo.Create(s.GetContext(), disabled))
	s.Require().NoError(s.GetStores().RuleRepo.Create(s.GetContext(), expired))

	resp, err := s.service.CalculateQuote(s.GetContext(), embroideryRequest())
	s.NoError(err)

	s.Equal("162.00", resp.TotalPrice.StringFixed(2))
	s.Empty(resp.RulesApplied)
}

func (s *PricingServiceSuite) TestDeterminism() {
	req := embroideryRequest()
	req.UseCache = lo.ToPtr(false)

	first, err := s.service.CalculateQuote(s.GetContext(), req)
	s.NoError(err)
	second, err := s.service.CalculateQuote(s.GetContext(), req)
	s.NoError(err)

	s.True(first.TotalPrice.Equal(second.TotalPrice))
	s.True(first.Subtotal.Equal(second.Subtotal))
	s.Equal(len(first.LineItems), len(second.LineItems))
	s.Equal(first.RulesApplied, second.RulesApplied)
}

func (s *PricingServiceSuite) TestCacheHitSkipsRuleFetch() {
	first, err := s.service.CalculateQuote(s.GetContext(), embroideryRequest())
	s.NoError(err)
	s.Equal(1, s.ruleStore.listCalls)

	second, err := s.service.CalculateQuote(s.GetContext(), embroideryRequest())
	s.NoError(err)
	s.Equal(1, s.ruleStore.listCalls)
	s.True(first.TotalPrice.Equal(second.TotalPrice))

	// The cached call is not re-ledgered
	records, err := s.GetStores().HistoryRepo.List(s.GetContext(), types.HistoryFilter{})
	s.NoError(err)
	s.Len(records, 1)
}

func (s *PricingServiceSuite) TestUseCacheFalseBypassesCache() {
	req := embroideryRequest()
	req.UseCache = lo.ToPtr(false)

	_, err := s.service.CalculateQuote(s.GetContext(), req)
	s.NoError(err)
	_, err = s.service.CalculateQuote(s.GetContext(), req)
	s.NoError(err)

	s.Equal(2, s.ruleStore.listCalls)
	s.Equal(0, s.GetCache().ItemCount())
}

func (s *PricingServiceSuite) TestRuleMutationForcesFreshCalculation() {
	first, err := s.service.CalculateQuote(s.GetContext(), embroideryRequest())
	s.NoError(err)
	s.Equal("162.00", first.TotalPrice.StringFixed(2))
	s.Equal(1, s.ruleStore.listCalls)

	_, err = s.ruleService.CreateRule(s.GetContext(), dto.CreateRuleRequest{
		ID:          "flash-sale",
		Description: "Flash sale discount",
		Calculations: rule.Calculations{
			DiscountPct: lo.ToPtr(decimal.NewFromInt(25)),
		},
	})
	s.Require().NoError(err)

	second, err := s.service.CalculateQuote(s.GetContext(), embroideryRequest())
	s.NoError(err)
	s.Equal(2, s.ruleStore.listCalls)
	// 120.00 - 25%, then the default margin
	s.Equal("121.50", second.TotalPrice.StringFixed(2))
}

func (s *PricingServiceSuite) TestDryRunNeverLedgered() {
	req := embroideryRequest()
	req.DryRun = true

	resp, err := s.service.CalculateQuote(s.GetContext(), req)
	s.NoError(err)
	s.Equal("162.00", resp.TotalPrice.StringFixed(2))

	records, err := s.GetStores().HistoryRepo.List(s.GetContext(), types.HistoryFilter{})
	s.NoError(err)
	s.Empty(records)
}

func (s *PricingServiceSuite) TestUnknownGarmentUsesDefaultCost() {
	resp, err := s.service.CalculateQuote(s.GetContext(), dto.CalculateQuoteRequest{
		GarmentID: "not-in-catalog",
		Quantity:  10,
		Service:   types.ServiceScreenPrint,
	})
	s.NoError(err)

	// 10 x the configured 4.50 default, 35% margin
	s.Equal("45.00", resp.Breakdown.BaseCost.StringFixed(2))
	s.Equal("60.75", resp.TotalPrice.StringFixed(2))
}

func (s *PricingServiceSuite) TestCallerGarmentCostOverridesCatalog() {
	resp, err := s.service.CalculateQuote(s.GetContext(), dto.CalculateQuoteRequest{
		GarmentID:   "tee-basic",
		Quantity:    10,
		Service:     types.ServiceScreenPrint,
		GarmentCost: lo.ToPtr(decimal.NewFromInt(6)),
	})
	s.NoError(err)
	s.Equal("60.00", resp.Breakdown.BaseCost.StringFixed(2))
}

func (s *PricingServiceSuite) TestRuleFetchFailureIsFatal() {
	params := s.params
	params.RuleRepo = &failingRuleStore{Repository: s.GetStores().RuleRepo}
	svc := NewPricingService(params)

	_, err := svc.CalculateQuote(s.GetContext(), embroideryRequest())
	s.Error(err)
	s.True(ierr.IsStorageUnavailable(err))

	records, err := s.GetStores().HistoryRepo.List(s.GetContext(), types.HistoryFilter{})
	s.NoError(err)
	s.Empty(records)
}

func (s *PricingServiceSuite) TestLedgerFailureDoesNotFailCalculation() {
	params := s.params
	params.HistoryRepo = &failingHistoryStore{Repository: s.GetStores().HistoryRepo}
	svc := NewPricingService(params)

	resp, err := svc.CalculateQuote(s.GetContext(), embroideryRequest())
	s.NoError(err)
	s.Equal("162.00", resp.TotalPrice.StringFixed(2))
}

func (s *PricingServiceSuite) TestInvalidInputRejectedBeforeRuleFetch() {
	_, err := s.service.CalculateQuote(s.GetContext(), dto.CalculateQuoteRequest{
		Quantity: 0,
		Service:  types.ServiceScreenPrint,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
	s.Equal(0, s.ruleStore.listCalls)

	_, err = s.service.CalculateQuote(s.GetContext(), dto.CalculateQuoteRequest{
		Quantity: 10,
		Service:  types.ServiceType("letterpress"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
	s.Equal(0, s.ruleStore.listCalls)
}

func (s *PricingServiceSuite) TestGetHistory() {
	req := embroideryRequest()
	req.QuoteID = "q-100"
	_, err := s.service.CalculateQuote(s.GetContext(), req)
	s.Require().NoError(err)

	other := embroideryRequest()
	other.Quantity = 20
	other.OrderID = "o-200"
	_, err = s.service.CalculateQuote(s.GetContext(), other)
	s.Require().NoError(err)

	all, err := s.service.GetHistory(s.GetContext(), types.HistoryFilter{})
	s.NoError(err)
	s.Equal(2, all.Total)
	for _, item := range all.Items {
		s.NotEmpty(item.ID)
		s.NotEmpty(item.QuoteNumber)
	}

	byQuote, err := s.service.GetHistory(s.GetContext(), types.HistoryFilter{QuoteID: "q-100"})
	s.NoError(err)
	s.Require().Equal(1, byQuote.Total)
	s.Equal(10, byQuote.Items[0].Input.Quantity)

	byOrder, err := s.service.GetHistory(s.GetContext(), types.HistoryFilter{OrderID: "o-200"})
	s.NoError(err)
	s.Require().Equal(1, byOrder.Total)
	s.Equal(20, byOrder.Items[0].Input.Quantity)
}

func (s *PricingServiceSuite) TestCacheStatsAndClear() {
	_, err := s.service.CalculateQuote(s.GetContext(), embroideryRequest())
	s.Require().NoError(err)

	stats := s.service.GetCacheStats(s.GetContext())
	s.Equal(1, stats.Size)
	s.Equal(s.GetConfig().Cache.TTL.Seconds(), stats.TTLSeconds)

	s.service.ClearCache(s.GetContext())
	s.Equal(0, s.service.GetCacheStats(s.GetContext()).Size)
}

func (s *PricingServiceSuite) TestGenerateFixedQuote() {
	resp, err := s.service.GenerateFixedQuote(s.GetContext(), dto.FixedQuoteRequest{
		Quantity:    100,
		Service:     types.ServiceScreenPrint,
		Colors:      1,
		PrintSize:   types.PrintSizeM,
		Location:    "chest",
		IsNewDesign: true,
	})
	s.NoError(err)
	s.Equal("602.16", resp.FinalPrice.StringFixed(2))

	_, err = s.service.GenerateFixedQuote(s.GetContext(), dto.FixedQuoteRequest{
		Quantity:  0,
		Service:   types.ServiceScreenPrint,
		PrintSize: types.PrintSizeM,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}
