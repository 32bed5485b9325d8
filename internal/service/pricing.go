package service

import (
	"context"
	"time"

	"github.com/hypnotizedent/printshop-os-sub011/internal/api/dto"
	"github.com/hypnotizedent/printshop-os-sub011/internal/cache"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/history"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/pricing"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/rule"
	ierr "github.com/hypnotizedent/printshop-os-sub011/internal/errors"
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
	"github.com/shopspring/decimal"
)

// PricingService orchestrates the pricing engine: rule selection, both
// calculation pipelines, the fingerprint cache and the calculation ledger.
type PricingService interface {
	// CalculateQuote runs the rule-driven pipeline for an input
	CalculateQuote(ctx context.Context, req dto.CalculateQuoteRequest) (*dto.QuoteResponse, error)

	// GenerateFixedQuote prices a job off the fixed rate card
	GenerateFixedQuote(ctx context.Context, req dto.FixedQuoteRequest) (*dto.FixedQuoteResponse, error)

	// GetHistory queries the calculation ledger
	GetHistory(ctx context.Context, filter types.HistoryFilter) (*dto.ListHistoryResponse, error)

	// ClearCache drops every cached quote
	ClearCache(ctx context.Context)

	// GetCacheStats reports the cache size and configured TTL
	GetCacheStats(ctx context.Context) *dto.CacheStatsResponse
}

type pricingService struct {
	ServiceParams
}

func NewPricingService(params ServiceParams) PricingService {
	return &pricingService{ServiceParams: params}
}

func (s *pricingService) CalculateQuote(ctx context.Context, req dto.CalculateQuoteRequest) (*dto.QuoteResponse, error) {
	// Invalid inputs are rejected before any rule fetch and are never
	// cached or ledgered.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	input := req.ToPricingInput()
	options := req.Options()

	cacheKey := cache.GenerateKey(cache.PrefixQuote, input.Fingerprint())
	if options.UseCache {
		if value, found := s.Cache.Get(cacheKey); found {
			if output, ok := value.(*pricing.PricingOutput); ok {
				// Already computed and ledgered on first calculation
				return &dto.QuoteResponse{PricingOutput: output}, nil
			}
		}
	}

	start := time.Now()

	// A failing rule fetch is fatal to the calculation
	rules, err := s.RuleRepo.List(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Unable to load pricing rules").
			Mark(ierr.ErrStorageUnavailable)
	}

	garmentCost, err := s.resolveGarmentCost(ctx, input)
	if err != nil {
		return nil, err
	}

	matched := rule.ApplicableRules(rules, input, time.Now().UTC())
	output := calculateRuleDriven(input, matched, garmentCost, s.defaultMarginPct())
	output.CalculationTimeMs = time.Since(start).Milliseconds()

	if options.UseCache {
		s.Cache.Set(cacheKey, output, s.Config.Cache.TTL)
	}

	// Dry runs never reach the ledger. A failing ledger append never
	// fails the calculation.
	if !options.DryRun {
		record := &history.Record{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CALCULATION),
			QuoteNumber: types.GenerateQuoteNumber(),
			Timestamp:   time.Now().UTC(),
			Input:       *input,
			Output:      *output,
			Metadata:    req.Metadata(),
		}
		if err := s.HistoryRepo.Save(ctx, record); err != nil {
			s.Logger.WithContext(ctx).Errorw("failed to append calculation to ledger",
				"error", err,
				"garment_id", input.GarmentID,
			)
		}
	}

	return &dto.QuoteResponse{PricingOutput: output}, nil
}

// resolveGarmentCost prefers the caller-supplied cost, then the catalog,
// then the configured default for unknown garments.
func (s *pricingService) resolveGarmentCost(ctx context.Context, input *pricing.PricingInput) (decimal.Decimal, error) {
	if input.GarmentCost != nil {
		return *input.GarmentCost, nil
	}

	defaultCost := decimal.NewFromFloat(s.Config.Pricing.DefaultGarmentCost)
	if input.GarmentID == "" {
		return defaultCost, nil
	}

	cost, err := s.GarmentCostRepo.GetCost(ctx, input.GarmentID)
	if err != nil {
		if ierr.IsNotFound(err) {
			s.Logger.WithContext(ctx).Debugw("garment not in catalog, using default cost",
				"garment_id", input.GarmentID,
			)
			return defaultCost, nil
		}
		return decimal.Zero, err
	}
	return cost, nil
}

func (s *pricingService) defaultMarginPct() decimal.Decimal {
	return decimal.NewFromFloat(s.Config.Pricing.DefaultMargin).Mul(hundred)
}

func (s *pricingService) GenerateFixedQuote(ctx context.Context, req dto.FixedQuoteRequest) (*dto.FixedQuoteResponse, error) {
	quote, err := pricing.GenerateFixedQuote(req.ToParams())
	if err != nil {
		return nil, err
	}
	return &dto.FixedQuoteResponse{FixedQuote: quote}, nil
}

func (s *pricingService) GetHistory(ctx context.Context, filter types.HistoryFilter) (*dto.ListHistoryResponse, error) {
	records, err := s.HistoryRepo.List(ctx, filter)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Unable to query calculation history").
			Mark(ierr.ErrStorageUnavailable)
	}

	response := &dto.ListHistoryResponse{
		Items: make([]*dto.HistoryRecordResponse, 0, len(records)),
		Total: len(records),
	}
	for _, record := range records {
		response.Items = append(response.Items, &dto.HistoryRecordResponse{Record: record})
	}
	return response, nil
}

func (s *pricingService) ClearCache(ctx context.Context) {
	s.Cache.Flush()
	s.Logger.WithContext(ctx).Infow("quote cache cleared")
}

func (s *pricingService) GetCacheStats(ctx context.Context) *dto.CacheStatsResponse {
	return &dto.CacheStatsResponse{
		Size:       s.Cache.ItemCount(),
		TTLSeconds: s.Config.Cache.TTL.Seconds(),
	}
}
