package dto

import (
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/history"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/pricing"
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CalculateQuoteRequest represents a rule-driven pricing request
type CalculateQuoteRequest struct {
	GarmentID      string            `json:"garment_id,omitempty"`
	Quantity       int               `json:"quantity" validate:"required,min=1"`
	Service        types.ServiceType `json:"service" validate:"required"`
	PrintLocations []string          `json:"print_locations,omitempty"`
	ColorCount     *int              `json:"color_count,omitempty"`
	StitchCount    *int              `json:"stitch_count,omitempty"`
	CustomerType   string            `json:"customer_type,omitempty"`
	GarmentType    string            `json:"garment_type,omitempty"`
	Supplier       string            `json:"supplier,omitempty"`
	IsRush         bool              `json:"is_rush,omitempty"`
	RushType       types.RushType    `json:"rush_type,omitempty"`

	// garment_cost overrides the catalog cost lookup when provided
	GarmentCost *decimal.Decimal `json:"garment_cost,omitempty"`

	// use_cache defaults to true; dry_run defaults to false
	UseCache *bool `json:"use_cache,omitempty"`
	DryRun   bool  `json:"dry_run,omitempty"`

	// quote_id / order_id link the ledger record to a quote or order
	QuoteID string `json:"quote_id,omitempty"`
	OrderID string `json:"order_id,omitempty"`
}

// ToPricingInput converts the request to a domain PricingInput
func (r CalculateQuoteRequest) ToPricingInput() *pricing.PricingInput {
	return &pricing.PricingInput{
		GarmentID:      r.GarmentID,
		Quantity:       r.Quantity,
		Service:        r.Service,
		PrintLocations: r.PrintLocations,
		ColorCount:     r.ColorCount,
		StitchCount:    r.StitchCount,
		CustomerType:   r.CustomerType,
		GarmentType:    r.GarmentType,
		Supplier:       r.Supplier,
		IsRush:         r.IsRush,
		RushType:       r.RushType,
		GarmentCost:    r.GarmentCost,
	}
}

// Options returns the calculation options encoded in the request
func (r CalculateQuoteRequest) Options() types.CalculationOptions {
	return types.CalculationOptions{
		UseCache: lo.FromPtrOr(r.UseCache, true),
		DryRun:   r.DryRun,
	}
}

// Metadata returns the ledger linkage, when any
func (r CalculateQuoteRequest) Metadata() *history.RecordMetadata {
	if r.QuoteID == "" && r.OrderID == "" {
		return nil
	}
	return &history.RecordMetadata{QuoteID: r.QuoteID, OrderID: r.OrderID}
}

// Validate validates the CalculateQuoteRequest
func (r CalculateQuoteRequest) Validate() error {
	return r.ToPricingInput().Validate()
}

// QuoteResponse represents the response for a rule-driven calculation
type QuoteResponse struct {
	*pricing.PricingOutput `json:",inline"`
}

// FixedQuoteRequest represents a rate-card quote request
type FixedQuoteRequest struct {
	Quantity    int               `json:"quantity" validate:"required,min=1"`
	Service     types.ServiceType `json:"service" validate:"required"`
	Colors      int               `json:"colors"`
	PrintSize   types.PrintSize   `json:"print_size" validate:"required"`
	Location    string            `json:"location,omitempty"`
	Rush        types.RushType    `json:"rush,omitempty"`
	AddOns      []types.AddOn     `json:"add_ons,omitempty"`
	IsNewDesign bool              `json:"is_new_design"`

	// profit_margin is a fraction, ex 0.35; defaults to the rate card margin
	ProfitMargin *decimal.Decimal `json:"profit_margin,omitempty"`
}

// ToParams converts the request to domain FixedQuoteParams
func (r FixedQuoteRequest) ToParams() pricing.FixedQuoteParams {
	return pricing.FixedQuoteParams{
		Quantity:     r.Quantity,
		Service:      r.Service,
		Colors:       r.Colors,
		PrintSize:    r.PrintSize,
		Location:     r.Location,
		Rush:         r.Rush,
		AddOns:       r.AddOns,
		IsNewDesign:  r.IsNewDesign,
		ProfitMargin: r.ProfitMargin,
	}
}

// FixedQuoteResponse represents the response for a rate-card quote
type FixedQuoteResponse struct {
	*pricing.FixedQuote `json:",inline"`
}

// HistoryRecordResponse represents one calculation ledger record
type HistoryRecordResponse struct {
	*history.Record `json:",inline"`
}

// ListHistoryResponse represents the response for ledger queries
type ListHistoryResponse struct {
	Items []*HistoryRecordResponse `json:"items"`
	Total int                      `json:"total"`
}

// CacheStatsResponse reports the quote cache size and TTL
type CacheStatsResponse struct {
	Size       int     `json:"size"`
	TTLSeconds float64 `json:"ttl_seconds"`
}
