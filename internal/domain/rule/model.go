package rule

import (
	"time"

	ierr "github.com/hypnotizedent/printshop-os-sub011/internal/errors"
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
	"github.com/shopspring/decimal"
)

// PricingRule is one versioned business rule. The ID is a stable business
// key shared by all versions of the rule; updates bump Version and archive
// the previous snapshot. The engine treats rules as immutable snapshots
// for the duration of a calculation.
type PricingRule struct {
	ID          string `json:"id"`
	Description string `json:"description"`

	// Version starts at 1 and increments on every update
	Version int `json:"version"`

	// EffectiveDate and ExpiryDate bound the half-open validity window.
	// A nil EffectiveDate means effective immediately; a nil ExpiryDate
	// means no expiry.
	EffectiveDate *time.Time `json:"effective_date,omitempty"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`

	Conditions   Conditions   `json:"conditions"`
	Calculations Calculations `json:"calculations"`

	// Priority breaks ties among multiple applicable rules, higher wins
	Priority int `json:"priority"`

	Enabled bool `json:"enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Conditions are the optional predicates a pricing input must satisfy for
// the rule to apply. An absent field is no constraint.
type Conditions struct {
	QuantityMin *int `json:"quantity_min,omitempty"`
	QuantityMax *int `json:"quantity_max,omitempty"`

	Services []types.ServiceType `json:"services,omitempty"`

	ColorCountMin *int `json:"color_count_min,omitempty"`
	ColorCountMax *int `json:"color_count_max,omitempty"`

	Locations     []string `json:"locations,omitempty"`
	CustomerTypes []string `json:"customer_types,omitempty"`
	GarmentTypes  []string `json:"garment_types,omitempty"`
	Suppliers     []string `json:"suppliers,omitempty"`
}

// Calculations are the optional overrides a matched rule contributes.
// Each field is resolved independently: the highest-priority matched rule
// that sets a field wins that field, and different fields may be sourced
// from different rules in the same calculation.
type Calculations struct {
	// DiscountPct replaces the volume discount, expressed as a
	// percentage, ex 12.5 for 12.5%
	DiscountPct *decimal.Decimal `json:"discount_pct,omitempty"`

	// SurchargePct is an additional percentage applied to the subtotal
	SurchargePct *decimal.Decimal `json:"surcharge_pct,omitempty"`

	// LocationSurcharge entries are merged over the default per-location
	// surcharges; unspecified locations keep their defaults
	LocationSurcharge map[string]decimal.Decimal `json:"location_surcharge,omitempty"`

	// ColorMultiplier is keyed by color count
	ColorMultiplier map[int]decimal.Decimal `json:"color_multiplier,omitempty"`

	// StitchPricePer1000 replaces the embroidery stitch rate
	StitchPricePer1000 *decimal.Decimal `json:"stitch_price_per_1000,omitempty"`

	// MarginTarget is a fraction, ex 0.4 for a 40% margin
	MarginTarget *decimal.Decimal `json:"margin_target,omitempty"`

	SetupFee          *decimal.Decimal `json:"setup_fee,omitempty"`
	UnitPriceOverride *decimal.Decimal `json:"unit_price_override,omitempty"`
}

// Validate rejects malformed rules on create and update
func (r *PricingRule) Validate() error {
	if r.ID == "" {
		return ierr.NewError("rule id is required").
			WithHint("Pricing rule id is required").
			Mark(ierr.ErrValidation)
	}
	if r.Description == "" {
		return ierr.NewError("rule description is required").
			WithHint("Pricing rule description is required").
			WithReportableDetails(map[string]any{"rule_id": r.ID}).
			Mark(ierr.ErrValidation)
	}
	if r.Version < 1 {
		return ierr.NewError("rule version must be at least 1").
			WithHint("Pricing rule version must be a positive integer").
			WithReportableDetails(map[string]any{"rule_id": r.ID, "version": r.Version}).
			Mark(ierr.ErrValidation)
	}
	if r.EffectiveDate != nil && r.ExpiryDate != nil && r.ExpiryDate.Before(*r.EffectiveDate) {
		return ierr.NewError("rule expiry date precedes effective date").
			WithHint("Expiry date must not be before the effective date").
			WithReportableDetails(map[string]any{"rule_id": r.ID}).
			Mark(ierr.ErrValidation)
	}
	for _, service := range r.Conditions.Services {
		if err := service.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ActiveAt reports whether the rule is enabled and inside its validity
// window at the given instant. Disabled or out-of-window rules never
// participate in matching.
func (r *PricingRule) ActiveAt(now time.Time) bool {
	if !r.Enabled {
		return false
	}
	if r.EffectiveDate != nil && r.EffectiveDate.After(now) {
		return false
	}
	if r.ExpiryDate != nil && r.ExpiryDate.Before(now) {
		return false
	}
	return true
}
