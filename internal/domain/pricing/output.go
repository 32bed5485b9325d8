package pricing

import (
	"github.com/shopspring/decimal"
)

// LineItem is one itemized component of a quote breakdown. Totals are
// signed: discounts carry negative totals.
type LineItem struct {
	Description string           `json:"description"`
	UnitCost    *decimal.Decimal `json:"unit_cost,omitempty"`
	Qty         *int             `json:"qty,omitempty"`
	Total       decimal.Decimal  `json:"total"`
	Factor      *decimal.Decimal `json:"factor,omitempty"`
	DiscountPct *decimal.Decimal `json:"discount_pct,omitempty"`
}

// Breakdown summarizes the contribution of each pipeline stage
type Breakdown struct {
	BaseCost          decimal.Decimal `json:"base_cost"`
	LocationSurcharge decimal.Decimal `json:"location_surcharge"`
	ColorAdjustment   decimal.Decimal `json:"color_adjustment"`
	EmbroideryCost    decimal.Decimal `json:"embroidery_cost"`
	VolumeDiscount    decimal.Decimal `json:"volume_discount"`
	MarginAmount      decimal.Decimal `json:"margin_amount"`
}

// PricingOutput is the result of a calculation. Immutable once produced;
// identical input against an identical rule set yields an identical output.
type PricingOutput struct {
	// LineItems follow pipeline stage order. The order matters for
	// human-readable breakdowns, not for the numeric total.
	LineItems []LineItem `json:"line_items"`

	Subtotal   decimal.Decimal `json:"subtotal"`
	MarginPct  decimal.Decimal `json:"margin_pct"`
	TotalPrice decimal.Decimal `json:"total_price"`

	Breakdown Breakdown `json:"breakdown"`

	// RulesApplied lists, in priority order, every rule that matched the
	// input and was considered, whether or not it won any override field.
	RulesApplied []string `json:"rules_applied"`

	CalculationTimeMs int64 `json:"calculation_time_ms"`
}
