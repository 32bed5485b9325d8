package pricing

import (
	"fmt"

	ierr "github.com/hypnotizedent/printshop-os-sub011/internal/errors"
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// FixedQuoteParams are the inputs to the rate-card quote pipeline
type FixedQuoteParams struct {
	Quantity     int               `json:"quantity"`
	Service      types.ServiceType `json:"service"`
	Colors       int               `json:"colors"`
	PrintSize    types.PrintSize   `json:"print_size"`
	Location     string            `json:"location"`
	Rush         types.RushType    `json:"rush"`
	AddOns       []types.AddOn     `json:"add_ons,omitempty"`
	IsNewDesign  bool              `json:"is_new_design"`
	ProfitMargin *decimal.Decimal  `json:"profit_margin,omitempty"`
}

// Validate checks the parameters against the rate card tables
func (p *FixedQuoteParams) Validate() error {
	if p.Quantity < 1 {
		return ierr.NewError("quantity must be at least 1").
			WithHint("Quantity is required and must be a positive integer").
			WithReportableDetails(map[string]any{"quantity": p.Quantity}).
			Mark(ierr.ErrValidation)
	}
	if err := p.Service.Validate(); err != nil {
		return err
	}
	if err := p.PrintSize.Validate(); err != nil {
		return err
	}
	if p.Rush != "" {
		if err := p.Rush.Validate(); err != nil {
			return err
		}
	}
	if p.Location != "" {
		if _, ok := LocationMultipliers[p.Location]; !ok {
			return ierr.NewError("unknown print location").
				WithHint("Location must be one of chest, front, back-neck, sleeve, full-back, sleeve-combo").
				WithReportableDetails(map[string]any{"location": p.Location}).
				Mark(ierr.ErrValidation)
		}
	}
	for _, addOn := range p.AddOns {
		if err := addOn.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FixedQuote exposes every intermediate of the rate-card pipeline. The
// transparency is part of the contract: quotes must be explainable stage
// by stage, not just a final number.
type FixedQuote struct {
	UnitPrice         decimal.Decimal `json:"unit_price"`
	SetupFee          decimal.Decimal `json:"setup_fee"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	LocationPrice     decimal.Decimal `json:"location_price"`
	RushPrice         decimal.Decimal `json:"rush_price"`
	AddOnCost         decimal.Decimal `json:"add_on_cost"`
	WithAddOns        decimal.Decimal `json:"with_add_ons"`
	VolumeDiscountPct decimal.Decimal `json:"volume_discount_pct"`
	Discounted        decimal.Decimal `json:"discounted"`
	ProfitMargin      decimal.Decimal `json:"profit_margin"`
	FinalPrice        decimal.Decimal `json:"final_price"`
	LineItems         []LineItem      `json:"line_items"`
}

// GenerateFixedQuote prices a job off the fixed rate card. Intermediate
// values keep full precision; rounding to 2 decimals happens once, on the
// returned quote.
func GenerateFixedQuote(params FixedQuoteParams) (*FixedQuote, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	qty := decimal.NewFromInt(int64(params.Quantity))

	// Stage 1: unit price from service base, color surcharge and size
	colors := decimal.NewFromInt(int64(params.Colors))
	unitPrice := ServiceBasePrices[params.Service].
		Add(colors.Mul(ColorSurchargePerColor)).
		Mul(SizeMultipliers[params.PrintSize])

	// Stage 2: one-time setup fee for new artwork
	setupFee := SetupFee(params.PrintSize, params.IsNewDesign)

	// Stage 3: subtotal
	subtotal := unitPrice.Mul(qty).Add(setupFee)

	// Stage 4: location multiplier
	locationMult := decimal.NewFromInt(1)
	if params.Location != "" {
		locationMult = LocationMultipliers[params.Location]
	}
	locationPrice := subtotal.Mul(locationMult)

	// Stage 5: rush multiplier
	rushMult := RushMultipliers[types.RushStandard]
	if params.Rush != "" {
		rushMult = RushMultipliers[params.Rush]
	}
	rushPrice := locationPrice.Mul(rushMult)

	// Stage 6: per-unit add-ons
	addOnCost := decimal.Zero
	for _, addOn := range params.AddOns {
		addOnCost = addOnCost.Add(AddOnPrices[addOn].Mul(qty))
	}
	withAddOns := rushPrice.Add(addOnCost)

	// Stage 7: volume discount
	discountPct := VolumeDiscountFraction(params.Quantity)
	discounted := withAddOns.Mul(decimal.NewFromInt(1).Sub(discountPct))

	// Stage 8: profit margin
	margin := DefaultProfitMargin
	if params.ProfitMargin != nil {
		margin = *params.ProfitMargin
	}
	finalPrice := discounted.Mul(decimal.NewFromInt(1).Add(margin))

	quote := &FixedQuote{
		UnitPrice:         unitPrice.Round(2),
		SetupFee:          setupFee.Round(2),
		Subtotal:          subtotal.Round(2),
		LocationPrice:     locationPrice.Round(2),
		RushPrice:         rushPrice.Round(2),
		AddOnCost:         addOnCost.Round(2),
		WithAddOns:        withAddOns.Round(2),
		VolumeDiscountPct: discountPct.Mul(decimal.NewFromInt(100)).Round(2),
		Discounted:        discounted.Round(2),
		ProfitMargin:      margin,
		FinalPrice:        finalPrice.Round(2),
	}
	quote.LineItems = fixedQuoteLineItems(params, quote, locationMult, rushMult)

	return quote, nil
}

func fixedQuoteLineItems(params FixedQuoteParams, q *FixedQuote, locationMult, rushMult decimal.Decimal) []LineItem {
	items := []LineItem{
		{
			Description: fmt.Sprintf("%s printing, %d color(s), size %s", params.Service, params.Colors, params.PrintSize),
			UnitCost:    lo.ToPtr(q.UnitPrice),
			Qty:         lo.ToPtr(params.Quantity),
			Total:       q.UnitPrice.Mul(decimal.NewFromInt(int64(params.Quantity))).Round(2),
		},
	}

	if q.SetupFee.IsPositive() {
		items = append(items, LineItem{
			Description: fmt.Sprintf("New design setup (%s)", params.PrintSize),
			Total:       q.SetupFee,
		})
	}

	if !locationMult.Equal(decimal.NewFromInt(1)) {
		items = append(items, LineItem{
			Description: fmt.Sprintf("Location: %s", params.Location),
			Factor:      lo.ToPtr(locationMult),
			Total:       q.LocationPrice.Sub(q.Subtotal),
		})
	}

	if !rushMult.Equal(decimal.NewFromInt(1)) {
		items = append(items, LineItem{
			Description: fmt.Sprintf("Rush service: %s", params.Rush),
			Factor:      lo.ToPtr(rushMult),
			Total:       q.RushPrice.Sub(q.LocationPrice),
		})
	}

	for _, addOn := range params.AddOns {
		items = append(items, LineItem{
			Description: fmt.Sprintf("Add-on: %s", addOn),
			UnitCost:    lo.ToPtr(AddOnPrices[addOn]),
			Qty:         lo.ToPtr(params.Quantity),
			Total:       AddOnPrices[addOn].Mul(decimal.NewFromInt(int64(params.Quantity))).Round(2),
		})
	}

	if q.VolumeDiscountPct.IsPositive() {
		items = append(items, LineItem{
			Description: fmt.Sprintf("Volume discount (%s%%)", q.VolumeDiscountPct),
			DiscountPct: lo.ToPtr(q.VolumeDiscountPct),
			Total:       q.Discounted.Sub(q.WithAddOns),
		})
	}

	items = append(items, LineItem{
		Description: "Profit margin",
		Factor:      lo.ToPtr(decimal.NewFromInt(1).Add(q.ProfitMargin)),
		Total:       q.FinalPrice.Sub(q.Discounted),
	})

	return items
}

// ProfitForMargin returns the profit earned on a quote priced at the given
// margin fraction: strictly increasing in the margin, all else equal.
func ProfitForMargin(params FixedQuoteParams, margin decimal.Decimal) (decimal.Decimal, error) {
	params.ProfitMargin = lo.ToPtr(margin)
	quote, err := GenerateFixedQuote(params)
	if err != nil {
		return decimal.Zero, err
	}
	return quote.FinalPrice.Sub(quote.Discounted), nil
}
