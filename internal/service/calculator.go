package service

import (
	"fmt"

	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/pricing"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/rule"
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Defaults for the rule-driven pipeline, used whenever no matched rule
// overrides the corresponding field.
var (
	defaultLocationSurcharges = map[string]decimal.Decimal{
		"front":      decimal.NewFromFloat(2.0),
		"back":       decimal.NewFromFloat(3.0),
		"sleeve":     decimal.NewFromFloat(1.5),
		"chest":      decimal.Zero,
		"left-chest": decimal.Zero,
		"pocket":     decimal.NewFromFloat(1.0),
	}

	defaultMultiColorFactor   = decimal.NewFromFloat(1.3)
	defaultStitchPricePer1000 = decimal.NewFromFloat(1.5)

	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// defaultVolumeDiscountPct is the rule-driven pipeline's discount schedule,
// as a percentage. Distinct from the rate-card tiers on purpose: the two
// pricing modes have never shared discount tables.
func defaultVolumeDiscountPct(quantity int) decimal.Decimal {
	switch {
	case quantity >= 500:
		return decimal.NewFromInt(20)
	case quantity >= 100:
		return decimal.NewFromInt(10)
	default:
		return decimal.Zero
	}
}

// Per-field override resolvers. Each scans the priority-sorted match list
// and takes the value from the first rule that sets that specific field;
// later rules are ignored for that field even if also matched. Different
// fields may therefore be sourced from different rules in one calculation.

func firstLocationSurcharge(rules []*rule.PricingRule) map[string]decimal.Decimal {
	for _, r := range rules {
		if len(r.Calculations.LocationSurcharge) > 0 {
			return r.Calculations.LocationSurcharge
		}
	}
	return nil
}

func firstColorMultiplier(rules []*rule.PricingRule, colorCount int) *decimal.Decimal {
	for _, r := range rules {
		if multiplier, ok := r.Calculations.ColorMultiplier[colorCount]; ok {
			return &multiplier
		}
	}
	return nil
}

func firstStitchPrice(rules []*rule.PricingRule) *decimal.Decimal {
	for _, r := range rules {
		if r.Calculations.StitchPricePer1000 != nil {
			return r.Calculations.StitchPricePer1000
		}
	}
	return nil
}

func firstSetupFee(rules []*rule.PricingRule) *decimal.Decimal {
	for _, r := range rules {
		if r.Calculations.SetupFee != nil {
			return r.Calculations.SetupFee
		}
	}
	return nil
}

func firstSurchargePct(rules []*rule.PricingRule) *decimal.Decimal {
	for _, r := range rules {
		if r.Calculations.SurchargePct != nil {
			return r.Calculations.SurchargePct
		}
	}
	return nil
}

func firstUnitPriceOverride(rules []*rule.PricingRule) *decimal.Decimal {
	for _, r := range rules {
		if r.Calculations.UnitPriceOverride != nil {
			return r.Calculations.UnitPriceOverride
		}
	}
	return nil
}

// firstDiscountPct re-filters the matched rules against a quantity-only
// synthetic input, so a quantity-scoped discount applies regardless of the
// request's other attributes.
func firstDiscountPct(rules []*rule.PricingRule, quantity int) *decimal.Decimal {
	for _, r := range rules {
		if r.Calculations.DiscountPct == nil {
			continue
		}
		if r.Conditions.MatchesQuantityOnly(quantity) {
			return r.Calculations.DiscountPct
		}
	}
	return nil
}

func firstMarginTarget(rules []*rule.PricingRule) *decimal.Decimal {
	for _, r := range rules {
		if r.Calculations.MarginTarget != nil {
			return r.Calculations.MarginTarget
		}
	}
	return nil
}

// calculateRuleDriven runs the rule-driven pipeline: garment cost through
// location surcharges, color and stitch adjustments, volume discount and
// margin. Pure: no I/O, no clocks, no shared state. Intermediates keep
// full precision; the output is rounded to 2 decimals.
func calculateRuleDriven(
	input *pricing.PricingInput,
	matchedRules []*rule.PricingRule,
	garmentCost decimal.Decimal,
	defaultMarginPct decimal.Decimal,
) *pricing.PricingOutput {
	qty := decimal.NewFromInt(int64(input.Quantity))
	var lineItems []pricing.LineItem

	// Stage 1: garment base cost
	unitCost := garmentCost
	if override := firstUnitPriceOverride(matchedRules); override != nil {
		unitCost = *override
	}
	base := unitCost.Mul(qty)
	lineItems = append(lineItems, pricing.LineItem{
		Description: "Garment base cost",
		UnitCost:    lo.ToPtr(unitCost.Round(2)),
		Qty:         lo.ToPtr(input.Quantity),
		Total:       base.Round(2),
	})

	// Stage 2: per-location surcharges. A rule's surcharge map merges
	// over the defaults; unspecified locations keep their default rate.
	surcharges := defaultLocationSurcharges
	if overrides := firstLocationSurcharge(matchedRules); overrides != nil {
		merged := make(map[string]decimal.Decimal, len(defaultLocationSurcharges)+len(overrides))
		for location, amount := range defaultLocationSurcharges {
			merged[location] = amount
		}
		for location, amount := range overrides {
			merged[location] = amount
		}
		surcharges = merged
	}

	locationSurcharge := decimal.Zero
	for _, location := range input.PrintLocations {
		perUnit, ok := surcharges[location]
		if !ok || perUnit.IsZero() {
			continue
		}
		lineTotal := perUnit.Mul(qty)
		locationSurcharge = locationSurcharge.Add(lineTotal)
		lineItems = append(lineItems, pricing.LineItem{
			Description: fmt.Sprintf("Print location: %s", location),
			UnitCost:    lo.ToPtr(perUnit.Round(2)),
			Qty:         lo.ToPtr(input.Quantity),
			Total:       lineTotal.Round(2),
		})
	}

	// Stage 3: multi-color adjustment, screen printing only. The line
	// item records the delta over the pre-adjustment amount.
	colorAdjustment := decimal.Zero
	if input.Service == types.ServiceScreenPrint && input.ColorCount != nil && *input.ColorCount > 1 {
		factor := defaultMultiColorFactor
		if override := firstColorMultiplier(matchedRules, *input.ColorCount); override != nil {
			factor = *override
		}
		colorAdjustment = base.Add(locationSurcharge).Mul(factor.Sub(one))
		lineItems = append(lineItems, pricing.LineItem{
			Description: fmt.Sprintf("Color adjustment (%d colors)", *input.ColorCount),
			Factor:      lo.ToPtr(factor),
			Total:       colorAdjustment.Round(2),
		})
	}

	// Stage 4: embroidery stitch cost
	embroideryCost := decimal.Zero
	if input.Service == types.ServiceEmbroidery && input.StitchCount != nil {
		pricePer1000 := defaultStitchPricePer1000
		if override := firstStitchPrice(matchedRules); override != nil {
			pricePer1000 = *override
		}
		stitches := decimal.NewFromInt(int64(*input.StitchCount))
		embroideryCost = stitches.Div(decimal.NewFromInt(1000)).Mul(pricePer1000).Mul(qty)
		lineItems = append(lineItems, pricing.LineItem{
			Description: fmt.Sprintf("Embroidery (%d stitches)", *input.StitchCount),
			Total:       embroideryCost.Round(2),
		})
	}

	// Stage 5: subtotal, plus rule-sourced flat setup fee and surcharge
	subtotal := base.Add(locationSurcharge).Add(colorAdjustment).Add(embroideryCost)

	if setupFee := firstSetupFee(matchedRules); setupFee != nil && setupFee.IsPositive() {
		subtotal = subtotal.Add(*setupFee)
		lineItems = append(lineItems, pricing.LineItem{
			Description: "Setup fee",
			Total:       setupFee.Round(2),
		})
	}

	if surchargePct := firstSurchargePct(matchedRules); surchargePct != nil && !surchargePct.IsZero() {
		surcharge := subtotal.Mul(surchargePct.Div(hundred))
		subtotal = subtotal.Add(surcharge)
		lineItems = append(lineItems, pricing.LineItem{
			Description: fmt.Sprintf("Surcharge (%s%%)", surchargePct),
			Total:       surcharge.Round(2),
		})
	}

	// Stage 6: volume discount
	discountPct := defaultVolumeDiscountPct(input.Quantity)
	if override := firstDiscountPct(matchedRules, input.Quantity); override != nil {
		discountPct = *override
	}
	discountAmount := subtotal.Mul(discountPct.Div(hundred))
	finalAmount := subtotal.Sub(discountAmount)
	if discountPct.IsPositive() {
		lineItems = append(lineItems, pricing.LineItem{
			Description: fmt.Sprintf("Volume discount (%s%%)", discountPct),
			DiscountPct: lo.ToPtr(discountPct),
			Total:       discountAmount.Neg().Round(2),
		})
	}

	// Stage 7: margin
	marginPct := defaultMarginPct
	if target := firstMarginTarget(matchedRules); target != nil {
		marginPct = target.Mul(hundred)
	}
	marginAmount := finalAmount.Mul(marginPct.Div(hundred))
	totalPrice := finalAmount.Add(marginAmount)
	lineItems = append(lineItems, pricing.LineItem{
		Description: fmt.Sprintf("Margin (%s%%)", marginPct),
		Factor:      lo.ToPtr(one.Add(marginPct.Div(hundred))),
		Total:       marginAmount.Round(2),
	})

	rulesApplied := make([]string, 0, len(matchedRules))
	for _, r := range matchedRules {
		rulesApplied = append(rulesApplied, r.ID)
	}

	return &pricing.PricingOutput{
		LineItems:  lineItems,
		Subtotal:   subtotal.Round(2),
		MarginPct:  marginPct.Round(2),
		TotalPrice: totalPrice.Round(2),
		Breakdown: pricing.Breakdown{
			BaseCost:          base.Round(2),
			LocationSurcharge: locationSurcharge.Round(2),
			ColorAdjustment:   colorAdjustment.Round(2),
			EmbroideryCost:    embroideryCost.Round(2),
			VolumeDiscount:    discountAmount.Round(2),
			MarginAmount:      marginAmount.Round(2),
		},
		RulesApplied: rulesApplied,
	}
}
