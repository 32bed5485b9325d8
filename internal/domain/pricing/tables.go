package pricing

import (
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
	"github.com/shopspring/decimal"
)

// Fixed multiplier tables for the quick-quote pipeline. These mirror the
// shop's published rate card and change only with a rate card revision.

// ServiceBasePrices is the base unit price per print method
var ServiceBasePrices = map[types.ServiceType]decimal.Decimal{
	types.ServiceScreenPrint: decimal.NewFromFloat(4.00),
	types.ServiceEmbroidery:  decimal.NewFromFloat(6.00),
	types.ServiceLaser:       decimal.NewFromFloat(3.50),
	types.ServiceTransfer:    decimal.NewFromFloat(2.50),
	types.ServiceDTG:         decimal.NewFromFloat(5.00),
	types.ServiceSublimation: decimal.NewFromFloat(4.50),
}

// ColorSurchargePerColor is added to the base unit price per ink color
// before the size multiplier is applied
var ColorSurchargePerColor = decimal.NewFromFloat(0.50)

// SizeMultipliers scale the unit price by artwork size
var SizeMultipliers = map[types.PrintSize]decimal.Decimal{
	types.PrintSizeS:     decimal.NewFromFloat(0.9),
	types.PrintSizeM:     decimal.NewFromFloat(1.0),
	types.PrintSizeL:     decimal.NewFromFloat(1.1),
	types.PrintSizeXL:    decimal.NewFromFloat(1.2),
	types.PrintSizeJumbo: decimal.NewFromFloat(1.35),
}

// LocationMultipliers scale the running subtotal by print placement
var LocationMultipliers = map[string]decimal.Decimal{
	"chest":        decimal.NewFromFloat(1.0),
	"front":        decimal.NewFromFloat(1.0),
	"back-neck":    decimal.NewFromFloat(1.05),
	"sleeve":       decimal.NewFromFloat(1.1),
	"full-back":    decimal.NewFromFloat(1.2),
	"sleeve-combo": decimal.NewFromFloat(1.25),
}

// RushMultipliers scale the running subtotal by turnaround level
var RushMultipliers = map[types.RushType]decimal.Decimal{
	types.RushStandard: decimal.NewFromFloat(1.0),
	types.RushTwoDay:   decimal.NewFromFloat(1.1),
	types.RushNextDay:  decimal.NewFromFloat(1.25),
	types.RushSameDay:  decimal.NewFromFloat(1.5),
}

// AddOnPrices are flat per-unit finishing prices
var AddOnPrices = map[types.AddOn]decimal.Decimal{
	types.AddOnFold:    decimal.NewFromFloat(0.15),
	types.AddOnTicket:  decimal.NewFromFloat(0.10),
	types.AddOnRelabel: decimal.NewFromFloat(0.20),
	types.AddOnHanger:  decimal.NewFromFloat(0.25),
}

// SetupFees is the one-time artwork preparation charge by print size,
// charged only for new designs and waived on reorders
var SetupFees = map[types.PrintSize]decimal.Decimal{
	types.PrintSizeS:     decimal.NewFromFloat(27.86),
	types.PrintSizeM:     decimal.NewFromFloat(34.83),
	types.PrintSizeL:     decimal.NewFromFloat(41.79),
	types.PrintSizeXL:    decimal.NewFromFloat(48.76),
	types.PrintSizeJumbo: decimal.NewFromFloat(62.69),
}

// volumeTier is a quantity-bounded discount bracket with an inclusive
// lower bound
type volumeTier struct {
	minQuantity int
	discount    decimal.Decimal // fraction, ex 0.05 for 5%
}

// fixedVolumeTiers are the rate card discount brackets, ordered by
// ascending lower bound
var fixedVolumeTiers = []volumeTier{
	{1, decimal.Zero},
	{50, decimal.NewFromFloat(0.05)},
	{100, decimal.NewFromFloat(0.08)},
	{250, decimal.NewFromFloat(0.10)},
	{500, decimal.NewFromFloat(0.12)},
	{1000, decimal.NewFromFloat(0.15)},
}

// DefaultProfitMargin is the margin fraction applied when the caller does
// not specify one
var DefaultProfitMargin = decimal.NewFromFloat(0.35)

// VolumeDiscountFraction returns the rate card discount fraction for a
// quantity, ex 0.08 for 100 <= qty < 250
func VolumeDiscountFraction(quantity int) decimal.Decimal {
	discount := decimal.Zero
	for _, tier := range fixedVolumeTiers {
		if quantity >= tier.minQuantity {
			discount = tier.discount
		}
	}
	return discount
}

// SetupFee returns the one-time artwork charge: the size fee for new
// designs, zero for reorders
func SetupFee(size types.PrintSize, isNewDesign bool) decimal.Decimal {
	if !isNewDesign {
		return decimal.Zero
	}
	if fee, ok := SetupFees[size]; ok {
		return fee
	}
	return decimal.Zero
}
