package pricing

import (
	ierr "github.com/hypnotizedent/printshop-os-sub011/internal/errors"
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
	"github.com/shopspring/decimal"
)

// PricingInput is a single pricing request. It is transient: constructed
// per request and only persisted through the calculation ledger.
type PricingInput struct {
	// GarmentID identifies the garment whose unit cost seeds the
	// calculation. Optional; unknown garments price at the default cost.
	GarmentID string `json:"garment_id,omitempty"`

	// Quantity is the number of units, must be >= 1
	Quantity int `json:"quantity"`

	// Service is the print method
	Service types.ServiceType `json:"service"`

	// PrintLocations are the requested print placements. Order is
	// irrelevant for pricing but preserved for display.
	PrintLocations []string `json:"print_locations,omitempty"`

	// ColorCount is the number of ink colors, when known
	ColorCount *int `json:"color_count,omitempty"`

	// StitchCount is the embroidery stitch count, when known
	StitchCount *int `json:"stitch_count,omitempty"`

	CustomerType string `json:"customer_type,omitempty"`
	GarmentType  string `json:"garment_type,omitempty"`
	Supplier     string `json:"supplier,omitempty"`

	IsRush   bool           `json:"is_rush,omitempty"`
	RushType types.RushType `json:"rush_type,omitempty"`

	// GarmentCost overrides the cost lookup when the caller already
	// knows the unit cost
	GarmentCost *decimal.Decimal `json:"garment_cost,omitempty"`
}

// Validate rejects inputs that must never reach the rule fetch:
// a missing or non-positive quantity and an unknown service.
func (i *PricingInput) Validate() error {
	if i.Quantity < 1 {
		return ierr.NewError("quantity must be at least 1").
			WithHint("Quantity is required and must be a positive integer").
			WithReportableDetails(map[string]any{"quantity": i.Quantity}).
			Mark(ierr.ErrValidation)
	}
	if err := i.Service.Validate(); err != nil {
		return err
	}
	if i.RushType != "" {
		if err := i.RushType.Validate(); err != nil {
			return err
		}
	}
	return nil
}
