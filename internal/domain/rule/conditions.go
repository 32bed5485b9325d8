package rule

import (
	"slices"

	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/pricing"
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
)

// Matches reports whether the input satisfies every present condition.
// Checks are ANDed.
//
// Set-membership checks are deliberately permissive: when the input omits
// a field the rule constrains (customer type, garment type, supplier,
// color count), the check is skipped rather than failed. A rule scoped to
// customer_types=["vip"] therefore matches inputs with no customer type
// at all. This mirrors the established product behavior; do not tighten
// it without a product decision.
func (c *Conditions) Matches(input *pricing.PricingInput) bool {
	if c.QuantityMin != nil && input.Quantity < *c.QuantityMin {
		return false
	}
	if c.QuantityMax != nil && input.Quantity > *c.QuantityMax {
		return false
	}

	if len(c.Services) > 0 && input.Service != "" {
		if !slices.Contains(c.Services, input.Service) {
			return false
		}
	}

	if input.ColorCount != nil {
		if c.ColorCountMin != nil && *input.ColorCount < *c.ColorCountMin {
			return false
		}
		if c.ColorCountMax != nil && *input.ColorCount > *c.ColorCountMax {
			return false
		}
	}

	// Any-overlap: one shared location is enough
	if len(c.Locations) > 0 && len(input.PrintLocations) > 0 {
		overlap := false
		for _, location := range input.PrintLocations {
			if slices.Contains(c.Locations, location) {
				overlap = true
				break
			}
		}
		if !overlap {
			return false
		}
	}

	if len(c.CustomerTypes) > 0 && input.CustomerType != "" {
		if !slices.Contains(c.CustomerTypes, input.CustomerType) {
			return false
		}
	}

	if len(c.GarmentTypes) > 0 && input.GarmentType != "" {
		if !slices.Contains(c.GarmentTypes, input.GarmentType) {
			return false
		}
	}

	if len(c.Suppliers) > 0 && input.Supplier != "" {
		if !slices.Contains(c.Suppliers, input.Supplier) {
			return false
		}
	}

	return true
}

// MatchesQuantityOnly evaluates the rule against a synthetic input that
// carries only the quantity. The volume discount stage re-filters rules
// this way so a quantity-scoped discount rule applies regardless of the
// request's other attributes.
func (c *Conditions) MatchesQuantityOnly(quantity int) bool {
	synthetic := &pricing.PricingInput{
		Quantity: quantity,
		Service:  types.ServiceType(""),
	}
	return c.Matches(synthetic)
}
