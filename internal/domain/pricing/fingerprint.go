package pricing

import (
	"encoding/json"
	"slices"

	"github.com/shopspring/decimal"
)

// fingerprintKey is the canonical projection of a PricingInput used as a
// cache key. Fields that cannot change the computed price (display-only
// ordering, metadata) are excluded or normalized.
type fingerprintKey struct {
	GarmentID      string   `json:"garment_id"`
	Quantity       int      `json:"quantity"`
	Service        string   `json:"service"`
	PrintLocations []string `json:"print_locations"`
	ColorCount     *int     `json:"color_count"`
	StitchCount    *int     `json:"stitch_count"`
	CustomerType   string   `json:"customer_type"`
	IsRush         bool     `json:"is_rush"`

	// A caller-supplied garment cost changes the base cost, so it must
	// split the cache key.
	GarmentCost *decimal.Decimal `json:"garment_cost"`
}

// Fingerprint returns the canonical cache key for the input. Print
// locations are sorted so two requests differing only in location order
// produce the same key.
func (i *PricingInput) Fingerprint() string {
	locations := slices.Clone(i.PrintLocations)
	slices.Sort(locations)

	key := fingerprintKey{
		GarmentID:      i.GarmentID,
		Quantity:       i.Quantity,
		Service:        i.Service.String(),
		PrintLocations: locations,
		ColorCount:     i.ColorCount,
		StitchCount:    i.StitchCount,
		CustomerType:   i.CustomerType,
		IsRush:         i.IsRush,
		GarmentCost:    i.GarmentCost,
	}

	// Struct marshaling is deterministic: field order is fixed by the
	// type definition.
	data, err := json.Marshal(key)
	if err != nil {
		return ""
	}
	return string(data)
}
