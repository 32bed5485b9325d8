package pricing

import (
	"testing"

	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	base := PricingInput{
		GarmentID:      "tee-5000",
		Quantity:       100,
		Service:        types.ServiceScreenPrint,
		PrintLocations: []string{"front", "back"},
		ColorCount:     lo.ToPtr(2),
		CustomerType:   "wholesale",
	}

	t.Run("location order is irrelevant", func(t *testing.T) {
		reordered := base
		reordered.PrintLocations = []string{"back", "front"}
		assert.Equal(t, base.Fingerprint(), reordered.Fingerprint())
	})

	t.Run("stable across calls", func(t *testing.T) {
		assert.Equal(t, base.Fingerprint(), base.Fingerprint())
	})

	t.Run("price-relevant fields split the key", func(t *testing.T) {
		quantity := base
		quantity.Quantity = 101
		assert.NotEqual(t, base.Fingerprint(), quantity.Fingerprint())

		service := base
		service.Service = types.ServiceDTG
		assert.NotEqual(t, base.Fingerprint(), service.Fingerprint())

		customer := base
		customer.CustomerType = "retail"
		assert.NotEqual(t, base.Fingerprint(), customer.Fingerprint())

		rush := base
		rush.IsRush = true
		assert.NotEqual(t, base.Fingerprint(), rush.Fingerprint())

		cost := base
		cost.GarmentCost = lo.ToPtr(decimal.NewFromFloat(3.25))
		assert.NotEqual(t, base.Fingerprint(), cost.Fingerprint())
	})

	t.Run("nil and zero color count differ", func(t *testing.T) {
		known := base
		known.ColorCount = lo.ToPtr(0)
		unknown := base
		unknown.ColorCount = nil
		assert.NotEqual(t, known.Fingerprint(), unknown.Fingerprint())
	})
}
