package rule

import (
	"testing"

	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/pricing"
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestConditionsMatches(t *testing.T) {
	t.Run("empty conditions match anything", func(t *testing.T) {
		c := Conditions{}
		assert.True(t, c.Matches(&pricing.PricingInput{Quantity: 1}))
		assert.True(t, c.Matches(&pricing.PricingInput{
			Quantity:     5000,
			Service:      types.ServiceEmbroidery,
			CustomerType: "retail",
		}))
	})

	t.Run("quantity bounds are inclusive", func(t *testing.T) {
		c := Conditions{
			QuantityMin: lo.ToPtr(50),
			QuantityMax: lo.ToPtr(100),
		}
		assert.False(t, c.Matches(&pricing.PricingInput{Quantity: 49}))
		assert.True(t, c.Matches(&pricing.PricingInput{Quantity: 50}))
		assert.True(t, c.Matches(&pricing.PricingInput{Quantity: 100}))
		assert.False(t, c.Matches(&pricing.PricingInput{Quantity: 101}))
	})

	t.Run("service membership", func(t *testing.T) {
		c := Conditions{Services: []types.ServiceType{types.ServiceScreenPrint, types.ServiceDTG}}
		assert.True(t, c.Matches(&pricing.PricingInput{Quantity: 1, Service: types.ServiceDTG}))
		assert.False(t, c.Matches(&pricing.PricingInput{Quantity: 1, Service: types.ServiceEmbroidery}))
	})

	t.Run("omitted input fields skip set checks", func(t *testing.T) {
		// A rule scoped to vip customers still matches an input that
		// carries no customer type at all.
		c := Conditions{
			CustomerTypes: []string{"vip"},
			GarmentTypes:  []string{"hoodie"},
			Suppliers:     []string{"acme"},
		}
		assert.True(t, c.Matches(&pricing.PricingInput{Quantity: 10}))
		assert.True(t, c.Matches(&pricing.PricingInput{Quantity: 10, CustomerType: "vip"}))
		assert.False(t, c.Matches(&pricing.PricingInput{Quantity: 10, CustomerType: "retail"}))
		assert.False(t, c.Matches(&pricing.PricingInput{Quantity: 10, GarmentType: "tee"}))
		assert.False(t, c.Matches(&pricing.PricingInput{Quantity: 10, Supplier: "globex"}))
	})

	t.Run("color bounds skipped when count unknown", func(t *testing.T) {
		c := Conditions{ColorCountMin: lo.ToPtr(2), ColorCountMax: lo.ToPtr(4)}
		assert.True(t, c.Matches(&pricing.PricingInput{Quantity: 1}))
		assert.True(t, c.Matches(&pricing.PricingInput{Quantity: 1, ColorCount: lo.ToPtr(3)}))
		assert.False(t, c.Matches(&pricing.PricingInput{Quantity: 1, ColorCount: lo.ToPtr(1)}))
		assert.False(t, c.Matches(&pricing.PricingInput{Quantity: 1, ColorCount: lo.ToPtr(5)}))
	})

	t.Run("locations need only one overlap", func(t *testing.T) {
		c := Conditions{Locations: []string{"front", "back"}}
		assert.True(t, c.Matches(&pricing.PricingInput{
			Quantity:       1,
			PrintLocations: []string{"sleeve", "back"},
		}))
		assert.False(t, c.Matches(&pricing.PricingInput{
			Quantity:       1,
			PrintLocations: []string{"sleeve", "pocket"},
		}))
		// No locations on the input skips the check
		assert.True(t, c.Matches(&pricing.PricingInput{Quantity: 1}))
	})

	t.Run("checks are ANDed", func(t *testing.T) {
		c := Conditions{
			QuantityMin: lo.ToPtr(100),
			Services:    []types.ServiceType{types.ServiceScreenPrint},
		}
		assert.True(t, c.Matches(&pricing.PricingInput{Quantity: 100, Service: types.ServiceScreenPrint}))
		assert.False(t, c.Matches(&pricing.PricingInput{Quantity: 99, Service: types.ServiceScreenPrint}))
		assert.False(t, c.Matches(&pricing.PricingInput{Quantity: 100, Service: types.ServiceDTG}))
	})
}

func TestMatchesQuantityOnly(t *testing.T) {
	t.Run("quantity bounds still apply", func(t *testing.T) {
		c := Conditions{QuantityMin: lo.ToPtr(500)}
		assert.False(t, c.MatchesQuantityOnly(499))
		assert.True(t, c.MatchesQuantityOnly(500))
	})

	t.Run("other conditions are ignored", func(t *testing.T) {
		c := Conditions{
			QuantityMin:   lo.ToPtr(100),
			Services:      []types.ServiceType{types.ServiceEmbroidery},
			CustomerTypes: []string{"vip"},
			Locations:     []string{"front"},
		}
		assert.True(t, c.MatchesQuantityOnly(150))
	})
}
