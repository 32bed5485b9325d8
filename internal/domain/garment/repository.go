package garment

import (
	"context"

	"github.com/shopspring/decimal"
)

// CostRepository resolves the per-unit cost of a garment. Implementations
// back onto the supplier catalog; the engine falls back to the configured
// default cost when a garment is unknown.
type CostRepository interface {
	// GetCost returns the unit cost for a garment id. Unknown garments
	// return ErrNotFound; the caller decides the fallback.
	GetCost(ctx context.Context, garmentID string) (decimal.Decimal, error)
}
