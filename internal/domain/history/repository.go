package history

import (
	"context"

	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
)

// Repository is the calculation ledger contract. Save is best-effort from
// the engine's perspective: a failing sink must never fail the pricing
// request, so the orchestrator logs and continues on error.
type Repository interface {
	Save(ctx context.Context, record *Record) error

	// List returns records matching the filter, newest first. Identical
	// filters return identically ordered results.
	List(ctx context.Context, filter types.HistoryFilter) ([]*Record, error)
}
