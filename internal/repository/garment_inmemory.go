package repository

import (
	"context"
	"sync"

	ierr "github.com/hypnotizedent/printshop-os-sub011/internal/errors"
	"github.com/shopspring/decimal"
)

// InMemoryGarmentCostStore implements garment.CostRepository over a map
// of garment id to unit cost. The supplier catalog sync populates it in
// production; tests seed it directly.
type InMemoryGarmentCostStore struct {
	mu    sync.RWMutex
	costs map[string]decimal.Decimal
}

func NewInMemoryGarmentCostStore() *InMemoryGarmentCostStore {
	return &InMemoryGarmentCostStore{
		costs: make(map[string]decimal.Decimal),
	}
}

func (s *InMemoryGarmentCostStore) GetCost(ctx context.Context, garmentID string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cost, exists := s.costs[garmentID]; exists {
		return cost, nil
	}
	return decimal.Zero, ierr.NewError("garment cost not found").
		WithHint("No cost on file for the given garment").
		WithReportableDetails(map[string]any{"garment_id": garmentID}).
		Mark(ierr.ErrNotFound)
}

// SetCost upserts the unit cost for a garment
func (s *InMemoryGarmentCostStore) SetCost(garmentID string, cost decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.costs[garmentID] = cost
}

// Clear removes all costs; used by tests
func (s *InMemoryGarmentCostStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.costs = make(map[string]decimal.Decimal)
}
