package repository

import (
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/garment"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/history"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/rule"
)

// Constructors returning the domain repository interfaces, for wiring.
// The in-memory stores are the reference implementations; swapping in a
// CMS- or database-backed store only changes these providers.

func NewRuleRepository() rule.Repository {
	return NewInMemoryRuleStore()
}

func NewGarmentCostRepository() garment.CostRepository {
	return NewInMemoryGarmentCostStore()
}

func NewHistoryRepository() history.Repository {
	return NewInMemoryHistoryStore()
}
