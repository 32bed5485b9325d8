package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/history"
	ierr "github.com/hypnotizedent/printshop-os-sub011/internal/errors"
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
)

// InMemoryHistoryStore implements history.Repository. Append-only: the
// engine never mutates or deletes ledger records.
type InMemoryHistoryStore struct {
	mu      sync.RWMutex
	records []*history.Record
}

func NewInMemoryHistoryStore() *InMemoryHistoryStore {
	return &InMemoryHistoryStore{}
}

func (s *InMemoryHistoryStore) Save(ctx context.Context, record *history.Record) error {
	if record == nil {
		return ierr.NewError("record cannot be nil").
			WithHint("A calculation record is required").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	return nil
}

// List returns matching records newest first. The sort breaks timestamp
// ties on record id so identical filters always return identical order.
func (s *InMemoryHistoryStore) List(ctx context.Context, filter types.HistoryFilter) ([]*history.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*history.Record
	for _, record := range s.records {
		if matchesHistoryFilter(record, filter) {
			result = append(result, record)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].Timestamp.After(result[j].Timestamp)
		}
		return result[i].ID > result[j].ID
	})

	start := filter.Offset
	if start >= len(result) {
		return []*history.Record{}, nil
	}
	end := start + filter.GetLimit()
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], nil
}

func matchesHistoryFilter(record *history.Record, filter types.HistoryFilter) bool {
	if filter.GarmentID != "" && record.Input.GarmentID != filter.GarmentID {
		return false
	}
	if filter.CustomerType != "" && record.Input.CustomerType != filter.CustomerType {
		return false
	}
	if filter.QuoteID != "" {
		if record.Metadata == nil || record.Metadata.QuoteID != filter.QuoteID {
			return false
		}
	}
	if filter.OrderID != "" {
		if record.Metadata == nil || record.Metadata.OrderID != filter.OrderID {
			return false
		}
	}
	if filter.StartTime != nil && record.Timestamp.Before(*filter.StartTime) {
		return false
	}
	if filter.EndTime != nil && record.Timestamp.After(*filter.EndTime) {
		return false
	}
	return true
}

// Clear removes all records; used by tests
func (s *InMemoryHistoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}
