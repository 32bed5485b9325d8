package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/rule"
	ierr "github.com/hypnotizedent/printshop-os-sub011/internal/errors"
)

// InMemoryRuleStore implements rule.Repository with an in-process map.
// It is the reference storage collaborator: the CMS-backed implementation
// lives outside this module and satisfies the same contract. Reads are
// concurrent; writes serialize on the mutex.
type InMemoryRuleStore struct {
	mu       sync.RWMutex
	rules    map[string]*rule.PricingRule
	versions map[string][]*rule.PricingRule
	order    []string
}

func NewInMemoryRuleStore() *InMemoryRuleStore {
	return &InMemoryRuleStore{
		rules:    make(map[string]*rule.PricingRule),
		versions: make(map[string][]*rule.PricingRule),
	}
}

// List returns the current version of every rule in insertion order, so
// equal-priority tie-breaks stay deterministic across calls.
func (s *InMemoryRuleStore) List(ctx context.Context) ([]*rule.PricingRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*rule.PricingRule, 0, len(s.order))
	for _, id := range s.order {
		if r, exists := s.rules[id]; exists {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *InMemoryRuleStore) Get(ctx context.Context, id string) (*rule.PricingRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, exists := s.rules[id]; exists {
		return r, nil
	}
	return nil, ierr.NewError("pricing rule not found").
		WithHint("No pricing rule exists with the given id").
		WithReportableDetails(map[string]any{"rule_id": id}).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryRuleStore) Create(ctx context.Context, r *rule.PricingRule) error {
	if err := r.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rules[r.ID]; exists {
		return ierr.NewError("pricing rule already exists").
			WithHint("A pricing rule with this id already exists").
			WithReportableDetails(map[string]any{"rule_id": r.ID}).
			Mark(ierr.ErrAlreadyExists)
	}

	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	s.rules[r.ID] = r
	s.order = append(s.order, r.ID)
	return nil
}

// Update archives the current version and installs the new one with an
// incremented version number.
func (s *InMemoryRuleStore) Update(ctx context.Context, r *rule.PricingRule) error {
	if err := r.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.rules[r.ID]
	if !exists {
		return ierr.NewError("pricing rule not found").
			WithHint("No pricing rule exists with the given id").
			WithReportableDetails(map[string]any{"rule_id": r.ID}).
			Mark(ierr.ErrNotFound)
	}

	s.versions[r.ID] = append(s.versions[r.ID], current)

	r.Version = current.Version + 1
	r.CreatedAt = current.CreatedAt
	r.UpdatedAt = time.Now().UTC()
	s.rules[r.ID] = r
	return nil
}

func (s *InMemoryRuleStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rules[id]; !exists {
		return ierr.NewError("pricing rule not found").
			WithHint("No pricing rule exists with the given id").
			WithReportableDetails(map[string]any{"rule_id": id}).
			Mark(ierr.ErrNotFound)
	}

	delete(s.rules, id)
	s.order = slices.DeleteFunc(s.order, func(existing string) bool {
		return existing == id
	})
	return nil
}

// ListVersions returns archived versions oldest first, followed by the
// current version.
func (s *InMemoryRuleStore) ListVersions(ctx context.Context, id string) ([]*rule.PricingRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current, exists := s.rules[id]
	if !exists {
		return nil, ierr.NewError("pricing rule not found").
			WithHint("No pricing rule exists with the given id").
			WithReportableDetails(map[string]any{"rule_id": id}).
			Mark(ierr.ErrNotFound)
	}

	archived := s.versions[id]
	result := make([]*rule.PricingRule, 0, len(archived)+1)
	result = append(result, archived...)
	result = append(result, current)
	return result, nil
}

// Clear removes all rules; used by tests
func (s *InMemoryRuleStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules = make(map[string]*rule.PricingRule)
	s.versions = make(map[string][]*rule.PricingRule)
	s.order = nil
}
