package rule

import (
	"context"
)

// Repository is the rule storage contract. Implementations (in-memory,
// CMS-backed) own persistence mechanics, concurrent-write serialization
// and any retry policy; the engine only consumes snapshots.
type Repository interface {
	// List returns the current version of every rule
	List(ctx context.Context) ([]*PricingRule, error)

	// Get returns the current version of a rule by its business key
	Get(ctx context.Context, id string) (*PricingRule, error)

	Create(ctx context.Context, rule *PricingRule) error
	Update(ctx context.Context, rule *PricingRule) error
	Delete(ctx context.Context, id string) error

	// ListVersions returns every archived version of a rule,
	// oldest first
	ListVersions(ctx context.Context, id string) ([]*PricingRule, error)
}
