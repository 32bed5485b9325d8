package history

import (
	"time"

	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/pricing"
)

// Record is one entry in the append-only calculation ledger. Records are
// never mutated or deleted by the engine.
type Record struct {
	ID string `json:"id"`

	// QuoteNumber is the short human-facing reference, ex Q-XY12A8QZ
	QuoteNumber string `json:"quote_number"`

	Timestamp time.Time `json:"timestamp"`

	Input  pricing.PricingInput  `json:"input"`
	Output pricing.PricingOutput `json:"output"`

	Metadata *RecordMetadata `json:"metadata,omitempty"`
}

// RecordMetadata links a calculation to the quote or order it priced
type RecordMetadata struct {
	QuoteID string `json:"quote_id,omitempty"`
	OrderID string `json:"order_id,omitempty"`
}
