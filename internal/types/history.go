package types

import "time"

// HistoryFilter represents filters for calculation ledger queries
type HistoryFilter struct {
	GarmentID    string     `json:"garment_id,omitempty" form:"garment_id"`
	CustomerType string     `json:"customer_type,omitempty" form:"customer_type"`
	QuoteID      string     `json:"quote_id,omitempty" form:"quote_id"`
	OrderID      string     `json:"order_id,omitempty" form:"order_id"`
	StartTime    *time.Time `json:"start_time,omitempty" form:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty" form:"end_time"`
	Limit        int        `json:"limit,omitempty" form:"limit,default=50"`
	Offset       int        `json:"offset,omitempty" form:"offset,default=0"`
}

// NewHistoryFilter creates a HistoryFilter with default pagination
func NewHistoryFilter() HistoryFilter {
	return HistoryFilter{Limit: 50}
}

// GetLimit returns the effective page size
func (f HistoryFilter) GetLimit() int {
	if f.Limit <= 0 {
		return 50
	}
	return f.Limit
}
