package dto

import (
	"time"

	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/rule"
	ierr "github.com/hypnotizedent/printshop-os-sub011/internal/errors"
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
	"github.com/samber/lo"
)

// RuleResponse represents the response for pricing rule operations
type RuleResponse struct {
	*rule.PricingRule `json:",inline"`
}

// ListRulesResponse represents the response for listing pricing rules
type ListRulesResponse struct {
	Items []*RuleResponse `json:"items"`
	Total int             `json:"total"`
}

// CreateRuleRequest represents the request to create a pricing rule
type CreateRuleRequest struct {
	// id is the stable business key; generated when omitted
	ID string `json:"id,omitempty"`

	// description is the human-readable purpose of the rule (required)
	Description string `json:"description" validate:"required"`

	// effective_date is when the rule starts matching; immediate when omitted
	EffectiveDate *time.Time `json:"effective_date,omitempty"`

	// expiry_date is when the rule stops matching; never when omitted
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`

	Conditions   rule.Conditions   `json:"conditions"`
	Calculations rule.Calculations `json:"calculations"`

	// priority breaks ties among applicable rules, higher wins
	Priority int `json:"priority"`

	// enabled defaults to true when omitted
	Enabled *bool `json:"enabled,omitempty"`
}

// Validate validates the CreateRuleRequest
func (r CreateRuleRequest) Validate() error {
	if r.Description == "" {
		return ierr.NewError("description is required").
			WithHint("Pricing rule description is required").
			Mark(ierr.ErrValidation)
	}
	if r.EffectiveDate != nil && r.ExpiryDate != nil && r.ExpiryDate.Before(*r.EffectiveDate) {
		return ierr.NewError("expiry_date cannot be before effective_date").
			WithHint("Expiry date must not precede the effective date").
			Mark(ierr.ErrValidation)
	}
	for _, service := range r.Conditions.Services {
		if err := service.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ToRule converts a CreateRuleRequest to a domain PricingRule
func (r CreateRuleRequest) ToRule() *rule.PricingRule {
	id := r.ID
	if id == "" {
		id = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RULE)
	}

	return &rule.PricingRule{
		ID:            id,
		Description:   r.Description,
		Version:       1,
		EffectiveDate: r.EffectiveDate,
		ExpiryDate:    r.ExpiryDate,
		Conditions:    r.Conditions,
		Calculations:  r.Calculations,
		Priority:      r.Priority,
		Enabled:       lo.FromPtrOr(r.Enabled, true),
	}
}

// UpdateRuleRequest represents the request to update a pricing rule.
// Only provided fields change; the store bumps the version.
type UpdateRuleRequest struct {
	Description   *string            `json:"description,omitempty"`
	EffectiveDate *time.Time         `json:"effective_date,omitempty"`
	ExpiryDate    *time.Time         `json:"expiry_date,omitempty"`
	Conditions    *rule.Conditions   `json:"conditions,omitempty"`
	Calculations  *rule.Calculations `json:"calculations,omitempty"`
	Priority      *int               `json:"priority,omitempty"`
	Enabled       *bool              `json:"enabled,omitempty"`
}

// Apply copies the provided fields onto a snapshot of the current rule
func (r UpdateRuleRequest) Apply(current *rule.PricingRule) *rule.PricingRule {
	updated := *current
	if r.Description != nil {
		updated.Description = *r.Description
	}
	if r.EffectiveDate != nil {
		updated.EffectiveDate = r.EffectiveDate
	}
	if r.ExpiryDate != nil {
		updated.ExpiryDate = r.ExpiryDate
	}
	if r.Conditions != nil {
		updated.Conditions = *r.Conditions
	}
	if r.Calculations != nil {
		updated.Calculations = *r.Calculations
	}
	if r.Priority != nil {
		updated.Priority = *r.Priority
	}
	if r.Enabled != nil {
		updated.Enabled = *r.Enabled
	}
	return &updated
}
