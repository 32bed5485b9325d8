package service

import (
	"context"

	"github.com/hypnotizedent/printshop-os-sub011/internal/api/dto"
)

// RuleService manages pricing rules. Every mutation finishes by flushing
// the quote cache: any cached quote might have been priced by the rule
// being changed, and dropping the whole cache is always correct.
type RuleService interface {
	CreateRule(ctx context.Context, req dto.CreateRuleRequest) (*dto.RuleResponse, error)
	GetRule(ctx context.Context, id string) (*dto.RuleResponse, error)
	ListRules(ctx context.Context) (*dto.ListRulesResponse, error)
	UpdateRule(ctx context.Context, id string, req dto.UpdateRuleRequest) (*dto.RuleResponse, error)
	DeleteRule(ctx context.Context, id string) error
	GetRuleVersions(ctx context.Context, id string) (*dto.ListRulesResponse, error)
}

type ruleService struct {
	ServiceParams
}

func NewRuleService(params ServiceParams) RuleService {
	return &ruleService{ServiceParams: params}
}

func (s *ruleService) CreateRule(ctx context.Context, req dto.CreateRuleRequest) (*dto.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Flush even if persistence partially failed; a stale cache is the
	// one failure mode this service must not allow.
	defer s.Cache.Flush()

	newRule := req.ToRule()
	if err := newRule.Validate(); err != nil {
		return nil, err
	}

	if err := s.RuleRepo.Create(ctx, newRule); err != nil {
		return nil, err
	}

	s.Logger.WithContext(ctx).Infow("pricing rule created",
		"rule_id", newRule.ID,
		"priority", newRule.Priority,
	)
	return &dto.RuleResponse{PricingRule: newRule}, nil
}

func (s *ruleService) GetRule(ctx context.Context, id string) (*dto.RuleResponse, error) {
	found, err := s.RuleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.RuleResponse{PricingRule: found}, nil
}

func (s *ruleService) ListRules(ctx context.Context) (*dto.ListRulesResponse, error) {
	rules, err := s.RuleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	response := &dto.ListRulesResponse{
		Items: make([]*dto.RuleResponse, 0, len(rules)),
		Total: len(rules),
	}
	for _, r := range rules {
		response.Items = append(response.Items, &dto.RuleResponse{PricingRule: r})
	}
	return response, nil
}

func (s *ruleService) UpdateRule(ctx context.Context, id string, req dto.UpdateRuleRequest) (*dto.RuleResponse, error) {
	defer s.Cache.Flush()

	current, err := s.RuleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := req.Apply(current)
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := s.RuleRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	s.Logger.WithContext(ctx).Infow("pricing rule updated",
		"rule_id", updated.ID,
		"version", updated.Version,
	)
	return &dto.RuleResponse{PricingRule: updated}, nil
}

func (s *ruleService) DeleteRule(ctx context.Context, id string) error {
	defer s.Cache.Flush()

	if err := s.RuleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Logger.WithContext(ctx).Infow("pricing rule deleted", "rule_id", id)
	return nil
}

func (s *ruleService) GetRuleVersions(ctx context.Context, id string) (*dto.ListRulesResponse, error) {
	versions, err := s.RuleRepo.ListVersions(ctx, id)
	if err != nil {
		return nil, err
	}

	response := &dto.ListRulesResponse{
		Items: make([]*dto.RuleResponse, 0, len(versions)),
		Total: len(versions),
	}
	for _, v := range versions {
		response.Items = append(response.Items, &dto.RuleResponse{PricingRule: v})
	}
	return response, nil
}
