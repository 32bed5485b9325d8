package service

import (
	"testing"
	"time"

	"github.com/hypnotizedent/printshop-os-sub011/internal/api/dto"
	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/rule"
	ierr "github.com/hypnotizedent/printshop-os-sub011/internal/errors"
	"github.com/hypnotizedent/printshop-os-sub011/internal/testutil"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RuleServiceSuite struct {
	testutil.BaseServiceTestSuite
	service RuleService
}

func TestRuleService(t *testing.T) {
	suite.Run(t, new(RuleServiceSuite))
}

func (s *RuleServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	s.service = NewRuleService(ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		RuleRepo:        s.GetStores().RuleRepo,
		GarmentCostRepo: s.GetStores().GarmentCostRepo,
		HistoryRepo:     s.GetStores().HistoryRepo,
		Cache:           s.GetCache(),
	})
}

func (s *RuleServiceSuite) createRequest() dto.CreateRuleRequest {
	return dto.CreateRuleRequest{
		ID:          "bulk-discount",
		Description: "Bulk order discount",
		Priority:    5,
		Conditions: rule.Conditions{
			QuantityMin: lo.ToPtr(500),
		},
		Calculations: rule.Calculations{
			DiscountPct: lo.ToPtr(decimal.NewFromInt(20)),
		},
	}
}

func (s *RuleServiceSuite) TestCreateRule() {
	resp, err := s.service.CreateRule(s.GetContext(), s.createRequest())
	s.NoError(err)
	s.Require().NotNil(resp)

	s.Equal("bulk-discount", resp.ID)
	s.Equal(1, resp.Version)
	s.True(resp.Enabled)
	s.False(resp.CreatedAt.IsZero())

	fetched, err := s.service.GetRule(s.GetContext(), "bulk-discount")
	s.NoError(err)
	s.Equal("Bulk order discount", fetched.Description)
}

func (s *RuleServiceSuite) TestCreateRuleGeneratesID() {
	req := s.createRequest()
	req.ID = ""

	resp, err := s.service.CreateRule(s.GetContext(), req)
	s.NoError(err)
	s.Contains(resp.ID, "rule")
}

func (s *RuleServiceSuite) TestCreateRuleValidation() {
	req := s.createRequest()
	req.Description = ""
	_, err := s.service.CreateRule(s.GetContext(), req)
	s.True(ierr.IsValidation(err))

	req = s.createRequest()
	req.EffectiveDate = lo.ToPtr(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	req.ExpiryDate = lo.ToPtr(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	_, err = s.service.CreateRule(s.GetContext(), req)
	s.True(ierr.IsValidation(err))
}

func (s *RuleServiceSuite) TestCreateDuplicateRule() {
	_, err := s.service.CreateRule(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	_, err = s.service.CreateRule(s.GetContext(), s.createRequest())
	s.True(ierr.IsAlreadyExists(err))
}

func (s *RuleServiceSuite) TestGetRuleNotFound() {
	_, err := s.service.GetRule(s.GetContext(), "missing")
	s.True(ierr.IsNotFound(err))
}

func (s *RuleServiceSuite) TestListRules() {
	empty, err := s.service.ListRules(s.GetContext())
	s.NoError(err)
	s.Equal(0, empty.Total)

	_, err = s.service.CreateRule(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	second := s.createRequest()
	second.ID = "vip-margin"
	second.Description = "VIP margin target"
	_, err = s.service.CreateRule(s.GetContext(), second)
	s.Require().NoError(err)

	listed, err := s.service.ListRules(s.GetContext())
	s.NoError(err)
	s.Equal(2, listed.Total)
}

func (s *RuleServiceSuite) TestUpdateRuleBumpsVersionAndArchives() {
	_, err := s.service.CreateRule(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	updated, err := s.service.UpdateRule(s.GetContext(), "bulk-discount", dto.UpdateRuleRequest{
		Description: lo.ToPtr("Bulk order discount, revised"),
		Priority:    lo.ToPtr(9),
	})
	s.NoError(err)
	s.Equal(2, updated.Version)
	s.Equal("Bulk order discount, revised", updated.Description)
	s.Equal(9, updated.Priority)
	// Untouched fields carry over
	s.Equal(500, *updated.Conditions.QuantityMin)

	versions, err := s.service.GetRuleVersions(s.GetContext(), "bulk-discount")
	s.NoError(err)
	s.Require().Equal(2, versions.Total)
	s.Equal(1, versions.Items[0].Version)
	s.Equal("Bulk order discount", versions.Items[0].Description)
	s.Equal(2, versions.Items[1].Version)
}

func (s *RuleServiceSuite) TestUpdateRuleNotFound() {
	_, err := s.service.UpdateRule(s.GetContext(), "missing", dto.UpdateRuleRequest{
		Priority: lo.ToPtr(1),
	})
	s.True(ierr.IsNotFound(err))
}

func (s *RuleServiceSuite) TestDeleteRule() {
	_, err := s.service.CreateRule(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	s.NoError(s.service.DeleteRule(s.GetContext(), "bulk-discount"))

	_, err = s.service.GetRule(s.GetContext(), "bulk-discount")
	s.True(ierr.IsNotFound(err))

	s.True(ierr.IsNotFound(s.service.DeleteRule(s.GetContext(), "bulk-discount")))
}

func (s *RuleServiceSuite) TestVersionsNotFound() {
	_, err := s.service.GetRuleVersions(s.GetContext(), "missing")
	s.True(ierr.IsNotFound(err))
}

func (s *RuleServiceSuite) TestMutationsFlushQuoteCache() {
	seed := func() {
		s.GetCache().Set("quote:v1:some-fingerprint", "cached", 0)
		s.Require().Equal(1, s.GetCache().ItemCount())
	}

	seed()
	_, err := s.service.CreateRule(s.GetContext(), s.createRequest())
	s.Require().NoError(err)
	s.Equal(0, s.GetCache().ItemCount())

	seed()
	_, err = s.service.UpdateRule(s.GetContext(), "bulk-discount", dto.UpdateRuleRequest{
		Priority: lo.ToPtr(7),
	})
	s.Require().NoError(err)
	s.Equal(0, s.GetCache().ItemCount())

	seed()
	s.Require().NoError(s.service.DeleteRule(s.GetContext(), "bulk-discount"))
	s.Equal(0, s.GetCache().ItemCount())

	// Even a failed mutation flushes; stale quotes are worse than a cold
	// cache.
	seed()
	s.Error(s.service.DeleteRule(s.GetContext(), "bulk-discount"))
	s.Equal(0, s.GetCache().ItemCount())
}
