package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hypnotizedent/printshop-os-sub011/internal/api/dto"
	ierr "github.com/hypnotizedent/printshop-os-sub011/internal/errors"
	"github.com/hypnotizedent/printshop-os-sub011/internal/logger"
	"github.com/hypnotizedent/printshop-os-sub011/internal/service"
)

type RuleHandler struct {
	service service.RuleService
	logger  *logger.Logger
}

func NewRuleHandler(service service.RuleService, logger *logger.Logger) *RuleHandler {
	return &RuleHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a pricing rule
// @Description Create a pricing rule
// @Tags Pricing Rules
// @Accept json
// @Produce json
// @Param rule body dto.CreateRuleRequest true "Rule to create"
// @Success 201 {object} dto.RuleResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /pricing/rules [post]
func (h *RuleHandler) CreateRule(c *gin.Context) {
	var req dto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateRule(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a pricing rule
// @Description Get a pricing rule
// @Tags Pricing Rules
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} dto.RuleResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /pricing/rules/{id} [get]
func (h *RuleHandler) GetRule(c *gin.Context) {
	resp, err := h.service.GetRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List pricing rules
// @Description List every pricing rule, current versions only
// @Tags Pricing Rules
// @Produce json
// @Success 200 {object} dto.ListRulesResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /pricing/rules [get]
func (h *RuleHandler) ListRules(c *gin.Context) {
	resp, err := h.service.ListRules(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a pricing rule
// @Description Update a pricing rule; the previous version is archived
// @Tags Pricing Rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param rule body dto.UpdateRuleRequest true "Fields to change"
// @Success 200 {object} dto.RuleResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /pricing/rules/{id} [put]
func (h *RuleHandler) UpdateRule(c *gin.Context) {
	var req dto.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateRule(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a pricing rule
// @Description Delete a pricing rule
// @Tags Pricing Rules
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ierr.ErrorResponse
// @Router /pricing/rules/{id} [delete]
func (h *RuleHandler) DeleteRule(c *gin.Context) {
	if err := h.service.DeleteRule(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// @Summary List rule versions
// @Description List archived versions of a rule oldest first, then the current one
// @Tags Pricing Rules
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} dto.ListRulesResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /pricing/rules/{id}/versions [get]
func (h *RuleHandler) GetRuleVersions(c *gin.Context) {
	resp, err := h.service.GetRuleVersions(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
