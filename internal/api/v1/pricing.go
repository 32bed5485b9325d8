package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hypnotizedent/printshop-os-sub011/internal/api/dto"
	ierr "github.com/hypnotizedent/printshop-os-sub011/internal/errors"
	"github.com/hypnotizedent/printshop-os-sub011/internal/logger"
	"github.com/hypnotizedent/printshop-os-sub011/internal/service"
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
)

type PricingHandler struct {
	service service.PricingService
	logger  *logger.Logger
}

func NewPricingHandler(service service.PricingService, logger *logger.Logger) *PricingHandler {
	return &PricingHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Calculate a quote
// @Description Price a job through the rule-driven pipeline
// @Tags Quotes
// @Accept json
// @Produce json
// @Param quote body dto.CalculateQuoteRequest true "Job to price"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotes/calculate [post]
func (h *PricingHandler) CalculateQuote(c *gin.Context) {
	var req dto.CalculateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CalculateQuote(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Generate a fixed quote
// @Description Price a job off the fixed rate card
// @Tags Quotes
// @Accept json
// @Produce json
// @Param quote body dto.FixedQuoteRequest true "Job to price"
// @Success 200 {object} dto.FixedQuoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotes/fixed [post]
func (h *PricingHandler) GenerateFixedQuote(c *gin.Context) {
	var req dto.FixedQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GenerateFixedQuote(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Query calculation history
// @Description List calculation ledger records, newest first
// @Tags Quotes
// @Accept json
// @Produce json
// @Param filter query types.HistoryFilter true "Filter"
// @Success 200 {object} dto.ListHistoryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotes/history [get]
func (h *PricingHandler) GetHistory(c *gin.Context) {
	var filter types.HistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetHistory(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Cache statistics
// @Description Report quote cache size and TTL
// @Tags Cache
// @Produce json
// @Success 200 {object} dto.CacheStatsResponse
// @Router /pricing/cache/stats [get]
func (h *PricingHandler) GetCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetCacheStats(c.Request.Context()))
}

// @Summary Clear the quote cache
// @Description Drop every cached quote
// @Tags Cache
// @Produce json
// @Success 200 {object} map[string]string
// @Router /pricing/cache [delete]
func (h *PricingHandler) ClearCache(c *gin.Context) {
	h.service.ClearCache(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "cache cleared"})
}
