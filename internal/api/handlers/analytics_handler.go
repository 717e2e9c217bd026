package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/supplysight/backend/internal/domain"
	"github.com/supplysight/backend/internal/report"
	"github.com/supplysight/backend/internal/service"
)

type AnalyticsHandler struct {
	service *service.AnalyticsService
}

func NewAnalyticsHandler(service *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetCarrierPerformance returns delivery figures per
// (carrier, service level).
func (h *AnalyticsHandler) GetCarrierPerformance(c *gin.Context) {
	results, err := h.service.CarrierPerformance(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("analytics: carrier performance failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute carrier performance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    len(results),
		"carriers": results,
	})
}

// GetTopProducts returns the best-sellers ranking. lookback_days and limit
// are optional query parameters.
func (h *AnalyticsHandler) GetTopProducts(c *gin.Context) {
	lookback := parsePositiveInt(c, "lookback_days")
	limit := parsePositiveInt(c, "limit")

	products, err := h.service.TopProducts(c.Request.Context(), lookback, limit)
	if err != nil {
		log.Error().Err(err).Msg("analytics: top products failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute top products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    len(products),
		"products": products,
	})
}

// GetShortages returns inventory pairs with their stock status. The
// optional status query parameter narrows to one status; shortages_only=true
// drops ADEQUATE rows.
func (h *AnalyticsHandler) GetShortages(c *gin.Context) {
	var (
		statusFilter domain.StockStatus
		byStatus     bool
	)
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status, ok := domain.ParseStockStatus(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown stock status: " + raw})
			return
		}
		statusFilter, byStatus = status, true
	}
	shortagesOnly := strings.TrimSpace(c.Query("shortages_only")) == "true"

	shortages, err := h.service.Shortages(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("analytics: shortages failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to classify shortages"})
		return
	}

	shortages = filterShortages(shortages, statusFilter, byStatus, shortagesOnly)

	c.JSON(http.StatusOK, gin.H{
		"total":     len(shortages),
		"shortages": shortages,
	})
}

// InvalidateCache drops the cached analytics aggregates.
func (h *AnalyticsHandler) InvalidateCache(c *gin.Context) {
	if err := h.service.InvalidateCache(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("analytics: cache invalidation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to invalidate cache"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "invalidated"})
}

// filterShortages keeps classification total: rows are only dropped here,
// at the presentation boundary, never inside the aggregation.
func filterShortages(shortages []domain.Shortage, status domain.StockStatus, byStatus, shortagesOnly bool) []domain.Shortage {
	if !byStatus && !shortagesOnly {
		return shortages
	}

	filtered := make([]domain.Shortage, 0, len(shortages))
	for _, s := range shortages {
		if byStatus && s.Status != status {
			continue
		}
		if shortagesOnly && !s.Status.IsShortage() {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// GetInsights returns the combined insights report as plain text.
func (h *AnalyticsHandler) GetInsights(c *gin.Context) {
	insights, err := h.service.Insights(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("analytics: insights failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate insights"})
		return
	}

	c.String(http.StatusOK, report.RenderInsightsReport(insights))
}

func parsePositiveInt(c *gin.Context, name string) int {
	value := strings.TrimSpace(c.Query(name))
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
