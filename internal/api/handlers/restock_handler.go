package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/supplysight/backend/internal/engine"
	"github.com/supplysight/backend/internal/report"
	"github.com/supplysight/backend/internal/service"
)

type RestockHandler struct {
	service *service.RestockService
}

func NewRestockHandler(service *service.RestockService) *RestockHandler {
	return &RestockHandler{service: service}
}

// parseParams reads engine parameter overrides from the query string.
// Absent or invalid values stay zero and fall back to configured defaults.
func (h *RestockHandler) parseParams(c *gin.Context) engine.Params {
	var params engine.Params

	parseInt := func(name string) int {
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

	parseFloat := func(name string) float64 {
		value := strings.TrimSpace(c.Query(name))
		if value == "" {
			return 0
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return 0
		}
		return f
	}

	params.SafetyStockDays = parseInt("safety_stock_days")
	params.RestockThresholdDays = parseInt("restock_threshold_days")
	params.ReplenishmentDays = parseInt("replenishment_period_days")
	params.VelocityLookbackDays = parseInt("velocity_lookback_days")
	params.DefaultVelocity = parseFloat("default_velocity")
	params.DefaultShipmentTime = parseFloat("default_shipment_time")

	return params
}

// GetRecommendations returns the ranked restock list as JSON.
func (h *RestockHandler) GetRecommendations(c *gin.Context) {
	recs, err := h.service.Recommendations(c.Request.Context(), h.parseParams(c))
	if err != nil {
		log.Error().Err(err).Msg("restock: recommendations failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":           len(recs),
		"recommendations": recs,
	})
}

// GetReport returns the restock report as plain text.
func (h *RestockHandler) GetReport(c *gin.Context) {
	r, err := h.service.Report(c.Request.Context(), h.parseParams(c))
	if err != nil {
		log.Error().Err(err).Msg("restock: report failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}

	c.String(http.StatusOK, report.RenderRestockReport(r))
}
