package monitoringhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"magna-server/services/analysis-api/internal/domain/interactionlog"
	"magna-server/services/analysis-api/internal/domain/provider"
)

// MonitoringHandler handles provider health and usage reporting
type MonitoringHandler struct {
	health   *interactionlog.HealthService
	registry *provider.Registry
}

// NewMonitoringHandler creates a new MonitoringHandler
func NewMonitoringHandler(health *interactionlog.HealthService, registry *provider.Registry) *MonitoringHandler {
	return &MonitoringHandler{
		health:   health,
		registry: registry,
	}
}

// GetMetrics godoc
// @Summary Get real-time provider metrics
// @Description Returns per-provider status and system-wide health over the trailing window
// @Tags Monitoring
// @Produce json
// @Success 200 {object} interactionlog.RealTimeMetrics
// @Failure 500 {object} map[string]string
// @Router /v1/monitoring/metrics [get]
func (h *MonitoringHandler) GetMetrics(c *gin.Context) {
	snapshot, err := h.health.RealTimeMetrics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate metrics"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// GetProviderMetrics godoc
// @Summary Get hourly metrics for one provider
// @Description Returns hour-bucketed request, latency, cost and success-rate metrics
// @Tags Monitoring
// @Produce json
// @Param provider path string true "Provider id (openai, claude, gemini, grok)"
// @Success 200 {object} interactionlog.ProviderDetail
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /v1/monitoring/providers/{provider} [get]
func (h *MonitoringHandler) GetProviderMetrics(c *gin.Context) {
	providerID := c.Param("provider")
	if _, ok := h.registry.Get(providerID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown provider"})
		return
	}

	detail, err := h.health.ProviderDetail(c.Request.Context(), providerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load provider metrics"})
		return
	}

	c.JSON(http.StatusOK, detail)
}
