package analysishandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"magna-server/services/analysis-api/internal/domain/orchestration"
	"magna-server/services/analysis-api/internal/infrastructure/metrics"
	analysisreq "magna-server/services/analysis-api/internal/interfaces/httpserver/requests/analysis"
)

// AnalysisHandler handles multi-provider analysis requests
type AnalysisHandler struct {
	orchestrator *orchestration.Service
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(orchestrator *orchestration.Service) *AnalysisHandler {
	return &AnalysisHandler{
		orchestrator: orchestrator,
	}
}

// Analyze godoc
// @Summary Run a multi-provider analysis
// @Description Fans the prompt out to the providers selected for the task type and returns the consolidated result
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body analysis.AnalysisRequest true "Analysis request"
// @Success 200 {object} orchestration.ConsolidatedResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /v1/analysis [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req analysisreq.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.orchestrator.Orchestrate(c.Request.Context(), orchestration.Request{
		Prompt:                    req.Prompt,
		TaskType:                  req.TaskType,
		DataContext:               req.DataContext,
		RequiresMultipleProviders: req.RequiresMultipleProviders,
	}, req.TaskID)
	if err != nil {
		metrics.RecordOrchestration(req.TaskType, "failure")
		if errors.Is(err, orchestration.ErrNoProviderSucceeded) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	metrics.RecordOrchestration(req.TaskType, "success")
	c.JSON(http.StatusOK, result)
}
