package analysis

import (
	"github.com/gin-gonic/gin"

	"magna-server/services/analysis-api/internal/interfaces/httpserver/handlers/analysishandler"
)

type AnalysisRoute struct {
	handler *analysishandler.AnalysisHandler
}

func NewAnalysisRoute(handler *analysishandler.AnalysisHandler) *AnalysisRoute {
	return &AnalysisRoute{handler: handler}
}

func (r *AnalysisRoute) RegisterRouter(router gin.IRouter) {
	router.POST("/analysis", r.handler.Analyze)
}
