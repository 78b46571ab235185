package monitoring

import (
	"github.com/gin-gonic/gin"

	"magna-server/services/analysis-api/internal/interfaces/httpserver/handlers/monitoringhandler"
)

type MonitoringRoute struct {
	handler *monitoringhandler.MonitoringHandler
}

func NewMonitoringRoute(handler *monitoringhandler.MonitoringHandler) *MonitoringRoute {
	return &MonitoringRoute{handler: handler}
}

func (r *MonitoringRoute) RegisterRouter(router gin.IRouter) {
	group := router.Group("/monitoring")
	group.GET("/metrics", r.handler.GetMetrics)
	group.GET("/providers/:provider", r.handler.GetProviderMetrics)
}
