package routes

import (
	"magna-server/services/analysis-api/internal/interfaces/httpserver/handlers/analysishandler"
	"magna-server/services/analysis-api/internal/interfaces/httpserver/handlers/monitoringhandler"
	v1 "magna-server/services/analysis-api/internal/interfaces/httpserver/routes/v1"
	"magna-server/services/analysis-api/internal/interfaces/httpserver/routes/v1/analysis"
	"magna-server/services/analysis-api/internal/interfaces/httpserver/routes/v1/monitoring"

	"github.com/google/wire"
)

var RouteProvider = wire.NewSet(
	// Handlers
	analysishandler.NewAnalysisHandler,
	monitoringhandler.NewMonitoringHandler,

	// Routes
	v1.NewV1Route,
	analysis.NewAnalysisRoute,
	monitoring.NewMonitoringRoute,
)
