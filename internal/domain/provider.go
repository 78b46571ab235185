package domain

import (
	"github.com/google/wire"

	"magna-server/services/analysis-api/internal/domain/orchestration"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	// Orchestration domain
	orchestration.NewService,
)
