//go:build wireinject

package main

import (
	"magna-server/services/analysis-api/internal/domain"
	"magna-server/services/analysis-api/internal/infrastructure"
	"magna-server/services/analysis-api/internal/interfaces"
	"magna-server/services/analysis-api/internal/interfaces/httpserver/routes"

	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
