//go:build wireinject
// +build wireinject

package di

import (
	"StockHunter/pkg/config"
	"StockHunter/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Downstream client
		ProvideScreener,

		// Use cases
		ProvideGateway,
		ProvideHealthAggregator,

		// HTTP surface
		ProvideGatewayHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
