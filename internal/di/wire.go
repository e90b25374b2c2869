//go:build wireinject
// +build wireinject

package di

import (
	"TickerGate/pkg/config"
	"TickerGate/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Upstream provider
		ProvideTickerProvider,

		// Use cases
		ProvideTickerUseCase,

		// HTTP handler + application server
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
