package di

import (
	"TickerGate/internal/domain/repository"
	"TickerGate/internal/handler/api"
	"TickerGate/internal/service/yahoo"
	"TickerGate/internal/usecase"
	"TickerGate/pkg/config"
	xhttp "TickerGate/pkg/http"
	applogger "TickerGate/pkg/logger"
	"TickerGate/pkg/metrics"
	"TickerGate/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideTickerProvider creates the Yahoo Finance provider.
func ProvideTickerProvider(cfg *config.Config) repository.TickerProvider {
	return yahoo.New(cfg.Yahoo.QuoteSummaryURL, cfg.Yahoo.UserAgent, cfg.Yahoo.Timeout)
}

// ProvideTickerUseCase creates the ticker use case.
func ProvideTickerUseCase(provider repository.TickerProvider, m repository.Metrics) *usecase.TickerUseCase {
	return usecase.NewTickerUseCase(provider, m)
}

// ProvideHandler creates the HTTP handler with routes and auth.
func ProvideHandler(logger *applogger.Logger, uc *usecase.TickerUseCase, cfg *config.Config) xhttp.Handler {
	return api.NewTickerHandler(logger, uc, cfg.Auth.APIKey)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, logger, handler)
}
