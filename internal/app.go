package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/shrey258/flag-me-backend/internal/adapters/amazonstore"
	"github.com/shrey258/flag-me-backend/internal/adapters/flipkartstore"
	logger_adapter "github.com/shrey258/flag-me-backend/internal/adapters/logger"
	"github.com/shrey258/flag-me-backend/internal/adapters/myntrastore"
	"github.com/shrey258/flag-me-backend/internal/adapters/rest"
	"github.com/shrey258/flag-me-backend/internal/configs"
	"github.com/shrey258/flag-me-backend/internal/constants"
	"github.com/shrey258/flag-me-backend/internal/core/port"
	"github.com/shrey258/flag-me-backend/internal/core/usecase"
	fluentlogger "github.com/shrey258/flag-me-backend/pkg/fluentlogger"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App wires the application together.
type App struct {
	config       *configs.AppConfig
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
	restServer   *rest.Server
}

// NewApp is the composition root: every dependency is created and connected
// here, nothing reads the environment further down.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- loggers ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- platform source adapters ---
	fetchTimeout := time.Duration(appConfig.Fetcher.TimeoutSeconds) * time.Second

	amazonAdapter, err := amazonstore.New(amazonstore.Config{
		AffiliateTag:      appConfig.Affiliate.AmazonTag,
		Timeout:           fetchTimeout,
		SyntheticFallback: appConfig.Fetcher.SyntheticFallbackEnabled,
	})
	if err != nil {
		appLogger.Error("Failed to create Amazon source adapter", err, nil)
		return nil, fmt.Errorf("failed to initialize amazon source: %w", err)
	}

	flipkartAdapter, err := flipkartstore.New(flipkartstore.Config{
		AffiliateID:       appConfig.Affiliate.FlipkartID,
		Timeout:           fetchTimeout,
		SyntheticFallback: appConfig.Fetcher.SyntheticFallbackEnabled,
	})
	if err != nil {
		appLogger.Error("Failed to create Flipkart source adapter", err, nil)
		return nil, fmt.Errorf("failed to initialize flipkart source: %w", err)
	}

	myntraAdapter, err := myntrastore.New(myntrastore.Config{
		UTMCampaign:       appConfig.Affiliate.MyntraCampaign,
		Timeout:           fetchTimeout,
		SyntheticFallback: appConfig.Fetcher.SyntheticFallbackEnabled,
	})
	if err != nil {
		appLogger.Error("Failed to create Myntra source adapter", err, nil)
		return nil, fmt.Errorf("failed to initialize myntra source: %w", err)
	}
	appLogger.Info("All platform source adapters initialized.", nil)

	// --- use cases ---
	searchProductsUseCase := usecase.NewSearchProductsUseCase(usecase.SearchProductsConfig{
		MaxResultsPerSource: appConfig.Fetcher.MaxResultsPerPlatform,
		PreDelayEnabled:     appConfig.Fetcher.PreDelayEnabled,
		DefaultPlatforms:    constants.DefaultPlatforms,
	}, amazonAdapter, flipkartAdapter, myntraAdapter)
	suggestQueriesUseCase := usecase.NewSuggestQueriesUseCase()
	appLogger.Info("All use cases initialized.", nil)

	// --- incoming adapters ---
	handlers := rest.NewSearchHandlers(searchProductsUseCase, suggestQueriesUseCase)
	restServer := rest.NewServer(appConfig.HTTP.Port, handlers, baseLogger)
	appLogger.Info("REST server initialized.", port.Fields{"port": appConfig.HTTP.Port})

	return &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       appLogger,
		restServer:   restServer,
	}, nil
}

// Run starts the server and blocks until a shutdown signal or a fatal
// server error.
func (a *App) Run() error {
	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- a.restServer.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received signal, shutting down", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		if err != nil {
			a.logger.Error("REST server failed, shutting down", err, nil)
			a.closeFluent()
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.restServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("Error stopping REST server", err, nil)
	}

	a.closeFluent()
	a.logger.Info("Application shut down gracefully.", nil)
	return nil
}

func (a *App) closeFluent() {
	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			log.Printf("App: Error closing fluent client: %v\n", err)
		}
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
