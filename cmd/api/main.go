package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"billomat-invoicing/config"
	_ "billomat-invoicing/docs" // Swagger docs
	"billomat-invoicing/internal/httpserver"
	"billomat-invoicing/internal/invoice"
	invoiceHTTP "billomat-invoicing/internal/invoice/delivery/http"
	"billomat-invoicing/internal/invoice/repository/billomat"
	"billomat-invoicing/internal/invoice/usecase"
	"billomat-invoicing/internal/middleware"
	"billomat-invoicing/pkg/i18n"
	"billomat-invoicing/pkg/log"
	"billomat-invoicing/pkg/tracing"
)

// @title       Billomat Invoicing API
// @description Aggregates tracked time entries into Billomat invoices and resolves the Billomat client/contact picklist.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Billomat Invoicing...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Tracing
	shutdownTracing, err := tracing.Init(ctx, logger, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: httpserver.ServiceName,
		Environment: cfg.Environment.Name,
		Version:     httpserver.HealthVersion,
		Exporter:    cfg.Tracing.Exporter,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize tracing: ", err)
		return
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warnf(ctx, "Tracing shutdown: %v", err)
		}
	}()

	// 4. Invoice domain
	localizer := i18n.New(cfg.Invoice.Locale)
	logger.Infof(ctx, "Default locale: %s (supported: %v)", localizer.Locale(), i18n.Supported())

	billomatFactory := billomat.NewFactory(billomat.Config{
		BaseURL:         cfg.Billomat.BaseURL,
		ClientPageSize:  cfg.Billomat.ClientPageSize,
		ContactPageSize: cfg.Billomat.ContactPageSize,
		HTTPClient: &http.Client{
			Timeout:   cfg.Billomat.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, logger)

	invoiceUC := usecase.New(logger, localizer, billomatFactory, cfg.Invoice.Logo, cfg.Invoice.CurrencySymbol)
	invoiceHandler := invoiceHTTP.New(logger, invoiceUC, invoice.Account{
		AccountID: cfg.Billomat.AccountID,
		APIKey:    cfg.Billomat.APIKey,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.RateLimit.PerMin),
		ReadinessChecks: map[string]httpserver.ReadinessCheck{
			"billomat_account": func(context.Context) error {
				_, err := billomatFactory.New(cfg.Billomat.AccountID, cfg.Billomat.APIKey)
				return err
			},
		},
		InvoiceHandler: invoiceHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
