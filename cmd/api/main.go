package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/KairamCabral/terravik-sub003/api/routes"
	"github.com/KairamCabral/terravik-sub003/internal/catalog"
	"github.com/KairamCabral/terravik-sub003/internal/dosage"
	"github.com/KairamCabral/terravik-sub003/internal/pricing"
	"github.com/KairamCabral/terravik-sub003/pkg/config"
	"github.com/KairamCabral/terravik-sub003/pkg/logger"
	"github.com/KairamCabral/terravik-sub003/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dosageService, err := dosage.NewService(dosage.ServiceParams{
		Products: catalog.Products(),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create dosage service", err)
		os.Exit(1)
	}

	pricingService, err := pricing.NewService(pricing.ServiceParams{
		ShippingFee:   cfg.Pricing.ShippingFee(),
		HorizonMonths: cfg.Pricing.ScheduleHorizonMonths,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create pricing service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, registry, httpMetrics, dosageService, pricingService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
