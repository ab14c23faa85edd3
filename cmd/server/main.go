package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"foodbridge/internal/intake"
	intakemetrics "foodbridge/internal/intake/metrics"
	intakeservice "foodbridge/internal/intake/service"
	"foodbridge/internal/intake/store"
	"foodbridge/internal/platform/config"
	"foodbridge/internal/platform/httpserver"
	"foodbridge/internal/platform/logger"
	"foodbridge/internal/provider/gemini"
	"foodbridge/internal/provider/supabase"
	"foodbridge/internal/registration"
	registrationmetrics "foodbridge/internal/registration/metrics"
	registrationservice "foodbridge/internal/registration/service"
	registrationstore "foodbridge/internal/registration/store"
	"foodbridge/internal/trust"
	trustmetrics "foodbridge/internal/trust/metrics"
	httptransport "foodbridge/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	supabaseClient := supabase.New(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseTimeout)
	geminiClient := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)

	classifier := trust.NewClassifier(geminiClient, log,
		trust.WithMetrics(trustmetrics.New()),
	)
	registrationSvc := registration.NewService(
		classifier,
		supabaseClient,
		registrationstore.NewProfileStore(supabaseClient),
		log,
		registrationservice.WithMetrics(registrationmetrics.New()),
	)
	intakeSvc := intake.NewService(
		store.NewRequestStore(supabaseClient),
		log,
		intakeservice.WithMetrics(intakemetrics.New()),
	)

	router := httptransport.NewRouter(log,
		registration.NewHandler(registrationSvc, log),
		intake.NewHandler(intakeSvc, log),
	)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting foodbridge", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
