// Package main is the entry point for the safari operations dashboard API.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/jmwanyama/safari-ops/internal/config"
	"github.com/jmwanyama/safari-ops/internal/handler"
	"github.com/jmwanyama/safari-ops/internal/middleware"
	"github.com/jmwanyama/safari-ops/internal/service"
	"github.com/jmwanyama/safari-ops/internal/upstream"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger. The JSON handler writes
	// machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Snapshot cache ---------------------------------------------------
	// Redis is optional: without it the dashboard snapshot lives in process
	// memory only. A Redis that is configured but unreachable is a startup
	// error — better to fail loud than to run silently uncached.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			slog.Error("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		slog.Info("snapshot cache enabled", "addr", cfg.RedisAddr)
	}
	cache := service.NewSnapshotCache(rdb, cfg.SnapshotTTL, logger)

	// --- Upstream clients -------------------------------------------------
	client := upstream.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, logger)
	bookingClient := upstream.NewBookingClient(client)
	tourClient := upstream.NewTourClient(client)
	staffClient := upstream.NewStaffClient(client)
	complaintClient := upstream.NewComplaintClient(client)
	applicationClient := upstream.NewApplicationClient(client)
	fuelClaimClient := upstream.NewFuelClaimClient(client)
	feedbackClient := upstream.NewFeedbackClient(client)
	donationClient := upstream.NewDonationClient(client)

	// --- Services ---------------------------------------------------------
	bookingSvc := service.NewBookingService(bookingClient, logger, nil)
	staffDir := service.NewStaffDirectory(staffClient, logger)
	dashboardSvc := service.NewDashboardService(service.DashboardDeps{
		Bookings:     bookingSvc,
		Tours:        tourClient,
		Complaints:   complaintClient,
		Applications: applicationClient,
		FuelClaims:   fuelClaimClient,
		Feedback:     feedbackClient,
		Donations:    donationClient,
		Guides:       staffDir,
		Cache:        cache,
		Log:          logger,
	})
	// Booking mutations drop both the Redis snapshot and the in-memory
	// copy; wired here because the dashboard consumes bookingSvc.List.
	bookingSvc.SetInvalidator(dashboardSvc)
	assignmentSvc := service.NewAssignmentService(bookingClient, tourClient, dashboardSvc, logger, cfg.SettleDelay)
	opsSvc := service.NewOpsService(complaintClient, applicationClient, fuelClaimClient, feedbackClient, dashboardSvc, logger)
	exportSvc := service.NewExportService(bookingSvc, staffDir)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order:
	// RequestID → RealIP → Logger → Metrics → Recoverer → CORS → body limit → bearer passthrough.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(middleware.NewMetrics())
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewBearerPassthrough())

	srv := handler.NewServer(handler.Deps{
		Bookings:    bookingSvc,
		Assignments: assignmentSvc,
		Staff:       staffDir,
		Dashboard:   dashboardSvc,
		Ops:         opsSvc,
		Export:      exportSvc,
	})
	srv.Routes(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr, "upstream", cfg.UpstreamBaseURL)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	slog.Info("server stopped")
}
