package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/navarrastar/leadpage/pkg/api"
	"github.com/navarrastar/leadpage/pkg/clients/analytics"
	"github.com/navarrastar/leadpage/pkg/clients/whatsapp"
	"github.com/navarrastar/leadpage/pkg/clock"
	"github.com/navarrastar/leadpage/pkg/components"
	"github.com/navarrastar/leadpage/pkg/config"
	"github.com/navarrastar/leadpage/pkg/logger"
	"github.com/navarrastar/leadpage/pkg/metrics"
	"github.com/navarrastar/leadpage/pkg/middleware"
	"github.com/navarrastar/leadpage/pkg/phone"
	"github.com/navarrastar/leadpage/pkg/services"
)

//go:embed static
var staticFS embed.FS

func main() {
	log := logger.NewLogger()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file loaded, using process environment")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("invalid configuration", logger.Error(err))
		os.Exit(1)
	}

	clk := clock.Real()

	// Initialize API clients
	var tracker analytics.Tracker
	if cfg.Analytics.Enabled() {
		tracker = analytics.NewClient(analytics.Options{
			MeasurementID: cfg.Analytics.MeasurementID,
			APISecret:     cfg.Analytics.APISecret,
			Endpoint:      cfg.Analytics.Endpoint,
			Currency:      cfg.Analytics.Currency,
			Timeout:       cfg.Analytics.Timeout,
		}, log)
	} else {
		log.Warn("GA_API_SECRET not set, analytics events will only be logged")
		tracker = analytics.NewLogTracker(log)
	}
	links := whatsapp.NewLinkBuilder(cfg.WhatsApp.Host, cfg.WhatsApp.Number)

	// Initialize services
	validator, err := services.NewLeadValidator(phone.NewWhatsAppValidator())
	if err != nil {
		log.Error("error building lead validator", logger.Error(err))
		os.Exit(1)
	}
	leads := services.NewLeadCaptureService(validator, links, tracker, clk, cfg.Leads.SubmitDelay, log)

	countdown := services.NewCountdown(clk, cfg.CountdownWindow)
	deadline := countdown.Target()
	countdown.Start(func(services.Remaining) {
		if t := countdown.Target(); !t.Equal(deadline) {
			deadline = t
			metrics.CountdownRenewals.Inc()
			log.Info("offer deadline renewed", slog.Time("deadline", t))
		}
	})

	limiter := middleware.NewClientRateLimiter(cfg.Leads.RatePerMinute, cfg.Leads.RateBurst)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go pruneLimiter(ctx, limiter)

	gin.SetMode(cfg.GinMode)

	// Create a new Gin router with default middleware
	router := gin.Default()

	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Error("error accessing static files", logger.Error(err))
		os.Exit(1)
	}

	// Initialize handlers
	handlers := api.NewHandlers(leads, countdown, tracker, clk, components.PageConfig{
		MeasurementID: cfg.Analytics.MeasurementID,
	}, log)
	api.RegisterRoutes(router, handlers, limiter, staticSub)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("error starting server", logger.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("error during shutdown", logger.Error(err))
	}
	countdown.Stop()
	tracker.Close()
}

func pruneLimiter(ctx context.Context, limiter *middleware.ClientRateLimiter) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Prune()
		}
	}
}
