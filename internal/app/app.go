// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/garyellow/badgerchat-fulfillment/internal/bot"
	"github.com/garyellow/badgerchat-fulfillment/internal/buildinfo"
	"github.com/garyellow/badgerchat-fulfillment/internal/config"
	"github.com/garyellow/badgerchat-fulfillment/internal/locale"
	"github.com/garyellow/badgerchat-fulfillment/internal/logger"
	"github.com/garyellow/badgerchat-fulfillment/internal/messageapi"
	"github.com/garyellow/badgerchat-fulfillment/internal/metrics"
	"github.com/garyellow/badgerchat-fulfillment/internal/modules/chatroom"
	"github.com/garyellow/badgerchat-fulfillment/internal/modules/greeting"
	"github.com/garyellow/badgerchat-fulfillment/internal/sentry"
	"github.com/garyellow/badgerchat-fulfillment/internal/webhook"
)

const sentryFlushTimeout = 2 * time.Second

// Application manages the application lifecycle and dependencies.
type Application struct {
	cfg            *config.Config
	logger         *logger.Logger
	metrics        *metrics.Metrics
	registry       *prometheus.Registry
	intents        *bot.Registry
	modules        []string
	webhookHandler *webhook.Handler
	router         *gin.Engine
	server         *http.Server
}

// Initialize creates and initializes a new application with all dependencies.
func Initialize(cfg *config.Config) (*Application, error) {
	log := logger.NewWithOptions(logger.Options{
		Level:               cfg.LogLevel,
		Writer:              os.Stdout,
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})

	log = log.WithField("service", "badgerchat-fulfillment")
	if host, err := os.Hostname(); err == nil && host != "" {
		log = log.WithField("instance_id", host)
	}

	// Package-level slog.*Context() calls pick up request_id, session_id and intent.
	slog.SetDefault(log.Logger)

	log.WithField("version", buildinfo.Release()).Info("Initializing application...")
	if cfg.BetterStackEnabled() {
		log.WithField("endpoint", cfg.BetterStackEndpoint).Info("Better Stack logging enabled")
	}

	if err := sentry.Initialize(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     buildinfo.Release(),
		SampleRate:  cfg.SentrySampleRate,
		Debug:       cfg.LogLevel == "debug",
	}); err != nil {
		log.WithError(err).Warn("Sentry initialization failed; error reporting disabled")
	} else if cfg.SentryEnabled() {
		log.WithField("environment", cfg.SentryEnvironment).Info("Sentry error reporting enabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)
	m := metrics.New(registry)

	loc, err := locale.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}
	formatter, err := locale.New(loc, cfg.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("locale: %w", err)
	}

	client := messageapi.NewClient(messageapi.Config{
		BaseURL: cfg.APIBaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.UpstreamTimeout,
		Metrics: m,
	})

	gin.SetMode(gin.ReleaseMode)
	app := newApplication(cfg, log, m, registry, client, formatter)
	log.WithField("modules", app.modules).
		WithField("intents", app.intents.Intents()).
		Info("Initialization complete")
	return app, nil
}

// intentModule is a feature module contributing intents to the registry.
type intentModule interface {
	Name() string
	Register(r *bot.Registry)
}

// newApplication wires the intent registry, webhook and router around
// already-built dependencies.
func newApplication(
	cfg *config.Config,
	log *logger.Logger,
	m *metrics.Metrics,
	registry *prometheus.Registry,
	fetcher chatroom.MessageFetcher,
	formatter *locale.Formatter,
) *Application {
	intents := bot.NewRegistry()
	var names []string
	for _, mod := range []intentModule{
		greeting.NewHandler(log),
		chatroom.NewHandler(fetcher, formatter, cfg.WebBaseURL, log),
	} {
		before := len(intents.Intents())
		mod.Register(intents)
		names = append(names, mod.Name())
		log.WithModule(mod.Name()).
			WithField("intents", intents.Intents()[before:]).
			Debug("Module registered")
	}

	app := &Application{
		cfg:      cfg,
		logger:   log,
		metrics:  m,
		registry: registry,
		intents:  intents,
		modules:  names,
		webhookHandler: webhook.NewHandler(webhook.HandlerConfig{
			Registry: intents,
			Metrics:  m,
			Logger:   log,
		}),
	}
	app.router = app.newRouter()

	app.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.router,
		ReadHeaderTimeout: config.WebhookHTTPRead,
		ReadTimeout:       config.WebhookHTTPRead,
		WriteTimeout:      config.WebhookHTTPWrite,
		IdleTimeout:       config.WebhookHTTPIdle,
	}
	return app
}

func (a *Application) newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(sentry.Middleware())
	router.Use(securityHeadersMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(a.logger))

	router.GET("/", a.rootCheck)
	router.HEAD("/", a.rootCheck)
	router.POST("/", a.webhookHandler.Handle)
	router.GET("/livez", a.livenessCheck)
	router.HEAD("/livez", a.livenessCheck)
	router.GET("/metrics",
		metricsAuthMiddleware(a.cfg.MetricsAuthEnabled, a.cfg.MetricsUsername, a.cfg.MetricsPassword),
		gin.WrapH(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))

	return router
}

func (a *Application) rootCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Express Server Works!"})
}

func (a *Application) livenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "alive",
		"version": buildinfo.Release(),
	})
}

// Run serves HTTP until ctx is canceled or SIGINT/SIGTERM arrives, then
// shuts down gracefully. A listener failure is returned as the error.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.WithField("port", a.cfg.Port).Info("Starting HTTP server")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Received shutdown signal")
		return a.shutdown()
	})

	return g.Wait()
}

// shutdown stops accepting requests, drains in-flight ones, then flushes
// Sentry and the remote log sink.
func (a *Application) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	a.logger.Info("Stopping HTTP server...")
	var serverErr error
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.WithError(err).Error("HTTP server shutdown error")
		serverErr = fmt.Errorf("http shutdown: %w", err)
	}

	if sentry.IsEnabled() && !sentry.Flush(sentryFlushTimeout) {
		a.logger.Warn("Sentry flush timed out")
	}

	a.logger.Info("Shutdown complete")
	if err := a.logger.Shutdown(shutdownCtx); err != nil {
		a.logger.WithError(err).Warn("Logger shutdown timed out")
	}
	return serverErr
}
