package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/pigsheadbbq/site/internal/api/http"
	"github.com/pigsheadbbq/site/internal/api/http/handlers"
	"github.com/pigsheadbbq/site/internal/auth"
	"github.com/pigsheadbbq/site/internal/config"
	"github.com/pigsheadbbq/site/internal/events"
	"github.com/pigsheadbbq/site/internal/menu"
	"github.com/pigsheadbbq/site/internal/observability"
	"github.com/pigsheadbbq/site/internal/subscribe"
	"github.com/pigsheadbbq/site/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	sessions := auth.NewSessionStore(nil)
	limiter := auth.NewLoginLimiter(cfg.RateLimit.Window(), cfg.RateLimit.MaxAttempts)
	csrf := auth.NewCSRFManager(cfg.Session.Secret, cfg.Session.CSRFTTLMinute)
	credentials := auth.NewCredentials(cfg.Admin.Username, cfg.Admin.PasswordHash)
	gate := auth.NewGate(sessions)

	fetcher := menu.NewFetcher(cfg.Menu.FetchTimeout())

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartSubscriptionForwarder(dispatcher, cfg.Subscribe.WebhookURL, cfg.Subscribe.ForwardTimeout(), logger)
	recorder := subscribe.NewRecorder(cfg.Subscribe.LogPath, dispatcher, logger, nil)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	httptransport.RegisterMiddlewares(app, logger, metrics)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Auth: handlers.NewAuthHandler(handlers.AuthHandlerConfig{
			Credentials:  credentials,
			Sessions:     sessions,
			Limiter:      limiter,
			CSRF:         csrf,
			Logger:       logger,
			CookieSecure: cfg.Session.CookieSecure,
			CookieMaxAge: cfg.Session.CookieMaxAge,
		}),
		Menu:      handlers.NewMenuHandler(fetcher, cfg.Menu, logger),
		Subscribe: handlers.NewSubscribeHandler(recorder, logger),
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.App.SiteDir),
		Gate:      gate,
		SiteDir:   cfg.App.SiteDir,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
