package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/pointnow/admin-bff/internal/api/handler"
	"github.com/pointnow/admin-bff/internal/api/handler/router"
	"github.com/pointnow/admin-bff/internal/config"
	"github.com/pointnow/admin-bff/internal/usecases/authenticating"
	"github.com/pointnow/admin-bff/internal/usecases/configuring"
	"github.com/pointnow/admin-bff/internal/usecases/proxying"
	"github.com/pointnow/admin-bff/internal/usecases/viewing"
	"github.com/pointnow/admin-bff/pkg/middleware"
	"github.com/pointnow/admin-bff/pkg/monitoring"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services groups what the routes are built from. Settings and Metrics are
// optional; their routes are not mounted when nil.
type Services struct {
	Proxier       proxying.Proxier
	Authenticator authenticating.Authenticator
	Viewer        viewing.Viewer
	Settings      configuring.SettingsService
	Upstream      handler.UpstreamReporter
	Metrics       *monitoring.MetricsCollector
}

func New(cfg *config.Config, services Services) (*Server, error) {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler assembles the router and the global middleware chain
func NewHandler(cfg *config.Config, services Services) http.Handler {
	configs := make([]router.ConfigRouter, 0, 8)

	if services.Metrics != nil {
		configs = append(configs,
			router.WithInstrumentation(services.Metrics.Instrument),
			router.WithRoutes(handler.Metrics(services.Metrics)...),
		)
	}

	configs = append(configs,
		router.WithRoutes(handler.Healthcheck(services.Upstream)...),
		router.WithRoutes(handler.Authentication(services.Authenticator, cfg.Cookie)...),
		router.WithRoutes(handler.Analytics(services.Proxier)...),
		router.WithRoutes(handler.Views(services.Viewer)...),
	)

	if services.Settings != nil {
		configs = append(configs, router.WithRoutes(handler.Settings(services.Settings)...))
	}

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.SessionMiddleware(),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("shutting down server")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server shutdown failed")
		return err
	}

	logrus.Info("server shut down")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
