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
	"github.com/sirupsen/logrus"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/repository"
	"github.com/estatecerenti/umkm-monitoring-api/internal/api/handler"
	"github.com/estatecerenti/umkm-monitoring-api/internal/api/handler/router"
	"github.com/estatecerenti/umkm-monitoring-api/internal/config"
	"github.com/estatecerenti/umkm-monitoring-api/internal/scheduler"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/authenticating"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/monitoring"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/prepost"
	"github.com/estatecerenti/umkm-monitoring-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	authenticator authenticating.Authenticator,
	monitoringService monitoring.Monitorer,
	datasetService prepost.DatasetManager,
	snapshots *scheduler.SnapshotRefresher,
	logRepo repository.ActivityLogRepository,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Monitoring(monitoringService)...),
		router.WithRoutes(handler.Export(monitoringService, snapshots)...),
		router.WithRoutes(handler.Datasets(datasetService)...),
		router.WithRoutes(handler.ActivityLogs(logRepo)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
