package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/database/postgres"
	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/repository"
	"github.com/estatecerenti/umkm-monitoring-api/internal/api"
	"github.com/estatecerenti/umkm-monitoring-api/internal/config"
	"github.com/estatecerenti/umkm-monitoring-api/internal/scheduler"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/authenticating"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/monitoring"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/prepost"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	bookkeepingRepo := repository.NewBookkeepingRepository(pgConn)
	mseRecordRepo := repository.NewMSERecordRepository(pgConn)
	datasetRepo := repository.NewDatasetRepository(pgConn)
	logRepo := repository.NewActivityLogRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	snapshots := scheduler.NewSnapshotRefresher(bookkeepingRepo, mseRecordRepo, cfg)
	if err := snapshots.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("could not build the initial reconciled snapshot")
	}
	logrus.Info("reconciled snapshot ready")

	monitoringService := monitoring.NewService(snapshots, mseRecordRepo, bookkeepingRepo, logRepo)
	datasetService := prepost.NewService(datasetRepo, logRepo)

	server, err := api.New(
		cfg,
		authenticator,
		monitoringService,
		datasetService,
		snapshots,
		logRepo,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("could not ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
