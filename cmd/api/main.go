package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/pointnow/admin-bff/infrastructure/cache"
	"github.com/pointnow/admin-bff/infrastructure/database/postgres"
	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow"
	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow/pointnowclient"
	"github.com/pointnow/admin-bff/infrastructure/repository"
	"github.com/pointnow/admin-bff/internal/api"
	"github.com/pointnow/admin-bff/internal/config"
	"github.com/pointnow/admin-bff/internal/scheduler"
	"github.com/pointnow/admin-bff/internal/usecases/authenticating"
	"github.com/pointnow/admin-bff/internal/usecases/configuring"
	"github.com/pointnow/admin-bff/internal/usecases/proxying"
	"github.com/pointnow/admin-bff/internal/usecases/viewing"
	"github.com/pointnow/admin-bff/pkg/log"
	"github.com/pointnow/admin-bff/pkg/monitoring"
	"github.com/sirupsen/logrus"
)

const serviceName = "pointnow-admin-bff"

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(cfg.App.Env, cfg.App.LogLevel); err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	services := api.Services{}

	var clientOpts []pointnowclient.Option
	if cfg.Metrics.Enabled {
		services.Metrics = monitoring.NewMetricsCollector(serviceName)
		clientOpts = append(clientOpts, pointnowclient.WithObserver(services.Metrics))
	}

	upstreamClient := pointnowclient.NewClient(cfg, clientOpts...)
	integrator := pointnow.New(upstreamClient)

	services.Proxier = proxying.NewService(upstreamClient)
	services.Authenticator = authenticating.NewService(upstreamClient)
	services.Viewer = viewing.NewService(integrator, lookupCache(ctx, cfg.LookupCache), cfg.LookupCache.TTL)

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		services.Settings = configuring.NewService(repository.NewSettingsRepository(pgConn))
	} else {
		logrus.Info("database disabled, settings routes are not mounted")
	}

	upstreamProbe := scheduler.NewUpstreamProbeService(upstreamClient, cfg)
	if err := upstreamProbe.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start the upstream probe")
	}
	services.Upstream = upstreamProbe

	server, err := api.New(cfg, services)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource lets config find the .env next to the sources during local runs
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}

// lookupCache falls back to a no-op cache when Redis is not configured or unreachable
func lookupCache(ctx context.Context, cacheConfig config.LookupCache) cache.RecordCache {
	if cacheConfig.RedisURL == "" {
		return cache.NewNoopCache()
	}

	client, err := cache.NewRedisClient(ctx, cacheConfig.RedisURL)
	if err != nil {
		logrus.WithError(err).Warn("lookup cache unavailable, record lookups will always scan")
		return cache.NewNoopCache()
	}

	logrus.Info("lookup cache connected to Redis")
	return cache.NewRedisCache(client)
}
