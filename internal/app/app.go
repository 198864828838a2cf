package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pathforward/doorhub/internal/auth"
	"github.com/pathforward/doorhub/internal/config"
	"github.com/pathforward/doorhub/internal/domain"
	"github.com/pathforward/doorhub/internal/httpserver"
	"github.com/pathforward/doorhub/internal/httpserver/deps"
	"github.com/pathforward/doorhub/internal/index"
	"github.com/pathforward/doorhub/internal/logger"
	"github.com/pathforward/doorhub/internal/redis"
	"github.com/pathforward/doorhub/internal/scheduler"
	"github.com/pathforward/doorhub/internal/store/postgres"
	redisstore "github.com/pathforward/doorhub/internal/store/redis"
	"github.com/pathforward/doorhub/internal/utils"
	"github.com/pathforward/doorhub/internal/version"
)

// RefreshDebounce collapses bursts of manual refresh requests.
const RefreshDebounce = 300 * time.Millisecond

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	db          *postgres.CatalogStore
	catalog     *index.CatalogIndex
	sessions    *index.SessionTable
	refresher   *scheduler.CatalogRefresher
	reaper      *scheduler.SessionReaper
	debouncer   *utils.Debouncer[struct{}]
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Redis and Postgres are both hard requirements - fail fast.
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	db, err := postgres.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Postgres: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Postgres initialized successfully")

	catalogIndex := index.NewCatalogIndex()
	sessions := index.NewSessionTable()
	store := redisstore.NewStore(redisClient)

	// Prime the index from cached snapshots so a restart can serve
	// before the first database load completes.
	syncer := scheduler.NewRedisSyncer(store, catalogIndex, loggerClient)
	if err := syncer.Sync(context.Background()); err != nil {
		loggerClient.Warn("failed to sync snapshots from redis on startup, will load from postgres",
			logger.Error(err))
	}

	refreshTrigger := make(chan struct{}, 1)
	debouncer := utils.NewDebouncer(RefreshDebounce, func(struct{}) {
		select {
		case refreshTrigger <- struct{}{}:
		default: // a refresh is already queued
		}
	})

	refresher := scheduler.NewCatalogRefresher(
		db,
		store,
		catalogIndex,
		cfg.CareerFile,
		loggerClient,
		cfg.RefreshInterval,
		refreshTrigger,
	)

	reaper := scheduler.NewSessionReaper(sessions, loggerClient, cfg.ReapInterval, cfg.SessionTTL)

	defaultLocale, ok := domain.ParseLocale(cfg.DefaultLocale)
	if !ok {
		loggerClient.Warn("unknown default locale, falling back to English",
			logger.String("value", cfg.DefaultLocale))
		defaultLocale = domain.LocaleEnglish
	}

	var authProvider auth.Provider
	if cfg.AuthUserinfoURL != "" {
		authProvider = auth.NewHTTPProvider(cfg.AuthUserinfoURL, cfg.AuthTimeout)
		loggerClient.Info("auth provider configured",
			logger.String("userinfo_url", cfg.AuthUserinfoURL))
	} else {
		loggerClient.Warn("auth userinfo URL not configured, running without authentication")
	}

	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		TimeNow:        time.Now,
		DefaultLocale:  defaultLocale,
		Index:          catalogIndex,
		Sessions:       sessions,
		RedisClient:    redisClient,
		Store:          store,
		DB:             db,
		Auth:           authProvider,
		AdminToken:     cfg.AdminToken,
		RefreshTrigger: debouncer,
		AllowedOrigins: cfg.AllowedOrigins,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		db:          db,
		catalog:     catalogIndex,
		sessions:    sessions,
		refresher:   refresher,
		reaper:      reaper,
		debouncer:   debouncer,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting DoorHub v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("DoorHub %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.refresher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start catalog refresher: %w", err)
	}
	a.logger.Info("catalog refresher started",
		logger.Duration("interval", a.cfg.RefreshInterval))

	a.reaper.Start(ctx)
	a.logger.Info("session reaper started",
		logger.Duration("interval", a.cfg.ReapInterval),
		logger.Duration("ttl", a.cfg.SessionTTL))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.refresher.Stop()
	a.reaper.Stop()
	a.debouncer.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.db.Close()

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ DoorHub stopped cleanly")
	return nil
}
