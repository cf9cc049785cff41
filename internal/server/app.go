// Package server wires the GameZone server together: storage, the session
// cache, services, the gRPC endpoint and the metrics/health endpoint. It
// also owns graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gamezone/gamezone/internal/logging"
	"github.com/gamezone/gamezone/internal/server/auth"
	"github.com/gamezone/gamezone/internal/server/config"
	gs "github.com/gamezone/gamezone/internal/server/grpc"
	"github.com/gamezone/gamezone/internal/server/observability"
	"github.com/gamezone/gamezone/internal/server/repositories/repomanager"
	"github.com/gamezone/gamezone/internal/server/services"
	"github.com/gamezone/gamezone/internal/server/sessions"
)

// Version is stamped at build time with -ldflags "-X ...server.Version=...".
var Version = "dev"

const shutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	cache   *sessions.RedisCache
	grpc    *gs.GRPCServer
	metrics *observability.Server
}

// NewApp validates c and opens every external dependency. Any failure is
// fatal for startup; whatever was already opened is closed again.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New("gamezone-server", Version, c.LogFormat, os.Stdout)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	db, err := sql.Open(repomanager.DriverName, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	cache, err := sessions.NewRedisCache(ctx, c.RedisURL)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session cache error: %w", err)
	}

	codec := auth.NewCodec([]byte(c.SecretKey), c.AccessTokenValidityDuration)

	var gateOpts []auth.GateOption
	if c.SingleSession {
		gateOpts = append(gateOpts, auth.WithSingleSession(cache))
	}
	gate := auth.NewGate(codec, rm.Accounts(db), gateOpts...)

	as := services.NewAccountService(db, rm, codec, cache, c.SessionTTL, c.BcryptCost)
	cs := services.NewCatalogService(db, rm, c.PageSize)

	app := &App{config: c, logger: logger, db: db, cache: cache}

	if c.MetricsAddr != "" {
		app.metrics = observability.NewServer(c.MetricsAddr, logger, app.ready)
	}

	var m *observability.Metrics
	if app.metrics != nil {
		m = app.metrics.Metrics()
	}
	app.grpc = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, gate, as, cs, m)

	return app, nil
}

func (app *App) ready(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return app.db.PingContext(ctx) == nil && app.cache.Ping(ctx) == nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.grpc.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	errCh, err := app.metrics.Start(ctx)
	if err != nil {
		app.logger.Error(ctx, "metrics server failed", "error", err)
		cancelFunc()
		return
	}

	select {
	case <-ctx.Done():
	case err, ok := <-errCh:
		if ok && err != nil {
			cancelFunc()
		}
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.metrics.Stop(stopCtx); err != nil {
		app.logger.Error(ctx, "metrics server stop failed", "error", err)
	}
}

// Run serves until ctx is cancelled or a signal arrives, then releases the
// session cache and the database.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "version", Version)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.metrics != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.cache.Close(); err != nil {
		app.logger.Error(ctx, "session cache close failed", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close failed", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}
