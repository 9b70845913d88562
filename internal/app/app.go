package app

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/rgalimov/fortuna/internal/config"
	"github.com/rgalimov/fortuna/internal/handlers"
	"github.com/rgalimov/fortuna/internal/notify"
	"github.com/rgalimov/fortuna/internal/pg"
	"github.com/rgalimov/fortuna/internal/reminder"
	"github.com/rgalimov/fortuna/internal/repo"
	"github.com/rgalimov/fortuna/internal/service"
	"github.com/rgalimov/fortuna/internal/service/approvalservice"
	"github.com/rgalimov/fortuna/internal/wheel"
	"github.com/rgalimov/fortuna/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	reminder *reminder.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	a.cfg = cfg
	a.repo, err = buildRepositories(ctx, cfg)
	if err != nil {
		zap.L().Error("build storage failed: ", zap.Error(err))
		return fmt.Errorf("can't build storage: %w", err)
	}

	notifier, err := buildNotifier(cfg)
	if err != nil {
		zap.L().Error("build notifier failed: ", zap.Error(err))
		return fmt.Errorf("can't build notifier: %w", err)
	}

	drawer, err := wheel.New(wheel.DefaultSectors(), rand.NewSource(time.Now().UnixNano()))
	if err != nil {
		return fmt.Errorf("can't build wheel: %w", err)
	}

	a.srv = service.New(a.repo, cfg, notifier, drawer)
	a.api = handlers.New(a.srv)
	a.reminder = reminder.New(cfg, a.srv.TransactionService, notifier)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	if err = a.reminder.Start(ctx); err != nil {
		return fmt.Errorf("can't start pending reminder: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// buildRepositories selects the storage adapter: Postgres when a DSN is
// configured, process memory otherwise.
func buildRepositories(ctx context.Context, cfg *config.Config) (*repo.Repositories, error) {
	if cfg.Database == "" {
		zap.L().Info("no database DSN configured, using in-memory storage")
		return repo.NewMemory(), nil
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		return nil, fmt.Errorf("can't run migrations: %w", err)
	}
	return repo.New(pg.New(pool), pg.NewTXManager(pool)), nil
}

func buildNotifier(cfg *config.Config) (approvalservice.Notifier, error) {
	if cfg.BotToken == "" {
		zap.L().Info("no bot token configured, notifications go to the log")
		return notify.NewLog(), nil
	}
	return notify.NewTelegram(cfg.BotToken, cfg.AdminChatID)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
