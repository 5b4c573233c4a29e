package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"scholarhunt-engine/internal/config"
	"scholarhunt-engine/internal/events"
	"scholarhunt-engine/internal/httpapi"
	"scholarhunt-engine/internal/rank"
	"scholarhunt-engine/internal/scheduler"
	"scholarhunt-engine/internal/store"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// Engine data dir: env wins (the desktop shell passes one), else local.
	dataDir := os.Getenv("SCHOLARHUNT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal("data dir", zap.Error(err))
	}

	// One engine per data dir; a second instance would fight over sqlite.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatal("lock data dir", zap.Error(err))
	}
	if !locked {
		log.Fatal("another engine instance already owns this data dir", zap.String("dir", dataDir))
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatal("config bootstrap", zap.Error(err))
	}

	var cfgVal atomic.Value
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatal("config load", zap.String("path", userCfgPath), zap.Error(err))
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatal("config invalid", zap.Error(err))
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(dataDir, "scholarhunt.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal("open db", zap.Error(err))
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	hub := events.NewHub()
	scores := rank.NewCache()
	limiter := httpapi.NewClientLimiter(cfg.Limits.ReqPerSec, cfg.Limits.Burst)

	deps := httpapi.Deps{
		DB:          db.Pool,
		Hub:         hub,
		Log:         log,
		Scores:      scores,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	}
	mux := httpapi.NewMux(deps)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	srv := &http.Server{
		Handler: httpapi.Chain(mux,
			httpapi.RequestID,
			httpapi.AccessLog(log),
			httpapi.Recover(log),
			httpapi.RateLimit(limiter),
			httpapi.Cors,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	token, err := randomToken(16)
	if err != nil {
		log.Fatal("shutdown token", zap.Error(err))
	}
	mux.HandleFunc("/shutdown", shutdownHandler(token, srv))
	// local-only engine; the desktop shell picks the token up from stdout
	log.Info("shutdown endpoint armed", zap.String("token", token))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal("listen", zap.String("addr", addr), zap.Error(err))
	}
	log.Info("engine listening",
		zap.String("addr", "http://"+addr),
		zap.String("db", dbPath),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		interval := time.Duration(cfg.Cleanup.IntervalMinutes) * time.Minute
		scheduler.Every(ctx, interval, "cleanup", log, func(ctx context.Context) error {
			cur := cfgVal.Load().(config.Config)
			n, err := store.CleanupExpired(db.Pool, cur.Cleanup.RetentionMonths)
			if err != nil {
				return err
			}
			if n > 0 {
				log.Info("cleanup removed expired listings", zap.Int64("deleted", n))
				hub.Publish(events.Make("", events.TypeCleanup, map[string]any{"deleted": n}))
			}
			return nil
		})
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("engine stopped", zap.Error(err))
	}
	log.Info("engine stopped")
}
