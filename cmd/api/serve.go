package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexeyAndrrr/konoramenidk/internal/branch"
	"github.com/AlexeyAndrrr/konoramenidk/internal/config"
	"github.com/AlexeyAndrrr/konoramenidk/internal/db"
	"github.com/AlexeyAndrrr/konoramenidk/internal/logging"
	"github.com/AlexeyAndrrr/konoramenidk/internal/menu"
	"github.com/AlexeyAndrrr/konoramenidk/internal/order"
	"github.com/AlexeyAndrrr/konoramenidk/internal/review"
	"github.com/AlexeyAndrrr/konoramenidk/internal/router"
	"github.com/AlexeyAndrrr/konoramenidk/internal/storage"
	"github.com/AlexeyAndrrr/konoramenidk/internal/tips"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── DB ─────────────────────────
	var pgDB *pgxpool.Pool
	if cfg.Database.DSN != "" {
		pgDB, err = db.ConnectPostgres(ctx, cfg.Database.DSN, log)
		if err != nil {
			return err
		}
		defer pgDB.Close()
	}

	// ───────────────────────── REDIS ─────────────────────────
	var rdb *redis.Client
	if cfg.Redis.Address != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection failed: %w", err)
		}
		log.Info("connected to redis", zap.String("address", cfg.Redis.Address))
	}

	// ───────────────────────── MENU ─────────────────────────
	source, err := catalogSource(ctx, cfg, pgDB)
	if err != nil {
		return err
	}

	menuService, err := menu.NewService(ctx, source, log.Named("menu"))
	if err != nil {
		return err
	}

	// ───────────────────────── BRANCHES ─────────────────────────
	var branchRepo branch.Repository = branch.NewInMemoryRepository(branch.DefaultBranches())
	if pgDB != nil {
		branchRepo = branch.NewPostgresRepository(pgDB)
	}
	var preferences branch.PreferenceStore = branch.NewInMemoryPreferenceStore()
	if rdb != nil {
		preferences = branch.NewRedisPreferenceStore(rdb)
	}
	branchService := branch.NewService(branchRepo, preferences, log.Named("branch"))

	// ───────────────────────── REVIEWS / TIPS ─────────────────────────
	now := time.Now()

	var reviewRepo review.Repository = review.NewInMemoryRepository(review.SeedReviews(now))
	var tipRepo tips.Repository = tips.NewSeededRepository(now)
	if pgDB != nil {
		reviewRepo = review.NewPostgresRepository(pgDB)
		tipRepo = tips.NewPostgresRepository(pgDB)
	}

	reviewService := review.NewService(reviewRepo, branchService, log.Named("review"))
	tipService := tips.NewService(tipRepo, branchService)
	orderService := order.NewService(menuService, cfg.Menu.OrderConfirmDelay, log.Named("order"))

	// ───────────────────────── HTTP ─────────────────────────
	r := router.NewRouter(router.Deps{
		Log:         log.Named("http"),
		PublicDir:   cfg.Server.PublicDir,
		CORSOrigins: cfg.Server.CORSOrigins,
		Menu:        menu.NewHandler(menuService),
		Orders:      order.NewHandler(orderService),
		Branch:      branch.NewHandler(branchService),
		Reviews:     review.NewHandler(reviewService),
		Tips:        tips.NewHandler(tipService),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go menuService.RunSessionSweeper(ctx, cfg.Menu.SweepInterval, cfg.Menu.SessionTTL)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func catalogSource(ctx context.Context, cfg *config.Config, pgDB *pgxpool.Pool) (menu.CatalogSource, error) {
	switch cfg.Catalog.Source {
	case config.CatalogR2:
		client, err := storage.NewR2Client(ctx, storage.R2Config(cfg.R2))
		if err != nil {
			return nil, err
		}
		return menu.NewObjectSource(client, cfg.Catalog.ObjectKey), nil
	case config.CatalogPostgres:
		if pgDB == nil {
			return nil, errors.New("postgres catalog source needs DATABASE_URL")
		}
		return menu.NewPostgresRepository(pgDB), nil
	default:
		return menu.NewFileSource(cfg.Catalog.Path), nil
	}
}
