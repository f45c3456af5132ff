package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"videosurvey/internal/cache"
	"videosurvey/internal/config"
	"videosurvey/internal/export"
	"videosurvey/internal/platform/logger"
	"videosurvey/internal/repository"
	"videosurvey/internal/service"
	"videosurvey/internal/transport/rest"
	"videosurvey/internal/transport/ws"
)

// @title Video Survey API
// @version 1.0
// @description Single-respondent video survey sessions
// @host localhost:8080
// @BasePath /v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("Server failed", "error", err)
	}
	log.Info("Server exited")
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// MongoDB holds the default catalog (optional)
	var catalog repository.CatalogRepo
	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return fmt.Errorf("connect mongo: %w", err)
		}
		defer mongoClient.Disconnect(context.Background())

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = mongoClient.Ping(pingCtx, nil)
		cancel()
		if err != nil {
			return fmt.Errorf("ping mongo: %w", err)
		}
		log.Info("Connected to MongoDB", "db", cfg.MongoDB)
		catalog = repository.NewCatalogRepo(mongoClient.Database(cfg.MongoDB))
	}

	// Redis holds sessions when configured, memory otherwise
	var sessions cache.SessionCache
	if cfg.RedisURI != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisURI})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
		log.Info("Connected to Redis", "addr", cfg.RedisURI)
		sessions = cache.NewSessionCache(rdb, cfg.SessionTTL)
	} else {
		log.Warn("REDIS_URI not set, keeping sessions in memory")
		sessions = cache.NewMemorySessionCache(cfg.SessionTTL)
	}

	order, err := export.ParseOrder(cfg.ExportOrder)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("export timezone: %w", err)
	}

	configSvc, err := service.LoadConfigService(ctx, catalog, log)
	if err != nil {
		return err
	}

	// Initialize WebSocket hub
	wsHub := ws.NewHub(log)

	// Initialize services
	store := service.NewSessionStore(sessions)
	tokenSvc := service.NewTokenService(cfg.JWTSecret, cfg.SessionTTL)
	flowSvc := service.NewFlowService(store, configSvc, log)
	editorSvc := service.NewEditorService(store, configSvc, log)
	exportSvc := service.NewExportService(store, export.Options{
		Order:      order,
		TimeLayout: cfg.ExportTimeLayout,
		Location:   loc,
	}, log)

	// wsHub implements service.Broadcaster and video.Player
	flowSvc.SetBroadcaster(wsHub)
	flowSvc.SetPlayer(wsHub)

	router := rest.NewRouter(&rest.Container{
		Config:        cfg,
		Log:           log,
		TokenService:  tokenSvc,
		ConfigService: configSvc,
		FlowService:   flowSvc,
		EditorService: editorSvc,
		ExportService: exportSvc,
		WSHub:         wsHub,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return wsHub.Run(gctx)
	})
	g.Go(func() error {
		log.Info("Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
