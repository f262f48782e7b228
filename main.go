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

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/auth"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/commerce"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/config"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/database"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/events"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/logger"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/middleware"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("starting application")

	db, err := database.Open(cfg.DSN())
	if err != nil {
		log.Fatal("db connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("auto-migrate failed", zap.Error(err))
	}

	feed := events.NewFeed(log)
	publisher := events.Multi{feed}
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := events.NewKafka(cfg.KafkaBrokers, log)
		if err != nil {
			log.Fatal("kafka unavailable", zap.Error(err))
		}
		defer kafka.Close()
		publisher = append(publisher, kafka)
	}

	var locker commerce.Locker = commerce.NewMemoryLocker()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("redis unavailable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		defer client.Close()
		locker = commerce.NewRedisLocker(client, 10*time.Second)
		log.Info("using redis user locks", zap.String("addr", cfg.RedisAddr))
	}

	engine := commerce.NewEngine(db, commerce.Options{
		TaxRate:      &cfg.TaxRate,
		ChargePolicy: cfg.ChargePolicy,
		PayoutPolicy: cfg.PayoutPolicy,
		Locker:       locker,
		Publisher:    publisher,
		Logger:       log,
	})

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	r.MaxMultipartMemory = 32 << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Dependencies{
		DB:     db,
		Engine: engine,
		Tokens: auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL),
		APIKey: cfg.AdminAPIKey,
		Feed:   feed,
		Log:    log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return
	}
	log.Info("bye")
}
