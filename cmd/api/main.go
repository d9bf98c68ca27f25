package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/garage-manager/internal/auth"
	"github.com/BruksfildServices01/garage-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/garage-manager/internal/db"
	"github.com/BruksfildServices01/garage-manager/internal/infra/memory"
	"github.com/BruksfildServices01/garage-manager/internal/infra/objectstore"
	"github.com/BruksfildServices01/garage-manager/internal/middleware"
	"github.com/BruksfildServices01/garage-manager/internal/routes"
	ucAccount "github.com/BruksfildServices01/garage-manager/internal/usecase/account"
)

func main() {

	cfg := config.Load()

	if cfg.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	// ======================================================
	// STORAGE
	// ======================================================
	var stores routes.Stores
	switch cfg.Database.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		stores = routes.MemoryStores(memory.New())
	default:
		stores = routes.GormStores(dbpkg.NewDB(cfg))
	}

	authService := auth.NewService(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.Auth.BcryptCost)

	if err := ucAccount.EnsureSuperAdmin(
		context.Background(),
		stores.Accounts,
		authService,
		cfg.Auth.SuperAdminEmail,
		cfg.Auth.SuperAdminPassword,
	); err != nil {
		log.WithError(err).Fatal("failed to bootstrap super admin")
	}

	// ======================================================
	// RATE LIMIT STORE
	// ======================================================
	var rateStore middleware.RateLimitStore = middleware.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(context.Background()).Err(); err != nil {
			log.WithError(err).Warn("redis unreachable, rate limiting fails open until it recovers")
		}
		rateStore = middleware.NewRedisStore(client)
	}

	// ======================================================
	// OBJECT STORAGE
	// ======================================================
	var uploader objectstore.Uploader
	if cfg.Storage.Enabled() {
		uploader = objectstore.NewS3Uploader(cfg.Storage)
	} else {
		log.Info("object storage not configured, upload routes disabled")
	}

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(),
		middleware.CORSMiddleware(cfg.Server.AllowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	dispatcher := routes.RegisterRoutes(r, routes.Deps{
		Config:    cfg,
		Stores:    stores,
		Auth:      authService,
		RateLimit: rateStore,
		Uploader:  uploader,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	log.WithField("signal", sig.String()).Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}
	dispatcher.Close()
}
